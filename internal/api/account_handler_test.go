package api

import (
	"encoding/json"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/mocks"
)

func newAccountRouter(store *mocks.MockAccountStore) chi.Router {
	handler := NewAccountHandler(store, nil)

	r := chi.NewRouter()
	r.Get("/api/accounts", handler.List)
	r.Post("/api/accounts", handler.Create)
	r.Get("/api/accounts/{id}", handler.Get)
	r.Put("/api/accounts/{id}", handler.Update)
	r.Delete("/api/accounts/{id}", handler.Delete)
	return r
}

func seedAccount(t *testing.T, store *mocks.MockAccountStore, name string) *domain.Account {
	t.Helper()

	account, err := domain.NewAccount(name, "hello@example.com", "")
	require.NoError(t, err)
	store.Accounts[account.ID] = account
	return account
}

func TestAccountCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates account with default bio", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockAccountStore()
		router := newAccountRouter(store)

		env := serve(t, router, "POST", "/api/accounts", map[string]any{
			"account_name":  "Tech Blog",
			"contact_email": "hello@techblog.io",
		})

		var account domain.Account
		decodeContent(t, env, &account)
		assert.Equal(t, "Tech Blog", account.AccountName)
		assert.Equal(t, "Am a blog for Tech Blog", account.Bio)
		assert.True(t, account.IsActive)
		assert.Len(t, store.Accounts, 1)
	})

	t.Run("missing fields produce field errors", func(t *testing.T) {
		t.Parallel()

		router := newAccountRouter(mocks.NewMockAccountStore())

		env := serve(t, router, "POST", "/api/accounts", map[string]any{})

		fields := fieldErrors(t, env)
		assert.Equal(t, []string{"This field is required."}, fields["account_name"])
		assert.Equal(t, []string{"This field is required."}, fields["contact_email"])
	})

	t.Run("malformed email produces field error", func(t *testing.T) {
		t.Parallel()

		router := newAccountRouter(mocks.NewMockAccountStore())

		env := serve(t, router, "POST", "/api/accounts", map[string]any{
			"account_name":  "Tech Blog",
			"contact_email": "not-an-email",
		})

		fields := fieldErrors(t, env)
		assert.Equal(t, []string{"Enter a valid email address."}, fields["contact_email"])
	})

	t.Run("duplicate name produces field error", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockAccountStore()
		seedAccount(t, store, "Tech Blog")
		router := newAccountRouter(store)

		env := serve(t, router, "POST", "/api/accounts", map[string]any{
			"account_name":  "Tech Blog",
			"contact_email": "hello@techblog.io",
		})

		fields := fieldErrors(t, env)
		assert.Equal(t, []string{"account with this account name already exists."}, fields["account_name"])
	})

	t.Run("unparseable body is a malformed request", func(t *testing.T) {
		t.Parallel()

		router := newAccountRouter(mocks.NewMockAccountStore())

		env := serve(t, router, "POST", "/api/accounts", "not an object")

		f := failureOf(t, env)
		assert.Equal(t, "Malformed request.", f.Message)
	})
}

func TestAccountGet(t *testing.T) {
	t.Parallel()

	t.Run("returns account by id", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockAccountStore()
		account := seedAccount(t, store, "Tech Blog")
		router := newAccountRouter(store)

		env := serve(t, router, "GET", "/api/accounts/"+account.ID.String(), nil)

		var got domain.Account
		decodeContent(t, env, &got)
		assert.Equal(t, account.ID, got.ID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		t.Parallel()

		router := newAccountRouter(mocks.NewMockAccountStore())

		env := serve(t, router, "GET", "/api/accounts/"+uuid.NewString(), nil)

		f := failureOf(t, env)
		assert.Equal(t, "Not found.", f.Message)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		t.Parallel()

		router := newAccountRouter(mocks.NewMockAccountStore())

		env := serve(t, router, "GET", "/api/accounts/not-a-uuid", nil)

		f := failureOf(t, env)
		assert.Equal(t, "Not found.", f.Message)
	})
}

func TestAccountList(t *testing.T) {
	t.Parallel()

	t.Run("paginates results", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockAccountStore()
		seedAccount(t, store, "Blog A")
		seedAccount(t, store, "Blog B")
		seedAccount(t, store, "Blog C")
		router := newAccountRouter(store)

		env := serve(t, router, "GET", "/api/accounts?page_size=2", nil)

		var page struct {
			Count   int             `json:"count"`
			Pages   int             `json:"pages"`
			Current int             `json:"current"`
			Next    *string         `json:"next"`
			Results json.RawMessage `json:"results"`
		}
		decodeContent(t, env, &page)
		assert.Equal(t, 3, page.Count)
		assert.Equal(t, 2, page.Pages)
		assert.Equal(t, 1, page.Current)
		assert.NotNil(t, page.Next)
	})

	t.Run("search narrows results", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockAccountStore()
		seedAccount(t, store, "Cooking Blog")
		seedAccount(t, store, "Tech Blog")
		router := newAccountRouter(store)

		env := serve(t, router, "GET", "/api/accounts?search=cooking", nil)

		var page struct {
			Count   int              `json:"count"`
			Results []domain.Account `json:"results"`
		}
		decodeContent(t, env, &page)
		assert.Equal(t, 1, page.Count)
		require.Len(t, page.Results, 1)
		assert.Equal(t, "Cooking Blog", page.Results[0].AccountName)
	})

	t.Run("invalid page is a failure", func(t *testing.T) {
		t.Parallel()

		router := newAccountRouter(mocks.NewMockAccountStore())

		env := serve(t, router, "GET", "/api/accounts?page=abc", nil)

		f := failureOf(t, env)
		assert.Equal(t, "Invalid page.", f.Message)
	})

	t.Run("no matches collapse to the empty shape", func(t *testing.T) {
		t.Parallel()

		router := newAccountRouter(mocks.NewMockAccountStore())

		env := serve(t, router, "GET", "/api/accounts", nil)

		var page struct {
			Count   int   `json:"count"`
			Pages   int   `json:"pages"`
			Current int   `json:"current"`
			Results []any `json:"results"`
		}
		decodeContent(t, env, &page)
		assert.Equal(t, 0, page.Count)
		assert.Equal(t, 0, page.Pages)
		assert.Equal(t, 0, page.Current)
		assert.NotNil(t, page.Results)
		assert.Empty(t, page.Results)
	})
}

func TestAccountUpdate(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockAccountStore()
	account := seedAccount(t, store, "Tech Blog")
	router := newAccountRouter(store)

	env := serve(t, router, "PUT", "/api/accounts/"+account.ID.String(), map[string]any{
		"twitter_link": "https://twitter.com/techblog",
	})

	var got domain.Account
	decodeContent(t, env, &got)
	assert.Equal(t, "https://twitter.com/techblog", got.TwitterLink)
	assert.Equal(t, "Tech Blog", got.AccountName, "untouched fields survive the partial update")
}

func TestAccountDelete(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockAccountStore()
	account := seedAccount(t, store, "Tech Blog")
	router := newAccountRouter(store)

	env := serve(t, router, "DELETE", "/api/accounts/"+account.ID.String(), nil)

	var msg MessageResponse
	decodeContent(t, env, &msg)
	assert.Equal(t, "Account has been deactivated.", msg.Message)

	// Soft delete: the row survives, deactivated.
	require.Contains(t, store.Accounts, account.ID)
	assert.False(t, store.Accounts[account.ID].IsActive)
}
