package api

import (
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/mocks"
)

func newTagRouter(store *mocks.MockTagStore) chi.Router {
	handler := NewTagHandler(store, nil)

	r := chi.NewRouter()
	r.Get("/api/tags", handler.List)
	r.Post("/api/tags", handler.Create)
	r.Get("/api/tags/{id}", handler.Get)
	r.Put("/api/tags/{id}", handler.Update)
	r.Delete("/api/tags/{id}", handler.Delete)
	return r
}

func seedTag(t *testing.T, store *mocks.MockTagStore, name string) *domain.Tag {
	t.Helper()

	tag, err := domain.NewTag(name, "")
	require.NoError(t, err)
	tag.BeforeSave()
	store.Tags[tag.ID] = tag
	return tag
}

func TestTagCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates tag with derived slug", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockTagStore()
		router := newTagRouter(store)

		env := serve(t, router, "POST", "/api/tags", map[string]any{
			"name":        "Go Concurrency",
			"description": "Goroutines and channels",
		})

		var tag domain.Tag
		decodeContent(t, env, &tag)
		assert.Equal(t, "Go Concurrency", tag.Name)
		assert.Equal(t, "go-concurrency", tag.Slug)
		assert.Len(t, store.Tags, 1)
	})

	t.Run("duplicate name produces field error", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockTagStore()
		seedTag(t, store, "Go Concurrency")
		router := newTagRouter(store)

		env := serve(t, router, "POST", "/api/tags", map[string]any{
			"name": "Go Concurrency",
		})

		fields := fieldErrors(t, env)
		assert.Equal(t, []string{"tag with this name already exists."}, fields["name"])
	})

	t.Run("missing name produces field error", func(t *testing.T) {
		t.Parallel()

		router := newTagRouter(mocks.NewMockTagStore())

		env := serve(t, router, "POST", "/api/tags", map[string]any{})

		fields := fieldErrors(t, env)
		assert.Equal(t, []string{"This field is required."}, fields["name"])
	})
}

func TestTagList(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockTagStore()
	seedTag(t, store, "Databases")
	seedTag(t, store, "Networking")
	router := newTagRouter(store)

	env := serve(t, router, "GET", "/api/tags?search=data", nil)

	var page struct {
		Count   int          `json:"count"`
		Results []domain.Tag `json:"results"`
	}
	decodeContent(t, env, &page)
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Databases", page.Results[0].Name)
}

func TestTagUpdate(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockTagStore()
	tag := seedTag(t, store, "Old Name")
	router := newTagRouter(store)

	env := serve(t, router, "PUT", "/api/tags/"+tag.ID.String(), map[string]any{
		"name": "Machine Learning",
	})

	var got domain.Tag
	decodeContent(t, env, &got)
	assert.Equal(t, "Machine Learning", got.Name)
	assert.Equal(t, "machine-learning", got.Slug, "the slug tracks the name")
}

func TestTagDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes an unreferenced tag", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockTagStore()
		tag := seedTag(t, store, "Databases")
		router := newTagRouter(store)

		env := serve(t, router, "DELETE", "/api/tags/"+tag.ID.String(), nil)

		var msg MessageResponse
		decodeContent(t, env, &msg)
		assert.Equal(t, "tag has been deleted.", msg.Message)
		assert.NotContains(t, store.Tags, tag.ID)
	})

	t.Run("refuses to delete a tag referenced by posts", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockTagStore()
		tag := seedTag(t, store, "Databases")
		store.ReferencedByPosts[tag.ID] = true
		router := newTagRouter(store)

		env := serve(t, router, "DELETE", "/api/tags/"+tag.ID.String(), nil)

		f := failureOf(t, env)
		assert.Equal(t, "Delete Failed", f.Message)
		assert.Contains(t, store.Tags, tag.ID)
	})
}
