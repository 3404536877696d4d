package api

import (
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/mocks"
)

func newCategoryRouter(store *mocks.MockCategoryStore) chi.Router {
	handler := NewCategoryHandler(store, nil)

	r := chi.NewRouter()
	r.Get("/api/categories", handler.List)
	r.Post("/api/categories", handler.Create)
	r.Get("/api/categories/{id}", handler.Get)
	r.Put("/api/categories/{id}", handler.Update)
	r.Delete("/api/categories/{id}", handler.Delete)
	return r
}

func seedCategory(t *testing.T, store *mocks.MockCategoryStore, name string, parentID *uuid.UUID) *domain.Category {
	t.Helper()

	category, err := domain.NewCategory(name, "", parentID)
	require.NoError(t, err)
	category.BeforeSave()
	store.Categories[category.ID] = category
	return category
}

func TestCategoryCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates root category with derived slug", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockCategoryStore()
		router := newCategoryRouter(store)

		env := serve(t, router, "POST", "/api/categories", map[string]any{
			"name": "Software Development",
		})

		var got CategoryResponse
		decodeContent(t, env, &got)
		assert.Equal(t, "Software Development", got.Name)
		assert.Equal(t, "software-development", got.Slug)
		assert.Nil(t, got.Parent)
	})

	t.Run("nests the parent as an id and name reference", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockCategoryStore()
		parent := seedCategory(t, store, "Engineering", nil)
		router := newCategoryRouter(store)

		env := serve(t, router, "POST", "/api/categories", map[string]any{
			"name":   "Backend",
			"parent": parent.ID.String(),
		})

		var got CategoryResponse
		decodeContent(t, env, &got)
		require.NotNil(t, got.Parent)
		assert.Equal(t, parent.ID, got.Parent.ID)
		assert.Equal(t, "Engineering", got.Parent.Name)
	})

	t.Run("unknown parent produces reference error", func(t *testing.T) {
		t.Parallel()

		router := newCategoryRouter(mocks.NewMockCategoryStore())

		env := serve(t, router, "POST", "/api/categories", map[string]any{
			"name":   "Backend",
			"parent": uuid.NewString(),
		})

		fields := fieldErrors(t, env)
		assert.Equal(t, []string{"Object with this id does not exist."}, fields["parent"])
	})

	t.Run("duplicate name produces field error", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockCategoryStore()
		seedCategory(t, store, "Engineering", nil)
		router := newCategoryRouter(store)

		env := serve(t, router, "POST", "/api/categories", map[string]any{
			"name": "Engineering",
		})

		fields := fieldErrors(t, env)
		assert.Equal(t, []string{"category with this name already exists."}, fields["name"])
	})
}

func TestCategoryList(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCategoryStore()
	parent := seedCategory(t, store, "Engineering", nil)
	seedCategory(t, store, "Backend", &parent.ID)
	seedCategory(t, store, "Cooking", nil)
	router := newCategoryRouter(store)

	env := serve(t, router, "GET", "/api/categories?category="+parent.ID.String(), nil)

	var page struct {
		Count   int                `json:"count"`
		Results []CategoryResponse `json:"results"`
	}
	decodeContent(t, env, &page)
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Backend", page.Results[0].Name)
	require.NotNil(t, page.Results[0].Parent)
	assert.Equal(t, "Engineering", page.Results[0].Parent.Name)
}

func TestCategoryUpdate(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockCategoryStore()
	category := seedCategory(t, store, "Old Name", nil)
	router := newCategoryRouter(store)

	env := serve(t, router, "PUT", "/api/categories/"+category.ID.String(), map[string]any{
		"name": "Machine Learning",
	})

	var got CategoryResponse
	decodeContent(t, env, &got)
	assert.Equal(t, "Machine Learning", got.Name)
	assert.Equal(t, "machine-learning", got.Slug, "the slug tracks the name")
}

func TestCategoryDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes an unreferenced category", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockCategoryStore()
		category := seedCategory(t, store, "Cooking", nil)
		router := newCategoryRouter(store)

		env := serve(t, router, "DELETE", "/api/categories/"+category.ID.String(), nil)

		var msg MessageResponse
		decodeContent(t, env, &msg)
		assert.Equal(t, "category has been deleted.", msg.Message)
		assert.NotContains(t, store.Categories, category.ID)
	})

	t.Run("refuses to delete a category with children", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockCategoryStore()
		parent := seedCategory(t, store, "Engineering", nil)
		seedCategory(t, store, "Backend", &parent.ID)
		router := newCategoryRouter(store)

		env := serve(t, router, "DELETE", "/api/categories/"+parent.ID.String(), nil)

		f := failureOf(t, env)
		assert.Equal(t, "Delete Failed", f.Message)
		assert.Equal(t, []string{
			"This instance is referenced by other records and cannot be deleted.",
		}, failureDetails(t, f))
		assert.Contains(t, store.Categories, parent.ID)
	})

	t.Run("refuses to delete a category referenced by posts", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockCategoryStore()
		category := seedCategory(t, store, "Engineering", nil)
		store.ReferencedByPosts[category.ID] = true
		router := newCategoryRouter(store)

		env := serve(t, router, "DELETE", "/api/categories/"+category.ID.String(), nil)

		f := failureOf(t, env)
		assert.Equal(t, "Delete Failed", f.Message)
	})
}
