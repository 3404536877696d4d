package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlogPost(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	authorID := uuid.New()

	t.Run("creates draft post", func(t *testing.T) {
		t.Parallel()

		post, err := NewBlogPost(accountID, authorID, "Hello World", PostStatusDraft)
		require.NoError(t, err)

		assert.Equal(t, PostStatusDraft, post.Status)
		assert.Equal(t, "Hello World", post.Title)
		assert.NotNil(t, post.CategoryIDs)
		assert.NotNil(t, post.TagIDs)
		assert.Nil(t, post.PublishedDate)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()

		_, err := NewBlogPost(accountID, authorID, "", PostStatusDraft)
		assert.ErrorIs(t, err, ErrEmptyPostTitle)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		_, err := NewBlogPost(accountID, authorID, "Hello World", PostStatus("PENDING"))
		assert.ErrorIs(t, err, ErrInvalidPostStatus)
	})

	t.Run("rejects missing references", func(t *testing.T) {
		t.Parallel()

		_, err := NewBlogPost(uuid.Nil, authorID, "Hello World", PostStatusDraft)
		assert.ErrorIs(t, err, ErrEmptyPostAccount)

		_, err = NewBlogPost(accountID, uuid.Nil, "Hello World", PostStatusDraft)
		assert.ErrorIs(t, err, ErrEmptyPostAuthor)
	})
}

func TestBlogPostBeforeSave(t *testing.T) {
	t.Parallel()

	post, err := NewBlogPost(uuid.New(), uuid.New(), "Go Concurrency Patterns", PostStatusDraft)
	require.NoError(t, err)

	post.BeforeSave()

	assert.Equal(t, "go-concurrency-patterns", post.Slug)
	require.NotNil(t, post.UpdatedDate)
}

func TestBlogPostSetValues(t *testing.T) {
	t.Parallel()

	post, err := NewBlogPost(uuid.New(), uuid.New(), "Hello World", PostStatusDraft)
	require.NoError(t, err)

	categoryID := uuid.New()
	assigned := post.SetValues(map[string]any{
		"status":         "PUBLISHED",
		"published_date": "2024-06-01T12:00:00Z",
		"views":          float64(10),
		"categories":     []any{categoryID.String()},
	})

	assert.ElementsMatch(t, []string{"status", "published_date", "views", "categories"}, assigned)
	assert.Equal(t, PostStatusPublished, post.Status)
	require.NotNil(t, post.PublishedDate)
	assert.Equal(t, 10, post.Views)
	assert.Equal(t, []uuid.UUID{categoryID}, post.CategoryIDs)
}
