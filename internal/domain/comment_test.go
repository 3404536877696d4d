package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	t.Parallel()

	blogID := uuid.New()
	authorID := uuid.New()

	t.Run("creates top-level comment", func(t *testing.T) {
		t.Parallel()

		comment, err := NewComment(blogID, authorID, nil, "Great post!")
		require.NoError(t, err)

		assert.Equal(t, blogID, comment.BlogID)
		assert.Nil(t, comment.ParentID)
	})

	t.Run("creates reply", func(t *testing.T) {
		t.Parallel()

		parentID := uuid.New()
		comment, err := NewComment(blogID, authorID, &parentID, "Agreed.")
		require.NoError(t, err)

		require.NotNil(t, comment.ParentID)
		assert.Equal(t, parentID, *comment.ParentID)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()

		_, err := NewComment(blogID, authorID, nil, "")
		assert.ErrorIs(t, err, ErrEmptyCommentContent)
	})

	t.Run("accepts content at the length limit", func(t *testing.T) {
		t.Parallel()

		_, err := NewComment(blogID, authorID, nil, strings.Repeat("a", MaxCommentLength))
		assert.NoError(t, err)
	})

	t.Run("rejects content over the length limit", func(t *testing.T) {
		t.Parallel()

		_, err := NewComment(blogID, authorID, nil, strings.Repeat("a", MaxCommentLength+1))
		assert.ErrorIs(t, err, ErrCommentTooLong)
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		t.Parallel()

		// Two bytes per rune; at the limit in characters.
		_, err := NewComment(blogID, authorID, nil, strings.Repeat("é", MaxCommentLength))
		assert.NoError(t, err)

		_, err = NewComment(blogID, authorID, nil, strings.Repeat("é", MaxCommentLength+1))
		assert.ErrorIs(t, err, ErrCommentTooLong)
	})
}
