package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTag(t *testing.T) {
	t.Parallel()

	tag, err := NewTag("Machine Learning", "ML posts")
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning", tag.Name)
	assert.Empty(t, tag.Slug)

	_, err = NewTag("", "")
	assert.ErrorIs(t, err, ErrEmptyTagName)
}

func TestTagBeforeSave(t *testing.T) {
	t.Parallel()

	tag, err := NewTag("Machine Learning", "")
	require.NoError(t, err)

	tag.BeforeSave()

	assert.Equal(t, "machine-learning", tag.Slug)
	require.NotNil(t, tag.UpdatedDate)
}
