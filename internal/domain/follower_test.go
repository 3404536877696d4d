package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFollower(t *testing.T) {
	t.Parallel()

	t.Run("creates edge between two accounts", func(t *testing.T) {
		t.Parallel()

		follower, followed := uuid.New(), uuid.New()

		edge, err := NewFollower(follower, followed)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, edge.ID)
		assert.Equal(t, follower, edge.FollowerID)
		assert.Equal(t, followed, edge.FollowedID)
		assert.False(t, edge.CreatedDate.IsZero())
	})

	t.Run("rejects nil references", func(t *testing.T) {
		t.Parallel()

		_, err := NewFollower(uuid.Nil, uuid.New())
		assert.ErrorIs(t, err, ErrEmptyFollowerRef)
	})

	t.Run("rejects self follow", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		_, err := NewFollower(id, id)
		assert.ErrorIs(t, err, ErrSelfFollow)
	})
}
