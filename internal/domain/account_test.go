package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Parallel()

	t.Run("creates active account with generated ID", func(t *testing.T) {
		t.Parallel()

		account, err := NewAccount("Tech Blog", "hello@techblog.io", "All things tech")
		require.NoError(t, err)

		assert.NotEqual(t, "", account.ID.String())
		assert.Equal(t, "Tech Blog", account.AccountName)
		assert.Equal(t, "hello@techblog.io", account.ContactEmail)
		assert.Equal(t, "All things tech", account.Bio)
		assert.True(t, account.IsActive)
		assert.False(t, account.CreatedDate.IsZero())
	})

	t.Run("substitutes default bio when omitted", func(t *testing.T) {
		t.Parallel()

		account, err := NewAccount("Tech Blog", "hello@techblog.io", "")
		require.NoError(t, err)

		assert.Equal(t, "Am a blog for Tech Blog", account.Bio)
	})

	t.Run("rejects empty account name", func(t *testing.T) {
		t.Parallel()

		_, err := NewAccount("", "hello@techblog.io", "")
		assert.ErrorIs(t, err, ErrEmptyAccountName)
	})

	t.Run("rejects empty contact email", func(t *testing.T) {
		t.Parallel()

		_, err := NewAccount("Tech Blog", "", "")
		assert.ErrorIs(t, err, ErrEmptyContactEmail)
	})

	t.Run("rejects malformed contact email", func(t *testing.T) {
		t.Parallel()

		_, err := NewAccount("Tech Blog", "not-an-email", "")
		assert.ErrorIs(t, err, ErrInvalidContactEmail)
	})
}

func TestAccountSetValues(t *testing.T) {
	t.Parallel()

	account, err := NewAccount("Tech Blog", "hello@techblog.io", "")
	require.NoError(t, err)

	assigned := account.SetValues(map[string]any{
		"account_name": "Renamed Blog",
		"twitter_link": "https://twitter.com/techblog",
		"is_active":    false,
		"unknown_key":  "ignored",
		"bio":          42,
	})

	assert.ElementsMatch(t, []string{"account_name", "twitter_link", "is_active"}, assigned)
	assert.Equal(t, "Renamed Blog", account.AccountName)
	assert.Equal(t, "https://twitter.com/techblog", account.TwitterLink)
	assert.False(t, account.IsActive)
	// Wrong-typed values are ignored, so the default bio survives.
	assert.Equal(t, "Am a blog for Tech Blog", account.Bio)
}

func TestAccountDeactivate(t *testing.T) {
	t.Parallel()

	account, err := NewAccount("Tech Blog", "hello@techblog.io", "")
	require.NoError(t, err)

	account.Deactivate()

	assert.False(t, account.IsActive)
	assert.Equal(t, "Tech Blog", account.AccountName)
}
