package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()

	t.Run("creates active user", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser(accountID, "writer@example.com")
		require.NoError(t, err)

		assert.Equal(t, accountID, user.AccountID)
		assert.Equal(t, "writer@example.com", user.Username)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
		assert.False(t, user.IsSuperuser)
	})

	t.Run("rejects nil account", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser(uuid.Nil, "writer@example.com")
		assert.ErrorIs(t, err, ErrEmptyUserAccount)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser(accountID, "")
		assert.ErrorIs(t, err, ErrEmptyUsername)
	})

	t.Run("rejects non-email username", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser(accountID, "writer")
		assert.ErrorIs(t, err, ErrInvalidUsername)
	})
}

func TestNewSuperuser(t *testing.T) {
	t.Parallel()

	user, err := NewSuperuser(uuid.New(), "admin@example.com")
	require.NoError(t, err)

	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	t.Run("superuser must be staff", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser(uuid.New(), "writer@example.com")
		require.NoError(t, err)
		user.HashedPassword = "hashed"
		user.IsSuperuser = true

		assert.ErrorIs(t, user.Validate(), ErrSuperuserNotStaff)

		user.IsStaff = true
		assert.NoError(t, user.Validate())
	})

	t.Run("requires hashed password", func(t *testing.T) {
		t.Parallel()

		user, err := NewUser(uuid.New(), "writer@example.com")
		require.NoError(t, err)

		assert.ErrorIs(t, user.Validate(), ErrEmptyHashedPassword)
	})
}

func TestUserDeactivate(t *testing.T) {
	t.Parallel()

	user, err := NewSuperuser(uuid.New(), "admin@example.com")
	require.NoError(t, err)

	user.Deactivate()

	assert.False(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)
}

func TestUserSetValues(t *testing.T) {
	t.Parallel()

	user, err := NewUser(uuid.New(), "writer@example.com")
	require.NoError(t, err)

	newAccount := uuid.New()
	assigned := user.SetValues(map[string]any{
		"account":        newAccount.String(),
		"first_name":     "Kenneth",
		"is_contributor": true,
		"password":       "not-assignable",
	})

	assert.ElementsMatch(t, []string{"account", "first_name", "is_contributor"}, assigned)
	assert.Equal(t, newAccount, user.AccountID)
	assert.Equal(t, "Kenneth", user.FirstName)
	assert.True(t, user.IsContributor)
	assert.Equal(t, "", user.HashedPassword)
}

func TestRandomPassword(t *testing.T) {
	t.Parallel()

	password, err := RandomPassword(GeneratedPasswordLength)
	require.NoError(t, err)
	assert.Len(t, password, GeneratedPasswordLength)

	for _, c := range password {
		assert.True(t, strings.ContainsRune(passwordAllowedChars, c),
			"unexpected character %q in generated password", c)
	}

	other, err := RandomPassword(GeneratedPasswordLength)
	require.NoError(t, err)
	assert.NotEqual(t, password, other)
}
