package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kencar17/simple-blog-api/internal/config"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/mocks"
	"github.com/kencar17/simple-blog-api/internal/service/auth"
)

func testAuthConfig(rotate, blacklist bool) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   "test-secret-key-thats-long-enough-for-hmac",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
		RotateRefreshTokens:         rotate,
		BlacklistAfterRotation:      blacklist,
	}
}

func newTestUser(t *testing.T, plaintext string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(uuid.New(), "writer@example.com")
	require.NoError(t, err)

	hashed, err := auth.NewBcryptHasher(4).Hash(plaintext)
	require.NoError(t, err)
	user.HashedPassword = hashed

	return user
}

func newTestTokenService(t *testing.T, cfg config.AuthConfig, user *domain.User) (*auth.TokenService, *mocks.MockTokenBlacklistStore) {
	t.Helper()

	userStore := mocks.NewMockUserStore()
	if user != nil {
		userStore.Users[user.ID] = user
	}
	blacklist := mocks.NewMockTokenBlacklistStore()

	jwtService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc := auth.NewTokenService(userStore, blacklist, jwtService, auth.NewBcryptVerifier(), cfg, nil)
	return svc, blacklist
}

func TestObtainPair(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig(true, true)

	t.Run("issues pair for valid credentials", func(t *testing.T) {
		t.Parallel()

		user := newTestUser(t, "correct-password")
		svc, _ := newTestTokenService(t, cfg, user)

		pair, err := svc.ObtainPair(context.Background(), "writer@example.com", "correct-password")
		require.NoError(t, err)

		assert.NotEmpty(t, pair.Access)
		assert.NotEmpty(t, pair.Refresh)
		assert.Greater(t, pair.ExpiresAt, pair.IssuedAt)
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestTokenService(t, cfg, nil)

		_, err := svc.ObtainPair(context.Background(), "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		t.Parallel()

		user := newTestUser(t, "correct-password")
		svc, _ := newTestTokenService(t, cfg, user)

		_, err := svc.ObtainPair(context.Background(), "writer@example.com", "wrong-password")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("rejects inactive user", func(t *testing.T) {
		t.Parallel()

		user := newTestUser(t, "correct-password")
		user.Deactivate()
		svc, _ := newTestTokenService(t, cfg, user)

		_, err := svc.ObtainPair(context.Background(), "writer@example.com", "correct-password")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	t.Run("rotation returns a fresh pair and blacklists the old token", func(t *testing.T) {
		t.Parallel()

		cfg := testAuthConfig(true, true)
		user := newTestUser(t, "correct-password")
		svc, blacklist := newTestTokenService(t, cfg, user)

		pair, err := svc.ObtainPair(context.Background(), "writer@example.com", "correct-password")
		require.NoError(t, err)

		rotated, err := svc.Refresh(context.Background(), pair.Refresh)
		require.NoError(t, err)

		assert.NotEmpty(t, rotated.Access)
		assert.NotEmpty(t, rotated.Refresh)
		assert.NotEqual(t, pair.Refresh, rotated.Refresh)
		assert.Len(t, blacklist.Entries, 1)

		// The rotated-out token cannot be replayed.
		_, err = svc.Refresh(context.Background(), pair.Refresh)
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("without rotation only an access token is issued", func(t *testing.T) {
		t.Parallel()

		cfg := testAuthConfig(false, false)
		user := newTestUser(t, "correct-password")
		svc, blacklist := newTestTokenService(t, cfg, user)

		pair, err := svc.ObtainPair(context.Background(), "writer@example.com", "correct-password")
		require.NoError(t, err)

		refreshed, err := svc.Refresh(context.Background(), pair.Refresh)
		require.NoError(t, err)

		assert.NotEmpty(t, refreshed.Access)
		assert.Empty(t, refreshed.Refresh)
		assert.Empty(t, blacklist.Entries)

		// Without blacklisting, the old refresh token keeps working.
		_, err = svc.Refresh(context.Background(), pair.Refresh)
		assert.NoError(t, err)
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestTokenService(t, testAuthConfig(true, true), nil)

		_, err := svc.Refresh(context.Background(), "not-a-jwt")
		assert.True(t, auth.IsTokenError(err))
	})

	t.Run("rejects access tokens", func(t *testing.T) {
		t.Parallel()

		cfg := testAuthConfig(true, true)
		user := newTestUser(t, "correct-password")
		svc, _ := newTestTokenService(t, cfg, user)

		pair, err := svc.ObtainPair(context.Background(), "writer@example.com", "correct-password")
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), pair.Access)
		assert.ErrorIs(t, err, auth.ErrWrongTokenType)
	})
}

func TestPurgeBlacklist(t *testing.T) {
	t.Parallel()

	svc, blacklist := newTestTokenService(t, testAuthConfig(true, true), nil)
	blacklist.Entries["expired-jti"] = time.Now().UTC().Add(-time.Hour)
	blacklist.Entries["live-jti"] = time.Now().UTC().Add(time.Hour)

	removed, err := svc.PurgeBlacklist(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.NotContains(t, blacklist.Entries, "expired-jti")
	assert.Contains(t, blacklist.Entries, "live-jti", "entries still in their validity window survive")
}
