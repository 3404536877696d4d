package api

import (
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kencar17/simple-blog-api/internal/config"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/mocks"
	"github.com/kencar17/simple-blog-api/internal/service/auth"
)

func newAuthRouter(t *testing.T, rotate bool) chi.Router {
	t.Helper()

	cfg := config.AuthConfig{
		JWTSecret:                   "test-secret-key-thats-long-enough-for-hmac",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
		RotateRefreshTokens:         rotate,
		BlacklistAfterRotation:      rotate,
	}

	user, err := domain.NewUser(uuid.New(), "writer@example.com")
	require.NoError(t, err)
	hashed, err := auth.NewBcryptHasher(4).Hash("correct-password")
	require.NoError(t, err)
	user.HashedPassword = hashed

	userStore := mocks.NewMockUserStore()
	userStore.Users[user.ID] = user

	jwtService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	tokenService := auth.NewTokenService(
		userStore, mocks.NewMockTokenBlacklistStore(), jwtService,
		auth.NewBcryptVerifier(), cfg, nil)

	handler := NewAuthHandler(tokenService, nil)

	r := chi.NewRouter()
	r.Post("/api/auth/token", handler.ObtainToken)
	r.Post("/api/auth/token/refresh", handler.RefreshToken)
	return r
}

func TestObtainToken(t *testing.T) {
	t.Parallel()

	t.Run("issues a token pair for valid credentials", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(t, true)

		env := serve(t, router, "POST", "/api/auth/token", map[string]any{
			"username": "writer@example.com",
			"password": "correct-password",
		})

		var got TokenObtainResponse
		decodeContent(t, env, &got)
		assert.NotEmpty(t, got.Access)
		assert.NotEmpty(t, got.Refresh)
		assert.Greater(t, got.Expiry, got.IssuedAt)
	})

	t.Run("wrong password is a credential failure", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(t, true)

		env := serve(t, router, "POST", "/api/auth/token", map[string]any{
			"username": "writer@example.com",
			"password": "wrong-password",
		})

		f := failureOf(t, env)
		assert.Equal(t, "No active account found with the given credentials", f.Message)
	})

	t.Run("unknown username is the same credential failure", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(t, true)

		env := serve(t, router, "POST", "/api/auth/token", map[string]any{
			"username": "nobody@example.com",
			"password": "whatever",
		})

		f := failureOf(t, env)
		assert.Equal(t, "No active account found with the given credentials", f.Message)
	})

	t.Run("missing fields produce field errors", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(t, true)

		env := serve(t, router, "POST", "/api/auth/token", map[string]any{})

		fields := fieldErrors(t, env)
		assert.Equal(t, []string{"This field is required."}, fields["username"])
		assert.Equal(t, []string{"This field is required."}, fields["password"])
	})
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	obtain := func(t *testing.T, router chi.Router) TokenObtainResponse {
		t.Helper()

		env := serve(t, router, "POST", "/api/auth/token", map[string]any{
			"username": "writer@example.com",
			"password": "correct-password",
		})
		var got TokenObtainResponse
		decodeContent(t, env, &got)
		return got
	}

	t.Run("rotation returns a fresh pair", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(t, true)
		pair := obtain(t, router)

		env := serve(t, router, "POST", "/api/auth/token/refresh", map[string]any{
			"refresh": pair.Refresh,
		})

		var got TokenRefreshResponse
		decodeContent(t, env, &got)
		assert.NotEmpty(t, got.Access)
		assert.NotEmpty(t, got.Refresh)
		assert.NotEqual(t, pair.Refresh, got.Refresh)
		assert.Greater(t, got.Expiry, int64(0))
	})

	t.Run("without rotation only the access token is returned", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(t, false)
		pair := obtain(t, router)

		env := serve(t, router, "POST", "/api/auth/token/refresh", map[string]any{
			"refresh": pair.Refresh,
		})

		var got TokenRefreshResponse
		decodeContent(t, env, &got)
		assert.NotEmpty(t, got.Access)
		assert.Empty(t, got.Refresh)
		assert.Zero(t, got.Expiry)

		// The rotation fields stay off the wire entirely.
		assert.NotContains(t, string(env.Content), "refresh")
	})

	t.Run("rotated out token cannot be replayed", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(t, true)
		pair := obtain(t, router)

		serve(t, router, "POST", "/api/auth/token/refresh", map[string]any{
			"refresh": pair.Refresh,
		})
		env := serve(t, router, "POST", "/api/auth/token/refresh", map[string]any{
			"refresh": pair.Refresh,
		})

		f := failureOf(t, env)
		assert.Equal(t, "Token is invalid or expired", f.Message)
	})

	t.Run("garbage token is an invalid token failure", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(t, true)

		env := serve(t, router, "POST", "/api/auth/token/refresh", map[string]any{
			"refresh": "not-a-jwt",
		})

		f := failureOf(t, env)
		assert.Equal(t, "Token is invalid or expired", f.Message)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		t.Parallel()

		router := newAuthRouter(t, true)
		pair := obtain(t, router)

		env := serve(t, router, "POST", "/api/auth/token/refresh", map[string]any{
			"refresh": pair.Access,
		})

		f := failureOf(t, env)
		assert.Equal(t, "Token is invalid or expired", f.Message)
	})
}
