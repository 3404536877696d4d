package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kencar17/simple-blog-api/internal/mocks"
	"github.com/kencar17/simple-blog-api/internal/service/auth"
)

type authEnvelope struct {
	IsError bool `json:"is_error"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

func runAuthenticated(t *testing.T, jwtService auth.JWTService, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	var gotUserID uuid.UUID
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, reached = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest("GET", "/api/accounts", nil)
	if authHeader != "" {
		r.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()

	NewAuthMiddleware(jwtService).Authenticate(next).ServeHTTP(w, r)
	return w, gotUserID, reached
}

func decodeAuthFailure(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var env authEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.IsError)
	return env.Error.Message
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid token reaches the handler with the user id in context", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: userID},
		}

		_, gotUserID, reached := runAuthenticated(t, jwtService, "Bearer some-valid-token")

		require.True(t, reached)
		assert.Equal(t, userID, gotUserID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		t.Parallel()

		w, _, reached := runAuthenticated(t, &mocks.MockJWTService{}, "")

		assert.False(t, reached)
		assert.Equal(t, "Authentication credentials were not provided.", decodeAuthFailure(t, w))
	})

	t.Run("non bearer scheme is rejected", func(t *testing.T) {
		t.Parallel()

		w, _, reached := runAuthenticated(t, &mocks.MockJWTService{}, "Basic dXNlcjpwYXNz")

		assert.False(t, reached)
		assert.Equal(t, "Authentication credentials were not provided.", decodeAuthFailure(t, w))
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}

		w, _, reached := runAuthenticated(t, jwtService, "Bearer bad-token")

		assert.False(t, reached)
		assert.Equal(t, "Given token not valid for any token type", decodeAuthFailure(t, w))
	})
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	_, ok := GetUserID(r)
	assert.False(t, ok, "no user id outside an authenticated request")
}
