package api

import (
	"log/slog"
	"net/http"

	"github.com/kencar17/simple-blog-api/internal/api/shared"
	"github.com/kencar17/simple-blog-api/internal/service/auth"
)

const (
	invalidCredentialsMessage = "No active account found with the given credentials"
	invalidRefreshMessage     = "Token is invalid or expired"
)

// AuthHandler implements the token obtain and refresh endpoints.
type AuthHandler struct {
	tokenService *auth.TokenService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewAuthHandler(tokenService *auth.TokenService, log *slog.Logger) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		tokenService: tokenService,
		logger:       log.With(slog.String("handler", "auth")),
	}
}

// ObtainToken handles POST /api/auth/token.
// Unknown usernames, wrong passwords and inactive users all produce the
// same failure message.
func (h *AuthHandler) ObtainToken(w http.ResponseWriter, r *http.Request) {
	var req TokenObtainRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	if fieldErrors := validatePayload(&req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	pair, err := h.tokenService.ObtainPair(r.Context(), req.Username, req.Password)
	if err != nil {
		if auth.IsCredentialError(err) {
			shared.RespondWithFailure(w, r, invalidCredentialsMessage, nil)
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	shared.RespondWithContent(w, r, TokenObtainResponse{
		Refresh:  pair.Refresh,
		Access:   pair.Access,
		IssuedAt: pair.IssuedAt,
		Expiry:   pair.ExpiresAt,
	})
}

// RefreshToken handles POST /api/auth/token/refresh.
// With rotation enabled the response carries a fresh refresh token next
// to the new access token; without it only the access token is returned.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondWithFailure(w, r, malformedRequestMessage, nil)
		return
	}

	if fieldErrors := validatePayload(&req); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, fieldErrors)
		return
	}

	pair, err := h.tokenService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		if auth.IsTokenError(err) {
			shared.RespondWithFailure(w, r, invalidRefreshMessage, nil)
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	resp := TokenRefreshResponse{Access: pair.Access}
	if pair.Refresh != "" {
		resp.Refresh = pair.Refresh
		resp.IssuedAt = pair.IssuedAt
		resp.Expiry = pair.ExpiresAt
	}

	shared.RespondWithContent(w, r, resp)
}
