package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService signs and validates the two token types the API issues.
// Access tokens authenticate requests; refresh tokens are exchanged for
// new pairs through the token refresh endpoint.
type JWTService interface {
	// GenerateToken issues a signed access token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken checks the signature, expiry and type of an access
	// token and returns its claims. Refresh tokens are rejected with
	// ErrWrongTokenType.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken issues a signed refresh token for the user.
	// Refresh tokens outlive access tokens per the auth configuration.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateRefreshToken checks the signature, expiry and type of a
	// refresh token and returns its claims. Access tokens are rejected
	// with ErrWrongTokenType.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded payload of an issued token. UserID identifies
// the subject, TokenType separates access from refresh tokens, and ID is
// the jti the refresh blacklist records.
type Claims struct {
	UserID    uuid.UUID `json:"uid,omitempty"`
	TokenType string    `json:"type,omitempty"`

	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
