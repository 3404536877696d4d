package store

import (
	"context"
	"time"
)

// TokenBlacklistStore records refresh token IDs (jti claims) that have been
// rotated out and must no longer be accepted.
type TokenBlacklistStore interface {
	// Add blacklists a token ID until its natural expiry. Adding an
	// already-blacklisted ID is not an error.
	Add(ctx context.Context, jti string, expiresAt time.Time) error

	// Contains reports whether the token ID is blacklisted.
	Contains(ctx context.Context, jti string) (bool, error)

	// PurgeExpired removes blacklist entries whose tokens have expired
	// anyway. Returns the number of removed entries.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}
