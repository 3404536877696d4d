package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// PostgresTokenBlacklistStore implements the store.TokenBlacklistStore
// interface using a PostgreSQL database as the storage backend.
type PostgresTokenBlacklistStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTokenBlacklistStore creates a new PostgreSQL implementation of
// the TokenBlacklistStore interface. If logger is nil, a default logger
// will be used.
func NewPostgresTokenBlacklistStore(db store.DBTX, logger *slog.Logger) *PostgresTokenBlacklistStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTokenBlacklistStore{
		db:     db,
		logger: logger.With(slog.String("component", "token_blacklist_store")),
	}
}

// Ensure PostgresTokenBlacklistStore implements store.TokenBlacklistStore interface
var _ store.TokenBlacklistStore = (*PostgresTokenBlacklistStore)(nil)

// Add implements store.TokenBlacklistStore.Add
// Re-adding an existing token ID is a no-op.
func (s *PostgresTokenBlacklistStore) Add(ctx context.Context, jti string, expiresAt time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO token_blacklist (jti, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, jti, expiresAt); err != nil {
		log.Error("failed to blacklist token", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("token blacklisted", slog.String("jti", jti))
	return nil
}

// Contains implements store.TokenBlacklistStore.Contains
func (s *PostgresTokenBlacklistStore) Contains(ctx context.Context, jti string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS(SELECT 1 FROM token_blacklist WHERE jti = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, jti).Scan(&exists); err != nil {
		log.Error("failed to check token blacklist", slog.String("error", err.Error()))
		return false, MapError(err)
	}

	return exists, nil
}

// PurgeExpired implements store.TokenBlacklistStore.PurgeExpired
// Entries for tokens that have expired anyway carry no security value and
// only grow the table.
func (s *PostgresTokenBlacklistStore) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM token_blacklist WHERE expires_at < $1`, now)
	if err != nil {
		log.Error("failed to purge token blacklist", slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if rowsAffected > 0 {
		log.Info("purged expired blacklist entries", slog.Int64("count", rowsAffected))
	}
	return int(rowsAffected), nil
}
