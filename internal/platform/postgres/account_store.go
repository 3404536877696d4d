package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

const accountColumns = `id, created_date, account_name, bio, contact_email,
	website_link, facebook_link, instagram_link, twitter_link, tiktok_link,
	linkedin_link, snapchat_link, youtube_link, twitch_link, is_active`

func scanAccount(row interface{ Scan(dest ...any) error }) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.CreatedDate,
		&account.AccountName,
		&account.Bio,
		&account.ContactEmail,
		&account.WebsiteLink,
		&account.FacebookLink,
		&account.InstagramLink,
		&account.TwitterLink,
		&account.TiktokLink,
		&account.LinkedinLink,
		&account.SnapchatLink,
		&account.YoutubeLink,
		&account.TwitchLink,
		&account.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Create implements store.AccountStore.Create
// It saves a new account to the database, handling domain validation.
// Returns store.ErrAccountNameExists if the account name is already taken.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		INSERT INTO accounts (id, created_date, account_name, bio, contact_email,
			website_link, facebook_link, instagram_link, twitter_link, tiktok_link,
			linkedin_link, snapchat_link, youtube_link, twitch_link, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.CreatedDate,
		account.AccountName,
		account.Bio,
		account.ContactEmail,
		account.WebsiteLink,
		account.FacebookLink,
		account.InstagramLink,
		account.TwitterLink,
		account.TiktokLink,
		account.LinkedinLink,
		account.SnapchatLink,
		account.YoutubeLink,
		account.TwitchLink,
		account.IsActive,
	)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrAccountNameExists) {
			log.Warn("duplicate account name during create",
				slog.String("account_name", account.AccountName))
			return mapped
		}
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return mapped
	}

	log.Info("account created successfully",
		slog.String("account_id", account.ID.String()),
		slog.String("account_name", account.AccountName))
	return nil
}

// GetByID implements store.AccountStore.GetByID
// It retrieves an account by its unique ID.
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *PostgresAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving account by ID", slog.String("account_id", id.String()))

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.String("account_id", id.String()))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by ID",
			slog.String("error", err.Error()),
			slog.String("account_id", id.String()))
		return nil, err
	}

	return account, nil
}

// List implements store.AccountStore.List
// It retrieves accounts ordered by creation date descending then account
// name, optionally filtered by a search term over account name, bio and
// contact email. The second return value is the total match count before
// paging.
func (s *PostgresAccountStore) List(
	ctx context.Context,
	opts store.ListOptions,
) ([]*domain.Account, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where := ""
	args := []any{}
	if opts.Search != "" {
		where = `WHERE account_name ILIKE $1 OR bio ILIKE $1 OR contact_email ILIKE $1`
		args = append(args, "%"+opts.Search+"%")
	}

	countQuery := `SELECT COUNT(*) FROM accounts ` + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count accounts", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `SELECT ` + accountColumns + ` FROM accounts ` + where +
		` ORDER BY created_date DESC, account_name ASC`
	query, args = applyPaging(query, args, opts)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query accounts", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer closeRows(rows, log)

	accounts := []*domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			log.Error("failed to scan account row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, err
	}

	log.Debug("listed accounts",
		slog.Int("count", len(accounts)),
		slog.Int("total", total))
	return accounts, total, nil
}

// Update implements store.AccountStore.Update
// It persists changes to an existing account, including soft deletion via
// the is_active flag.
// Returns store.ErrAccountNotFound if the account does not exist and
// store.ErrAccountNameExists on an account name collision.
func (s *PostgresAccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during update",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		UPDATE accounts
		SET account_name = $1, bio = $2, contact_email = $3,
			website_link = $4, facebook_link = $5, instagram_link = $6,
			twitter_link = $7, tiktok_link = $8, linkedin_link = $9,
			snapchat_link = $10, youtube_link = $11, twitch_link = $12,
			is_active = $13
		WHERE id = $14
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		account.AccountName,
		account.Bio,
		account.ContactEmail,
		account.WebsiteLink,
		account.FacebookLink,
		account.InstagramLink,
		account.TwitterLink,
		account.TiktokLink,
		account.LinkedinLink,
		account.SnapchatLink,
		account.YoutubeLink,
		account.TwitchLink,
		account.IsActive,
		account.ID,
	)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrAccountNameExists) {
			log.Warn("duplicate account name during update",
				slog.String("account_name", account.AccountName))
			return mapped
		}
		log.Error("failed to update account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, store.ErrAccountNotFound); err != nil {
		log.Debug("account not found for update",
			slog.String("account_id", account.ID.String()))
		return err
	}

	log.Info("account updated successfully",
		slog.String("account_id", account.ID.String()))
	return nil
}
