package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/platform/logger"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

const userColumns = `id, account_id, username, display_name, first_name, last_name,
	bio, is_contributor, is_editor, is_blog_owner, is_active, is_staff,
	is_superuser, hashed_password`

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.AccountID,
		&user.Username,
		&user.DisplayName,
		&user.FirstName,
		&user.LastName,
		&user.Bio,
		&user.IsContributor,
		&user.IsEditor,
		&user.IsBlogOwner,
		&user.IsActive,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.HashedPassword,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create implements store.UserStore.Create
// Returns store.ErrUsernameExists if the username is already taken and
// store.ErrInvalidEntity if the account does not exist.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		INSERT INTO users (id, account_id, username, display_name, first_name,
			last_name, bio, is_contributor, is_editor, is_blog_owner, is_active,
			is_staff, is_superuser, hashed_password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.AccountID,
		user.Username,
		user.DisplayName,
		user.FirstName,
		user.LastName,
		user.Bio,
		user.IsContributor,
		user.IsEditor,
		user.IsBlogOwner,
		user.IsActive,
		user.IsStaff,
		user.IsSuperuser,
		user.HashedPassword,
	)

	if err != nil {
		mapped := MapError(err)
		switch {
		case errors.Is(mapped, store.ErrUsernameExists):
			log.Warn("duplicate username during user creation",
				slog.String("username", user.Username))
		case errors.Is(mapped, store.ErrInvalidEntity):
			log.Warn("unknown account during user creation",
				slog.String("account_id", user.AccountID.String()))
		default:
			log.Error("failed to create user",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
		}
		return mapped
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("account_id", user.AccountID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	return user, nil
}

// GetByUsername implements store.UserStore.GetByUsername
// Returns store.ErrUserNotFound if no user has the given username.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by username")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by username",
			slog.String("error", err.Error()))
		return nil, err
	}

	return user, nil
}

// List implements store.UserStore.List
// It retrieves users matching the flag filter, optionally narrowed by a
// search term over username, display name, first name, last name and bio,
// ordered by first name then last name. The second return value is the
// total match count before paging.
func (s *PostgresUserStore) List(
	ctx context.Context,
	filter store.UserFilter,
	opts store.ListOptions,
) ([]*domain.User, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conds := []string{}
	args := []any{}

	addFlag := func(column string, value *bool) {
		if value != nil {
			conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)+1))
			args = append(args, *value)
		}
	}
	addFlag("is_contributor", filter.IsContributor)
	addFlag("is_editor", filter.IsEditor)
	addFlag("is_blog_owner", filter.IsBlogOwner)
	addFlag("is_staff", filter.IsStaff)
	addFlag("is_superuser", filter.IsSuperuser)
	addFlag("is_active", filter.IsActive)

	if opts.Search != "" {
		p := fmt.Sprintf("$%d", len(args)+1)
		conds = append(conds, fmt.Sprintf(
			"(username ILIKE %[1]s OR display_name ILIKE %[1]s OR first_name ILIKE %[1]s OR last_name ILIKE %[1]s OR bio ILIKE %[1]s)", p))
		args = append(args, "%"+opts.Search+"%")
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM users ` + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count users", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users ` + where +
		` ORDER BY first_name ASC, last_name ASC`
	query, args = applyPaging(query, args, opts)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer closeRows(rows, log)

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, err
	}

	log.Debug("listed users",
		slog.Int("count", len(users)),
		slog.Int("total", total))
	return users, total, nil
}

// Update implements store.UserStore.Update
// It persists changes to an existing user, including password changes and
// soft deletion via the flag columns.
// Returns store.ErrUserNotFound if the user does not exist and
// store.ErrUsernameExists on a username collision.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		UPDATE users
		SET account_id = $1, username = $2, display_name = $3, first_name = $4,
			last_name = $5, bio = $6, is_contributor = $7, is_editor = $8,
			is_blog_owner = $9, is_active = $10, is_staff = $11,
			is_superuser = $12, hashed_password = $13
		WHERE id = $14
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		user.AccountID,
		user.Username,
		user.DisplayName,
		user.FirstName,
		user.LastName,
		user.Bio,
		user.IsContributor,
		user.IsEditor,
		user.IsBlogOwner,
		user.IsActive,
		user.IsStaff,
		user.IsSuperuser,
		user.HashedPassword,
		user.ID,
	)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrUsernameExists) {
			log.Warn("duplicate username during user update",
				slog.String("username", user.Username))
			return mapped
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		log.Debug("user not found for update",
			slog.String("user_id", user.ID.String()))
		return err
	}

	log.Info("user updated successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}
