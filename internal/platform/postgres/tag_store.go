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

// PostgresTagStore implements the store.TagStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTagStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTagStore creates a new PostgreSQL implementation of the
// TagStore interface. If logger is nil, a default logger will be used.
func NewPostgresTagStore(db store.DBTX, logger *slog.Logger) *PostgresTagStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTagStore{
		db:     db,
		logger: logger.With(slog.String("component", "tag_store")),
	}
}

// Ensure PostgresTagStore implements store.TagStore interface
var _ store.TagStore = (*PostgresTagStore)(nil)

const tagColumns = `id, created_date, updated_date, name, description, slug`

func scanTag(row interface{ Scan(dest ...any) error }) (*domain.Tag, error) {
	var tag domain.Tag
	err := row.Scan(
		&tag.ID,
		&tag.CreatedDate,
		&tag.UpdatedDate,
		&tag.Name,
		&tag.Description,
		&tag.Slug,
	)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Create implements store.TagStore.Create
// It derives the slug before persisting.
// Returns store.ErrTagNameExists on a name or slug collision.
func (s *PostgresTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag.BeforeSave()
	if err := tag.Validate(); err != nil {
		log.Warn("tag validation failed during create",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID.String()))
		return err
	}

	query := `
		INSERT INTO tags (id, created_date, updated_date, name, description, slug)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		tag.ID,
		tag.CreatedDate,
		tag.UpdatedDate,
		tag.Name,
		tag.Description,
		tag.Slug,
	)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrTagNameExists) {
			log.Warn("duplicate tag name during create",
				slog.String("name", tag.Name))
			return mapped
		}
		log.Error("failed to create tag",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID.String()))
		return mapped
	}

	log.Info("tag created successfully",
		slog.String("tag_id", tag.ID.String()),
		slog.String("name", tag.Name))
	return nil
}

// GetByID implements store.TagStore.GetByID
// Returns store.ErrTagNotFound if the tag does not exist.
func (s *PostgresTagStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = $1`

	tag, err := scanTag(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("tag not found", slog.String("tag_id", id.String()))
			return nil, store.ErrTagNotFound
		}
		log.Error("failed to get tag by ID",
			slog.String("error", err.Error()),
			slog.String("tag_id", id.String()))
		return nil, err
	}

	return tag, nil
}

// List implements store.TagStore.List
// It retrieves tags ordered by creation date descending then name,
// optionally narrowed by a search term over name and description.
func (s *PostgresTagStore) List(
	ctx context.Context,
	opts store.ListOptions,
) ([]*domain.Tag, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where := ""
	args := []any{}
	if opts.Search != "" {
		where = `WHERE name ILIKE $1 OR description ILIKE $1`
		args = append(args, "%"+opts.Search+"%")
	}

	countQuery := `SELECT COUNT(*) FROM tags ` + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count tags", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `SELECT ` + tagColumns + ` FROM tags ` + where +
		` ORDER BY created_date DESC, name ASC`
	query, args = applyPaging(query, args, opts)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tags", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer closeRows(rows, log)

	tags := []*domain.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			log.Error("failed to scan tag row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return tags, total, nil
}

// Update implements store.TagStore.Update
// It rederives the slug and refreshes the update timestamp before persisting.
// Returns store.ErrTagNotFound if the tag does not exist and
// store.ErrTagNameExists on a name or slug collision.
func (s *PostgresTagStore) Update(ctx context.Context, tag *domain.Tag) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag.BeforeSave()
	if err := tag.Validate(); err != nil {
		log.Warn("tag validation failed during update",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID.String()))
		return err
	}

	query := `
		UPDATE tags
		SET updated_date = $1, name = $2, description = $3, slug = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		tag.UpdatedDate,
		tag.Name,
		tag.Description,
		tag.Slug,
		tag.ID,
	)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrTagNameExists) {
			log.Warn("duplicate tag name during update",
				slog.String("name", tag.Name))
			return mapped
		}
		log.Error("failed to update tag",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, store.ErrTagNotFound); err != nil {
		log.Debug("tag not found for update", slog.String("tag_id", tag.ID.String()))
		return err
	}

	log.Info("tag updated successfully", slog.String("tag_id", tag.ID.String()))
	return nil
}

// Delete implements store.TagStore.Delete
// Returns store.ErrDeleteProtected while blog posts still reference the
// tag, and store.ErrTagNotFound if it does not exist.
func (s *PostgresTagStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		mapped := MapDeleteError(err)
		if errors.Is(mapped, store.ErrDeleteProtected) {
			log.Warn("tag delete blocked by references",
				slog.String("tag_id", id.String()))
			return mapped
		}
		log.Error("failed to delete tag",
			slog.String("error", err.Error()),
			slog.String("tag_id", id.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, store.ErrTagNotFound); err != nil {
		log.Debug("tag not found for delete", slog.String("tag_id", id.String()))
		return err
	}

	log.Info("tag deleted successfully", slog.String("tag_id", id.String()))
	return nil
}
