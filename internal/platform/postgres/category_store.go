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

// PostgresCategoryStore implements the store.CategoryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface. If logger is nil, a default logger will be used.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

// Ensure PostgresCategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

const categoryColumns = `id, created_date, updated_date, name, description, slug, parent_id`

func scanCategory(row interface{ Scan(dest ...any) error }) (*domain.Category, error) {
	var category domain.Category
	err := row.Scan(
		&category.ID,
		&category.CreatedDate,
		&category.UpdatedDate,
		&category.Name,
		&category.Description,
		&category.Slug,
		&category.ParentID,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Create implements store.CategoryStore.Create
// It derives the slug before persisting.
// Returns store.ErrCategoryNameExists on a name or slug collision and
// store.ErrInvalidEntity if the parent category does not exist.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category.BeforeSave()
	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	query := `
		INSERT INTO categories (id, created_date, updated_date, name, description, slug, parent_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.CreatedDate,
		category.UpdatedDate,
		category.Name,
		category.Description,
		category.Slug,
		category.ParentID,
	)

	if err != nil {
		mapped := MapError(err)
		switch {
		case errors.Is(mapped, store.ErrCategoryNameExists):
			log.Warn("duplicate category name during create",
				slog.String("name", category.Name))
		case errors.Is(mapped, store.ErrInvalidEntity):
			log.Warn("unknown parent category during create",
				slog.String("category_id", category.ID.String()))
		default:
			log.Error("failed to create category",
				slog.String("error", err.Error()),
				slog.String("category_id", category.ID.String()))
		}
		return mapped
	}

	log.Info("category created successfully",
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name))
	return nil
}

// GetByID implements store.CategoryStore.GetByID
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("category not found", slog.String("category_id", id.String()))
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category by ID",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return nil, err
	}

	return category, nil
}

// List implements store.CategoryStore.List
// It retrieves categories ordered by creation date descending then name,
// optionally restricted to the children of a parent category and narrowed
// by a search term over name and description.
func (s *PostgresCategoryStore) List(
	ctx context.Context,
	filter store.CategoryFilter,
	opts store.ListOptions,
) ([]*domain.Category, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conds := []string{}
	args := []any{}

	if filter.ParentID != nil {
		conds = append(conds, fmt.Sprintf("parent_id = $%d", len(args)+1))
		args = append(args, *filter.ParentID)
	}
	if opts.Search != "" {
		p := fmt.Sprintf("$%d", len(args)+1)
		conds = append(conds, fmt.Sprintf("(name ILIKE %[1]s OR description ILIKE %[1]s)", p))
		args = append(args, "%"+opts.Search+"%")
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM categories ` + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count categories", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `SELECT ` + categoryColumns + ` FROM categories ` + where +
		` ORDER BY created_date DESC, name ASC`
	query, args = applyPaging(query, args, opts)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query categories", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer closeRows(rows, log)

	categories := []*domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			log.Error("failed to scan category row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return categories, total, nil
}

// Update implements store.CategoryStore.Update
// It rederives the slug and refreshes the update timestamp before persisting.
// Returns store.ErrCategoryNotFound if the category does not exist and
// store.ErrCategoryNameExists on a name or slug collision.
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category.BeforeSave()
	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during update",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	query := `
		UPDATE categories
		SET updated_date = $1, name = $2, description = $3, slug = $4, parent_id = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		category.UpdatedDate,
		category.Name,
		category.Description,
		category.Slug,
		category.ParentID,
		category.ID,
	)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrCategoryNameExists) {
			log.Warn("duplicate category name during update",
				slog.String("name", category.Name))
			return mapped
		}
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		log.Debug("category not found for update",
			slog.String("category_id", category.ID.String()))
		return err
	}

	log.Info("category updated successfully",
		slog.String("category_id", category.ID.String()))
	return nil
}

// Delete implements store.CategoryStore.Delete
// Returns store.ErrDeleteProtected while subcategories or blog posts still
// reference the category, and store.ErrCategoryNotFound if it does not
// exist.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		mapped := MapDeleteError(err)
		if errors.Is(mapped, store.ErrDeleteProtected) {
			log.Warn("category delete blocked by references",
				slog.String("category_id", id.String()))
			return mapped
		}
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		log.Debug("category not found for delete",
			slog.String("category_id", id.String()))
		return err
	}

	log.Info("category deleted successfully",
		slog.String("category_id", id.String()))
	return nil
}
