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

// PostgresBlogPostStore implements the store.BlogPostStore interface
// using a PostgreSQL database as the storage backend. Unlike the other
// stores it requires a *sql.DB rather than a DBTX, because writes span the
// blog_posts table and the category/tag link tables and run inside a
// transaction.
type PostgresBlogPostStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresBlogPostStore creates a new PostgreSQL implementation of the
// BlogPostStore interface. If logger is nil, a default logger will be used.
func NewPostgresBlogPostStore(db *sql.DB, logger *slog.Logger) *PostgresBlogPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBlogPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "blog_post_store")),
	}
}

// Ensure PostgresBlogPostStore implements store.BlogPostStore interface
var _ store.BlogPostStore = (*PostgresBlogPostStore)(nil)

const blogPostColumns = `id, account_id, author_id, created_date, updated_date,
	published_date, status, views, likes, dislikes, title, slug, excerpt,
	content, is_featured`

func scanBlogPost(row interface{ Scan(dest ...any) error }) (*domain.BlogPost, error) {
	var post domain.BlogPost
	var status string
	err := row.Scan(
		&post.ID,
		&post.AccountID,
		&post.AuthorID,
		&post.CreatedDate,
		&post.UpdatedDate,
		&post.PublishedDate,
		&status,
		&post.Views,
		&post.Likes,
		&post.Dislikes,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.IsFeatured,
	)
	if err != nil {
		return nil, err
	}
	post.Status = domain.PostStatus(status)
	return &post, nil
}

// Create implements store.BlogPostStore.Create
// It saves the post and its category/tag links in a single transaction.
// Returns store.ErrInvalidEntity if the account, author, or any referenced
// category or tag does not exist.
func (s *PostgresBlogPostStore) Create(ctx context.Context, post *domain.BlogPost) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post.BeforeSave()
	if err := post.Validate(); err != nil {
		log.Warn("blog post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO blog_posts (id, account_id, author_id, created_date,
				updated_date, published_date, status, views, likes, dislikes,
				title, slug, excerpt, content, is_featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		`
		_, err := tx.ExecContext(
			ctx,
			query,
			post.ID,
			post.AccountID,
			post.AuthorID,
			post.CreatedDate,
			post.UpdatedDate,
			post.PublishedDate,
			string(post.Status),
			post.Views,
			post.Likes,
			post.Dislikes,
			post.Title,
			post.Slug,
			post.Excerpt,
			post.Content,
			post.IsFeatured,
		)
		if err != nil {
			return err
		}

		return s.insertLinks(ctx, tx, post)
	})

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			log.Warn("unknown reference during blog post creation",
				slog.String("error", err.Error()),
				slog.String("post_id", post.ID.String()))
			return mapped
		}
		log.Error("failed to create blog post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return mapped
	}

	log.Info("blog post created successfully",
		slog.String("post_id", post.ID.String()),
		slog.String("status", string(post.Status)))
	return nil
}

// GetByID implements store.BlogPostStore.GetByID
// It returns the post with its category and tag IDs populated.
// Returns store.ErrBlogPostNotFound if the post does not exist.
func (s *PostgresBlogPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = $1`

	post, err := scanBlogPost(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("blog post not found", slog.String("post_id", id.String()))
			return nil, store.ErrBlogPostNotFound
		}
		log.Error("failed to get blog post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, err
	}

	if err := s.loadLinks(ctx, post); err != nil {
		log.Error("failed to load blog post links",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, err
	}

	return post, nil
}

// List implements store.BlogPostStore.List
// The ordering must be one of store.BlogPostOrderings, optionally prefixed
// with '-' for descending; anything else falls back to "-created_date".
// The search term matches title and excerpt.
func (s *PostgresBlogPostStore) List(
	ctx context.Context,
	filter store.BlogPostFilter,
	ordering string,
	opts store.ListOptions,
) ([]*domain.BlogPost, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	conds := []string{}
	args := []any{}

	if filter.Status != nil {
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, string(*filter.Status))
	}
	if filter.IsFeatured != nil {
		conds = append(conds, fmt.Sprintf("is_featured = $%d", len(args)+1))
		args = append(args, *filter.IsFeatured)
	}
	if filter.AccountID != nil {
		conds = append(conds, fmt.Sprintf("account_id = $%d", len(args)+1))
		args = append(args, *filter.AccountID)
	}
	if filter.AuthorID != nil {
		conds = append(conds, fmt.Sprintf("author_id = $%d", len(args)+1))
		args = append(args, *filter.AuthorID)
	}
	if opts.Search != "" {
		p := fmt.Sprintf("$%d", len(args)+1)
		conds = append(conds, fmt.Sprintf("(title ILIKE %[1]s OR excerpt ILIKE %[1]s)", p))
		args = append(args, "%"+opts.Search+"%")
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM blog_posts ` + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count blog posts", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `SELECT ` + blogPostColumns + ` FROM blog_posts ` + where +
		` ORDER BY ` + orderClause(ordering)
	query, args = applyPaging(query, args, opts)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query blog posts", slog.String("error", err.Error()))
		return nil, 0, err
	}
	defer closeRows(rows, log)

	posts := []*domain.BlogPost{}
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			log.Error("failed to scan blog post row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, err
	}

	for _, post := range posts {
		if err := s.loadLinks(ctx, post); err != nil {
			log.Error("failed to load blog post links",
				slog.String("error", err.Error()),
				slog.String("post_id", post.ID.String()))
			return nil, 0, err
		}
	}

	log.Debug("listed blog posts",
		slog.Int("count", len(posts)),
		slog.Int("total", total))
	return posts, total, nil
}

// Update implements store.BlogPostStore.Update
// It replaces the post's category and tag links in the same transaction as
// the row update.
// Returns store.ErrBlogPostNotFound if the post does not exist.
func (s *PostgresBlogPostStore) Update(ctx context.Context, post *domain.BlogPost) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post.BeforeSave()
	if err := post.Validate(); err != nil {
		log.Warn("blog post validation failed during update",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		query := `
			UPDATE blog_posts
			SET account_id = $1, author_id = $2, updated_date = $3,
				published_date = $4, status = $5, views = $6, likes = $7,
				dislikes = $8, title = $9, slug = $10, excerpt = $11,
				content = $12, is_featured = $13
			WHERE id = $14
		`
		result, err := tx.ExecContext(
			ctx,
			query,
			post.AccountID,
			post.AuthorID,
			post.UpdatedDate,
			post.PublishedDate,
			string(post.Status),
			post.Views,
			post.Likes,
			post.Dislikes,
			post.Title,
			post.Slug,
			post.Excerpt,
			post.Content,
			post.IsFeatured,
			post.ID,
		)
		if err != nil {
			return err
		}
		if err := CheckRowsAffected(result, store.ErrBlogPostNotFound); err != nil {
			return err
		}

		delQueries := []string{
			`DELETE FROM blog_post_categories WHERE blog_post_id = $1`,
			`DELETE FROM blog_post_tags WHERE blog_post_id = $1`,
		}
		for _, q := range delQueries {
			if _, err := tx.ExecContext(ctx, q, post.ID); err != nil {
				return err
			}
		}

		return s.insertLinks(ctx, tx, post)
	})

	if err != nil {
		if errors.Is(err, store.ErrBlogPostNotFound) {
			log.Debug("blog post not found for update",
				slog.String("post_id", post.ID.String()))
			return err
		}
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			log.Warn("unknown reference during blog post update",
				slog.String("error", err.Error()),
				slog.String("post_id", post.ID.String()))
			return mapped
		}
		log.Error("failed to update blog post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return mapped
	}

	log.Info("blog post updated successfully",
		slog.String("post_id", post.ID.String()))
	return nil
}

// Delete implements store.BlogPostStore.Delete
// Comments and link rows cascade at the schema level.
// Returns store.ErrBlogPostNotFound if the post does not exist.
func (s *PostgresBlogPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete blog post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return MapDeleteError(err)
	}

	if err := CheckRowsAffected(result, store.ErrBlogPostNotFound); err != nil {
		log.Debug("blog post not found for delete",
			slog.String("post_id", id.String()))
		return err
	}

	log.Info("blog post deleted successfully", slog.String("post_id", id.String()))
	return nil
}

// inTx runs fn inside a transaction, rolling back on error.
func (s *PostgresBlogPostStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("failed to rollback transaction",
				slog.String("error", rbErr.Error()))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *PostgresBlogPostStore) insertLinks(ctx context.Context, tx *sql.Tx, post *domain.BlogPost) error {
	for _, categoryID := range post.CategoryIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO blog_post_categories (blog_post_id, category_id) VALUES ($1, $2)`,
			post.ID, categoryID)
		if err != nil {
			return err
		}
	}
	for _, tagID := range post.TagIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO blog_post_tags (blog_post_id, tag_id) VALUES ($1, $2)`,
			post.ID, tagID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresBlogPostStore) loadLinks(ctx context.Context, post *domain.BlogPost) error {
	categoryIDs, err := s.queryLinkIDs(ctx,
		`SELECT category_id FROM blog_post_categories WHERE blog_post_id = $1 ORDER BY category_id`,
		post.ID)
	if err != nil {
		return err
	}
	post.CategoryIDs = categoryIDs

	tagIDs, err := s.queryLinkIDs(ctx,
		`SELECT tag_id FROM blog_post_tags WHERE blog_post_id = $1 ORDER BY tag_id`,
		post.ID)
	if err != nil {
		return err
	}
	post.TagIDs = tagIDs

	return nil
}

func (s *PostgresBlogPostStore) queryLinkIDs(ctx context.Context, query string, postID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows, s.logger)

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// orderClause maps an API ordering value to a SQL ORDER BY clause against
// the whitelist in store.BlogPostOrderings. Unknown values fall back to
// creation date descending.
func orderClause(ordering string) string {
	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = ordering[1:]
	}

	for _, allowed := range store.BlogPostOrderings {
		if field == allowed {
			return fmt.Sprintf("%s %s, id ASC", field, direction)
		}
	}
	return "created_date DESC, id ASC"
}
