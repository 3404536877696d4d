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

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

const commentColumns = `id, created_date, blog_post_id, author_id, parent_id, content`

func scanComment(row interface{ Scan(dest ...any) error }) (*domain.Comment, error) {
	var comment domain.Comment
	err := row.Scan(
		&comment.ID,
		&comment.CreatedDate,
		&comment.BlogID,
		&comment.AuthorID,
		&comment.ParentID,
		&comment.Content,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create implements store.CommentStore.Create
// Returns store.ErrInvalidEntity if the blog post, author or parent comment
// does not exist.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return err
	}

	query := `
		INSERT INTO comments (id, created_date, blog_post_id, author_id, parent_id, content)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		comment.ID,
		comment.CreatedDate,
		comment.BlogID,
		comment.AuthorID,
		comment.ParentID,
		comment.Content,
	)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			log.Warn("unknown reference during comment creation",
				slog.String("error", err.Error()),
				slog.String("comment_id", comment.ID.String()))
			return mapped
		}
		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return mapped
	}

	log.Info("comment created successfully",
		slog.String("comment_id", comment.ID.String()),
		slog.String("blog_id", comment.BlogID.String()))
	return nil
}

// GetByID implements store.CommentStore.GetByID
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	comment, err := scanComment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found", slog.String("comment_id", id.String()))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to get comment by ID",
			slog.String("error", err.Error()),
			slog.String("comment_id", id.String()))
		return nil, err
	}

	return comment, nil
}

// ListByBlog implements store.CommentStore.ListByBlog
func (s *PostgresCommentStore) ListByBlog(
	ctx context.Context,
	blogID uuid.UUID,
	opts store.ListOptions,
) ([]*domain.Comment, int, error) {
	return s.list(ctx, "blog_post_id", blogID, opts)
}

// ListByAuthor implements store.CommentStore.ListByAuthor
func (s *PostgresCommentStore) ListByAuthor(
	ctx context.Context,
	authorID uuid.UUID,
	opts store.ListOptions,
) ([]*domain.Comment, int, error) {
	return s.list(ctx, "author_id", authorID, opts)
}

func (s *PostgresCommentStore) list(
	ctx context.Context,
	column string,
	id uuid.UUID,
	opts store.ListOptions,
) ([]*domain.Comment, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where := `WHERE ` + column + ` = $1`
	args := []any{id}
	if opts.Search != "" {
		where += ` AND content ILIKE $2`
		args = append(args, "%"+opts.Search+"%")
	}

	countQuery := `SELECT COUNT(*) FROM comments ` + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count comments", slog.String("error", err.Error()))
		return nil, 0, err
	}

	query := `SELECT ` + commentColumns + ` FROM comments ` + where +
		` ORDER BY created_date DESC, id ASC`
	query, args = applyPaging(query, args, opts)

	comments, err := s.queryComments(ctx, log, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// ListChildren implements store.CommentStore.ListChildren
// Replies come back oldest first, which is the order the nested serializer
// presents them in.
func (s *PostgresCommentStore) ListChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + commentColumns + ` FROM comments
		WHERE parent_id = $1
		ORDER BY created_date ASC, id ASC`

	return s.queryComments(ctx, log, query, parentID)
}

func (s *PostgresCommentStore) queryComments(
	ctx context.Context,
	log *slog.Logger,
	query string,
	args ...any,
) ([]*domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query comments", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	comments := []*domain.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return comments, nil
}

// Update implements store.CommentStore.Update
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during update",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return err
	}

	query := `
		UPDATE comments
		SET blog_post_id = $1, author_id = $2, parent_id = $3, content = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		comment.BlogID,
		comment.AuthorID,
		comment.ParentID,
		comment.Content,
		comment.ID,
	)

	if err != nil {
		log.Error("failed to update comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCommentNotFound); err != nil {
		log.Debug("comment not found for update",
			slog.String("comment_id", comment.ID.String()))
		return err
	}

	log.Info("comment updated successfully",
		slog.String("comment_id", comment.ID.String()))
	return nil
}

// Delete implements store.CommentStore.Delete
// Replies cascade at the schema level.
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCommentNotFound); err != nil {
		log.Debug("comment not found for delete",
			slog.String("comment_id", id.String()))
		return err
	}

	log.Info("comment deleted successfully", slog.String("comment_id", id.String()))
	return nil
}
