package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
)

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// Create saves a new comment. Returns ErrInvalidEntity if the
	// referenced blog post, author or parent comment does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by its unique ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// ListByBlog returns comments on the given blog post ordered by
	// creation date descending, applying the search and paging options.
	// The second return value is the total number of matching rows before
	// paging.
	ListByBlog(ctx context.Context, blogID uuid.UUID, opts ListOptions) ([]*domain.Comment, int, error)

	// ListByAuthor returns comments written by the given user ordered by
	// creation date descending, applying the search and paging options.
	ListByAuthor(ctx context.Context, authorID uuid.UUID, opts ListOptions) ([]*domain.Comment, int, error)

	// ListChildren returns the direct replies to the given comment ordered
	// by creation date ascending. Used by the recursive serializer.
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Comment, error)

	// Update persists changes to an existing comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete hard-deletes a comment. Replies are removed by the store's
	// cascade rules. Returns ErrCommentNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
