package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
)

// TagStore defines the interface for tag persistence.
type TagStore interface {
	// Create saves a new tag. Returns ErrTagNameExists if the name or
	// derived slug is already taken.
	Create(ctx context.Context, tag *domain.Tag) error

	// GetByID retrieves a tag by its unique ID.
	// Returns ErrTagNotFound if the tag does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)

	// List returns tags ordered by creation date descending then name,
	// applying the search and paging options. The second return value is
	// the total number of matching rows before paging.
	List(ctx context.Context, opts ListOptions) ([]*domain.Tag, int, error)

	// Update persists changes to an existing tag.
	// Returns ErrTagNotFound if it does not exist and ErrTagNameExists on
	// a name or slug collision.
	Update(ctx context.Context, tag *domain.Tag) error

	// Delete hard-deletes a tag. Returns ErrDeleteProtected while blog
	// posts still reference it, and ErrTagNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
