package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
)

// CategoryFilter holds the exact-match predicates recognized by the
// category list endpoint.
type CategoryFilter struct {
	// ParentID filters categories to the children of the given category.
	ParentID *uuid.UUID
}

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category. Returns ErrCategoryNameExists if the
	// name or derived slug is already taken, and ErrInvalidEntity if the
	// parent category does not exist.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// List returns categories matching the filter, ordered by creation
	// date descending then name, applying the search and paging options.
	// The second return value is the total number of matching rows before
	// paging.
	List(ctx context.Context, filter CategoryFilter, opts ListOptions) ([]*domain.Category, int, error)

	// Update persists changes to an existing category.
	// Returns ErrCategoryNotFound if it does not exist and
	// ErrCategoryNameExists on a name or slug collision.
	Update(ctx context.Context, category *domain.Category) error

	// Delete hard-deletes a category. Returns ErrDeleteProtected while
	// subcategories or blog posts still reference it, and
	// ErrCategoryNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
