package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
)

// BlogPostFilter holds the exact-match predicates recognized by the blog
// post list endpoint. Nil pointers mean "not filtered".
type BlogPostFilter struct {
	Status     *domain.PostStatus
	IsFeatured *bool
	AccountID  *uuid.UUID
	AuthorID   *uuid.UUID
}

// BlogPostOrderings lists the fields the blog list endpoint accepts in its
// ordering parameter. A leading '-' selects descending order.
var BlogPostOrderings = []string{
	"created_date",
	"updated_date",
	"published_date",
	"status",
	"title",
}

// BlogPostStore defines the interface for blog post persistence, including
// the category and tag many-to-many sets.
type BlogPostStore interface {
	// Create saves a new blog post together with its category and tag
	// links. Returns ErrInvalidEntity if a referenced account, author,
	// category or tag does not exist.
	Create(ctx context.Context, post *domain.BlogPost) error

	// GetByID retrieves a blog post by its unique ID, with category and
	// tag IDs populated. Returns ErrBlogPostNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)

	// List returns blog posts matching the filter in the given ordering
	// (one of BlogPostOrderings, optionally '-' prefixed; default
	// "-created_date"), applying the search and paging options. The second
	// return value is the total number of matching rows before paging.
	List(ctx context.Context, filter BlogPostFilter, ordering string, opts ListOptions) ([]*domain.BlogPost, int, error)

	// Update persists changes to an existing blog post, replacing its
	// category and tag links. Returns ErrBlogPostNotFound if the post does
	// not exist.
	Update(ctx context.Context, post *domain.BlogPost) error

	// Delete hard-deletes a blog post. Comments on the post are removed by
	// the store's cascade rules. Returns ErrBlogPostNotFound if the post
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
