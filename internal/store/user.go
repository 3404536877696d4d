package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
)

// UserFilter holds the exact-match predicates recognized by the user list
// endpoint. Nil pointers mean "not filtered".
type UserFilter struct {
	IsContributor *bool
	IsEditor      *bool
	IsBlogOwner   *bool
	IsStaff       *bool
	IsSuperuser   *bool
	IsActive      *bool
}

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user. The user must carry a hashed password.
	// Returns ErrUsernameExists if the username is already taken and
	// ErrInvalidEntity if the referenced account does not exist.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username (login identifier).
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns users matching the filter, ordered by first then last
	// name, applying the search and paging options. The second return
	// value is the total number of matching rows before paging.
	List(ctx context.Context, filter UserFilter, opts ListOptions) ([]*domain.User, int, error)

	// Update persists changes to an existing user, including the hashed
	// password. Returns ErrUserNotFound if the user does not exist and
	// ErrUsernameExists on a username collision.
	Update(ctx context.Context, user *domain.User) error
}
