package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
)

// AccountStore defines the interface for account persistence.
type AccountStore interface {
	// Create saves a new account.
	// Returns ErrAccountNameExists if the account name is already taken.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// List returns accounts ordered by creation date descending then
	// account name, applying the search and paging options. The second
	// return value is the total number of matching rows before paging.
	List(ctx context.Context, opts ListOptions) ([]*domain.Account, int, error)

	// Update persists changes to an existing account.
	// Returns ErrAccountNotFound if the account does not exist and
	// ErrAccountNameExists on a name collision.
	Update(ctx context.Context, account *domain.Account) error
}
