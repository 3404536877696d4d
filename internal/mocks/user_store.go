package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	ListFn          func(ctx context.Context, filter store.UserFilter, opts store.ListOptions) ([]*domain.User, int, error)
	UpdateFn        func(ctx context.Context, user *domain.User) error

	// Data for default implementation
	Users map[uuid.UUID]*domain.User

	// KnownAccounts, when non-nil, is the set of account IDs the mock
	// accepts as user references. Unknown references fail the way the real
	// store does, with the constraint name attached.
	KnownAccounts map[uuid.UUID]bool
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[uuid.UUID]*domain.User),
	}
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.KnownAccounts != nil && !m.KnownAccounts[user.AccountID] {
		return &store.ForeignKeyError{
			Constraint: "users_account_id_fkey",
			Err:        store.ErrAccountNotFound,
		}
	}

	for _, existing := range m.Users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}

	m.Users[user.ID] = user
	return nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, exists := m.Users[id]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByUsername implements the UserStore interface.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	for _, user := range m.Users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List implements the UserStore interface.
func (m *MockUserStore) List(ctx context.Context, filter store.UserFilter, opts store.ListOptions) ([]*domain.User, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, opts)
	}

	matches := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		if !matchesUserFilter(user, filter) {
			continue
		}
		if !matchesSearch(opts.Search,
			user.Username, user.DisplayName, user.FirstName, user.LastName, user.Bio) {
			continue
		}
		matches = append(matches, user)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].FirstName != matches[j].FirstName {
			return matches[i].FirstName < matches[j].FirstName
		}
		return matches[i].LastName < matches[j].LastName
	})

	total := len(matches)
	return pageSlice(matches, opts), total, nil
}

// Update implements the UserStore interface.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	if _, exists := m.Users[user.ID]; !exists {
		return store.ErrUserNotFound
	}

	for id, existing := range m.Users {
		if id != user.ID && existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}

	m.Users[user.ID] = user
	return nil
}

func matchesUserFilter(user *domain.User, filter store.UserFilter) bool {
	if filter.IsContributor != nil && user.IsContributor != *filter.IsContributor {
		return false
	}
	if filter.IsEditor != nil && user.IsEditor != *filter.IsEditor {
		return false
	}
	if filter.IsBlogOwner != nil && user.IsBlogOwner != *filter.IsBlogOwner {
		return false
	}
	if filter.IsStaff != nil && user.IsStaff != *filter.IsStaff {
		return false
	}
	if filter.IsSuperuser != nil && user.IsSuperuser != *filter.IsSuperuser {
		return false
	}
	if filter.IsActive != nil && user.IsActive != *filter.IsActive {
		return false
	}
	return true
}
