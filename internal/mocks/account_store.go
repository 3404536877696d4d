package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing.
type MockAccountStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, account *domain.Account) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListFn    func(ctx context.Context, opts store.ListOptions) ([]*domain.Account, int, error)
	UpdateFn  func(ctx context.Context, account *domain.Account) error

	// Data for default implementation
	Accounts map[uuid.UUID]*domain.Account
}

// NewMockAccountStore creates a new mock store with initialized defaults.
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		Accounts: make(map[uuid.UUID]*domain.Account),
	}
}

// Create implements the AccountStore interface.
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	for _, existing := range m.Accounts {
		if existing.AccountName == account.AccountName {
			return store.ErrAccountNameExists
		}
	}

	m.Accounts[account.ID] = account
	return nil
}

// GetByID implements the AccountStore interface.
func (m *MockAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	account, exists := m.Accounts[id]
	if !exists {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

// List implements the AccountStore interface.
func (m *MockAccountStore) List(ctx context.Context, opts store.ListOptions) ([]*domain.Account, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, opts)
	}

	matches := make([]*domain.Account, 0, len(m.Accounts))
	for _, account := range m.Accounts {
		if matchesSearch(opts.Search, account.AccountName, account.Bio, account.ContactEmail) {
			matches = append(matches, account)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedDate.Equal(matches[j].CreatedDate) {
			return matches[i].CreatedDate.After(matches[j].CreatedDate)
		}
		return matches[i].AccountName < matches[j].AccountName
	})

	total := len(matches)
	return pageSlice(matches, opts), total, nil
}

// Update implements the AccountStore interface.
func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, account)
	}

	if _, exists := m.Accounts[account.ID]; !exists {
		return store.ErrAccountNotFound
	}

	for id, existing := range m.Accounts {
		if id != account.ID && existing.AccountName == account.AccountName {
			return store.ErrAccountNameExists
		}
	}

	m.Accounts[account.ID] = account
	return nil
}
