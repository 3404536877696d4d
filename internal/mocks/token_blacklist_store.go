package mocks

import (
	"context"
	"time"
)

// MockTokenBlacklistStore implements store.TokenBlacklistStore for testing.
type MockTokenBlacklistStore struct {
	// Function fields for customizable behavior
	AddFn          func(ctx context.Context, jti string, expiresAt time.Time) error
	ContainsFn     func(ctx context.Context, jti string) (bool, error)
	PurgeExpiredFn func(ctx context.Context, now time.Time) (int, error)

	// Data for default implementation
	Entries map[string]time.Time
}

// NewMockTokenBlacklistStore creates a new mock store with initialized
// defaults.
func NewMockTokenBlacklistStore() *MockTokenBlacklistStore {
	return &MockTokenBlacklistStore{
		Entries: make(map[string]time.Time),
	}
}

// Add implements the TokenBlacklistStore interface.
func (m *MockTokenBlacklistStore) Add(ctx context.Context, jti string, expiresAt time.Time) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, jti, expiresAt)
	}

	m.Entries[jti] = expiresAt
	return nil
}

// Contains implements the TokenBlacklistStore interface.
func (m *MockTokenBlacklistStore) Contains(ctx context.Context, jti string) (bool, error) {
	if m.ContainsFn != nil {
		return m.ContainsFn(ctx, jti)
	}

	_, exists := m.Entries[jti]
	return exists, nil
}

// PurgeExpired implements the TokenBlacklistStore interface.
func (m *MockTokenBlacklistStore) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	if m.PurgeExpiredFn != nil {
		return m.PurgeExpiredFn(ctx, now)
	}

	removed := 0
	for jti, expiresAt := range m.Entries {
		if !expiresAt.After(now) {
			delete(m.Entries, jti)
			removed++
		}
	}
	return removed, nil
}
