package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// MockTagStore implements store.TagStore for testing.
type MockTagStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, tag *domain.Tag) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	ListFn    func(ctx context.Context, opts store.ListOptions) ([]*domain.Tag, int, error)
	UpdateFn  func(ctx context.Context, tag *domain.Tag) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Tags map[uuid.UUID]*domain.Tag

	// ReferencedByPosts marks tags that blog posts link to, making them
	// delete-protected.
	ReferencedByPosts map[uuid.UUID]bool
}

// NewMockTagStore creates a new mock store with initialized defaults.
func NewMockTagStore() *MockTagStore {
	return &MockTagStore{
		Tags:              make(map[uuid.UUID]*domain.Tag),
		ReferencedByPosts: make(map[uuid.UUID]bool),
	}
}

// Create implements the TagStore interface.
func (m *MockTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, tag)
	}

	tag.BeforeSave()

	for _, existing := range m.Tags {
		if existing.Name == tag.Name || existing.Slug == tag.Slug {
			return store.ErrTagNameExists
		}
	}

	m.Tags[tag.ID] = tag
	return nil
}

// GetByID implements the TagStore interface.
func (m *MockTagStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	tag, exists := m.Tags[id]
	if !exists {
		return nil, store.ErrTagNotFound
	}
	return tag, nil
}

// List implements the TagStore interface.
func (m *MockTagStore) List(ctx context.Context, opts store.ListOptions) ([]*domain.Tag, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, opts)
	}

	matches := make([]*domain.Tag, 0, len(m.Tags))
	for _, tag := range m.Tags {
		if matchesSearch(opts.Search, tag.Name, tag.Description) {
			matches = append(matches, tag)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedDate.Equal(matches[j].CreatedDate) {
			return matches[i].CreatedDate.After(matches[j].CreatedDate)
		}
		return matches[i].Name < matches[j].Name
	})

	total := len(matches)
	return pageSlice(matches, opts), total, nil
}

// Update implements the TagStore interface.
func (m *MockTagStore) Update(ctx context.Context, tag *domain.Tag) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, tag)
	}

	if _, exists := m.Tags[tag.ID]; !exists {
		return store.ErrTagNotFound
	}

	tag.BeforeSave()

	for id, existing := range m.Tags {
		if id != tag.ID && (existing.Name == tag.Name || existing.Slug == tag.Slug) {
			return store.ErrTagNameExists
		}
	}

	m.Tags[tag.ID] = tag
	return nil
}

// Delete implements the TagStore interface.
func (m *MockTagStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tags[id]; !exists {
		return store.ErrTagNotFound
	}

	if m.ReferencedByPosts[id] {
		return store.ErrDeleteProtected
	}

	delete(m.Tags, id)
	return nil
}
