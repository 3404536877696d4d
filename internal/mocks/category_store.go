package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing.
type MockCategoryStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, category *domain.Category) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListFn    func(ctx context.Context, filter store.CategoryFilter, opts store.ListOptions) ([]*domain.Category, int, error)
	UpdateFn  func(ctx context.Context, category *domain.Category) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Categories map[uuid.UUID]*domain.Category

	// ReferencedByPosts marks categories that blog posts link to, making
	// them delete-protected. Child categories protect their parent
	// automatically.
	ReferencedByPosts map[uuid.UUID]bool
}

// NewMockCategoryStore creates a new mock store with initialized defaults.
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{
		Categories:        make(map[uuid.UUID]*domain.Category),
		ReferencedByPosts: make(map[uuid.UUID]bool),
	}
}

// Create implements the CategoryStore interface.
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}

	if category.ParentID != nil {
		if _, exists := m.Categories[*category.ParentID]; !exists {
			return &store.ForeignKeyError{
				Constraint: "categories_parent_id_fkey",
				Err:        store.ErrCategoryNotFound,
			}
		}
	}

	category.BeforeSave()

	for _, existing := range m.Categories {
		if existing.Name == category.Name || existing.Slug == category.Slug {
			return store.ErrCategoryNameExists
		}
	}

	m.Categories[category.ID] = category
	return nil
}

// GetByID implements the CategoryStore interface.
func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	category, exists := m.Categories[id]
	if !exists {
		return nil, store.ErrCategoryNotFound
	}
	return category, nil
}

// List implements the CategoryStore interface.
func (m *MockCategoryStore) List(ctx context.Context, filter store.CategoryFilter, opts store.ListOptions) ([]*domain.Category, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, opts)
	}

	matches := make([]*domain.Category, 0, len(m.Categories))
	for _, category := range m.Categories {
		if filter.ParentID != nil {
			if category.ParentID == nil || *category.ParentID != *filter.ParentID {
				continue
			}
		}
		if !matchesSearch(opts.Search, category.Name, category.Description) {
			continue
		}
		matches = append(matches, category)
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

// Update implements the CategoryStore interface.
func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, category)
	}

	if _, exists := m.Categories[category.ID]; !exists {
		return store.ErrCategoryNotFound
	}

	category.BeforeSave()

	for id, existing := range m.Categories {
		if id != category.ID && (existing.Name == category.Name || existing.Slug == category.Slug) {
			return store.ErrCategoryNameExists
		}
	}

	m.Categories[category.ID] = category
	return nil
}

// Delete implements the CategoryStore interface.
func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Categories[id]; !exists {
		return store.ErrCategoryNotFound
	}

	if m.ReferencedByPosts[id] {
		return store.ErrDeleteProtected
	}
	for _, category := range m.Categories {
		if category.ParentID != nil && *category.ParentID == id {
			return store.ErrDeleteProtected
		}
	}

	delete(m.Categories, id)
	return nil
}
