package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing.
type MockCommentStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, comment *domain.Comment) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByBlogFn   func(ctx context.Context, blogID uuid.UUID, opts store.ListOptions) ([]*domain.Comment, int, error)
	ListByAuthorFn func(ctx context.Context, authorID uuid.UUID, opts store.ListOptions) ([]*domain.Comment, int, error)
	ListChildrenFn func(ctx context.Context, parentID uuid.UUID) ([]*domain.Comment, error)
	UpdateFn       func(ctx context.Context, comment *domain.Comment) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Comments map[uuid.UUID]*domain.Comment

	// Known* sets, when non-nil, are the reference targets the mock
	// accepts. Parent comments are always checked against Comments itself.
	KnownBlogs map[uuid.UUID]bool
	KnownUsers map[uuid.UUID]bool
}

// NewMockCommentStore creates a new mock store with initialized defaults.
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{
		Comments: make(map[uuid.UUID]*domain.Comment),
	}
}

// Create implements the CommentStore interface.
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	if m.KnownBlogs != nil && !m.KnownBlogs[comment.BlogID] {
		return &store.ForeignKeyError{
			Constraint: "comments_blog_post_id_fkey",
			Err:        store.ErrBlogPostNotFound,
		}
	}
	if m.KnownUsers != nil && !m.KnownUsers[comment.AuthorID] {
		return &store.ForeignKeyError{
			Constraint: "comments_author_id_fkey",
			Err:        store.ErrUserNotFound,
		}
	}
	if comment.ParentID != nil {
		if _, exists := m.Comments[*comment.ParentID]; !exists {
			return &store.ForeignKeyError{
				Constraint: "comments_parent_id_fkey",
				Err:        store.ErrCommentNotFound,
			}
		}
	}

	m.Comments[comment.ID] = comment
	return nil
}

// GetByID implements the CommentStore interface.
func (m *MockCommentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	comment, exists := m.Comments[id]
	if !exists {
		return nil, store.ErrCommentNotFound
	}
	return comment, nil
}

// ListByBlog implements the CommentStore interface.
func (m *MockCommentStore) ListByBlog(ctx context.Context, blogID uuid.UUID, opts store.ListOptions) ([]*domain.Comment, int, error) {
	if m.ListByBlogFn != nil {
		return m.ListByBlogFn(ctx, blogID, opts)
	}

	return m.list(func(c *domain.Comment) bool { return c.BlogID == blogID }, opts)
}

// ListByAuthor implements the CommentStore interface.
func (m *MockCommentStore) ListByAuthor(ctx context.Context, authorID uuid.UUID, opts store.ListOptions) ([]*domain.Comment, int, error) {
	if m.ListByAuthorFn != nil {
		return m.ListByAuthorFn(ctx, authorID, opts)
	}

	return m.list(func(c *domain.Comment) bool { return c.AuthorID == authorID }, opts)
}

// ListChildren implements the CommentStore interface.
func (m *MockCommentStore) ListChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Comment, error) {
	if m.ListChildrenFn != nil {
		return m.ListChildrenFn(ctx, parentID)
	}

	children := []*domain.Comment{}
	for _, comment := range m.Comments {
		if comment.ParentID != nil && *comment.ParentID == parentID {
			children = append(children, comment)
		}
	}

	sort.Slice(children, func(i, j int) bool {
		return children[i].CreatedDate.Before(children[j].CreatedDate)
	})
	return children, nil
}

// Update implements the CommentStore interface.
func (m *MockCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, comment)
	}

	if _, exists := m.Comments[comment.ID]; !exists {
		return store.ErrCommentNotFound
	}

	m.Comments[comment.ID] = comment
	return nil
}

// Delete implements the CommentStore interface. Replies cascade.
func (m *MockCommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Comments[id]; !exists {
		return store.ErrCommentNotFound
	}

	m.cascadeDelete(id)
	return nil
}

func (m *MockCommentStore) cascadeDelete(id uuid.UUID) {
	delete(m.Comments, id)
	for childID, comment := range m.Comments {
		if comment.ParentID != nil && *comment.ParentID == id {
			m.cascadeDelete(childID)
		}
	}
}

func (m *MockCommentStore) list(match func(*domain.Comment) bool, opts store.ListOptions) ([]*domain.Comment, int, error) {
	matches := make([]*domain.Comment, 0, len(m.Comments))
	for _, comment := range m.Comments {
		if !match(comment) {
			continue
		}
		if !matchesSearch(opts.Search, comment.Content) {
			continue
		}
		matches = append(matches, comment)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedDate.After(matches[j].CreatedDate)
	})

	total := len(matches)
	return pageSlice(matches, opts), total, nil
}
