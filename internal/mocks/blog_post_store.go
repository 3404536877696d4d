package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
	"github.com/kencar17/simple-blog-api/internal/store"
)

// MockBlogPostStore implements store.BlogPostStore for testing.
type MockBlogPostStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, post *domain.BlogPost) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	ListFn    func(ctx context.Context, filter store.BlogPostFilter, ordering string, opts store.ListOptions) ([]*domain.BlogPost, int, error)
	UpdateFn  func(ctx context.Context, post *domain.BlogPost) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Posts map[uuid.UUID]*domain.BlogPost

	// Known* sets, when non-nil, are the reference targets the mock
	// accepts. Unknown references fail with the matching constraint name.
	KnownAccounts   map[uuid.UUID]bool
	KnownUsers      map[uuid.UUID]bool
	KnownCategories map[uuid.UUID]bool
	KnownTags       map[uuid.UUID]bool
}

// NewMockBlogPostStore creates a new mock store with initialized defaults.
func NewMockBlogPostStore() *MockBlogPostStore {
	return &MockBlogPostStore{
		Posts: make(map[uuid.UUID]*domain.BlogPost),
	}
}

// Create implements the BlogPostStore interface.
func (m *MockBlogPostStore) Create(ctx context.Context, post *domain.BlogPost) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	if err := m.checkReferences(post); err != nil {
		return err
	}

	post.BeforeSave()
	m.Posts[post.ID] = post
	return nil
}

// GetByID implements the BlogPostStore interface.
func (m *MockBlogPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	post, exists := m.Posts[id]
	if !exists {
		return nil, store.ErrBlogPostNotFound
	}
	return post, nil
}

// List implements the BlogPostStore interface.
func (m *MockBlogPostStore) List(ctx context.Context, filter store.BlogPostFilter, ordering string, opts store.ListOptions) ([]*domain.BlogPost, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, ordering, opts)
	}

	matches := make([]*domain.BlogPost, 0, len(m.Posts))
	for _, post := range m.Posts {
		if !matchesBlogPostFilter(post, filter) {
			continue
		}
		if !matchesSearch(opts.Search, post.Title, post.Excerpt) {
			continue
		}
		matches = append(matches, post)
	}

	sortBlogPosts(matches, ordering)

	total := len(matches)
	return pageSlice(matches, opts), total, nil
}

// Update implements the BlogPostStore interface.
func (m *MockBlogPostStore) Update(ctx context.Context, post *domain.BlogPost) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, post)
	}

	if _, exists := m.Posts[post.ID]; !exists {
		return store.ErrBlogPostNotFound
	}

	if err := m.checkReferences(post); err != nil {
		return err
	}

	post.BeforeSave()
	m.Posts[post.ID] = post
	return nil
}

// Delete implements the BlogPostStore interface.
func (m *MockBlogPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Posts[id]; !exists {
		return store.ErrBlogPostNotFound
	}

	delete(m.Posts, id)
	return nil
}

func (m *MockBlogPostStore) checkReferences(post *domain.BlogPost) error {
	if m.KnownAccounts != nil && !m.KnownAccounts[post.AccountID] {
		return &store.ForeignKeyError{
			Constraint: "blog_posts_account_id_fkey",
			Err:        store.ErrAccountNotFound,
		}
	}
	if m.KnownUsers != nil && !m.KnownUsers[post.AuthorID] {
		return &store.ForeignKeyError{
			Constraint: "blog_posts_author_id_fkey",
			Err:        store.ErrUserNotFound,
		}
	}
	if m.KnownCategories != nil {
		for _, id := range post.CategoryIDs {
			if !m.KnownCategories[id] {
				return &store.ForeignKeyError{
					Constraint: "blog_post_categories_category_id_fkey",
					Err:        store.ErrCategoryNotFound,
				}
			}
		}
	}
	if m.KnownTags != nil {
		for _, id := range post.TagIDs {
			if !m.KnownTags[id] {
				return &store.ForeignKeyError{
					Constraint: "blog_post_tags_tag_id_fkey",
					Err:        store.ErrTagNotFound,
				}
			}
		}
	}
	return nil
}

func matchesBlogPostFilter(post *domain.BlogPost, filter store.BlogPostFilter) bool {
	if filter.Status != nil && post.Status != *filter.Status {
		return false
	}
	if filter.IsFeatured != nil && post.IsFeatured != *filter.IsFeatured {
		return false
	}
	if filter.AccountID != nil && post.AccountID != *filter.AccountID {
		return false
	}
	if filter.AuthorID != nil && post.AuthorID != *filter.AuthorID {
		return false
	}
	return true
}

// sortBlogPosts orders the posts per the ordering parameter, mirroring the
// real store: one of store.BlogPostOrderings with an optional '-' prefix
// for descending order, and "-created_date" for anything else.
func sortBlogPosts(posts []*domain.BlogPost, ordering string) {
	field := strings.TrimPrefix(ordering, "-")
	desc := strings.HasPrefix(ordering, "-")

	valid := false
	for _, allowed := range store.BlogPostOrderings {
		if field == allowed {
			valid = true
			break
		}
	}
	if !valid {
		field = "created_date"
		desc = true
	}

	less := func(i, j *domain.BlogPost) bool {
		switch field {
		case "updated_date":
			return optionalTimeBefore(i.UpdatedDate, j.UpdatedDate)
		case "published_date":
			return optionalTimeBefore(i.PublishedDate, j.PublishedDate)
		case "status":
			return i.Status < j.Status
		case "title":
			return i.Title < j.Title
		default:
			return i.CreatedDate.Before(j.CreatedDate)
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if desc {
			return less(posts[j], posts[i])
		}
		return less(posts[i], posts[j])
	})
}

// optionalTimeBefore orders nil timestamps first, the way NULLS FIRST does
// in the ascending case.
func optionalTimeBefore(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}
