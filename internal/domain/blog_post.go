package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// PostStatus represents the publication state of a blog post.
type PostStatus string

// Possible blog post status values
const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
	PostStatusArchived  PostStatus = "ARCHIVED"
)

// Common validation errors for BlogPost; all wrap ErrValidation.
var (
	ErrEmptyPostID       = fmt.Errorf("%w: blog post ID cannot be empty", ErrValidation)
	ErrEmptyPostAccount  = fmt.Errorf("%w: blog post account cannot be empty", ErrValidation)
	ErrEmptyPostAuthor   = fmt.Errorf("%w: blog post author cannot be empty", ErrValidation)
	ErrEmptyPostTitle    = fmt.Errorf("%w: blog post title cannot be empty", ErrValidation)
	ErrInvalidPostStatus = fmt.Errorf("%w: invalid blog post status", ErrValidation)
)

// BlogPost is a post published under an Account by a User. Both references
// are delete-protected by the store. Categories and tags are many-to-many
// and carried here as ID slices.
type BlogPost struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account"`
	AuthorID  uuid.UUID `json:"author"`

	CreatedDate   time.Time  `json:"created_date"`
	UpdatedDate   *time.Time `json:"updated_date"`
	PublishedDate *time.Time `json:"published_date"`

	Status   PostStatus `json:"status"`
	Views    int        `json:"views"`
	Likes    int        `json:"likes"`
	Dislikes int        `json:"dislikes"`

	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`

	CategoryIDs []uuid.UUID `json:"categories"`
	TagIDs      []uuid.UUID `json:"tags"`

	IsFeatured bool `json:"is_featured"`
}

// NewBlogPost creates a new BlogPost with a generated ID and creation
// timestamp. The slug is derived on save, not here.
func NewBlogPost(accountID, authorID uuid.UUID, title string, status PostStatus) (*BlogPost, error) {
	post := &BlogPost{
		ID:          uuid.New(),
		AccountID:   accountID,
		AuthorID:    authorID,
		CreatedDate: time.Now().UTC(),
		Status:      status,
		Title:       title,
		CategoryIDs: []uuid.UUID{},
		TagIDs:      []uuid.UUID{},
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the BlogPost has valid data.
func (p *BlogPost) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPostID
	}

	if p.AccountID == uuid.Nil {
		return ErrEmptyPostAccount
	}

	if p.AuthorID == uuid.Nil {
		return ErrEmptyPostAuthor
	}

	if p.Title == "" {
		return ErrEmptyPostTitle
	}

	if !isValidPostStatus(p.Status) {
		return ErrInvalidPostStatus
	}

	return nil
}

// BeforeSave recomputes the slug from the title and refreshes the update
// timestamp. Stores call this on every persist.
func (p *BlogPost) BeforeSave() {
	now := time.Now().UTC()
	p.UpdatedDate = &now
	p.Slug = slug.Make(p.Title)
}

// SetValues assigns the given values to the post's declared fields.
// Unknown keys and values of the wrong type are silently ignored.
// Returns the names of the fields that were assigned.
func (p *BlogPost) SetValues(values map[string]any) []string {
	assigned := make([]string, 0, len(values))

	for key, value := range values {
		ok := false
		switch key {
		case "account":
			ok = asUUID(value, &p.AccountID)
		case "author":
			ok = asUUID(value, &p.AuthorID)
		case "status":
			var status string
			if ok = asString(value, &status); ok {
				p.Status = PostStatus(status)
			}
		case "published_date":
			ok = asOptionalTime(value, &p.PublishedDate)
		case "views":
			ok = asInt(value, &p.Views)
		case "likes":
			ok = asInt(value, &p.Likes)
		case "dislikes":
			ok = asInt(value, &p.Dislikes)
		case "title":
			ok = asString(value, &p.Title)
		case "excerpt":
			ok = asString(value, &p.Excerpt)
		case "content":
			ok = asString(value, &p.Content)
		case "categories":
			ok = asUUIDSlice(value, &p.CategoryIDs)
		case "tags":
			ok = asUUIDSlice(value, &p.TagIDs)
		case "is_featured":
			ok = asBool(value, &p.IsFeatured)
		}
		if ok {
			assigned = append(assigned, key)
		}
	}

	return assigned
}

// String returns the canonical representation used in logs.
func (p *BlogPost) String() string {
	return fmt.Sprintf("%s - %s: %s", p.AccountID, p.AuthorID, p.Title)
}

// isValidPostStatus checks if the given status is a valid PostStatus.
func isValidPostStatus(status PostStatus) bool {
	switch status {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	default:
		return false
	}
}
