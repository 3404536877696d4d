package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/kencar17/simple-blog-api/internal/domain"
)

// Request payload structs. Field sets mirror the write side of each
// resource; everything else is only reachable through PUT's partial
// update path.

// CreateAccountRequest defines the payload for creating an account.
// An omitted bio is substituted with the default account bio.
type CreateAccountRequest struct {
	AccountName  string `json:"account_name"  validate:"required,max=250"`
	ContactEmail string `json:"contact_email" validate:"required,email,max=250"`
	Bio          string `json:"bio"           validate:"omitempty,max=500"`
}

// CreateUserRequest defines the payload for creating a user. The password
// is never caller-supplied; a random one is generated server-side.
type CreateUserRequest struct {
	Account       string `json:"account"        validate:"required,uuid"`
	Username      string `json:"username"       validate:"required,email,max=250"`
	DisplayName   string `json:"display_name"   validate:"omitempty,max=250"`
	FirstName     string `json:"first_name"     validate:"omitempty,max=250"`
	LastName      string `json:"last_name"      validate:"omitempty,max=250"`
	Bio           string `json:"bio"            validate:"omitempty,max=500"`
	IsContributor bool   `json:"is_contributor"`
	IsEditor      bool   `json:"is_editor"`
}

// ChangePasswordRequest defines the payload for the password change
// endpoint. Both entries must match and satisfy the password policy.
type ChangePasswordRequest struct {
	PasswordOne string `json:"password_one" validate:"required"`
	PasswordTwo string `json:"password_two" validate:"required"`
}

// CreateBlogPostRequest defines the payload for creating a blog post.
type CreateBlogPostRequest struct {
	Account    string   `json:"account"     validate:"required,uuid"`
	Author     string   `json:"author"      validate:"required,uuid"`
	Status     string   `json:"status"      validate:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
	Title      string   `json:"title"       validate:"required,max=100"`
	Excerpt    string   `json:"excerpt"     validate:"omitempty,max=500"`
	Content    string   `json:"content"     validate:"omitempty,max=10000"`
	Categories []string `json:"categories"  validate:"omitempty,dive,uuid"`
	Tags       []string `json:"tags"        validate:"omitempty,dive,uuid"`
	IsFeatured bool     `json:"is_featured"`
}

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name"        validate:"required,max=250"`
	Description string  `json:"description" validate:"omitempty,max=250"`
	Parent      *string `json:"parent"      validate:"omitempty,uuid"`
}

// CreateTagRequest defines the payload for creating a tag.
type CreateTagRequest struct {
	Name        string `json:"name"        validate:"required,max=250"`
	Description string `json:"description" validate:"omitempty,max=250"`
}

// CreateCommentRequest defines the payload for creating a comment.
type CreateCommentRequest struct {
	Blog    string  `json:"blog"    validate:"required,uuid"`
	Author  string  `json:"author"  validate:"required,uuid"`
	Parent  *string `json:"parent"  validate:"omitempty,uuid"`
	Content string  `json:"content" validate:"required,max=250"`
}

// TokenObtainRequest defines the payload for the token obtain endpoint.
type TokenObtainRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenRefreshRequest defines the payload for the token refresh endpoint.
type TokenRefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// Response serializer structs. Most resources serialize straight off the
// domain types; the ones below need a different shape on the wire.

// MessageResponse is the fixed-message success content used by destroy
// and password change operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// CategoryRef is the nested parent reference inside a category response.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CategoryResponse serializes a category with its parent nested as a
// {id, name} reference, or null when the category is a root.
type CategoryResponse struct {
	ID          uuid.UUID    `json:"id"`
	CreatedDate time.Time    `json:"created_date"`
	UpdatedDate *time.Time   `json:"updated_date"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Slug        string       `json:"slug"`
	Parent      *CategoryRef `json:"parent"`
}

// BlogPostExcerptResponse is the list-side blog post serializer: the full
// shape minus the content body.
type BlogPostExcerptResponse struct {
	ID            uuid.UUID         `json:"id"`
	AccountID     uuid.UUID         `json:"account"`
	AuthorID      uuid.UUID         `json:"author"`
	CreatedDate   time.Time         `json:"created_date"`
	UpdatedDate   *time.Time        `json:"updated_date"`
	PublishedDate *time.Time        `json:"published_date"`
	Status        domain.PostStatus `json:"status"`
	Views         int               `json:"views"`
	Likes         int               `json:"likes"`
	Dislikes      int               `json:"dislikes"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Excerpt       string            `json:"excerpt"`
	CategoryIDs   []uuid.UUID       `json:"categories"`
	TagIDs        []uuid.UUID       `json:"tags"`
	IsFeatured    bool              `json:"is_featured"`
}

// NewBlogPostExcerptResponse builds the excerpt serializer for a post.
func NewBlogPostExcerptResponse(post *domain.BlogPost) BlogPostExcerptResponse {
	return BlogPostExcerptResponse{
		ID:            post.ID,
		AccountID:     post.AccountID,
		AuthorID:      post.AuthorID,
		CreatedDate:   post.CreatedDate,
		UpdatedDate:   post.UpdatedDate,
		PublishedDate: post.PublishedDate,
		Status:        post.Status,
		Views:         post.Views,
		Likes:         post.Likes,
		Dislikes:      post.Dislikes,
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		CategoryIDs:   post.CategoryIDs,
		TagIDs:        post.TagIDs,
		IsFeatured:    post.IsFeatured,
	}
}

// CommentResponse serializes a comment with its replies nested
// recursively, oldest reply first.
type CommentResponse struct {
	ID          uuid.UUID         `json:"id"`
	CreatedDate time.Time         `json:"created_date"`
	BlogID      uuid.UUID         `json:"blog"`
	AuthorID    uuid.UUID         `json:"author"`
	ParentID    *uuid.UUID        `json:"parent"`
	Content     string            `json:"content"`
	Children    []CommentResponse `json:"children"`
}

// TokenObtainResponse is the content of a successful token obtain. The
// iat and expiry values are the refresh token's, as unix seconds.
type TokenObtainResponse struct {
	Refresh  string `json:"refresh"`
	Access   string `json:"access"`
	IssuedAt int64  `json:"iat"`
	Expiry   int64  `json:"expiry"`
}

// TokenRefreshResponse is the content of a successful token refresh. The
// rotation fields are present only when refresh token rotation is enabled.
type TokenRefreshResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh,omitempty"`
	IssuedAt int64  `json:"iat,omitempty"`
	Expiry   int64  `json:"expiry,omitempty"`
}
