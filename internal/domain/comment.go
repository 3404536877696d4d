package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxCommentLength bounds comment content, counted in characters.
const MaxCommentLength = 250

// Common validation errors for Comment; all wrap ErrValidation.
var (
	ErrEmptyCommentID      = fmt.Errorf("%w: comment ID cannot be empty", ErrValidation)
	ErrEmptyCommentBlog    = fmt.Errorf("%w: comment blog cannot be empty", ErrValidation)
	ErrEmptyCommentAuthor  = fmt.Errorf("%w: comment author cannot be empty", ErrValidation)
	ErrEmptyCommentContent = fmt.Errorf("%w: comment content cannot be empty", ErrValidation)
	ErrCommentTooLong      = fmt.Errorf("%w: comment content cannot exceed %d characters", ErrValidation, MaxCommentLength)
)

// Comment belongs to a BlogPost and a User, and may reply to another
// Comment. All three references cascade on delete: removing the post, the
// author or the parent removes the comment. Children are serialized
// recursively, ordered by creation time ascending.
type Comment struct {
	ID          uuid.UUID  `json:"id"`
	CreatedDate time.Time  `json:"created_date"`
	BlogID      uuid.UUID  `json:"blog"`
	AuthorID    uuid.UUID  `json:"author"`
	ParentID    *uuid.UUID `json:"parent"`
	Content     string     `json:"content"`
}

// NewComment creates a new Comment with a generated ID and creation
// timestamp. Returns an error if validation fails.
func NewComment(blogID, authorID uuid.UUID, parentID *uuid.UUID, content string) (*Comment, error) {
	comment := &Comment{
		ID:          uuid.New(),
		CreatedDate: time.Now().UTC(),
		BlogID:      blogID,
		AuthorID:    authorID,
		ParentID:    parentID,
		Content:     content,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCommentID
	}

	if c.BlogID == uuid.Nil {
		return ErrEmptyCommentBlog
	}

	if c.AuthorID == uuid.Nil {
		return ErrEmptyCommentAuthor
	}

	if c.Content == "" {
		return ErrEmptyCommentContent
	}

	if utf8.RuneCountInString(c.Content) > MaxCommentLength {
		return ErrCommentTooLong
	}

	return nil
}

// SetValues assigns the given values to the comment's declared fields.
// Unknown keys and values of the wrong type are silently ignored.
// Returns the names of the fields that were assigned.
func (c *Comment) SetValues(values map[string]any) []string {
	assigned := make([]string, 0, len(values))

	for key, value := range values {
		ok := false
		switch key {
		case "blog":
			ok = asUUID(value, &c.BlogID)
		case "author":
			ok = asUUID(value, &c.AuthorID)
		case "parent":
			ok = asOptionalUUID(value, &c.ParentID)
		case "content":
			ok = asString(value, &c.Content)
		}
		if ok {
			assigned = append(assigned, key)
		}
	}

	return assigned
}

// String returns the canonical representation used in logs.
func (c *Comment) String() string {
	return fmt.Sprintf("%s - %s: %s", c.BlogID, c.AuthorID, c.Content)
}
