package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Common validation errors for Tag; all wrap ErrValidation.
var (
	ErrEmptyTagID   = fmt.Errorf("%w: tag ID cannot be empty", ErrValidation)
	ErrEmptyTagName = fmt.Errorf("%w: tag name cannot be empty", ErrValidation)
)

// Tag is a flat label for blog posts. It follows the same slug derivation
// rule as Category but has no hierarchy.
type Tag struct {
	ID          uuid.UUID  `json:"id"`
	CreatedDate time.Time  `json:"created_date"`
	UpdatedDate *time.Time `json:"updated_date"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Slug        string     `json:"slug"`
}

// NewTag creates a new Tag with a generated ID and creation timestamp.
func NewTag(name, description string) (*Tag, error) {
	tag := &Tag{
		ID:          uuid.New(),
		CreatedDate: time.Now().UTC(),
		Name:        name,
		Description: description,
	}

	if err := tag.Validate(); err != nil {
		return nil, err
	}

	return tag, nil
}

// Validate checks if the Tag has valid data.
func (t *Tag) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTagID
	}

	if t.Name == "" {
		return ErrEmptyTagName
	}

	return nil
}

// BeforeSave recomputes the slug from the name and refreshes the update
// timestamp. Called by stores on every persist.
func (t *Tag) BeforeSave() {
	now := time.Now().UTC()
	t.UpdatedDate = &now
	t.Slug = slug.Make(t.Name)
}

// SetValues assigns the given values to the tag's declared fields.
// Unknown keys and values of the wrong type are silently ignored.
// Returns the names of the fields that were assigned.
func (t *Tag) SetValues(values map[string]any) []string {
	assigned := make([]string, 0, len(values))

	for key, value := range values {
		ok := false
		switch key {
		case "name":
			ok = asString(value, &t.Name)
		case "description":
			ok = asString(value, &t.Description)
		}
		if ok {
			assigned = append(assigned, key)
		}
	}

	return assigned
}

// String returns the canonical representation used in logs.
func (t *Tag) String() string {
	return t.Name
}
