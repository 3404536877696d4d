package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Common validation errors for Category; all wrap ErrValidation.
var (
	ErrEmptyCategoryID   = fmt.Errorf("%w: category ID cannot be empty", ErrValidation)
	ErrEmptyCategoryName = fmt.Errorf("%w: category name cannot be empty", ErrValidation)
)

// Category is a self-referencing tree node. A category may have a parent
// category; the parent reference is delete-protected by the store, so a
// category cannot be removed while subcategories point at it.
type Category struct {
	ID          uuid.UUID  `json:"id"`
	CreatedDate time.Time  `json:"created_date"`
	UpdatedDate *time.Time `json:"updated_date"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Slug        string     `json:"slug"`
	ParentID    *uuid.UUID `json:"parent"`
}

// NewCategory creates a new Category with a generated ID and creation
// timestamp. The slug is derived on save, not here.
func NewCategory(name, description string, parentID *uuid.UUID) (*Category, error) {
	category := &Category{
		ID:          uuid.New(),
		CreatedDate: time.Now().UTC(),
		Name:        name,
		Description: description,
		ParentID:    parentID,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCategoryID
	}

	if c.Name == "" {
		return ErrEmptyCategoryName
	}

	return nil
}

// BeforeSave recomputes the slug from the name and refreshes the update
// timestamp. Stores call this on every persist, so the slug always tracks
// the name even when the name did not change this save.
func (c *Category) BeforeSave() {
	now := time.Now().UTC()
	c.UpdatedDate = &now
	c.Slug = slug.Make(c.Name)
}

// SetValues assigns the given values to the category's declared fields.
// Unknown keys and values of the wrong type are silently ignored.
// Returns the names of the fields that were assigned.
func (c *Category) SetValues(values map[string]any) []string {
	assigned := make([]string, 0, len(values))

	for key, value := range values {
		ok := false
		switch key {
		case "name":
			ok = asString(value, &c.Name)
		case "description":
			ok = asString(value, &c.Description)
		case "parent":
			ok = asOptionalUUID(value, &c.ParentID)
		}
		if ok {
			assigned = append(assigned, key)
		}
	}

	return assigned
}

// String returns the canonical representation used in logs.
func (c *Category) String() string {
	return c.Name
}
