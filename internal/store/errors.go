package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic form of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a uniqueness
	// constraint (account name, username, category/tag name or slug).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or references a row that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrDeleteProtected is returned when a delete is blocked because other
	// rows still reference the entity through a protected foreign key.
	ErrDeleteProtected = errors.New("entity is referenced and cannot be deleted")

	// Entity-specific "not found" errors

	ErrAccountNotFound  = fmt.Errorf("%w: account", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrBlogPostNotFound = fmt.Errorf("%w: blog post", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)
	ErrTagNotFound      = fmt.Errorf("%w: tag", ErrNotFound)
	ErrCommentNotFound  = fmt.Errorf("%w: comment", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrAccountNameExists indicates an account with the given name exists.
	ErrAccountNameExists = fmt.Errorf("%w: account name", ErrDuplicate)

	// ErrUsernameExists indicates a user with the given username exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrCategoryNameExists indicates a category with the given name or
	// slug exists.
	ErrCategoryNameExists = fmt.Errorf("%w: category name", ErrDuplicate)

	// ErrTagNameExists indicates a tag with the given name or slug exists.
	ErrTagNameExists = fmt.Errorf("%w: tag name", ErrDuplicate)
)

// ForeignKeyError reports a foreign key violation with the constraint that
// tripped, so callers can attribute the failure to an input field.
// It unwraps to ErrInvalidEntity.
type ForeignKeyError struct {
	Constraint string
	Err        error
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("%v: foreign key violation (%s): %v", ErrInvalidEntity, e.Constraint, e.Err)
}

func (e *ForeignKeyError) Unwrap() error {
	return ErrInvalidEntity
}

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
