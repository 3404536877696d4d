package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// Common validation errors for User; all wrap ErrValidation.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyUserAccount    = fmt.Errorf("%w: user account cannot be empty", ErrValidation)
	ErrEmptyUsername       = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrInvalidUsername     = fmt.Errorf("%w: username must be a valid email address", ErrValidation)
	ErrSuperuserNotStaff   = fmt.Errorf("%w: superuser must have is_staff=true and is_superuser=true", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// passwordAllowedChars is the alphabet for generated passwords. Ambiguous
// characters (l, o, O) are excluded.
const passwordAllowedChars = "abcdefghijkmnpqrstuvwxyzABCDEFGHIJKLMNPQRSTUVWXYZ0123456789!@#$%^&*;:"

// GeneratedPasswordLength is the length of auto-generated user passwords.
const GeneratedPasswordLength = 16

// User is a member of exactly one Account. The username is email-shaped
// and doubles as the login identifier. The password is stored hashed and
// never serialized.
type User struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Bio         string    `json:"bio"`

	IsContributor bool `json:"is_contributor"`
	IsEditor      bool `json:"is_editor"`
	IsBlogOwner   bool `json:"is_blog_owner"`
	IsActive      bool `json:"is_active"`
	IsStaff       bool `json:"is_staff"`
	IsSuperuser   bool `json:"is_superuser"`

	HashedPassword string `json:"-"`
}

// NewUser creates a new active User belonging to the given account.
// The caller is responsible for setting the hashed password before the
// user is persisted. Returns an error if validation fails.
func NewUser(accountID uuid.UUID, username string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		AccountID: accountID,
		Username:  username,
		IsActive:  true,
	}

	if err := user.validateIdentity(); err != nil {
		return nil, err
	}

	return user, nil
}

// NewSuperuser creates a new superuser. Superusers always carry both the
// staff and superuser flags; creating one without both is not possible.
func NewSuperuser(accountID uuid.UUID, username string) (*User, error) {
	user, err := NewUser(accountID, username)
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true

	return user, nil
}

// Validate checks if the User has valid data, including the invariant
// that a superuser must also be staff.
func (u *User) Validate() error {
	if err := u.validateIdentity(); err != nil {
		return err
	}

	if u.IsSuperuser && !u.IsStaff {
		return ErrSuperuserNotStaff
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

func (u *User) validateIdentity() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.AccountID == uuid.Nil {
		return ErrEmptyUserAccount
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if !validateEmailFormat(u.Username) {
		return ErrInvalidUsername
	}

	return nil
}

// SetValues assigns the given values to the user's declared fields.
// Unknown keys and values of the wrong type are silently ignored.
// Returns the names of the fields that were assigned.
func (u *User) SetValues(values map[string]any) []string {
	assigned := make([]string, 0, len(values))

	for key, value := range values {
		ok := false
		switch key {
		case "account":
			ok = asUUID(value, &u.AccountID)
		case "username":
			ok = asString(value, &u.Username)
		case "display_name":
			ok = asString(value, &u.DisplayName)
		case "first_name":
			ok = asString(value, &u.FirstName)
		case "last_name":
			ok = asString(value, &u.LastName)
		case "bio":
			ok = asString(value, &u.Bio)
		case "is_contributor":
			ok = asBool(value, &u.IsContributor)
		case "is_editor":
			ok = asBool(value, &u.IsEditor)
		case "is_blog_owner":
			ok = asBool(value, &u.IsBlogOwner)
		case "is_active":
			ok = asBool(value, &u.IsActive)
		case "is_staff":
			ok = asBool(value, &u.IsStaff)
		case "is_superuser":
			ok = asBool(value, &u.IsSuperuser)
		}
		if ok {
			assigned = append(assigned, key)
		}
	}

	return assigned
}

// Deactivate soft-deletes the user: the row persists but the user loses
// active, staff and superuser status.
func (u *User) Deactivate() {
	u.IsActive = false
	u.IsStaff = false
	u.IsSuperuser = false
}

// String returns the canonical representation used in logs.
func (u *User) String() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// RandomPassword generates a random password of the given length from the
// allowed alphabet. Used when creating users through the API, which never
// accepts a caller-supplied password.
func RandomPassword(length int) (string, error) {
	chars := make([]byte, length)
	max := big.NewInt(int64(len(passwordAllowedChars)))

	for i := range chars {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		chars[i] = passwordAllowedChars[n.Int64()]
	}

	return string(chars), nil
}
