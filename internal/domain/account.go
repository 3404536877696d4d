package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Account; all wrap ErrValidation.
var (
	ErrEmptyAccountID      = fmt.Errorf("%w: account ID cannot be empty", ErrValidation)
	ErrEmptyAccountName    = fmt.Errorf("%w: account name cannot be empty", ErrValidation)
	ErrEmptyContactEmail   = fmt.Errorf("%w: contact email cannot be empty", ErrValidation)
	ErrInvalidContactEmail = fmt.Errorf("%w: invalid contact email format", ErrValidation)
)

// defaultBioTemplate fills in a bio for accounts created without one.
// This is a deliberate special case, not a general templating mechanism.
const defaultBioTemplate = "Am a blog for %s"

// Account is the tenant-like entity that users and blog posts belong to.
// Accounts are never hard-deleted; Deactivate marks them inactive and the
// row persists.
type Account struct {
	ID           uuid.UUID `json:"id"`
	CreatedDate  time.Time `json:"created_date"`
	AccountName  string    `json:"account_name"`
	Bio          string    `json:"bio"`
	ContactEmail string    `json:"contact_email"`

	WebsiteLink   string `json:"website_link"`
	FacebookLink  string `json:"facebook_link"`
	InstagramLink string `json:"instagram_link"`
	TwitterLink   string `json:"twitter_link"`
	TiktokLink    string `json:"tiktok_link"`
	LinkedinLink  string `json:"linkedin_link"`
	SnapchatLink  string `json:"snapchat_link"`
	YoutubeLink   string `json:"youtube_link"`
	TwitchLink    string `json:"twitch_link"`

	IsActive bool `json:"is_active"`
}

// NewAccount creates a new active Account with a generated ID and creation
// timestamp. An empty bio is substituted with the default bio for the
// account name. Returns an error if validation fails.
func NewAccount(accountName, contactEmail, bio string) (*Account, error) {
	if bio == "" {
		bio = fmt.Sprintf(defaultBioTemplate, accountName)
	}

	account := &Account{
		ID:           uuid.New(),
		CreatedDate:  time.Now().UTC(),
		AccountName:  accountName,
		Bio:          bio,
		ContactEmail: contactEmail,
		IsActive:     true,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}

	if a.AccountName == "" {
		return ErrEmptyAccountName
	}

	if a.ContactEmail == "" {
		return ErrEmptyContactEmail
	}

	if !validateEmailFormat(a.ContactEmail) {
		return ErrInvalidContactEmail
	}

	return nil
}

// SetValues assigns the given values to the account's declared fields.
// Unknown keys and values of the wrong type are silently ignored.
// Returns the names of the fields that were assigned.
func (a *Account) SetValues(values map[string]any) []string {
	assigned := make([]string, 0, len(values))

	for key, value := range values {
		ok := false
		switch key {
		case "account_name":
			ok = asString(value, &a.AccountName)
		case "bio":
			ok = asString(value, &a.Bio)
		case "contact_email":
			ok = asString(value, &a.ContactEmail)
		case "website_link":
			ok = asString(value, &a.WebsiteLink)
		case "facebook_link":
			ok = asString(value, &a.FacebookLink)
		case "instagram_link":
			ok = asString(value, &a.InstagramLink)
		case "twitter_link":
			ok = asString(value, &a.TwitterLink)
		case "tiktok_link":
			ok = asString(value, &a.TiktokLink)
		case "linkedin_link":
			ok = asString(value, &a.LinkedinLink)
		case "snapchat_link":
			ok = asString(value, &a.SnapchatLink)
		case "youtube_link":
			ok = asString(value, &a.YoutubeLink)
		case "twitch_link":
			ok = asString(value, &a.TwitchLink)
		case "is_active":
			ok = asBool(value, &a.IsActive)
		}
		if ok {
			assigned = append(assigned, key)
		}
	}

	return assigned
}

// Deactivate soft-deletes the account. The row is kept; only the active
// flag changes.
func (a *Account) Deactivate() {
	a.IsActive = false
}

// String returns the canonical representation used in logs.
func (a *Account) String() string {
	return a.AccountName
}
