package domain

import "errors"

// ErrValidation is the root of every entity validation failure. The
// per-entity sentinels wrap it, so errors.Is(err, ErrValidation)
// identifies a validation error without naming the field.
var ErrValidation = errors.New("validation failed")

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format: a local part,
// an @, and a domain part containing an interior dot.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
