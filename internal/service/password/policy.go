// Package password implements the password strength policy applied when a
// user changes their password. Rules run in order and every failure is
// collected, so the caller gets the full list of problems at once.
package password

import (
	"errors"
	"fmt"
	"strings"
)

// Policy thresholds.
const (
	// MinUppercase is the number of uppercase letters a password must contain.
	MinUppercase = 4

	// MinSpecialChars is the number of special characters a password must contain.
	MinSpecialChars = 4

	// SpecialChars is the set of characters counted as special.
	SpecialChars = "!@#$%^&*;:"
)

// ErrPasswordMismatch is appended when the two password entries differ.
var ErrPasswordMismatch = errors.New("Passwords do not match")

// Rule is a single password strength requirement.
type Rule interface {
	// Validate returns an error describing the failure, or nil if the
	// password satisfies the rule.
	Validate(password string) error

	// HelpText describes the requirement to the user.
	HelpText() string
}

// UppercaseRule requires a minimum number of uppercase letters.
type UppercaseRule struct{}

// Validate implements Rule.
func (r UppercaseRule) Validate(password string) error {
	count := 0
	for _, c := range password {
		if c >= 'A' && c <= 'Z' {
			count++
		}
	}
	if count < MinUppercase {
		return errors.New(r.HelpText())
	}
	return nil
}

// HelpText implements Rule.
func (r UppercaseRule) HelpText() string {
	return fmt.Sprintf("The password must contain at least %d uppercase letter, A-Z.", MinUppercase)
}

// SpecialCharRule requires a minimum number of characters from SpecialChars.
type SpecialCharRule struct{}

// Validate implements Rule.
func (r SpecialCharRule) Validate(password string) error {
	count := 0
	for _, c := range password {
		if strings.ContainsRune(SpecialChars, c) {
			count++
		}
	}
	if count < MinSpecialChars {
		return errors.New(r.HelpText())
	}
	return nil
}

// HelpText implements Rule.
func (r SpecialCharRule) HelpText() string {
	return fmt.Sprintf("The password must contain at least %d special character: %s", MinSpecialChars, SpecialChars)
}

// Policy is an ordered collection of rules.
type Policy struct {
	rules []Rule
}

// NewPolicy creates the default policy: uppercase first, then special
// characters. The order is load-bearing, failure messages come back in
// rule order.
func NewPolicy() *Policy {
	return &Policy{
		rules: []Rule{
			UppercaseRule{},
			SpecialCharRule{},
		},
	}
}

// Validate runs every rule against the password and returns all failure
// messages, in rule order. An empty slice means the password passed.
func (p *Policy) Validate(password string) []string {
	failures := []string{}
	for _, rule := range p.rules {
		if err := rule.Validate(password); err != nil {
			failures = append(failures, err.Error())
		}
	}
	return failures
}

// ValidateChange validates a password change request where the user enters
// the new password twice. Rule failures come first; a mismatch between the
// two entries is appended last.
func (p *Policy) ValidateChange(passwordOne, passwordTwo string) []string {
	failures := p.Validate(passwordOne)
	if passwordOne != passwordTwo {
		failures = append(failures, ErrPasswordMismatch.Error())
	}
	return failures
}
