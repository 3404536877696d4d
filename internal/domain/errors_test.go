package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsWrapValidation(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrEmptyAccountName,
		ErrInvalidContactEmail,
		ErrEmptyUsername,
		ErrSuperuserNotStaff,
		ErrEmptyPostTitle,
		ErrInvalidPostStatus,
		ErrEmptyCategoryName,
		ErrEmptyTagName,
		ErrEmptyCommentContent,
		ErrCommentTooLong,
		ErrSelfFollow,
	}

	for _, sentinel := range sentinels {
		assert.ErrorIs(t, sentinel, ErrValidation, sentinel.Error())
	}
}

func TestValidateEmailFormat(t *testing.T) {
	t.Parallel()

	valid := []string{"writer@example.com", "a@b.co"}
	invalid := []string{"", "no-at-sign", "@example.com", "writer@", "writer@com", "writer@.com", "writer@com."}

	for _, email := range valid {
		assert.True(t, validateEmailFormat(email), email)
	}
	for _, email := range invalid {
		assert.False(t, validateEmailFormat(email), email)
	}
}
