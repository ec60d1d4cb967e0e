package validation

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

type UserValidator struct {
	maxUsernameLength int
}

func NewUserValidator(maxUsernameLength int) *UserValidator {
	return &UserValidator{maxUsernameLength: maxUsernameLength}
}

func (v *UserValidator) ValidateUser(username, email string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > v.maxUsernameLength {
		return ErrUsernameTooLong
	}

	// Display-name forms like "Bob <bob@example.com>" are rejected.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
