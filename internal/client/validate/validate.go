// Package validate checks account fields locally before a change is sent.
//
// Each check returns the normalized value and, on rejection, an error whose
// message is meant for the user as is.
package validate

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	usernameChars = regexp.MustCompile(`^[a-z0-9]+$`)
	usernameStart = regexp.MustCompile(`^[a-z]`)
	hasLetter     = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit      = regexp.MustCompile(`[0-9]`)
)

const msgEmpty = "Cannot be empty"

// differsFrom rejects a value equal to current.
func differsFrom(current, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		if s, _ := value.(string); s == current {
			return errors.New(message)
		}
		return nil
	})
}

// Username trims input and checks it as a new username for a user whose
// username is currently current.
func Username(input, current string) (string, error) {
	v := strings.TrimSpace(input)
	return v, validation.Validate(v,
		validation.Required.Error(msgEmpty),
		differsFrom(current, "Cannot be the same as current username"),
		validation.Length(3, 0).Error("Must be at least 3 characters"),
		validation.Length(0, 20).Error("Must be at most 20 characters"),
		validation.Match(usernameChars).Error("Only lowercase letters and numbers allowed"),
		validation.Match(usernameStart).Error("Must start with a letter"),
	)
}

// Email trims input and checks it as a new email address.
func Email(input, current string) (string, error) {
	v := strings.TrimSpace(input)
	return v, validation.Validate(v,
		validation.Required.Error(msgEmpty),
		differsFrom(current, "Cannot be the same as current email"),
		validation.Length(0, 254).Error("Email must be at most 254 characters"),
		is.Email.Error("Invalid email format"),
	)
}

// Password checks a new password. It is not trimmed.
func Password(input string) (string, error) {
	const mix = "Must contain at least one letter and one number"
	return input, validation.Validate(input,
		validation.Required.Error(msgEmpty),
		validation.Length(8, 0).Error("Must be at least 8 characters"),
		validation.Length(0, 32).Error("Must be at most 32 characters"),
		validation.Match(hasLetter).Error(mix),
		validation.Match(hasDigit).Error(mix),
	)
}
