// Package valueobject contains domain value objects for the Mercearia system.
package valueobject

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	domainerror "github.com/mercearia/backend/internal/domain/error"
)

// MinPasswordLength is the minimum number of characters a password must have.
const MinPasswordLength = 8

// Password is a raw password that already satisfied the password policy.
// It is never persisted; only its hash is.
type Password struct {
	raw string
}

// NewPassword validates raw against the policy and wraps it.
func NewPassword(raw string) (Password, error) {
	if err := ValidatePassword(raw); err != nil {
		return Password{}, err
	}
	return Password{raw: raw}, nil
}

// ValidatePassword rejects passwords shorter than MinPasswordLength or
// missing either a letter or a digit.
func ValidatePassword(raw string) error {
	if utf8.RuneCountInString(raw) < MinPasswordLength {
		return domainerror.ErrWeakPassword
	}

	var hasLetter, hasDigit bool
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return domainerror.ErrWeakPassword
	}
	return nil
}

// Value returns the raw password for hashing.
func (p Password) Value() string {
	return p.raw
}

// String masks the password so it never leaks through fmt or logs.
func (p Password) String() string {
	return strings.Repeat("*", utf8.RuneCountInString(p.raw))
}

// LogValue keeps slog from printing the raw password.
func (p Password) LogValue() slog.Value {
	return slog.StringValue(p.String())
}
