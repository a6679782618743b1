package valueobject

import (
	"regexp"
	"strings"

	domainerror "github.com/mercearia/backend/internal/domain/error"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is a normalized, syntactically valid email address.
type Email struct {
	value string
}

// NewEmail trims and lower-cases raw and checks its shape.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(normalized) {
		return Email{}, domainerror.ErrInvalidEmail
	}
	return Email{value: normalized}, nil
}

// Value returns the normalized address.
func (e Email) Value() string {
	return e.value
}

// String implements fmt.Stringer.
func (e Email) String() string {
	return e.value
}
