// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password policy, hashing and verification.
type PasswordService interface {
	// ValidatePasswordStrength fails with domainerror.ErrWeakPassword when the
	// password is shorter than 8 characters or lacks a letter or a digit.
	ValidatePasswordStrength(password string) error

	// HashPassword produces a salted one-way digest of the password.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches hashedPassword.
	// A mismatch is (false, nil); an error is returned only for a malformed digest.
	VerifyPassword(hashedPassword, password string) (bool, error)
}
