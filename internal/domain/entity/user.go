// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerror "github.com/mercearia/backend/internal/domain/error"
)

// Role represents the access level of a user.
type Role string

const (
	// RoleAdmin is the elevated role allowed to manage the catalog.
	RoleAdmin Role = "admin"
	// RoleUser is the standard customer role.
	RoleUser Role = "user"
)

// IsValid reports whether the role belongs to the closed set of known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// User represents a stored credential in the Mercearia system.
// Email is the login identifier and is unique within the store.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User, rejecting roles outside the known set.
func NewUser(name, email, passwordHash string, role Role) (*User, error) {
	if !role.IsValid() {
		return nil, domainerror.ErrInvalidRole
	}

	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsAdmin reports whether the user holds the elevated role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
