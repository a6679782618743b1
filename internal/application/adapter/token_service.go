// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mercearia/backend/internal/domain/entity"
)

// TokenSubject is the identity embedded in an issued token.
type TokenSubject struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// IssuedToken is a signed access token and its expiry.
type IssuedToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

// TokenClaims represents the claims recovered from a valid token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenService defines the interface for signed session token operations.
type TokenService interface {
	// IssueToken signs a token for subject that expires after ttl.
	// A non-positive ttl falls back to the configured default.
	IssueToken(ctx context.Context, subject TokenSubject, ttl time.Duration) (*IssuedToken, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	// It fails with domainerror.ErrInvalidToken or domainerror.ErrExpiredToken.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
