// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
	domainerror "github.com/mercearia/backend/internal/domain/error"
)

const (
	// DefaultTokenExpiry applies when neither the caller nor the config sets a lifetime.
	DefaultTokenExpiry = 30 * time.Minute
	// DefaultTokenIssuer is the iss claim of every issued token.
	DefaultTokenIssuer = "mercearia"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenOption configures the token service.
type TokenOption func(*tokenService)

// WithClock replaces the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// WithIssuer overrides the iss claim.
func WithIssuer(issuer string) TokenOption {
	return func(s *tokenService) {
		if issuer != "" {
			s.issuer = issuer
		}
	}
}

// WithDefaultExpiry sets the lifetime used when IssueToken receives a non-positive ttl.
func WithDefaultExpiry(d time.Duration) TokenOption {
	return func(s *tokenService) {
		if d > 0 {
			s.defaultExpiry = d
		}
	}
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret        []byte
	issuer        string
	defaultExpiry time.Duration
	now           func() time.Time
}

// NewTokenService creates a new token service instance signing with HS256.
func NewTokenService(secret string, opts ...TokenOption) adapter.TokenService {
	s := &tokenService{
		secret:        []byte(secret),
		issuer:        DefaultTokenIssuer,
		defaultExpiry: DefaultTokenExpiry,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueToken signs a token for the subject valid for ttl.
func (s *tokenService) IssueToken(_ context.Context, subject adapter.TokenSubject, ttl time.Duration) (*adapter.IssuedToken, error) {
	if ttl <= 0 {
		ttl = s.defaultExpiry
	}

	now := s.now().UTC()
	expiresAt := now.Add(ttl)
	claims := CustomClaims{
		Email: subject.Email,
		Role:  string(subject.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   subject.UserID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &adapter.IssuedToken{
		AccessToken: signed,
		ExpiresAt:   expiresAt.Truncate(time.Second),
	}, nil
}

// ValidateToken verifies signature, issuer and expiry and returns the embedded subject.
func (s *tokenService) ValidateToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject", domainerror.ErrInvalidToken)
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	return claims, nil
}
