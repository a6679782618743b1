// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
	domainerror "github.com/mercearia/backend/internal/domain/error"
	"github.com/mercearia/backend/internal/domain/valueobject"
)

// TokenTypeBearer is the token type reported to clients.
const TokenTypeBearer = "bearer"

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	tokenTTL        time.Duration
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
// A zero tokenTTL lets the token service apply its default expiry.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	tokenTTL time.Duration,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		tokenTTL:        tokenTTL,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	// A malformed identifier cannot name a stored credential; it fails like a bad password, without a lookup.
	email, err := valueobject.NewEmail(input.Email)
	if err != nil {
		return nil, invalidCredentialsError()
	}

	// Find credential by identifier
	user, err := uc.userRepo.FindByEmail(ctx, email.Value())
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Verify password
	ok, err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password for user %s: %w", user.ID, err)
	}
	if !ok {
		slog.WarnContext(ctx, "Login rejected", "user_id", user.ID)
		return nil, invalidCredentialsError()
	}

	issued, err := uc.tokenService.IssueToken(ctx, adapter.TokenSubject{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, uc.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	slog.InfoContext(ctx, "User logged in", "user_id", user.ID, "role", user.Role)

	return &LoginUserOutput{
		AccessToken: issued.AccessToken,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
		User:        user,
	}, nil
}

func invalidCredentialsError() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
