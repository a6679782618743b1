// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mercearia/backend/internal/application/adapter"
	domainerror "github.com/mercearia/backend/internal/domain/error"
	"github.com/mercearia/backend/internal/domain/valueobject"
)

// ChangePasswordInput represents the input for a password change.
type ChangePasswordInput struct {
	Email       string
	NewPassword string
}

// ChangePasswordOutput represents the output of a password change.
type ChangePasswordOutput struct {
	Message string
}

// ChangePasswordUseCase overwrites the stored hash of an existing credential.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the password change.
// The store is written only after the policy passed and the user was found.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) (*ChangePasswordOutput, error) {
	newPassword, err := valueobject.NewPassword(input.NewPassword)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password must have at least 8 characters, a letter and a digit",
			domainerror.ErrWeakPassword,
		)
	}

	email, err := valueobject.NewEmail(input.Email)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

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

	passwordHash, err := uc.passwordService.HashPassword(newPassword.Value())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to update user password: %w", err)
	}

	slog.InfoContext(ctx, "Password changed", "user_id", user.ID)

	return &ChangePasswordOutput{
		Message: "Password updated successfully",
	}, nil
}
