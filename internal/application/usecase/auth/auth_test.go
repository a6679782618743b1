package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercearia/backend/internal/application/adapter"
	"github.com/mercearia/backend/internal/domain/entity"
	domainerror "github.com/mercearia/backend/internal/domain/error"
	"github.com/mercearia/backend/internal/domain/valueobject"
)

// fakeUserRepo keeps users in a map keyed by email.
type fakeUserRepo struct {
	users       map[string]*entity.User
	updateCalls int
	createCalls int
	findErr     error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.createCalls++
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.updateCalls++
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// fakePasswordService "hashes" by prefixing, which keeps assertions readable.
type fakePasswordService struct{}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	return valueobject.ValidatePassword(password)
}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) (bool, error) {
	if hashedPassword == "" {
		return false, domainerror.ErrMalformedHash
	}
	return hashedPassword == "hashed:"+password, nil
}

type fakeTokenService struct {
	issued  []adapter.TokenSubject
	lastTTL time.Duration
}

func (s *fakeTokenService) IssueToken(_ context.Context, subject adapter.TokenSubject, ttl time.Duration) (*adapter.IssuedToken, error) {
	s.issued = append(s.issued, subject)
	s.lastTTL = ttl
	return &adapter.IssuedToken{
		AccessToken: "token-for-" + subject.Email,
		ExpiresAt:   time.Date(2026, 1, 1, 0, 30, 0, 0, time.UTC),
	}, nil
}

func (s *fakeTokenService) ValidateToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func newTestUser(t *testing.T, email, password string, role entity.Role) *entity.User {
	t.Helper()
	u, err := entity.NewUser("Test User", email, "hashed:"+password, role)
	require.NoError(t, err)
	return u
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.True(t, errors.As(err, &authErr), "expected AuthError, got %v", err)
	return authErr.Code
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a bearer token", func(t *testing.T) {
		user := newTestUser(t, "ana@example.com", "secret123", entity.RoleAdmin)
		tokens := &fakeTokenService{}
		uc := NewLoginUserUseCase(newFakeUserRepo(user), fakePasswordService{}, tokens, 15*time.Minute)

		out, err := uc.Execute(ctx, LoginUserInput{Email: "Ana@Example.com ", Password: "secret123"})
		require.NoError(t, err)

		assert.Equal(t, "token-for-ana@example.com", out.AccessToken)
		assert.Equal(t, TokenTypeBearer, out.TokenType)
		assert.Equal(t, user.ID, out.User.ID)
		require.Len(t, tokens.issued, 1)
		assert.Equal(t, entity.RoleAdmin, tokens.issued[0].Role)
		assert.Equal(t, 15*time.Minute, tokens.lastTTL)
	})

	t.Run("unknown email reports user not found", func(t *testing.T) {
		tokens := &fakeTokenService{}
		uc := NewLoginUserUseCase(newFakeUserRepo(), fakePasswordService{}, tokens, 0)

		_, err := uc.Execute(ctx, LoginUserInput{Email: "nobody@example.com", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeUserNotFound, authCode(t, err))
		assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
		assert.Empty(t, tokens.issued)
	})

	t.Run("wrong password reports invalid credentials", func(t *testing.T) {
		user := newTestUser(t, "ana@example.com", "secret123", entity.RoleUser)
		tokens := &fakeTokenService{}
		uc := NewLoginUserUseCase(newFakeUserRepo(user), fakePasswordService{}, tokens, 0)

		_, err := uc.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "wrong1234"})
		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))
		assert.Empty(t, tokens.issued)
	})

	t.Run("malformed email never reaches the store", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.findErr = errors.New("should not be called")
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, &fakeTokenService{}, 0)

		_, err := uc.Execute(ctx, LoginUserInput{Email: "not-an-email", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))
	})

	t.Run("corrupt stored hash is an internal error", func(t *testing.T) {
		user := newTestUser(t, "ana@example.com", "secret123", entity.RoleUser)
		user.PasswordHash = ""
		uc := NewLoginUserUseCase(newFakeUserRepo(user), fakePasswordService{}, &fakeTokenService{}, 0)

		_, err := uc.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "secret123"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerror.ErrMalformedHash)
		var authErr *domainerror.AuthError
		assert.False(t, errors.As(err, &authErr))
	})
}

func TestChangePasswordUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("existing user gets a new hash", func(t *testing.T) {
		user := newTestUser(t, "ana@example.com", "secret123", entity.RoleUser)
		repo := newFakeUserRepo(user)
		uc := NewChangePasswordUseCase(repo, fakePasswordService{})

		out, err := uc.Execute(ctx, ChangePasswordInput{Email: "ana@example.com", NewPassword: "newpass456"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Message)
		assert.Equal(t, "hashed:newpass456", user.PasswordHash)
		assert.Equal(t, 1, repo.updateCalls)
	})

	t.Run("weak password is rejected before lookup", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.findErr = errors.New("should not be called")
		uc := NewChangePasswordUseCase(repo, fakePasswordService{})

		for _, pw := range []string{"short1", "onlyletters", "12345678"} {
			_, err := uc.Execute(ctx, ChangePasswordInput{Email: "ana@example.com", NewPassword: pw})
			require.Error(t, err, pw)
			assert.Equal(t, domainerror.ErrCodeWeakPassword, authCode(t, err), pw)
		}
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("unknown user leaves the store untouched", func(t *testing.T) {
		other := newTestUser(t, "bia@example.com", "secret123", entity.RoleUser)
		repo := newFakeUserRepo(other)
		uc := NewChangePasswordUseCase(repo, fakePasswordService{})

		_, err := uc.Execute(ctx, ChangePasswordInput{Email: "ana@example.com", NewPassword: "newpass456"})
		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeUserNotFound, authCode(t, err))
		assert.Zero(t, repo.updateCalls)
		assert.Equal(t, "hashed:secret123", other.PasswordHash)
	})
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("new user is stored with the standard role", func(t *testing.T) {
		repo := newFakeUserRepo()
		tokens := &fakeTokenService{}
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, tokens, 0)

		out, err := uc.Execute(ctx, RegisterUserInput{Name: "Ana", Email: "ANA@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", out.User.Email)
		assert.Equal(t, entity.RoleUser, out.User.Role)
		assert.Equal(t, "hashed:secret123", out.User.PasswordHash)
		assert.Equal(t, 1, repo.createCalls)
		assert.Len(t, tokens.issued, 1)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		existing := newTestUser(t, "ana@example.com", "secret123", entity.RoleUser)
		repo := newFakeUserRepo(existing)
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, &fakeTokenService{}, 0)

		_, err := uc.Execute(ctx, RegisterUserInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, domainerror.ErrCodeEmailExists, authCode(t, err))
		assert.Zero(t, repo.createCalls)
	})

	t.Run("invalid email and weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, &fakeTokenService{}, 0)

		_, err := uc.Execute(ctx, RegisterUserInput{Name: "Ana", Email: "ana", Password: "secret123"})
		assert.Equal(t, domainerror.ErrCodeInvalidEmail, authCode(t, err))

		_, err = uc.Execute(ctx, RegisterUserInput{Name: "Ana", Email: "ana@example.com", Password: "secret"})
		assert.Equal(t, domainerror.ErrCodeWeakPassword, authCode(t, err))
	})
}

func TestGetCurrentUserUseCase(t *testing.T) {
	ctx := context.Background()
	user := newTestUser(t, "ana@example.com", "secret123", entity.RoleUser)
	uc := NewGetCurrentUserUseCase(newFakeUserRepo(user))

	out, err := uc.Execute(ctx, GetCurrentUserInput{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, user, out.User)

	_, err = uc.Execute(ctx, GetCurrentUserInput{UserID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err))
}
