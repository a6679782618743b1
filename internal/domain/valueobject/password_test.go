package valueobject_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/mercearia/backend/internal/domain/error"
	"github.com/mercearia/backend/internal/domain/valueobject"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "letters and digits", raw: "abc12345"},
		{name: "mixed case with symbol", raw: "Admin123@"},
		{name: "unicode letters", raw: "çãoéí123"},
		{name: "too short", raw: "abc123", wantErr: true},
		{name: "seven chars", raw: "abcd123", wantErr: true},
		{name: "only letters", raw: "abcdefgh", wantErr: true},
		{name: "only digits", raw: "12345678", wantErr: true},
		{name: "symbols and digits", raw: "!!!!1234", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := valueobject.ValidatePassword(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerror.ErrWeakPassword)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("keeps raw value", func(t *testing.T) {
		p, err := valueobject.NewPassword("abc12345")
		require.NoError(t, err)
		assert.Equal(t, "abc12345", p.Value())
	})

	t.Run("masks string form", func(t *testing.T) {
		p, err := valueobject.NewPassword("abc12345")
		require.NoError(t, err)
		assert.Equal(t, "********", p.String())
		assert.Equal(t, "********", fmt.Sprintf("%v", p))
	})

	t.Run("masks log value", func(t *testing.T) {
		p, err := valueobject.NewPassword("abc12345")
		require.NoError(t, err)

		var buf bytes.Buffer
		slog.New(slog.NewJSONHandler(&buf, nil)).Info("password changed", "password", p)
		assert.Contains(t, buf.String(), `"password":"********"`)
		assert.NotContains(t, buf.String(), "abc12345")
	})

	t.Run("rejects weak password", func(t *testing.T) {
		_, err := valueobject.NewPassword("abcdefgh")
		assert.ErrorIs(t, err, domainerror.ErrWeakPassword)
	})
}

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := valueobject.NewEmail("  Teste@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "teste@example.com", e.Value())
		assert.Equal(t, "teste@example.com", e.String())
	})

	for _, raw := range []string{"invalido.com", "a@b", "@example.com", "a b@example.com", ""} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, err := valueobject.NewEmail(raw)
			assert.ErrorIs(t, err, domainerror.ErrInvalidEmail)
		})
	}
}
