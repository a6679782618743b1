package error

import "errors"

// Favorite domain errors.
var (
	// ErrFavoriteNotFound is returned when removing a product the user never favorited.
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// FavoriteErrorCode defines error codes for favorite errors.
type FavoriteErrorCode string

const (
	ErrCodeFavoriteNotFound      FavoriteErrorCode = "FAV-010001"
	ErrCodeFavoriteProductAbsent FavoriteErrorCode = "FAV-010002"
	ErrCodeMissingFavoriteFields FavoriteErrorCode = "FAV-010003"
)

// FavoriteError represents a favorite error with code and message.
type FavoriteError struct {
	Code    FavoriteErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FavoriteError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FavoriteError) Unwrap() error {
	return e.Err
}

// NewFavoriteError creates a new FavoriteError with the given code and message.
func NewFavoriteError(code FavoriteErrorCode, message string, err error) *FavoriteError {
	return &FavoriteError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
