package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProduct is returned when product fields fail validation.
	ErrInvalidProduct = errors.New("invalid product")
)

// ProductErrorCode defines error codes for product errors.
// Format: PROD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	ErrCodeProductNotFound      ProductErrorCode = "PROD-010001"
	ErrCodeInvalidProductPrice  ProductErrorCode = "PROD-010002"
	ErrCodeInvalidProductName   ProductErrorCode = "PROD-010003"
	ErrCodeInvalidProductID     ProductErrorCode = "PROD-010004"
	ErrCodeMissingProductFields ProductErrorCode = "PROD-010005"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
