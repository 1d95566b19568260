package model

import "errors"

// Response is the envelope returned by every API endpoint.
type Response struct {
	Success bool     `json:"Success"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Data    any      `json:"data,omitempty"`
	Routine *Routine `json:"routine,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeValidation         = "VALIDATION_FAILED"
	ErrCodeNoProducts         = "NO_PRODUCTS"
	ErrCodeNoMatchingProducts = "NO_MATCHING_PRODUCTS"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeStore              = "STORE_ERROR"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business error carrying a stable code and a
// human-readable message. Two domain errors match under errors.Is when
// their codes are equal.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// NewStoreError wraps an error raised by the catalogue store.
func NewStoreError(message string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeStore,
		Message: message,
		Err:     err,
	}
}

// AsDomainError returns the first DomainError in err's chain, if any.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Common domain errors
var (
	ErrInvalidJSON        = NewDomainError(ErrCodeInvalidJSON, "Request body is not valid JSON.")
	ErrValidation         = NewValidationError("Request validation failed.")
	ErrNoProducts         = NewDomainError(ErrCodeNoProducts, "No products found.")
	ErrNoMatchingProducts = NewDomainError(ErrCodeNoMatchingProducts, "No products found for this combination. Please try a different selection.")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found.")
	ErrStore              = NewStoreError("Product store request failed.", nil)
)
