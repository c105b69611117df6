// Package error defines domain-specific errors for the car wash backend.
package error

import "errors"

// Wash domain errors.
var (
	// ErrWashNotFound is returned when a wash is not found in the system.
	ErrWashNotFound = errors.New("wash not found")

	// ErrWashTypeTooShort is returned when the wash type is below the minimum length.
	ErrWashTypeTooShort = errors.New("wash type must have at least 3 characters")

	// ErrInvalidWashAmount is returned when the wash amount is not strictly positive.
	ErrInvalidWashAmount = errors.New("wash amount must be positive")

	// ErrInvalidPaymentMethod is returned when the payment method is not an accepted value.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrWashCustomerConflict is returned when a wash carries both a customer
	// reference and walk-in identification.
	ErrWashCustomerConflict = errors.New("wash cannot have both a linked customer and walk-in data")

	// ErrWashCustomerNotFound is returned when the referenced customer does not exist.
	ErrWashCustomerNotFound = errors.New("referenced customer not found")
)

// WashErrorCode defines error codes for wash errors.
// Format: WSH-XXYYYY where XX is category and YYYY is specific error.
type WashErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeWashTypeTooShort     WashErrorCode = "WSH-010001"
	ErrCodeInvalidWashAmount    WashErrorCode = "WSH-010002"
	ErrCodeInvalidPaymentMethod WashErrorCode = "WSH-010003"
	ErrCodeWashCustomerConflict WashErrorCode = "WSH-010004"
	ErrCodeWashCustomerNotFound WashErrorCode = "WSH-010005"
	ErrCodeWashNotFound         WashErrorCode = "WSH-010006"
	ErrCodeInvalidWashDate      WashErrorCode = "WSH-010007"
)

// WashError represents a wash error with code and message.
type WashError struct {
	Code    WashErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WashError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WashError) Unwrap() error {
	return e.Err
}

// NewWashError creates a new WashError with the given code and message.
func NewWashError(code WashErrorCode, message string, err error) *WashError {
	return &WashError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
