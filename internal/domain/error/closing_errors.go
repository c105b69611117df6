// Package error defines domain-specific errors for the car wash backend.
package error

import "errors"

// Daily closing domain errors.
var (
	// ErrClosingAlreadyExists is returned when a closing already exists for the
	// requested date. This is the one-closing-per-day guard, not a bug: callers
	// are expected to branch on it and offer the existing closing instead.
	ErrClosingAlreadyExists = errors.New("day already closed")

	// ErrClosingNotFound is returned when no closing exists for an id or date lookup.
	ErrClosingNotFound = errors.New("closing not found")

	// ErrInvalidClosingDate is returned when the closing date cannot be parsed.
	ErrInvalidClosingDate = errors.New("invalid closing date")
)

// ClosingErrorCode defines error codes for daily closing errors.
// Format: FCH-XXYYYY where XX is category and YYYY is specific error.
type ClosingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidClosingDate ClosingErrorCode = "FCH-010001"
	ErrCodeClosingNotFound    ClosingErrorCode = "FCH-010002"

	// Business rule errors (02XXXX)
	ErrCodeClosingAlreadyExists ClosingErrorCode = "FCH-020001"
)

// ClosingError represents a daily closing error with code and message.
type ClosingError struct {
	Code    ClosingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClosingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClosingError) Unwrap() error {
	return e.Err
}

// NewClosingError creates a new ClosingError with the given code and message.
func NewClosingError(code ClosingErrorCode, message string, err error) *ClosingError {
	return &ClosingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
