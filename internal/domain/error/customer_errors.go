// Package error defines domain-specific errors for the car wash backend.
package error

import "errors"

// Customer domain errors.
var (
	// ErrCustomerNotFound is returned when a customer is not found in the system.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCustomerNameTooShort is returned when the customer name is below the minimum length.
	ErrCustomerNameTooShort = errors.New("customer name must have at least 3 characters")

	// ErrInvalidPlate is returned when the plate matches neither accepted format.
	ErrInvalidPlate = errors.New("invalid plate format")

	// ErrPlateAlreadyExists is returned when another customer already owns the plate.
	ErrPlateAlreadyExists = errors.New("plate already registered")
)

// CustomerErrorCode defines error codes for customer errors.
// Format: CLI-XXYYYY where XX is category and YYYY is specific error.
type CustomerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCustomerNameTooShort CustomerErrorCode = "CLI-010001"
	ErrCodeInvalidPlate         CustomerErrorCode = "CLI-010002"
	ErrCodePlateAlreadyExists   CustomerErrorCode = "CLI-010003"
	ErrCodeCustomerNotFound     CustomerErrorCode = "CLI-010004"
)

// CustomerError represents a customer error with code and message.
type CustomerError struct {
	Code    CustomerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CustomerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CustomerError) Unwrap() error {
	return e.Err
}

// NewCustomerError creates a new CustomerError with the given code and message.
func NewCustomerError(code CustomerErrorCode, message string, err error) *CustomerError {
	return &CustomerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
