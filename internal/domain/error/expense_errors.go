// Package error defines domain-specific errors for the car wash backend.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseDescriptionTooShort is returned when the description is below the minimum length.
	ErrExpenseDescriptionTooShort = errors.New("expense description must have at least 3 characters")

	// ErrInvalidExpenseAmount is returned when the expense amount is not strictly positive.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")

	// ErrInvalidExpenseCategory is returned when the category is not an accepted value.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseDescriptionTooShort ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount       ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseCategory     ExpenseErrorCode = "EXP-010003"
	ErrCodeExpenseNotFound            ExpenseErrorCode = "EXP-010004"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
