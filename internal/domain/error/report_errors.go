// Package error defines domain-specific errors for the car wash backend.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportDate is returned when a report date cannot be parsed.
	ErrInvalidReportDate = errors.New("invalid report date")

	// ErrInvalidReportMonth is returned when a report month is not in YYYY-MM form.
	ErrInvalidReportMonth = errors.New("invalid report month")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportDate  ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportMonth ReportErrorCode = "RPT-010002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
