// Package error defines domain-specific errors for the FinAI application.
package error

import "errors"

// Alert domain errors.
var (
	// ErrAlertNotFound is returned when an alert does not exist or belongs to another user.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrInvalidAlertID is returned when an alert id cannot be parsed.
	ErrInvalidAlertID = errors.New("invalid alert id")

	// ErrInvalidAlertStatus is returned when filtering by an unknown status.
	ErrInvalidAlertStatus = errors.New("invalid alert status")
)

// AlertErrorCode defines error codes for alert errors.
// Format: ALR-XXYYYY where XX is category and YYYY is specific error.
type AlertErrorCode string

const (
	ErrCodeAlertNotFound      AlertErrorCode = "ALR-010001"
	ErrCodeAlertUserNotFound  AlertErrorCode = "ALR-010002"
	ErrCodeInvalidAlertID     AlertErrorCode = "ALR-010003"
	ErrCodeInvalidAlertStatus AlertErrorCode = "ALR-010004"
	ErrCodeAlertPersistence   AlertErrorCode = "ALR-030001"
)

// AlertError represents an alert error with code and message.
type AlertError struct {
	Code    AlertErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AlertError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AlertError) Unwrap() error {
	return e.Err
}

// NewAlertError creates a new AlertError with the given code and message.
func NewAlertError(code AlertErrorCode, message string, err error) *AlertError {
	return &AlertError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
