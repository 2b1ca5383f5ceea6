// Package error defines domain-specific errors for the FinAI application.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID is returned when a user id cannot be parsed.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrUserPersistence is returned when a user could not be stored.
	ErrUserPersistence = errors.New("failed to persist user")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeUserNotFound  UserErrorCode = "USR-010001"
	ErrCodeInvalidUserID UserErrorCode = "USR-010002"

	// Request errors (02XXXX)
	ErrCodeInvalidUserBody UserErrorCode = "USR-020001"

	// Persistence errors (03XXXX)
	ErrCodeUserPersistence UserErrorCode = "USR-030001"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
