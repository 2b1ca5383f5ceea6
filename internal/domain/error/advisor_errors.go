// Package error defines domain-specific errors for the FinAI application.
package error

import "errors"

// Advisor domain errors.
var (
	// ErrAdvisorUnavailable is returned when no inference provider is configured.
	ErrAdvisorUnavailable = errors.New("advisor service is not configured")

	// ErrAdvisorEmptyResponse is returned when the inference provider produced no text.
	ErrAdvisorEmptyResponse = errors.New("advisor returned an empty response")

	// ErrAdvisorUpstream is returned when the inference provider rejected the call.
	ErrAdvisorUpstream = errors.New("advisor upstream error")
)

// AdvisorErrorCode defines error codes for advisor errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdvisorErrorCode string

const (
	ErrCodeAdvisorUserNotFound   AdvisorErrorCode = "ADV-010001"
	ErrCodeAdvisorInvalidRequest AdvisorErrorCode = "ADV-010002"
	ErrCodeAdvisorPersistence    AdvisorErrorCode = "ADV-030001"
)

// AdvisorError represents an advisor error with code and message.
type AdvisorError struct {
	Code    AdvisorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdvisorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdvisorError) Unwrap() error {
	return e.Err
}

// NewAdvisorError creates a new AdvisorError with the given code and message.
func NewAdvisorError(code AdvisorErrorCode, message string, err error) *AdvisorError {
	return &AdvisorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrCodeRateLimited is returned when a client exceeds the advisor request budget.
const ErrCodeRateLimited AdvisorErrorCode = "ADV-020001"
