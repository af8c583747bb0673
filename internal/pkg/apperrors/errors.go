package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMissing       = errors.New("authorization token is required")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Booking errors
var (
	ErrBookingNotFound = errors.New("booking not found")
	// ErrCalendarFailed marks a failed meeting-link acquisition; the booking
	// is rejected and nothing is persisted.
	ErrCalendarFailed = errors.New("failed to generate meeting link")
	ErrBookingFailed  = errors.New("failed to create booking")
)

// Update errors
var (
	ErrUpdateNotFound = errors.New("update not found")
)

// Guide errors
var (
	ErrGuideNotFound    = errors.New("guide not found")
	ErrGuideUnavailable = errors.New("guide is not available")
)

// Predictor errors
var (
	ErrPredictionFailed = errors.New("failed to predict colleges")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation failure with a specific message.
// The message is surfaced verbatim in the API error envelope.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
