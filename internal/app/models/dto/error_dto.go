package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_ERROR"
	ErrorCodeCalendarError    ErrorCode = "CALENDAR_ERROR"
	ErrorCodeBookingError     ErrorCode = "BOOKING_ERROR"
	ErrorCodePredictionError  ErrorCode = "PREDICTION_ERROR"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeGuideNotFound    ErrorCode = "GUIDE_NOT_FOUND"
	ErrorCodeGuideUnavailable ErrorCode = "GUIDE_UNAVAILABLE"
	ErrorCodeRateLimited      ErrorCode = "RATE_LIMITED"

	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrorCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrorCodeAuthError          ErrorCode = "AUTH_ERROR"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    ErrorCode   `json:"code" example:"VALIDATION_ERROR"`
	Message string      `json:"message" example:"Percentile must be between 0 and 100"`
	Field   string      `json:"field,omitempty" example:"percentile"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// HandleValidationError converts a binding/validator error into an error
// detail suitable for the API envelope.
func HandleValidationError(err error) *ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return NewErrorDetail(ErrorCodeValidationFailed, formatFieldError(first)).WithField(first.Field())
	}
	return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
