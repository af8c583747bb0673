package dto

// APIResponse is the envelope shared by every endpoint: success with
// optional data, or failure with a structured error.
type APIResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty" example:"Booking created successfully"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// NewSuccessResponse creates a success envelope wrapping data.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

// NewMessageResponse creates a success envelope carrying only a message.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a failure envelope from an error detail.
func NewErrorResponse(errorDetail *ErrorDetail) APIResponse {
	return APIResponse{
		Success: false,
		Error:   errorDetail,
	}
}
