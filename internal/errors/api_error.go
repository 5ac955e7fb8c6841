package errors

// APIError represents a simple standardized error response.
// The "detail" key matches what the frontend already expects for 404 and 422 errors.
type APIError struct {
	Detail string `json:"detail"`
}

// NewAPIError creates a new APIError with the given message.
func NewAPIError(message string) *APIError {
	return &APIError{
		Detail: message,
	}
}
