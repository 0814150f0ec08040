package dto

// ErrorResponse is the error body every endpoint returns, e.g.
// {"error": "Student with this USN already exists"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an ErrorResponse with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// MessageResponse is a plain confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
