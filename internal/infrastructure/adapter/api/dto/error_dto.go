package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FieldErrors is the 400 body of a validation failure: field name to messages
type FieldErrors map[string][]string
