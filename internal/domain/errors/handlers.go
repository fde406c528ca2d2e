package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response defines the unified envelope for error responses rendered by the
// HTTP error handler. Errors carries the per-field list for validation
// failures, in the {pointer, message} shape.
type Response struct {
	Success bool         `json:"success"`
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Error   *ErrorInfo   `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}
