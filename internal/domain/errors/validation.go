package errors

import (
	"net/http"
	"strings"
)

// NonFieldPointer is the pointer used for violations that do not belong to a
// single field, such as "a phone number or email is required".
const NonFieldPointer = "non_field_errors"

// FieldError is a single field-level violation. Pointer names the offending
// field in the request payload.
type FieldError struct {
	Pointer string `json:"pointer"`
	Message string `json:"message"`
}

// ValidationError aggregates every field violation found in a request, not
// just the first one, so the caller can fix them all in one round trip.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates an empty ValidationError to accumulate into.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add records a violation against a field.
func (e *ValidationError) Add(pointer, message string) *ValidationError {
	e.fields = append(e.fields, FieldError{Pointer: pointer, Message: message})

	return e
}

// AddNonField records a violation that spans fields.
func (e *ValidationError) AddNonField(message string) *ValidationError {
	return e.Add(NonFieldPointer, message)
}

// HasErrors reports whether any violation was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.fields) > 0
}

// Fields returns the recorded violations in insertion order.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// ErrOrNil returns the error when violations were recorded, nil otherwise.
// Returning the concrete type through an error interface would never be nil.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}

	return nil
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		msgs = append(msgs, f.Pointer+": "+f.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Input validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}
