package domain

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the acting user has no edit authority
// over the target worker's schedule. Kept distinct from validation errors
// so callers can render different messaging.
var ErrUnauthorized = errors.New("not authorized to edit this worker's schedule")

// ErrWorkerNotFound is returned when the target worker does not exist.
var ErrWorkerNotFound = errors.New("worker not found")

// ValidationError reports a malformed field on a write request. The engine
// never persists data that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
