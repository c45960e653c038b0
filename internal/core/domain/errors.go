package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks bad input shape or range.
	ErrValidation = errors.New("validation failed")
	// ErrState marks an operation that is illegal in the current lifecycle state.
	ErrState = errors.New("invalid state")
	// ErrNotFound marks an unknown campaign or bid.
	ErrNotFound = errors.New("not found")
	// ErrPermission marks an actor that does not own the resource.
	ErrPermission = errors.New("permission denied")
	// ErrActivation marks a failed or timed out payment method validation.
	ErrActivation = errors.New("activation failed")
)

// ValidationError names the offending field and the violated constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid is shorthand for a *ValidationError.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
