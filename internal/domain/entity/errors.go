package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError represents a single field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Violations accumulates every field violation found in one input so a
// caller sees all of them at once instead of fixing fields one round trip
// at a time.
type Violations []*ValidationError

// Add appends a field violation.
func (v *Violations) Add(field, message string) {
	*v = append(*v, &ValidationError{Field: field, Message: message})
}

// Err returns the accumulated violations as an error, or nil when the
// input was clean.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Error joins the individual field messages.
func (v Violations) Error() string {
	msgs := make([]string, 0, len(v))
	for _, ve := range v {
		msgs = append(msgs, ve.Error())
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the names of all violated fields, in input order.
func (v Violations) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, ve := range v {
		fields = append(fields, ve.Field)
	}
	return fields
}

// IsValidation reports whether err is a field-validation failure of either
// shape (single ValidationError or accumulated Violations).
func IsValidation(err error) bool {
	var single *ValidationError
	var many Violations
	return errors.As(err, &single) || errors.As(err, &many)
}
