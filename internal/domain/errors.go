package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation       = errors.New("validation error")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidLanguage  = errors.New("invalid language")
	ErrLoad             = errors.New("dictionary load failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError

	// kind is an optional, more specific sentinel matched by errors.Is.
	kind error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() []error {
	if e.kind != nil {
		return []error{ErrValidation, e.kind}
	}
	return []error{ErrValidation}
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewMissingParameterError reports an absent required request parameter.
// The message reads "<field> is required".
func NewMissingParameterError(field string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: "is required"}},
		kind:   ErrMissingParameter,
	}
}

// LoadError reports a word-list source that could not be turned into a
// dictionary. It is fatal: the process must not serve with a partial store.
type LoadError struct {
	Language Language
	Source   string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q dictionary from %s: %v", e.Language, e.Source, e.Err)
}

func (e *LoadError) Unwrap() []error { return []error{ErrLoad, e.Err} }
