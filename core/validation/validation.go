// File: validation.go
// Title: Validation Results and Validator Interfaces
// Description: Defines the Validator interface, the structured
//              ValidationResult and its conversion into structured errors.
//              Config and script loading validate their inputs through it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with generic validators

package validation

import (
	"fmt"
	"strings"

	fxerror "github.com/msto63/fixstr/core/error"
)

// Validator validates a value of type T
type Validator[T any] interface {
	Validate(value T) ValidationResult
}

// ValidatorFunc adapts a function to the Validator interface
type ValidatorFunc[T any] func(value T) ValidationResult

// Validate implements Validator
func (f ValidatorFunc[T]) Validate(value T) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single failed check
type ValidationError struct {
	Code    fxerror.Code `json:"code"`
	Field   string       `json:"field,omitempty"`
	Message string       `json:"message"`
	Value   interface{}  `json:"value,omitempty"`
}

// Valid returns a successful validation result
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid returns a failed result with a single field error
func Invalid(code fxerror.Code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{{
			Code:    code,
			Field:   field,
			Message: message,
			Value:   value,
		}},
	}
}

// AddFieldError records a field error on the result
func (r *ValidationResult) AddFieldError(code fxerror.Code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Value:   value,
	})
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code fxerror.Code) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the result to a structured error, or nil when valid.
// The first error defines code and message; the rest are listed in details.
func (r ValidationResult) ToError() error {
	if r.Valid {
		return nil
	}

	first := r.FirstError()
	if first == nil {
		return fxerror.New("validation failed").WithCode(fxerror.CodeValidationFailed)
	}

	msg := first.Message
	if first.Field != "" {
		msg = first.Field + ": " + msg
	}
	err := fxerror.New(msg).WithCode(first.Code)
	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("total_errors", len(r.Errors)).
			WithDetail("all_messages", r.ErrorMessages())
	}
	return err
}

// String returns a human-readable representation of the result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}
	parts := []string{"ValidationResult{valid: false", fmt.Sprintf("errors: %d", len(r.Errors))}
	if first := r.FirstError(); first != nil {
		parts = append(parts, "first: "+first.Message)
		if first.Field != "" {
			parts = append(parts, "field: "+first.Field)
		}
	}
	return strings.Join(parts, ", ") + "}"
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := Valid()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
