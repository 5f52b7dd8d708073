// File: chain.go
// Title: Validator Chains and Common Validators
// Description: Sequential validator chains plus the small set of field
//              validators used by config and script loading.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package validation

import (
	"fmt"
	"slices"
	"strings"

	fxerror "github.com/msto63/fixstr/core/error"
)

// ValidatorChain runs validators in order and combines their results
type ValidatorChain[T any] struct {
	validators       []Validator[T]
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates an empty chain
func NewValidatorChain[T any](name string) *ValidatorChain[T] {
	return &ValidatorChain[T]{name: name}
}

// Add appends a validator to the chain
func (c *ValidatorChain[T]) Add(v Validator[T]) *ValidatorChain[T] {
	c.validators = append(c.validators, v)
	return c
}

// AddFunc appends a validator function to the chain
func (c *ValidatorChain[T]) AddFunc(fn func(T) ValidationResult) *ValidatorChain[T] {
	return c.Add(ValidatorFunc[T](fn))
}

// StopOnFirstError makes the chain stop after the first failing validator.
// By default all errors are collected.
func (c *ValidatorChain[T]) StopOnFirstError(stop bool) *ValidatorChain[T] {
	c.stopOnFirstError = stop
	return c
}

// Validate runs the chain against value
func (c *ValidatorChain[T]) Validate(value T) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))
	for _, v := range c.validators {
		result := v.Validate(value)
		results = append(results, result)
		if c.stopOnFirstError && !result.Valid {
			break
		}
	}
	return Combine(results...)
}

// Length returns the number of validators in the chain
func (c *ValidatorChain[T]) Length() int {
	return len(c.validators)
}

// String returns a string representation of the chain
func (c *ValidatorChain[T]) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirstError: %v}",
		name, len(c.validators), c.stopOnFirstError)
}

// NonNegative checks that an integer field is >= 0
func NonNegative(field string, value int) ValidationResult {
	if value < 0 {
		return Invalid(fxerror.CodeValueOutOfRange, field, "must not be negative", value)
	}
	return Valid()
}

// Required checks that a string field is not blank
func Required(field, value string) ValidationResult {
	if strings.TrimSpace(value) == "" {
		return Invalid(fxerror.CodeRequiredField, field, "is required", value)
	}
	return Valid()
}

// OneOf checks that a string field holds one of the allowed values
func OneOf(field, value string, allowed ...string) ValidationResult {
	if slices.Contains(allowed, value) {
		return Valid()
	}
	return Invalid(fxerror.CodeValidationFailed, field,
		fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")), value)
}
