// File: errors.go
// Title: Shared Error Construction Utilities
// Description: Provides the per-module error builder and the standard error
//              constructors every fixstr module uses instead of fmt.Errorf,
//              so that module and operation end up in the error details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"errors"
	"fmt"

	fxerror "github.com/msto63/fixstr/core/error"
)

// Module identifiers for error categorization
const (
	ModuleFixstr     = "fixstr"
	ModuleScript     = "script"
	ModuleConfig     = "config"
	ModuleValidation = "validation"
	ModuleCLI        = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  fxerror.Severity
	code      fxerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: fxerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity fxerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code fxerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error. A missing code is taken from the cause when
// it carries one; a missing message is derived from module and operation.
func (eb *ErrorBuilder) Build() *fxerror.Error {
	if eb.code == "" {
		eb.code = fxerror.GetCode(eb.cause)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *fxerror.Error
	if eb.cause != nil {
		err = fxerror.Wrap(eb.cause, eb.message)
	} else {
		err = fxerror.New(eb.message)
	}

	err = err.WithDetails(eb.details).WithSeverity(eb.severity).WithCode(eb.code)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	return err
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *fxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(fxerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(fxerror.SeverityLow).
		Build()
}

// ValidationFailed creates a standardized validation error for a single field
func ValidationFailed(module, field string, value interface{}, reason string) *fxerror.Error {
	return NewErrorBuilder(module).
		Operation("validate_"+field).
		Messagef("validation failed for field %s: %s", field, reason).
		Code(fxerror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(fxerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *fxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value %v out of range [%v, %v] in %s.%s", value, min, max, module, operation).
		Code(fxerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(fxerror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *fxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found in %s.%s", identifier, module, operation).
		Code(fxerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// OperationFailed wraps cause as the failure of module.operation. The code of
// cause is preserved when it has one.
func OperationFailed(module, operation string, cause error) *fxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s failed", module, operation).
		Cause(cause).
		Severity(fxerror.GetSeverity(cause)).
		Build()
}

// ExtractDetails extracts all details from the first structured error in the chain
func ExtractDetails(err error) map[string]interface{} {
	var e *fxerror.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// IsModuleError checks if the error was built for the given module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}
