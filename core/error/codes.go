// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across fixstr modules. The codes
//              classify string container failures, script and configuration
//              problems for logging and CLI exit handling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with string container codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// String container
	CodeOutOfBounds      Code = "OUT_OF_BOUNDS"
	CodeNotCharBoundary  Code = "NOT_CHAR_BOUNDARY"
	CodeInvalidUTF8      Code = "INVALID_UTF8"
	CodeInvalidUTF16     Code = "INVALID_UTF16"
	CodeCapacityOverflow Code = "CAPACITY_OVERFLOW"

	// Scripts
	CodeScriptSyntax    Code = "SCRIPT_SYNTAX"
	CodeScriptOperation Code = "SCRIPT_OPERATION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeOutOfBounds, CodeNotCharBoundary, CodeInvalidUTF8, CodeInvalidUTF16, CodeCapacityOverflow,
		CodeScriptSyntax, CodeScriptOperation,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeOutOfBounds, CodeNotCharBoundary, CodeCapacityOverflow:
		return "bounds"
	case CodeInvalidUTF8, CodeInvalidUTF16:
		return "encoding"
	case CodeScriptSyntax, CodeScriptOperation:
		return "script"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c.Category() {
	case "bounds", "encoding":
		return 3
	case "script", "validation":
		return 4
	case "configuration":
		return 5
	default:
		return 1
	}
}
