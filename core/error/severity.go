// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so the logger can pick a
//              level and the CLI can decide whether a failure is fatal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates rejected input that leaves all state intact
	// Examples: index out of bounds, capacity overflow on a strict append
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation that callers should report
	SeverityMedium

	// SeverityHigh indicates a failure that stops a whole run
	// Examples: unreadable script, broken configuration
	SeverityHigh

	// SeverityCritical indicates a broken internal invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should abort processing
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeScriptSyntax:
		return SeverityHigh
	case CodeOutOfBounds, CodeNotCharBoundary, CodeInvalidUTF8, CodeInvalidUTF16, CodeCapacityOverflow,
		CodeInvalidInput, CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
