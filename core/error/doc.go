// Package error provides the structured error type used at fixstr module
// boundaries.
//
// Package: error
// Title: Structured Errors for fixstr
// Description: Contextual errors with codes, severities, details and stack
//              traces. The string container itself returns lightweight
//              errors; this package is what the script runner and the CLI
//              log and map to exit codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//
//	import fxerror "github.com/msto63/fixstr/core/error"
//
//	err := fxerror.New("script step failed").
//		WithCode(fxerror.CodeScriptOperation).
//		WithOperation("script.run").
//		WithDetail("step", 3)
//
//	if fxerror.HasCode(err, fxerror.CodeCapacityOverflow) {
//		// handle overflow
//	}
package error
