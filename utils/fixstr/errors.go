// File: errors.go
// Title: String Error Model
// Description: Error kinds returned by strict fixstr operations and their
//              mapping to structured error codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package fixstr

import (
	"errors"
	"fmt"

	fxerror "github.com/msto63/fixstr/core/error"
)

// ErrorKind classifies a StringError
type ErrorKind int

const (
	// KindOutOfBounds means a byte index exceeds the current length
	KindOutOfBounds ErrorKind = iota + 1
	// KindNotCharBoundary means a byte index splits an encoded rune
	KindNotCharBoundary
	// KindUTF8Invalid means input bytes are not valid UTF-8
	KindUTF8Invalid
	// KindUTF16Invalid means input code units contain an unpaired surrogate
	KindUTF16Invalid
	// KindCapacityOverflow means the result would not fit the capacity
	KindCapacityOverflow
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindOutOfBounds:
		return "out of bounds"
	case KindNotCharBoundary:
		return "not a char boundary"
	case KindUTF8Invalid:
		return "invalid utf-8"
	case KindUTF16Invalid:
		return "invalid utf-16"
	case KindCapacityOverflow:
		return "capacity overflow"
	default:
		return "unknown"
	}
}

// Code returns the structured error code for the kind
func (k ErrorKind) Code() fxerror.Code {
	switch k {
	case KindOutOfBounds:
		return fxerror.CodeOutOfBounds
	case KindNotCharBoundary:
		return fxerror.CodeNotCharBoundary
	case KindUTF8Invalid:
		return fxerror.CodeInvalidUTF8
	case KindUTF16Invalid:
		return fxerror.CodeInvalidUTF16
	case KindCapacityOverflow:
		return fxerror.CodeCapacityOverflow
	default:
		return fxerror.CodeUnknown
	}
}

// StringError is returned by strict operations. Only the fields relevant to
// Kind are set.
type StringError struct {
	Kind      ErrorKind
	Op        string // operation that failed, e.g. "insert_str"
	Index     int    // offending byte index, or code unit index for UTF-16
	Length    int    // length of the string at the time of the call
	ValidUpTo int    // UTF-8 prefix length that validated
	Needed    int    // bytes requested
	Remaining int    // bytes available
}

// Sentinels for errors.Is. They match any StringError of the same kind.
var (
	ErrOutOfBounds      = &StringError{Kind: KindOutOfBounds}
	ErrNotCharBoundary  = &StringError{Kind: KindNotCharBoundary}
	ErrUTF8Invalid      = &StringError{Kind: KindUTF8Invalid}
	ErrUTF16Invalid     = &StringError{Kind: KindUTF16Invalid}
	ErrCapacityOverflow = &StringError{Kind: KindCapacityOverflow}
)

func (e *StringError) Error() string {
	msg := "fixstr: "
	if e.Op != "" {
		msg += e.Op + ": "
	}
	msg += e.Kind.String()
	if e.Op == "" {
		return msg
	}

	switch e.Kind {
	case KindOutOfBounds:
		msg += fmt.Sprintf(" (index %d, length %d)", e.Index, e.Length)
	case KindNotCharBoundary:
		msg += fmt.Sprintf(" (index %d)", e.Index)
	case KindUTF8Invalid:
		msg += fmt.Sprintf(" (valid up to %d)", e.ValidUpTo)
	case KindUTF16Invalid:
		msg += fmt.Sprintf(" (unit %d)", e.Index)
	case KindCapacityOverflow:
		msg += fmt.Sprintf(" (needed %d, remaining %d)", e.Needed, e.Remaining)
	}
	return msg
}

// Is reports whether target is a StringError of the same kind
func (e *StringError) Is(target error) bool {
	t, ok := target.(*StringError)
	return ok && t.Kind == e.Kind
}

// Code returns the structured error code for the kind
func (e *StringError) Code() fxerror.Code {
	return e.Kind.Code()
}

// KindOf returns the kind of the first StringError in err's chain, or 0
func KindOf(err error) ErrorKind {
	var se *StringError
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// AsStructured lifts err into a structured error carrying the kind's code and
// the payload fields as details. Other errors are wrapped unchanged; nil stays
// nil.
func AsStructured(err error) *fxerror.Error {
	if err == nil {
		return nil
	}

	var se *StringError
	if !errors.As(err, &se) {
		return fxerror.Wrap(err, err.Error())
	}

	out := fxerror.Wrap(err, se.Kind.String()).WithCode(se.Code())
	if se.Op != "" {
		out = out.WithOperation("fixstr." + se.Op)
	}

	switch se.Kind {
	case KindOutOfBounds:
		out = out.WithDetail("index", se.Index).WithDetail("length", se.Length)
	case KindNotCharBoundary, KindUTF16Invalid:
		out = out.WithDetail("index", se.Index)
	case KindUTF8Invalid:
		out = out.WithDetail("valid_up_to", se.ValidUpTo)
	case KindCapacityOverflow:
		out = out.WithDetail("needed", se.Needed).WithDetail("remaining", se.Remaining)
	}
	return out
}

// stamp records op on a freshly created StringError
func stamp(err error, op string) error {
	if se, ok := err.(*StringError); ok {
		se.Op = op
	}
	return err
}
