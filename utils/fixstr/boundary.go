// File: boundary.go
// Title: Boundary and Capacity Validator
// Description: Pure checks for index bounds, char boundaries and capacity,
//              shared by every strict constructor and mutator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package fixstr

import (
	"github.com/msto63/fixstr/utils/stringx"
)

// CheckIndex returns an OutOfBounds error unless 0 <= index <= length
func CheckIndex(index, length int) error {
	if index < 0 || index > length {
		return &StringError{Kind: KindOutOfBounds, Op: "check_index", Index: index, Length: length}
	}
	return nil
}

// CheckCharBoundary returns a NotCharBoundary error unless index is 0,
// len(s), or the start of an encoded rune in s. Run CheckIndex first.
func CheckCharBoundary(s string, index int) error {
	return checkBoundary(s, index)
}

// CheckCapacity returns a CapacityOverflow error unless needed <= remaining
func CheckCapacity(remaining, needed int) error {
	if needed > remaining {
		return &StringError{Kind: KindCapacityOverflow, Op: "check_capacity", Needed: needed, Remaining: remaining}
	}
	return nil
}

func checkBoundary[S ~string | ~[]byte](s S, index int) error {
	if !stringx.IsCharBoundary(s, index) {
		return &StringError{Kind: KindNotCharBoundary, Op: "check_char_boundary", Index: index, Length: len(s)}
	}
	return nil
}

// checkPosition runs the index check and then the boundary check against
// the content.
func (s *String) checkPosition(op string, index int) error {
	if err := CheckIndex(index, s.n); err != nil {
		return stamp(err, op)
	}
	if err := checkBoundary(s.content(), index); err != nil {
		return stamp(err, op)
	}
	return nil
}

// checkFits runs the capacity check for needed more bytes
func (s *String) checkFits(op string, needed int) error {
	return stamp(CheckCapacity(s.Remaining(), needed), op)
}
