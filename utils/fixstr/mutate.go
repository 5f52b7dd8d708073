// File: mutate.go
// Title: Mutation Engine
// Description: In-place append, insert, remove, truncate, trim, retain,
//              split and range replacement. Every strict operation validates
//              before it writes and leaves the receiver unchanged on error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package fixstr

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/fixstr/utils/stringx"
)

// TryPush appends r, or returns CapacityOverflow
func (s *String) TryPush(r rune) error {
	if err := s.checkFits("push", runeLen(r)); err != nil {
		return err
	}
	s.appendRune(r)
	return nil
}

// Push appends r if it fits and does nothing otherwise
func (s *String) Push(r rune) {
	if runeLen(r) <= s.Remaining() {
		s.appendRune(r)
	}
}

// PushUnchecked appends r. The caller guarantees it fits.
func (s *String) PushUnchecked(r rune) {
	s.appendRune(r)
}

// TryPushStr appends str, or returns CapacityOverflow
func (s *String) TryPushStr(str string) error {
	if err := s.checkFits("push_str", len(str)); err != nil {
		return err
	}
	s.appendString(str)
	return nil
}

// PushStr appends the longest prefix of str that fits and ends on a char
// boundary.
func (s *String) PushStr(str string) {
	s.appendString(stringx.TruncateBytes(str, s.Remaining()))
}

// PushStrUnchecked appends str. The caller guarantees it fits.
func (s *String) PushStrUnchecked(str string) {
	s.appendString(str)
}

// TryInsert inserts r at byte index i. It returns OutOfBounds,
// NotCharBoundary or CapacityOverflow, checked in that order.
func (s *String) TryInsert(i int, r rune) error {
	if err := s.checkPosition("insert", i); err != nil {
		return err
	}
	if err := s.checkFits("insert", runeLen(r)); err != nil {
		return err
	}
	s.InsertUnchecked(i, r)
	return nil
}

// InsertUnchecked inserts r at byte index i. The caller guarantees that i is
// a char boundary within the content and that r fits.
func (s *String) InsertUnchecked(i int, r rune) {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	s.insertString(i, string(enc[:n]))
}

// TryInsertStr inserts str at byte index i. It returns OutOfBounds,
// NotCharBoundary or CapacityOverflow, checked in that order.
func (s *String) TryInsertStr(i int, str string) error {
	if err := s.checkPosition("insert_str", i); err != nil {
		return err
	}
	if err := s.checkFits("insert_str", len(str)); err != nil {
		return err
	}
	s.insertString(i, str)
	return nil
}

// InsertStr inserts the longest prefix of str that fits and ends on a char
// boundary. Only an invalid index is an error.
func (s *String) InsertStr(i int, str string) error {
	if err := s.checkPosition("insert_str", i); err != nil {
		return err
	}
	s.insertString(i, stringx.TruncateBytes(str, s.Remaining()))
	return nil
}

// InsertStrUnchecked inserts str at byte index i. The caller guarantees that
// i is a char boundary within the content and that str fits.
func (s *String) InsertStrUnchecked(i int, str string) {
	s.insertString(i, str)
}

// Pop removes and returns the last rune. ok is false if s is empty.
func (s *String) Pop() (r rune, ok bool) {
	if s.n == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(s.content())
	s.n -= size
	return r, true
}

// Truncate shortens the content to n bytes. It is a no-op when n >= Len().
func (s *String) Truncate(n int) error {
	if n < 0 {
		return &StringError{Kind: KindOutOfBounds, Op: "truncate", Index: n, Length: s.n}
	}
	if n >= s.n {
		return nil
	}
	if err := checkBoundary(s.content(), n); err != nil {
		return stamp(err, "truncate")
	}
	s.n = n
	return nil
}

// Remove removes and returns the rune starting at byte index i
func (s *String) Remove(i int) (rune, error) {
	if i < 0 || i >= s.n {
		return 0, &StringError{Kind: KindOutOfBounds, Op: "remove", Index: i, Length: s.n}
	}
	if err := checkBoundary(s.content(), i); err != nil {
		return 0, stamp(err, "remove")
	}
	r, size := utf8.DecodeRune(s.buf[i:s.n])
	s.splice(i, i+size, "")
	return r, nil
}

// Retain keeps only the runes for which keep returns true, in order
func (s *String) Retain(keep func(rune) bool) {
	w := 0
	for i := 0; i < s.n; {
		r, size := utf8.DecodeRune(s.buf[i:s.n])
		if keep(r) {
			w += copy(s.buf[w:], s.buf[i:i+size])
		}
		i += size
	}
	s.n = w
}

// Trim removes leading and trailing white space as defined by unicode.IsSpace
func (s *String) Trim() {
	s.TrimEnd()
	s.TrimStart()
}

// TrimStart removes leading white space
func (s *String) TrimStart() {
	rest := bytes.TrimLeftFunc(s.content(), unicode.IsSpace)
	s.splice(0, s.n-len(rest), "")
}

// TrimEnd removes trailing white space
func (s *String) TrimEnd() {
	s.n = len(bytes.TrimRightFunc(s.content(), unicode.IsSpace))
}

// Clear empties the content. The capacity is unchanged.
func (s *String) Clear() {
	s.n = 0
}

// SplitOff moves content[at:] into a new String of the same capacity and
// truncates s to at.
func (s *String) SplitOff(at int) (*String, error) {
	if err := s.checkPosition("split_off", at); err != nil {
		return nil, err
	}
	tail := New(len(s.buf))
	tail.n = copy(tail.buf, s.buf[at:s.n])
	s.n = at
	return tail, nil
}

// ReplaceRange replaces the bytes in [start, end) with str. Bounds and
// boundaries are checked first, then the capacity of the result.
func (s *String) ReplaceRange(start, end int, str string) error {
	const op = "replace_range"
	if start > end {
		return &StringError{Kind: KindOutOfBounds, Op: op, Index: start, Length: s.n}
	}
	if err := s.checkPosition(op, end); err != nil {
		return err
	}
	if err := s.checkPosition(op, start); err != nil {
		return err
	}
	if err := stamp(CheckCapacity(s.Remaining()+(end-start), len(str)), op); err != nil {
		return err
	}
	s.splice(start, end, str)
	return nil
}
