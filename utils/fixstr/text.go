// File: text.go
// Title: Comparison, Iteration and Standard Interfaces
// Description: Clone, comparison, rune iteration, io.Writer and
//              encoding.TextMarshaler support for String.
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
	"fmt"
	"io"
	"iter"
	"unicode/utf8"

	"github.com/msto63/fixstr/utils/stringx"
)

var (
	_ io.Writer       = (*String)(nil)
	_ io.StringWriter = (*String)(nil)
	_ fmt.Stringer    = (*String)(nil)
	_ fmt.GoStringer  = (*String)(nil)
)

// Clone returns an independent copy with the same capacity and content
func (s *String) Clone() *String {
	out := New(len(s.buf))
	out.n = copy(out.buf, s.content())
	return out
}

// Equal reports whether s and other hold the same content. Capacities are
// not compared.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.content(), other.content())
}

// Compare compares the contents lexicographically by byte, returning -1, 0
// or +1.
func (s *String) Compare(other *String) int {
	return bytes.Compare(s.content(), other.content())
}

// All iterates over the runes of the content with their byte offsets. The
// content must not be mutated during iteration.
func (s *String) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i := 0; i < s.n; {
			r, size := utf8.DecodeRune(s.buf[i:s.n])
			if !yield(i, r) {
				return
			}
			i += size
		}
	}
}

// Write appends p. Invalid UTF-8 is rejected with nothing written. If p does
// not fit, the longest boundary-aligned prefix is written and
// CapacityOverflow is returned with the short count.
func (s *String) Write(p []byte) (int, error) {
	if err := checkUTF8("write", p); err != nil {
		return 0, err
	}
	return s.WriteString(string(p))
}

// WriteString appends str with the truncation rules of Write
func (s *String) WriteString(str string) (int, error) {
	fit := stringx.TruncateBytes(str, s.Remaining())
	s.appendString(fit)
	if len(fit) < len(str) {
		return len(fit), &StringError{
			Kind: KindCapacityOverflow, Op: "write", Needed: len(str), Remaining: s.Remaining() + len(fit),
		}
	}
	return len(fit), nil
}

// WriteRune appends r and returns its encoded size, or CapacityOverflow
func (s *String) WriteRune(r rune) (int, error) {
	if err := s.TryPush(r); err != nil {
		return 0, err
	}
	return runeLen(r), nil
}

// MarshalText returns a copy of the content
func (s *String) MarshalText() ([]byte, error) {
	return bytes.Clone(s.content()), nil
}

// UnmarshalText replaces the content with text. Invalid UTF-8 or text larger
// than the capacity is an error and leaves s unchanged.
func (s *String) UnmarshalText(text []byte) error {
	if err := checkUTF8("unmarshal_text", text); err != nil {
		return err
	}
	if err := CheckCapacity(len(s.buf), len(text)); err != nil {
		return stamp(err, "unmarshal_text")
	}
	s.n = copy(s.buf, text)
	return nil
}

// GoString formats s for %#v
func (s *String) GoString() string {
	return fmt.Sprintf("fixstr.String{cap: %d, len: %d, s: %q}", len(s.buf), s.n, s.content())
}
