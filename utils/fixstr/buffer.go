// File: buffer.go
// Title: Inline Buffer
// Description: The String type, its accessors and the raw write primitives
//              used by construction and mutation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package fixstr

import (
	"fmt"
	"unicode/utf8"

	"github.com/msto63/fixstr/utils/stringx"
)

// String is a UTF-8 string with a fixed byte capacity. The zero value is an
// empty string of capacity 0.
type String struct {
	buf []byte // len(buf) is the capacity; buf[:n] is the content
	n   int
}

// New returns an empty String with the given byte capacity. It panics if
// capacity is negative.
func New(capacity int) *String {
	if capacity < 0 {
		panic(fmt.Sprintf("fixstr: negative capacity %d", capacity))
	}
	return &String{buf: make([]byte, capacity)}
}

// Len returns the length of the content in bytes
func (s *String) Len() int {
	return s.n
}

// IsEmpty reports whether the content is empty
func (s *String) IsEmpty() bool {
	return s.n == 0
}

// Capacity returns the fixed byte capacity
func (s *String) Capacity() int {
	return len(s.buf)
}

// Remaining returns the number of bytes that can still be appended
func (s *String) Remaining() int {
	return len(s.buf) - s.n
}

// IsFull reports whether no byte can be appended
func (s *String) IsFull() bool {
	return s.n == len(s.buf)
}

// String returns the content. The result is a copy and stays valid across
// later mutations.
func (s *String) String() string {
	return string(s.buf[:s.n])
}

// IsCharBoundary reports whether i is 0, Len(), or the start of an encoded
// rune.
func (s *String) IsCharBoundary(i int) bool {
	return stringx.IsCharBoundary(s.content(), i)
}

// content is a read view of the valid bytes
func (s *String) content() []byte {
	return s.buf[:s.n]
}

// appendString writes p after the content. Callers ensure it fits.
func (s *String) appendString(p string) {
	s.n += copy(s.buf[s.n:s.n+len(p)], p)
}

// appendRune writes the encoding of r after the content. Callers ensure it fits.
func (s *String) appendRune(r rune) {
	s.n += utf8.EncodeRune(s.buf[s.n:], r)
}

// insertString shifts content[i:] right by len(p) and writes p at i. Callers
// ensure i is a boundary and p fits.
func (s *String) insertString(i int, p string) {
	end := s.n + len(p)
	copy(s.buf[i+len(p):end], s.buf[i:s.n])
	copy(s.buf[i:], p)
	s.n = end
}

// splice replaces content[start:end] with p. Callers ensure both ends are
// boundaries and the result fits.
func (s *String) splice(start, end int, p string) {
	tail := start + len(p)
	copy(s.buf[tail:], s.buf[end:s.n])
	copy(s.buf[start:], p)
	s.n = s.n - (end - start) + len(p)
}

// runeLen returns the encoded length of r, counting invalid runes as U+FFFD
func runeLen(r rune) int {
	return utf8.RuneLen(stringx.ScalarRune(r))
}
