// File: encoding.go
// Title: Encoding Converters
// Description: UTF-8 validation with valid-up-to reporting and UTF-16
//              decoding with strict and lossy surrogate handling, both
//              bounded by the destination capacity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package fixstr

import (
	"unicode/utf16"
	"unicode/utf8"
)

// validUpTo returns the length of the longest valid UTF-8 prefix of b
func validUpTo(b []byte) int {
	if utf8.Valid(b) {
		return len(b)
	}
	i := 0
	for i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		i += size
	}
	return i
}

// checkUTF8 returns a UTF8Invalid error carrying the valid prefix length
func checkUTF8(op string, b []byte) error {
	if n := validUpTo(b); n != len(b) {
		return &StringError{Kind: KindUTF8Invalid, Op: op, ValidUpTo: n}
	}
	return nil
}

// nextUTF16 decodes the scalar at the start of units. ok is false for an
// unpaired surrogate, which consumes one unit.
func nextUTF16(units []uint16) (r rune, width int, ok bool) {
	u := rune(units[0])
	if !utf16.IsSurrogate(u) {
		return u, 1, true
	}
	if u < 0xDC00 && len(units) > 1 {
		if r := utf16.DecodeRune(u, rune(units[1])); r != utf8.RuneError {
			return r, 2, true
		}
	}
	return utf8.RuneError, 1, false
}

// scanUTF16 returns the UTF-8 length of units and the index of the first
// unpaired surrogate, or -1.
func scanUTF16(units []uint16) (size, invalidAt int) {
	for i := 0; i < len(units); {
		r, w, ok := nextUTF16(units[i:])
		if !ok {
			return size, i
		}
		size += utf8.RuneLen(r)
		i += w
	}
	return size, -1
}

// decodeUTF16 appends the scalars of units to s while they fit. Unpaired
// surrogates become U+FFFD when lossy is set and stop decoding otherwise.
// A scalar that does not fit stops decoding; no partial encoding is written.
func (s *String) decodeUTF16(units []uint16, lossy bool) {
	for i := 0; i < len(units); {
		r, w, ok := nextUTF16(units[i:])
		if !ok && !lossy {
			return
		}
		if utf8.RuneLen(r) > s.Remaining() {
			return
		}
		s.appendRune(r)
		i += w
	}
}
