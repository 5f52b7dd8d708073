// File: stringx.go
// Title: UTF-8 String Utility Functions
// Description: Stateless helpers shared by the fixstr container and the CLI:
//              blank checks, char boundary arithmetic on UTF-8 byte sequences
//              and rune iterators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with boundary helpers

package stringx

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one non-whitespace rune.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsContinuation reports whether b is a UTF-8 continuation byte (10xxxxxx).
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// IsCharBoundary reports whether index i of s starts or ends a UTF-8 encoded
// rune. Indexes 0 and len(s) are always boundaries; indexes outside
// [0, len(s)] never are.
func IsCharBoundary[S ~string | ~[]byte](s S, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	if i < 0 || i > len(s) {
		return false
	}
	return !IsContinuation(s[i])
}

// FloorCharBoundary returns the largest char boundary of s that is <= n.
// n is clamped to [0, len(s)]. For valid UTF-8 input the result never splits
// an encoded rune.
func FloorCharBoundary[S ~string | ~[]byte](s S, n int) int {
	if n >= len(s) {
		return len(s)
	}
	if n <= 0 {
		return 0
	}
	// at most three continuation bytes precede a boundary in valid UTF-8
	for n > 0 && IsContinuation(s[n]) {
		n--
	}
	return n
}

// TruncateBytes returns the longest prefix of s that is at most n bytes long
// and ends on a char boundary.
func TruncateBytes[S ~string | ~[]byte](s S, n int) S {
	return s[:FloorCharBoundary(s, n)]
}

// Truncate shortens s to at most maxLen runes, appending ellipsis when content
// was cut. The ellipsis counts against maxLen.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	keep := maxLen - utf8.RuneCountInString(ellipsis)
	if keep <= 0 {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:keep]) + ellipsis
}

// Runes returns an iterator over the runes of s.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// ScalarRune maps runes that are not Unicode scalar values (surrogate halves,
// values above utf8.MaxRune, negative values) to utf8.RuneError.
func ScalarRune(r rune) rune {
	if utf8.ValidRune(r) {
		return r
	}
	return utf8.RuneError
}
