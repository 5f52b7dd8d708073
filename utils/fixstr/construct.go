// File: construct.go
// Title: Construction Layer
// Description: Constructors from strings, rune and string sequences, UTF-8
//              bytes and UTF-16 code units in strict, truncating and
//              unchecked variants.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package fixstr

import (
	"iter"

	"github.com/msto63/fixstr/utils/stringx"
)

// TryFromString returns a String holding s, or CapacityOverflow if s does
// not fit.
func TryFromString(capacity int, s string) (*String, error) {
	out := New(capacity)
	if err := out.checkFits("from_string", len(s)); err != nil {
		return nil, err
	}
	out.appendString(s)
	return out, nil
}

// FromString returns a String holding the longest prefix of s that fits and
// ends on a char boundary.
func FromString(capacity int, s string) *String {
	out := New(capacity)
	out.PushStr(s)
	return out
}

// TryFromRunes returns a String holding the runes of seq, or
// CapacityOverflow as soon as one does not fit.
func TryFromRunes(capacity int, seq iter.Seq[rune]) (*String, error) {
	out := New(capacity)
	for r := range seq {
		if err := out.TryPush(r); err != nil {
			return nil, stamp(err, "from_runes")
		}
	}
	return out, nil
}

// FromRunes returns a String holding the runes of seq up to the first one
// that does not fit.
func FromRunes(capacity int, seq iter.Seq[rune]) *String {
	out := New(capacity)
	for r := range seq {
		if runeLen(r) > out.Remaining() {
			break
		}
		out.appendRune(r)
	}
	return out
}

// TryFromSeq returns a String holding the concatenation of seq, or
// CapacityOverflow as soon as an item does not fit.
func TryFromSeq[S ~string](capacity int, seq iter.Seq[S]) (*String, error) {
	out := New(capacity)
	for item := range seq {
		if err := out.TryPushStr(string(item)); err != nil {
			return nil, stamp(err, "from_seq")
		}
	}
	return out, nil
}

// FromSeq appends each item of seq with PushStr, so an item that does not
// fit is cut at a char boundary and later items still fill what remains.
func FromSeq[S ~string](capacity int, seq iter.Seq[S]) *String {
	out := New(capacity)
	for item := range seq {
		out.PushStr(string(item))
	}
	return out
}

// TryFromUTF8 returns a String holding b, or UTF8Invalid if b is not valid
// UTF-8, or CapacityOverflow if it does not fit.
func TryFromUTF8(capacity int, b []byte) (*String, error) {
	if err := checkUTF8("from_utf8", b); err != nil {
		return nil, err
	}
	out := New(capacity)
	if err := out.checkFits("from_utf8", len(b)); err != nil {
		return nil, err
	}
	out.n = copy(out.buf, b)
	return out, nil
}

// FromUTF8 returns a String holding the valid UTF-8 prefix of b, truncated
// at a char boundary to fit. It never fails.
func FromUTF8(capacity int, b []byte) *String {
	out := New(capacity)
	valid := b[:validUpTo(b)]
	out.n = copy(out.buf, valid[:stringx.FloorCharBoundary(valid, capacity)])
	return out
}

// FromUTF8Unchecked copies b without validation. b must be valid UTF-8 and
// fit the capacity; otherwise the result violates the String invariants.
func FromUTF8Unchecked(capacity int, b []byte) *String {
	out := New(capacity)
	out.n = copy(out.buf, b)
	return out
}

// TryFromUTF16 decodes units, or returns UTF16Invalid at the first unpaired
// surrogate, or CapacityOverflow if the decoded text does not fit.
func TryFromUTF16(capacity int, units []uint16) (*String, error) {
	size, invalidAt := scanUTF16(units)
	if invalidAt >= 0 {
		return nil, &StringError{Kind: KindUTF16Invalid, Op: "from_utf16", Index: invalidAt}
	}
	out := New(capacity)
	if err := out.checkFits("from_utf16", size); err != nil {
		return nil, err
	}
	out.decodeUTF16(units, false)
	return out, nil
}

// FromUTF16 decodes units, stopping before the first scalar that does not
// fit. It returns UTF16Invalid at the first unpaired surrogate, even one
// past the cut.
func FromUTF16(capacity int, units []uint16) (*String, error) {
	if _, invalidAt := scanUTF16(units); invalidAt >= 0 {
		return nil, &StringError{Kind: KindUTF16Invalid, Op: "from_utf16", Index: invalidAt}
	}
	out := New(capacity)
	out.decodeUTF16(units, false)
	return out, nil
}

// FromUTF16Lossy decodes units with U+FFFD for each unpaired surrogate,
// stopping before the first scalar that does not fit.
func FromUTF16Lossy(capacity int, units []uint16) *String {
	out := New(capacity)
	out.decodeUTF16(units, true)
	return out
}
