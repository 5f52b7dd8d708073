// File: doc.go
// Title: Package Documentation for fixstr
// Description: Package fixstr implements a fixed-capacity UTF-8 string
//              container with strict, truncating and unchecked operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial package documentation

// Package fixstr provides String, a UTF-8 string with a byte capacity fixed at
// construction.
//
// A String owns exactly Capacity() bytes, allocated once by its constructor.
// It never grows and never reallocates: every operation either fits into the
// remaining space or is handled by one of three variants.
//
//   - Strict operations (TryPush, TryPushStr, TryInsert, TryFromString, ...)
//     return a *StringError and leave the receiver untouched when an index is
//     out of bounds, splits an encoded rune, the input is not valid UTF-8 or
//     UTF-16, or the result would exceed the capacity.
//   - Truncating operations (Push, PushStr, InsertStr, FromString, ...) never
//     fail on capacity. They keep the longest prefix of the input that ends on
//     a char boundary and fits.
//   - Unchecked operations (PushUnchecked, InsertUnchecked, FromUTF8Unchecked,
//     ...) skip validation. The caller must already have run CheckIndex,
//     CheckCharBoundary and CheckCapacity; violating that is undefined
//     behavior and may panic or leave invalid UTF-8 behind.
//
// Content is always valid UTF-8 and Len() <= Capacity(). Runes that are not
// Unicode scalar values are stored as U+FFFD.
//
// Example:
//
//	s := fixstr.New(8)
//	s.PushStr("héllo wörld") // keeps "héllo w"
//	if err := s.TryPush('!'); errors.Is(err, fixstr.ErrCapacityOverflow) {
//		// content unchanged
//	}
//
// A String is not safe for concurrent mutation. Concurrent reads are fine.
package fixstr
