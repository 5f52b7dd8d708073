// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides UTF-8 helpers that operate on byte
//              offsets rather than rune counts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial package documentation

// Package stringx provides UTF-8 helpers that operate on byte offsets.
//
// The functions here are the shared arithmetic behind the fixstr container:
// deciding whether a byte offset is a char boundary, and finding the largest
// boundary at or below a byte budget so that truncation never splits an
// encoded rune.
//
//	stringx.FloorCharBoundary("🤔🤔", 6) // 4
//	stringx.TruncateBytes("héllo", 2)    // "h"
//
// All functions are pure and safe for concurrent use.
package stringx
