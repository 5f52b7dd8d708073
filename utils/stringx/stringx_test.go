// File: stringx_test.go
// Title: Unit Tests for UTF-8 String Utilities
// Description: Table-driven tests for blank checks, char boundary arithmetic
//              and rune iteration helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package stringx

import (
	"slices"
	"testing"
	"unicode/utf8"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"spaces", "   ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"no-break space", " ", true},
		{"content", "hello", false},
		{"content with padding", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, got, tt.expected)
			}
			if got := IsNotBlank(tt.input); got == tt.expected {
				t.Errorf("IsNotBlank(%q) = %v; want %v", tt.input, got, !tt.expected)
			}
		})
	}
}

func TestIsCharBoundary(t *testing.T) {
	s := "a€b" // 'a' 0, '€' 1..4, 'b' 4
	tests := []struct {
		index    int
		expected bool
	}{
		{-1, false},
		{0, true},
		{1, true},
		{2, false},
		{3, false},
		{4, true},
		{5, true},
		{6, false},
	}

	for _, tt := range tests {
		if got := IsCharBoundary(s, tt.index); got != tt.expected {
			t.Errorf("IsCharBoundary(%q, %d) = %v; want %v", s, tt.index, got, tt.expected)
		}
		if got := IsCharBoundary([]byte(s), tt.index); got != tt.expected {
			t.Errorf("IsCharBoundary([]byte(%q), %d) = %v; want %v", s, tt.index, got, tt.expected)
		}
	}
}

func TestFloorCharBoundary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected int
	}{
		{"empty", "", 3, 0},
		{"negative", "abc", -2, 0},
		{"ascii inside", "abcdef", 4, 4},
		{"past end", "abc", 10, 3},
		{"exact end", "abc", 3, 3},
		{"inside emoji", "🤔🤔", 6, 4},
		{"emoji boundary", "🤔🤔", 4, 4},
		{"inside first emoji", "🤔", 3, 0},
		{"two byte rune", "ßß", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloorCharBoundary(tt.input, tt.n); got != tt.expected {
				t.Errorf("FloorCharBoundary(%q, %d) = %d; want %d", tt.input, tt.n, got, tt.expected)
			}
		})
	}
}

func TestTruncateBytes(t *testing.T) {
	tests := []struct {
		input    string
		n        int
		expected string
	}{
		{"hello", 10, "hello"},
		{"hello", 2, "he"},
		{"héllo", 2, "h"},
		{"🤔🤔🤔", 9, "🤔🤔"},
		{"🤔", 0, ""},
	}

	for _, tt := range tests {
		got := TruncateBytes(tt.input, tt.n)
		if got != tt.expected {
			t.Errorf("TruncateBytes(%q, %d) = %q; want %q", tt.input, tt.n, got, tt.expected)
		}
		if !utf8.ValidString(got) {
			t.Errorf("TruncateBytes(%q, %d) produced invalid UTF-8", tt.input, tt.n)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "short", 10, "...", "short"},
		{"cut ascii", "This is a long text", 10, "...", "This is..."},
		{"cut unicode", "これは日本語のテキストです", 8, "...", "これは日本..."},
		{"ellipsis too long", "abcdef", 2, "...", "ab"},
		{"zero", "abc", 0, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.expected)
			}
		})
	}
}

func TestRunes(t *testing.T) {
	got := slices.Collect(Runes("a€🤔"))
	want := []rune{'a', '€', '🤔'}
	if !slices.Equal(got, want) {
		t.Errorf("Runes() = %q; want %q", got, want)
	}

	// early break must not panic
	for r := range Runes("abc") {
		if r == 'b' {
			break
		}
	}
}

func TestScalarRune(t *testing.T) {
	tests := []struct {
		input    rune
		expected rune
	}{
		{'a', 'a'},
		{0xD800, utf8.RuneError},
		{0x110000, utf8.RuneError},
		{-1, utf8.RuneError},
		{'🤔', '🤔'},
	}

	for _, tt := range tests {
		if got := ScalarRune(tt.input); got != tt.expected {
			t.Errorf("ScalarRune(%U) = %U; want %U", tt.input, got, tt.expected)
		}
	}
}
