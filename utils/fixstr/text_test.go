// File: text_test.go
// Title: Standard Interface and Error Tests
// Description: Tests for Clone, comparison, iteration, io.Writer, text
//              marshaling and the structured error mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package fixstr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	fxerror "github.com/msto63/fixstr/core/error"
)

func TestCloneAndCompare(t *testing.T) {
	a := mustFromString(t, 8, "abc")
	b := a.Clone()
	b.Push('d')

	if a.String() != "abc" || b.String() != "abcd" {
		t.Fatalf("clone shares storage: %q %q", a.String(), b.String())
	}
	if a.Equal(b) || a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Errorf("comparison of %q and %q", a.String(), b.String())
	}
	if !a.Equal(mustFromString(t, 3, "abc")) {
		t.Error("Equal compares capacity")
	}
}

func TestAll(t *testing.T) {
	s := mustFromString(t, 16, "aé🤔b")
	var offsets []int
	var runes []rune
	for i, r := range s.All() {
		offsets = append(offsets, i)
		runes = append(runes, r)
	}
	if fmt.Sprint(offsets) != "[0 1 3 7]" || string(runes) != "aé🤔b" {
		t.Errorf("All() = %v %q", offsets, string(runes))
	}

	for i := range s.All() {
		if i > 0 {
			t.Fatal("iteration did not stop")
		}
		break
	}
}

func TestWrite(t *testing.T) {
	s := New(6)
	n, err := fmt.Fprintf(s, "%d-%s", 42, "é🤔")
	if !errors.Is(err, ErrCapacityOverflow) {
		t.Errorf("Fprintf error = %v, want capacity overflow", err)
	}
	if s.String() != "42-é" || n != 5 {
		t.Errorf("content = %q, n = %d", s.String(), n)
	}

	s = New(8)
	if n, err := s.Write([]byte("ab\xff")); n != 0 || !errors.Is(err, ErrUTF8Invalid) || !s.IsEmpty() {
		t.Errorf("Write(invalid) = %d, %v", n, err)
	}
	if n, err := s.WriteString("abc"); n != 3 || err != nil {
		t.Errorf("WriteString = %d, %v", n, err)
	}
	if n, err := s.WriteRune('é'); n != 2 || err != nil {
		t.Errorf("WriteRune = %d, %v", n, err)
	}
	if n, err := s.WriteRune('🤔'); n != 0 || !errors.Is(err, ErrCapacityOverflow) {
		t.Errorf("WriteRune overflow = %d, %v", n, err)
	}
	if s.String() != "abcé" {
		t.Errorf("content = %q", s.String())
	}
}

func TestTextMarshaling(t *testing.T) {
	type doc struct {
		Name *String `json:"name"`
	}

	in := doc{Name: mustFromString(t, 8, "héllo")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"héllo"}` {
		t.Errorf("Marshal = %s", data)
	}

	out := doc{Name: New(8)}
	if err := json.Unmarshal(data, &out); err != nil || out.Name.String() != "héllo" {
		t.Errorf("Unmarshal = %v, %v", out.Name, err)
	}

	small := doc{Name: mustFromString(t, 3, "abc")}
	err = json.Unmarshal(data, &small)
	if !errors.Is(err, ErrCapacityOverflow) {
		t.Errorf("Unmarshal into small error = %v", err)
	}
	if small.Name.String() != "abc" {
		t.Errorf("content changed on error: %q", small.Name.String())
	}

	if err := New(8).UnmarshalText(invalidUTF8[1:]); !errors.Is(err, ErrUTF8Invalid) {
		t.Errorf("UnmarshalText(invalid) error = %v", err)
	}
}

func TestGoString(t *testing.T) {
	got := fmt.Sprintf("%#v", mustFromString(t, 4, "ab"))
	if got != `fixstr.String{cap: 4, len: 2, s: "ab"}` {
		t.Errorf("GoString = %s", got)
	}
	if got := fmt.Sprintf("%v", mustFromString(t, 4, "ab")); got != "ab" {
		t.Errorf("%%v = %s", got)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrOutOfBounds, "fixstr: out of bounds"},
		{&StringError{Kind: KindOutOfBounds, Op: "insert", Index: 5, Length: 2}, "fixstr: insert: out of bounds (index 5, length 2)"},
		{&StringError{Kind: KindNotCharBoundary, Op: "remove", Index: 1}, "fixstr: remove: not a char boundary (index 1)"},
		{&StringError{Kind: KindUTF8Invalid, Op: "from_utf8", ValidUpTo: 3}, "fixstr: from_utf8: invalid utf-8 (valid up to 3)"},
		{&StringError{Kind: KindUTF16Invalid, Op: "from_utf16", Index: 4}, "fixstr: from_utf16: invalid utf-16 (unit 4)"},
		{&StringError{Kind: KindCapacityOverflow, Op: "push", Needed: 4, Remaining: 1}, "fixstr: push: capacity overflow (needed 4, remaining 1)"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestValidatorFunctions(t *testing.T) {
	if err := CheckIndex(3, 3); err != nil {
		t.Errorf("CheckIndex(3, 3) = %v", err)
	}
	if err := CheckIndex(4, 3); KindOf(err) != KindOutOfBounds {
		t.Errorf("CheckIndex(4, 3) = %v", err)
	}
	if err := CheckCharBoundary("é", 2); err != nil {
		t.Errorf("CheckCharBoundary at len = %v", err)
	}
	if err := CheckCharBoundary("é", 1); KindOf(err) != KindNotCharBoundary {
		t.Errorf("CheckCharBoundary inside rune = %v", err)
	}
	if err := CheckCapacity(2, 2); err != nil {
		t.Errorf("CheckCapacity(2, 2) = %v", err)
	}
	if err := CheckCapacity(2, 3); KindOf(err) != KindCapacityOverflow {
		t.Errorf("CheckCapacity(2, 3) = %v", err)
	}
}

func TestAsStructured(t *testing.T) {
	if AsStructured(nil) != nil {
		t.Error("AsStructured(nil) != nil")
	}

	s := mustFromString(t, 2, "ab")
	err := AsStructured(fmt.Errorf("step 3: %w", s.TryPush('x')))

	if err.Code() != fxerror.CodeCapacityOverflow {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Operation() != "fixstr.push" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if err.Details()["needed"] != 1 || err.Details()["remaining"] != 0 {
		t.Errorf("Details() = %v", err.Details())
	}
	if !errors.Is(err, ErrCapacityOverflow) {
		t.Error("structured error does not unwrap to the sentinel")
	}
	if fxerror.GetCode(s.TryPush('x')) != fxerror.CodeCapacityOverflow {
		t.Error("GetCode does not see the StringError code")
	}

	plain := AsStructured(errors.New("boom"))
	if !strings.Contains(plain.Error(), "boom") || plain.Code() != fxerror.CodeUnknown {
		t.Errorf("plain = %v (%v)", plain, plain.Code())
	}
}
