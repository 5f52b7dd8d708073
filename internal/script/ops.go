// File: ops.go
// Title: Operation Registry
// Description: Maps script op names to the fixstr operations they invoke in
//              strict and truncate mode.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package script

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	fxerrors "github.com/msto63/fixstr/core/errors"
	"github.com/msto63/fixstr/utils/fixstr"
)

// Op names
const (
	OpPush         = "push"
	OpPushStr      = "push_str"
	OpInsert       = "insert"
	OpInsertStr    = "insert_str"
	OpPop          = "pop"
	OpTruncate     = "truncate"
	OpRemove       = "remove"
	OpRetain       = "retain"
	OpTrim         = "trim"
	OpClear        = "clear"
	OpSplitOff     = "split_off"
	OpReplaceRange = "replace_range"
)

// applyFunc runs one op. output is the value the op returns, if any.
type applyFunc func(s *fixstr.String, op Op, mode Mode) (output string, err error)

type handler struct {
	apply   applyFunc
	runeArg bool // arg must be exactly one rune
}

var handlers = map[string]handler{
	OpPush: {runeArg: true, apply: func(s *fixstr.String, op Op, mode Mode) (string, error) {
		r := firstRune(op.Arg)
		if mode == ModeTruncate {
			s.Push(r)
			return "", nil
		}
		return "", s.TryPush(r)
	}},
	OpPushStr: {apply: func(s *fixstr.String, op Op, mode Mode) (string, error) {
		if mode == ModeTruncate {
			s.PushStr(op.Arg)
			return "", nil
		}
		return "", s.TryPushStr(op.Arg)
	}},
	OpInsert: {runeArg: true, apply: func(s *fixstr.String, op Op, _ Mode) (string, error) {
		return "", s.TryInsert(op.Index, firstRune(op.Arg))
	}},
	OpInsertStr: {apply: func(s *fixstr.String, op Op, mode Mode) (string, error) {
		if mode == ModeTruncate {
			return "", s.InsertStr(op.Index, op.Arg)
		}
		return "", s.TryInsertStr(op.Index, op.Arg)
	}},
	OpPop: {apply: func(s *fixstr.String, _ Op, _ Mode) (string, error) {
		if r, ok := s.Pop(); ok {
			return string(r), nil
		}
		return "", nil
	}},
	OpTruncate: {apply: func(s *fixstr.String, op Op, _ Mode) (string, error) {
		return "", s.Truncate(op.Index)
	}},
	OpRemove: {apply: func(s *fixstr.String, op Op, _ Mode) (string, error) {
		r, err := s.Remove(op.Index)
		if err != nil {
			return "", err
		}
		return string(r), nil
	}},
	OpRetain: {apply: func(s *fixstr.String, op Op, _ Mode) (string, error) {
		s.Retain(func(r rune) bool { return strings.ContainsRune(op.Arg, r) })
		return "", nil
	}},
	OpTrim: {apply: func(s *fixstr.String, _ Op, _ Mode) (string, error) {
		s.Trim()
		return "", nil
	}},
	OpClear: {apply: func(s *fixstr.String, _ Op, _ Mode) (string, error) {
		s.Clear()
		return "", nil
	}},
	OpSplitOff: {apply: func(s *fixstr.String, op Op, _ Mode) (string, error) {
		tail, err := s.SplitOff(op.Index)
		if err != nil {
			return "", err
		}
		return tail.String(), nil
	}},
	OpReplaceRange: {apply: func(s *fixstr.String, op Op, _ Mode) (string, error) {
		return "", s.ReplaceRange(op.Index, op.End, op.Arg)
	}},
}

// Names returns the registered op names in sorted order
func Names() []string {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseOp parses the compact command-line form "name[:index[:end]][=arg]",
// e.g. "insert_str:2=ab" or "replace_range:0:3=xyz".
func ParseOp(text string) (Op, error) {
	head, arg, _ := strings.Cut(text, "=")
	parts := strings.Split(head, ":")

	op := Op{Op: strings.TrimSpace(parts[0]), Arg: arg}
	if len(parts) > 3 {
		return op, invalidOp(text, "at most two indices")
	}
	for i, p := range parts[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return op, invalidOp(text, "integer index")
		}
		if i == 0 {
			op.Index = n
		} else {
			op.End = n
		}
	}
	return op, nil
}

func invalidOp(text, expected string) error {
	return fxerrors.InvalidInput(fxerrors.ModuleScript, "parse_op", text, expected)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
