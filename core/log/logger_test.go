// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, persistent fields, names,
//              structured error logging and level/format parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	fxerror "github.com/msto63/fixstr/core/error"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: buf}), buf
}

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON entry %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)

	logger.Trace("trace")
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	entries := decodeEntries(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["level"] != "warn" || entries[1]["level"] != "error" {
		t.Errorf("levels = %v, %v", entries[0]["level"], entries[1]["level"])
	}
}

func TestTraceLevel(t *testing.T) {
	logger, buf := newTestLogger(LevelTrace)
	logger.Trace("step", Int("index", 2))

	entries := decodeEntries(t, buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0]["level"] != "trace" {
		t.Errorf("level = %v", entries[0]["level"])
	}
	if entries[0]["index"] != float64(2) {
		t.Errorf("index = %v", entries[0]["index"])
	}
	if !logger.IsLevelEnabled(LevelTrace) {
		t.Error("IsLevelEnabled(trace) = false")
	}
}

func TestContextFields(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)
	child := logger.WithName("script").WithCorrelationID("run-1").WithField("capacity", 16)

	child.Info("applied", String("op", "push_str"))

	entries := decodeEntries(t, buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	e := entries[0]
	if e["logger"] != "script" {
		t.Errorf("logger = %v", e["logger"])
	}
	if e["correlation_id"] != "run-1" {
		t.Errorf("correlation_id = %v", e["correlation_id"])
	}
	if e["capacity"] != float64(16) || e["op"] != "push_str" || e["message"] != "applied" {
		t.Errorf("entry = %v", e)
	}
}

func TestSetLevelSharedWithChildren(t *testing.T) {
	logger, buf := newTestLogger(LevelError)
	child := logger.WithField("k", "v")

	child.Info("hidden")
	logger.SetLevel(LevelInfo)
	child.Info("shown")

	if entries := decodeEntries(t, buf); len(entries) != 1 {
		t.Errorf("got %d entries, want 1", len(entries))
	}
	if logger.GetLevel() != LevelInfo {
		t.Errorf("GetLevel() = %v", logger.GetLevel())
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
		code  interface{}
	}{
		{
			name:  "low severity structured error",
			err:   fxerror.New("index 9 out of bounds").WithCode(fxerror.CodeOutOfBounds).WithDetail("index", 9),
			level: "warn",
			code:  "OUT_OF_BOUNDS",
		},
		{
			name:  "high severity structured error",
			err:   fxerror.New("bad config").WithCode(fxerror.CodeInvalidConfig),
			level: "error",
			code:  "INVALID_CONFIG",
		},
		{
			name:  "plain error",
			err:   errors.New("boom"),
			level: "error",
			code:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(LevelInfo)
			logger.LogError(tt.err)

			entries := decodeEntries(t, buf)
			if len(entries) != 1 {
				t.Fatalf("got %d entries", len(entries))
			}
			if entries[0]["level"] != tt.level {
				t.Errorf("level = %v, want %v", entries[0]["level"], tt.level)
			}
			if entries[0]["code"] != tt.code {
				t.Errorf("code = %v, want %v", entries[0]["code"], tt.code)
			}
			if entries[0]["error"] != tt.err.Error() {
				t.Errorf("error = %v", entries[0]["error"])
			}
		})
	}

	logger, buf := newTestLogger(LevelInfo)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) wrote output")
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	levels := map[string]Level{"trace": LevelTrace, "DEBUG": LevelDebug, "": LevelInfo, "warning": LevelWarn, "error": LevelError}
	for in, want := range levels {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}

	if f, err := ParseFormat("console"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestConsoleFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatConsole, Output: buf})
	logger.Info("hello", String("k", "v"))

	out := buf.String()
	if !strings.Contains(out, "info") || !strings.Contains(out, "hello") || !strings.Contains(out, `"k": "v"`) {
		t.Errorf("console output = %q", out)
	}
}

func TestNop(t *testing.T) {
	Nop().Error("discarded")
	SetDefault(nil)
	if GetDefault() == nil {
		t.Error("GetDefault() = nil")
	}
}
