// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels, their parsing and their mapping onto zap
//              levels. Trace sits one step below zap's debug level.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation on top of zapcore levels

package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level represents the severity of a log entry
type Level int

const (
	// LevelTrace is for step-by-step operation traces
	LevelTrace Level = iota
	// LevelDebug is for diagnostic output
	LevelDebug
	// LevelInfo is the default level
	LevelInfo
	// LevelWarn is for rejected input and recoverable failures
	LevelWarn
	// LevelError is for failed runs
	LevelError
)

// String returns the lowercase level name
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name, case-insensitively
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}

// DefaultLevel returns the level used when none is configured
func DefaultLevel() Level {
	return LevelInfo
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelTrace:
		return zapcore.DebugLevel - 1
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fromZapLevel(zl zapcore.Level) Level {
	switch {
	case zl < zapcore.DebugLevel:
		return LevelTrace
	case zl == zapcore.DebugLevel:
		return LevelDebug
	case zl == zapcore.InfoLevel:
		return LevelInfo
	case zl == zapcore.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}

func encodeLevel(zl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fromZapLevel(zl).String())
}
