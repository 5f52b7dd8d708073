// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: a leveled, structured logger with
//              persistent context fields and correlation IDs, backed by a zap
//              core. Integrates with the structured error type so that codes,
//              severities and details land in the log entry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation on go.uber.org/zap

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	fxerror "github.com/msto63/fixstr/core/error"
)

// Format selects the entry encoding
type Format int

const (
	// FormatJSON writes one JSON object per entry
	FormatJSON Format = iota
	// FormatConsole writes tab-separated human-readable entries
	FormatConsole
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "console", "text":
		return FormatConsole, nil
	default:
		return FormatJSON, fmt.Errorf("invalid log format %q", s)
	}
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// Logger is a structured logger. Derived loggers (WithField, WithName, ...)
// share the level of their parent.
type Logger struct {
	z     *zap.Logger
	level zap.AtomicLevel
}

// New creates a logger writing JSON at the default level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig creates a logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	var enc zapcore.Encoder
	if config.Format == FormatConsole {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	level := zap.NewAtomicLevelAt(config.Level.zapLevel())
	z := zap.New(zapcore.NewCore(enc, zapcore.AddSync(output), level))
	if config.Name != "" {
		z = z.Named(config.Name)
	}
	return &Logger{z: z, level: level}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{z: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.ErrorLevel)}
}

// WithName returns a logger with name appended to the logger name
func (l *Logger) WithName(name string) *Logger {
	return &Logger{z: l.z.Named(name), level: l.level}
}

// WithField returns a logger that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a logger that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{z: l.z.With(fields.zapFields()...), level: l.level}
}

// WithCorrelationID returns a logger that tags every entry with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	return l.WithField("correlation_id", id)
}

// Trace logs at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, fields...)
}

// Debug logs at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields...)
}

// Info logs at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields...)
}

// Warn logs at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields...)
}

// Error logs at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields...)
}

// ErrorWithErr logs message at error level with err attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, append(fields, Err(err))...)
}

// WarnWithErr logs message at warn level with err attached
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, append(fields, Err(err))...)
}

// LogError logs err with the code, severity, operation and details of the
// first structured error in its chain. Low severity errors are logged as
// warnings, everything else as errors.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	fields := Err(err)
	level := LevelError

	var structured *fxerror.Error
	if errors.As(err, &structured) {
		fields["code"] = structured.Code().String()
		fields["severity"] = structured.Severity().String()
		if op := structured.Operation(); op != "" {
			fields["operation"] = op
		}
		for k, v := range structured.Details() {
			fields["detail_"+k] = v
		}
		if structured.Severity() == fxerror.SeverityLow {
			level = LevelWarn
		}
	} else if code := fxerror.GetCode(err); code != fxerror.CodeUnknown {
		fields["code"] = code.String()
	}

	l.log(level, "operation failed", fields)
}

// IsLevelEnabled reports whether entries at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l.level.Enabled(level.zapLevel())
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	return fromZapLevel(l.level.Level())
}

// SetLevel changes the minimum level of this logger and all loggers derived
// from the same root
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.z.Sync()
}

func (l *Logger) log(level Level, message string, fields ...Fields) {
	zl := level.zapLevel()
	if !l.level.Enabled(zl) {
		return
	}

	var merged Fields
	for _, f := range fields {
		merged = merged.Merge(f)
	}

	if ce := l.z.Check(zl, message); ce != nil {
		ce.Write(merged.zapFields()...)
	}
}

var (
	defaultLogger = New()
	defaultMu     sync.RWMutex
)

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}
