// File: settings.go
// Title: Typed CLI Settings
// Description: Typed view of the configuration keys the fixstr CLI reads,
//              with defaults and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

import (
	"github.com/msto63/fixstr/core/validation"
)

// Configuration keys
const (
	KeyCapacity  = "capacity"
	KeyMode      = "mode"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// Default values
const (
	DefaultCapacity  = 64
	DefaultMode      = "strict"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// Modes accepted for the mode key
var Modes = []string{"strict", "truncate"}

// Settings holds the resolved CLI settings
type Settings struct {
	Capacity  int
	Mode      string
	LogLevel  string
	LogFormat string
}

// DefaultValues returns the defaults as a nested map for LoadOptions
func DefaultValues() map[string]interface{} {
	return map[string]interface{}{
		KeyCapacity: DefaultCapacity,
		KeyMode:     DefaultMode,
		"log": map[string]interface{}{
			"level":  DefaultLogLevel,
			"format": DefaultLogFormat,
		},
	}
}

// Settings resolves the typed settings from the configuration
func (c *Config) Settings() Settings {
	return Settings{
		Capacity:  c.GetInt(KeyCapacity, DefaultCapacity),
		Mode:      c.GetString(KeyMode, DefaultMode),
		LogLevel:  c.GetString(KeyLogLevel, DefaultLogLevel),
		LogFormat: c.GetString(KeyLogFormat, DefaultLogFormat),
	}
}

var settingsChain = validation.NewValidatorChain[Settings]("settings").
	AddFunc(func(s Settings) validation.ValidationResult {
		return validation.NonNegative(KeyCapacity, s.Capacity)
	}).
	AddFunc(func(s Settings) validation.ValidationResult {
		return validation.OneOf(KeyMode, s.Mode, Modes...)
	}).
	AddFunc(func(s Settings) validation.ValidationResult {
		return validation.OneOf(KeyLogLevel, s.LogLevel, "trace", "debug", "info", "warn", "warning", "error")
	}).
	AddFunc(func(s Settings) validation.ValidationResult {
		return validation.OneOf(KeyLogFormat, s.LogFormat, "json", "console", "text")
	})

// Validate checks all settings and returns the first failure as an error
func (s Settings) Validate() error {
	return settingsChain.Validate(s).ToError()
}
