// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first configuration
//              file matching a set of base names and extensions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fxerror "github.com/msto63/fixstr/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
	EnvPrefix  string   // Environment variable prefix for overrides
	Defaults   map[string]interface{}
	Required   bool // Fail when no file is found
}

// DefaultDiscoveryOptions returns the search locations used by the CLI:
// the working directory and the user config directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "fixstr"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"fixstr"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
		Defaults:   DefaultValues(),
	}
}

// Discover loads the first configuration file found. When none exists and
// Required is false, an empty configuration carrying the defaults and the
// environment prefix is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	normalizeDiscovery(&options)

	path, err := FindConfigFile(options)
	if err == nil {
		cfg, err := LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
		if err != nil {
			return nil, fxerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
				WithOperation("config.discover").
				WithDetail("config_path", path)
		}
		return cfg, nil
	}

	if options.Required {
		searched := ListPossibleConfigFiles(options)
		return nil, fxerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searched, ", "))).
			WithCode(fxerror.CodeNotFound).
			WithOperation("config.discover").
			WithDetail("search_paths", searched)
	}

	cfg := Empty(options.EnvPrefix)
	cfg.data = mergeDefaults(cfg.data, options.Defaults)
	return cfg, nil
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fxerror.New("configuration file not found").
		WithCode(fxerror.CodeNotFound).
		WithOperation("config.find_config_file")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

func normalizeDiscovery(options *DiscoveryOptions) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"fixstr"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}
}
