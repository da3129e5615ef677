// Package config holds runtime configuration: defaults, CLI flag binding, and
// validation. The tool takes no config file and reads no environment
// variables; everything comes from the two CLI flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the bound flags before being passed (by pointer) to
// packages that need it.
type Config struct {
	// Root is the directory to scan. Resolved to an absolute path by
	// [Config.ResolveRoot] before use.
	Root string

	// Apply performs the renames. When false the run is a dry run.
	Apply bool

	// ColorMode is not exposed as a flag; tests set ColorNever.
	ColorMode ColorMode
}

// DefaultConfig returns a Config rooted at the current working directory in
// dry-run mode.
func DefaultConfig() Config {
	return Config{
		Root:      ".",
		Apply:     false,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that the color mode is known and that a root was given.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q", c.ColorMode)
	}

	if strings.TrimSpace(c.Root) == "" {
		return errors.New("--root must not be empty")
	}
	return nil
}

// ResolveRoot replaces Root with its cleaned absolute form.
func (c *Config) ResolveRoot() error {
	abs, err := filepath.Abs(NormalizeDirArg(c.Root))
	if err != nil {
		return fmt.Errorf("resolve root %q: %w", c.Root, err)
	}
	c.Root = abs
	return nil
}

// Mode returns a short label for the run mode, used in the run header.
func (c *Config) Mode() string {
	if c.Apply {
		return "apply"
	}
	return "dry-run"
}
