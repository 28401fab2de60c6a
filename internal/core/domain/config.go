package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

const (
	// DefaultErrorLevel is the strictness used when the config does not set one.
	DefaultErrorLevel = 2
	// MinErrorLevel is the strictest error level.
	MinErrorLevel = 1
	// MaxErrorLevel is the most lenient error level.
	MaxErrorLevel = 8
)

var phpVersionRegex = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)

// Config is the explicit configuration handle threaded through the cache subsystem.
// It is built once per process by the config loader and never read from global state.
type Config struct {
	// Path is the absolute path of the config file, empty when defaults are in use.
	Path string
	// Root is the project root directory.
	Root string
	// CacheDir is the absolute cache directory. Empty disables every cache operation.
	CacheDir string
	// PHPVersion is the language version targeted by the analysis (MAJOR.MINOR).
	PHPVersion string
	// ErrorLevel is the strictness level, 1 (strictest) to 8.
	ErrorLevel int
	// Threads is the number of analysis workers.
	Threads int
	// FindUnusedCode enables dead-code detection.
	FindUnusedCode bool
	// StrictBinaryOperands enables strict operand checks.
	StrictBinaryOperands bool
	// ProjectFiles lists the analyzed directories and files, relative to Root.
	ProjectFiles []string
	// Plugins lists plugin paths, relative to Root.
	Plugins []string
	// Source holds the raw config file bytes, the primary fingerprint input.
	Source []byte
}

// CacheEnabled reports whether a cache directory is configured.
func (c *Config) CacheEnabled() bool {
	return c != nil && c.CacheDir != ""
}

// Validate checks the settings a config file or a flag override may have broken.
func (c *Config) Validate() error {
	if c.Threads <= 0 {
		return zerr.With(ErrInvalidThreads, "threads", c.Threads)
	}
	if c.ErrorLevel < MinErrorLevel || c.ErrorLevel > MaxErrorLevel {
		return zerr.With(ErrInvalidErrorLevel, "error_level", c.ErrorLevel)
	}
	if c.PHPVersion != "" && !phpVersionRegex.MatchString(c.PHPVersion) {
		return zerr.With(ErrInvalidPHPVersion, "php_version", c.PHPVersion)
	}
	return nil
}

// CacheReport describes the on-disk cache state for one configuration without mutating it.
type CacheReport struct {
	// Dir is the cache directory, empty when caching is disabled.
	Dir string
	// Current is the fingerprint of the active configuration.
	Current Fingerprint
	// Stored is the fingerprint persisted by the previous run, empty when none.
	Stored Fingerprint
	// FingerprintChanged is the gate decision a run would make now.
	FingerprintChanged bool
	// Entries lists every cache kind in AllKinds order.
	Entries []CacheEntryStatus
}

// CacheEntryStatus describes one cache file.
type CacheEntryStatus struct {
	Kind    Kind
	Present bool
	Size    int64
	// Usable reports whether a load would return the persisted value.
	Usable bool
	// Reason explains why the entry is not usable.
	Reason string
}
