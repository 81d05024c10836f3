// Package runtimeconfig holds the runtime configuration surface shared by the
// root module façade and the command line tools.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrLoggingProviderUnknown = errors.New("tei config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("tei config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("tei config: logging format is invalid")
var ErrArchiveDriverUnknown = errors.New("tei config: archive driver is invalid")
var ErrArchiveDSNRequired = errors.New("tei config: archive dsn is required")

// Config aggregates runtime options for the module.
type Config struct {
	Logging     LoggingConfig
	Transcripts TranscriptConfig
	Archive     ArchiveConfig
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// TranscriptConfig controls how transcript files are discovered.
type TranscriptConfig struct {
	ContentDir string
	Pattern    string
	Recursive  bool
}

// ArchiveConfig selects the persistence backend for emitted documents.
type ArchiveConfig struct {
	Driver string
	DSN    string
}

// DefaultConfig returns opinionated defaults for local use.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
		Transcripts: TranscriptConfig{
			Pattern:   "*.md",
			Recursive: true,
		},
		Archive: ArchiveConfig{
			Driver: "sqlite",
			DSN:    "file:tei.db?_fk=1",
		},
	}
}

// Validate checks cross-field consistency before the runtime boots.
func (cfg Config) Validate() error {
	if provider := normalize(cfg.Logging.Provider); provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := normalize(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := normalize(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	if driver := normalize(cfg.Archive.Driver); driver != "" {
		if !isSupportedDriver(driver) {
			return fmt.Errorf("%w: %s", ErrArchiveDriverUnknown, driver)
		}
		if strings.TrimSpace(cfg.Archive.DSN) == "" {
			return ErrArchiveDSNRequired
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	return provider == "gologger"
}

func isSupportedLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch format {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

func isSupportedDriver(driver string) bool {
	return driver == "sqlite"
}
