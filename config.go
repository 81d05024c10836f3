package tei

import (
	"errors"

	"github.com/goliatone/go-tei/internal/runtimeconfig"
)

var (
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrArchiveDriverUnknown   = runtimeconfig.ErrArchiveDriverUnknown
	ErrArchiveDSNRequired     = runtimeconfig.ErrArchiveDSNRequired

	// ErrArchiveDisabled signals an import attempt without a configured archive.
	ErrArchiveDisabled = errors.New("tei: archive is not configured")
)

type (
	Config           = runtimeconfig.Config
	LoggingConfig    = runtimeconfig.LoggingConfig
	TranscriptConfig = runtimeconfig.TranscriptConfig
	ArchiveConfig    = runtimeconfig.ArchiveConfig
)

// DefaultConfig returns opinionated defaults for local use.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
