package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-tei/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.Logging.Provider != "gologger" {
		t.Fatalf("Logging.Provider = %q", cfg.Logging.Provider)
	}
	if cfg.Transcripts.Pattern != "*.md" {
		t.Fatalf("Transcripts.Pattern = %q", cfg.Transcripts.Pattern)
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "zap"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestValidateRejectsInvalidLevelAndFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = runtimeconfig.DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestValidateArchiveOptions(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Archive.Driver = "postgres"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrArchiveDriverUnknown) {
		t.Fatalf("expected ErrArchiveDriverUnknown, got %v", err)
	}

	cfg = runtimeconfig.DefaultConfig()
	cfg.Archive.DSN = "   "
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrArchiveDSNRequired) {
		t.Fatalf("expected ErrArchiveDSNRequired, got %v", err)
	}
}

func TestValidateAllowsEmptySections(t *testing.T) {
	if err := (runtimeconfig.Config{}).Validate(); err != nil {
		t.Fatalf("empty config should validate, got %v", err)
	}
}
