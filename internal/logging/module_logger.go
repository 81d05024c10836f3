package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-tei/pkg/interfaces"
)

const (
	rootModule       = "tei"
	markupModule     = "tei.markup"
	transcriptModule = "tei.transcript"
	archiveModule    = "tei.archive"
	bootstrapModule  = "tei.bootstrap"
)

const (
	fieldTranscriptPath  = "transcript_path"
	fieldTranscriptSlug  = "slug"
	fieldTranscriptStage = "stage"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// MarkupLogger returns the logger namespace reserved for XML emission and parsing.
func MarkupLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markupModule)
}

// TranscriptLogger returns the logger namespace reserved for transcript ingestion.
func TranscriptLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, transcriptModule)
}

// ArchiveLogger returns the logger namespace reserved for the document archive.
func ArchiveLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, archiveModule)
}

// BootstrapLogger returns the logger namespace reserved for credential bootstrap.
func BootstrapLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, bootstrapModule)
}

// WithTranscriptContext enriches the provided logger with common ingestion
// fields such as file path, slug, and pipeline stage. Empty values are ignored.
func WithTranscriptContext(logger interfaces.Logger, path, slug, stage string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldTranscriptPath] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldTranscriptSlug] = trimmed
	}
	if trimmed := strings.TrimSpace(stage); trimmed != "" {
		fields[fieldTranscriptStage] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
