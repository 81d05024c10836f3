package transcript

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-tei/archive"
	"github.com/goliatone/go-tei/internal/logging"
	"github.com/goliatone/go-tei/markup"
	"github.com/goliatone/go-tei/pkg/interfaces"
)

const (
	importValidationCode = "TRANSCRIPT_VALIDATION_FAILED"
	importEmitCode       = "TRANSCRIPT_EMIT_FAILED"
	importArchiveCode    = "TRANSCRIPT_ARCHIVE_FAILED"
)

// Archive is the persistence surface the importer writes emitted documents to.
type Archive interface {
	Save(ctx context.Context, record archive.Record) (archive.Record, error)
}

// ImporterConfig encapsulates dependencies required to persist transcripts.
type ImporterConfig struct {
	Archive Archive
	Logger  interfaces.LoggerProvider
}

// Importer orchestrates conversion of transcript files into archived TEI
// documents.
type Importer struct {
	archive Archive
	logger  interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) *Importer {
	return &Importer{
		archive: cfg.Archive,
		logger:  logging.TranscriptLogger(cfg.Logger),
	}
}

// ImportOptions controls a directory import run.
type ImportOptions struct {
	// Directory selects the filesystem path to load transcript files from.
	Directory string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// DryRun emits markup without persisting anything.
	DryRun bool
}

// Validate ensures directory input is present before the importer runs.
func (opts ImportOptions) Validate() error {
	return validation.ValidateStruct(&opts,
		validation.Field(&opts.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("tei.transcript.import.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// ImportResult summarises an import run.
type ImportResult struct {
	// Imported holds the archived records, in file order.
	Imported []archive.Record
	// Skipped holds the slugs that were emitted but not persisted.
	Skipped []string
	// Errors collects per-file failures.
	Errors []error
}

// ImportDirectory loads every transcript under opts.Directory, emits TEI
// markup for each, and persists the result. Files that fail to convert are
// recorded in the result and do not abort the run.
func (i *Importer) ImportDirectory(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, wrapValidationError(err)
	}

	loader := NewLoader(os.DirFS(opts.Directory), LoaderConfig{
		Pattern:   opts.Pattern,
		Recursive: opts.Recursive,
	})

	sources, err := loader.LoadDirectory(ctx, ".")
	if err != nil {
		return nil, wrapValidationError(err)
	}

	result := &ImportResult{}
	for _, source := range sources {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		if err := i.importSource(ctx, source, opts.DryRun, result); err != nil {
			result.Errors = append(result.Errors, err)
		}
	}

	i.logger.Info("transcript import finished",
		"imported", len(result.Imported),
		"skipped", len(result.Skipped),
		"errors", len(result.Errors),
	)
	return result, nil
}

// ImportFile imports a single transcript file from the host filesystem.
func (i *Importer) ImportFile(ctx context.Context, path string, dryRun bool) (*ImportResult, error) {
	dir, base := filepath.Dir(path), filepath.Base(path)
	loader := NewLoader(os.DirFS(dir), LoaderConfig{})

	source, err := loader.LoadFile(ctx, base)
	if err != nil {
		return nil, wrapValidationError(err)
	}

	result := &ImportResult{}
	if err := i.importSource(ctx, source, dryRun, result); err != nil {
		result.Errors = append(result.Errors, err)
		return result, err
	}
	return result, nil
}

func (i *Importer) importSource(ctx context.Context, source *Source, dryRun bool, result *ImportResult) error {
	doc, err := BuildDocument(source.Body, source.Meta)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "transcript conversion failed").
			WithTextCode(importValidationCode)
	}

	slug := strings.TrimSpace(source.Meta.Slug)
	if slug == "" {
		slug, err = doc.Slug()
		if err != nil {
			return goerrors.Wrap(err, goerrors.CategoryValidation, "transcript slug derivation failed").
				WithTextCode(importValidationCode)
		}
	}

	logger := logging.WithTranscriptContext(i.logger, source.Path, slug, "emit")

	tei, err := markup.EmitDocument(doc)
	if err != nil {
		logger.Error("transcript emission failed", "error", err)
		return goerrors.Wrap(err, goerrors.CategoryCommand, "transcript emission failed").
			WithTextCode(importEmitCode)
	}

	if dryRun {
		logger.Debug("transcript emitted (dry run)")
		result.Skipped = append(result.Skipped, slug)
		return nil
	}

	record, err := i.archive.Save(ctx, archive.Record{
		Slug:  slug,
		Title: doc.Title(),
		TEI:   tei,
	})
	if err != nil {
		logger.Error("transcript archive failed", "error", err)
		return goerrors.Wrap(err, goerrors.CategoryCommand, "transcript archive failed").
			WithTextCode(importArchiveCode)
	}

	logger.Info("transcript archived", "id", record.ID)
	result.Imported = append(result.Imported, record)
	return nil
}

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "transcript import validation failed").
		WithTextCode(importValidationCode)
}
