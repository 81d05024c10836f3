// Package tei converts transcripts into TEI XML documents. The root package
// is a thin façade over the document model, the markup emitter and parser,
// the transcript importer, and the archive.
package tei

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-tei/archive"
	"github.com/goliatone/go-tei/bootstrap"
	"github.com/goliatone/go-tei/document"
	"github.com/goliatone/go-tei/internal/logging"
	"github.com/goliatone/go-tei/internal/logging/gologger"
	"github.com/goliatone/go-tei/internal/transcript"
	"github.com/goliatone/go-tei/markup"
	"github.com/goliatone/go-tei/pkg/interfaces"
)

// Title exports the validated title type.
type Title = document.Title

// Header exports the TEI header type.
type Header = document.Header

// FileDesc exports the file description section.
type FileDesc = document.FileDesc

// Body exports the document body.
type Body = document.Body

// Paragraph exports the paragraph block.
type Paragraph = document.Paragraph

// Utterance exports the speaker utterance block.
type Utterance = document.Utterance

// Inline exports the inline content contract.
type Inline = document.Inline

// Text exports the plain text inline.
type Text = document.Text

// Hi exports the highlighted inline.
type Hi = document.Hi

// Pause exports the pause marker inline.
type Pause = document.Pause

// SecretResponse exports the Vault secret envelope.
type SecretResponse = bootstrap.SecretResponse

// ArchiveRecord exports the archived document record.
type ArchiveRecord = archive.Record

// TranscriptImporter exports the transcript import pipeline.
type TranscriptImporter = transcript.Importer

// ImportOptions exports the importer options.
type ImportOptions = transcript.ImportOptions

// ImportResult exports the importer result summary.
type ImportResult = transcript.ImportResult

// Document wraps the document model with emission helpers so callers can go
// from a title to markup without importing the inner packages.
type Document struct {
	inner *document.Document
}

// NewDocument constructs a document whose title is trimmed and validated.
func NewDocument(title string) (*Document, error) {
	doc, err := document.New(title)
	if err != nil {
		return nil, err
	}
	return &Document{inner: doc}, nil
}

// FromDocument wraps an existing model document.
func FromDocument(doc *document.Document) *Document {
	if doc == nil {
		return nil
	}
	return &Document{inner: doc}
}

// Unwrap exposes the underlying model document.
func (d *Document) Unwrap() *document.Document {
	return d.inner
}

// Title returns the trimmed document title.
func (d *Document) Title() string {
	return d.inner.Title()
}

// Slug derives a URL-safe slug from the title.
func (d *Document) Slug() (string, error) {
	return d.inner.Slug()
}

// EmitTitleMarkup renders the document title as an escaped TEI title element.
func (d *Document) EmitTitleMarkup() string {
	return markup.EmitTitle(d.inner)
}

// Emit renders the full document as compact TEI XML.
func (d *Document) Emit() (string, error) {
	return markup.EmitDocument(d.inner)
}

// EmitTitleMarkup validates the raw title and renders it as a TEI title
// element, escaping XML-sensitive characters.
func EmitTitleMarkup(rawTitle string) (string, error) {
	return markup.EmitTitleMarkup(rawTitle)
}

// Parse reads TEI XML produced by Emit, tolerating pretty-printed input.
func Parse(source string) (*Document, error) {
	doc, err := markup.ParseDocument(source)
	if err != nil {
		return nil, err
	}
	return &Document{inner: doc}, nil
}

// ExtractSecretID decodes a Vault approle response and returns the secret id.
func ExtractSecretID(payload string) (string, error) {
	return bootstrap.ExtractSecretID(payload)
}

// Module is the top level runtime façade wiring logging, the archive, and the
// transcript importer together.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	db       *bun.DB
	archive  *archive.BunRepository
	importer *transcript.Importer
}

// New constructs a module from the provided configuration.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var provider interfaces.LoggerProvider
	if cfg.Logging.Provider != "" {
		p, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		provider = p
	}

	module := &Module{cfg: cfg, provider: provider}

	if cfg.Archive.Driver != "" {
		sqldb, err := sql.Open("sqlite3", cfg.Archive.DSN)
		if err != nil {
			return nil, err
		}
		module.db = bun.NewDB(sqldb, sqlitedialect.New())
		module.archive = archive.NewBunRepository(module.db)
		module.importer = transcript.NewImporter(transcript.ImporterConfig{
			Archive: module.archive,
			Logger:  provider,
		})
	}

	return module, nil
}

// Start prepares the archive schema. It is safe to call more than once.
func (m *Module) Start(ctx context.Context) error {
	if m.archive == nil {
		return nil
	}
	return m.archive.EnsureSchema(ctx)
}

// Stop releases the database handle.
func (m *Module) Stop() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

// Logger returns a module-scoped logger backed by the configured provider.
func (m *Module) Logger() interfaces.Logger {
	return logging.ModuleLogger(m.provider, "")
}

// Archive returns the document archive, or nil when persistence is disabled.
func (m *Module) Archive() *archive.BunRepository {
	if m == nil {
		return nil
	}
	return m.archive
}

// Importer returns the transcript importer, or nil when persistence is
// disabled.
func (m *Module) Importer() *TranscriptImporter {
	if m == nil {
		return nil
	}
	return m.importer
}

// ImportTranscripts runs a directory import using the configured defaults for
// pattern and recursion when the options leave them unset.
func (m *Module) ImportTranscripts(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	if m.importer == nil {
		return nil, ErrArchiveDisabled
	}
	if opts.Pattern == "" {
		opts.Pattern = m.cfg.Transcripts.Pattern
	}
	if !opts.Recursive {
		opts.Recursive = m.cfg.Transcripts.Recursive
	}
	if opts.Directory == "" {
		opts.Directory = m.cfg.Transcripts.ContentDir
	}
	return m.importer.ImportDirectory(ctx, opts)
}
