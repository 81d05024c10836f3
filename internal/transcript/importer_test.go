package transcript

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-tei/archive"
)

type archiveStub struct {
	records map[string]archive.Record
	failing bool
}

func newArchiveStub() *archiveStub {
	return &archiveStub{records: map[string]archive.Record{}}
}

func (s *archiveStub) Save(_ context.Context, record archive.Record) (archive.Record, error) {
	if s.failing {
		return archive.Record{}, errors.New("boom")
	}
	existing, ok := s.records[record.Slug]
	if ok {
		record.ID = existing.ID
	} else {
		record.ID = uuid.New()
	}
	s.records[record.Slug] = record
	return record, nil
}

func writeTranscript(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const succulentTranscript = `---
title: Wolf 359
slug: ep1-succulent
speakers:
  - Doug Eiffel
---

EIFFEL: This is Doug Eiffel, broadcasting live.
`

func TestImportDirectoryArchivesTranscripts(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "ep1.md", succulentTranscript)
	writeTranscript(t, dir, "ep2.md", "---\ntitle: Little Revolution\n---\n\nMINKOWSKI: Status report.\n")
	writeTranscript(t, dir, "notes.txt", "not a transcript")

	store := newArchiveStub()
	importer := NewImporter(ImporterConfig{Archive: store})

	result, err := importer.ImportDirectory(context.Background(), ImportOptions{Directory: dir})
	if err != nil {
		t.Fatalf("ImportDirectory: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Imported) != 2 {
		t.Fatalf("expected 2 imported records, got %d", len(result.Imported))
	}

	record, ok := store.records["ep1-succulent"]
	if !ok {
		t.Fatalf("expected ep1-succulent record, got %v", store.records)
	}
	if !strings.Contains(record.TEI, `<u who="#eiffel">`) {
		t.Fatalf("TEI missing utterance markup: %s", record.TEI)
	}
	if record.Title != "Wolf 359" {
		t.Fatalf("record title = %q", record.Title)
	}

	// Slug falls back to the normalized title when frontmatter omits it.
	if _, ok := store.records["little-revolution"]; !ok {
		t.Fatalf("expected derived slug, got %v", store.records)
	}
}

func TestImportDirectoryDryRunPersistsNothing(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "ep1.md", succulentTranscript)

	store := newArchiveStub()
	importer := NewImporter(ImporterConfig{Archive: store})

	result, err := importer.ImportDirectory(context.Background(), ImportOptions{Directory: dir, DryRun: true})
	if err != nil {
		t.Fatalf("ImportDirectory: %v", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "ep1-succulent" {
		t.Fatalf("Skipped = %v", result.Skipped)
	}
	if len(store.records) != 0 {
		t.Fatalf("dry run persisted records: %v", store.records)
	}
}

func TestImportDirectoryCollectsPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "bad.md", "---\nsynopsis: missing title\n---\n\nNarration.\n")
	writeTranscript(t, dir, "good.md", succulentTranscript)

	store := newArchiveStub()
	importer := NewImporter(ImporterConfig{Archive: store})

	result, err := importer.ImportDirectory(context.Background(), ImportOptions{Directory: dir})
	if err != nil {
		t.Fatalf("ImportDirectory: %v", err)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	if !goerrors.IsCategory(result.Errors[0], goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", result.Errors[0])
	}
	if len(result.Imported) != 1 {
		t.Fatalf("expected the valid file to import, got %d", len(result.Imported))
	}
}

func TestImportDirectoryValidatesOptions(t *testing.T) {
	importer := NewImporter(ImporterConfig{Archive: newArchiveStub()})

	_, err := importer.ImportDirectory(context.Background(), ImportOptions{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestImportFileSurfacesArchiveFailure(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "ep1.md", succulentTranscript)

	store := newArchiveStub()
	store.failing = true
	importer := NewImporter(ImporterConfig{Archive: store})

	_, err := importer.ImportFile(context.Background(), filepath.Join(dir, "ep1.md"), false)
	if err == nil {
		t.Fatal("expected archive failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestImportFileImportsSingleTranscript(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "ep1.md", succulentTranscript)

	store := newArchiveStub()
	importer := NewImporter(ImporterConfig{Archive: store})

	result, err := importer.ImportFile(context.Background(), filepath.Join(dir, "ep1.md"), false)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if len(result.Imported) != 1 || result.Imported[0].Slug != "ep1-succulent" {
		t.Fatalf("Imported = %v", result.Imported)
	}
}
