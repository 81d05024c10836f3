package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tei "github.com/goliatone/go-tei"
)

func main() {
	if err := runImport(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("tei import: %v", err)
	}
}

func runImport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tei-import", flag.ExitOnError)
	contentDir := fs.String("content-dir", "transcripts", "Path to the transcript content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering transcript files")
	recursive := fs.Bool("recursive", true, "Traverse sub-directories of the content root")
	dsn := fs.String("dsn", "file:tei.db?_fk=1", "SQLite DSN for the document archive")
	dryRun := fs.Bool("dry-run", false, "Emit markup without persisting documents")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := tei.DefaultConfig()
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat
	cfg.Transcripts.ContentDir = *contentDir
	cfg.Transcripts.Pattern = *pattern
	cfg.Transcripts.Recursive = *recursive
	cfg.Archive.DSN = *dsn

	module, err := tei.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer func() { _ = module.Stop() }()

	ctx := context.Background()
	if err := module.Start(ctx); err != nil {
		return fmt.Errorf("prepare archive: %w", err)
	}

	result, err := module.ImportTranscripts(ctx, tei.ImportOptions{DryRun: *dryRun})
	if err != nil {
		return fmt.Errorf("import transcripts: %w", err)
	}

	for _, record := range result.Imported {
		fmt.Fprintf(out, "archived %s (%s)\n", record.Slug, record.ID)
	}
	for _, slug := range result.Skipped {
		fmt.Fprintf(out, "emitted %s (dry run)\n", slug)
	}
	for _, importErr := range result.Errors {
		fmt.Fprintf(out, "error: %v\n", importErr)
	}

	fmt.Fprintf(out, "imported=%d skipped=%d errors=%d\n",
		len(result.Imported), len(result.Skipped), len(result.Errors))

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d transcript(s) failed to import", len(result.Errors))
	}
	return nil
}
