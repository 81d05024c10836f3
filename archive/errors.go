package archive

import "errors"

var (
	// ErrDocumentNotFound signals that no archived document matches the slug.
	ErrDocumentNotFound = errors.New("archive: document not found")

	// ErrDatabaseRequired signals that a repository was used without a database.
	ErrDatabaseRequired = errors.New("archive: bun repository requires a database")

	// ErrSlugRequired signals that a record was submitted without a slug.
	ErrSlugRequired = errors.New("archive: slug is required")
)
