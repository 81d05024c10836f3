// Package archive persists emitted TEI documents keyed by slug so transcript
// imports are idempotent and previously emitted markup can be retrieved.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record is an archived TEI document.
type Record struct {
	ID        uuid.UUID
	Slug      string
	Title     string
	TEI       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BunRepository persists TEI documents using a Bun-backed database.
type BunRepository struct {
	db *bun.DB
}

// NewBunRepository constructs a Bun-backed repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{db: db}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (r *BunRepository) EnsureSchema(ctx context.Context) error {
	if r.db == nil {
		return ErrDatabaseRequired
	}
	_, err := r.db.NewCreateTable().
		Model((*documentModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Save upserts a document by slug. New slugs are inserted with a fresh
// identifier; existing slugs keep their identifier and creation time.
func (r *BunRepository) Save(ctx context.Context, record Record) (Record, error) {
	if r.db == nil {
		return Record{}, ErrDatabaseRequired
	}
	slug := strings.TrimSpace(record.Slug)
	if slug == "" {
		return Record{}, ErrSlugRequired
	}

	now := time.Now().UTC()

	var existing documentModel
	err := r.db.NewSelect().Model(&existing).Where("slug = ?", slug).Scan(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}

		model := documentModel{
			ID:        uuid.New(),
			Slug:      slug,
			Title:     record.Title,
			TEI:       record.TEI,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := r.db.NewInsert().Model(&model).Exec(ctx); err != nil {
			return Record{}, err
		}
		return modelToRecord(&model), nil
	}

	existing.Title = record.Title
	existing.TEI = record.TEI
	existing.UpdatedAt = now
	if _, err := r.db.NewUpdate().
		Model(&existing).
		Column("title", "tei", "updated_at").
		WherePK().
		Exec(ctx); err != nil {
		return Record{}, err
	}
	return modelToRecord(&existing), nil
}

// GetBySlug returns the archived document for the given slug.
func (r *BunRepository) GetBySlug(ctx context.Context, slug string) (Record, error) {
	if r.db == nil {
		return Record{}, ErrDatabaseRequired
	}
	var model documentModel
	if err := r.db.NewSelect().Model(&model).Where("slug = ?", strings.TrimSpace(slug)).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrDocumentNotFound
		}
		return Record{}, err
	}
	return modelToRecord(&model), nil
}

// List returns every archived document ordered by slug.
func (r *BunRepository) List(ctx context.Context) ([]Record, error) {
	if r.db == nil {
		return nil, ErrDatabaseRequired
	}
	var models []documentModel
	if err := r.db.NewSelect().Model(&models).Order("slug ASC").Scan(ctx); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(models))
	for i := range models {
		records = append(records, modelToRecord(&models[i]))
	}
	return records, nil
}

// Delete removes the archived document for the given slug.
func (r *BunRepository) Delete(ctx context.Context, slug string) error {
	if r.db == nil {
		return ErrDatabaseRequired
	}
	var model documentModel
	err := r.db.NewSelect().Model(&model).Where("slug = ?", strings.TrimSpace(slug)).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDocumentNotFound
		}
		return err
	}
	_, err = r.db.NewDelete().Model(&model).WherePK().Exec(ctx)
	return err
}

type documentModel struct {
	bun.BaseModel `bun:"table:tei_documents"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Slug      string    `bun:"slug,notnull,unique"`
	Title     string    `bun:"title,notnull"`
	TEI       string    `bun:"tei,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

func modelToRecord(model *documentModel) Record {
	if model == nil {
		return Record{}
	}
	return Record{
		ID:        model.ID,
		Slug:      model.Slug,
		Title:     model.Title,
		TEI:       model.TEI,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
