package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pymecredit/creditrisk/internal/domain/model"
	"github.com/pymecredit/creditrisk/internal/domain/port"
	pgutil "github.com/pymecredit/creditrisk/pkg/postgres"
)

// Compile-time interface check.
var _ port.DocumentRegistry = (*DocumentRegistry)(nil)

// DB is satisfied by *pgxpool.Pool.
type DB interface {
	pgutil.TxBeginner
	pgutil.Querier
}

// DocumentRegistry implements port.DocumentRegistry on the
// financial_documents table.
type DocumentRegistry struct {
	db  DB
	now func() time.Time
}

// NewDocumentRegistry creates a registry backed by PostgreSQL.
func NewDocumentRegistry(db DB) *DocumentRegistry {
	return &DocumentRegistry{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// RecordStaged upserts one row per document in a single transaction. A
// document staged twice under the same key keeps one row.
func (r *DocumentRegistry) RecordStaged(ctx context.Context, companyID string, docs []model.UploadedDocument) error {
	if len(docs) == 0 {
		return nil
	}
	query := `
		INSERT INTO financial_documents (
			storage_key, company, file_name, extension, size_bytes, uploaded_at
		) VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (storage_key) DO UPDATE SET
			size_bytes  = EXCLUDED.size_bytes,
			uploaded_at = EXCLUDED.uploaded_at
	`
	uploadedAt := r.now()
	err := pgutil.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, d := range docs {
			key := d.StorageKey
			if key == "" {
				key = d.StorageKeyFor(companyID)
			}
			if _, err := tx.Exec(ctx, query,
				key, companyID, d.FileName, d.Extension, int64(d.SizeBytes), uploadedAt,
			); err != nil {
				return fmt.Errorf("insert %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record staged documents: %w", err)
	}
	return nil
}

// ListByCompany returns a company's documents, oldest first.
func (r *DocumentRegistry) ListByCompany(ctx context.Context, companyID string) ([]model.UploadedDocument, error) {
	query := `
		SELECT storage_key, file_name, extension, size_bytes
		FROM financial_documents
		WHERE company = $1
		ORDER BY uploaded_at, file_name
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []model.UploadedDocument
	for rows.Next() {
		var (
			d    model.UploadedDocument
			size int64
		)
		if err := rows.Scan(&d.StorageKey, &d.FileName, &d.Extension, &size); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.SizeBytes = uint64(size)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return out, nil
}
