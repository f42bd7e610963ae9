package repository

import (
	"context"
	"database/sql"

	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/document/domain"
)

const documentColumns = `id, entity_id, file_name, mime_type, size_bytes, storage_key, cloudfront_url,
	source_transaction_id, uploaded_by_user_id, uploaded_by_email, created_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a document repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

func (r *PostgresRepository) Create(ctx context.Context, d *domain.Document) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO documents (`+documentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		d.ID, d.EntityID, d.FileName, d.MimeType, d.SizeBytes, d.StorageKey, nullString(d.CloudFrontURL),
		nullString(d.SourceTransactionID), d.UploadedByUserID, d.UploadedByEmail, d.CreatedAt)
	return err
}

func (r *PostgresRepository) ListByEntity(ctx context.Context, entityID string) ([]*domain.Document, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE entity_id = $1 ORDER BY created_at DESC`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Document
	for rows.Next() {
		var d domain.Document
		var url, sourceTx sql.NullString
		if err := rows.Scan(&d.ID, &d.EntityID, &d.FileName, &d.MimeType, &d.SizeBytes, &d.StorageKey, &url,
			&sourceTx, &d.UploadedByUserID, &d.UploadedByEmail, &d.CreatedAt); err != nil {
			return nil, err
		}
		d.CloudFrontURL, d.SourceTransactionID = url.String, sourceTx.String
		out = append(out, &d)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
