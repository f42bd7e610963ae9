package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/ledger/domain"
)

const transactionColumns = `id, entity_id, source, kind, type, status, amount_cents, date, category, notes, payee,
	recurrence, created_by_user_id, created_by_email, created_at, updated_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a transaction repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

func (r *PostgresRepository) Create(ctx context.Context, t *domain.Transaction) error {
	var recurrence []byte
	if t.Recurrence != nil {
		b, err := json.Marshal(t.Recurrence)
		if err != nil {
			return fmt.Errorf("encode recurrence: %w", err)
		}
		recurrence = b
	}
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO transactions (`+transactionColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		t.ID, t.EntityID, t.Source, string(t.Kind), string(t.Type), string(t.Status), t.AmountCents, t.Date, t.Category,
		nullString(t.Notes), nullString(t.Payee), recurrence, t.CreatedByUserID, t.CreatedByEmail, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *PostgresRepository) ListByEntity(ctx context.Context, entityID string) ([]*domain.Transaction, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE entity_id = $1 ORDER BY date DESC, created_at DESC`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var kind, typ, status string
		var notes, payee sql.NullString
		var recurrence []byte
		if err := rows.Scan(&t.ID, &t.EntityID, &t.Source, &kind, &typ, &status, &t.AmountCents, &t.Date, &t.Category,
			&notes, &payee, &recurrence, &t.CreatedByUserID, &t.CreatedByEmail, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Kind, t.Type, t.Status = domain.Kind(kind), domain.Type(typ), domain.Status(status)
		t.Notes, t.Payee = notes.String, payee.String
		if len(recurrence) > 0 {
			var rec domain.Recurrence
			if err := json.Unmarshal(recurrence, &rec); err != nil {
				return nil, fmt.Errorf("decode recurrence of %s: %w", t.ID, err)
			}
			t.Recurrence = &rec
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
