package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/account/domain"
	"github.com/grezxune/ours-ledger/internal/db"
)

const accountColumns = `id, entity_id, name, currency, source, institution_name, plaid_account_id, created_by_user_id, created_at, updated_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an account repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+accountColumns+` FROM entity_accounts WHERE id = $1`, id)
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *PostgresRepository) Create(ctx context.Context, a *domain.Account) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO entity_accounts (`+accountColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.EntityID, a.Name, a.Currency, string(a.Source), nullString(a.InstitutionName), nullString(a.PlaidAccountID),
		a.CreatedByUserID, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *PostgresRepository) ListByEntity(ctx context.Context, entityID string) ([]*domain.Account, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+accountColumns+` FROM entity_accounts WHERE entity_id = $1 ORDER BY name, created_at`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*domain.Account, error) {
	var a domain.Account
	var source string
	var institution, plaidID sql.NullString
	if err := s.Scan(&a.ID, &a.EntityID, &a.Name, &a.Currency, &source, &institution, &plaidID,
		&a.CreatedByUserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Source = domain.Source(source)
	a.InstitutionName = institution.String
	a.PlaidAccountID = plaidID.String
	return &a, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
