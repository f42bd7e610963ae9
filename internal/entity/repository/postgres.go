package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/entity/domain"
)

const entityColumns = `id, type, name, address, currency, description, archived_at, created_by, created_at, updated_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an entity repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Entity, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+entityColumns+` FROM entities WHERE id = $1`, id)
	e, err := scanEntity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (r *PostgresRepository) Create(ctx context.Context, e *domain.Entity) error {
	addr, err := json.Marshal(e.Address)
	if err != nil {
		return err
	}
	_, err = db.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO entities (`+entityColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, string(e.Type), e.Name, addr, e.Currency, nullString(e.Description), e.ArchivedAt,
		e.CreatedBy, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, e *domain.Entity) error {
	addr, err := json.Marshal(e.Address)
	if err != nil {
		return err
	}
	_, err = db.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE entities SET name = $2, address = $3, currency = $4, description = $5, updated_at = $6 WHERE id = $1`,
		e.ID, e.Name, addr, e.Currency, nullString(e.Description), e.UpdatedAt)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntity(s scanner) (*domain.Entity, error) {
	var e domain.Entity
	var typ string
	var addr []byte
	var desc sql.NullString
	var archived sql.NullTime
	if err := s.Scan(&e.ID, &typ, &e.Name, &addr, &e.Currency, &desc, &archived, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	a, err := domain.DecodeAddress(addr)
	if err != nil {
		return nil, err
	}
	e.Type = domain.Type(typ)
	e.Address = a
	e.Description = desc.String
	if archived.Valid {
		e.ArchivedAt = &archived.Time
	}
	return &e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
