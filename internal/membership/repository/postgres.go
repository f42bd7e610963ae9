package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/membership/domain"
)

const membershipColumns = `id, user_id, entity_id, role, created_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a membership repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

// GetByUserAndEntity returns the membership, or nil if the user is not a member. Malformed ids
// match nothing.
func (r *PostgresRepository) GetByUserAndEntity(ctx context.Context, userID, entityID string) (*domain.Membership, error) {
	if uuid.Validate(userID) != nil || uuid.Validate(entityID) != nil {
		return nil, nil
	}
	row := db.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = $1 AND entity_id = $2`, userID, entityID)
	m, err := scanMembership(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Membership, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListMembers(ctx context.Context, entityID string) ([]*domain.Member, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, `
		SELECT m.id, m.user_id, m.entity_id, m.role, m.created_at, u.email
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.entity_id = $1
		ORDER BY m.role, u.email`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Member
	for rows.Next() {
		var mem domain.Member
		var role string
		if err := rows.Scan(&mem.ID, &mem.UserID, &mem.EntityID, &role, &mem.CreatedAt, &mem.UserEmail); err != nil {
			return nil, err
		}
		mem.Role = domain.Role(role)
		out = append(out, &mem)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, m *domain.Membership) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO memberships (`+membershipColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.UserID, m.EntityID, string(m.Role), m.CreatedAt)
	return err
}

func (r *PostgresRepository) Upsert(ctx context.Context, m *domain.Membership) (*domain.Membership, error) {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO memberships (`+membershipColumns+`) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, entity_id) DO UPDATE SET role = EXCLUDED.role
		RETURNING `+membershipColumns,
		m.ID, m.UserID, m.EntityID, string(m.Role), m.CreatedAt)
	return scanMembership(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMembership(s scanner) (*domain.Membership, error) {
	var m domain.Membership
	var role string
	if err := s.Scan(&m.ID, &m.UserID, &m.EntityID, &role, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Role = domain.Role(role)
	return &m, nil
}
