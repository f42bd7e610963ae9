package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/invitation/domain"
	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
)

const invitationColumns = `id, entity_id, email, role, status, invited_by_user_id, created_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an invitation repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+invitationColumns+` FROM invitations WHERE id = $1`, id)
	return scanOne(row)
}

func (r *PostgresRepository) GetPending(ctx context.Context, entityID, email string) (*domain.Invitation, error) {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE entity_id = $1 AND email = $2 AND status = 'pending'`,
		entityID, email)
	return scanOne(row)
}

func (r *PostgresRepository) Create(ctx context.Context, inv *domain.Invitation) (bool, error) {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO invitations (`+invitationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (entity_id, email) WHERE status = 'pending' DO NOTHING`,
		inv.ID, inv.EntityID, inv.Email, string(inv.Role), string(inv.Status), inv.InvitedByUserID, inv.CreatedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *PostgresRepository) Transition(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE invitations SET status = $3 WHERE id = $1 AND status = $2`, id, string(from), string(to))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *PostgresRepository) ListByEntity(ctx context.Context, entityID string) ([]*domain.Invitation, error) {
	return r.list(ctx, `SELECT `+invitationColumns+` FROM invitations WHERE entity_id = $1 ORDER BY created_at DESC`, entityID)
}

func (r *PostgresRepository) ListPendingByEmail(ctx context.Context, email string) ([]*domain.Invitation, error) {
	return r.list(ctx, `SELECT `+invitationColumns+` FROM invitations WHERE email = $1 AND status = 'pending' ORDER BY created_at DESC`, email)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg string) ([]*domain.Invitation, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOne(s scanner) (*domain.Invitation, error) {
	inv, err := scanInvitation(s)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return inv, err
}

func scanInvitation(s scanner) (*domain.Invitation, error) {
	var inv domain.Invitation
	var role, status string
	if err := s.Scan(&inv.ID, &inv.EntityID, &inv.Email, &role, &status, &inv.InvitedByUserID, &inv.CreatedAt); err != nil {
		return nil, err
	}
	inv.Role = mdomain.Role(role)
	inv.Status = domain.Status(status)
	return &inv, nil
}
