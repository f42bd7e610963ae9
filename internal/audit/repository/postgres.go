package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/db"
)

const eventColumns = `id, seq, entity_id, actor_user_id, actor_email, action, target, metadata, created_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an audit event repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

// Append inserts e inside the caller's transaction when one is present.
func (r *PostgresRepository) Append(ctx context.Context, e *domain.Event) error {
	meta := e.Metadata
	if meta == nil {
		meta = domain.Metadata{}
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return db.Conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO audit_events (id, entity_id, actor_user_id, actor_email, action, target, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seq`,
		e.ID, nullUUID(e.EntityID), e.ActorUserID, e.ActorEmail, string(e.Action), e.Target, string(b), e.CreatedAt,
	).Scan(&e.Seq)
}

// GetByID returns the event for id, or nil if not found. Malformed ids are treated as missing.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	row := db.Conn(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM audit_events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

func (r *PostgresRepository) ListVisible(ctx context.Context, scope Scope, limit int) ([]*domain.Event, error) {
	entityIDs := scope.EntityIDs
	if entityIDs == nil {
		entityIDs = []string{}
	}
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM audit_events
		WHERE entity_id = ANY(CAST($1::text[] AS uuid[]))
		   OR (entity_id IS NULL AND (actor_user_id = $2 OR $3))
		ORDER BY created_at DESC, seq DESC
		LIMIT $4`,
		entityIDs, scope.UserID, scope.AllPlatform, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	var (
		e        domain.Event
		entityID sql.NullString
		action   string
		meta     []byte
	)
	if err := s.Scan(&e.ID, &e.Seq, &entityID, &e.ActorUserID, &e.ActorEmail, &action, &e.Target, &meta, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.EntityID = entityID.String
	e.Action = domain.Action(action)
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &e.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata for %s: %w", e.ID, err)
		}
	}
	return &e, nil
}

func nullUUID(s string) any {
	if s == "" {
		return nil
	}
	return s
}
