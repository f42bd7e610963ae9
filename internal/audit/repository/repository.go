package repository

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
)

// Scope narrows an event listing to what one viewer may see.
type Scope struct {
	UserID string
	// EntityIDs are the entities the viewer belongs to.
	EntityIDs []string
	// AllPlatform includes every platform-scoped event, not only the viewer's own.
	AllPlatform bool
}

// Repository defines append-only persistence for audit events. There is no update or delete.
type Repository interface {
	// Append inserts e and sets its Seq.
	Append(ctx context.Context, e *domain.Event) error
	// GetByID returns the event, or nil if not found.
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// ListVisible returns up to limit events inside scope, newest first.
	ListVisible(ctx context.Context, scope Scope, limit int) ([]*domain.Event, error)
}

// RecordStore loads any record an audit event can reference.
type RecordStore interface {
	// LoadRecord returns the record's columns, or nil when the row no longer exists.
	LoadRecord(ctx context.Context, table domain.Table, id string) (map[string]any, error)
}
