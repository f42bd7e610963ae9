package repository

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/entity/domain"
)

// Repository defines persistence for entities.
type Repository interface {
	// GetByID returns the entity, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Entity, error)
	Create(ctx context.Context, e *domain.Entity) error
	// Update writes the editable fields and updated_at of e.
	Update(ctx context.Context, e *domain.Entity) error
}
