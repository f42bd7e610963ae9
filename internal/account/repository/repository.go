package repository

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/account/domain"
)

// Repository defines persistence for entity accounts.
type Repository interface {
	// GetByID returns the account, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) error
	// ListByEntity returns the entity's accounts sorted by name, then creation time.
	ListByEntity(ctx context.Context, entityID string) ([]*domain.Account, error)
}
