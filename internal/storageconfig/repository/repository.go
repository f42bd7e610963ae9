package repository

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/storageconfig/domain"
)

// Repository persists the single storage configuration row.
type Repository interface {
	// Get returns the active configuration, or nil when none has been saved.
	Get(ctx context.Context) (*domain.Config, error)
	Create(ctx context.Context, c *domain.Config) error
	Update(ctx context.Context, c *domain.Config) error
}
