package repository

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/ledger/domain"
)

// Repository defines persistence for ledger transactions.
type Repository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	// ListByEntity returns the entity's transactions, newest date first and newest row first within a date.
	ListByEntity(ctx context.Context, entityID string) ([]*domain.Transaction, error)
}
