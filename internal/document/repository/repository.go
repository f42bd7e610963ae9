package repository

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/document/domain"
)

// Repository defines persistence for document metadata.
type Repository interface {
	Create(ctx context.Context, d *domain.Document) error
	// ListByEntity returns the entity's documents, newest first.
	ListByEntity(ctx context.Context, entityID string) ([]*domain.Document, error)
}
