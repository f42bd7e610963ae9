package repository

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/membership/domain"
)

// Repository defines persistence for memberships.
type Repository interface {
	GetByUserAndEntity(ctx context.Context, userID, entityID string) (*domain.Membership, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Membership, error)
	// ListMembers returns the entity's memberships joined to user emails, sorted by role then email.
	ListMembers(ctx context.Context, entityID string) ([]*domain.Member, error)
	Create(ctx context.Context, m *domain.Membership) error
	// Upsert inserts m or, when (user, entity) already exists, overwrites its role. Returns the stored row.
	Upsert(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
}
