package repository

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/invitation/domain"
)

// Repository defines persistence for invitations.
type Repository interface {
	// GetByID returns the invitation, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Invitation, error)
	// GetPending returns the pending invitation for (entity, email), or nil.
	GetPending(ctx context.Context, entityID, email string) (*domain.Invitation, error)
	// Create inserts inv. It reports false, writing nothing, when a pending invitation for the
	// same (entity, email) already exists.
	Create(ctx context.Context, inv *domain.Invitation) (bool, error)
	// Transition moves the invitation from one status to another. It reports false when the
	// invitation was not in the from status, leaving it untouched.
	Transition(ctx context.Context, id string, from, to domain.Status) (bool, error)
	// ListByEntity returns the entity's invitations newest first.
	ListByEntity(ctx context.Context, entityID string) ([]*domain.Invitation, error)
	// ListPendingByEmail returns pending invitations addressed to email, newest first.
	ListPendingByEmail(ctx context.Context, email string) ([]*domain.Invitation, error)
}
