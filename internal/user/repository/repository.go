package repository

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/user/domain"
)

// Repository defines persistence for users.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail expects an already-normalized email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	// UpdateProfile patches name, platform role and updated_at.
	UpdateProfile(ctx context.Context, u *domain.User) error
}
