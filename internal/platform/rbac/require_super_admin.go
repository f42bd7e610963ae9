package rbac

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

// UserGetter resolves a user by id, returning NotFound when absent.
type UserGetter interface {
	RequireUserByID(ctx context.Context, id string) (*userdomain.User, error)
}

// RequireSuperAdmin returns the caller when they hold the super-admin platform role.
func RequireSuperAdmin(ctx context.Context, users UserGetter, userID string) (*userdomain.User, error) {
	u, err := users.RequireUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.IsSuperAdmin() {
		recordDenial(ctx, "not_super_admin")
		return nil, apperr.Forbidden("super admin access required")
	}
	return u, nil
}
