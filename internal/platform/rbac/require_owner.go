package rbac

import (
	"context"

	"github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
)

// RequireOwner is RequireMembership plus a check that the membership role is owner.
func RequireOwner(ctx context.Context, getter MembershipGetter, userID, entityID string) (*domain.Membership, error) {
	m, err := RequireMembership(ctx, getter, userID, entityID)
	if err != nil {
		return nil, err
	}
	if m.Role != domain.RoleOwner {
		recordDenial(ctx, "not_owner")
		return nil, apperr.Forbidden(MsgOwnerRequired)
	}
	return m, nil
}
