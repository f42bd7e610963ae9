package rbac

import (
	"context"
	"fmt"

	"github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
)

// RequireMembership returns the caller's membership in entityID. It returns a Forbidden error when
// the user is not a member and wraps storage failures unchanged in kind.
func RequireMembership(ctx context.Context, getter MembershipGetter, userID, entityID string) (*domain.Membership, error) {
	m, err := getter.GetByUserAndEntity(ctx, userID, entityID)
	if err != nil {
		return nil, fmt.Errorf("resolve membership: %w", err)
	}
	if m == nil {
		recordDenial(ctx, "not_member")
		return nil, apperr.Forbidden(MsgNoEntityAccess)
	}
	return m, nil
}
