package audit

import (
	"context"
	"fmt"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	membershipdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
)

// MembershipLister returns every membership a user holds.
type MembershipLister interface {
	ListByUser(ctx context.Context, userID string) ([]*membershipdomain.Membership, error)
}

// Viewer is the visibility context of one user, materialized once per request.
type Viewer struct {
	UserID           string
	IsSuperAdmin     bool
	VisibleEntityIDs map[string]struct{}
}

// LoadViewer builds the viewer for userID from its platform role and current memberships.
func LoadViewer(ctx context.Context, users UserLookup, memberships MembershipLister, userID string) (*Viewer, error) {
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load viewer: %w", err)
	}
	if u == nil {
		return nil, apperr.NotFound("authenticated user not found")
	}
	ms, err := memberships.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load viewer memberships: %w", err)
	}
	v := &Viewer{
		UserID:           u.ID,
		IsSuperAdmin:     u.IsSuperAdmin(),
		VisibleEntityIDs: make(map[string]struct{}, len(ms)),
	}
	for _, m := range ms {
		v.VisibleEntityIDs[m.EntityID] = struct{}{}
	}
	return v, nil
}

// EntityIDs returns the visible entity ids in no particular order.
func (v *Viewer) EntityIDs() []string {
	out := make([]string, 0, len(v.VisibleEntityIDs))
	for id := range v.VisibleEntityIDs {
		out = append(out, id)
	}
	return out
}

// CanView reports whether v may see e. Entity-scoped events require membership, with no
// super-admin override. Platform-scoped events are visible to their actor and to super admins.
func CanView(e *domain.Event, v *Viewer) bool {
	if e == nil || v == nil {
		return false
	}
	if !e.PlatformScoped() {
		_, ok := v.VisibleEntityIDs[e.EntityID]
		return ok
	}
	return e.ActorUserID == v.UserID || v.IsSuperAdmin
}
