package audit

import (
	"context"
	"strings"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/platform/rbac"
)

// ManualRecorder appends caller-described events for workflows that have no dedicated mutation.
type ManualRecorder struct {
	tx          db.Transactor
	memberships rbac.MembershipGetter
	recorder    EventRecorder
}

// NewManualRecorder returns a ManualRecorder.
func NewManualRecorder(tx db.Transactor, memberships rbac.MembershipGetter, recorder EventRecorder) *ManualRecorder {
	return &ManualRecorder{tx: tx, memberships: memberships, recorder: recorder}
}

// Record appends one event as userID. An entity id requires membership in that entity; without
// one the event is platform scoped and only its actor and super admins will see it.
func (m *ManualRecorder) Record(ctx context.Context, userID string, in Input) (*domain.Event, error) {
	in.ActorUserID = userID
	in.Action = domain.Action(strings.TrimSpace(string(in.Action)))
	in.Target = strings.TrimSpace(in.Target)
	in.EntityID = strings.TrimSpace(in.EntityID)
	if in.Action == "" {
		return nil, apperr.Validation("audit action is required")
	}
	var e *domain.Event
	err := m.tx.RunInTx(ctx, func(ctx context.Context) error {
		if in.EntityID != "" {
			if _, err := rbac.RequireMembership(ctx, m.memberships, userID, in.EntityID); err != nil {
				return err
			}
		}
		var err error
		e, err = m.recorder.Record(ctx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}
