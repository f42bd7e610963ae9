// Package rbac holds the permission guards every entity-scoped read and write goes through.
package rbac

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/grezxune/ours-ledger/internal/membership/domain"
)

// Messages returned to callers on denial.
const (
	MsgNoEntityAccess = "you do not have access to this entity"
	MsgOwnerRequired  = "only owners can perform this action"
)

// MembershipGetter returns a user's membership in an entity, or nil when there is none.
type MembershipGetter interface {
	GetByUserAndEntity(ctx context.Context, userID, entityID string) (*domain.Membership, error)
}

var denials metric.Int64Counter

func init() {
	var err error
	denials, err = otel.Meter("github.com/grezxune/ours-ledger/internal/platform/rbac").Int64Counter(
		"ledger.authz.denials",
		metric.WithDescription("Authorization checks that denied the caller"),
	)
	if err != nil {
		otel.Handle(err)
	}
}

func recordDenial(ctx context.Context, reason string) {
	if denials != nil {
		denials.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	}
}
