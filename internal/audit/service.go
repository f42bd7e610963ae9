package audit

import (
	"context"
	"fmt"
	"sort"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	auditrepo "github.com/grezxune/ours-ledger/internal/audit/repository"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ClampLimit maps a requested page size into [1, MaxListLimit]; non-positive means the default.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

// Service answers audit queries on behalf of a viewer.
type Service struct {
	events      auditrepo.Repository
	users       UserLookup
	memberships MembershipLister
	resolver    *Resolver
}

// NewService returns an audit query service.
func NewService(events auditrepo.Repository, users UserLookup, memberships MembershipLister, resolver *Resolver) *Service {
	return &Service{events: events, users: users, memberships: memberships, resolver: resolver}
}

// ListRecent returns the newest events userID may see, at most ClampLimit(limit) of them.
func (s *Service) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Event, error) {
	limit = ClampLimit(limit)
	viewer, err := LoadViewer(ctx, s.users, s.memberships, userID)
	if err != nil {
		return nil, err
	}
	scope := auditrepo.Scope{
		UserID:      viewer.UserID,
		EntityIDs:   viewer.EntityIDs(),
		AllPlatform: viewer.IsSuperAdmin,
	}
	candidates, err := s.events.ListVisible(ctx, scope, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}

	out := make([]*domain.Event, 0, len(candidates))
	for _, e := range candidates {
		if CanView(e, viewer) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Newer(out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetByID returns one event with its resolved detail.
func (s *Service) GetByID(ctx context.Context, userID, eventID string) (*domain.Detail, error) {
	viewer, err := LoadViewer(ctx, s.users, s.memberships, userID)
	if err != nil {
		return nil, err
	}
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get audit event: %w", err)
	}
	if e == nil {
		return nil, apperr.NotFound("audit event not found")
	}
	if !CanView(e, viewer) {
		return nil, apperr.Forbidden("you do not have access to this audit event")
	}
	return s.resolver.Resolve(ctx, e)
}
