package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/platform/rbac"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
)

// Store is the membership persistence the handler reads.
type Store interface {
	rbac.MembershipGetter
	ListMembers(ctx context.Context, entityID string) ([]*domain.Member, error)
}

// Server implements MembershipService (ledger.v1) for entity membership lookups.
type Server struct {
	ledgerv1.UnimplementedMembershipServiceServer
	store Store
}

// NewServer returns a new Membership gRPC server. Pass nil store for stub (Unimplemented).
func NewServer(store Store) *Server {
	return &Server{store: store}
}

// GetMembership returns the caller's membership in the entity.
func (s *Server) GetMembership(ctx context.Context, req *ledgerv1.GetMembershipRequest) (*ledgerv1.GetMembershipResponse, error) {
	return s.membership(ctx, req.EntityID, rbac.RequireMembership)
}

// RequireOwnerMembership is GetMembership that additionally fails unless the caller owns the entity.
func (s *Server) RequireOwnerMembership(ctx context.Context, req *ledgerv1.GetMembershipRequest) (*ledgerv1.GetMembershipResponse, error) {
	return s.membership(ctx, req.EntityID, rbac.RequireOwner)
}

type guard func(ctx context.Context, getter rbac.MembershipGetter, userID, entityID string) (*domain.Membership, error)

func (s *Server) membership(ctx context.Context, entityID string, check guard) (*ledgerv1.GetMembershipResponse, error) {
	if s.store == nil {
		return nil, status.Error(codes.Unimplemented, "membership store not configured")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	m, err := check(ctx, s.store, userID, entityID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	email, _ := interceptors.GetEmail(ctx)
	return &ledgerv1.GetMembershipResponse{Membership: toWire(m, email)}, nil
}

// ListMembers returns every member of an entity the caller belongs to, sorted by role then email.
func (s *Server) ListMembers(ctx context.Context, req *ledgerv1.ListMembersRequest) (*ledgerv1.ListMembersResponse, error) {
	if s.store == nil {
		return nil, status.Error(codes.Unimplemented, "method ListMembers not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := rbac.RequireMembership(ctx, s.store, userID, req.EntityID); err != nil {
		return nil, apperr.ToStatus(err)
	}
	members, err := s.store.ListMembers(ctx, req.EntityID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	out := make([]ledgerv1.Membership, 0, len(members))
	for _, m := range members {
		out = append(out, toWire(&m.Membership, m.UserEmail))
	}
	return &ledgerv1.ListMembersResponse{Members: out}, nil
}

func toWire(m *domain.Membership, email string) ledgerv1.Membership {
	return ledgerv1.Membership{
		ID:        m.ID,
		EntityID:  m.EntityID,
		UserEmail: email,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
	}
}
