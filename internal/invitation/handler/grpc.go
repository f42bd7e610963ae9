package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/invitation/domain"
	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
)

// InvitationService is the invitation behaviour the handler exposes.
type InvitationService interface {
	Create(ctx context.Context, userID, entityID, email string, role mdomain.Role) (*domain.Invitation, bool, error)
	Accept(ctx context.Context, userID, invitationID string) (*domain.Invitation, *mdomain.Membership, error)
	Revoke(ctx context.Context, userID, invitationID string) (*domain.Invitation, error)
	ListForEntity(ctx context.Context, userID, entityID string) ([]*domain.Invitation, error)
	ListMine(ctx context.Context, userID string) ([]*domain.Invitation, error)
}

// Server implements InvitationService (ledger.v1).
type Server struct {
	ledgerv1.UnimplementedInvitationServiceServer
	svc InvitationService
}

// NewServer returns a new Invitation gRPC server. Pass nil svc for stub (Unimplemented).
func NewServer(svc InvitationService) *Server {
	return &Server{svc: svc}
}

func (s *Server) caller(ctx context.Context, method string) (string, error) {
	if s.svc == nil {
		return "", status.Errorf(codes.Unimplemented, "method %s not implemented", method)
	}
	return interceptors.RequireUserID(ctx)
}

func (s *Server) CreateInvitation(ctx context.Context, req *ledgerv1.CreateInvitationRequest) (*ledgerv1.CreateInvitationResponse, error) {
	userID, err := s.caller(ctx, "CreateInvitation")
	if err != nil {
		return nil, err
	}
	role := mdomain.Role(req.Role)
	if role == "" {
		role = mdomain.RoleUser
	}
	inv, created, err := s.svc.Create(ctx, userID, req.EntityID, req.Email, role)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.CreateInvitationResponse{Invitation: toWire(inv), Created: created}, nil
}

func (s *Server) AcceptInvitation(ctx context.Context, req *ledgerv1.AcceptInvitationRequest) (*ledgerv1.AcceptInvitationResponse, error) {
	userID, err := s.caller(ctx, "AcceptInvitation")
	if err != nil {
		return nil, err
	}
	inv, m, err := s.svc.Accept(ctx, userID, req.InvitationID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.AcceptInvitationResponse{
		Invitation: toWire(inv),
		Membership: ledgerv1.Membership{
			ID:        m.ID,
			EntityID:  m.EntityID,
			UserEmail: inv.Email,
			Role:      string(m.Role),
			CreatedAt: m.CreatedAt,
		},
	}, nil
}

func (s *Server) RevokeInvitation(ctx context.Context, req *ledgerv1.RevokeInvitationRequest) (*ledgerv1.RevokeInvitationResponse, error) {
	userID, err := s.caller(ctx, "RevokeInvitation")
	if err != nil {
		return nil, err
	}
	inv, err := s.svc.Revoke(ctx, userID, req.InvitationID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.RevokeInvitationResponse{Invitation: toWire(inv)}, nil
}

func (s *Server) ListEntityInvitations(ctx context.Context, req *ledgerv1.ListEntityInvitationsRequest) (*ledgerv1.ListInvitationsResponse, error) {
	userID, err := s.caller(ctx, "ListEntityInvitations")
	if err != nil {
		return nil, err
	}
	list, err := s.svc.ListForEntity(ctx, userID, req.EntityID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return listToWire(list), nil
}

func (s *Server) ListMyInvitations(ctx context.Context, req *ledgerv1.ListMyInvitationsRequest) (*ledgerv1.ListInvitationsResponse, error) {
	userID, err := s.caller(ctx, "ListMyInvitations")
	if err != nil {
		return nil, err
	}
	list, err := s.svc.ListMine(ctx, userID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return listToWire(list), nil
}

func listToWire(list []*domain.Invitation) *ledgerv1.ListInvitationsResponse {
	out := make([]ledgerv1.Invitation, 0, len(list))
	for _, inv := range list {
		out = append(out, toWire(inv))
	}
	return &ledgerv1.ListInvitationsResponse{Invitations: out}
}

func toWire(inv *domain.Invitation) ledgerv1.Invitation {
	return ledgerv1.Invitation{
		ID:              inv.ID,
		EntityID:        inv.EntityID,
		Email:           inv.Email,
		Role:            string(inv.Role),
		Status:          string(inv.Status),
		InvitedByUserID: inv.InvitedByUserID,
		CreatedAt:       inv.CreatedAt,
	}
}
