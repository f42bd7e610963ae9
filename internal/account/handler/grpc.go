package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/account/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
)

// AccountService is the account behaviour the handler exposes.
type AccountService interface {
	Create(ctx context.Context, userID, entityID string, in domain.Input) (*domain.Account, error)
	List(ctx context.Context, userID, entityID string) ([]*domain.Account, error)
}

// Server implements AccountService (ledger.v1).
type Server struct {
	ledgerv1.UnimplementedAccountServiceServer
	svc AccountService
}

// NewServer returns a new Account gRPC server. Pass nil svc for stub (Unimplemented).
func NewServer(svc AccountService) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateAccount(ctx context.Context, req *ledgerv1.CreateAccountRequest) (*ledgerv1.CreateAccountResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateAccount not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.svc.Create(ctx, userID, req.EntityID, domain.Input{
		Name:            req.Name,
		Currency:        req.Currency,
		Source:          domain.Source(req.Source),
		InstitutionName: req.InstitutionName,
		PlaidAccountID:  req.PlaidAccountID,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.CreateAccountResponse{Account: toWire(a)}, nil
}

func (s *Server) ListAccounts(ctx context.Context, req *ledgerv1.ListAccountsRequest) (*ledgerv1.ListAccountsResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method ListAccounts not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.svc.List(ctx, userID, req.EntityID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	out := make([]ledgerv1.Account, 0, len(list))
	for _, a := range list {
		out = append(out, toWire(a))
	}
	return &ledgerv1.ListAccountsResponse{Accounts: out}, nil
}

func toWire(a *domain.Account) ledgerv1.Account {
	return ledgerv1.Account{
		ID:              a.ID,
		EntityID:        a.EntityID,
		Name:            a.Name,
		Currency:        a.Currency,
		Source:          string(a.Source),
		InstitutionName: a.InstitutionName,
		PlaidAccountID:  a.PlaidAccountID,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
