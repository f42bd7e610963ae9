package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/ledger/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
)

// LedgerService is the transaction behaviour the handler exposes.
type LedgerService interface {
	Create(ctx context.Context, userID, entityID string, in domain.Input) (*domain.Transaction, error)
	List(ctx context.Context, userID, entityID string) ([]*domain.Transaction, error)
}

// Server implements TransactionService (ledger.v1).
type Server struct {
	ledgerv1.UnimplementedTransactionServiceServer
	svc LedgerService
}

// NewServer returns a new Transaction gRPC server. Pass nil svc for stub (Unimplemented).
func NewServer(svc LedgerService) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateTransaction(ctx context.Context, req *ledgerv1.CreateTransactionRequest) (*ledgerv1.CreateTransactionResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateTransaction not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	in := domain.Input{
		Kind:        domain.Kind(req.Kind),
		Type:        domain.Type(req.Type),
		Status:      domain.Status(req.Status),
		AmountCents: req.AmountCents,
		Date:        req.Date,
		Category:    req.Category,
		Payee:       req.Payee,
		Notes:       req.Notes,
	}
	if r := req.Recurrence; r != nil {
		in.Recurrence = &domain.Recurrence{Cadence: r.Cadence, StartDate: r.StartDate, EndDate: r.EndDate, NextRunAt: r.NextRunAt}
	}
	t, err := s.svc.Create(ctx, userID, req.EntityID, in)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.CreateTransactionResponse{Transaction: toWire(t)}, nil
}

func (s *Server) ListTransactions(ctx context.Context, req *ledgerv1.ListTransactionsRequest) (*ledgerv1.ListTransactionsResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method ListTransactions not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.svc.List(ctx, userID, req.EntityID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	out := make([]ledgerv1.Transaction, 0, len(list))
	for _, t := range list {
		out = append(out, toWire(t))
	}
	return &ledgerv1.ListTransactionsResponse{Transactions: out}, nil
}

func toWire(t *domain.Transaction) ledgerv1.Transaction {
	out := ledgerv1.Transaction{
		ID:          t.ID,
		EntityID:    t.EntityID,
		Source:      t.Source,
		Kind:        string(t.Kind),
		Type:        string(t.Type),
		Status:      string(t.Status),
		AmountCents: t.AmountCents,
		Date:        t.Date,
		Category:    t.Category,
		Notes:       t.Notes,
		Payee:       t.Payee,
		CreatedBy:   t.CreatedByEmail,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if r := t.Recurrence; r != nil {
		out.Recurrence = &ledgerv1.Recurrence{Cadence: r.Cadence, StartDate: r.StartDate, EndDate: r.EndDate, NextRunAt: r.NextRunAt}
	}
	return out
}
