package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/budget/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
)

// BudgetService is the budget behaviour the handler exposes.
type BudgetService interface {
	CreateBudget(ctx context.Context, userID, entityID string, in domain.BudgetInput) (string, error)
	ListBudgets(ctx context.Context, userID, entityID string) ([]*domain.Detail, error)
	GetBudget(ctx context.Context, userID, budgetID string) (*domain.Detail, error)
	AddIncomeSource(ctx context.Context, userID, budgetID string, in domain.IncomeSourceInput) (string, error)
	UpdateIncomeSource(ctx context.Context, userID, incomeSourceID string, in domain.IncomeSourceInput) error
	RemoveIncomeSource(ctx context.Context, userID, incomeSourceID string) error
	AddRecurringExpense(ctx context.Context, userID, budgetID string, in domain.RecurringExpenseInput) (string, error)
	RemoveRecurringExpense(ctx context.Context, userID, recurringExpenseID string) error
}

// Server implements BudgetService (ledger.v1).
type Server struct {
	ledgerv1.UnimplementedBudgetServiceServer
	svc BudgetService
}

// NewServer returns a new Budget gRPC server. Pass nil svc for stub (Unimplemented).
func NewServer(svc BudgetService) *Server {
	return &Server{svc: svc}
}

func (s *Server) caller(ctx context.Context, method string) (string, error) {
	if s.svc == nil {
		return "", status.Errorf(codes.Unimplemented, "method %s not implemented", method)
	}
	return interceptors.RequireUserID(ctx)
}

func (s *Server) CreateBudget(ctx context.Context, req *ledgerv1.CreateBudgetRequest) (*ledgerv1.CreateBudgetResponse, error) {
	userID, err := s.caller(ctx, "CreateBudget")
	if err != nil {
		return nil, err
	}
	id, err := s.svc.CreateBudget(ctx, userID, req.EntityID, domain.BudgetInput{
		Name:          req.Name,
		Period:        domain.Period(req.Period),
		EffectiveDate: req.EffectiveDate,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.CreateBudgetResponse{BudgetID: id}, nil
}

func (s *Server) ListBudgets(ctx context.Context, req *ledgerv1.ListBudgetsRequest) (*ledgerv1.ListBudgetsResponse, error) {
	userID, err := s.caller(ctx, "ListBudgets")
	if err != nil {
		return nil, err
	}
	list, err := s.svc.ListBudgets(ctx, userID, req.EntityID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	out := make([]ledgerv1.Budget, 0, len(list))
	for _, d := range list {
		out = append(out, detailToWire(d))
	}
	return &ledgerv1.ListBudgetsResponse{Budgets: out}, nil
}

func (s *Server) GetBudget(ctx context.Context, req *ledgerv1.GetBudgetRequest) (*ledgerv1.GetBudgetResponse, error) {
	userID, err := s.caller(ctx, "GetBudget")
	if err != nil {
		return nil, err
	}
	d, err := s.svc.GetBudget(ctx, userID, req.BudgetID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.GetBudgetResponse{Budget: detailToWire(d)}, nil
}

func (s *Server) AddIncomeSource(ctx context.Context, req *ledgerv1.AddIncomeSourceRequest) (*ledgerv1.LineItemResponse, error) {
	userID, err := s.caller(ctx, "AddIncomeSource")
	if err != nil {
		return nil, err
	}
	id, err := s.svc.AddIncomeSource(ctx, userID, req.BudgetID, incomeInput(req.Input))
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.LineItemResponse{ID: id}, nil
}

func (s *Server) UpdateIncomeSource(ctx context.Context, req *ledgerv1.UpdateIncomeSourceRequest) (*ledgerv1.LineItemResponse, error) {
	userID, err := s.caller(ctx, "UpdateIncomeSource")
	if err != nil {
		return nil, err
	}
	if err := s.svc.UpdateIncomeSource(ctx, userID, req.IncomeSourceID, incomeInput(req.Input)); err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.LineItemResponse{ID: req.IncomeSourceID}, nil
}

func (s *Server) RemoveIncomeSource(ctx context.Context, req *ledgerv1.RemoveIncomeSourceRequest) (*ledgerv1.LineItemResponse, error) {
	userID, err := s.caller(ctx, "RemoveIncomeSource")
	if err != nil {
		return nil, err
	}
	if err := s.svc.RemoveIncomeSource(ctx, userID, req.IncomeSourceID); err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.LineItemResponse{ID: req.IncomeSourceID}, nil
}

func (s *Server) AddRecurringExpense(ctx context.Context, req *ledgerv1.AddRecurringExpenseRequest) (*ledgerv1.LineItemResponse, error) {
	userID, err := s.caller(ctx, "AddRecurringExpense")
	if err != nil {
		return nil, err
	}
	id, err := s.svc.AddRecurringExpense(ctx, userID, req.BudgetID, domain.RecurringExpenseInput{
		Name:        req.Input.Name,
		AmountCents: req.Input.AmountCents,
		Cadence:     domain.Period(req.Input.Cadence),
		AccountID:   req.Input.AccountID,
		Category:    req.Input.Category,
		Notes:       req.Input.Notes,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.LineItemResponse{ID: id}, nil
}

func (s *Server) RemoveRecurringExpense(ctx context.Context, req *ledgerv1.RemoveRecurringExpenseRequest) (*ledgerv1.LineItemResponse, error) {
	userID, err := s.caller(ctx, "RemoveRecurringExpense")
	if err != nil {
		return nil, err
	}
	if err := s.svc.RemoveRecurringExpense(ctx, userID, req.RecurringExpenseID); err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.LineItemResponse{ID: req.RecurringExpenseID}, nil
}

func incomeInput(in ledgerv1.IncomeSourceInput) domain.IncomeSourceInput {
	return domain.IncomeSourceInput{
		Name:        in.Name,
		AmountCents: in.AmountCents,
		Cadence:     domain.Period(in.Cadence),
		Notes:       in.Notes,
	}
}

func detailToWire(d *domain.Detail) ledgerv1.Budget {
	b := d.Budget
	out := ledgerv1.Budget{
		ID:                b.ID,
		EntityID:          b.EntityID,
		Name:              b.Name,
		Period:            string(b.Period),
		EffectiveDate:     b.EffectiveDate,
		Status:            string(b.Status),
		IncomeSources:     make([]ledgerv1.IncomeSource, 0, len(d.IncomeSources)),
		RecurringExpenses: make([]ledgerv1.RecurringExpense, 0, len(d.RecurringExpenses)),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
	for _, in := range d.IncomeSources {
		out.IncomeSources = append(out.IncomeSources, ledgerv1.IncomeSource{
			ID:          in.ID,
			BudgetID:    in.BudgetID,
			EntityID:    in.EntityID,
			Name:        in.Name,
			AmountCents: in.AmountCents,
			Cadence:     string(in.Cadence),
			Notes:       in.Notes,
			CreatedAt:   in.CreatedAt,
			UpdatedAt:   in.UpdatedAt,
		})
	}
	for _, e := range d.RecurringExpenses {
		line := ledgerv1.RecurringExpense{
			ID:          e.ID,
			BudgetID:    e.BudgetID,
			EntityID:    e.EntityID,
			AccountID:   e.AccountID,
			Name:        e.Name,
			AmountCents: e.AmountCents,
			Cadence:     string(e.Cadence),
			Category:    e.Category,
			Notes:       e.Notes,
			CreatedAt:   e.CreatedAt,
			UpdatedAt:   e.UpdatedAt,
		}
		if e.PaidFrom != nil {
			line.PaidFromAccount = &ledgerv1.AccountRef{ID: e.PaidFrom.ID, Name: e.PaidFrom.Name, Source: e.PaidFrom.Source}
		}
		out.RecurringExpenses = append(out.RecurringExpenses, line)
	}
	return out
}
