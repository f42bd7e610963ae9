// Package service implements budgets and their income and recurring expense lines.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	accountdomain "github.com/grezxune/ours-ledger/internal/account/domain"
	"github.com/grezxune/ours-ledger/internal/audit"
	auditdomain "github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/budget/domain"
	budgetrepo "github.com/grezxune/ours-ledger/internal/budget/repository"
	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/platform/rbac"
)

const hydrateConcurrency = 8

// AccountGetter resolves accounts referenced by expense lines.
type AccountGetter interface {
	GetByID(ctx context.Context, id string) (*accountdomain.Account, error)
}

// BudgetService owns budgets.
type BudgetService struct {
	tx          db.Transactor
	budgets     budgetrepo.Repository
	accounts    AccountGetter
	memberships rbac.MembershipGetter
	recorder    audit.EventRecorder
	now         func() time.Time
}

// NewBudgetService returns a BudgetService.
func NewBudgetService(tx db.Transactor, budgets budgetrepo.Repository, accounts AccountGetter, memberships rbac.MembershipGetter, recorder audit.EventRecorder) *BudgetService {
	return &BudgetService{
		tx:          tx,
		budgets:     budgets,
		accounts:    accounts,
		memberships: memberships,
		recorder:    recorder,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateBudget adds an active budget to an entity the caller belongs to.
func (s *BudgetService) CreateBudget(ctx context.Context, userID, entityID string, in domain.BudgetInput) (string, error) {
	if msg := in.Validate(); msg != "" {
		return "", apperr.Validation(msg)
	}
	now := s.now()
	b := &domain.Budget{
		ID:              uuid.NewString(),
		EntityID:        entityID,
		Name:            in.Name,
		Period:          in.Period,
		EffectiveDate:   in.EffectiveDate,
		Status:          domain.StatusActive,
		CreatedByUserID: userID,
		UpdatedByUserID: userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := rbac.RequireMembership(ctx, s.memberships, userID, entityID); err != nil {
			return err
		}
		if err := s.budgets.CreateBudget(ctx, b); err != nil {
			return fmt.Errorf("create budget: %w", err)
		}
		_, err := s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    entityID,
			Action:      auditdomain.ActionBudgetCreated,
			Target:      b.ID,
			Metadata: auditdomain.NewMetadata().
				Set("budgetId", b.ID).
				Set("name", b.Name).
				Set("period", string(b.Period)).
				Set("effectiveDate", b.EffectiveDate),
		})
		return err
	})
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

// ListBudgets returns an entity's budgets with their lines, most recently updated first.
func (s *BudgetService) ListBudgets(ctx context.Context, userID, entityID string) ([]*domain.Detail, error) {
	if _, err := rbac.RequireMembership(ctx, s.memberships, userID, entityID); err != nil {
		return nil, err
	}
	budgets, err := s.budgets.ListBudgets(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	out := make([]*domain.Detail, len(budgets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hydrateConcurrency)
	for i, b := range budgets {
		g.Go(func() error {
			d, err := s.hydrate(gctx, b)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBudget returns one budget with its lines.
func (s *BudgetService) GetBudget(ctx context.Context, userID, budgetID string) (*domain.Detail, error) {
	b, err := s.requireBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, b)
}

// AddIncomeSource appends an income line to a budget.
func (s *BudgetService) AddIncomeSource(ctx context.Context, userID, budgetID string, in domain.IncomeSourceInput) (string, error) {
	if msg := in.Validate(); msg != "" {
		return "", apperr.Validation(msg)
	}
	var id string
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err := s.requireBudget(ctx, userID, budgetID)
		if err != nil {
			return err
		}
		now := s.now()
		line := &domain.IncomeSource{
			ID:              uuid.NewString(),
			BudgetID:        b.ID,
			EntityID:        b.EntityID,
			Name:            in.Name,
			AmountCents:     in.AmountCents,
			Cadence:         in.Cadence,
			Notes:           in.Notes,
			CreatedByUserID: userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.budgets.CreateIncomeSource(ctx, line); err != nil {
			return fmt.Errorf("create income source: %w", err)
		}
		if err := s.budgets.TouchBudget(ctx, b.ID, userID, now); err != nil {
			return fmt.Errorf("touch budget: %w", err)
		}
		id = line.ID
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    b.EntityID,
			Action:      auditdomain.ActionBudgetIncomeSourceAdded,
			Target:      line.ID,
			Metadata:    auditdomain.NewMetadata().Set("budgetId", b.ID).Set("incomeSourceId", line.ID),
		})
		return err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateIncomeSource replaces an income line's fields, recording the previous name and amount.
func (s *BudgetService) UpdateIncomeSource(ctx context.Context, userID, incomeSourceID string, in domain.IncomeSourceInput) error {
	if msg := in.Validate(); msg != "" {
		return apperr.Validation(msg)
	}
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		line, err := s.budgets.GetIncomeSource(ctx, incomeSourceID)
		if err != nil {
			return fmt.Errorf("get income source: %w", err)
		}
		if line == nil {
			return apperr.NotFound("income source not found")
		}
		if _, err := rbac.RequireMembership(ctx, s.memberships, userID, line.EntityID); err != nil {
			return err
		}
		md := auditdomain.NewMetadata().
			Set("budgetId", line.BudgetID).
			Set("incomeSourceId", line.ID).
			Set("previousName", line.Name).
			SetInt("previousAmountCents", line.AmountCents)

		now := s.now()
		line.Name = in.Name
		line.AmountCents = in.AmountCents
		line.Cadence = in.Cadence
		line.Notes = in.Notes
		line.UpdatedAt = now
		if err := s.budgets.UpdateIncomeSource(ctx, line); err != nil {
			return fmt.Errorf("update income source: %w", err)
		}
		if err := s.budgets.TouchBudget(ctx, line.BudgetID, userID, now); err != nil {
			return fmt.Errorf("touch budget: %w", err)
		}
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    line.EntityID,
			Action:      auditdomain.ActionBudgetIncomeSourceUpdated,
			Target:      line.ID,
			Metadata: md.
				Set("name", line.Name).
				SetInt("amountCents", line.AmountCents).
				Set("cadence", string(line.Cadence)).
				Set("notes", line.Notes),
		})
		return err
	})
}

// RemoveIncomeSource deletes an income line. The audit event keeps its last values.
func (s *BudgetService) RemoveIncomeSource(ctx context.Context, userID, incomeSourceID string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		line, err := s.budgets.GetIncomeSource(ctx, incomeSourceID)
		if err != nil {
			return fmt.Errorf("get income source: %w", err)
		}
		if line == nil {
			return apperr.NotFound("income source not found")
		}
		if _, err := rbac.RequireMembership(ctx, s.memberships, userID, line.EntityID); err != nil {
			return err
		}
		if err := s.budgets.DeleteIncomeSource(ctx, line.ID); err != nil {
			return fmt.Errorf("delete income source: %w", err)
		}
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    line.EntityID,
			Action:      auditdomain.ActionBudgetIncomeSourceRemoved,
			Target:      line.ID,
			Metadata: auditdomain.NewMetadata().
				Set("budgetId", line.BudgetID).
				Set("incomeSourceId", line.ID).
				Set("name", line.Name).
				SetInt("amountCents", line.AmountCents).
				Set("cadence", string(line.Cadence)).
				Set("notes", line.Notes),
		})
		return err
	})
}

// AddRecurringExpense appends an expense line. A paying account must belong to the budget's entity.
func (s *BudgetService) AddRecurringExpense(ctx context.Context, userID, budgetID string, in domain.RecurringExpenseInput) (string, error) {
	if msg := in.Validate(); msg != "" {
		return "", apperr.Validation(msg)
	}
	var id string
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err := s.requireBudget(ctx, userID, budgetID)
		if err != nil {
			return err
		}
		if in.AccountID != "" {
			a, err := s.accounts.GetByID(ctx, in.AccountID)
			if err != nil {
				return fmt.Errorf("get account: %w", err)
			}
			if a == nil || a.EntityID != b.EntityID {
				return apperr.Validation("selected account is not available for this entity")
			}
		}
		now := s.now()
		line := &domain.RecurringExpense{
			ID:              uuid.NewString(),
			BudgetID:        b.ID,
			EntityID:        b.EntityID,
			AccountID:       in.AccountID,
			Name:            in.Name,
			AmountCents:     in.AmountCents,
			Cadence:         in.Cadence,
			Category:        in.Category,
			Notes:           in.Notes,
			CreatedByUserID: userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.budgets.CreateRecurringExpense(ctx, line); err != nil {
			return fmt.Errorf("create recurring expense: %w", err)
		}
		if err := s.budgets.TouchBudget(ctx, b.ID, userID, now); err != nil {
			return fmt.Errorf("touch budget: %w", err)
		}
		id = line.ID
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    b.EntityID,
			Action:      auditdomain.ActionBudgetRecurringExpenseAdded,
			Target:      line.ID,
			Metadata:    auditdomain.NewMetadata().Set("budgetId", b.ID).Set("recurringExpenseId", line.ID),
		})
		return err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// RemoveRecurringExpense deletes an expense line. The audit event keeps its last values.
func (s *BudgetService) RemoveRecurringExpense(ctx context.Context, userID, recurringExpenseID string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		line, err := s.budgets.GetRecurringExpense(ctx, recurringExpenseID)
		if err != nil {
			return fmt.Errorf("get recurring expense: %w", err)
		}
		if line == nil {
			return apperr.NotFound("recurring expense not found")
		}
		if _, err := rbac.RequireMembership(ctx, s.memberships, userID, line.EntityID); err != nil {
			return err
		}
		if err := s.budgets.DeleteRecurringExpense(ctx, line.ID); err != nil {
			return fmt.Errorf("delete recurring expense: %w", err)
		}
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    line.EntityID,
			Action:      auditdomain.ActionBudgetRecurringExpenseRemoved,
			Target:      line.ID,
			Metadata: auditdomain.NewMetadata().
				Set("budgetId", line.BudgetID).
				Set("recurringExpenseId", line.ID).
				Set("accountId", line.AccountID).
				Set("name", line.Name).
				SetInt("amountCents", line.AmountCents).
				Set("cadence", string(line.Cadence)).
				Set("category", line.Category).
				Set("notes", line.Notes),
		})
		return err
	})
}

func (s *BudgetService) requireBudget(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	b, err := s.budgets.GetBudget(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("get budget: %w", err)
	}
	if b == nil {
		return nil, apperr.NotFound("budget not found")
	}
	if _, err := rbac.RequireMembership(ctx, s.memberships, userID, b.EntityID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BudgetService) hydrate(ctx context.Context, b *domain.Budget) (*domain.Detail, error) {
	var (
		incomes  []*domain.IncomeSource
		expenses []*domain.RecurringExpense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = s.budgets.ListIncomeSources(gctx, b.ID)
		if err != nil {
			return fmt.Errorf("list income sources: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = s.budgets.ListRecurringExpenses(gctx, b.ID)
		if err != nil {
			return fmt.Errorf("list recurring expenses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	accounts := map[string]*domain.AccountRef{}
	for _, e := range expenses {
		if e.AccountID == "" {
			continue
		}
		if _, seen := accounts[e.AccountID]; seen {
			continue
		}
		a, err := s.accounts.GetByID(ctx, e.AccountID)
		if err != nil {
			return nil, fmt.Errorf("get account: %w", err)
		}
		if a == nil {
			accounts[e.AccountID] = nil
			continue
		}
		accounts[e.AccountID] = &domain.AccountRef{ID: a.ID, Name: a.Name, Source: string(a.Source)}
	}

	d := &domain.Detail{Budget: b, IncomeSources: incomes}
	for _, e := range expenses {
		d.RecurringExpenses = append(d.RecurringExpenses, domain.ExpenseLine{RecurringExpense: *e, PaidFrom: accounts[e.AccountID]})
	}
	return d, nil
}
