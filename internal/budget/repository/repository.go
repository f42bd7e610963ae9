package repository

import (
	"context"
	"time"

	"github.com/grezxune/ours-ledger/internal/budget/domain"
)

// Repository defines persistence for budgets and their line items. Getters return nil when the
// row does not exist.
type Repository interface {
	GetBudget(ctx context.Context, id string) (*domain.Budget, error)
	CreateBudget(ctx context.Context, b *domain.Budget) error
	// TouchBudget records that userID changed the budget's lines at the given time.
	TouchBudget(ctx context.Context, id, userID string, at time.Time) error
	// ListBudgets returns the entity's budgets, most recently updated first.
	ListBudgets(ctx context.Context, entityID string) ([]*domain.Budget, error)

	GetIncomeSource(ctx context.Context, id string) (*domain.IncomeSource, error)
	ListIncomeSources(ctx context.Context, budgetID string) ([]*domain.IncomeSource, error)
	CreateIncomeSource(ctx context.Context, in *domain.IncomeSource) error
	UpdateIncomeSource(ctx context.Context, in *domain.IncomeSource) error
	DeleteIncomeSource(ctx context.Context, id string) error

	GetRecurringExpense(ctx context.Context, id string) (*domain.RecurringExpense, error)
	ListRecurringExpenses(ctx context.Context, budgetID string) ([]*domain.RecurringExpense, error)
	CreateRecurringExpense(ctx context.Context, e *domain.RecurringExpense) error
	DeleteRecurringExpense(ctx context.Context, id string) error
}
