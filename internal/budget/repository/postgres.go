package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/budget/domain"
	"github.com/grezxune/ours-ledger/internal/db"
)

const (
	budgetColumns  = `id, entity_id, name, period, effective_date, status, created_by_user_id, updated_by_user_id, created_at, updated_at`
	incomeColumns  = `id, budget_id, entity_id, name, amount_cents, cadence, notes, created_by_user_id, created_at, updated_at`
	expenseColumns = `id, budget_id, entity_id, account_id, name, amount_cents, cadence, category, notes, created_by_user_id, created_at, updated_at`
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a budget repository that uses the given db for persistence.
func NewPostgresRepository(conn *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

func (r *PostgresRepository) GetBudget(ctx context.Context, id string) (*domain.Budget, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+budgetColumns+` FROM entity_budgets WHERE id = $1`, id)
	return noRowsNil(scanBudget(row))
}

func (r *PostgresRepository) CreateBudget(ctx context.Context, b *domain.Budget) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO entity_budgets (`+budgetColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID, b.EntityID, b.Name, string(b.Period), b.EffectiveDate, string(b.Status),
		b.CreatedByUserID, b.UpdatedByUserID, b.CreatedAt, b.UpdatedAt)
	return err
}

func (r *PostgresRepository) TouchBudget(ctx context.Context, id, userID string, at time.Time) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE entity_budgets SET updated_at = $2, updated_by_user_id = $3 WHERE id = $1`, id, at, userID)
	return err
}

func (r *PostgresRepository) ListBudgets(ctx context.Context, entityID string) ([]*domain.Budget, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+budgetColumns+` FROM entity_budgets WHERE entity_id = $1 ORDER BY updated_at DESC`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetIncomeSource(ctx context.Context, id string) (*domain.IncomeSource, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+incomeColumns+` FROM budget_income_sources WHERE id = $1`, id)
	return noRowsNil(scanIncome(row))
}

func (r *PostgresRepository) ListIncomeSources(ctx context.Context, budgetID string) ([]*domain.IncomeSource, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+incomeColumns+` FROM budget_income_sources WHERE budget_id = $1 ORDER BY created_at`, budgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.IncomeSource
	for rows.Next() {
		in, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CreateIncomeSource(ctx context.Context, in *domain.IncomeSource) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO budget_income_sources (`+incomeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		in.ID, in.BudgetID, in.EntityID, in.Name, in.AmountCents, string(in.Cadence), nullString(in.Notes),
		in.CreatedByUserID, in.CreatedAt, in.UpdatedAt)
	return err
}

func (r *PostgresRepository) UpdateIncomeSource(ctx context.Context, in *domain.IncomeSource) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE budget_income_sources SET name = $2, amount_cents = $3, cadence = $4, notes = $5, updated_at = $6 WHERE id = $1`,
		in.ID, in.Name, in.AmountCents, string(in.Cadence), nullString(in.Notes), in.UpdatedAt)
	return err
}

func (r *PostgresRepository) DeleteIncomeSource(ctx context.Context, id string) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx, `DELETE FROM budget_income_sources WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) GetRecurringExpense(ctx context.Context, id string) (*domain.RecurringExpense, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, `SELECT `+expenseColumns+` FROM budget_recurring_expenses WHERE id = $1`, id)
	return noRowsNil(scanExpense(row))
}

func (r *PostgresRepository) ListRecurringExpenses(ctx context.Context, budgetID string) ([]*domain.RecurringExpense, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM budget_recurring_expenses WHERE budget_id = $1 ORDER BY created_at`, budgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.RecurringExpense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CreateRecurringExpense(ctx context.Context, e *domain.RecurringExpense) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO budget_recurring_expenses (`+expenseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.BudgetID, e.EntityID, nullString(e.AccountID), e.Name, e.AmountCents, string(e.Cadence),
		nullString(e.Category), nullString(e.Notes), e.CreatedByUserID, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *PostgresRepository) DeleteRecurringExpense(ctx context.Context, id string) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx, `DELETE FROM budget_recurring_expenses WHERE id = $1`, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func noRowsNil[T any](v *T, err error) (*T, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return v, err
}

func scanBudget(s scanner) (*domain.Budget, error) {
	var b domain.Budget
	var period, status string
	if err := s.Scan(&b.ID, &b.EntityID, &b.Name, &period, &b.EffectiveDate, &status,
		&b.CreatedByUserID, &b.UpdatedByUserID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Period = domain.Period(period)
	b.Status = domain.Status(status)
	return &b, nil
}

func scanIncome(s scanner) (*domain.IncomeSource, error) {
	var in domain.IncomeSource
	var cadence string
	var notes sql.NullString
	if err := s.Scan(&in.ID, &in.BudgetID, &in.EntityID, &in.Name, &in.AmountCents, &cadence, &notes,
		&in.CreatedByUserID, &in.CreatedAt, &in.UpdatedAt); err != nil {
		return nil, err
	}
	in.Cadence = domain.Period(cadence)
	in.Notes = notes.String
	return &in, nil
}

func scanExpense(s scanner) (*domain.RecurringExpense, error) {
	var e domain.RecurringExpense
	var cadence string
	var accountID, category, notes sql.NullString
	if err := s.Scan(&e.ID, &e.BudgetID, &e.EntityID, &accountID, &e.Name, &e.AmountCents, &cadence,
		&category, &notes, &e.CreatedByUserID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Cadence = domain.Period(cadence)
	e.AccountID = accountID.String
	e.Category = category.String
	e.Notes = notes.String
	return &e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
