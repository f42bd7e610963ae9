package domain

import (
	"strings"
	"time"
)

// Period is both a budget's planning period and a line item's cadence.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) Valid() bool {
	return p == PeriodWeekly || p == PeriodMonthly || p == PeriodYearly
}

type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Budget is a named plan of expected income and recurring spend for an entity.
type Budget struct {
	ID              string
	EntityID        string
	Name            string
	Period          Period
	EffectiveDate   string
	Status          Status
	CreatedByUserID string
	UpdatedByUserID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IncomeSource is a planned income line on a budget.
type IncomeSource struct {
	ID              string
	BudgetID        string
	EntityID        string
	Name            string
	AmountCents     int64
	Cadence         Period
	Notes           string
	CreatedByUserID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecurringExpense is a planned expense line, optionally paid from one of the entity's accounts.
type RecurringExpense struct {
	ID              string
	BudgetID        string
	EntityID        string
	AccountID       string
	Name            string
	AmountCents     int64
	Cadence         Period
	Category        string
	Notes           string
	CreatedByUserID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AccountRef names the account an expense is paid from.
type AccountRef struct {
	ID     string
	Name   string
	Source string
}

// ExpenseLine is a recurring expense with its paying account resolved.
type ExpenseLine struct {
	RecurringExpense
	PaidFrom *AccountRef
}

// Detail is a budget with its line items.
type Detail struct {
	Budget            *Budget
	IncomeSources     []*IncomeSource
	RecurringExpenses []ExpenseLine
}

// BudgetInput creates a budget.
type BudgetInput struct {
	Name          string
	Period        Period
	EffectiveDate string
}

// IncomeSourceInput creates or replaces an income line.
type IncomeSourceInput struct {
	Name        string
	AmountCents int64
	Cadence     Period
	Notes       string
}

// RecurringExpenseInput creates an expense line.
type RecurringExpenseInput struct {
	Name        string
	AmountCents int64
	Cadence     Period
	AccountID   string
	Category    string
	Notes       string
}

// MsgAmountNotPositive is returned when a line amount is zero or negative.
const MsgAmountNotPositive = "amount must be greater than zero"

// Validate checks a budget input after trimming its name.
func (in *BudgetInput) Validate() string {
	in.Name = strings.TrimSpace(in.Name)
	in.EffectiveDate = strings.TrimSpace(in.EffectiveDate)
	switch {
	case in.Name == "":
		return "budget name is required"
	case !in.Period.Valid():
		return "budget period must be weekly, monthly or yearly"
	case in.EffectiveDate == "":
		return "budget effective date is required"
	}
	return ""
}

// Validate checks an income input after trimming it. The amount is checked first.
func (in *IncomeSourceInput) Validate() string {
	if in.AmountCents <= 0 {
		return MsgAmountNotPositive
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Notes = strings.TrimSpace(in.Notes)
	switch {
	case in.Name == "":
		return "income source name is required"
	case !in.Cadence.Valid():
		return "cadence must be weekly, monthly or yearly"
	}
	return ""
}

// Validate checks an expense input after trimming it. The amount is checked first.
func (in *RecurringExpenseInput) Validate() string {
	if in.AmountCents <= 0 {
		return MsgAmountNotPositive
	}
	in.Name = strings.TrimSpace(in.Name)
	in.AccountID = strings.TrimSpace(in.AccountID)
	in.Category = strings.TrimSpace(in.Category)
	in.Notes = strings.TrimSpace(in.Notes)
	switch {
	case in.Name == "":
		return "recurring expense name is required"
	case !in.Cadence.Valid():
		return "cadence must be weekly, monthly or yearly"
	}
	return ""
}
