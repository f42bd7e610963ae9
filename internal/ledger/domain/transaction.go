// Package domain holds ledger transaction types.
package domain

import (
	"strings"
	"time"
)

type Kind string

const (
	KindOneOff    Kind = "one_off"
	KindRecurring Kind = "recurring"
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPosted  Status = "posted"
	StatusVoided  Status = "voided"
)

// SourceManual is the only source this service writes; imported rows carry "plaid".
const SourceManual = "manual"

// Recurrence describes how a recurring transaction repeats. Dates are calendar dates (YYYY-MM-DD).
type Recurrence struct {
	Cadence   string `json:"cadence"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	NextRunAt string `json:"nextRunAt,omitempty"`
}

// Transaction is one ledger line. AmountCents is always positive; Type carries the direction.
type Transaction struct {
	ID              string
	EntityID        string
	Source          string
	Kind            Kind
	Type            Type
	Status          Status
	AmountCents     int64
	Date            string
	Category        string
	Notes           string
	Payee           string
	Recurrence      *Recurrence
	CreatedByUserID string
	CreatedByEmail  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Input is the caller-supplied part of a new transaction.
type Input struct {
	Kind        Kind
	Type        Type
	Status      Status
	AmountCents int64
	Date        string
	Category    string
	Payee       string
	Notes       string
	Recurrence  *Recurrence
}

// Normalize trims text fields and defaults an empty status to pending.
func (in Input) Normalize() Input {
	out := in
	out.Date = strings.TrimSpace(in.Date)
	out.Category = strings.TrimSpace(in.Category)
	out.Payee = strings.TrimSpace(in.Payee)
	out.Notes = strings.TrimSpace(in.Notes)
	if out.Status == "" {
		out.Status = StatusPending
	}
	return out
}

// Validate returns a message describing the first invalid field, or "".
func (in Input) Validate() string {
	switch {
	case in.AmountCents <= 0:
		return "amount must be greater than zero"
	case in.Kind != KindOneOff && in.Kind != KindRecurring:
		return "transaction kind must be one_off or recurring"
	case in.Type != TypeIncome && in.Type != TypeExpense:
		return "transaction type must be income or expense"
	case in.Status != StatusPending && in.Status != StatusPosted && in.Status != StatusVoided:
		return "transaction status must be pending, posted or voided"
	case in.Date == "":
		return "transaction date is required"
	case in.Category == "":
		return "transaction category is required"
	case in.Kind == KindRecurring && (in.Recurrence == nil || in.Recurrence.Cadence == "" || in.Recurrence.StartDate == ""):
		return "recurring transactions need a cadence and start date"
	}
	return ""
}
