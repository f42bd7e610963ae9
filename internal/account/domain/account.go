package domain

import (
	"strings"
	"time"
)

// Source records where an account's data comes from.
type Source string

const (
	SourceManual Source = "manual"
	SourcePlaid  Source = "plaid"
)

func (s Source) Valid() bool {
	return s == SourceManual || s == SourcePlaid
}

// Account is a bank or card account an entity attributes budget lines to.
type Account struct {
	ID              string
	EntityID        string
	Name            string
	Currency        string
	Source          Source
	InstitutionName string
	PlaidAccountID  string
	CreatedByUserID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Input is the caller-supplied part of a new account.
type Input struct {
	Name            string
	Currency        string
	Source          Source
	InstitutionName string
	PlaidAccountID  string
}

// Normalize trims every field and upper-cases the currency.
func (in Input) Normalize() Input {
	return Input{
		Name:            strings.TrimSpace(in.Name),
		Currency:        strings.ToUpper(strings.TrimSpace(in.Currency)),
		Source:          in.Source,
		InstitutionName: strings.TrimSpace(in.InstitutionName),
		PlaidAccountID:  strings.TrimSpace(in.PlaidAccountID),
	}
}

// Validate returns a message describing the first invalid field, or "".
func (in Input) Validate() string {
	switch {
	case in.Name == "":
		return "account name is required"
	case in.Currency == "":
		return "account currency is required"
	case !in.Source.Valid():
		return "account source must be manual or plaid"
	}
	return ""
}
