package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Table identifies a record type an audit event can point at.
type Table int

const (
	TableEntities Table = iota + 1
	TableEntityAccounts
	TableTransactions
	TableEntityBudgets
	TableBudgetIncomeSources
	TableBudgetRecurringExpenses
	TableInvitations
	TableDocuments
	TableStorageConfigurations
)

var tableNames = map[Table]string{
	TableEntities:                "entities",
	TableEntityAccounts:          "entityAccounts",
	TableTransactions:            "transactions",
	TableEntityBudgets:           "entityBudgets",
	TableBudgetIncomeSources:     "budgetIncomeSources",
	TableBudgetRecurringExpenses: "budgetRecurringExpenses",
	TableInvitations:             "invitations",
	TableDocuments:               "documents",
	TableStorageConfigurations:   "storageConfigurations",
}

// AllTables lists every Table in declaration order.
func AllTables() []Table {
	out := make([]Table, 0, len(tableNames))
	for t := TableEntities; t <= TableStorageConfigurations; t++ {
		out = append(out, t)
	}
	return out
}

func (t Table) String() string {
	if name, ok := tableNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Table(%d)", int(t))
}

// Valid reports whether t is one of the declared tables.
func (t Table) Valid() bool {
	_, ok := tableNames[t]
	return ok
}

// MarshalText encodes the table by name.
func (t Table) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("audit: unknown table %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a table name.
func (t *Table) UnmarshalText(b []byte) error {
	for tbl, name := range tableNames {
		if name == string(b) {
			*t = tbl
			return nil
		}
	}
	return fmt.Errorf("audit: unknown table %q", string(b))
}

// Action is a stable dotted audit action code.
type Action string

// Action codes written by this service.
const (
	ActionEntityCreated                 Action = "entity.created"
	ActionEntityUpdated                 Action = "entity.updated"
	ActionAccountCreated                Action = "account.created"
	ActionTransactionCreated            Action = "transaction.created"
	ActionBudgetCreated                 Action = "budget.created"
	ActionBudgetIncomeSourceAdded       Action = "budget.income_source_added"
	ActionBudgetIncomeSourceUpdated     Action = "budget.income_source_updated"
	ActionBudgetIncomeSourceRemoved     Action = "budget.income_source_removed"
	ActionBudgetRecurringExpenseAdded   Action = "budget.recurring_expense_added"
	ActionBudgetRecurringExpenseRemoved Action = "budget.recurring_expense_removed"
	ActionInvitationCreated             Action = "invitation.created"
	ActionInvitationAccepted            Action = "invitation.accepted"
	ActionInvitationRevoked             Action = "invitation.revoked"
	ActionDocumentUploaded              Action = "document.uploaded"
	ActionStorageConfigUpdated          Action = "storage.config.updated"
)

// KnownActions lists every action code declared above.
func KnownActions() []Action {
	return []Action{
		ActionEntityCreated,
		ActionEntityUpdated,
		ActionAccountCreated,
		ActionTransactionCreated,
		ActionBudgetCreated,
		ActionBudgetIncomeSourceAdded,
		ActionBudgetIncomeSourceUpdated,
		ActionBudgetIncomeSourceRemoved,
		ActionBudgetRecurringExpenseAdded,
		ActionBudgetRecurringExpenseRemoved,
		ActionInvitationCreated,
		ActionInvitationAccepted,
		ActionInvitationRevoked,
		ActionDocumentUploaded,
		ActionStorageConfigUpdated,
	}
}

// TargetTable returns the table event targets live in. Known codes are matched explicitly;
// codes recorded through the manual audit endpoint fall back to prefix routing.
func (a Action) TargetTable() (Table, bool) {
	switch a {
	case ActionEntityCreated, ActionEntityUpdated:
		return TableEntities, true
	case ActionAccountCreated:
		return TableEntityAccounts, true
	case ActionTransactionCreated:
		return TableTransactions, true
	case ActionBudgetCreated:
		return TableEntityBudgets, true
	case ActionBudgetIncomeSourceAdded, ActionBudgetIncomeSourceUpdated, ActionBudgetIncomeSourceRemoved:
		return TableBudgetIncomeSources, true
	case ActionBudgetRecurringExpenseAdded, ActionBudgetRecurringExpenseRemoved:
		return TableBudgetRecurringExpenses, true
	case ActionInvitationCreated, ActionInvitationAccepted, ActionInvitationRevoked:
		return TableInvitations, true
	case ActionDocumentUploaded:
		return TableDocuments, true
	case ActionStorageConfigUpdated:
		return TableStorageConfigurations, true
	}
	return targetTableByPrefix(string(a))
}

func targetTableByPrefix(action string) (Table, bool) {
	switch {
	case strings.HasPrefix(action, "entity."):
		return TableEntities, true
	case strings.HasPrefix(action, "account."):
		return TableEntityAccounts, true
	case strings.HasPrefix(action, "transaction."):
		return TableTransactions, true
	case action == string(ActionBudgetCreated):
		return TableEntityBudgets, true
	case strings.HasPrefix(action, "budget.income_source_"):
		return TableBudgetIncomeSources, true
	case strings.HasPrefix(action, "budget.recurring_expense_"):
		return TableBudgetRecurringExpenses, true
	case strings.HasPrefix(action, "invitation."):
		return TableInvitations, true
	case strings.HasPrefix(action, "document."):
		return TableDocuments, true
	case strings.HasPrefix(action, "storage.config."):
		return TableStorageConfigurations, true
	}
	return 0, false
}

// Reference binds a metadata key or record column to the table its value points into.
type Reference struct {
	Field string
	Table Table
}

// MetadataReferences are the metadata keys that carry record ids, in resolution order.
var MetadataReferences = []Reference{
	{Field: "entityId", Table: TableEntities},
	{Field: "budgetId", Table: TableEntityBudgets},
	{Field: "accountId", Table: TableEntityAccounts},
	{Field: "incomeSourceId", Table: TableBudgetIncomeSources},
	{Field: "recurringExpenseId", Table: TableBudgetRecurringExpenses},
	{Field: "transactionId", Table: TableTransactions},
	{Field: "sourceTransactionId", Table: TableTransactions},
	{Field: "invitationId", Table: TableInvitations},
	{Field: "documentId", Table: TableDocuments},
}

// RecordReferences are the columns of a target record that point at other records.
var RecordReferences = []Reference{
	{Field: "entity_id", Table: TableEntities},
	{Field: "budget_id", Table: TableEntityBudgets},
	{Field: "account_id", Table: TableEntityAccounts},
	{Field: "source_transaction_id", Table: TableTransactions},
}

// ActionLabel renders an action code for display: segments title-cased and joined with " / ",
// so "budget.income_source_added" becomes "Budget / Income Source Added".
func ActionLabel(a Action) string {
	parts := strings.Split(string(a), ".")
	for i, part := range parts {
		words := strings.Split(part, "_")
		for j, w := range words {
			if w != "" {
				r, size := utf8.DecodeRuneInString(w)
				words[j] = string(unicode.ToUpper(r)) + w[size:]
			}
		}
		parts[i] = strings.Join(words, " ")
	}
	return strings.Join(parts, " / ")
}
