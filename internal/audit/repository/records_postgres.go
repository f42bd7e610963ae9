package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/db"
)

// PostgresRecordStore reads referenced records as JSON objects keyed by column name.
type PostgresRecordStore struct {
	db *sql.DB
}

// NewPostgresRecordStore returns a RecordStore over conn.
func NewPostgresRecordStore(conn *sql.DB) *PostgresRecordStore {
	return &PostgresRecordStore{db: conn}
}

// SQLTable returns the storage table backing t.
func SQLTable(t domain.Table) (string, error) {
	switch t {
	case domain.TableEntities:
		return "entities", nil
	case domain.TableEntityAccounts:
		return "entity_accounts", nil
	case domain.TableTransactions:
		return "transactions", nil
	case domain.TableEntityBudgets:
		return "entity_budgets", nil
	case domain.TableBudgetIncomeSources:
		return "budget_income_sources", nil
	case domain.TableBudgetRecurringExpenses:
		return "budget_recurring_expenses", nil
	case domain.TableInvitations:
		return "invitations", nil
	case domain.TableDocuments:
		return "documents", nil
	case domain.TableStorageConfigurations:
		return "storage_configurations", nil
	}
	return "", fmt.Errorf("audit: no storage table for %v", t)
}

func (s *PostgresRecordStore) LoadRecord(ctx context.Context, table domain.Table, id string) (map[string]any, error) {
	name, err := SQLTable(table)
	if err != nil {
		return nil, err
	}
	var raw []byte
	err = db.Conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT to_jsonb(t) FROM `+name+` t WHERE t.id = $1`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s %s: %w", table, id, err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", table, id, err)
	}
	return out, nil
}
