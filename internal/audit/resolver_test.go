package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/grezxune/ours-ledger/internal/audit/domain"
)

const (
	houseID   = "0190a5b0-0000-7000-8000-000000000001"
	budgetID  = "0190a5b0-0000-7000-8000-000000000002"
	expenseID = "0190a5b0-0000-7000-8000-000000000003"
	acctID    = "0190a5b0-0000-7000-8000-000000000004"
	incomeID  = "0190a5b0-0000-7000-8000-000000000005"
)

func TestResolve_DeletedReferencesBecomeTombstones(t *testing.T) {
	records := newMockRecords()
	records.put(domain.TableEntities, houseID, map[string]any{"id": houseID, "name": "Maple House", "type": "household", "currency": "USD"})
	records.put(domain.TableEntityBudgets, budgetID, map[string]any{"id": budgetID, "entity_id": houseID})

	e := &domain.Event{
		ID:       "ev-1",
		EntityID: houseID,
		Action:   domain.ActionBudgetRecurringExpenseRemoved,
		Target:   expenseID,
		Metadata: domain.NewMetadata().
			Set("budgetId", budgetID).
			Set("recurringExpenseId", expenseID).
			Set("accountId", acctID).
			Set("name", "Rent"),
	}

	d, err := NewResolver(records).Resolve(context.Background(), e)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.TargetType != "budgetRecurringExpenses" {
		t.Errorf("TargetType = %q", d.TargetType)
	}
	if d.Target == nil || d.Target.Exists || d.Target.Data != nil || d.Target.ID != expenseID {
		t.Errorf("Target = %+v, want tombstone for %s", d.Target, expenseID)
	}

	want := []struct {
		table  domain.Table
		id     string
		exists bool
	}{
		{domain.TableEntityBudgets, budgetID, true},
		{domain.TableEntityAccounts, acctID, false},
	}
	if len(d.Related) != len(want) {
		t.Fatalf("Related = %d snapshots, want %d: %+v", len(d.Related), len(want), d.Related)
	}
	for i, w := range want {
		got := d.Related[i]
		if got.Table != w.table || got.ID != w.id || got.Exists != w.exists {
			t.Errorf("Related[%d] = {%v %s %v}, want {%v %s %v}", i, got.Table, got.ID, got.Exists, w.table, w.id, w.exists)
		}
		if !got.Exists && got.Data != nil {
			t.Errorf("Related[%d] tombstone carries data", i)
		}
	}

	if d.Entity == nil || d.Entity.Name != "Maple House" || d.Entity.Currency != "USD" || d.Entity.Type != "household" {
		t.Errorf("Entity = %+v, want Maple House summary", d.Entity)
	}
}

func TestResolve_TargetForeignKeysAddReferences(t *testing.T) {
	records := newMockRecords()
	records.put(domain.TableBudgetIncomeSources, incomeID, map[string]any{
		"id": incomeID, "budget_id": budgetID, "entity_id": houseID,
	})
	records.put(domain.TableEntityBudgets, budgetID, map[string]any{"id": budgetID})

	e := &domain.Event{
		Action:   domain.ActionBudgetIncomeSourceAdded,
		Target:   incomeID,
		Metadata: domain.NewMetadata().Set("budgetId", budgetID).Set("incomeSourceId", incomeID),
	}
	d, err := NewResolver(records).Resolve(context.Background(), e)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.Target == nil || !d.Target.Exists {
		t.Fatalf("Target = %+v, want existing income source", d.Target)
	}
	// budgetId from metadata first, then entity_id from the record; the target itself is dropped
	// and budget_id on the record is a duplicate.
	if len(d.Related) != 2 {
		t.Fatalf("Related = %+v, want budget and entity", d.Related)
	}
	if d.Related[0].Table != domain.TableEntityBudgets || d.Related[1].Table != domain.TableEntities {
		t.Errorf("Related order = %v, %v", d.Related[0].Table, d.Related[1].Table)
	}
	if d.Entity != nil {
		t.Error("platform-scoped event should have no entity summary")
	}
}

func TestResolve_SkipsEmptyAndMalformedIDs(t *testing.T) {
	records := newMockRecords()
	e := &domain.Event{
		Action: "custom.thing",
		Target: "whatever",
		Metadata: domain.NewMetadata().
			Set("accountId", "").
			Set("transactionId", "not-a-uuid").
			Set("documentId", acctID),
	}
	d, err := NewResolver(records).Resolve(context.Background(), e)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.TargetType != "" || d.Target != nil {
		t.Errorf("unmapped action produced target %q %+v", d.TargetType, d.Target)
	}
	if len(d.Related) != 1 || d.Related[0].Table != domain.TableDocuments {
		t.Errorf("Related = %+v, want only the document reference", d.Related)
	}
}

func TestResolve_MalformedTargetHasTypeButNoSnapshot(t *testing.T) {
	d, err := NewResolver(newMockRecords()).Resolve(context.Background(), &domain.Event{
		Action: domain.ActionAccountCreated,
		Target: "legacy-id",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.TargetType != "entityAccounts" || d.Target != nil {
		t.Errorf("TargetType/Target = %q/%+v, want entityAccounts/nil", d.TargetType, d.Target)
	}
	if d.Related == nil {
		t.Error("Related should be an empty slice, not nil")
	}
}

func TestResolve_StorageErrorPropagates(t *testing.T) {
	records := newMockRecords()
	records.err = errBoom
	_, err := NewResolver(records).Resolve(context.Background(), &domain.Event{
		Action: domain.ActionEntityCreated,
		Target: houseID,
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("err = %v, want storage error", err)
	}
}
