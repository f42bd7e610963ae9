package service

import (
	"context"
	"errors"
	"testing"

	"github.com/grezxune/ours-ledger/internal/audit"
	auditdomain "github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/ledger/domain"
	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockTransactions struct {
	created []*domain.Transaction
	listed  string
}

func (m *mockTransactions) Create(ctx context.Context, t *domain.Transaction) error {
	m.created = append(m.created, t)
	return nil
}

func (m *mockTransactions) ListByEntity(ctx context.Context, entityID string) ([]*domain.Transaction, error) {
	m.listed = entityID
	return m.created, nil
}

// mockMemberships is keyed "user:entity".
type mockMemberships map[string]*mdomain.Membership

func (m mockMemberships) GetByUserAndEntity(ctx context.Context, userID, entityID string) (*mdomain.Membership, error) {
	return m[userID+":"+entityID], nil
}

type mockUsers map[string]*userdomain.User

func (m mockUsers) RequireUserByID(ctx context.Context, id string) (*userdomain.User, error) {
	if u := m[id]; u != nil {
		return u, nil
	}
	return nil, apperr.NotFound("user not found")
}

type mockRecorder struct {
	inputs []audit.Input
	err    error
}

func (m *mockRecorder) Record(ctx context.Context, in audit.Input) (*auditdomain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.inputs = append(m.inputs, in)
	return &auditdomain.Event{Action: in.Action}, nil
}

func newService() (*LedgerService, *mockTransactions, *mockRecorder) {
	txs := &mockTransactions{}
	rec := &mockRecorder{}
	memberships := mockMemberships{
		"member-1:entity-1": {UserID: "member-1", EntityID: "entity-1", Role: mdomain.RoleUser},
	}
	users := mockUsers{"member-1": {ID: "member-1", Email: "member@example.com"}}
	return NewLedgerService(inlineTx{}, txs, memberships, users, rec), txs, rec
}

func groceries() domain.Input {
	return domain.Input{Kind: domain.KindOneOff, Type: domain.TypeExpense, AmountCents: 4599, Date: "2026-03-02", Category: "groceries", Payee: "Market"}
}

func TestCreate_RecordsTransactionAndAudit(t *testing.T) {
	svc, txs, rec := newService()
	got, err := svc.Create(context.Background(), "member-1", "entity-1", groceries())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.Status != domain.StatusPending || got.Source != domain.SourceManual {
		t.Errorf("status/source = %q/%q, want pending/manual", got.Status, got.Source)
	}
	if got.CreatedByEmail != "member@example.com" {
		t.Errorf("CreatedByEmail = %q, want %q", got.CreatedByEmail, "member@example.com")
	}
	if len(txs.created) != 1 {
		t.Fatalf("created %d transactions, want 1", len(txs.created))
	}
	if len(rec.inputs) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.inputs))
	}
	in := rec.inputs[0]
	if in.Action != auditdomain.ActionTransactionCreated || in.Target != got.ID {
		t.Errorf("audit = %q -> %q", in.Action, in.Target)
	}
	if v := in.Metadata.Get("amountCents"); v != "4599" {
		t.Errorf("amountCents = %q, want %q", v, "4599")
	}
	if v := in.Metadata.Get("transactionId"); v != got.ID {
		t.Errorf("transactionId = %q, want %q", v, got.ID)
	}
}

func TestCreate_RejectsBeforeAnyWrite(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		in     domain.Input
		check  func(error) bool
	}{
		{"zero amount", "member-1", func() domain.Input { in := groceries(); in.AmountCents = 0; return in }(), apperr.IsValidation},
		{"non-member", "stranger", groceries(), apperr.IsForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, txs, rec := newService()
			_, err := svc.Create(context.Background(), tt.userID, "entity-1", tt.in)
			if !tt.check(err) {
				t.Fatalf("err = %v", err)
			}
			if len(txs.created) != 0 || len(rec.inputs) != 0 {
				t.Errorf("wrote %d transactions and %d events, want none", len(txs.created), len(rec.inputs))
			}
		})
	}
}

func TestCreate_AuditFailureSurfaces(t *testing.T) {
	svc, _, rec := newService()
	rec.err = errors.New("audit store down")
	if _, err := svc.Create(context.Background(), "member-1", "entity-1", groceries()); err == nil {
		t.Fatal("expected error when audit append fails")
	}
}

func TestList_RequiresMembership(t *testing.T) {
	svc, txs, _ := newService()
	if _, err := svc.List(context.Background(), "stranger", "entity-1"); !apperr.IsForbidden(err) {
		t.Fatalf("err = %v, want Forbidden", err)
	}
	if txs.listed != "" {
		t.Error("repository should not be read for a non-member")
	}
	if _, err := svc.List(context.Background(), "member-1", "entity-1"); err != nil {
		t.Fatalf("List: %v", err)
	}
}
