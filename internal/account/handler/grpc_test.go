package handler

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/account/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
)

type mockService struct {
	lastInput domain.Input
	err       error
}

func (m *mockService) Create(ctx context.Context, userID, entityID string, in domain.Input) (*domain.Account, error) {
	m.lastInput = in
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Account{ID: "acct-1", EntityID: entityID, Name: in.Name, Source: in.Source}, nil
}

func (m *mockService) List(ctx context.Context, userID, entityID string) ([]*domain.Account, error) {
	return []*domain.Account{{ID: "acct-1"}}, m.err
}

func TestCreateAccount(t *testing.T) {
	svc := &mockService{}
	ctx := interceptors.WithIdentity(context.Background(), "user-1", "a@example.com")
	resp, err := NewServer(svc).CreateAccount(ctx, &ledgerv1.CreateAccountRequest{EntityID: "entity-1", Name: "Checking", Currency: "USD", Source: "manual"})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if svc.lastInput.Source != domain.SourceManual {
		t.Errorf("source = %q, want manual", svc.lastInput.Source)
	}
	if resp.Account.ID != "acct-1" || resp.Account.Source != "manual" {
		t.Errorf("account = %+v", resp.Account)
	}
}

func TestListAccounts_Forbidden(t *testing.T) {
	ctx := interceptors.WithIdentity(context.Background(), "user-1", "a@example.com")
	_, err := NewServer(&mockService{err: apperr.Forbidden("you do not have access to this entity")}).ListAccounts(ctx, &ledgerv1.ListAccountsRequest{EntityID: "entity-1"})
	if status.Code(err) != codes.PermissionDenied {
		t.Errorf("code = %v, want PermissionDenied", status.Code(err))
	}
}
