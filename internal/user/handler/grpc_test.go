package handler

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
	"github.com/grezxune/ours-ledger/internal/user/domain"
)

type mockUsers map[string]*domain.User

func (m mockUsers) RequireUserByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := m[id]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("authenticated user not found")
}

func TestWhoAmI(t *testing.T) {
	srv := NewServer(mockUsers{"user-1": {ID: "user-1", Email: "alice@example.com", Name: "Alice", PlatformRole: domain.PlatformRoleSuperAdmin}})
	resp, err := srv.WhoAmI(interceptors.WithIdentity(context.Background(), "user-1", "alice@example.com"), &ledgerv1.WhoAmIRequest{})
	if err != nil {
		t.Fatalf("WhoAmI: %v", err)
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", resp.User.Email, "alice@example.com")
	}
	if resp.User.PlatformRole != "super_admin" {
		t.Errorf("PlatformRole = %q, want super_admin", resp.User.PlatformRole)
	}
}

func TestWhoAmI_Errors(t *testing.T) {
	srv := NewServer(mockUsers{})
	if _, err := srv.WhoAmI(context.Background(), &ledgerv1.WhoAmIRequest{}); status.Code(err) != codes.Unauthenticated {
		t.Errorf("no identity code = %v, want Unauthenticated", status.Code(err))
	}
	ctx := interceptors.WithIdentity(context.Background(), "ghost", "ghost@example.com")
	if _, err := srv.WhoAmI(ctx, &ledgerv1.WhoAmIRequest{}); status.Code(err) != codes.NotFound {
		t.Errorf("missing user code = %v, want NotFound", status.Code(err))
	}
	if _, err := NewServer(nil).WhoAmI(ctx, &ledgerv1.WhoAmIRequest{}); status.Code(err) != codes.Unimplemented {
		t.Errorf("nil users code = %v, want Unimplemented", status.Code(err))
	}
}
