package handler

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/entity/domain"
	"github.com/grezxune/ours-ledger/internal/entity/service"
	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
)

type mockEntityService struct {
	lastDetails domain.Details
	lastType    domain.Type
	err         error
	list        []service.WithMembership
}

func (m *mockEntityService) Create(ctx context.Context, userID string, typ domain.Type, details domain.Details) (*domain.Entity, error) {
	m.lastType, m.lastDetails = typ, details
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Entity{ID: "entity-1", Type: typ, Name: details.Name, Address: *details.Address, Currency: details.Currency}, nil
}

func (m *mockEntityService) Update(ctx context.Context, userID, entityID string, details domain.Details) (*domain.Entity, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Entity{ID: entityID, Name: details.Name}, nil
}

func (m *mockEntityService) Get(ctx context.Context, userID, entityID string) (*domain.Entity, *mdomain.Membership, error) {
	if m.err != nil {
		return nil, nil, m.err
	}
	return &domain.Entity{ID: entityID}, &mdomain.Membership{Role: mdomain.RoleUser}, nil
}

func (m *mockEntityService) List(ctx context.Context, userID string) ([]service.WithMembership, error) {
	return m.list, m.err
}

func authed() context.Context {
	return interceptors.WithIdentity(context.Background(), "user-1", "alice@example.com")
}

func TestCreateEntity_PassesAddress(t *testing.T) {
	svc := &mockEntityService{}
	srv := NewServer(svc)
	resp, err := srv.CreateEntity(authed(), &ledgerv1.CreateEntityRequest{
		Type:     "household",
		Name:     "Home",
		Currency: "USD",
		Address:  &ledgerv1.Address{Formatted: "1 Main St", Line1: "1 Main St", CountryCode: "US"},
	})
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}
	if svc.lastType != domain.TypeHousehold {
		t.Errorf("type = %q, want household", svc.lastType)
	}
	if resp.Entity.Address.Line1 != "1 Main St" {
		t.Errorf("Address.Line1 = %q, want %q", resp.Entity.Address.Line1, "1 Main St")
	}
}

func TestCreateEntity_NilAddressStaysNil(t *testing.T) {
	svc := &mockEntityService{err: apperr.Validation("entity address is required")}
	_, err := NewServer(svc).CreateEntity(authed(), &ledgerv1.CreateEntityRequest{Type: "household", Name: "Home"})
	if svc.lastDetails.Address != nil {
		t.Error("nil wire address should reach the service as nil")
	}
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestEntityHandlers_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"forbidden", apperr.Forbidden("only owners can perform this action"), codes.PermissionDenied},
		{"not found", apperr.NotFound("entity not found"), codes.NotFound},
		{"storage", errors.New("connection refused"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(&mockEntityService{err: tt.err})
			_, err := srv.GetEntity(authed(), &ledgerv1.GetEntityRequest{EntityID: "entity-1"})
			if status.Code(err) != tt.want {
				t.Errorf("code = %v, want %v", status.Code(err), tt.want)
			}
		})
	}
}

func TestEntityHandlers_Unauthenticated(t *testing.T) {
	srv := NewServer(&mockEntityService{})
	_, err := srv.ListEntities(context.Background(), &ledgerv1.ListEntitiesRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("code = %v, want Unauthenticated", status.Code(err))
	}
}

func TestEntityHandlers_NilServiceUnimplemented(t *testing.T) {
	srv := NewServer(nil)
	_, err := srv.UpdateEntity(authed(), &ledgerv1.UpdateEntityRequest{})
	if status.Code(err) != codes.Unimplemented {
		t.Errorf("code = %v, want Unimplemented", status.Code(err))
	}
}

func TestListEntities_IncludesCallerRole(t *testing.T) {
	svc := &mockEntityService{list: []service.WithMembership{{
		Entity:     &domain.Entity{ID: "entity-1", Name: "Home"},
		Membership: &mdomain.Membership{ID: "m1", EntityID: "entity-1", Role: mdomain.RoleOwner},
	}}}
	resp, err := NewServer(svc).ListEntities(authed(), &ledgerv1.ListEntitiesRequest{})
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	if len(resp.Entities) != 1 {
		t.Fatalf("len = %d, want 1", len(resp.Entities))
	}
	got := resp.Entities[0].Membership
	if got.Role != "owner" || got.UserEmail != "alice@example.com" {
		t.Errorf("membership = %+v", got)
	}
}
