package service

import (
	"context"
	"errors"
	"testing"

	"github.com/grezxune/ours-ledger/internal/audit"
	auditdomain "github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/entity/domain"
	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
)

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockEntityRepo struct {
	byID    map[string]*domain.Entity
	updated []*domain.Entity
}

func (m *mockEntityRepo) GetByID(ctx context.Context, id string) (*domain.Entity, error) {
	if e, ok := m.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (m *mockEntityRepo) Create(ctx context.Context, e *domain.Entity) error {
	m.byID[e.ID] = e
	return nil
}

func (m *mockEntityRepo) Update(ctx context.Context, e *domain.Entity) error {
	m.updated = append(m.updated, e)
	m.byID[e.ID] = e
	return nil
}

// mockMemberships is keyed "user:entity".
type mockMemberships struct {
	byKey   map[string]*mdomain.Membership
	created []*mdomain.Membership
}

func (m *mockMemberships) GetByUserAndEntity(ctx context.Context, userID, entityID string) (*mdomain.Membership, error) {
	return m.byKey[userID+":"+entityID], nil
}

func (m *mockMemberships) ListByUser(ctx context.Context, userID string) ([]*mdomain.Membership, error) {
	var out []*mdomain.Membership
	for _, ms := range m.created {
		if ms.UserID == userID {
			out = append(out, ms)
		}
	}
	return out, nil
}

func (m *mockMemberships) Create(ctx context.Context, ms *mdomain.Membership) error {
	m.byKey[ms.UserID+":"+ms.EntityID] = ms
	m.created = append(m.created, ms)
	return nil
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
	return &auditdomain.Event{ID: "evt", Action: in.Action}, nil
}

func newService() (*EntityService, *mockEntityRepo, *mockMemberships, *mockRecorder) {
	entities := &mockEntityRepo{byID: map[string]*domain.Entity{}}
	memberships := &mockMemberships{byKey: map[string]*mdomain.Membership{}}
	rec := &mockRecorder{}
	return NewEntityService(inlineTx{}, entities, memberships, rec), entities, memberships, rec
}

func homeDetails() domain.Details {
	return domain.Details{
		Name:     " Home ",
		Currency: "usd",
		Address:  &domain.Address{Formatted: "1 Main St", Line1: "1 Main St", CountryCode: "us"},
	}
}

func TestCreate_OwnerMembershipAndAudit(t *testing.T) {
	svc, _, memberships, rec := newService()
	e, err := svc.Create(context.Background(), "user-1", domain.TypeHousehold, homeDetails())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.Name != "Home" || e.Currency != "USD" {
		t.Errorf("entity = %q/%q, want Home/USD", e.Name, e.Currency)
	}
	m := memberships.byKey["user-1:"+e.ID]
	if m == nil || m.Role != mdomain.RoleOwner {
		t.Fatalf("membership = %+v, want owner", m)
	}
	if len(rec.inputs) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.inputs))
	}
	in := rec.inputs[0]
	if in.Action != auditdomain.ActionEntityCreated || in.Target != e.ID || in.EntityID != e.ID {
		t.Errorf("input = %+v", in)
	}
	if got := in.Metadata.Get("type"); got != "household" {
		t.Errorf("metadata type = %q, want household", got)
	}
	if got := in.Metadata.Get("address"); got != "1 Main St" {
		t.Errorf("metadata address = %q, want %q", got, "1 Main St")
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, entities, _, rec := newService()
	_, err := svc.Create(context.Background(), "user-1", "castle", homeDetails())
	if !apperr.IsValidation(err) {
		t.Errorf("bad type err = %v, want Validation", err)
	}
	d := homeDetails()
	d.Address = nil
	_, err = svc.Create(context.Background(), "user-1", domain.TypeBusiness, d)
	if !apperr.IsValidation(err) {
		t.Errorf("missing address err = %v, want Validation", err)
	}
	if len(entities.byID) != 0 || len(rec.inputs) != 0 {
		t.Error("validation failure must not write")
	}
}

func TestCreate_AuditFailureFailsOperation(t *testing.T) {
	svc, _, _, rec := newService()
	rec.err = errors.New("insert audit: disk full")
	if _, err := svc.Create(context.Background(), "user-1", domain.TypeHousehold, homeDetails()); err == nil {
		t.Fatal("expected audit failure to surface")
	}
}

func TestUpdate_RoleMatrix(t *testing.T) {
	tests := []struct {
		name     string
		role     mdomain.Role
		member   bool
		wantKind apperr.Kind
	}{
		{"owner", mdomain.RoleOwner, true, 0},
		{"user role", mdomain.RoleUser, true, apperr.KindForbidden},
		{"non-member", "", false, apperr.KindForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, entities, memberships, rec := newService()
			entities.byID["entity-1"] = &domain.Entity{ID: "entity-1", Name: "Old", Type: domain.TypeHousehold}
			if tt.member {
				memberships.byKey["user-1:entity-1"] = &mdomain.Membership{UserID: "user-1", EntityID: "entity-1", Role: tt.role}
			}
			e, err := svc.Update(context.Background(), "user-1", "entity-1", homeDetails())
			if tt.wantKind != 0 {
				if apperr.KindOf(err) != tt.wantKind {
					t.Fatalf("err = %v, want kind %v", err, tt.wantKind)
				}
				if len(entities.updated) != 0 || len(rec.inputs) != 0 {
					t.Error("denied update must not write")
				}
				return
			}
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if e.Name != "Home" {
				t.Errorf("Name = %q, want Home", e.Name)
			}
			if got := rec.inputs[0].Metadata.Get("previousName"); got != "Old" {
				t.Errorf("previousName = %q, want Old", got)
			}
		})
	}
}

func TestUpdate_MissingEntity(t *testing.T) {
	svc, _, memberships, _ := newService()
	memberships.byKey["user-1:entity-9"] = &mdomain.Membership{UserID: "user-1", EntityID: "entity-9", Role: mdomain.RoleOwner}
	if _, err := svc.Update(context.Background(), "user-1", "entity-9", homeDetails()); !apperr.IsNotFound(err) {
		t.Errorf("err = %v, want NotFound", err)
	}
}

func TestGet_RequiresMembership(t *testing.T) {
	svc, entities, memberships, _ := newService()
	entities.byID["entity-1"] = &domain.Entity{ID: "entity-1", Name: "Home"}
	memberships.byKey["member:entity-1"] = &mdomain.Membership{UserID: "member", EntityID: "entity-1", Role: mdomain.RoleUser}

	if _, _, err := svc.Get(context.Background(), "stranger", "entity-1"); !apperr.IsForbidden(err) {
		t.Errorf("stranger err = %v, want Forbidden", err)
	}
	e, m, err := svc.Get(context.Background(), "member", "entity-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.Name != "Home" || m.Role != mdomain.RoleUser {
		t.Errorf("got %q/%q", e.Name, m.Role)
	}
}

func TestList_SkipsMissingEntities(t *testing.T) {
	svc, entities, memberships, _ := newService()
	entities.byID["entity-1"] = &domain.Entity{ID: "entity-1", Name: "Home"}
	memberships.created = []*mdomain.Membership{
		{UserID: "user-1", EntityID: "entity-1", Role: mdomain.RoleOwner},
		{UserID: "user-1", EntityID: "gone", Role: mdomain.RoleUser},
		{UserID: "user-2", EntityID: "entity-1", Role: mdomain.RoleUser},
	}
	got, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Entity.ID != "entity-1" {
		t.Fatalf("List = %+v, want only entity-1", got)
	}
}
