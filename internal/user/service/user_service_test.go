package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/user/domain"
)

type mockUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	created   []*domain.User
	updated   []*domain.User
	getErr    error
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: map[string]*domain.User{}, byEmail: map[string]*domain.User{}}
}

func (m *mockUserRepo) add(u *domain.User) {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byID[id], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byEmail[email], nil
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, u)
	m.add(u)
	return nil
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, u *domain.User) error {
	m.updated = append(m.updated, u)
	return nil
}

func fixedClock(svc *UserService, at time.Time) {
	svc.now = func() time.Time { return at }
}

func TestEnsureUser_CreatesNormalizedUser(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	fixedClock(svc, at)

	u, err := svc.EnsureUser(context.Background(), "  Alice@Example.com ", "", domain.PlatformRoleUser)
	if err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", u.Email, "alice@example.com")
	}
	if u.Name != "alice" {
		t.Errorf("Name = %q, want email local part", u.Name)
	}
	if u.ID == "" {
		t.Error("ID should be assigned")
	}
	if !u.CreatedAt.Equal(at) || !u.UpdatedAt.Equal(at) {
		t.Errorf("timestamps = %v/%v, want %v", u.CreatedAt, u.UpdatedAt, at)
	}
	if len(repo.created) != 1 {
		t.Errorf("created = %d, want 1", len(repo.created))
	}
}

func TestEnsureUser_PatchesExisting(t *testing.T) {
	repo := newMockUserRepo()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.add(&domain.User{ID: "user-1", Email: "bob@example.com", Name: "bob", PlatformRole: domain.PlatformRoleUser, CreatedAt: created, UpdatedAt: created})
	svc := NewUserService(repo)
	at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	fixedClock(svc, at)

	u, err := svc.EnsureUser(context.Background(), "BOB@example.com", "Bob Smith", domain.PlatformRoleSuperAdmin)
	if err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	if u.ID != "user-1" {
		t.Errorf("ID = %q, want existing user-1", u.ID)
	}
	if u.Name != "Bob Smith" || u.PlatformRole != domain.PlatformRoleSuperAdmin {
		t.Errorf("profile = %q/%q, want patched", u.Name, u.PlatformRole)
	}
	if !u.CreatedAt.Equal(created) {
		t.Error("CreatedAt must not change on patch")
	}
	if len(repo.created) != 0 || len(repo.updated) != 1 {
		t.Errorf("created/updated = %d/%d, want 0/1", len(repo.created), len(repo.updated))
	}
}

func TestEnsureUser_BlankEmail(t *testing.T) {
	svc := NewUserService(newMockUserRepo())
	_, err := svc.EnsureUser(context.Background(), "   ", "x", domain.PlatformRoleUser)
	if !apperr.IsValidation(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestEnsureUser_StorageErrorPropagates(t *testing.T) {
	repo := newMockUserRepo()
	repo.createErr = errors.New("db down")
	svc := NewUserService(repo)
	if _, err := svc.EnsureUser(context.Background(), "a@b.c", "", domain.PlatformRoleUser); err == nil {
		t.Fatal("expected storage error")
	}
}

func TestRequireUserByID(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(&domain.User{ID: "user-1", Email: "a@b.c"})
	svc := NewUserService(repo)

	u, err := svc.RequireUserByID(context.Background(), "user-1")
	if err != nil || u == nil {
		t.Fatalf("RequireUserByID: %v, %v", u, err)
	}

	_, err = svc.RequireUserByID(context.Background(), "missing")
	if !apperr.IsNotFound(err) {
		t.Errorf("err = %v, want NotFound", err)
	}
}

func TestGetByEmail_Normalizes(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(&domain.User{ID: "user-1", Email: "a@b.c"})
	svc := NewUserService(repo)
	u, err := svc.GetByEmail(context.Background(), " A@B.C ")
	if err != nil || u == nil || u.ID != "user-1" {
		t.Errorf("GetByEmail = %v, %v; want user-1", u, err)
	}
}
