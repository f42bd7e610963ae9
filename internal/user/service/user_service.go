// Package service implements the identity store: email-keyed user records kept in sync with the
// authentication provider on every authenticated call.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/user/domain"
	userrepo "github.com/grezxune/ours-ledger/internal/user/repository"
)

// ErrEmailRequired is returned by EnsureUser when the email is blank after normalization.
var ErrEmailRequired = apperr.Validation("email is required")

// UserService owns user records.
type UserService struct {
	repo userrepo.Repository
	now  func() time.Time
}

// NewUserService returns a UserService over repo.
func NewUserService(repo userrepo.Repository) *UserService {
	return &UserService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// EnsureUser creates the user for email or patches its name and platform role, and returns the
// stored record. The platform role is trusted as given.
func (s *UserService) EnsureUser(ctx context.Context, email, name string, role domain.PlatformRole) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !role.Valid() {
		role = domain.PlatformRoleUser
	}
	name = domain.DisplayName(name, email)
	now := s.now()

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}
	if existing != nil {
		existing.Name = name
		existing.PlatformRole = role
		existing.UpdatedAt = now
		if err := s.repo.UpdateProfile(ctx, existing); err != nil {
			return nil, fmt.Errorf("ensure user: %w", err)
		}
		return existing, nil
	}

	u := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PlatformRole: role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}
	return u, nil
}

// RequireUserByID returns the user or a NotFound error.
func (s *UserService) RequireUserByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("authenticated user not found")
	}
	return u, nil
}

// GetByID returns the user for id, or nil when absent.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail normalizes email and returns the matching user, or nil.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, nil
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}
