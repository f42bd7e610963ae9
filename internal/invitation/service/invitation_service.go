// Package service implements invitations: owners invite an email address into an entity and the
// addressee accepts to gain the offered role.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/audit"
	auditdomain "github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/invitation/domain"
	invitationrepo "github.com/grezxune/ours-ledger/internal/invitation/repository"
	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/platform/rbac"
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

const msgInvitationNotFound = "invitation not found"

// MembershipStore is the membership access the invitation service needs.
type MembershipStore interface {
	rbac.MembershipGetter
	Upsert(ctx context.Context, m *mdomain.Membership) (*mdomain.Membership, error)
}

// InvitationService owns invitations.
type InvitationService struct {
	tx          db.Transactor
	invitations invitationrepo.Repository
	memberships MembershipStore
	users       rbac.UserGetter
	recorder    audit.EventRecorder
	now         func() time.Time
}

// NewInvitationService returns an InvitationService.
func NewInvitationService(tx db.Transactor, invitations invitationrepo.Repository, memberships MembershipStore, users rbac.UserGetter, recorder audit.EventRecorder) *InvitationService {
	return &InvitationService{
		tx:          tx,
		invitations: invitations,
		memberships: memberships,
		users:       users,
		recorder:    recorder,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create invites email into entityID with role. While a pending invitation for the same address
// exists it is returned unchanged and created is false.
func (s *InvitationService) Create(ctx context.Context, userID, entityID, email string, role mdomain.Role) (inv *domain.Invitation, created bool, err error) {
	email = userdomain.NormalizeEmail(email)
	if email == "" {
		return nil, false, apperr.Validation("invite email is required")
	}
	if !role.Valid() {
		return nil, false, apperr.Validation("invitation role must be owner or user")
	}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := rbac.RequireOwner(ctx, s.memberships, userID, entityID); err != nil {
			return err
		}
		existing, err := s.invitations.GetPending(ctx, entityID, email)
		if err != nil {
			return fmt.Errorf("get pending invitation: %w", err)
		}
		if existing != nil {
			inv = existing
			return nil
		}
		inv = &domain.Invitation{
			ID:              uuid.NewString(),
			EntityID:        entityID,
			Email:           email,
			Role:            role,
			Status:          domain.StatusPending,
			InvitedByUserID: userID,
			CreatedAt:       s.now(),
		}
		inserted, err := s.invitations.Create(ctx, inv)
		if err != nil {
			return fmt.Errorf("create invitation: %w", err)
		}
		if !inserted {
			// A concurrent create for the same address committed first.
			existing, err := s.invitations.GetPending(ctx, entityID, email)
			if err != nil {
				return fmt.Errorf("get pending invitation: %w", err)
			}
			if existing == nil {
				return fmt.Errorf("create invitation: pending invitation for %s disappeared", email)
			}
			inv = existing
			return nil
		}
		created = true
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    entityID,
			Action:      auditdomain.ActionInvitationCreated,
			Target:      inv.ID,
			Metadata:    invitationMetadata(inv),
		})
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return inv, created, nil
}

// Accept binds the caller to the invitation's entity with the invited role. An existing
// membership has its role overwritten, which can demote an owner.
func (s *InvitationService) Accept(ctx context.Context, userID, invitationID string) (*domain.Invitation, *mdomain.Membership, error) {
	var (
		inv *domain.Invitation
		m   *mdomain.Membership
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.users.RequireUserByID(ctx, userID)
		if err != nil {
			return err
		}
		inv, err = s.invitations.GetByID(ctx, invitationID)
		if err != nil {
			return fmt.Errorf("get invitation: %w", err)
		}
		if !inv.IsPending() || inv.Email != u.Email {
			return apperr.NotFound(msgInvitationNotFound)
		}
		ok, err := s.invitations.Transition(ctx, inv.ID, domain.StatusPending, domain.StatusAccepted)
		if err != nil {
			return fmt.Errorf("accept invitation: %w", err)
		}
		if !ok {
			return apperr.NotFound(msgInvitationNotFound)
		}
		inv.Status = domain.StatusAccepted

		m, err = s.memberships.Upsert(ctx, &mdomain.Membership{
			ID:        uuid.NewString(),
			UserID:    u.ID,
			EntityID:  inv.EntityID,
			Role:      inv.Role,
			CreatedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("bind membership: %w", err)
		}
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: u.ID,
			EntityID:    inv.EntityID,
			Action:      auditdomain.ActionInvitationAccepted,
			Target:      inv.ID,
			Metadata:    invitationMetadata(inv),
		})
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return inv, m, nil
}

// Revoke withdraws a pending invitation. Owners only.
func (s *InvitationService) Revoke(ctx context.Context, userID, invitationID string) (*domain.Invitation, error) {
	var inv *domain.Invitation
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		inv, err = s.invitations.GetByID(ctx, invitationID)
		if err != nil {
			return fmt.Errorf("get invitation: %w", err)
		}
		if inv == nil {
			return apperr.NotFound(msgInvitationNotFound)
		}
		if _, err := rbac.RequireOwner(ctx, s.memberships, userID, inv.EntityID); err != nil {
			return err
		}
		ok, err := s.invitations.Transition(ctx, inv.ID, domain.StatusPending, domain.StatusRevoked)
		if err != nil {
			return fmt.Errorf("revoke invitation: %w", err)
		}
		if !ok {
			return apperr.Validation("only pending invitations can be revoked")
		}
		inv.Status = domain.StatusRevoked
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    inv.EntityID,
			Action:      auditdomain.ActionInvitationRevoked,
			Target:      inv.ID,
			Metadata:    invitationMetadata(inv),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// ListForEntity returns every invitation of an entity, newest first. Owners only.
func (s *InvitationService) ListForEntity(ctx context.Context, userID, entityID string) ([]*domain.Invitation, error) {
	if _, err := rbac.RequireOwner(ctx, s.memberships, userID, entityID); err != nil {
		return nil, err
	}
	list, err := s.invitations.ListByEntity(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("list entity invitations: %w", err)
	}
	return list, nil
}

// ListMine returns pending invitations addressed to the caller's email.
func (s *InvitationService) ListMine(ctx context.Context, userID string) ([]*domain.Invitation, error) {
	u, err := s.users.RequireUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	list, err := s.invitations.ListPendingByEmail(ctx, u.Email)
	if err != nil {
		return nil, fmt.Errorf("list my invitations: %w", err)
	}
	return list, nil
}

func invitationMetadata(inv *domain.Invitation) auditdomain.Metadata {
	return auditdomain.NewMetadata().
		Set("invitationId", inv.ID).
		Set("inviteEmail", inv.Email).
		Set("role", string(inv.Role))
}
