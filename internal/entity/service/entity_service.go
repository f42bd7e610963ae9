// Package service implements entity lifecycle: creation with an owner membership, owner-only
// edits and member-scoped reads.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/grezxune/ours-ledger/internal/audit"
	auditdomain "github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/entity/domain"
	entityrepo "github.com/grezxune/ours-ledger/internal/entity/repository"
	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/platform/rbac"
)

const listConcurrency = 8

// MembershipStore is the membership access the entity service needs.
type MembershipStore interface {
	rbac.MembershipGetter
	ListByUser(ctx context.Context, userID string) ([]*mdomain.Membership, error)
	Create(ctx context.Context, m *mdomain.Membership) error
}

// WithMembership pairs an entity with the caller's membership in it.
type WithMembership struct {
	Entity     *domain.Entity
	Membership *mdomain.Membership
}

// EntityService owns entities.
type EntityService struct {
	tx          db.Transactor
	entities    entityrepo.Repository
	memberships MembershipStore
	recorder    audit.EventRecorder
	now         func() time.Time
}

// NewEntityService returns an EntityService.
func NewEntityService(tx db.Transactor, entities entityrepo.Repository, memberships MembershipStore, recorder audit.EventRecorder) *EntityService {
	return &EntityService{
		tx:          tx,
		entities:    entities,
		memberships: memberships,
		recorder:    recorder,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new entity and makes userID its owner.
func (s *EntityService) Create(ctx context.Context, userID string, typ domain.Type, details domain.Details) (*domain.Entity, error) {
	if !typ.Valid() {
		return nil, apperr.Validation("entity type must be household or business")
	}
	details = details.Normalize()
	if msg := details.Validate(); msg != "" {
		return nil, apperr.Validation(msg)
	}
	now := s.now()
	e := &domain.Entity{
		ID:          uuid.NewString(),
		Type:        typ,
		Name:        details.Name,
		Address:     *details.Address,
		Currency:    details.Currency,
		Description: details.Description,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.entities.Create(ctx, e); err != nil {
			return fmt.Errorf("create entity: %w", err)
		}
		owner := &mdomain.Membership{
			ID:        uuid.NewString(),
			UserID:    userID,
			EntityID:  e.ID,
			Role:      mdomain.RoleOwner,
			CreatedAt: now,
		}
		if err := s.memberships.Create(ctx, owner); err != nil {
			return fmt.Errorf("create owner membership: %w", err)
		}
		_, err := s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    e.ID,
			Action:      auditdomain.ActionEntityCreated,
			Target:      e.ID,
			Metadata: auditdomain.NewMetadata().
				Set("type", string(e.Type)).
				Set("name", e.Name).
				Set("currency", e.Currency).
				Set("address", e.Address.Formatted),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces the editable fields of an entity. Owners only.
func (s *EntityService) Update(ctx context.Context, userID, entityID string, details domain.Details) (*domain.Entity, error) {
	details = details.Normalize()
	if msg := details.Validate(); msg != "" {
		return nil, apperr.Validation(msg)
	}
	var out *domain.Entity
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := rbac.RequireOwner(ctx, s.memberships, userID, entityID); err != nil {
			return err
		}
		e, err := s.load(ctx, entityID)
		if err != nil {
			return err
		}
		previousName := e.Name
		e.Name = details.Name
		e.Address = *details.Address
		e.Currency = details.Currency
		e.Description = details.Description
		e.UpdatedAt = s.now()
		if err := s.entities.Update(ctx, e); err != nil {
			return fmt.Errorf("update entity: %w", err)
		}
		if _, err := s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    e.ID,
			Action:      auditdomain.ActionEntityUpdated,
			Target:      e.ID,
			Metadata: auditdomain.NewMetadata().
				Set("previousName", previousName).
				Set("name", e.Name).
				Set("currency", e.Currency).
				Set("address", e.Address.Formatted),
		}); err != nil {
			return err
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns an entity the caller is a member of.
func (s *EntityService) Get(ctx context.Context, userID, entityID string) (*domain.Entity, *mdomain.Membership, error) {
	m, err := rbac.RequireMembership(ctx, s.memberships, userID, entityID)
	if err != nil {
		return nil, nil, err
	}
	e, err := s.load(ctx, entityID)
	if err != nil {
		return nil, nil, err
	}
	return e, m, nil
}

// List returns every entity the caller belongs to, in membership order. Memberships whose entity
// has disappeared are skipped.
func (s *EntityService) List(ctx context.Context, userID string) ([]WithMembership, error) {
	ms, err := s.memberships.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	found := make([]*domain.Entity, len(ms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, m := range ms {
		g.Go(func() error {
			e, err := s.entities.GetByID(gctx, m.EntityID)
			if err != nil {
				return fmt.Errorf("get entity %s: %w", m.EntityID, err)
			}
			found[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make([]WithMembership, 0, len(ms))
	for i, m := range ms {
		if found[i] == nil {
			continue
		}
		out = append(out, WithMembership{Entity: found[i], Membership: m})
	}
	return out, nil
}

func (s *EntityService) load(ctx context.Context, entityID string) (*domain.Entity, error) {
	e, err := s.entities.GetByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}
	if e == nil {
		return nil, apperr.NotFound("entity not found")
	}
	return e, nil
}
