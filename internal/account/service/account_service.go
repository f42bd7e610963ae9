// Package service implements entity accounts.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/account/domain"
	accountrepo "github.com/grezxune/ours-ledger/internal/account/repository"
	"github.com/grezxune/ours-ledger/internal/audit"
	auditdomain "github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/platform/rbac"
)

// AccountService owns entity accounts.
type AccountService struct {
	tx          db.Transactor
	accounts    accountrepo.Repository
	memberships rbac.MembershipGetter
	recorder    audit.EventRecorder
	now         func() time.Time
}

// NewAccountService returns an AccountService.
func NewAccountService(tx db.Transactor, accounts accountrepo.Repository, memberships rbac.MembershipGetter, recorder audit.EventRecorder) *AccountService {
	return &AccountService{
		tx:          tx,
		accounts:    accounts,
		memberships: memberships,
		recorder:    recorder,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create adds an account to an entity the caller belongs to.
func (s *AccountService) Create(ctx context.Context, userID, entityID string, in domain.Input) (*domain.Account, error) {
	in = in.Normalize()
	if msg := in.Validate(); msg != "" {
		return nil, apperr.Validation(msg)
	}
	var a *domain.Account
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := rbac.RequireMembership(ctx, s.memberships, userID, entityID); err != nil {
			return err
		}
		now := s.now()
		a = &domain.Account{
			ID:              uuid.NewString(),
			EntityID:        entityID,
			Name:            in.Name,
			Currency:        in.Currency,
			Source:          in.Source,
			InstitutionName: in.InstitutionName,
			PlaidAccountID:  in.PlaidAccountID,
			CreatedByUserID: userID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.accounts.Create(ctx, a); err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		_, err := s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    entityID,
			Action:      auditdomain.ActionAccountCreated,
			Target:      a.ID,
			Metadata: auditdomain.NewMetadata().
				Set("entityId", entityID).
				Set("accountId", a.ID).
				Set("name", a.Name).
				Set("currency", a.Currency).
				Set("source", string(a.Source)).
				Set("institutionName", a.InstitutionName).
				Set("plaidAccountId", a.PlaidAccountID),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns an entity's accounts sorted by name.
func (s *AccountService) List(ctx context.Context, userID, entityID string) ([]*domain.Account, error) {
	if _, err := rbac.RequireMembership(ctx, s.memberships, userID, entityID); err != nil {
		return nil, err
	}
	list, err := s.accounts.ListByEntity(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return list, nil
}
