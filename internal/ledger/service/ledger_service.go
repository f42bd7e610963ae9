// Package service implements the entity ledger.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/audit"
	auditdomain "github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/ledger/domain"
	ledgerrepo "github.com/grezxune/ours-ledger/internal/ledger/repository"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/platform/rbac"
)

// LedgerService owns entity transactions.
type LedgerService struct {
	tx           db.Transactor
	transactions ledgerrepo.Repository
	memberships  rbac.MembershipGetter
	users        rbac.UserGetter
	recorder     audit.EventRecorder
	now          func() time.Time
}

// NewLedgerService returns a LedgerService.
func NewLedgerService(tx db.Transactor, transactions ledgerrepo.Repository, memberships rbac.MembershipGetter, users rbac.UserGetter, recorder audit.EventRecorder) *LedgerService {
	return &LedgerService{
		tx:           tx,
		transactions: transactions,
		memberships:  memberships,
		users:        users,
		recorder:     recorder,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create records a manual transaction on an entity the caller belongs to.
func (s *LedgerService) Create(ctx context.Context, userID, entityID string, in domain.Input) (*domain.Transaction, error) {
	in = in.Normalize()
	if msg := in.Validate(); msg != "" {
		return nil, apperr.Validation(msg)
	}
	var t *domain.Transaction
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := rbac.RequireMembership(ctx, s.memberships, userID, entityID); err != nil {
			return err
		}
		u, err := s.users.RequireUserByID(ctx, userID)
		if err != nil {
			return err
		}
		now := s.now()
		t = &domain.Transaction{
			ID:              uuid.NewString(),
			EntityID:        entityID,
			Source:          domain.SourceManual,
			Kind:            in.Kind,
			Type:            in.Type,
			Status:          in.Status,
			AmountCents:     in.AmountCents,
			Date:            in.Date,
			Category:        in.Category,
			Notes:           in.Notes,
			Payee:           in.Payee,
			Recurrence:      in.Recurrence,
			CreatedByUserID: u.ID,
			CreatedByEmail:  u.Email,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.transactions.Create(ctx, t); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    entityID,
			Action:      auditdomain.ActionTransactionCreated,
			Target:      t.ID,
			Metadata: auditdomain.NewMetadata().
				Set("entityId", entityID).
				Set("transactionId", t.ID).
				Set("kind", string(t.Kind)).
				Set("type", string(t.Type)).
				Set("status", string(t.Status)).
				SetInt("amountCents", t.AmountCents).
				Set("date", t.Date).
				Set("category", t.Category).
				SetOptional("payee", t.Payee),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List returns an entity's transactions, newest first.
func (s *LedgerService) List(ctx context.Context, userID, entityID string) ([]*domain.Transaction, error) {
	if _, err := rbac.RequireMembership(ctx, s.memberships, userID, entityID); err != nil {
		return nil, err
	}
	list, err := s.transactions.ListByEntity(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return list, nil
}
