// Package service records uploaded documents against entities.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/audit"
	auditdomain "github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/document/domain"
	docrepo "github.com/grezxune/ours-ledger/internal/document/repository"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/platform/rbac"
)

// DocumentService owns document metadata.
type DocumentService struct {
	tx          db.Transactor
	documents   docrepo.Repository
	memberships rbac.MembershipGetter
	users       rbac.UserGetter
	recorder    audit.EventRecorder
	now         func() time.Time
}

// NewDocumentService returns a DocumentService.
func NewDocumentService(tx db.Transactor, documents docrepo.Repository, memberships rbac.MembershipGetter, users rbac.UserGetter, recorder audit.EventRecorder) *DocumentService {
	return &DocumentService{
		tx:          tx,
		documents:   documents,
		memberships: memberships,
		users:       users,
		recorder:    recorder,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RecordUpload stores metadata for an object the caller already uploaded.
func (s *DocumentService) RecordUpload(ctx context.Context, userID, entityID string, up domain.Upload) (*domain.Document, error) {
	up = up.Normalize()
	if msg := up.Validate(); msg != "" {
		return nil, apperr.Validation(msg)
	}
	var d *domain.Document
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := rbac.RequireMembership(ctx, s.memberships, userID, entityID); err != nil {
			return err
		}
		u, err := s.users.RequireUserByID(ctx, userID)
		if err != nil {
			return err
		}
		d = &domain.Document{
			ID:                  uuid.NewString(),
			EntityID:            entityID,
			FileName:            up.FileName,
			MimeType:            up.MimeType,
			SizeBytes:           up.SizeBytes,
			StorageKey:          up.StorageKey,
			CloudFrontURL:       up.CloudFrontURL,
			SourceTransactionID: up.SourceTransactionID,
			UploadedByUserID:    u.ID,
			UploadedByEmail:     u.Email,
			CreatedAt:           s.now(),
		}
		if err := s.documents.Create(ctx, d); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			EntityID:    entityID,
			Action:      auditdomain.ActionDocumentUploaded,
			Target:      d.ID,
			Metadata: auditdomain.NewMetadata().
				Set("entityId", entityID).
				Set("documentId", d.ID).
				Set("fileName", d.FileName).
				Set("mimeType", d.MimeType).
				Set("storageKey", d.StorageKey).
				SetInt("sizeBytes", d.SizeBytes).
				SetOptional("sourceTransactionId", d.SourceTransactionID),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// List returns an entity's documents, newest first.
func (s *DocumentService) List(ctx context.Context, userID, entityID string) ([]*domain.Document, error) {
	if _, err := rbac.RequireMembership(ctx, s.memberships, userID, entityID); err != nil {
		return nil, err
	}
	list, err := s.documents.ListByEntity(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return list, nil
}
