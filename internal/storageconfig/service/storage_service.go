// Package service manages the platform storage configuration. Every operation is super-admin only.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/grezxune/ours-ledger/internal/audit"
	auditdomain "github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/db"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/platform/rbac"
	"github.com/grezxune/ours-ledger/internal/storageconfig/domain"
	storagerepo "github.com/grezxune/ours-ledger/internal/storageconfig/repository"
)

// StorageService owns the storage configuration row.
type StorageService struct {
	tx       db.Transactor
	configs  storagerepo.Repository
	users    rbac.UserGetter
	recorder audit.EventRecorder
	now      func() time.Time
}

// NewStorageService returns a StorageService.
func NewStorageService(tx db.Transactor, configs storagerepo.Repository, users rbac.UserGetter, recorder audit.EventRecorder) *StorageService {
	return &StorageService{
		tx:       tx,
		configs:  configs,
		users:    users,
		recorder: recorder,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Upsert creates the configuration or updates the existing row in place.
func (s *StorageService) Upsert(ctx context.Context, userID string, in domain.Input) (*domain.Config, error) {
	in = in.Normalize()
	if msg := in.Validate(); msg != "" {
		return nil, apperr.Validation(msg)
	}
	var c *domain.Config
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := rbac.RequireSuperAdmin(ctx, s.users, userID); err != nil {
			return err
		}
		existing, err := s.configs.Get(ctx)
		if err != nil {
			return fmt.Errorf("load storage config: %w", err)
		}
		c = &domain.Config{
			Bucket:                   in.Bucket,
			Region:                   in.Region,
			CloudFrontDistributionID: in.CloudFrontDistributionID,
			CloudFrontDomain:         in.CloudFrontDomain,
			UpdatedByUserID:          userID,
			UpdatedAt:                s.now(),
		}
		if existing != nil {
			c.ID = existing.ID
			err = s.configs.Update(ctx, c)
		} else {
			c.ID = uuid.NewString()
			err = s.configs.Create(ctx, c)
		}
		if err != nil {
			return fmt.Errorf("save storage config: %w", err)
		}
		_, err = s.recorder.Record(ctx, audit.Input{
			ActorUserID: userID,
			Action:      auditdomain.ActionStorageConfigUpdated,
			Target:      c.ID,
			Metadata: auditdomain.NewMetadata().
				Set("bucket", c.Bucket).
				Set("region", c.Region).
				SetOptional("cloudFrontDistributionId", c.CloudFrontDistributionID).
				SetOptional("cloudFrontDomain", c.CloudFrontDomain),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the configuration, or nil when none has been saved yet.
func (s *StorageService) Get(ctx context.Context, userID string) (*domain.Config, error) {
	if _, err := rbac.RequireSuperAdmin(ctx, s.users, userID); err != nil {
		return nil, err
	}
	c, err := s.configs.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load storage config: %w", err)
	}
	return c, nil
}
