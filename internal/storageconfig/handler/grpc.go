package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
	"github.com/grezxune/ours-ledger/internal/storageconfig/domain"
)

// StorageService is the storage configuration behaviour the handler exposes.
type StorageService interface {
	Upsert(ctx context.Context, userID string, in domain.Input) (*domain.Config, error)
	Get(ctx context.Context, userID string) (*domain.Config, error)
}

// Server implements StorageService (ledger.v1).
type Server struct {
	ledgerv1.UnimplementedStorageServiceServer
	svc StorageService
}

// NewServer returns a new Storage gRPC server. Pass nil svc for stub (Unimplemented).
func NewServer(svc StorageService) *Server {
	return &Server{svc: svc}
}

func (s *Server) UpsertStorageConfig(ctx context.Context, req *ledgerv1.UpsertStorageConfigRequest) (*ledgerv1.UpsertStorageConfigResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method UpsertStorageConfig not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.svc.Upsert(ctx, userID, domain.Input{
		Bucket:                   req.Bucket,
		Region:                   req.Region,
		CloudFrontDistributionID: req.CloudFrontDistributionID,
		CloudFrontDomain:         req.CloudFrontDomain,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.UpsertStorageConfigResponse{Config: *toWire(c)}, nil
}

// GetStorageConfig returns a nil config when none has been saved.
func (s *Server) GetStorageConfig(ctx context.Context, req *ledgerv1.GetStorageConfigRequest) (*ledgerv1.GetStorageConfigResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method GetStorageConfig not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.svc.Get(ctx, userID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	if c == nil {
		return &ledgerv1.GetStorageConfigResponse{}, nil
	}
	return &ledgerv1.GetStorageConfigResponse{Config: toWire(c)}, nil
}

func toWire(c *domain.Config) *ledgerv1.StorageConfig {
	return &ledgerv1.StorageConfig{
		ID:                       c.ID,
		Bucket:                   c.Bucket,
		Region:                   c.Region,
		CloudFrontDistributionID: c.CloudFrontDistributionID,
		CloudFrontDomain:         c.CloudFrontDomain,
		UpdatedBy:                c.UpdatedByUserID,
		UpdatedAt:                c.UpdatedAt,
	}
}
