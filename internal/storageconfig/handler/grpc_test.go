package handler

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
	"github.com/grezxune/ours-ledger/internal/storageconfig/domain"
)

type mockService struct {
	cfg *domain.Config
	err error
}

func (m *mockService) Upsert(ctx context.Context, userID string, in domain.Input) (*domain.Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Config{ID: "cfg-1", Bucket: in.Bucket, Region: in.Region}, nil
}

func (m *mockService) Get(ctx context.Context, userID string) (*domain.Config, error) {
	return m.cfg, m.err
}

func authed() context.Context {
	return interceptors.WithIdentity(context.Background(), "root", "root@example.com")
}

func TestGetStorageConfig_NoneSaved(t *testing.T) {
	resp, err := NewServer(&mockService{}).GetStorageConfig(authed(), &ledgerv1.GetStorageConfigRequest{})
	if err != nil {
		t.Fatalf("GetStorageConfig: %v", err)
	}
	if resp.Config != nil {
		t.Errorf("Config = %+v, want nil", resp.Config)
	}
}

func TestUpsertStorageConfig_ForbiddenMapsToPermissionDenied(t *testing.T) {
	svc := &mockService{err: apperr.Forbidden("super admin access required")}
	_, err := NewServer(svc).UpsertStorageConfig(authed(), &ledgerv1.UpsertStorageConfigRequest{Bucket: "b", Region: "r"})
	if status.Code(err) != codes.PermissionDenied {
		t.Errorf("code = %v, want PermissionDenied", status.Code(err))
	}
}
