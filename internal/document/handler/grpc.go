package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/document/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
)

// DocumentService is the document behaviour the handler exposes.
type DocumentService interface {
	RecordUpload(ctx context.Context, userID, entityID string, up domain.Upload) (*domain.Document, error)
	List(ctx context.Context, userID, entityID string) ([]*domain.Document, error)
}

// Server implements DocumentService (ledger.v1).
type Server struct {
	ledgerv1.UnimplementedDocumentServiceServer
	svc DocumentService
}

// NewServer returns a new Document gRPC server. Pass nil svc for stub (Unimplemented).
func NewServer(svc DocumentService) *Server {
	return &Server{svc: svc}
}

func (s *Server) RecordUploadedDocument(ctx context.Context, req *ledgerv1.RecordUploadedDocumentRequest) (*ledgerv1.RecordUploadedDocumentResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method RecordUploadedDocument not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.svc.RecordUpload(ctx, userID, req.EntityID, domain.Upload{
		FileName:            req.FileName,
		MimeType:            req.MimeType,
		SizeBytes:           req.SizeBytes,
		StorageKey:          req.StorageKey,
		CloudFrontURL:       req.CloudFrontURL,
		SourceTransactionID: req.SourceTransactionID,
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.RecordUploadedDocumentResponse{Document: toWire(d)}, nil
}

func (s *Server) ListDocuments(ctx context.Context, req *ledgerv1.ListDocumentsRequest) (*ledgerv1.ListDocumentsResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method ListDocuments not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.svc.List(ctx, userID, req.EntityID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	out := make([]ledgerv1.Document, 0, len(list))
	for _, d := range list {
		out = append(out, toWire(d))
	}
	return &ledgerv1.ListDocumentsResponse{Documents: out}, nil
}

func toWire(d *domain.Document) ledgerv1.Document {
	return ledgerv1.Document{
		ID:                  d.ID,
		EntityID:            d.EntityID,
		FileName:            d.FileName,
		MimeType:            d.MimeType,
		SizeBytes:           d.SizeBytes,
		StorageKey:          d.StorageKey,
		CloudFrontURL:       d.CloudFrontURL,
		SourceTransactionID: d.SourceTransactionID,
		UploadedBy:          d.UploadedByEmail,
		CreatedAt:           d.CreatedAt,
	}
}
