package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/audit"
	"github.com/grezxune/ours-ledger/internal/audit/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
)

// QueryService answers audit reads for a viewer.
type QueryService interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Event, error)
	GetByID(ctx context.Context, userID, eventID string) (*domain.Detail, error)
}

// ManualRecorder appends caller-described events.
type ManualRecorder interface {
	Record(ctx context.Context, userID string, in audit.Input) (*domain.Event, error)
}

// Server implements AuditService (ledger.v1).
type Server struct {
	ledgerv1.UnimplementedAuditServiceServer
	query  QueryService
	manual ManualRecorder
}

// NewServer returns a new Audit gRPC server. Nil dependencies leave their methods Unimplemented.
func NewServer(query QueryService, manual ManualRecorder) *Server {
	return &Server{query: query, manual: manual}
}

// ListRecentAuditEvents returns the newest events visible to the caller.
func (s *Server) ListRecentAuditEvents(ctx context.Context, req *ledgerv1.ListRecentAuditEventsRequest) (*ledgerv1.ListRecentAuditEventsResponse, error) {
	if s.query == nil {
		return nil, status.Error(codes.Unimplemented, "method ListRecentAuditEvents not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.query.ListRecent(ctx, userID, req.Limit)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	out := make([]ledgerv1.AuditEvent, 0, len(events))
	for _, e := range events {
		out = append(out, eventToWire(e))
	}
	return &ledgerv1.ListRecentAuditEventsResponse{Events: out}, nil
}

// GetAuditEvent returns one event with the records it references.
func (s *Server) GetAuditEvent(ctx context.Context, req *ledgerv1.GetAuditEventRequest) (*ledgerv1.GetAuditEventResponse, error) {
	if s.query == nil {
		return nil, status.Error(codes.Unimplemented, "method GetAuditEvent not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.query.GetByID(ctx, userID, req.EventID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.GetAuditEventResponse{Detail: detailToWire(d)}, nil
}

// RecordAuditEvent appends an event described by the caller.
func (s *Server) RecordAuditEvent(ctx context.Context, req *ledgerv1.RecordAuditEventRequest) (*ledgerv1.RecordAuditEventResponse, error) {
	if s.manual == nil {
		return nil, status.Error(codes.Unimplemented, "method RecordAuditEvent not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.manual.Record(ctx, userID, audit.Input{
		EntityID: req.EntityID,
		Action:   domain.Action(req.Action),
		Target:   req.Target,
		Metadata: domain.Metadata(req.Metadata),
	})
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.RecordAuditEventResponse{Event: eventToWire(e)}, nil
}

func eventToWire(e *domain.Event) ledgerv1.AuditEvent {
	return ledgerv1.AuditEvent{
		ID:          e.ID,
		EntityID:    e.EntityID,
		ActorUserID: e.ActorUserID,
		ActorEmail:  e.ActorEmail,
		Action:      string(e.Action),
		ActionLabel: domain.ActionLabel(e.Action),
		Target:      e.Target,
		Metadata:    e.Metadata,
		CreatedAt:   e.CreatedAt,
	}
}

func snapshotToWire(s *domain.Snapshot) ledgerv1.RecordSnapshot {
	return ledgerv1.RecordSnapshot{Table: s.Table.String(), ID: s.ID, Exists: s.Exists, Data: s.Data}
}

func detailToWire(d *domain.Detail) ledgerv1.AuditEventDetail {
	out := ledgerv1.AuditEventDetail{
		Event:          eventToWire(d.Event),
		TargetType:     d.TargetType,
		RelatedRecords: make([]ledgerv1.RecordSnapshot, 0, len(d.Related)),
	}
	if d.Target != nil {
		snap := snapshotToWire(d.Target)
		out.TargetRecord = &snap
	}
	for _, r := range d.Related {
		out.RelatedRecords = append(out.RelatedRecords, snapshotToWire(r))
	}
	if d.Entity != nil {
		out.Entity = &ledgerv1.EntitySummary{ID: d.Entity.ID, Name: d.Entity.Name, Type: d.Entity.Type, Currency: d.Entity.Currency}
	}
	return out
}
