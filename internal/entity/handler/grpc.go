package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/entity/domain"
	"github.com/grezxune/ours-ledger/internal/entity/service"
	mdomain "github.com/grezxune/ours-ledger/internal/membership/domain"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
)

// EntityService is the entity behaviour the handler exposes.
type EntityService interface {
	Create(ctx context.Context, userID string, typ domain.Type, details domain.Details) (*domain.Entity, error)
	Update(ctx context.Context, userID, entityID string, details domain.Details) (*domain.Entity, error)
	Get(ctx context.Context, userID, entityID string) (*domain.Entity, *mdomain.Membership, error)
	List(ctx context.Context, userID string) ([]service.WithMembership, error)
}

// Server implements EntityService (ledger.v1) over the entity service.
type Server struct {
	ledgerv1.UnimplementedEntityServiceServer
	svc EntityService
}

// NewServer returns a new Entity gRPC server. Pass nil svc for stub (Unimplemented).
func NewServer(svc EntityService) *Server {
	return &Server{svc: svc}
}

func (s *Server) CreateEntity(ctx context.Context, req *ledgerv1.CreateEntityRequest) (*ledgerv1.CreateEntityResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateEntity not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.svc.Create(ctx, userID, domain.Type(req.Type), detailsFromRequest(req.Name, req.Address, req.Currency, req.Description))
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.CreateEntityResponse{Entity: entityToWire(e)}, nil
}

func (s *Server) UpdateEntity(ctx context.Context, req *ledgerv1.UpdateEntityRequest) (*ledgerv1.UpdateEntityResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method UpdateEntity not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.svc.Update(ctx, userID, req.EntityID, detailsFromRequest(req.Name, req.Address, req.Currency, req.Description))
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.UpdateEntityResponse{Entity: entityToWire(e)}, nil
}

func (s *Server) GetEntity(ctx context.Context, req *ledgerv1.GetEntityRequest) (*ledgerv1.GetEntityResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method GetEntity not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	e, _, err := s.svc.Get(ctx, userID, req.EntityID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.GetEntityResponse{Entity: entityToWire(e)}, nil
}

func (s *Server) ListEntities(ctx context.Context, req *ledgerv1.ListEntitiesRequest) (*ledgerv1.ListEntitiesResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method ListEntities not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.svc.List(ctx, userID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	email, _ := interceptors.GetEmail(ctx)
	out := make([]ledgerv1.EntityWithMembership, 0, len(list))
	for _, item := range list {
		out = append(out, ledgerv1.EntityWithMembership{
			Entity: entityToWire(item.Entity),
			Membership: ledgerv1.Membership{
				ID:        item.Membership.ID,
				EntityID:  item.Membership.EntityID,
				UserEmail: email,
				Role:      string(item.Membership.Role),
				CreatedAt: item.Membership.CreatedAt,
			},
		})
	}
	return &ledgerv1.ListEntitiesResponse{Entities: out}, nil
}

func detailsFromRequest(name string, addr *ledgerv1.Address, currency, description string) domain.Details {
	d := domain.Details{Name: name, Currency: currency, Description: description}
	if addr != nil {
		d.Address = &domain.Address{
			Formatted:   addr.Formatted,
			Line1:       addr.Line1,
			Line2:       addr.Line2,
			City:        addr.City,
			Region:      addr.Region,
			PostalCode:  addr.PostalCode,
			CountryCode: addr.CountryCode,
			PlaceID:     addr.PlaceID,
		}
	}
	return d
}

func entityToWire(e *domain.Entity) ledgerv1.Entity {
	return ledgerv1.Entity{
		ID:   e.ID,
		Type: string(e.Type),
		Name: e.Name,
		Address: ledgerv1.Address{
			Formatted:   e.Address.Formatted,
			Line1:       e.Address.Line1,
			Line2:       e.Address.Line2,
			City:        e.Address.City,
			Region:      e.Address.Region,
			PostalCode:  e.Address.PostalCode,
			CountryCode: e.Address.CountryCode,
			PlaceID:     e.Address.PlaceID,
		},
		Currency:    e.Currency,
		Description: e.Description,
		ArchivedAt:  e.ArchivedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
