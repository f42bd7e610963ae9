package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	"github.com/grezxune/ours-ledger/internal/platform/apperr"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
	"github.com/grezxune/ours-ledger/internal/user/domain"
)

// UserGetter resolves the authenticated user.
type UserGetter interface {
	RequireUserByID(ctx context.Context, id string) (*domain.User, error)
}

// Server implements UserService (ledger.v1).
type Server struct {
	ledgerv1.UnimplementedUserServiceServer
	users UserGetter
}

// NewServer returns a new User gRPC server. Pass nil users for stub (Unimplemented).
func NewServer(users UserGetter) *Server {
	return &Server{users: users}
}

// WhoAmI returns the principal the request was authenticated as.
func (s *Server) WhoAmI(ctx context.Context, req *ledgerv1.WhoAmIRequest) (*ledgerv1.WhoAmIResponse, error) {
	if s.users == nil {
		return nil, status.Error(codes.Unimplemented, "method WhoAmI not implemented")
	}
	userID, err := interceptors.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.RequireUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.ToStatus(err)
	}
	return &ledgerv1.WhoAmIResponse{User: ledgerv1.User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PlatformRole: string(u.PlatformRole),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}}, nil
}
