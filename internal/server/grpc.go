package server

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	ledgerv1 "github.com/grezxune/ours-ledger/api/ledger/v1"
	accounthandler "github.com/grezxune/ours-ledger/internal/account/handler"
	audithandler "github.com/grezxune/ours-ledger/internal/audit/handler"
	budgethandler "github.com/grezxune/ours-ledger/internal/budget/handler"
	documenthandler "github.com/grezxune/ours-ledger/internal/document/handler"
	entityhandler "github.com/grezxune/ours-ledger/internal/entity/handler"
	"github.com/grezxune/ours-ledger/internal/health"
	invitationhandler "github.com/grezxune/ours-ledger/internal/invitation/handler"
	ledgerhandler "github.com/grezxune/ours-ledger/internal/ledger/handler"
	membershiphandler "github.com/grezxune/ours-ledger/internal/membership/handler"
	"github.com/grezxune/ours-ledger/internal/server/interceptors"
	storagehandler "github.com/grezxune/ours-ledger/internal/storageconfig/handler"
	userhandler "github.com/grezxune/ours-ledger/internal/user/handler"
)

// Deps holds the services behind each gRPC handler. A nil service leaves its RPCs Unimplemented.
type Deps struct {
	Users        userhandler.UserGetter
	Memberships  membershiphandler.Store
	Entities     entityhandler.EntityService
	Invitations  invitationhandler.InvitationService
	Accounts     accounthandler.AccountService
	Budgets      budgethandler.BudgetService
	Transactions ledgerhandler.LedgerService
	Documents    documenthandler.DocumentService
	Storage      storagehandler.StorageService
	AuditQuery   audithandler.QueryService
	AuditManual  audithandler.ManualRecorder
	// Health is registered as grpc.health.v1.Health when set.
	Health *health.Checker
}

// Auth holds what the authentication interceptor needs.
type Auth struct {
	Tokens interceptors.TokenVerifier
	Users  interceptors.UserEnsurer
	Roles  interceptors.RoleResolver
}

// PublicMethods are callable without a bearer token.
func PublicMethods() map[string]bool {
	return map[string]bool{
		healthpb.Health_Check_FullMethodName: true,
		healthpb.Health_Watch_FullMethodName: true,
	}
}

// NewGRPCServer returns a server with tracing, request logging and bearer authentication.
func NewGRPCServer(auth Auth, opts ...grpc.ServerOption) *grpc.Server {
	public := PublicMethods()
	base := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.RequestLogUnary(public),
			interceptors.AuthUnary(auth.Tokens, auth.Users, auth.Roles, public),
		),
	}
	return grpc.NewServer(append(base, opts...)...)
}

// RegisterServices registers every ledger service with s.
//
// Service → handler mapping:
//   - UserService        → internal/user/handler
//   - MembershipService  → internal/membership/handler
//   - EntityService      → internal/entity/handler
//   - InvitationService  → internal/invitation/handler
//   - AccountService     → internal/account/handler
//   - BudgetService      → internal/budget/handler
//   - TransactionService → internal/ledger/handler
//   - DocumentService    → internal/document/handler
//   - StorageService     → internal/storageconfig/handler
//   - AuditService       → internal/audit/handler
//   - grpc.health.v1     → internal/health
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	ledgerv1.RegisterUserServiceServer(s, userhandler.NewServer(deps.Users))
	ledgerv1.RegisterMembershipServiceServer(s, membershiphandler.NewServer(deps.Memberships))
	ledgerv1.RegisterEntityServiceServer(s, entityhandler.NewServer(deps.Entities))
	ledgerv1.RegisterInvitationServiceServer(s, invitationhandler.NewServer(deps.Invitations))
	ledgerv1.RegisterAccountServiceServer(s, accounthandler.NewServer(deps.Accounts))
	ledgerv1.RegisterBudgetServiceServer(s, budgethandler.NewServer(deps.Budgets))
	ledgerv1.RegisterTransactionServiceServer(s, ledgerhandler.NewServer(deps.Transactions))
	ledgerv1.RegisterDocumentServiceServer(s, documenthandler.NewServer(deps.Documents))
	ledgerv1.RegisterStorageServiceServer(s, storagehandler.NewServer(deps.Storage))
	ledgerv1.RegisterAuditServiceServer(s, audithandler.NewServer(deps.AuditQuery, deps.AuditManual))
	if deps.Health != nil {
		healthpb.RegisterHealthServer(s, deps.Health.Server())
	}
}
