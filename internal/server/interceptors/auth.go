package interceptors

import (
	"context"
	"log"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/grezxune/ours-ledger/internal/security"
	userdomain "github.com/grezxune/ours-ledger/internal/user/domain"
)

const bearerPrefix = "bearer "

// TokenVerifier validates a bearer token and returns its principal.
type TokenVerifier interface {
	Verify(token string) (*security.Principal, error)
}

// UserEnsurer creates or refreshes the platform user behind a verified principal.
type UserEnsurer interface {
	EnsureUser(ctx context.Context, email, name string, role userdomain.PlatformRole) (*userdomain.User, error)
}

// RoleResolver derives the platform role of a verified email.
type RoleResolver interface {
	PlatformRole(email string) userdomain.PlatformRole
}

// AuthUnary returns a unary server interceptor that verifies the Bearer token from gRPC metadata,
// ensures the caller's user row and sets the user id and email in context for protected RPCs.
// publicMethods is the set of full method names that do not require a Bearer token (e.g. health).
func AuthUnary(tokens TokenVerifier, users UserEnsurer, roles RoleResolver, publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		token := extractBearer(ctx)
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}
		principal, err := tokens.Verify(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}
		u, err := users.EnsureUser(ctx, principal.Email, principal.Name, roles.PlatformRole(principal.Email))
		if err != nil {
			log.Printf("auth: ensure user for %s: %v", info.FullMethod, err)
			return nil, status.Error(codes.Internal, "failed to resolve user")
		}
		return handler(WithIdentity(ctx, u.ID, u.Email), req)
	}
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) < len(bearerPrefix) || !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
