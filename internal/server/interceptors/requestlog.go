package interceptors

import (
	"context"
	"log"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// RequestLogUnary returns a unary server interceptor that logs RPCs that fail with a server-side
// code (Internal, Unknown, Unavailable, DataLoss). Caller mistakes are not logged.
// skipMethods is the set of full method names never logged (e.g. health).
func RequestLogUnary(skipMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err == nil || skipMethods[info.FullMethod] {
			return resp, err
		}
		switch code := status.Code(err); code {
		case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
			userID, _ := GetUserID(ctx)
			log.Printf("grpc: %s failed code=%s user=%s ip=%s duration=%s: %v",
				info.FullMethod, code, userID, ClientIP(ctx), time.Since(start).Round(time.Millisecond), err)
		}
		return resp, err
	}
}

// ClientIP returns the client IP from gRPC metadata (x-forwarded-for, x-real-ip) or peer, or "unknown".
func ClientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get("x-forwarded-for"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				first, _, _ := strings.Cut(s, ",")
				return strings.TrimSpace(first)
			}
		}
		if vals := md.Get("x-real-ip"); len(vals) > 0 {
			if s := strings.TrimSpace(vals[0]); s != "" {
				return s
			}
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		if host, _, err := net.SplitHostPort(p.Addr.String()); err == nil {
			return host
		}
		return p.Addr.String()
	}
	return "unknown"
}
