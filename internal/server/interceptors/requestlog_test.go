package interceptors

import (
	"bytes"
	"context"
	"log"
	"net"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	})
	return &buf
}

func TestRequestLogUnary(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		err     error
		skip    bool
		wantLog bool
	}{
		{"success", "/svc/A", nil, false, false},
		{"caller error", "/svc/A", status.Error(codes.PermissionDenied, "no"), false, false},
		{"internal", "/svc/A", status.Error(codes.Internal, "boom"), false, true},
		{"skipped internal", "/grpc.health.v1.Health/Check", status.Error(codes.Internal, "boom"), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			skip := map[string]bool{}
			if tt.skip {
				skip[tt.method] = true
			}
			interceptor := RequestLogUnary(skip)
			_, err := interceptor(WithIdentity(context.Background(), "user-1", "a@example.com"), "req",
				&grpc.UnaryServerInfo{FullMethod: tt.method},
				func(ctx context.Context, req interface{}) (interface{}, error) { return nil, tt.err })
			if err != tt.err {
				t.Errorf("err = %v, want passthrough %v", err, tt.err)
			}
			logged := buf.Len() > 0
			if logged != tt.wantLog {
				t.Errorf("logged = %v, want %v (%q)", logged, tt.wantLog, buf.String())
			}
			if tt.wantLog && !strings.Contains(buf.String(), "user=user-1") {
				t.Errorf("log line missing user: %q", buf.String())
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	md := func(kv ...string) context.Context {
		return metadata.NewIncomingContext(context.Background(), metadata.Pairs(kv...))
	}
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"x-forwarded-for", md("x-forwarded-for", "192.168.1.1"), "192.168.1.1"},
		{"x-forwarded-for chain", md("x-forwarded-for", "192.168.1.1, 10.0.0.1"), "192.168.1.1"},
		{"x-real-ip", md("x-real-ip", "192.168.1.2"), "192.168.1.2"},
		{"forwarded wins", md("x-forwarded-for", "192.168.1.1", "x-real-ip", "192.168.1.2"), "192.168.1.1"},
		{"whitespace", md("x-forwarded-for", "  192.168.1.1  "), "192.168.1.1"},
		{"peer", peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP("192.168.1.3"), Port: 12345}}), "192.168.1.3"},
		{"unknown", context.Background(), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClientIP(tt.ctx); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
