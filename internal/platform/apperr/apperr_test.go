package apperr

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    codes.Code
		message string
	}{
		{"not found", NotFound("audit event not found"), codes.NotFound, "audit event not found"},
		{"forbidden", Forbidden("only owners can perform this action"), codes.PermissionDenied, "only owners can perform this action"},
		{"validation", Validation("amount must be greater than zero"), codes.InvalidArgument, "amount must be greater than zero"},
		{"wrapped", fmt.Errorf("entity service: %w", Forbidden("no access")), codes.PermissionDenied, "no access"},
		{"storage", errors.New("pq: connection refused"), codes.Internal, "internal error"},
		{"status passthrough", status.Error(codes.Unauthenticated, "missing token"), codes.Unauthenticated, "missing token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(ToStatus(tt.err))
			if !ok {
				t.Fatalf("ToStatus(%v) is not a status error", tt.err)
			}
			if st.Code() != tt.code {
				t.Errorf("code = %v, want %v", st.Code(), tt.code)
			}
			if st.Message() != tt.message {
				t.Errorf("message = %q, want %q", st.Message(), tt.message)
			}
		})
	}
	if ToStatus(nil) != nil {
		t.Error("ToStatus(nil) should be nil")
	}
}

func TestKindPredicates(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NotFound("x"))
	if !IsNotFound(err) {
		t.Error("IsNotFound(wrapped NotFound) = false")
	}
	if IsForbidden(err) || IsValidation(err) {
		t.Error("NotFound matched another kind")
	}
	if KindOf(errors.New("plain")) != 0 {
		t.Error("KindOf(plain error) should be 0")
	}
}
