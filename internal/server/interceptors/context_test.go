package interceptors

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestWithIdentity_SetsAllValues(t *testing.T) {
	ctx := WithIdentity(context.Background(), "user-1", "alice@example.com")

	userID, ok := GetUserID(ctx)
	if !ok {
		t.Fatal("GetUserID should return true")
	}
	if userID != "user-1" {
		t.Errorf("user_id = %q, want %q", userID, "user-1")
	}

	email, ok := GetEmail(ctx)
	if !ok {
		t.Fatal("GetEmail should return true")
	}
	if email != "alice@example.com" {
		t.Errorf("email = %q, want %q", email, "alice@example.com")
	}
}

func TestGetUserID_ReturnsFalseWhenNotSet(t *testing.T) {
	if _, ok := GetUserID(context.Background()); ok {
		t.Error("GetUserID should return false when not set")
	}
}

func TestGetUserID_EmptyIsUnset(t *testing.T) {
	ctx := WithIdentity(context.Background(), "", "")
	if _, ok := GetUserID(ctx); ok {
		t.Error("GetUserID should return false for an empty id")
	}
	if _, ok := GetEmail(ctx); ok {
		t.Error("GetEmail should return false for an empty email")
	}
}

func TestRequireUserID(t *testing.T) {
	_, err := RequireUserID(context.Background())
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("code = %v, want Unauthenticated", status.Code(err))
	}
	id, err := RequireUserID(WithIdentity(context.Background(), "user-1", "a@b.c"))
	if err != nil || id != "user-1" {
		t.Errorf("RequireUserID = %q, %v", id, err)
	}
}
