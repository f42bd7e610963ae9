// Package apperr defines the typed errors shared by services and the mapping to gRPC status codes.
package apperr

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies an application error.
type Kind int

const (
	// KindNotFound means the referenced record does not exist or is not addressable by the caller.
	KindNotFound Kind = iota + 1
	// KindForbidden means the caller is authenticated but lacks the required membership or role.
	KindForbidden
	// KindValidation means the input was rejected before any read or write.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a typed application error. Message is safe to return to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound returns a KindNotFound error.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Forbidden returns a KindForbidden error.
func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// Validation returns a KindValidation error.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// KindOf returns the Kind of err, or 0 when err is not (and does not wrap) an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsForbidden(err error) bool  { return KindOf(err) == KindForbidden }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// ToStatus maps err to a gRPC status error. Typed errors keep their message; anything else
// (storage, dependency failures) becomes codes.Internal without leaking internals.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	var e *Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, "internal error")
	}
	switch e.Kind {
	case KindNotFound:
		return status.Error(codes.NotFound, e.Message)
	case KindForbidden:
		return status.Error(codes.PermissionDenied, e.Message)
	case KindValidation:
		return status.Error(codes.InvalidArgument, e.Message)
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
