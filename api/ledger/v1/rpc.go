// Package ledgerv1 holds the wire contracts of the ledger gRPC services: request and response
// messages, service descriptors, server interfaces and typed clients. Messages travel with the
// JSON codec from api/codec.
package ledgerv1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/grezxune/ours-ledger/api/codec"
)

const packagePrefix = "ours.ledger.v1."

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// unary builds a MethodDesc whose handler decodes Req and dispatches through call.
func unary[Req any](service, method string, call func(srv any, ctx context.Context, req *Req) (any, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(service, method)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv, ctx, req.(*Req))
			})
		},
	}
}

// invoke performs a unary call with the JSON content subtype.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(service, method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
