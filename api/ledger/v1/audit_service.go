package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AuditServiceName is the fully qualified service name. Audit trail queries and client-originated events.
const AuditServiceName = packagePrefix + "AuditService"

// AuditServiceServer is the server API for AuditService.
type AuditServiceServer interface {
	ListRecentAuditEvents(context.Context, *ListRecentAuditEventsRequest) (*ListRecentAuditEventsResponse, error)
	GetAuditEvent(context.Context, *GetAuditEventRequest) (*GetAuditEventResponse, error)
	RecordAuditEvent(context.Context, *RecordAuditEventRequest) (*RecordAuditEventResponse, error)
}

// UnimplementedAuditServiceServer can be embedded to have forward compatible implementations.
type UnimplementedAuditServiceServer struct{}

func (UnimplementedAuditServiceServer) ListRecentAuditEvents(context.Context, *ListRecentAuditEventsRequest) (*ListRecentAuditEventsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRecentAuditEvents not implemented")
}

func (UnimplementedAuditServiceServer) GetAuditEvent(context.Context, *GetAuditEventRequest) (*GetAuditEventResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAuditEvent not implemented")
}

func (UnimplementedAuditServiceServer) RecordAuditEvent(context.Context, *RecordAuditEventRequest) (*RecordAuditEventResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordAuditEvent not implemented")
}

// AuditService_ServiceDesc is the grpc.ServiceDesc for AuditService.
var AuditService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AuditServiceName,
	HandlerType: (*AuditServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(AuditServiceName, "ListRecentAuditEvents", func(srv any, ctx context.Context, req *ListRecentAuditEventsRequest) (any, error) {
			return srv.(AuditServiceServer).ListRecentAuditEvents(ctx, req)
		}),
		unary(AuditServiceName, "GetAuditEvent", func(srv any, ctx context.Context, req *GetAuditEventRequest) (any, error) {
			return srv.(AuditServiceServer).GetAuditEvent(ctx, req)
		}),
		unary(AuditServiceName, "RecordAuditEvent", func(srv any, ctx context.Context, req *RecordAuditEventRequest) (any, error) {
			return srv.(AuditServiceServer).RecordAuditEvent(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ours/ledger/v1/audit",
}

func RegisterAuditServiceServer(s grpc.ServiceRegistrar, srv AuditServiceServer) {
	s.RegisterService(&AuditService_ServiceDesc, srv)
}

// AuditServiceClient is the client API for AuditService.
type AuditServiceClient interface {
	ListRecentAuditEvents(ctx context.Context, in *ListRecentAuditEventsRequest, opts ...grpc.CallOption) (*ListRecentAuditEventsResponse, error)
	GetAuditEvent(ctx context.Context, in *GetAuditEventRequest, opts ...grpc.CallOption) (*GetAuditEventResponse, error)
	RecordAuditEvent(ctx context.Context, in *RecordAuditEventRequest, opts ...grpc.CallOption) (*RecordAuditEventResponse, error)
}

type auditServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuditServiceClient(cc grpc.ClientConnInterface) AuditServiceClient {
	return &auditServiceClient{cc: cc}
}

func (c *auditServiceClient) ListRecentAuditEvents(ctx context.Context, in *ListRecentAuditEventsRequest, opts ...grpc.CallOption) (*ListRecentAuditEventsResponse, error) {
	return invoke[ListRecentAuditEventsResponse](ctx, c.cc, AuditServiceName, "ListRecentAuditEvents", in, opts)
}

func (c *auditServiceClient) GetAuditEvent(ctx context.Context, in *GetAuditEventRequest, opts ...grpc.CallOption) (*GetAuditEventResponse, error) {
	return invoke[GetAuditEventResponse](ctx, c.cc, AuditServiceName, "GetAuditEvent", in, opts)
}

func (c *auditServiceClient) RecordAuditEvent(ctx context.Context, in *RecordAuditEventRequest, opts ...grpc.CallOption) (*RecordAuditEventResponse, error) {
	return invoke[RecordAuditEventResponse](ctx, c.cc, AuditServiceName, "RecordAuditEvent", in, opts)
}
