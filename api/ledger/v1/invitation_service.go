package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InvitationServiceName is the fully qualified service name. Entity invitations.
const InvitationServiceName = packagePrefix + "InvitationService"

// InvitationServiceServer is the server API for InvitationService.
type InvitationServiceServer interface {
	CreateInvitation(context.Context, *CreateInvitationRequest) (*CreateInvitationResponse, error)
	AcceptInvitation(context.Context, *AcceptInvitationRequest) (*AcceptInvitationResponse, error)
	RevokeInvitation(context.Context, *RevokeInvitationRequest) (*RevokeInvitationResponse, error)
	ListEntityInvitations(context.Context, *ListEntityInvitationsRequest) (*ListInvitationsResponse, error)
	ListMyInvitations(context.Context, *ListMyInvitationsRequest) (*ListInvitationsResponse, error)
}

// UnimplementedInvitationServiceServer can be embedded to have forward compatible implementations.
type UnimplementedInvitationServiceServer struct{}

func (UnimplementedInvitationServiceServer) CreateInvitation(context.Context, *CreateInvitationRequest) (*CreateInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateInvitation not implemented")
}

func (UnimplementedInvitationServiceServer) AcceptInvitation(context.Context, *AcceptInvitationRequest) (*AcceptInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AcceptInvitation not implemented")
}

func (UnimplementedInvitationServiceServer) RevokeInvitation(context.Context, *RevokeInvitationRequest) (*RevokeInvitationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RevokeInvitation not implemented")
}

func (UnimplementedInvitationServiceServer) ListEntityInvitations(context.Context, *ListEntityInvitationsRequest) (*ListInvitationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEntityInvitations not implemented")
}

func (UnimplementedInvitationServiceServer) ListMyInvitations(context.Context, *ListMyInvitationsRequest) (*ListInvitationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMyInvitations not implemented")
}

// InvitationService_ServiceDesc is the grpc.ServiceDesc for InvitationService.
var InvitationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: InvitationServiceName,
	HandlerType: (*InvitationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(InvitationServiceName, "CreateInvitation", func(srv any, ctx context.Context, req *CreateInvitationRequest) (any, error) {
			return srv.(InvitationServiceServer).CreateInvitation(ctx, req)
		}),
		unary(InvitationServiceName, "AcceptInvitation", func(srv any, ctx context.Context, req *AcceptInvitationRequest) (any, error) {
			return srv.(InvitationServiceServer).AcceptInvitation(ctx, req)
		}),
		unary(InvitationServiceName, "RevokeInvitation", func(srv any, ctx context.Context, req *RevokeInvitationRequest) (any, error) {
			return srv.(InvitationServiceServer).RevokeInvitation(ctx, req)
		}),
		unary(InvitationServiceName, "ListEntityInvitations", func(srv any, ctx context.Context, req *ListEntityInvitationsRequest) (any, error) {
			return srv.(InvitationServiceServer).ListEntityInvitations(ctx, req)
		}),
		unary(InvitationServiceName, "ListMyInvitations", func(srv any, ctx context.Context, req *ListMyInvitationsRequest) (any, error) {
			return srv.(InvitationServiceServer).ListMyInvitations(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ours/ledger/v1/invitation",
}

func RegisterInvitationServiceServer(s grpc.ServiceRegistrar, srv InvitationServiceServer) {
	s.RegisterService(&InvitationService_ServiceDesc, srv)
}

// InvitationServiceClient is the client API for InvitationService.
type InvitationServiceClient interface {
	CreateInvitation(ctx context.Context, in *CreateInvitationRequest, opts ...grpc.CallOption) (*CreateInvitationResponse, error)
	AcceptInvitation(ctx context.Context, in *AcceptInvitationRequest, opts ...grpc.CallOption) (*AcceptInvitationResponse, error)
	RevokeInvitation(ctx context.Context, in *RevokeInvitationRequest, opts ...grpc.CallOption) (*RevokeInvitationResponse, error)
	ListEntityInvitations(ctx context.Context, in *ListEntityInvitationsRequest, opts ...grpc.CallOption) (*ListInvitationsResponse, error)
	ListMyInvitations(ctx context.Context, in *ListMyInvitationsRequest, opts ...grpc.CallOption) (*ListInvitationsResponse, error)
}

type invitationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInvitationServiceClient(cc grpc.ClientConnInterface) InvitationServiceClient {
	return &invitationServiceClient{cc: cc}
}

func (c *invitationServiceClient) CreateInvitation(ctx context.Context, in *CreateInvitationRequest, opts ...grpc.CallOption) (*CreateInvitationResponse, error) {
	return invoke[CreateInvitationResponse](ctx, c.cc, InvitationServiceName, "CreateInvitation", in, opts)
}

func (c *invitationServiceClient) AcceptInvitation(ctx context.Context, in *AcceptInvitationRequest, opts ...grpc.CallOption) (*AcceptInvitationResponse, error) {
	return invoke[AcceptInvitationResponse](ctx, c.cc, InvitationServiceName, "AcceptInvitation", in, opts)
}

func (c *invitationServiceClient) RevokeInvitation(ctx context.Context, in *RevokeInvitationRequest, opts ...grpc.CallOption) (*RevokeInvitationResponse, error) {
	return invoke[RevokeInvitationResponse](ctx, c.cc, InvitationServiceName, "RevokeInvitation", in, opts)
}

func (c *invitationServiceClient) ListEntityInvitations(ctx context.Context, in *ListEntityInvitationsRequest, opts ...grpc.CallOption) (*ListInvitationsResponse, error) {
	return invoke[ListInvitationsResponse](ctx, c.cc, InvitationServiceName, "ListEntityInvitations", in, opts)
}

func (c *invitationServiceClient) ListMyInvitations(ctx context.Context, in *ListMyInvitationsRequest, opts ...grpc.CallOption) (*ListInvitationsResponse, error) {
	return invoke[ListInvitationsResponse](ctx, c.cc, InvitationServiceName, "ListMyInvitations", in, opts)
}
