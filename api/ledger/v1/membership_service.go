package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MembershipServiceName is the fully qualified service name. Entity membership lookups.
const MembershipServiceName = packagePrefix + "MembershipService"

// MembershipServiceServer is the server API for MembershipService.
type MembershipServiceServer interface {
	GetMembership(context.Context, *GetMembershipRequest) (*GetMembershipResponse, error)
	RequireOwnerMembership(context.Context, *GetMembershipRequest) (*GetMembershipResponse, error)
	ListMembers(context.Context, *ListMembersRequest) (*ListMembersResponse, error)
}

// UnimplementedMembershipServiceServer can be embedded to have forward compatible implementations.
type UnimplementedMembershipServiceServer struct{}

func (UnimplementedMembershipServiceServer) GetMembership(context.Context, *GetMembershipRequest) (*GetMembershipResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMembership not implemented")
}

func (UnimplementedMembershipServiceServer) RequireOwnerMembership(context.Context, *GetMembershipRequest) (*GetMembershipResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequireOwnerMembership not implemented")
}

func (UnimplementedMembershipServiceServer) ListMembers(context.Context, *ListMembersRequest) (*ListMembersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMembers not implemented")
}

// MembershipService_ServiceDesc is the grpc.ServiceDesc for MembershipService.
var MembershipService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: MembershipServiceName,
	HandlerType: (*MembershipServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MembershipServiceName, "GetMembership", func(srv any, ctx context.Context, req *GetMembershipRequest) (any, error) {
			return srv.(MembershipServiceServer).GetMembership(ctx, req)
		}),
		unary(MembershipServiceName, "RequireOwnerMembership", func(srv any, ctx context.Context, req *GetMembershipRequest) (any, error) {
			return srv.(MembershipServiceServer).RequireOwnerMembership(ctx, req)
		}),
		unary(MembershipServiceName, "ListMembers", func(srv any, ctx context.Context, req *ListMembersRequest) (any, error) {
			return srv.(MembershipServiceServer).ListMembers(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ours/ledger/v1/membership",
}

func RegisterMembershipServiceServer(s grpc.ServiceRegistrar, srv MembershipServiceServer) {
	s.RegisterService(&MembershipService_ServiceDesc, srv)
}

// MembershipServiceClient is the client API for MembershipService.
type MembershipServiceClient interface {
	GetMembership(ctx context.Context, in *GetMembershipRequest, opts ...grpc.CallOption) (*GetMembershipResponse, error)
	RequireOwnerMembership(ctx context.Context, in *GetMembershipRequest, opts ...grpc.CallOption) (*GetMembershipResponse, error)
	ListMembers(ctx context.Context, in *ListMembersRequest, opts ...grpc.CallOption) (*ListMembersResponse, error)
}

type membershipServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMembershipServiceClient(cc grpc.ClientConnInterface) MembershipServiceClient {
	return &membershipServiceClient{cc: cc}
}

func (c *membershipServiceClient) GetMembership(ctx context.Context, in *GetMembershipRequest, opts ...grpc.CallOption) (*GetMembershipResponse, error) {
	return invoke[GetMembershipResponse](ctx, c.cc, MembershipServiceName, "GetMembership", in, opts)
}

func (c *membershipServiceClient) RequireOwnerMembership(ctx context.Context, in *GetMembershipRequest, opts ...grpc.CallOption) (*GetMembershipResponse, error) {
	return invoke[GetMembershipResponse](ctx, c.cc, MembershipServiceName, "RequireOwnerMembership", in, opts)
}

func (c *membershipServiceClient) ListMembers(ctx context.Context, in *ListMembersRequest, opts ...grpc.CallOption) (*ListMembersResponse, error) {
	return invoke[ListMembersResponse](ctx, c.cc, MembershipServiceName, "ListMembers", in, opts)
}
