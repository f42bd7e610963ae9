package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EntityServiceName is the fully qualified service name. Household and business entities.
const EntityServiceName = packagePrefix + "EntityService"

// EntityServiceServer is the server API for EntityService.
type EntityServiceServer interface {
	CreateEntity(context.Context, *CreateEntityRequest) (*CreateEntityResponse, error)
	UpdateEntity(context.Context, *UpdateEntityRequest) (*UpdateEntityResponse, error)
	GetEntity(context.Context, *GetEntityRequest) (*GetEntityResponse, error)
	ListEntities(context.Context, *ListEntitiesRequest) (*ListEntitiesResponse, error)
}

// UnimplementedEntityServiceServer can be embedded to have forward compatible implementations.
type UnimplementedEntityServiceServer struct{}

func (UnimplementedEntityServiceServer) CreateEntity(context.Context, *CreateEntityRequest) (*CreateEntityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateEntity not implemented")
}

func (UnimplementedEntityServiceServer) UpdateEntity(context.Context, *UpdateEntityRequest) (*UpdateEntityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEntity not implemented")
}

func (UnimplementedEntityServiceServer) GetEntity(context.Context, *GetEntityRequest) (*GetEntityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEntity not implemented")
}

func (UnimplementedEntityServiceServer) ListEntities(context.Context, *ListEntitiesRequest) (*ListEntitiesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEntities not implemented")
}

// EntityService_ServiceDesc is the grpc.ServiceDesc for EntityService.
var EntityService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: EntityServiceName,
	HandlerType: (*EntityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(EntityServiceName, "CreateEntity", func(srv any, ctx context.Context, req *CreateEntityRequest) (any, error) {
			return srv.(EntityServiceServer).CreateEntity(ctx, req)
		}),
		unary(EntityServiceName, "UpdateEntity", func(srv any, ctx context.Context, req *UpdateEntityRequest) (any, error) {
			return srv.(EntityServiceServer).UpdateEntity(ctx, req)
		}),
		unary(EntityServiceName, "GetEntity", func(srv any, ctx context.Context, req *GetEntityRequest) (any, error) {
			return srv.(EntityServiceServer).GetEntity(ctx, req)
		}),
		unary(EntityServiceName, "ListEntities", func(srv any, ctx context.Context, req *ListEntitiesRequest) (any, error) {
			return srv.(EntityServiceServer).ListEntities(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ours/ledger/v1/entity",
}

func RegisterEntityServiceServer(s grpc.ServiceRegistrar, srv EntityServiceServer) {
	s.RegisterService(&EntityService_ServiceDesc, srv)
}

// EntityServiceClient is the client API for EntityService.
type EntityServiceClient interface {
	CreateEntity(ctx context.Context, in *CreateEntityRequest, opts ...grpc.CallOption) (*CreateEntityResponse, error)
	UpdateEntity(ctx context.Context, in *UpdateEntityRequest, opts ...grpc.CallOption) (*UpdateEntityResponse, error)
	GetEntity(ctx context.Context, in *GetEntityRequest, opts ...grpc.CallOption) (*GetEntityResponse, error)
	ListEntities(ctx context.Context, in *ListEntitiesRequest, opts ...grpc.CallOption) (*ListEntitiesResponse, error)
}

type entityServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEntityServiceClient(cc grpc.ClientConnInterface) EntityServiceClient {
	return &entityServiceClient{cc: cc}
}

func (c *entityServiceClient) CreateEntity(ctx context.Context, in *CreateEntityRequest, opts ...grpc.CallOption) (*CreateEntityResponse, error) {
	return invoke[CreateEntityResponse](ctx, c.cc, EntityServiceName, "CreateEntity", in, opts)
}

func (c *entityServiceClient) UpdateEntity(ctx context.Context, in *UpdateEntityRequest, opts ...grpc.CallOption) (*UpdateEntityResponse, error) {
	return invoke[UpdateEntityResponse](ctx, c.cc, EntityServiceName, "UpdateEntity", in, opts)
}

func (c *entityServiceClient) GetEntity(ctx context.Context, in *GetEntityRequest, opts ...grpc.CallOption) (*GetEntityResponse, error) {
	return invoke[GetEntityResponse](ctx, c.cc, EntityServiceName, "GetEntity", in, opts)
}

func (c *entityServiceClient) ListEntities(ctx context.Context, in *ListEntitiesRequest, opts ...grpc.CallOption) (*ListEntitiesResponse, error) {
	return invoke[ListEntitiesResponse](ctx, c.cc, EntityServiceName, "ListEntities", in, opts)
}
