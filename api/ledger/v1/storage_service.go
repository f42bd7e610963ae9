package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StorageServiceName is the fully qualified service name. Platform storage configuration.
const StorageServiceName = packagePrefix + "StorageService"

// StorageServiceServer is the server API for StorageService.
type StorageServiceServer interface {
	UpsertStorageConfig(context.Context, *UpsertStorageConfigRequest) (*UpsertStorageConfigResponse, error)
	GetStorageConfig(context.Context, *GetStorageConfigRequest) (*GetStorageConfigResponse, error)
}

// UnimplementedStorageServiceServer can be embedded to have forward compatible implementations.
type UnimplementedStorageServiceServer struct{}

func (UnimplementedStorageServiceServer) UpsertStorageConfig(context.Context, *UpsertStorageConfigRequest) (*UpsertStorageConfigResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertStorageConfig not implemented")
}

func (UnimplementedStorageServiceServer) GetStorageConfig(context.Context, *GetStorageConfigRequest) (*GetStorageConfigResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStorageConfig not implemented")
}

// StorageService_ServiceDesc is the grpc.ServiceDesc for StorageService.
var StorageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: StorageServiceName,
	HandlerType: (*StorageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(StorageServiceName, "UpsertStorageConfig", func(srv any, ctx context.Context, req *UpsertStorageConfigRequest) (any, error) {
			return srv.(StorageServiceServer).UpsertStorageConfig(ctx, req)
		}),
		unary(StorageServiceName, "GetStorageConfig", func(srv any, ctx context.Context, req *GetStorageConfigRequest) (any, error) {
			return srv.(StorageServiceServer).GetStorageConfig(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ours/ledger/v1/storage",
}

func RegisterStorageServiceServer(s grpc.ServiceRegistrar, srv StorageServiceServer) {
	s.RegisterService(&StorageService_ServiceDesc, srv)
}

// StorageServiceClient is the client API for StorageService.
type StorageServiceClient interface {
	UpsertStorageConfig(ctx context.Context, in *UpsertStorageConfigRequest, opts ...grpc.CallOption) (*UpsertStorageConfigResponse, error)
	GetStorageConfig(ctx context.Context, in *GetStorageConfigRequest, opts ...grpc.CallOption) (*GetStorageConfigResponse, error)
}

type storageServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStorageServiceClient(cc grpc.ClientConnInterface) StorageServiceClient {
	return &storageServiceClient{cc: cc}
}

func (c *storageServiceClient) UpsertStorageConfig(ctx context.Context, in *UpsertStorageConfigRequest, opts ...grpc.CallOption) (*UpsertStorageConfigResponse, error) {
	return invoke[UpsertStorageConfigResponse](ctx, c.cc, StorageServiceName, "UpsertStorageConfig", in, opts)
}

func (c *storageServiceClient) GetStorageConfig(ctx context.Context, in *GetStorageConfigRequest, opts ...grpc.CallOption) (*GetStorageConfigResponse, error) {
	return invoke[GetStorageConfigResponse](ctx, c.cc, StorageServiceName, "GetStorageConfig", in, opts)
}
