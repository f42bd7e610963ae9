package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DocumentServiceName is the fully qualified service name. Uploaded document records.
const DocumentServiceName = packagePrefix + "DocumentService"

// DocumentServiceServer is the server API for DocumentService.
type DocumentServiceServer interface {
	RecordUploadedDocument(context.Context, *RecordUploadedDocumentRequest) (*RecordUploadedDocumentResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
}

// UnimplementedDocumentServiceServer can be embedded to have forward compatible implementations.
type UnimplementedDocumentServiceServer struct{}

func (UnimplementedDocumentServiceServer) RecordUploadedDocument(context.Context, *RecordUploadedDocumentRequest) (*RecordUploadedDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordUploadedDocument not implemented")
}

func (UnimplementedDocumentServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDocuments not implemented")
}

// DocumentService_ServiceDesc is the grpc.ServiceDesc for DocumentService.
var DocumentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: DocumentServiceName,
	HandlerType: (*DocumentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(DocumentServiceName, "RecordUploadedDocument", func(srv any, ctx context.Context, req *RecordUploadedDocumentRequest) (any, error) {
			return srv.(DocumentServiceServer).RecordUploadedDocument(ctx, req)
		}),
		unary(DocumentServiceName, "ListDocuments", func(srv any, ctx context.Context, req *ListDocumentsRequest) (any, error) {
			return srv.(DocumentServiceServer).ListDocuments(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ours/ledger/v1/document",
}

func RegisterDocumentServiceServer(s grpc.ServiceRegistrar, srv DocumentServiceServer) {
	s.RegisterService(&DocumentService_ServiceDesc, srv)
}

// DocumentServiceClient is the client API for DocumentService.
type DocumentServiceClient interface {
	RecordUploadedDocument(ctx context.Context, in *RecordUploadedDocumentRequest, opts ...grpc.CallOption) (*RecordUploadedDocumentResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
}

type documentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentServiceClient(cc grpc.ClientConnInterface) DocumentServiceClient {
	return &documentServiceClient{cc: cc}
}

func (c *documentServiceClient) RecordUploadedDocument(ctx context.Context, in *RecordUploadedDocumentRequest, opts ...grpc.CallOption) (*RecordUploadedDocumentResponse, error) {
	return invoke[RecordUploadedDocumentResponse](ctx, c.cc, DocumentServiceName, "RecordUploadedDocument", in, opts)
}

func (c *documentServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	return invoke[ListDocumentsResponse](ctx, c.cc, DocumentServiceName, "ListDocuments", in, opts)
}
