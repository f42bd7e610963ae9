package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BudgetServiceName is the fully qualified service name. Budgets and their line items.
const BudgetServiceName = packagePrefix + "BudgetService"

// BudgetServiceServer is the server API for BudgetService.
type BudgetServiceServer interface {
	CreateBudget(context.Context, *CreateBudgetRequest) (*CreateBudgetResponse, error)
	ListBudgets(context.Context, *ListBudgetsRequest) (*ListBudgetsResponse, error)
	GetBudget(context.Context, *GetBudgetRequest) (*GetBudgetResponse, error)
	AddIncomeSource(context.Context, *AddIncomeSourceRequest) (*LineItemResponse, error)
	UpdateIncomeSource(context.Context, *UpdateIncomeSourceRequest) (*LineItemResponse, error)
	RemoveIncomeSource(context.Context, *RemoveIncomeSourceRequest) (*LineItemResponse, error)
	AddRecurringExpense(context.Context, *AddRecurringExpenseRequest) (*LineItemResponse, error)
	RemoveRecurringExpense(context.Context, *RemoveRecurringExpenseRequest) (*LineItemResponse, error)
}

// UnimplementedBudgetServiceServer can be embedded to have forward compatible implementations.
type UnimplementedBudgetServiceServer struct{}

func (UnimplementedBudgetServiceServer) CreateBudget(context.Context, *CreateBudgetRequest) (*CreateBudgetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBudget not implemented")
}

func (UnimplementedBudgetServiceServer) ListBudgets(context.Context, *ListBudgetsRequest) (*ListBudgetsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBudgets not implemented")
}

func (UnimplementedBudgetServiceServer) GetBudget(context.Context, *GetBudgetRequest) (*GetBudgetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBudget not implemented")
}

func (UnimplementedBudgetServiceServer) AddIncomeSource(context.Context, *AddIncomeSourceRequest) (*LineItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddIncomeSource not implemented")
}

func (UnimplementedBudgetServiceServer) UpdateIncomeSource(context.Context, *UpdateIncomeSourceRequest) (*LineItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateIncomeSource not implemented")
}

func (UnimplementedBudgetServiceServer) RemoveIncomeSource(context.Context, *RemoveIncomeSourceRequest) (*LineItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveIncomeSource not implemented")
}

func (UnimplementedBudgetServiceServer) AddRecurringExpense(context.Context, *AddRecurringExpenseRequest) (*LineItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddRecurringExpense not implemented")
}

func (UnimplementedBudgetServiceServer) RemoveRecurringExpense(context.Context, *RemoveRecurringExpenseRequest) (*LineItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveRecurringExpense not implemented")
}

// BudgetService_ServiceDesc is the grpc.ServiceDesc for BudgetService.
var BudgetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: BudgetServiceName,
	HandlerType: (*BudgetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(BudgetServiceName, "CreateBudget", func(srv any, ctx context.Context, req *CreateBudgetRequest) (any, error) {
			return srv.(BudgetServiceServer).CreateBudget(ctx, req)
		}),
		unary(BudgetServiceName, "ListBudgets", func(srv any, ctx context.Context, req *ListBudgetsRequest) (any, error) {
			return srv.(BudgetServiceServer).ListBudgets(ctx, req)
		}),
		unary(BudgetServiceName, "GetBudget", func(srv any, ctx context.Context, req *GetBudgetRequest) (any, error) {
			return srv.(BudgetServiceServer).GetBudget(ctx, req)
		}),
		unary(BudgetServiceName, "AddIncomeSource", func(srv any, ctx context.Context, req *AddIncomeSourceRequest) (any, error) {
			return srv.(BudgetServiceServer).AddIncomeSource(ctx, req)
		}),
		unary(BudgetServiceName, "UpdateIncomeSource", func(srv any, ctx context.Context, req *UpdateIncomeSourceRequest) (any, error) {
			return srv.(BudgetServiceServer).UpdateIncomeSource(ctx, req)
		}),
		unary(BudgetServiceName, "RemoveIncomeSource", func(srv any, ctx context.Context, req *RemoveIncomeSourceRequest) (any, error) {
			return srv.(BudgetServiceServer).RemoveIncomeSource(ctx, req)
		}),
		unary(BudgetServiceName, "AddRecurringExpense", func(srv any, ctx context.Context, req *AddRecurringExpenseRequest) (any, error) {
			return srv.(BudgetServiceServer).AddRecurringExpense(ctx, req)
		}),
		unary(BudgetServiceName, "RemoveRecurringExpense", func(srv any, ctx context.Context, req *RemoveRecurringExpenseRequest) (any, error) {
			return srv.(BudgetServiceServer).RemoveRecurringExpense(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ours/ledger/v1/budget",
}

func RegisterBudgetServiceServer(s grpc.ServiceRegistrar, srv BudgetServiceServer) {
	s.RegisterService(&BudgetService_ServiceDesc, srv)
}

// BudgetServiceClient is the client API for BudgetService.
type BudgetServiceClient interface {
	CreateBudget(ctx context.Context, in *CreateBudgetRequest, opts ...grpc.CallOption) (*CreateBudgetResponse, error)
	ListBudgets(ctx context.Context, in *ListBudgetsRequest, opts ...grpc.CallOption) (*ListBudgetsResponse, error)
	GetBudget(ctx context.Context, in *GetBudgetRequest, opts ...grpc.CallOption) (*GetBudgetResponse, error)
	AddIncomeSource(ctx context.Context, in *AddIncomeSourceRequest, opts ...grpc.CallOption) (*LineItemResponse, error)
	UpdateIncomeSource(ctx context.Context, in *UpdateIncomeSourceRequest, opts ...grpc.CallOption) (*LineItemResponse, error)
	RemoveIncomeSource(ctx context.Context, in *RemoveIncomeSourceRequest, opts ...grpc.CallOption) (*LineItemResponse, error)
	AddRecurringExpense(ctx context.Context, in *AddRecurringExpenseRequest, opts ...grpc.CallOption) (*LineItemResponse, error)
	RemoveRecurringExpense(ctx context.Context, in *RemoveRecurringExpenseRequest, opts ...grpc.CallOption) (*LineItemResponse, error)
}

type budgetServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBudgetServiceClient(cc grpc.ClientConnInterface) BudgetServiceClient {
	return &budgetServiceClient{cc: cc}
}

func (c *budgetServiceClient) CreateBudget(ctx context.Context, in *CreateBudgetRequest, opts ...grpc.CallOption) (*CreateBudgetResponse, error) {
	return invoke[CreateBudgetResponse](ctx, c.cc, BudgetServiceName, "CreateBudget", in, opts)
}

func (c *budgetServiceClient) ListBudgets(ctx context.Context, in *ListBudgetsRequest, opts ...grpc.CallOption) (*ListBudgetsResponse, error) {
	return invoke[ListBudgetsResponse](ctx, c.cc, BudgetServiceName, "ListBudgets", in, opts)
}

func (c *budgetServiceClient) GetBudget(ctx context.Context, in *GetBudgetRequest, opts ...grpc.CallOption) (*GetBudgetResponse, error) {
	return invoke[GetBudgetResponse](ctx, c.cc, BudgetServiceName, "GetBudget", in, opts)
}

func (c *budgetServiceClient) AddIncomeSource(ctx context.Context, in *AddIncomeSourceRequest, opts ...grpc.CallOption) (*LineItemResponse, error) {
	return invoke[LineItemResponse](ctx, c.cc, BudgetServiceName, "AddIncomeSource", in, opts)
}

func (c *budgetServiceClient) UpdateIncomeSource(ctx context.Context, in *UpdateIncomeSourceRequest, opts ...grpc.CallOption) (*LineItemResponse, error) {
	return invoke[LineItemResponse](ctx, c.cc, BudgetServiceName, "UpdateIncomeSource", in, opts)
}

func (c *budgetServiceClient) RemoveIncomeSource(ctx context.Context, in *RemoveIncomeSourceRequest, opts ...grpc.CallOption) (*LineItemResponse, error) {
	return invoke[LineItemResponse](ctx, c.cc, BudgetServiceName, "RemoveIncomeSource", in, opts)
}

func (c *budgetServiceClient) AddRecurringExpense(ctx context.Context, in *AddRecurringExpenseRequest, opts ...grpc.CallOption) (*LineItemResponse, error) {
	return invoke[LineItemResponse](ctx, c.cc, BudgetServiceName, "AddRecurringExpense", in, opts)
}

func (c *budgetServiceClient) RemoveRecurringExpense(ctx context.Context, in *RemoveRecurringExpenseRequest, opts ...grpc.CallOption) (*LineItemResponse, error) {
	return invoke[LineItemResponse](ctx, c.cc, BudgetServiceName, "RemoveRecurringExpense", in, opts)
}
