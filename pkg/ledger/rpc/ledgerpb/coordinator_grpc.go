package ledgerpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CoordinatorServiceClient is the client API for CoordinatorService.
type CoordinatorServiceClient interface {
	InitializeNode(ctx context.Context, in *InitializeNodeRequest, opts ...grpc.CallOption) (*BoolResponse, error)
	SetSimulationCase(ctx context.Context, in *SimulationCaseRequest, opts ...grpc.CallOption) (*SimulationCaseMapResponse, error)
	GetAccountBalance(ctx context.Context, in *AccountRequest, opts ...grpc.CallOption) (*BalanceResponse, error)
	ExecuteTransaction(ctx context.Context, in *ExecuteTransactionRequest, opts ...grpc.CallOption) (*ExecuteTransactionResponse, error)
	HandleRecoveringNode(ctx context.Context, in *RecoveringNodeRequest, opts ...grpc.CallOption) (*OutcomeResponse, error)
	IsAlive(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*BoolResponse, error)
	Shutdown(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ShutdownResponse, error)
	DumpDecisionLog(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DecisionLogResponse, error)
}

type coordinatorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCoordinatorServiceClient wraps a grpc.ClientConnInterface.
func NewCoordinatorServiceClient(cc grpc.ClientConnInterface) CoordinatorServiceClient {
	return &coordinatorServiceClient{cc}
}

func (c *coordinatorServiceClient) InitializeNode(ctx context.Context, in *InitializeNodeRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	out := new(BoolResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.CoordinatorService/InitializeNode", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorServiceClient) SetSimulationCase(ctx context.Context, in *SimulationCaseRequest, opts ...grpc.CallOption) (*SimulationCaseMapResponse, error) {
	out := new(SimulationCaseMapResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.CoordinatorService/SetSimulationCase", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorServiceClient) GetAccountBalance(ctx context.Context, in *AccountRequest, opts ...grpc.CallOption) (*BalanceResponse, error) {
	out := new(BalanceResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.CoordinatorService/GetAccountBalance", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorServiceClient) ExecuteTransaction(ctx context.Context, in *ExecuteTransactionRequest, opts ...grpc.CallOption) (*ExecuteTransactionResponse, error) {
	out := new(ExecuteTransactionResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.CoordinatorService/ExecuteTransaction", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorServiceClient) HandleRecoveringNode(ctx context.Context, in *RecoveringNodeRequest, opts ...grpc.CallOption) (*OutcomeResponse, error) {
	out := new(OutcomeResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.CoordinatorService/HandleRecoveringNode", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorServiceClient) IsAlive(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*BoolResponse, error) {
	out := new(BoolResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.CoordinatorService/IsAlive", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorServiceClient) Shutdown(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ShutdownResponse, error) {
	out := new(ShutdownResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.CoordinatorService/Shutdown", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorServiceClient) DumpDecisionLog(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DecisionLogResponse, error) {
	out := new(DecisionLogResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.CoordinatorService/DumpDecisionLog", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CoordinatorServiceServer is the server API for CoordinatorService.
type CoordinatorServiceServer interface {
	InitializeNode(context.Context, *InitializeNodeRequest) (*BoolResponse, error)
	SetSimulationCase(context.Context, *SimulationCaseRequest) (*SimulationCaseMapResponse, error)
	GetAccountBalance(context.Context, *AccountRequest) (*BalanceResponse, error)
	ExecuteTransaction(context.Context, *ExecuteTransactionRequest) (*ExecuteTransactionResponse, error)
	HandleRecoveringNode(context.Context, *RecoveringNodeRequest) (*OutcomeResponse, error)
	IsAlive(context.Context, *Empty) (*BoolResponse, error)
	Shutdown(context.Context, *Empty) (*ShutdownResponse, error)
	DumpDecisionLog(context.Context, *Empty) (*DecisionLogResponse, error)
	mustEmbedUnimplementedCoordinatorServiceServer()
}

// UnimplementedCoordinatorServiceServer must be embedded for forward
// compatibility.
type UnimplementedCoordinatorServiceServer struct{}

func (UnimplementedCoordinatorServiceServer) InitializeNode(context.Context, *InitializeNodeRequest) (*BoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InitializeNode not implemented")
}
func (UnimplementedCoordinatorServiceServer) SetSimulationCase(context.Context, *SimulationCaseRequest) (*SimulationCaseMapResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetSimulationCase not implemented")
}
func (UnimplementedCoordinatorServiceServer) GetAccountBalance(context.Context, *AccountRequest) (*BalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAccountBalance not implemented")
}
func (UnimplementedCoordinatorServiceServer) ExecuteTransaction(context.Context, *ExecuteTransactionRequest) (*ExecuteTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteTransaction not implemented")
}
func (UnimplementedCoordinatorServiceServer) HandleRecoveringNode(context.Context, *RecoveringNodeRequest) (*OutcomeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HandleRecoveringNode not implemented")
}
func (UnimplementedCoordinatorServiceServer) IsAlive(context.Context, *Empty) (*BoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsAlive not implemented")
}
func (UnimplementedCoordinatorServiceServer) Shutdown(context.Context, *Empty) (*ShutdownResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Shutdown not implemented")
}
func (UnimplementedCoordinatorServiceServer) DumpDecisionLog(context.Context, *Empty) (*DecisionLogResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DumpDecisionLog not implemented")
}
func (UnimplementedCoordinatorServiceServer) mustEmbedUnimplementedCoordinatorServiceServer() {}

// RegisterCoordinatorServiceServer registers srv with s.
func RegisterCoordinatorServiceServer(s grpc.ServiceRegistrar, srv CoordinatorServiceServer) {
	s.RegisterService(&CoordinatorService_ServiceDesc, srv)
}

func _CoordinatorService_InitializeNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitializeNodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServiceServer).InitializeNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.CoordinatorService/InitializeNode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServiceServer).InitializeNode(ctx, req.(*InitializeNodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorService_SetSimulationCase_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulationCaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServiceServer).SetSimulationCase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.CoordinatorService/SetSimulationCase"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServiceServer).SetSimulationCase(ctx, req.(*SimulationCaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorService_GetAccountBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServiceServer).GetAccountBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.CoordinatorService/GetAccountBalance"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServiceServer).GetAccountBalance(ctx, req.(*AccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorService_ExecuteTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServiceServer).ExecuteTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.CoordinatorService/ExecuteTransaction"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServiceServer).ExecuteTransaction(ctx, req.(*ExecuteTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorService_HandleRecoveringNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecoveringNodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServiceServer).HandleRecoveringNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.CoordinatorService/HandleRecoveringNode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServiceServer).HandleRecoveringNode(ctx, req.(*RecoveringNodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorService_IsAlive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServiceServer).IsAlive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.CoordinatorService/IsAlive"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServiceServer).IsAlive(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorService_Shutdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServiceServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.CoordinatorService/Shutdown"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServiceServer).Shutdown(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _CoordinatorService_DumpDecisionLog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServiceServer).DumpDecisionLog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.CoordinatorService/DumpDecisionLog"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordinatorServiceServer).DumpDecisionLog(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// CoordinatorService_ServiceDesc is the grpc.ServiceDesc for
// CoordinatorService, as protoc-gen-go-grpc would emit it.
var CoordinatorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ledgerpb.CoordinatorService",
	HandlerType: (*CoordinatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "InitializeNode", Handler: _CoordinatorService_InitializeNode_Handler},
		{MethodName: "SetSimulationCase", Handler: _CoordinatorService_SetSimulationCase_Handler},
		{MethodName: "GetAccountBalance", Handler: _CoordinatorService_GetAccountBalance_Handler},
		{MethodName: "ExecuteTransaction", Handler: _CoordinatorService_ExecuteTransaction_Handler},
		{MethodName: "HandleRecoveringNode", Handler: _CoordinatorService_HandleRecoveringNode_Handler},
		{MethodName: "IsAlive", Handler: _CoordinatorService_IsAlive_Handler},
		{MethodName: "Shutdown", Handler: _CoordinatorService_Shutdown_Handler},
		{MethodName: "DumpDecisionLog", Handler: _CoordinatorService_DumpDecisionLog_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger.proto",
}
