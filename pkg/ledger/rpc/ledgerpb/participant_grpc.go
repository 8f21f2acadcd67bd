package ledgerpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ParticipantServiceClient is the client API for ParticipantService, as
// protoc-gen-go-grpc would emit it from ledger.proto.
type ParticipantServiceClient interface {
	InitializeAccount(ctx context.Context, in *InitializeAccountRequest, opts ...grpc.CallOption) (*BoolResponse, error)
	SimulationCase(ctx context.Context, in *SimulationCaseRequest, opts ...grpc.CallOption) (*BoolResponse, error)
	GetBalance(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*BalanceResponse, error)
	Prepare(ctx context.Context, in *PrepareRequest, opts ...grpc.CallOption) (*BoolResponse, error)
	Commit(ctx context.Context, in *TxnRequest, opts ...grpc.CallOption) (*BoolResponse, error)
	Abort(ctx context.Context, in *TxnRequest, opts ...grpc.CallOption) (*BoolResponse, error)
	RollBackState(ctx context.Context, in *TxnRequest, opts ...grpc.CallOption) (*BoolResponse, error)
	IsAlive(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*BoolResponse, error)
	Shutdown(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ShutdownResponse, error)
}

type participantServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewParticipantServiceClient wraps a grpc.ClientConnInterface.
func NewParticipantServiceClient(cc grpc.ClientConnInterface) ParticipantServiceClient {
	return &participantServiceClient{cc}
}

func (c *participantServiceClient) InitializeAccount(ctx context.Context, in *InitializeAccountRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	out := new(BoolResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.ParticipantService/InitializeAccount", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participantServiceClient) SimulationCase(ctx context.Context, in *SimulationCaseRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	out := new(BoolResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.ParticipantService/SimulationCase", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participantServiceClient) GetBalance(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*BalanceResponse, error) {
	out := new(BalanceResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.ParticipantService/GetBalance", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participantServiceClient) Prepare(ctx context.Context, in *PrepareRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	out := new(BoolResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.ParticipantService/Prepare", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participantServiceClient) Commit(ctx context.Context, in *TxnRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	out := new(BoolResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.ParticipantService/Commit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participantServiceClient) Abort(ctx context.Context, in *TxnRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	out := new(BoolResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.ParticipantService/Abort", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participantServiceClient) RollBackState(ctx context.Context, in *TxnRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	out := new(BoolResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.ParticipantService/RollBackState", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participantServiceClient) IsAlive(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*BoolResponse, error) {
	out := new(BoolResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.ParticipantService/IsAlive", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participantServiceClient) Shutdown(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ShutdownResponse, error) {
	out := new(ShutdownResponse)
	if err := c.cc.Invoke(ctx, "/ledgerpb.ParticipantService/Shutdown", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ParticipantServiceServer is the server API for ParticipantService.
type ParticipantServiceServer interface {
	InitializeAccount(context.Context, *InitializeAccountRequest) (*BoolResponse, error)
	SimulationCase(context.Context, *SimulationCaseRequest) (*BoolResponse, error)
	GetBalance(context.Context, *Empty) (*BalanceResponse, error)
	Prepare(context.Context, *PrepareRequest) (*BoolResponse, error)
	Commit(context.Context, *TxnRequest) (*BoolResponse, error)
	Abort(context.Context, *TxnRequest) (*BoolResponse, error)
	RollBackState(context.Context, *TxnRequest) (*BoolResponse, error)
	IsAlive(context.Context, *Empty) (*BoolResponse, error)
	Shutdown(context.Context, *Empty) (*ShutdownResponse, error)
	mustEmbedUnimplementedParticipantServiceServer()
}

// UnimplementedParticipantServiceServer must be embedded for forward
// compatibility, following the same pattern as
// pb.UnimplementedTransactionServiceServer in pkg/cluster/server.
type UnimplementedParticipantServiceServer struct{}

func (UnimplementedParticipantServiceServer) InitializeAccount(context.Context, *InitializeAccountRequest) (*BoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InitializeAccount not implemented")
}
func (UnimplementedParticipantServiceServer) SimulationCase(context.Context, *SimulationCaseRequest) (*BoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulationCase not implemented")
}
func (UnimplementedParticipantServiceServer) GetBalance(context.Context, *Empty) (*BalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedParticipantServiceServer) Prepare(context.Context, *PrepareRequest) (*BoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Prepare not implemented")
}
func (UnimplementedParticipantServiceServer) Commit(context.Context, *TxnRequest) (*BoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Commit not implemented")
}
func (UnimplementedParticipantServiceServer) Abort(context.Context, *TxnRequest) (*BoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Abort not implemented")
}
func (UnimplementedParticipantServiceServer) RollBackState(context.Context, *TxnRequest) (*BoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RollBackState not implemented")
}
func (UnimplementedParticipantServiceServer) IsAlive(context.Context, *Empty) (*BoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsAlive not implemented")
}
func (UnimplementedParticipantServiceServer) Shutdown(context.Context, *Empty) (*ShutdownResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Shutdown not implemented")
}
func (UnimplementedParticipantServiceServer) mustEmbedUnimplementedParticipantServiceServer() {}

// RegisterParticipantServiceServer registers srv with s.
func RegisterParticipantServiceServer(s grpc.ServiceRegistrar, srv ParticipantServiceServer) {
	s.RegisterService(&ParticipantService_ServiceDesc, srv)
}

func _ParticipantService_InitializeAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitializeAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipantServiceServer).InitializeAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.ParticipantService/InitializeAccount"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParticipantServiceServer).InitializeAccount(ctx, req.(*InitializeAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipantService_SimulationCase_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulationCaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipantServiceServer).SimulationCase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.ParticipantService/SimulationCase"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParticipantServiceServer).SimulationCase(ctx, req.(*SimulationCaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipantService_GetBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipantServiceServer).GetBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.ParticipantService/GetBalance"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParticipantServiceServer).GetBalance(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipantService_Prepare_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PrepareRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipantServiceServer).Prepare(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.ParticipantService/Prepare"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParticipantServiceServer).Prepare(ctx, req.(*PrepareRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipantService_Commit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TxnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipantServiceServer).Commit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.ParticipantService/Commit"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParticipantServiceServer).Commit(ctx, req.(*TxnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipantService_Abort_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TxnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipantServiceServer).Abort(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.ParticipantService/Abort"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParticipantServiceServer).Abort(ctx, req.(*TxnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipantService_RollBackState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TxnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipantServiceServer).RollBackState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.ParticipantService/RollBackState"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParticipantServiceServer).RollBackState(ctx, req.(*TxnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipantService_IsAlive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipantServiceServer).IsAlive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.ParticipantService/IsAlive"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParticipantServiceServer).IsAlive(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipantService_Shutdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipantServiceServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/ledgerpb.ParticipantService/Shutdown"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParticipantServiceServer).Shutdown(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ParticipantService_ServiceDesc is the grpc.ServiceDesc for
// ParticipantService, as protoc-gen-go-grpc would emit it.
var ParticipantService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ledgerpb.ParticipantService",
	HandlerType: (*ParticipantServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "InitializeAccount", Handler: _ParticipantService_InitializeAccount_Handler},
		{MethodName: "SimulationCase", Handler: _ParticipantService_SimulationCase_Handler},
		{MethodName: "GetBalance", Handler: _ParticipantService_GetBalance_Handler},
		{MethodName: "Prepare", Handler: _ParticipantService_Prepare_Handler},
		{MethodName: "Commit", Handler: _ParticipantService_Commit_Handler},
		{MethodName: "Abort", Handler: _ParticipantService_Abort_Handler},
		{MethodName: "RollBackState", Handler: _ParticipantService_RollBackState_Handler},
		{MethodName: "IsAlive", Handler: _ParticipantService_IsAlive_Handler},
		{MethodName: "Shutdown", Handler: _ParticipantService_Shutdown_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger.proto",
}
