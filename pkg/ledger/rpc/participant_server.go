// Package rpc adapts the in-process participant.Participant and
// coordinator.Coordinator types onto the gRPC services declared in
// pkg/ledger/rpc/ledgerpb, in both directions: *_server.go wraps a local
// type to answer incoming RPCs, *_client.go wraps a ledgerpb client to
// call a remote one.
package rpc

import (
	"context"

	"github.com/mnohosten/ledgerbank/pkg/ledger/participant"
	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc/ledgerpb"
)

// ParticipantServer answers ParticipantService RPCs against a local
// participant.Participant.
type ParticipantServer struct {
	ledgerpb.UnimplementedParticipantServiceServer
	p *participant.Participant
}

// NewParticipantServer wraps p for registration with a grpc.Server.
func NewParticipantServer(p *participant.Participant) *ParticipantServer {
	return &ParticipantServer{p: p}
}

func (s *ParticipantServer) InitializeAccount(ctx context.Context, req *ledgerpb.InitializeAccountRequest) (*ledgerpb.BoolResponse, error) {
	ok, err := s.p.InitializeAccount(req.InitialBalance)
	if err != nil {
		return nil, err
	}
	return &ledgerpb.BoolResponse{Ok: ok}, nil
}

func (s *ParticipantServer) SimulationCase(ctx context.Context, req *ledgerpb.SimulationCaseRequest) (*ledgerpb.BoolResponse, error) {
	return &ledgerpb.BoolResponse{Ok: s.p.SimulationCase(int(req.SimulationCase))}, nil
}

func (s *ParticipantServer) GetBalance(ctx context.Context, _ *ledgerpb.Empty) (*ledgerpb.BalanceResponse, error) {
	bal, err := s.p.GetBalance()
	if err != nil {
		return nil, err
	}
	return &ledgerpb.BalanceResponse{Balance: bal, Found: true}, nil
}

func (s *ParticipantServer) Prepare(ctx context.Context, req *ledgerpb.PrepareRequest) (*ledgerpb.BoolResponse, error) {
	ok, err := s.p.Prepare(ctx, req.TxnID, req.Delta)
	if err != nil {
		return nil, err
	}
	return &ledgerpb.BoolResponse{Ok: ok}, nil
}

func (s *ParticipantServer) Commit(ctx context.Context, req *ledgerpb.TxnRequest) (*ledgerpb.BoolResponse, error) {
	ok, err := s.p.Commit(ctx, req.TxnID)
	if err != nil {
		return nil, err
	}
	return &ledgerpb.BoolResponse{Ok: ok}, nil
}

func (s *ParticipantServer) Abort(ctx context.Context, req *ledgerpb.TxnRequest) (*ledgerpb.BoolResponse, error) {
	ok, err := s.p.Abort(ctx, req.TxnID)
	if err != nil {
		return nil, err
	}
	return &ledgerpb.BoolResponse{Ok: ok}, nil
}

func (s *ParticipantServer) RollBackState(ctx context.Context, req *ledgerpb.TxnRequest) (*ledgerpb.BoolResponse, error) {
	ok, err := s.p.RollBackState(req.TxnID)
	if err != nil {
		return nil, err
	}
	return &ledgerpb.BoolResponse{Ok: ok}, nil
}

func (s *ParticipantServer) IsAlive(ctx context.Context, _ *ledgerpb.Empty) (*ledgerpb.BoolResponse, error) {
	return &ledgerpb.BoolResponse{Ok: s.p.IsAlive()}, nil
}

func (s *ParticipantServer) Shutdown(ctx context.Context, _ *ledgerpb.Empty) (*ledgerpb.ShutdownResponse, error) {
	return &ledgerpb.ShutdownResponse{Message: s.p.Shutdown()}, nil
}
