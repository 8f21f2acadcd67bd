package rpc

import (
	"context"

	"github.com/mnohosten/ledgerbank/pkg/ledger/coordinator"
	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc/ledgerpb"
)

// CoordinatorServer answers CoordinatorService RPCs against a local
// coordinator.Coordinator.
type CoordinatorServer struct {
	ledgerpb.UnimplementedCoordinatorServiceServer
	c *coordinator.Coordinator
}

// NewCoordinatorServer wraps c for registration with a grpc.Server.
func NewCoordinatorServer(c *coordinator.Coordinator) *CoordinatorServer {
	return &CoordinatorServer{c: c}
}

func (s *CoordinatorServer) InitializeNode(ctx context.Context, req *ledgerpb.InitializeNodeRequest) (*ledgerpb.BoolResponse, error) {
	ok, err := s.c.InitializeNode(ctx, req.Account, req.Balance)
	if err != nil {
		return nil, err
	}
	return &ledgerpb.BoolResponse{Ok: ok}, nil
}

func (s *CoordinatorServer) SetSimulationCase(ctx context.Context, req *ledgerpb.SimulationCaseRequest) (*ledgerpb.SimulationCaseMapResponse, error) {
	results := s.c.SetSimulationCase(ctx, int(req.SimulationCase))
	return &ledgerpb.SimulationCaseMapResponse{Results: results}, nil
}

func (s *CoordinatorServer) GetAccountBalance(ctx context.Context, req *ledgerpb.AccountRequest) (*ledgerpb.BalanceResponse, error) {
	bal, found := s.c.GetAccountBalance(ctx, req.Account)
	return &ledgerpb.BalanceResponse{Balance: bal, Found: found}, nil
}

func (s *CoordinatorServer) ExecuteTransaction(ctx context.Context, req *ledgerpb.ExecuteTransactionRequest) (*ledgerpb.ExecuteTransactionResponse, error) {
	outcome := s.c.ExecuteTransaction(ctx, req.TxnID, req.Deltas)
	return &ledgerpb.ExecuteTransactionResponse{Outcome: outcome}, nil
}

func (s *CoordinatorServer) HandleRecoveringNode(ctx context.Context, req *ledgerpb.RecoveringNodeRequest) (*ledgerpb.OutcomeResponse, error) {
	outcome := s.c.HandleRecoveringNode(req.TxnID, req.Account)
	return &ledgerpb.OutcomeResponse{Outcome: outcome}, nil
}

func (s *CoordinatorServer) IsAlive(ctx context.Context, _ *ledgerpb.Empty) (*ledgerpb.BoolResponse, error) {
	return &ledgerpb.BoolResponse{Ok: s.c.IsAlive()}, nil
}

func (s *CoordinatorServer) Shutdown(ctx context.Context, _ *ledgerpb.Empty) (*ledgerpb.ShutdownResponse, error) {
	s.c.Shutdown(ctx)
	return &ledgerpb.ShutdownResponse{Message: "Coordinator shutdown complete"}, nil
}

func (s *CoordinatorServer) DumpDecisionLog(ctx context.Context, _ *ledgerpb.Empty) (*ledgerpb.DecisionLogResponse, error) {
	return &ledgerpb.DecisionLogResponse{Entries: s.c.DumpDecisionLog()}, nil
}
