package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc/ledgerpb"
)

// ParticipantClient calls a remote ParticipantService over gRPC. It
// implements coordinator.Participant.
type ParticipantClient struct {
	conn   *grpc.ClientConn
	client ledgerpb.ParticipantServiceClient
}

// NewParticipantClient wraps an established connection to a participant.
func NewParticipantClient(conn *grpc.ClientConn) *ParticipantClient {
	return &ParticipantClient{conn: conn, client: ledgerpb.NewParticipantServiceClient(conn)}
}

func (c *ParticipantClient) InitializeAccount(ctx context.Context, initial float64) (bool, error) {
	resp, err := c.client.InitializeAccount(ctx, &ledgerpb.InitializeAccountRequest{InitialBalance: initial})
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *ParticipantClient) GetBalance(ctx context.Context) (float64, error) {
	resp, err := c.client.GetBalance(ctx, &ledgerpb.Empty{})
	if err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (c *ParticipantClient) SetSimulationCase(ctx context.Context, n int) (bool, error) {
	resp, err := c.client.SimulationCase(ctx, &ledgerpb.SimulationCaseRequest{SimulationCase: int32(n)})
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *ParticipantClient) Prepare(ctx context.Context, txnID string, delta float64) (bool, error) {
	resp, err := c.client.Prepare(ctx, &ledgerpb.PrepareRequest{TxnID: txnID, Delta: delta})
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *ParticipantClient) Commit(ctx context.Context, txnID string) (bool, error) {
	resp, err := c.client.Commit(ctx, &ledgerpb.TxnRequest{TxnID: txnID})
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *ParticipantClient) Abort(ctx context.Context, txnID string) (bool, error) {
	resp, err := c.client.Abort(ctx, &ledgerpb.TxnRequest{TxnID: txnID})
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *ParticipantClient) RollBackState(ctx context.Context, txnID string) (bool, error) {
	resp, err := c.client.RollBackState(ctx, &ledgerpb.TxnRequest{TxnID: txnID})
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *ParticipantClient) IsAlive(ctx context.Context) (bool, error) {
	resp, err := c.client.IsAlive(ctx, &ledgerpb.Empty{})
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *ParticipantClient) Shutdown(ctx context.Context) (string, error) {
	resp, err := c.client.Shutdown(ctx, &ledgerpb.Empty{})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Close tears down the underlying connection.
func (c *ParticipantClient) Close() error { return c.conn.Close() }
