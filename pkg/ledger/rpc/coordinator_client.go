package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc/ledgerpb"
)

// CoordinatorClient calls a remote CoordinatorService over gRPC. It
// implements participant.CoordinatorCaller for use by a participant's
// inactivity monitor.
type CoordinatorClient struct {
	conn   *grpc.ClientConn
	client ledgerpb.CoordinatorServiceClient
}

// NewCoordinatorClient wraps an established connection to the
// coordinator.
func NewCoordinatorClient(conn *grpc.ClientConn) *CoordinatorClient {
	return &CoordinatorClient{conn: conn, client: ledgerpb.NewCoordinatorServiceClient(conn)}
}

func (c *CoordinatorClient) IsAlive(ctx context.Context) (bool, error) {
	resp, err := c.client.IsAlive(ctx, &ledgerpb.Empty{})
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *CoordinatorClient) HandleRecoveringNode(ctx context.Context, txnID, account string) (string, error) {
	resp, err := c.client.HandleRecoveringNode(ctx, &ledgerpb.RecoveringNodeRequest{TxnID: txnID, Account: account})
	if err != nil {
		return "", err
	}
	return resp.Outcome, nil
}

// Close tears down the underlying connection.
func (c *CoordinatorClient) Close() error { return c.conn.Close() }
