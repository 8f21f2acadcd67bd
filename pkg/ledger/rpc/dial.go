package rpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc/ledgerpb"
)

// ServerOptions mirrors pkg/cluster/server.Config's connection-tuning
// fields, scoped to what a 2PC node needs.
type ServerOptions struct {
	MaxConcurrentRPCs int
	KeepAliveInterval time.Duration
	KeepAliveTimeout  time.Duration
}

// DefaultServerOptions returns sensible defaults for a single-node
// participant or coordinator listener.
func DefaultServerOptions() ServerOptions {
	return ServerOptions{
		MaxConcurrentRPCs: 100,
		KeepAliveInterval: 30 * time.Second,
		KeepAliveTimeout:  10 * time.Second,
	}
}

// NewServer builds a grpc.Server. Clients select ledgerbank's JSON
// codec per call via grpc.CallContentSubtype(ledgerpb.CodecName); the
// server resolves it from the encoding registry that codec.go populates
// in its init(). gzip response compression is available for large
// responses such as DumpDecisionLog.
func NewServer(opts ServerOptions) *grpc.Server {
	return grpc.NewServer(
		grpc.MaxConcurrentStreams(uint32(opts.MaxConcurrentRPCs)),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    opts.KeepAliveInterval,
			Timeout: opts.KeepAliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             opts.KeepAliveInterval / 2,
			PermitWithoutStream: true,
		}),
	)
}

// Dial opens a client connection to target using ledgerbank's JSON
// codec and a keepalive ping matching NewServer's enforcement policy.
func Dial(ctx context.Context, target string) (*grpc.ClientConn, error) {
	return grpc.DialContext(ctx, target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(ledgerpb.CodecName)),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                15 * time.Second,
			Timeout:             10 * time.Second,
			PermitWithoutStream: true,
		}),
	)
}
