package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mnohosten/ledgerbank/pkg/ledger/chaos"
	"github.com/mnohosten/ledgerbank/pkg/ledger/participant"
	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc"
	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc/ledgerpb"
	"github.com/mnohosten/ledgerbank/pkg/ledger/store"
	"github.com/mnohosten/ledgerbank/pkg/ledger/topology"
)

func main() {
	account := flag.String("account", "", "Account name this participant owns (must match topology.yaml)")
	topologyPath := flag.String("topology", "./topology.yaml", "Path to the cluster topology YAML file")
	dataDir := flag.String("data-dir", "./data", "Directory holding this account's balance file")
	faultDelay := flag.Duration("fault-delay", 10*time.Second, "Delay applied when a simulation_case fault is armed")
	flag.Parse()

	if *account == "" {
		fmt.Fprintln(os.Stderr, "❌ -account is required")
		os.Exit(1)
	}

	topo, err := topology.Load(*topologyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load topology: %v\n", err)
		os.Exit(1)
	}
	node, ok := topo.Participants[*account]
	if !ok {
		fmt.Fprintf(os.Stderr, "❌ Account %q is not listed in %s\n", *account, *topologyPath)
		os.Exit(1)
	}

	bs, err := store.New(*dataDir + "/" + *account + ".balance")
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to open balance store: %v\n", err)
		os.Exit(1)
	}

	p := participant.New(*account, bs, chaos.New(*faultDelay))

	coordConn, err := rpc.Dial(context.Background(), topo.Coordinator.Addr())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to dial coordinator at %s: %v\n", topo.Coordinator.Addr(), err)
		os.Exit(1)
	}
	defer coordConn.Close()
	coordClient := rpc.NewCoordinatorClient(coordConn)

	monitor := participant.NewInactivityMonitor(p, coordClient, topo.Inactivity.Participant)
	monitor.Start()
	defer monitor.Stop()

	grpcServer := rpc.NewServer(rpc.DefaultServerOptions())
	ledgerpb.RegisterParticipantServiceServer(grpcServer, rpc.NewParticipantServer(p))

	addr := fmt.Sprintf("%s:%d", node.Host, node.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to listen on %s: %v\n", addr, err)
		os.Exit(1)
	}

	go func() {
		fmt.Printf("🏦 Participant %q listening on %s\n", *account, addr)
		if err := grpcServer.Serve(listener); err != nil {
			fmt.Fprintf(os.Stderr, "❌ gRPC server error: %v\n", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-p.Done():
	}
	fmt.Printf("\n⚠️  Shutting down participant %q\n", *account)
	grpcServer.GracefulStop()
}
