package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/mnohosten/ledgerbank/pkg/ledger/coordinator"
	"github.com/mnohosten/ledgerbank/pkg/ledger/metrics"
	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc"
	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc/ledgerpb"
	"github.com/mnohosten/ledgerbank/pkg/ledger/topology"
)

func main() {
	topologyPath := flag.String("topology", "./topology.yaml", "Path to the cluster topology YAML file")
	metricsAddr := flag.String("metrics-addr", ":9090", "Address the Prometheus /metrics endpoint listens on")
	flag.Parse()

	topo, err := topology.Load(*topologyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load topology: %v\n", err)
		os.Exit(1)
	}

	cfg := coordinator.DefaultConfig()
	cfg.PrepareTimeout = topo.Timeouts.Prepare
	cfg.CommitTimeout = topo.Timeouts.Commit
	cfg.InactivityThreshold = topo.Inactivity.Coordinator

	coord := coordinator.New(cfg)

	accounts := make([]string, 0, len(topo.Participants))
	for account := range topo.Participants {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	for _, account := range accounts {
		node := topo.Participants[account]
		conn, err := rpc.Dial(context.Background(), node.Addr())
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to dial participant %q at %s: %v\n", account, node.Addr(), err)
			os.Exit(1)
		}
		defer conn.Close()
		coord.AddParticipant(account, rpc.NewParticipantClient(conn))
		fmt.Printf("🔗 Registered participant %q at %s\n", account, node.Addr())
	}

	coord.StartInactivityMonitor()

	collector := metrics.New()
	coord.SetMetricsSink(collector)
	exporter := metrics.NewExporter(collector, "ledgerbank_coordinator")
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", exporter.Handler())
		fmt.Printf("📈 Metrics listening on %s\n", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
			fmt.Fprintf(os.Stderr, "❌ Metrics server error: %v\n", err)
		}
	}()

	grpcServer := rpc.NewServer(rpc.DefaultServerOptions())
	ledgerpb.RegisterCoordinatorServiceServer(grpcServer, rpc.NewCoordinatorServer(coord))

	listener, err := net.Listen("tcp", topo.Coordinator.Addr())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to listen on %s: %v\n", topo.Coordinator.Addr(), err)
		os.Exit(1)
	}

	go func() {
		fmt.Printf("🏛️  Coordinator listening on %s\n", topo.Coordinator.Addr())
		if err := grpcServer.Serve(listener); err != nil {
			fmt.Fprintf(os.Stderr, "❌ gRPC server error: %v\n", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	fmt.Println("\n⚠️  Shutting down coordinator")
	coord.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
