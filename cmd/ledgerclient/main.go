// Command ledgerclient is a small CLI for driving a running coordinator:
// initializing accounts, submitting transfers, and reading balances.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"google.golang.org/grpc"

	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc"
	"github.com/mnohosten/ledgerbank/pkg/ledger/rpc/ledgerpb"
	"github.com/mnohosten/ledgerbank/pkg/ledger/topology"
)

func main() {
	topologyPath := flag.String("topology", "./topology.yaml", "Path to the cluster topology YAML file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	topo, err := topology.Load(*topologyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load topology: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := rpc.Dial(ctx, topo.Coordinator.Addr())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to dial coordinator at %s: %v\n", topo.Coordinator.Addr(), err)
		os.Exit(1)
	}
	defer conn.Close()
	client := ledgerpb.NewCoordinatorServiceClient(conn)

	switch args[0] {
	case "init":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: ledgerclient init <account> <balance>")
			os.Exit(1)
		}
		balance, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Invalid balance %q: %v\n", args[2], err)
			os.Exit(1)
		}
		resp, err := client.InitializeNode(ctx, &ledgerpb.InitializeNodeRequest{Account: args[1], Balance: balance})
		must(err)
		fmt.Printf("✅ InitializeNode(%s, %.2f) -> %v\n", args[1], balance, resp.Ok)

	case "balance":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: ledgerclient balance <account>")
			os.Exit(1)
		}
		resp, err := client.GetAccountBalance(ctx, &ledgerpb.AccountRequest{Account: args[1]})
		must(err)
		if !resp.Found {
			fmt.Printf("❓ %s: unknown account\n", args[1])
			return
		}
		fmt.Printf("💰 %s: %.2f\n", args[1], resp.Balance)

	case "transfer":
		if len(args) != 4 {
			fmt.Fprintln(os.Stderr, "usage: ledgerclient transfer <txn-id> <from-account> <to-account>:<amount>")
			os.Exit(1)
		}
		txnID, from := args[1], args[2]
		amount, err := strconv.ParseFloat(args[3][strings.LastIndex(args[3], ":")+1:], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Invalid amount in %q: %v\n", args[3], err)
			os.Exit(1)
		}
		to := args[3][:strings.LastIndex(args[3], ":")]
		resp, err := client.ExecuteTransaction(ctx, &ledgerpb.ExecuteTransactionRequest{
			TxnID: txnID,
			Deltas: map[string]float64{
				from: -amount,
				to:   amount,
			},
		})
		must(err)
		fmt.Printf("🧾 ExecuteTransaction(%s): %s\n", txnID, resp.Outcome)

	case "simulate":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: ledgerclient simulate <case-number>")
			os.Exit(1)
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Invalid case number %q: %v\n", args[1], err)
			os.Exit(1)
		}
		resp, err := client.SetSimulationCase(ctx, &ledgerpb.SimulationCaseRequest{SimulationCase: int32(n)})
		must(err)
		for account, ok := range resp.Results {
			fmt.Printf("  %s: %v\n", account, ok)
		}

	case "dump":
		resp, err := client.DumpDecisionLog(ctx, &ledgerpb.Empty{}, grpc.UseCompressor("gzip"))
		must(err)
		for txnID, outcome := range resp.Entries {
			fmt.Printf("  %s: %s\n", txnID, outcome)
		}

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ledgerclient [-topology FILE] <init|balance|transfer|simulate|dump> ...")
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
