package coordinator

import (
	"context"
	"testing"
	"time"

	"github.com/mnohosten/ledgerbank/pkg/ledger/chaos"
	"github.com/mnohosten/ledgerbank/pkg/ledger/participant"
	"github.com/mnohosten/ledgerbank/pkg/ledger/store"
)

// inProcessParticipant adapts a *participant.Participant directly to the
// Participant interface, skipping gRPC — the scenarios below (S1-S4 and
// S6; S5 lives in pkg/ledger/participant) only care about 2PC semantics across process-internal
// boundaries, not wire transport.
type inProcessParticipant struct {
	p *participant.Participant
}

func (a inProcessParticipant) InitializeAccount(ctx context.Context, initial float64) (bool, error) {
	return a.p.InitializeAccount(initial)
}
func (a inProcessParticipant) GetBalance(ctx context.Context) (float64, error) { return a.p.GetBalance() }
func (a inProcessParticipant) SetSimulationCase(ctx context.Context, n int) (bool, error) {
	return a.p.SimulationCase(n), nil
}
func (a inProcessParticipant) Prepare(ctx context.Context, txnID string, delta float64) (bool, error) {
	return a.p.Prepare(ctx, txnID, delta)
}
func (a inProcessParticipant) Commit(ctx context.Context, txnID string) (bool, error) {
	return a.p.Commit(ctx, txnID)
}
func (a inProcessParticipant) Abort(ctx context.Context, txnID string) (bool, error) {
	return a.p.Abort(ctx, txnID)
}
func (a inProcessParticipant) RollBackState(ctx context.Context, txnID string) (bool, error) {
	return a.p.RollBackState(txnID)
}
func (a inProcessParticipant) IsAlive(ctx context.Context) (bool, error) { return a.p.IsAlive(), nil }
func (a inProcessParticipant) Shutdown(ctx context.Context) (string, error) {
	return a.p.Shutdown(), nil
}

func newScenarioParticipant(t *testing.T, account string, balance float64) (*participant.Participant, inProcessParticipant) {
	t.Helper()
	bs, err := store.New(t.TempDir() + "/" + account + ".balance")
	if err != nil {
		t.Fatalf("store.New(%s): %v", account, err)
	}
	p := participant.New(account, bs, chaos.New(50*time.Millisecond))
	if _, err := p.InitializeAccount(balance); err != nil {
		t.Fatalf("InitializeAccount(%s): %v", account, err)
	}
	return p, inProcessParticipant{p}
}

func TestScenarioS1CommitCommit(t *testing.T) {
	_, a := newScenarioParticipant(t, "A", 200)
	_, b := newScenarioParticipant(t, "B", 300)

	cfg := DefaultConfig()
	c := New(cfg)
	c.AddParticipant("A", a)
	c.AddParticipant("B", b)

	ctx := context.Background()
	if outcome := c.ExecuteTransaction(ctx, "txn1", map[string]float64{"A": -100, "B": 100}); outcome != OutcomeCommittedMsg {
		t.Fatalf("txn1: got %q", outcome)
	}
	if bal, _ := c.GetAccountBalance(ctx, "A"); bal != 100 {
		t.Fatalf("A after txn1: %v", bal)
	}
	if bal, _ := c.GetAccountBalance(ctx, "B"); bal != 400 {
		t.Fatalf("B after txn1: %v", bal)
	}

	if outcome := c.ExecuteTransaction(ctx, "txn2", map[string]float64{"A": 20, "B": 20}); outcome != OutcomeCommittedMsg {
		t.Fatalf("txn2: got %q", outcome)
	}
	if bal, _ := c.GetAccountBalance(ctx, "A"); bal != 120 {
		t.Fatalf("A after txn2: %v", bal)
	}
	if bal, _ := c.GetAccountBalance(ctx, "B"); bal != 420 {
		t.Fatalf("B after txn2: %v", bal)
	}
}

func TestScenarioS2AbortThenCommit(t *testing.T) {
	_, a := newScenarioParticipant(t, "A", 90)
	_, b := newScenarioParticipant(t, "B", 50)

	c := New(DefaultConfig())
	c.AddParticipant("A", a)
	c.AddParticipant("B", b)

	ctx := context.Background()
	if outcome := c.ExecuteTransaction(ctx, "txn1", map[string]float64{"A": -100, "B": 100}); outcome != OutcomeAbortedMsg {
		t.Fatalf("txn1: got %q", outcome)
	}
	if bal, _ := c.GetAccountBalance(ctx, "A"); bal != 90 {
		t.Fatalf("A unchanged after abort: %v", bal)
	}
	if bal, _ := c.GetAccountBalance(ctx, "B"); bal != 50 {
		t.Fatalf("B unchanged after abort: %v", bal)
	}

	if outcome := c.ExecuteTransaction(ctx, "txn2", map[string]float64{"A": 18, "B": 18}); outcome != OutcomeCommittedMsg {
		t.Fatalf("txn2: got %q", outcome)
	}
	if bal, _ := c.GetAccountBalance(ctx, "A"); bal != 108 {
		t.Fatalf("A after txn2: %v", bal)
	}
	if bal, _ := c.GetAccountBalance(ctx, "B"); bal != 68 {
		t.Fatalf("B after txn2: %v", bal)
	}
}

func TestScenarioS3PrepareTimeoutAborts(t *testing.T) {
	_, a := newScenarioParticipant(t, "A", 200)
	_, b := newScenarioParticipant(t, "B", 300)

	cfg := DefaultConfig()
	cfg.PrepareTimeout = 20 * time.Millisecond
	c := New(cfg)
	c.AddParticipant("A", a)
	c.AddParticipant("B", b)

	ctx := context.Background()
	if _, err := a.SetSimulationCase(ctx, 1); err != nil { // A delays prepare past T_p
		t.Fatal(err)
	}

	if outcome := c.ExecuteTransaction(ctx, "txn1", map[string]float64{"A": -100, "B": 100}); outcome != OutcomeAbortedMsg {
		t.Fatalf("txn1: got %q", outcome)
	}
	if bal, _ := c.GetAccountBalance(ctx, "A"); bal != 200 {
		t.Fatalf("A unchanged: %v", bal)
	}
	if bal, _ := c.GetAccountBalance(ctx, "B"); bal != 300 {
		t.Fatalf("B unchanged: %v", bal)
	}
}

func TestScenarioS4CommitTimeoutRollsBackCommittedSibling(t *testing.T) {
	_, a := newScenarioParticipant(t, "A", 200)
	_, b := newScenarioParticipant(t, "B", 300)

	cfg := DefaultConfig()
	cfg.CommitTimeout = 20 * time.Millisecond
	c := New(cfg)
	c.AddParticipant("A", a)
	c.AddParticipant("B", b)

	ctx := context.Background()
	if _, err := b.SetSimulationCase(ctx, 2); err != nil { // B delays commit past T_c
		t.Fatal(err)
	}

	if outcome := c.ExecuteTransaction(ctx, "txn1", map[string]float64{"A": -100, "B": 100}); outcome != OutcomeAbortedMsg {
		t.Fatalf("txn1: got %q", outcome)
	}
	// A prepared and committed before B's commit timed out; the
	// coordinator must have rolled A back to its pre-transaction balance.
	if bal, _ := c.GetAccountBalance(ctx, "A"); bal != 200 {
		t.Fatalf("A should be rolled back to 200, got %v", bal)
	}
}

func TestScenarioS6ShutdownRejectsNewTransactions(t *testing.T) {
	_, a := newScenarioParticipant(t, "A", 200)
	_, b := newScenarioParticipant(t, "B", 300)

	c := New(DefaultConfig())
	c.AddParticipant("A", a)
	c.AddParticipant("B", b)
	c.Shutdown(context.Background())

	if outcome := c.ExecuteTransaction(context.Background(), "txnX", map[string]float64{"A": -1, "B": 1}); outcome != ShuttingDownMsg {
		t.Fatalf("expected shutting-down message, got %q", outcome)
	}
	if bal, _ := c.GetAccountBalance(context.Background(), "A"); bal != 200 {
		t.Fatalf("A must be untouched: %v", bal)
	}
}
