package participant

import (
	"context"
	"testing"
	"time"

	"github.com/mnohosten/ledgerbank/pkg/ledger/chaos"
	"github.com/mnohosten/ledgerbank/pkg/ledger/store"
)

func newTestParticipant(t *testing.T) *Participant {
	t.Helper()
	bs, err := store.New(t.TempDir() + "/alice.balance")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return New("alice", bs, chaos.New(0))
}

func TestInitializeAccountIdempotent(t *testing.T) {
	p := newTestParticipant(t)

	ok, err := p.InitializeAccount(100)
	if err != nil || !ok {
		t.Fatalf("InitializeAccount: ok=%v err=%v", ok, err)
	}
	bal, err := p.GetBalance()
	if err != nil || bal != 100 {
		t.Fatalf("GetBalance after init: bal=%v err=%v", bal, err)
	}

	ok, err = p.InitializeAccount(100)
	if err != nil || !ok {
		t.Fatalf("second InitializeAccount: ok=%v err=%v", ok, err)
	}
}

func TestPrepareCommit(t *testing.T) {
	p := newTestParticipant(t)
	if _, err := p.InitializeAccount(100); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	ok, err := p.Prepare(ctx, "txn1", -40)
	if err != nil || !ok {
		t.Fatalf("Prepare: ok=%v err=%v", ok, err)
	}

	ok, err = p.Commit(ctx, "txn1")
	if err != nil || !ok {
		t.Fatalf("Commit: ok=%v err=%v", ok, err)
	}

	bal, err := p.GetBalance()
	if err != nil || bal != 60 {
		t.Fatalf("GetBalance after commit: bal=%v err=%v", bal, err)
	}
}

func TestPrepareInsufficientFunds(t *testing.T) {
	p := newTestParticipant(t)
	if _, err := p.InitializeAccount(10); err != nil {
		t.Fatal(err)
	}

	ok, err := p.Prepare(context.Background(), "txn1", -50)
	if err != nil {
		t.Fatalf("Prepare error: %v", err)
	}
	if ok {
		t.Fatal("expected Prepare to vote false on insufficient funds")
	}
}

func TestPrepareAbortRestoresBalance(t *testing.T) {
	p := newTestParticipant(t)
	if _, err := p.InitializeAccount(100); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if ok, err := p.Prepare(ctx, "txn1", -40); err != nil || !ok {
		t.Fatalf("Prepare: ok=%v err=%v", ok, err)
	}
	ok, err := p.Abort(ctx, "txn1")
	if err != nil || !ok {
		t.Fatalf("Abort: ok=%v err=%v", ok, err)
	}

	bal, err := p.GetBalance()
	if err != nil || bal != 100 {
		t.Fatalf("balance should be untouched by abort: bal=%v err=%v", bal, err)
	}
}

func TestRollBackStateAfterCommit(t *testing.T) {
	p := newTestParticipant(t)
	if _, err := p.InitializeAccount(100); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if ok, err := p.Prepare(ctx, "txn1", -40); err != nil || !ok {
		t.Fatalf("Prepare: ok=%v err=%v", ok, err)
	}
	if ok, err := p.Commit(ctx, "txn1"); err != nil || !ok {
		t.Fatalf("Commit: ok=%v err=%v", ok, err)
	}

	// The coordinator calls RollBackState on a participant that already
	// committed when a sibling participant failed to commit.
	ok, err := p.RollBackState("txn1")
	if err != nil || !ok {
		t.Fatalf("RollBackState: ok=%v err=%v", ok, err)
	}
	bal, err := p.GetBalance()
	if err != nil || bal != 100 {
		t.Fatalf("balance should be restored: bal=%v err=%v", bal, err)
	}
}

func TestPrepareSelfRepairsOrphanedState(t *testing.T) {
	p := newTestParticipant(t)
	if _, err := p.InitializeAccount(100); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if ok, err := p.Prepare(ctx, "txn1", -40); err != nil || !ok {
		t.Fatalf("first Prepare: ok=%v err=%v", ok, err)
	}
	// txn1 never gets a commit/abort; a later transaction's Prepare call
	// must self-repair the orphaned PREPARED slot before proceeding.
	ok, err := p.Prepare(ctx, "txn2", -10)
	if err != nil || !ok {
		t.Fatalf("second Prepare: ok=%v err=%v", ok, err)
	}
	ok, err = p.Commit(ctx, "txn2")
	if err != nil || !ok {
		t.Fatalf("Commit txn2: ok=%v err=%v", ok, err)
	}
	bal, err := p.GetBalance()
	if err != nil || bal != 90 {
		t.Fatalf("expected balance 90 (100-10), got %v (err=%v)", bal, err)
	}
}

func TestCommitRejectsUnknownTxn(t *testing.T) {
	p := newTestParticipant(t)
	if _, err := p.InitializeAccount(100); err != nil {
		t.Fatal(err)
	}
	ok, err := p.Commit(context.Background(), "never-prepared")
	if err != nil {
		t.Fatalf("Commit error: %v", err)
	}
	if ok {
		t.Fatal("expected Commit to reject a txn that was never prepared")
	}
}

func TestIdleDurationAdvances(t *testing.T) {
	p := newTestParticipant(t)
	if p.IdleDuration() < 0 {
		t.Fatal("IdleDuration should be non-negative")
	}
	time.Sleep(5 * time.Millisecond)
	if p.IdleDuration() < 5*time.Millisecond {
		t.Fatal("IdleDuration did not advance")
	}
	if _, err := p.GetBalance(); err != nil {
		t.Fatal(err)
	}
	if p.IdleDuration() >= 5*time.Millisecond {
		t.Fatal("GetBalance should reset the activity clock")
	}
}

func TestShutdownIdempotent(t *testing.T) {
	p := newTestParticipant(t)
	msg1 := p.Shutdown()
	msg2 := p.Shutdown()
	if msg1 != msg2 {
		t.Fatalf("Shutdown should be idempotent: %q vs %q", msg1, msg2)
	}
	select {
	case <-p.Done():
	default:
		t.Fatal("Done() channel should be closed after Shutdown")
	}
}
