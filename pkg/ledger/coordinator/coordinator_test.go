package coordinator

import (
	"context"
	"sync"
	"testing"
	"time"
)

// mockParticipant is a hand-rolled fake of the Participant interface,
// grounded on pkg/distributed/two_phase_commit_test.go's MockParticipant.
type mockParticipant struct {
	mu sync.Mutex

	balance float64

	prepareOK    bool
	prepareDelay time.Duration
	commitOK     bool
	commitDelay  time.Duration

	prepareCalls int
	commitCalls  int
	abortCalls   int
	rollbackCalls int
}

func newMockParticipant(balance float64) *mockParticipant {
	return &mockParticipant{balance: balance, prepareOK: true, commitOK: true}
}

func (m *mockParticipant) InitializeAccount(ctx context.Context, initial float64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balance = initial
	return true, nil
}

func (m *mockParticipant) GetBalance(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balance, nil
}

func (m *mockParticipant) SetSimulationCase(ctx context.Context, n int) (bool, error) {
	return true, nil
}

func (m *mockParticipant) Prepare(ctx context.Context, txnID string, delta float64) (bool, error) {
	m.mu.Lock()
	m.prepareCalls++
	delay, ok := m.prepareDelay, m.prepareOK
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	return ok, nil
}

func (m *mockParticipant) Commit(ctx context.Context, txnID string) (bool, error) {
	m.mu.Lock()
	m.commitCalls++
	delay, ok := m.commitDelay, m.commitOK
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	if ok {
		m.mu.Lock()
		m.balance = 0 // irrelevant to these tests, commit just needs to succeed
		m.mu.Unlock()
	}
	return ok, nil
}

func (m *mockParticipant) Abort(ctx context.Context, txnID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.abortCalls++
	return true, nil
}

func (m *mockParticipant) RollBackState(ctx context.Context, txnID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollbackCalls++
	return true, nil
}

func (m *mockParticipant) IsAlive(ctx context.Context) (bool, error) { return true, nil }

func (m *mockParticipant) Shutdown(ctx context.Context) (string, error) { return "ok", nil }

func (m *mockParticipant) calls() (prepare, commit, abort, rollback int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prepareCalls, m.commitCalls, m.abortCalls, m.rollbackCalls
}

func testCoordinator() (*Coordinator, *mockParticipant, *mockParticipant) {
	cfg := Config{PrepareTimeout: 200 * time.Millisecond, CommitTimeout: 200 * time.Millisecond, InactivityThreshold: time.Hour}
	c := New(cfg)
	a, b := newMockParticipant(100), newMockParticipant(50)
	c.AddParticipant("alice", a)
	c.AddParticipant("bob", b)
	return c, a, b
}

func TestExecuteTransactionCommits(t *testing.T) {
	c, a, b := testCoordinator()
	outcome := c.ExecuteTransaction(context.Background(), "txn1", map[string]float64{"alice": -10, "bob": 10})
	if outcome != OutcomeCommittedMsg {
		t.Fatalf("expected commit, got %q", outcome)
	}
	if _, commits, aborts, _ := a.calls(); commits != 1 || aborts != 0 {
		t.Fatalf("alice: commits=%d aborts=%d", commits, aborts)
	}
	if _, commits, aborts, _ := b.calls(); commits != 1 || aborts != 0 {
		t.Fatalf("bob: commits=%d aborts=%d", commits, aborts)
	}
}

func TestExecuteTransactionAbortsOnPrepareFailure(t *testing.T) {
	c, a, b := testCoordinator()
	b.prepareOK = false

	outcome := c.ExecuteTransaction(context.Background(), "txn1", map[string]float64{"alice": -10, "bob": 10})
	if outcome != OutcomeAbortedMsg {
		t.Fatalf("expected abort, got %q", outcome)
	}
	if _, _, aborts, _ := a.calls(); aborts != 1 {
		t.Fatalf("alice (voted yes) should have been sent abort, got %d", aborts)
	}
}

func TestExecuteTransactionPrepareTimeoutAborts(t *testing.T) {
	c, _, b := testCoordinator()
	b.prepareDelay = time.Second // longer than the 200ms PrepareTimeout

	outcome := c.ExecuteTransaction(context.Background(), "txn1", map[string]float64{"alice": -10, "bob": 10})
	if outcome != OutcomeAbortedMsg {
		t.Fatalf("expected abort on prepare timeout, got %q", outcome)
	}
}

func TestExecuteTransactionRollsBackOnCommitFailure(t *testing.T) {
	c, a, b := testCoordinator()
	b.commitOK = false

	outcome := c.ExecuteTransaction(context.Background(), "txn1", map[string]float64{"alice": -10, "bob": 10})
	if outcome != OutcomeAbortedMsg {
		t.Fatalf("expected abort, got %q", outcome)
	}
	if _, _, _, rollbacks := a.calls(); rollbacks != 1 {
		t.Fatalf("alice (committed) should have been rolled back, got %d", rollbacks)
	}
}

func TestDecisionLogWriteOnce(t *testing.T) {
	c, _, _ := testCoordinator()
	c.ExecuteTransaction(context.Background(), "txn1", map[string]float64{"alice": -10, "bob": 10})

	c.recordDecision("txn1", OutcomeAborted) // must not overwrite the already-recorded COMMITTED
	if outcome := c.HandleRecoveringNode("txn1", "alice"); outcome != string(OutcomeCommitted) {
		t.Fatalf("decision log should be write-once, got %q", outcome)
	}
}

func TestHandleRecoveringNodePresumedAbort(t *testing.T) {
	c, _, _ := testCoordinator()
	if outcome := c.HandleRecoveringNode("never-happened", "alice"); outcome != string(OutcomeAborted) {
		t.Fatalf("expected presumed abort, got %q", outcome)
	}
}

func TestShuttingDownRejectsNewTransactions(t *testing.T) {
	c, _, _ := testCoordinator()
	c.Shutdown(context.Background())

	outcome := c.ExecuteTransaction(context.Background(), "txn-after-shutdown", map[string]float64{"alice": -1, "bob": 1})
	if outcome != ShuttingDownMsg {
		t.Fatalf("expected shutting-down message, got %q", outcome)
	}
}

func TestGetAccountBalanceUnknownAccount(t *testing.T) {
	c, _, _ := testCoordinator()
	if _, ok := c.GetAccountBalance(context.Background(), "nobody"); ok {
		t.Fatal("expected unknown account lookup to fail")
	}
}
