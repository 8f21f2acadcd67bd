package participant

import (
	"context"
	"testing"
	"time"

	"github.com/mnohosten/ledgerbank/pkg/ledger/chaos"
	"github.com/mnohosten/ledgerbank/pkg/ledger/store"
)

// fakeCoordinator is a hand-rolled CoordinatorCaller, grounded on the
// same mock-interface style as pkg/distributed/two_phase_commit_test.go.
type fakeCoordinator struct {
	alive   bool
	outcome string
}

func (f *fakeCoordinator) IsAlive(ctx context.Context) (bool, error) { return f.alive, nil }
func (f *fakeCoordinator) HandleRecoveringNode(ctx context.Context, txnID, account string) (string, error) {
	return f.outcome, nil
}

func TestInactivityMonitorRecoversOrphanedPrepare(t *testing.T) {
	bs, err := store.New(t.TempDir() + "/A.balance")
	if err != nil {
		t.Fatal(err)
	}
	p := New("A", bs, chaos.New(0))
	if _, err := p.InitializeAccount(200); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if ok, err := p.Prepare(ctx, "txn1", -100); err != nil || !ok {
		t.Fatalf("Prepare: ok=%v err=%v", ok, err)
	}

	coord := &fakeCoordinator{alive: true, outcome: string(OutcomeAborted)}
	m := NewInactivityMonitor(p, coord, 10*time.Millisecond)
	m.runRecovery(ctx)

	bal, err := p.GetBalance()
	if err != nil || bal != 200 {
		t.Fatalf("expected balance restored to 200, got %v (err=%v)", bal, err)
	}
	if p.phase != PhaseIdle {
		t.Fatalf("expected phase IDLE after recovery, got %v", p.phase)
	}
}

func TestInactivityMonitorShutsDownWhenCoordinatorUnreachable(t *testing.T) {
	bs, err := store.New(t.TempDir() + "/A.balance")
	if err != nil {
		t.Fatal(err)
	}
	p := New("A", bs, chaos.New(0))
	coord := &fakeCoordinator{alive: false}
	m := NewInactivityMonitor(p, coord, 10*time.Millisecond)

	if stopped := m.fire(); !stopped {
		t.Fatal("expected fire() to report the monitor should stop")
	}
	select {
	case <-p.Done():
	default:
		t.Fatal("expected participant to have shut down")
	}
}

func TestInactivityMonitorStopIdempotent(t *testing.T) {
	bs, err := store.New(t.TempDir() + "/A.balance")
	if err != nil {
		t.Fatal(err)
	}
	p := New("A", bs, chaos.New(0))
	m := NewInactivityMonitor(p, &fakeCoordinator{alive: true}, time.Hour)
	m.Start()
	m.Stop()
	m.Stop() // must not panic
}
