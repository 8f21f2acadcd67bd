// Package participant implements the per-account 2PC state machine
// described by the ledger service: IDLE -> PREPARED -> COMMITTED/ABORTED,
// backed by a durable balance file and a rollback snapshot.
package participant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mnohosten/ledgerbank/pkg/ledger/chaos"
	"github.com/mnohosten/ledgerbank/pkg/ledger/store"
)

// Phase is the participant's current place in the 2PC state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePrepared
	PhaseCommitted
	PhaseAborted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhasePrepared:
		return "PREPARED"
	case PhaseCommitted:
		return "COMMITTED"
	case PhaseAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// Outcome is a finalised transaction result, as recorded in the
// participant's own decision log for recovery purposes.
type Outcome string

const (
	OutcomeCommitted Outcome = "COMMITTED"
	OutcomeAborted   Outcome = "ABORTED"
)

// pending captures the in-flight transaction a PREPARED participant is
// holding a promise for.
type pending struct {
	txnID string
	delta float64
}

// snapshot is the balance observed by prepare() before any write, used
// to undo a later commit if the coordinator aborts.
type snapshot struct {
	txnID   string
	balance float64
}

// decisionEntry is one row of the participant's own recovery log.
type decisionEntry struct {
	outcome  Outcome
	verified bool
}

// CoordinatorCaller is the subset of the coordinator's RPC surface a
// participant needs to run its inactivity-triggered recovery handshake.
type CoordinatorCaller interface {
	IsAlive(ctx context.Context) (bool, error)
	HandleRecoveringNode(ctx context.Context, txnID, account string) (string, error)
}

// Participant is one account-holding 2PC participant.
type Participant struct {
	id    string
	store *store.BalanceStore
	fault *chaos.Injector

	mu           sync.Mutex
	phase        Phase
	pending      *pending
	snapshot     *snapshot
	decisionLog  map[string]*decisionEntry
	prevTxn      string
	lastActivity time.Time

	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// New creates a Participant identified by id, persisting its balance to
// the file backed by bs.
func New(id string, bs *store.BalanceStore, fault *chaos.Injector) *Participant {
	if fault == nil {
		fault = chaos.New(0)
	}
	return &Participant{
		id:           id,
		store:        bs,
		fault:        fault,
		decisionLog:  make(map[string]*decisionEntry),
		lastActivity: time.Now(),
		shutdownCh:   make(chan struct{}),
	}
}

// ID returns the participant's identifier.
func (p *Participant) ID() string { return p.id }

// touch records RPC activity, resetting the inactivity clock.
func (p *Participant) touch() {
	p.mu.Lock()
	p.lastActivity = time.Now()
	p.mu.Unlock()
}

// IdleDuration reports how long it has been since the last serviced RPC.
func (p *Participant) IdleDuration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return time.Since(p.lastActivity)
}

// InitializeAccount writes initial to the balance store unless the
// current value already equals it. Idempotent; does not touch
// transaction state (I4 scope: this never runs mid-transaction in the
// supported topology).
func (p *Participant) InitializeAccount(initial float64) (bool, error) {
	p.touch()

	current, ok, err := p.store.Read()
	if err != nil {
		return false, err
	}
	if ok && current == initial {
		return true, nil
	}
	if err := p.store.Write(initial); err != nil {
		return false, err
	}
	return true, nil
}

// GetBalance returns the stored balance, or 0 if missing.
func (p *Participant) GetBalance() (float64, error) {
	p.touch()

	v, ok, err := p.store.Read()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return v, nil
}

// SimulationCase installs a fault-injection mode for later prepare/commit
// calls. Test hook only.
func (p *Participant) SimulationCase(n int) bool {
	p.fault.Set(n)
	return true
}

// Prepare is Phase 1 of 2PC. See package participant's invariants
// I1-I4: it always leaves a rollback snapshot behind before a true
// response is possible, and self-repairs an orphaned PREPARED slot left
// by a transaction the coordinator gave up on.
func (p *Participant) Prepare(ctx context.Context, txnID string, delta float64) (bool, error) {
	p.touch()

	p.mu.Lock()
	switch p.phase {
	case PhasePrepared:
		// Orphaned PREPARED from an earlier, now-abandoned transaction:
		// self-repair by restoring the snapshot before taking on the
		// new one.
		if p.snapshot != nil {
			if err := p.restoreSnapshotLocked(); err != nil {
				p.mu.Unlock()
				return false, err
			}
		}
		p.clearContextLocked()
	case PhaseCommitted, PhaseAborted:
		// This transaction arrives too late relative to a finalised
		// earlier one.
		p.mu.Unlock()
		return false, nil
	}

	p.phase = PhasePrepared
	p.pending = &pending{txnID: txnID, delta: delta}
	balance, ok, err := p.store.Read()
	if err != nil {
		p.mu.Unlock()
		return false, err
	}
	p.snapshot = &snapshot{txnID: txnID, balance: balance}
	p.mu.Unlock()

	p.fault.Wait(ctx, chaos.PhasePrepare)
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if !ok {
		return false, nil
	}
	if delta < 0 && -delta > balance {
		return false, nil
	}
	return true, nil
}

// Commit is Phase 2 of 2PC's commit path. It logs COMMITTED to the
// participant's own recovery log only after the balance write succeeds,
// so a crash mid-commit never advertises an outcome it did not apply
// (see SPEC_FULL.md's Open Question resolution).
func (p *Participant) Commit(ctx context.Context, txnID string) (bool, error) {
	p.touch()

	p.mu.Lock()
	if p.phase != PhasePrepared || p.pending == nil || p.pending.txnID != txnID {
		p.mu.Unlock()
		return false, nil
	}
	newBalance := 0.0
	cur, ok, err := p.store.Read()
	if err != nil {
		p.mu.Unlock()
		return false, err
	}
	if ok {
		newBalance = cur
	}
	newBalance += p.pending.delta
	p.mu.Unlock()

	p.fault.Wait(ctx, chaos.PhaseFinalize)
	if err := ctx.Err(); err != nil {
		// Too slow: the coordinator has already stopped waiting. Leave
		// the PREPARED slot and snapshot in place so the inactivity
		// monitor's self-repair or a later Prepare() resolves it.
		return false, nil
	}

	if err := p.store.Write(newBalance); err != nil {
		return false, fmt.Errorf("participant %s: commit write: %w", p.id, err)
	}

	p.mu.Lock()
	p.decisionLog[txnID] = &decisionEntry{outcome: OutcomeCommitted, verified: false}
	p.prevTxn = txnID
	// Snapshot is kept, not cleared: the coordinator may still need
	// RollBackState(txnID) if a sibling participant failed to commit.
	// It is superseded the next time Prepare() takes on a new txn.
	p.phase = PhaseIdle
	p.pending = nil
	p.mu.Unlock()

	return true, nil
}

// Abort is Phase 2's abort path: clears the PREPARED slot without
// touching the balance.
func (p *Participant) Abort(ctx context.Context, txnID string) (bool, error) {
	p.touch()

	p.mu.Lock()
	if p.phase != PhasePrepared || p.pending == nil || p.pending.txnID != txnID {
		p.mu.Unlock()
		return false, nil
	}
	p.mu.Unlock()

	p.fault.Wait(ctx, chaos.PhaseFinalize)
	if err := ctx.Err(); err != nil {
		return false, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase != PhasePrepared || p.pending == nil || p.pending.txnID != txnID {
		return false, nil
	}
	p.decisionLog[txnID] = &decisionEntry{outcome: OutcomeAborted, verified: false}
	p.prevTxn = txnID
	p.clearContextLocked()
	return true, nil
}

// RollBackState restores the balance captured by the matching rollback
// snapshot. Used by the coordinator when a commit succeeded on some
// participants but the overall transaction must be undone, and by a
// participant's own recovery handshake.
func (p *Participant) RollBackState(txnID string) (bool, error) {
	p.touch()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.snapshot == nil || p.snapshot.txnID != txnID {
		return false, nil
	}
	if err := p.restoreSnapshotLocked(); err != nil {
		return false, err
	}
	p.clearContextLocked()
	return true, nil
}

// restoreSnapshotLocked writes the current snapshot's balance back to
// the store. Caller must hold p.mu.
func (p *Participant) restoreSnapshotLocked() error {
	return p.store.Write(p.snapshot.balance)
}

// clearContextLocked resets the transaction context to IDLE. Caller
// must hold p.mu.
func (p *Participant) clearContextLocked() {
	p.phase = PhaseIdle
	p.pending = nil
	p.snapshot = nil
}

// IsAlive is a liveness probe.
func (p *Participant) IsAlive() bool { return true }

// Shutdown signals the run loop to stop; returns once signalled
// (idempotent).
func (p *Participant) Shutdown() string {
	p.shutdownOnce.Do(func() { close(p.shutdownCh) })
	return "Shutdown initiated"
}

// Done is closed once Shutdown has been called.
func (p *Participant) Done() <-chan struct{} { return p.shutdownCh }

// markVerified flags a decision log entry as reconciled with the
// coordinator.
func (p *Participant) markVerified(txnID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.decisionLog[txnID]; ok {
		e.verified = true
	}
}
