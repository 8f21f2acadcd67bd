package participant

import (
	"context"
	"sync"
	"time"
)

// InactivityMonitor watches a Participant for silence and, on firing,
// either gives up (if the coordinator is unreachable) or runs the
// recovery handshake against it. Grounded on the ticker+stop-channel
// shape of pkg/auth's session cleanup routine and the reset-on-activity
// timer in pkg/replication's replica set.
type InactivityMonitor struct {
	participant *Participant
	coordinator CoordinatorCaller
	threshold   time.Duration
	probeTimeout time.Duration
	checkEvery  time.Duration

	mu      sync.Mutex
	stopped bool
	stopCh  chan struct{}
}

// NewInactivityMonitor creates a monitor that fires after threshold of
// silence on participant, probing coordinator with a short-lived
// liveness check.
func NewInactivityMonitor(p *Participant, coordinator CoordinatorCaller, threshold time.Duration) *InactivityMonitor {
	checkEvery := threshold / 10
	if checkEvery <= 0 {
		checkEvery = 100 * time.Millisecond
	}
	return &InactivityMonitor{
		participant:  p,
		coordinator:  coordinator,
		threshold:    threshold,
		probeTimeout: 2 * time.Second,
		checkEvery:   checkEvery,
		stopCh:       make(chan struct{}),
	}
}

// Start launches the monitor's background goroutine.
func (m *InactivityMonitor) Start() {
	go m.run()
}

// Stop halts the monitor. Safe to call more than once.
func (m *InactivityMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return
	}
	m.stopped = true
	close(m.stopCh)
}

func (m *InactivityMonitor) run() {
	ticker := time.NewTicker(m.checkEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if m.participant.IdleDuration() >= m.threshold {
				if m.fire() {
					return
				}
			}
		case <-m.stopCh:
			return
		case <-m.participant.Done():
			return
		}
	}
}

// fire runs one inactivity-triggered cycle. It returns true if the
// participant has shut itself down and the monitor should stop.
func (m *InactivityMonitor) fire() bool {
	ctx, cancel := context.WithTimeout(context.Background(), m.probeTimeout)
	defer cancel()

	alive, err := m.coordinator.IsAlive(ctx)
	if err != nil || !alive {
		m.participant.Shutdown()
		return true
	}

	m.runRecovery(ctx)
	return false
}

// runRecovery selects the transaction to recover, queries the
// coordinator for its outcome, and reconciles local state: PREPARED and
// COMMITTED commits; PREPARED and ABORTED aborts then rolls back;
// COMMITTED locally but ABORTED by the coordinator rolls back; ABORTED
// locally needs nothing. An unreachable coordinator counts as ABORTED.
func (m *InactivityMonitor) runRecovery(ctx context.Context) {
	p := m.participant

	p.mu.Lock()
	var txnID string
	var localPhase Phase
	switch {
	case p.pending != nil:
		txnID = p.pending.txnID
		localPhase = p.phase
	case p.prevTxn != "":
		entry, ok := p.decisionLog[p.prevTxn]
		if !ok || entry.verified {
			p.mu.Unlock()
			return
		}
		txnID = p.prevTxn
		if entry.outcome == OutcomeCommitted {
			localPhase = PhaseCommitted
		} else {
			localPhase = PhaseAborted
		}
	default:
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	outcome, err := m.coordinator.HandleRecoveringNode(ctx, txnID, p.id)
	if err != nil {
		// Unreachable coordinator: presumed-abort.
		outcome = string(OutcomeAborted)
	}

	switch {
	case localPhase == PhasePrepared && outcome == string(OutcomeCommitted):
		_, _ = p.Commit(ctx, txnID)
	case localPhase == PhasePrepared && outcome == string(OutcomeAborted):
		_, _ = p.Abort(ctx, txnID)
		_, _ = p.RollBackState(txnID)
	case localPhase == PhaseCommitted && outcome == string(OutcomeAborted):
		_, _ = p.RollBackState(txnID)
	case localPhase == PhaseAborted:
		// no action
	}

	p.markVerified(txnID)
}
