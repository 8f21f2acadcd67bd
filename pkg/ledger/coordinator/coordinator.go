// Package coordinator implements the 2PC coordinator's state machine:
// prepare/commit/rollback fan-out with per-RPC timeouts, a durable (for
// the process lifetime) decision log, and recovery-query handling for
// orphaned participants.
package coordinator

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Outcome is a finalised transaction result.
type Outcome string

const (
	OutcomeCommitted Outcome = "COMMITTED"
	OutcomeAborted   Outcome = "ABORTED"
)

const (
	// OutcomeCommittedMsg and OutcomeAbortedMsg are the exact strings
	// ExecuteTransaction returns to callers over the RPC surface.
	OutcomeCommittedMsg = "Transaction Committed"
	OutcomeAbortedMsg   = "Transaction Aborted"
	ShuttingDownMsg     = "Coordinator is shutting down. No new transactions are accepted."
)

// MetricsSink receives coordinator events for operational observability
// only; nothing it sees feeds back into the protocol. Implemented by
// pkg/ledger/metrics.Collector.
type MetricsSink interface {
	TransactionStarted()
	TransactionCommitted()
	TransactionAborted()
	PrepareTimeout()
	CommitTimeout()
	RecoveryHandshake()
	RecoveryPresumedAbort()
	ParticipantShutdown()
}

type noopMetricsSink struct{}

func (noopMetricsSink) TransactionStarted()    {}
func (noopMetricsSink) TransactionCommitted()  {}
func (noopMetricsSink) TransactionAborted()    {}
func (noopMetricsSink) PrepareTimeout()        {}
func (noopMetricsSink) CommitTimeout()         {}
func (noopMetricsSink) RecoveryHandshake()     {}
func (noopMetricsSink) RecoveryPresumedAbort() {}
func (noopMetricsSink) ParticipantShutdown()   {}

// Participant is everything the coordinator needs from one account's
// RPC endpoint. Implementations live in pkg/ledger/rpc (gRPC client) or,
// in tests, an in-process fake.
type Participant interface {
	InitializeAccount(ctx context.Context, initial float64) (bool, error)
	GetBalance(ctx context.Context) (float64, error)
	SetSimulationCase(ctx context.Context, n int) (bool, error)
	Prepare(ctx context.Context, txnID string, delta float64) (bool, error)
	Commit(ctx context.Context, txnID string) (bool, error)
	Abort(ctx context.Context, txnID string) (bool, error)
	RollBackState(ctx context.Context, txnID string) (bool, error)
	IsAlive(ctx context.Context) (bool, error)
	Shutdown(ctx context.Context) (string, error)
}

// Config bundles the coordinator's per-call timeouts and inactivity
// threshold.
type Config struct {
	PrepareTimeout       time.Duration
	CommitTimeout        time.Duration
	InactivityThreshold  time.Duration
}

// DefaultConfig mirrors pkg/server's DefaultConfig pattern of sensible,
// named defaults.
func DefaultConfig() Config {
	return Config{
		PrepareTimeout:      2 * time.Second,
		CommitTimeout:       2 * time.Second,
		InactivityThreshold: 30 * time.Second,
	}
}

// Coordinator maps accounts to participants and runs 2PC transactions
// across them.
type Coordinator struct {
	cfg Config

	mu           sync.RWMutex
	participants map[string]Participant
	order        []string // stable iteration order (fairness, §4.4)

	decisionMu  sync.RWMutex
	decisionLog map[string]Outcome

	shuttingDown atomic.Bool
	lastActivity atomic.Int64 // unix nano

	inflight sync.WaitGroup

	monitor *InactivityMonitor
	metrics MetricsSink
}

// New creates an empty Coordinator. Participants are registered with
// AddParticipant before any transaction is executed.
func New(cfg Config) *Coordinator {
	c := &Coordinator{
		cfg:          cfg,
		participants: make(map[string]Participant),
		decisionLog:  make(map[string]Outcome),
		metrics:      noopMetricsSink{},
	}
	c.lastActivity.Store(time.Now().UnixNano())
	c.monitor = NewInactivityMonitor(c, cfg.InactivityThreshold)
	return c
}

// SetMetricsSink wires a MetricsSink to receive transaction and recovery
// events. Optional; a Coordinator built with New reports to a no-op sink
// until this is called.
func (c *Coordinator) SetMetricsSink(sink MetricsSink) {
	if sink == nil {
		sink = noopMetricsSink{}
	}
	c.metrics = sink
}

// AddParticipant registers the participant responsible for account.
func (c *Coordinator) AddParticipant(account string, p Participant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.participants[account]; !exists {
		c.order = append(c.order, account)
		sort.Strings(c.order)
	}
	c.participants[account] = p
}

// StartInactivityMonitor launches the background idle watcher (§4.5).
func (c *Coordinator) StartInactivityMonitor() {
	c.monitor.Start()
}

func (c *Coordinator) touch() {
	c.lastActivity.Store(time.Now().UnixNano())
}

// IdleDuration reports how long it has been since the last transaction
// attempt or admin call.
func (c *Coordinator) IdleDuration() time.Duration {
	return time.Since(time.Unix(0, c.lastActivity.Load()))
}

func (c *Coordinator) participantFor(account string) (Participant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.participants[account]
	return p, ok
}

// orderedAccounts returns the registered accounts in stable order.
func (c *Coordinator) orderedAccounts() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// InitializeNode fans out account initialization to the participant
// that owns account.
func (c *Coordinator) InitializeNode(ctx context.Context, account string, balance float64) (bool, error) {
	c.touch()
	p, ok := c.participantFor(account)
	if !ok {
		return false, ErrParticipantNotFound
	}
	return p.InitializeAccount(ctx, balance)
}

// SetSimulationCase fans out the fault-injection mode to every
// registered participant, returning which ones acknowledged it.
func (c *Coordinator) SetSimulationCase(ctx context.Context, n int) map[string]bool {
	c.touch()
	accounts := c.orderedAccounts()
	results := make(map[string]bool, len(accounts))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, account := range accounts {
		account := account
		p, _ := c.participantFor(account)
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := p.SetSimulationCase(ctx, n)
			mu.Lock()
			results[account] = err == nil && ok
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results
}

// GetAccountBalance proxies to the owning participant's GetBalance.
func (c *Coordinator) GetAccountBalance(ctx context.Context, account string) (float64, bool) {
	c.touch()
	p, ok := c.participantFor(account)
	if !ok {
		return 0, false
	}
	bal, err := p.GetBalance(ctx)
	if err != nil {
		return 0, false
	}
	return bal, true
}

// callResult is the outcome of one outbound RPC, folded into a single
// ok/not-ok decision regardless of whether it failed by timeout, by
// transport error, or by an explicit false vote.
type callResult struct {
	account string
	ok      bool
}

// ExecuteTransaction runs the full 2PC protocol for txnID against the
// given per-account deltas, returning OutcomeCommittedMsg,
// OutcomeAbortedMsg or ShuttingDownMsg.
func (c *Coordinator) ExecuteTransaction(ctx context.Context, txnID string, deltas map[string]float64) string {
	if c.shuttingDown.Load() {
		return ShuttingDownMsg
	}

	c.inflight.Add(1)
	defer c.inflight.Done()
	c.touch()
	c.metrics.TransactionStarted()

	accounts := make([]string, 0, len(deltas))
	for account := range deltas {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	// Phase 1: prepare.
	prepared := map[string]bool{}
	allPrepared := true
	for _, result := range c.fanOut(ctx, accounts, c.cfg.PrepareTimeout, func(pctx context.Context, p Participant, account string) bool {
		ok, err := p.Prepare(pctx, txnID, deltas[account])
		if pctx.Err() == context.DeadlineExceeded {
			c.metrics.PrepareTimeout()
		}
		return err == nil && ok
	}) {
		if result.ok {
			prepared[result.account] = true
		} else {
			allPrepared = false
		}
	}

	if !allPrepared {
		c.abortPrepared(ctx, txnID, prepared)
		c.recordDecision(txnID, OutcomeAborted)
		c.metrics.TransactionAborted()
		return OutcomeAbortedMsg
	}

	// Phase 2: commit.
	committed := map[string]bool{}
	allCommitted := true
	for _, result := range c.fanOut(ctx, accounts, c.cfg.CommitTimeout, func(cctx context.Context, p Participant, account string) bool {
		ok, err := p.Commit(cctx, txnID)
		if cctx.Err() == context.DeadlineExceeded {
			c.metrics.CommitTimeout()
		}
		return err == nil && ok
	}) {
		if result.ok {
			committed[result.account] = true
		} else {
			allCommitted = false
		}
	}

	if !allCommitted {
		c.rollbackCommitted(ctx, txnID, committed)
		c.recordDecision(txnID, OutcomeAborted)
		c.metrics.TransactionAborted()
		return OutcomeAbortedMsg
	}

	c.recordDecision(txnID, OutcomeCommitted)
	c.metrics.TransactionCommitted()
	return OutcomeCommittedMsg
}

// fanOut invokes call against each account's participant in parallel,
// each under its own context.WithTimeout, and collects the results.
// Grounded on pkg/distributed/two_phase_commit.go's Prepare/Commit/Abort
// (waitgroup + buffered channel fan-out, one goroutine per participant).
func (c *Coordinator) fanOut(ctx context.Context, accounts []string, timeout time.Duration, call func(context.Context, Participant, string) bool) []callResult {
	results := make(chan callResult, len(accounts))
	var wg sync.WaitGroup

	for _, account := range accounts {
		account := account
		p, ok := c.participantFor(account)
		if !ok {
			results <- callResult{account: account, ok: false}
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			ok := call(callCtx, p, account)
			results <- callResult{account: account, ok: ok}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]callResult, 0, len(accounts))
	for r := range results {
		out = append(out, r)
	}
	return out
}

// abortPrepared sends abort to every account that voted YES to prepare,
// best effort.
func (c *Coordinator) abortPrepared(ctx context.Context, txnID string, prepared map[string]bool) {
	accounts := make([]string, 0, len(prepared))
	for account := range prepared {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	c.fanOut(ctx, accounts, c.cfg.PrepareTimeout, func(cctx context.Context, p Participant, account string) bool {
		ok, err := p.Abort(cctx, txnID)
		return err == nil && ok
	})
}

// rollbackCommitted sends roll_back_state to every account that
// actually committed, best effort (C3).
func (c *Coordinator) rollbackCommitted(ctx context.Context, txnID string, committed map[string]bool) {
	accounts := make([]string, 0, len(committed))
	for account := range committed {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	c.fanOut(ctx, accounts, c.cfg.CommitTimeout, func(cctx context.Context, p Participant, account string) bool {
		ok, err := p.RollBackState(cctx, txnID)
		return err == nil && ok
	})
}

// recordDecision writes decision_log[txnID] exactly once (C1). A
// second write attempt for the same txnID with a different outcome is
// silently ignored to enforce write-once semantics; callers never
// legitimately hit this path since each txnID reaches exactly one
// terminal branch of ExecuteTransaction.
func (c *Coordinator) recordDecision(txnID string, outcome Outcome) {
	c.decisionMu.Lock()
	defer c.decisionMu.Unlock()
	if _, exists := c.decisionLog[txnID]; exists {
		return
	}
	c.decisionLog[txnID] = outcome
}

// HandleRecoveringNode answers a recovering participant's query for the
// final outcome of txnID. Pure function over decision_log: presumed-
// abort if no decision was ever recorded.
func (c *Coordinator) HandleRecoveringNode(txnID, account string) string {
	c.metrics.RecoveryHandshake()
	c.decisionMu.RLock()
	defer c.decisionMu.RUnlock()
	if outcome, ok := c.decisionLog[txnID]; ok {
		return string(outcome)
	}
	c.metrics.RecoveryPresumedAbort()
	return string(OutcomeAborted)
}

// DumpDecisionLog returns a snapshot of the in-memory decision log, for
// the diagnostic-only RPC described in SPEC_FULL.md §7. Never consulted
// by the protocol itself.
func (c *Coordinator) DumpDecisionLog() map[string]string {
	c.decisionMu.RLock()
	defer c.decisionMu.RUnlock()
	out := make(map[string]string, len(c.decisionLog))
	for k, v := range c.decisionLog {
		out[k] = string(v)
	}
	return out
}

// IsAlive is a liveness probe.
func (c *Coordinator) IsAlive() bool { return true }

// Shutdown begins graceful shutdown: new transactions are rejected
// immediately (C4), the inactivity monitor is stopped, shutdown is
// fanned out to every participant, and the call blocks until any
// in-flight ExecuteTransaction calls finish.
func (c *Coordinator) Shutdown(ctx context.Context) {
	c.shuttingDown.Store(true)
	c.monitor.Stop()

	accounts := c.orderedAccounts()
	c.fanOut(ctx, accounts, c.cfg.CommitTimeout, func(cctx context.Context, p Participant, account string) bool {
		_, err := p.Shutdown(cctx)
		return err == nil
	})

	c.inflight.Wait()
}

// ShuttingDown reports whether shutdown has started.
func (c *Coordinator) ShuttingDown() bool { return c.shuttingDown.Load() }

// String implements fmt.Stringer for debugging.
func (c *Coordinator) String() string {
	return fmt.Sprintf("Coordinator{participants=%d}", len(c.orderedAccounts()))
}
