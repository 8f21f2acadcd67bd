// Package metrics tracks transaction outcomes and exposes them in
// Prometheus text exposition format, adapted from pkg/metrics's counter
// and exporter split but scoped to the 2PC coordinator's own events
// instead of a query engine's.
package metrics

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// Collector holds coordinator-side counters. Zero value is ready to use.
type Collector struct {
	startTime time.Time

	transactionsStarted   uint64
	transactionsCommitted uint64
	transactionsAborted   uint64

	prepareTimeouts uint64
	commitTimeouts  uint64

	recoveryHandshakes  uint64
	recoveryPresumedAbort uint64

	participantShutdowns uint64
}

// New returns a Collector with startTime set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

func (c *Collector) TransactionStarted() { atomic.AddUint64(&c.transactionsStarted, 1) }
func (c *Collector) TransactionCommitted() { atomic.AddUint64(&c.transactionsCommitted, 1) }
func (c *Collector) TransactionAborted()   { atomic.AddUint64(&c.transactionsAborted, 1) }
func (c *Collector) PrepareTimeout()       { atomic.AddUint64(&c.prepareTimeouts, 1) }
func (c *Collector) CommitTimeout()        { atomic.AddUint64(&c.commitTimeouts, 1) }
func (c *Collector) RecoveryHandshake()    { atomic.AddUint64(&c.recoveryHandshakes, 1) }
func (c *Collector) RecoveryPresumedAbort() { atomic.AddUint64(&c.recoveryPresumedAbort, 1) }
func (c *Collector) ParticipantShutdown()  { atomic.AddUint64(&c.participantShutdowns, 1) }

// Exporter writes a Collector's counters in Prometheus text format.
type Exporter struct {
	collector *Collector
	namespace string
}

// NewExporter creates an Exporter with the given metric name prefix.
func NewExporter(collector *Collector, namespace string) *Exporter {
	if namespace == "" {
		namespace = "ledgerbank"
	}
	return &Exporter{collector: collector, namespace: namespace}
}

// WriteMetrics writes all counters to w in Prometheus exposition format.
func (e *Exporter) WriteMetrics(w io.Writer) error {
	uptime := time.Since(e.collector.startTime).Seconds()
	if err := e.writeGauge(w, "uptime_seconds", "Coordinator uptime in seconds", uptime); err != nil {
		return err
	}

	started := atomic.LoadUint64(&e.collector.transactionsStarted)
	committed := atomic.LoadUint64(&e.collector.transactionsCommitted)
	aborted := atomic.LoadUint64(&e.collector.transactionsAborted)

	if err := e.writeCounter(w, "transactions_started_total", "Total number of transactions started", started); err != nil {
		return err
	}
	if err := e.writeCounter(w, "transactions_committed_total", "Total number of transactions committed", committed); err != nil {
		return err
	}
	if err := e.writeCounter(w, "transactions_aborted_total", "Total number of transactions aborted", aborted); err != nil {
		return err
	}

	if err := e.writeCounter(w, "prepare_timeouts_total", "Total number of participants that missed the prepare deadline", atomic.LoadUint64(&e.collector.prepareTimeouts)); err != nil {
		return err
	}
	if err := e.writeCounter(w, "commit_timeouts_total", "Total number of participants that missed the commit deadline", atomic.LoadUint64(&e.collector.commitTimeouts)); err != nil {
		return err
	}
	if err := e.writeCounter(w, "recovery_handshakes_total", "Total number of participant recovery handshakes", atomic.LoadUint64(&e.collector.recoveryHandshakes)); err != nil {
		return err
	}
	if err := e.writeCounter(w, "recovery_presumed_abort_total", "Total number of recovery handshakes resolved by presumed abort", atomic.LoadUint64(&e.collector.recoveryPresumedAbort)); err != nil {
		return err
	}
	if err := e.writeCounter(w, "participant_shutdowns_total", "Total number of participants shut down by their inactivity monitor", atomic.LoadUint64(&e.collector.participantShutdowns)); err != nil {
		return err
	}

	return nil
}

func (e *Exporter) writeCounter(w io.Writer, name, help string, value uint64) error {
	metricName := e.namespace + "_" + name
	_, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s counter\n%s %d\n", metricName, help, metricName, metricName, value)
	return err
}

func (e *Exporter) writeGauge(w io.Writer, name, help string, value float64) error {
	metricName := e.namespace + "_" + name
	_, err := fmt.Fprintf(w, "# HELP %s %s\n# TYPE %s gauge\n%s %g\n", metricName, help, metricName, metricName, value)
	return err
}
