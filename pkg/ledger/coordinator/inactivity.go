package coordinator

import (
	"context"
	"sync"
	"time"
)

// InactivityMonitor samples the coordinator's idle duration once a
// second and triggers graceful shutdown once it exceeds the configured
// threshold (§4.5). Grounded on the same ticker+stop-channel shape as
// pkg/ledger/participant's monitor and pkg/auth's cleanup routine.
type InactivityMonitor struct {
	coordinator *Coordinator
	threshold   time.Duration

	mu      sync.Mutex
	stopped bool
	stopCh  chan struct{}
}

// NewInactivityMonitor creates a monitor for c, firing after threshold
// of coordinator-wide silence.
func NewInactivityMonitor(c *Coordinator, threshold time.Duration) *InactivityMonitor {
	return &InactivityMonitor{
		coordinator: c,
		threshold:   threshold,
		stopCh:      make(chan struct{}),
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
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if m.threshold > 0 && m.coordinator.IdleDuration() > m.threshold && !m.coordinator.ShuttingDown() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				m.coordinator.Shutdown(ctx)
				cancel()
				return
			}
		case <-m.stopCh:
			return
		}
	}
}
