package runner

import "sync"

// Metrics collects the counter metrics a task reports during one invocation.
// The engine reads them back after the task returns.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewMetrics returns an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{counters: make(map[string]int64)}
}

// Count adds delta to the named counter.
func (m *Metrics) Count(name string, delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += delta
}

// Counter returns the current value of the named counter.
func (m *Metrics) Counter(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}
