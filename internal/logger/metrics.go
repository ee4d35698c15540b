package logger

import "sync"

// Metrics tracks pipeline run counters. All operations are thread-safe.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
}

var defaultMetrics *Metrics

func init() {
	defaultMetrics = NewMetrics()
}

// NewMetrics creates a new metrics tracker with empty counters.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
	}
}

// IncrCounter increments a counter by 1. If the counter doesn't exist, it
// is initialized to 1. Thread-safe.
func (m *Metrics) IncrCounter(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// Counter returns the current value of a counter.
func (m *Metrics) Counter(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

// Snapshot returns a copy of all counters, safe to use concurrently with
// updates.
func (m *Metrics) Snapshot() map[string]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	counters := make(map[string]int64, len(m.counters))
	for k, v := range m.counters {
		counters[k] = v
	}
	return counters
}

// IncrCounter increments a counter on the default metrics tracker.
func IncrCounter(name string) {
	defaultMetrics.IncrCounter(name)
}

// CounterSnapshot returns a copy of the default tracker's counters.
func CounterSnapshot() map[string]int64 {
	return defaultMetrics.Snapshot()
}
