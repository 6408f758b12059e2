package logger

import (
	"sync"
	"time"
)

// Metrics collects counters and timings for a single run.
// All operations are thread-safe.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string]time.Duration
}

var defaultMetrics = NewMetrics()

// NewMetrics creates an empty metrics tracker
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string]time.Duration),
	}
}

// IncrCounter increments a counter by 1
func (m *Metrics) IncrCounter(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// RecordTiming adds d to the total recorded under name
func (m *Metrics) RecordTiming(name string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] += d
}

// Fields returns a copy of all metrics ready to attach to a log entry.
// Counters keep their name; timings are rendered as "<name>_ms".
func (m *Metrics) Fields() Fields {
	m.mu.Lock()
	defer m.mu.Unlock()

	fields := make(Fields, len(m.counters)+len(m.timings))
	for k, v := range m.counters {
		fields[k] = v
	}
	for k, v := range m.timings {
		fields[k+"_ms"] = v.Milliseconds()
	}
	return fields
}

// IncrCounter increments a counter on the default tracker
func IncrCounter(name string) {
	defaultMetrics.IncrCounter(name)
}

// RecordTiming records a timing on the default tracker
func RecordTiming(name string, d time.Duration) {
	defaultMetrics.RecordTiming(name, d)
}

// MetricsFields returns the default tracker's metrics as log fields
func MetricsFields() Fields {
	return defaultMetrics.Fields()
}
