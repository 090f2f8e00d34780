// Package metrics provides process-local counters for wallet operations
// and wallet engine calls. It satisfies bdk.MetricsRecorder.
package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

// Metrics holds application metrics using atomic counters for thread safety.
type Metrics struct {
	// Façade operation metrics
	opsTotal         atomic.Int64
	opsErrors        atomic.Int64
	validationErrors atomic.Int64

	// Engine call metrics
	engineCallsTotal   atomic.Int64
	engineErrorsTotal  atomic.Int64
	engineLatencyNanos atomic.Int64

	mu           sync.Mutex
	capabilities map[string]int64
}

// Global is the global metrics instance.
//
//nolint:gochecknoglobals // Intentional global for metrics access
var Global = &Metrics{}

// RecordOperation records a completed façade operation. Failures caused by
// caller input are also counted as validation errors.
func (m *Metrics) RecordOperation(_ string, err error) {
	m.opsTotal.Add(1)
	if err == nil {
		return
	}
	m.opsErrors.Add(1)
	if bdkerr.ExitCode(err) == bdkerr.ExitInput {
		m.validationErrors.Add(1)
	}
}

// RecordEngineCall records one call into the wallet engine.
func (m *Metrics) RecordEngineCall(capability string, duration time.Duration, err error) {
	m.engineCallsTotal.Add(1)
	m.engineLatencyNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.engineErrorsTotal.Add(1)
	}

	m.mu.Lock()
	if m.capabilities == nil {
		m.capabilities = make(map[string]int64)
	}
	m.capabilities[capability]++
	m.mu.Unlock()
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	OperationsTotal    int64            `json:"operations_total"`
	OperationErrors    int64            `json:"operation_errors"`
	ValidationErrors   int64            `json:"validation_errors"`
	EngineCallsTotal   int64            `json:"engine_calls_total"`
	EngineErrorsTotal  int64            `json:"engine_errors_total"`
	EngineLatencyNanos int64            `json:"engine_latency_nanos"`
	Capabilities       map[string]int64 `json:"capabilities,omitempty"`
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	caps := make(map[string]int64, len(m.capabilities))
	for k, v := range m.capabilities {
		caps[k] = v
	}
	m.mu.Unlock()

	return Snapshot{
		OperationsTotal:    m.opsTotal.Load(),
		OperationErrors:    m.opsErrors.Load(),
		ValidationErrors:   m.validationErrors.Load(),
		EngineCallsTotal:   m.engineCallsTotal.Load(),
		EngineErrorsTotal:  m.engineErrorsTotal.Load(),
		EngineLatencyNanos: m.engineLatencyNanos.Load(),
		Capabilities:       caps,
	}
}

// CapabilityNames returns the names of engine capabilities called so far, sorted.
func (s Snapshot) CapabilityNames() []string {
	names := make([]string, 0, len(s.Capabilities))
	for k := range s.Capabilities {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// EngineLatencyAvgMs returns the average engine call latency in milliseconds.
// Returns 0 if no calls have been made.
func (m *Metrics) EngineLatencyAvgMs() float64 {
	calls := m.engineCallsTotal.Load()
	if calls == 0 {
		return 0
	}
	return float64(m.engineLatencyNanos.Load()) / float64(calls) / 1e6
}
