package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about formatter
// operations. It is intentionally simple so it can be swapped for a real
// backend later; when OpenTelemetry instruments are attached it forwards to
// them as well. A nil Recorder is a no-op.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*operationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordOperation increments counters for a format or parse call and stores
// the last observed latency. The pattern label carries the named pattern or
// "custom".
func (r *Recorder) RecordOperation(op, pattern string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(op)
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordOperation(op, pattern, duration, err)
	}
}

// OperationCalls returns the total calls recorded for an operation.
func (r *Recorder) OperationCalls(op string) int {
	return r.Snapshot(op).Calls
}

// OperationErrors returns the total failed calls recorded for an operation.
func (r *Recorder) OperationErrors(op string) int {
	return r.Snapshot(op).Errors
}

// LastLatency returns the last recorded latency for an operation.
func (r *Recorder) LastLatency(op string) time.Duration {
	return r.Snapshot(op).LastLatency
}

// Snapshot is a copy of the current stats for one operation.
type Snapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(op)
	return Snapshot{
		Calls:       stats.calls,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStats(op string) *operationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[op]
	if !ok {
		stats = &operationStats{}
		r.stats[op] = stats
	}
	return stats
}

func (r *Recorder) snapshot(op string) operationStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[op]; ok && stats != nil {
		return *stats
	}
	return operationStats{}
}
