package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks host loop timing. Event counts live in input.Metrics.
type Metrics struct {
	// Tick timing (drain through render)
	tickCount   atomic.Uint64
	tickTotalNs atomic.Int64
	tickMaxNs   atomic.Int64
	lastTickNs  atomic.Int64

	// Script
	scriptCount   atomic.Uint64
	scriptTotalNs atomic.Int64
	scriptErrors  atomic.Uint64

	// Render timing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64

	// Trace
	traceRecords atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// RecordTick records the time spent handling one tick.
func (m *Metrics) RecordTick(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.tickCount.Add(1)
	m.tickTotalNs.Add(ns)
	m.lastTickNs.Store(ns)

	for {
		old := m.tickMaxNs.Load()
		if ns <= old {
			break
		}
		if m.tickMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordScript records one on_tick call.
func (m *Metrics) RecordScript(duration time.Duration, err error) {
	m.scriptCount.Add(1)
	m.scriptTotalNs.Add(duration.Nanoseconds())
	if err != nil {
		m.scriptErrors.Add(1)
	}
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
}

// RecordTrace records one written trace line.
func (m *Metrics) RecordTrace() {
	m.traceRecords.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	tickCount := m.tickCount.Load()
	scriptCount := m.scriptCount.Load()
	renderCount := m.renderCount.Load()

	return MetricsSnapshot{
		Uptime:           time.Since(m.startTime),
		TickCount:        tickCount,
		AvgTickNs:        avg(m.tickTotalNs.Load(), tickCount),
		MaxTickNs:        m.tickMaxNs.Load(),
		LastTickNs:       m.lastTickNs.Load(),
		TickSecondsTotal: float64(m.tickTotalNs.Load()) / 1e9,
		ScriptCount:      scriptCount,
		AvgScriptNs:      avg(m.scriptTotalNs.Load(), scriptCount),
		ScriptErrors:     m.scriptErrors.Load(),
		RenderCount:      renderCount,
		AvgRenderNs:      avg(m.renderTotalNs.Load(), renderCount),
		TraceRecords:     m.traceRecords.Load(),
	}
}

func avg(total int64, n uint64) int64 {
	if n == 0 {
		return 0
	}
	return total / int64(n)
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime           time.Duration
	TickCount        uint64
	AvgTickNs        int64
	MaxTickNs        int64
	LastTickNs       int64
	TickSecondsTotal float64
	ScriptCount      uint64
	AvgScriptNs      int64
	ScriptErrors     uint64
	RenderCount      uint64
	AvgRenderNs      int64
	TraceRecords     uint64
}

// AvgTickRate returns the ticks per second the loop could sustain at the
// average handling time.
func (s MetricsSnapshot) AvgTickRate() float64 {
	if s.AvgTickNs == 0 {
		return 0
	}
	return 1e9 / float64(s.AvgTickNs)
}
