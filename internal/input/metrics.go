package input

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics counts reducer traffic. Counters are atomic so an exporter may
// read them from another goroutine while the event loop writes.
type Metrics struct {
	ticksTotal    atomic.Uint64
	eventsTotal   atomic.Uint64
	droppedEvents atomic.Uint64

	mu     sync.RWMutex
	byKind map[string]uint64

	// Events seen since the last tick; the largest batch is kept.
	tickEvents atomic.Uint64
	peakBatch  atomic.Uint64

	startTime time.Time

	enabled atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		byKind:    make(map[string]uint64),
		startTime: time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled returns whether metrics collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// RecordEvent records one ingested event of the given kind.
func (m *Metrics) RecordEvent(kind string) {
	if !m.enabled.Load() {
		return
	}

	m.eventsTotal.Add(1)
	m.tickEvents.Add(1)

	m.mu.Lock()
	m.byKind[kind]++
	m.mu.Unlock()
}

// RecordTick records a tick boundary and folds the finished batch into the
// peak batch size.
func (m *Metrics) RecordTick() {
	if !m.enabled.Load() {
		return
	}

	m.ticksTotal.Add(1)

	batch := m.tickEvents.Swap(0)
	for {
		current := m.peakBatch.Load()
		if batch <= current {
			break
		}
		if m.peakBatch.CompareAndSwap(current, batch) {
			break
		}
	}
}

// RecordDroppedEvent records an event the source had to discard.
func (m *Metrics) RecordDroppedEvent() {
	if !m.enabled.Load() {
		return
	}
	m.droppedEvents.Add(1)
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	TicksTotal    uint64
	EventsTotal   uint64
	DroppedEvents uint64
	PeakBatch     uint64
	ByKind        map[string]uint64

	EventsPerTick  float64
	TicksPerSecond float64
	Uptime         time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	byKind := make(map[string]uint64, len(m.byKind))
	for k, v := range m.byKind {
		byKind[k] = v
	}
	startTime := m.startTime
	m.mu.RUnlock()

	ticks := m.ticksTotal.Load()
	events := m.eventsTotal.Load()
	uptime := time.Since(startTime)

	snap := MetricsSnapshot{
		TicksTotal:    ticks,
		EventsTotal:   events,
		DroppedEvents: m.droppedEvents.Load(),
		PeakBatch:     m.peakBatch.Load(),
		ByKind:        byKind,
		Uptime:        uptime,
	}

	if ticks > 0 {
		snap.EventsPerTick = float64(events) / float64(ticks)
	}
	if uptime > 0 {
		snap.TicksPerSecond = float64(ticks) / uptime.Seconds()
	}

	return snap
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.ticksTotal.Store(0)
	m.eventsTotal.Store(0)
	m.droppedEvents.Store(0)
	m.tickEvents.Store(0)
	m.peakBatch.Store(0)

	m.mu.Lock()
	m.byKind = make(map[string]uint64)
	m.startTime = time.Now()
	m.mu.Unlock()
}

// TicksTotal returns the number of ticks recorded.
func (m *Metrics) TicksTotal() uint64 {
	return m.ticksTotal.Load()
}

// EventsTotal returns the number of events recorded.
func (m *Metrics) EventsTotal() uint64 {
	return m.eventsTotal.Load()
}

// DroppedEvents returns the total number of dropped events.
func (m *Metrics) DroppedEvents() uint64 {
	return m.droppedEvents.Load()
}
