package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/dshills/inputstate/internal/input"
	"github.com/dshills/inputstate/internal/input/event"
)

func TestMetrics_Ticks(t *testing.T) {
	m := NewMetrics()
	m.RecordTick(2 * time.Millisecond)
	m.RecordTick(6 * time.Millisecond)
	m.RecordTick(4 * time.Millisecond)

	s := m.Snapshot()
	if s.TickCount != 3 {
		t.Errorf("TickCount = %d, want 3", s.TickCount)
	}
	if s.AvgTickNs != int64(4*time.Millisecond) {
		t.Errorf("AvgTickNs = %d", s.AvgTickNs)
	}
	if s.MaxTickNs != int64(6*time.Millisecond) {
		t.Errorf("MaxTickNs = %d", s.MaxTickNs)
	}
	if s.LastTickNs != int64(4*time.Millisecond) {
		t.Errorf("LastTickNs = %d", s.LastTickNs)
	}
	if s.TickSecondsTotal != 0.012 {
		t.Errorf("TickSecondsTotal = %v", s.TickSecondsTotal)
	}
	if s.AvgTickRate() != 250 {
		t.Errorf("AvgTickRate() = %v, want 250", s.AvgTickRate())
	}
}

func TestMetrics_ScriptRenderTrace(t *testing.T) {
	m := NewMetrics()
	m.RecordScript(time.Millisecond, nil)
	m.RecordScript(3*time.Millisecond, errors.New("boom"))
	m.RecordRender(time.Millisecond)
	m.RecordTrace()
	m.RecordTrace()

	s := m.Snapshot()
	if s.ScriptCount != 2 || s.ScriptErrors != 1 || s.AvgScriptNs != int64(2*time.Millisecond) {
		t.Errorf("script = %d calls, %d errors, %d avg", s.ScriptCount, s.ScriptErrors, s.AvgScriptNs)
	}
	if s.RenderCount != 1 || s.AvgRenderNs != int64(time.Millisecond) {
		t.Errorf("render = %d, %d", s.RenderCount, s.AvgRenderNs)
	}
	if s.TraceRecords != 2 {
		t.Errorf("TraceRecords = %d", s.TraceRecords)
	}
}

func TestMetricsSnapshot_ZeroRate(t *testing.T) {
	if r := NewMetrics().Snapshot().AvgTickRate(); r != 0 {
		t.Errorf("AvgTickRate() = %v, want 0", r)
	}
}

func TestCollector(t *testing.T) {
	in := input.NewMetrics()
	host := NewMetrics()
	h := input.NewHelper(input.WithMetrics(in))

	for _, ev := range []event.Event{
		event.NewTick{},
		event.ReceivedCharacter{Char: 'x'},
		event.TickComplete{},
		event.NewTick{},
		event.TickComplete{},
	} {
		h.Update(ev)
	}
	host.RecordScript(time.Millisecond, errors.New("bad"))
	host.RecordTrace()

	c := newCollector(in, host)
	want := `
# HELP inputstate_ticks_total Update boundaries processed.
# TYPE inputstate_ticks_total counter
inputstate_ticks_total 2
# HELP inputstate_events_total Raw events ingested, by kind.
# TYPE inputstate_events_total counter
inputstate_events_total{kind="character"} 1
# HELP inputstate_script_errors_total Failed on_tick calls.
# TYPE inputstate_script_errors_total counter
inputstate_script_errors_total 1
# HELP inputstate_trace_records_total Trace lines written.
# TYPE inputstate_trace_records_total counter
inputstate_trace_records_total 1
`
	err := testutil.CollectAndCompare(c, strings.NewReader(want),
		"inputstate_ticks_total",
		"inputstate_events_total",
		"inputstate_script_errors_total",
		"inputstate_trace_records_total",
	)
	if err != nil {
		t.Error(err)
	}

	if n := testutil.CollectAndCount(c); n < 10 {
		t.Errorf("CollectAndCount() = %d, want at least 10", n)
	}
}

func TestNewRegistry(t *testing.T) {
	reg, err := newRegistry(input.NewMetrics(), NewMetrics())
	if err != nil {
		t.Fatal(err)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"inputstate_uptime_seconds", "go_goroutines"} {
		if !names[want] {
			t.Errorf("registry missing %s", want)
		}
	}
}
