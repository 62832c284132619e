package input

import (
	"testing"

	"github.com/dshills/inputstate/internal/input/event"
	"github.com/dshills/inputstate/internal/input/key"
	"github.com/dshills/inputstate/internal/input/mouse"
)

// feed runs a batch through the helper the way a platform loop would and
// reports whether the final event signalled a ready tick.
func feed(h *Helper, evs ...event.Event) bool {
	ready := false
	for _, ev := range evs {
		ready = h.Update(ev)
	}
	return ready
}

func TestHelperSignalsReadyOnTickComplete(t *testing.T) {
	h := NewHelper()

	if h.Update(event.NewTick{}) {
		t.Error("NewTick should not report ready")
	}
	if h.Update(pressA()) {
		t.Error("ingested events should not report ready")
	}
	if !h.Update(event.TickComplete{}) {
		t.Error("TickComplete should report ready")
	}
	if !h.State().KeyPressed(key.Char('a')) {
		t.Error("press not visible after ready tick")
	}
}

func TestHelperStepsOnNewTick(t *testing.T) {
	h := NewHelper()

	feed(h, event.NewTick{}, pressA(), event.TickComplete{})
	if !feed(h, event.NewTick{}, event.TickComplete{}) {
		t.Fatal("second tick not ready")
	}

	s := h.State()
	if s.KeyPressed(key.Char('a')) {
		t.Error("press edge leaked into the next tick")
	}
	if !s.KeyHeld(key.Char('a')) {
		t.Error("held state lost across ticks")
	}
	if h.Ticks() != 2 {
		t.Errorf("Ticks() = %d, want 2", h.Ticks())
	}
}

func TestHelperMouseDiffAcrossTicks(t *testing.T) {
	h := NewHelper()

	feed(h, event.NewTick{}, event.CursorMoved{Position: mouse.Position{}}, event.TickComplete{})
	feed(h, event.NewTick{}, event.CursorMoved{Position: mouse.Position{X: 3, Y: 4}}, event.TickComplete{})
	if d := h.State().MouseDiff(); d != (mouse.Position{X: 3, Y: 4}) {
		t.Errorf("MouseDiff() = %v, want (3, 4)", d)
	}

	feed(h, event.NewTick{}, event.TickComplete{})
	if d := h.State().MouseDiff(); d != (mouse.Position{}) {
		t.Errorf("idle tick MouseDiff() = %v, want zero", d)
	}
}

func TestHelperIgnoresNil(t *testing.T) {
	h := NewHelper()
	if h.Update(nil) {
		t.Error("nil event reported ready")
	}
}

func TestHelperRecordsMetrics(t *testing.T) {
	m := NewMetrics()
	h := NewHelper(WithMetrics(m))

	feed(h,
		event.NewTick{},
		pressA(),
		event.ReceivedCharacter{Char: 'a'},
		releaseA(),
		event.TickComplete{},
		event.NewTick{},
		event.TickComplete{},
	)

	snap := m.Snapshot()
	if snap.TicksTotal != 2 {
		t.Errorf("TicksTotal = %d, want 2", snap.TicksTotal)
	}
	if snap.EventsTotal != 3 {
		t.Errorf("EventsTotal = %d, want 3", snap.EventsTotal)
	}
	if snap.ByKind["keyboard"] != 2 || snap.ByKind["character"] != 1 {
		t.Errorf("ByKind = %v", snap.ByKind)
	}
	if snap.PeakBatch != 3 {
		t.Errorf("PeakBatch = %d, want 3", snap.PeakBatch)
	}
}
