package input

import (
	"github.com/dshills/inputstate/internal/input/event"
	"github.com/dshills/inputstate/internal/input/key"
	"github.com/dshills/inputstate/internal/input/mouse"
)

// Reader is the read-only query surface of a tick.
type Reader interface {
	KeyPressed(k key.Logical) bool
	KeyPressedOS(k key.Logical) bool
	KeyHeld(k key.Logical) bool
	KeyReleased(k key.Logical) bool

	CodePressed(c key.Code) bool
	CodePressedOS(c key.Code) bool
	CodeHeld(c key.Code) bool
	CodeReleased(c key.Code) bool

	MousePressed(b mouse.Button) bool
	MouseHeld(b mouse.Button) bool
	MouseReleased(b mouse.Button) bool

	MousePosition() (mouse.Position, bool)
	MouseDiff() mouse.Position
	ScrollDiff() (x, y float32)
	Text() []TextChar
	CloseRequested() bool
	Destroyed() bool
	Resolution() (width, height int, ok bool)
	HeldShift() bool
	HeldControl() bool
	HeldAlt() bool
	Modifiers() key.Modifier
	CodeModifiers() key.Modifier

	KeyActions() []Action[key.Logical]
	CodeActions() []Action[key.Code]
	MouseActions() []Action[mouse.Button]
	HeldKeys() []key.Logical
	HeldCodes() []key.Code
	HeldButtons() []mouse.Button
}

var _ Reader = (*State)(nil)

// Helper sequences a raw event stream into ticks. Feed it every event the
// platform delivers; it returns true once a tick has been fully ingested
// and its state is ready to query.
//
//	for ev := range events {
//	    if helper.Update(ev) {
//	        update(helper.State())
//	    }
//	}
type Helper struct {
	state   *State
	metrics *Metrics
	ticks   uint64
}

// HelperOption configures a Helper.
type HelperOption func(*Helper)

// WithMetrics records event and tick counts into m.
func WithMetrics(m *Metrics) HelperOption {
	return func(h *Helper) {
		h.metrics = m
	}
}

// NewHelper creates a helper around a fresh State.
func NewHelper(opts ...HelperOption) *Helper {
	h := &Helper{state: NewState()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Update routes one raw event. NewTick steps the reducer, TickComplete
// reports that the tick is ready, and every other event is ingested.
func (h *Helper) Update(ev event.Event) bool {
	if ev == nil {
		return false
	}

	switch ev.(type) {
	case event.NewTick:
		h.state.Step()
		h.ticks++
		if h.metrics != nil {
			h.metrics.RecordTick()
		}
		return false
	case event.TickComplete:
		return true
	}

	h.state.Ingest(ev)
	if h.metrics != nil {
		h.metrics.RecordEvent(ev.Kind())
	}
	return false
}

// State returns the query surface for the current tick.
func (h *Helper) State() Reader {
	return h.state
}

// Ticks returns the number of ticks started so far.
func (h *Helper) Ticks() uint64 {
	return h.ticks
}
