package input

import (
	"github.com/dshills/inputstate/internal/input/event"
	"github.com/dshills/inputstate/internal/input/key"
	"github.com/dshills/inputstate/internal/input/mouse"
)

// State accumulates raw events between two ticks and answers queries about
// the tick they describe.
//
// State is not safe for concurrent use. It is owned by the host's event
// loop; a host needing cross-goroutine access must serialize externally.
type State struct {
	keys  track[key.Logical]
	codes track[key.Code]

	mouseHeld HeldTable[mouse.Button]
	mouseLog  Log[mouse.Button]

	position     mouse.Position
	hasPosition  bool
	previous     mouse.Position
	hasPrevious  bool
	xScroll      float32
	yScroll      float32
	text         []TextChar
	width        int
	height       int
	hasSize      bool
	closeRequest bool
	destroyed    bool
}

// NewState returns an empty reducer: nothing held, no cursor, zero scroll.
func NewState() *State {
	return &State{}
}

// Ingest applies one raw event. It never blocks and never fails; events it
// does not recognize are ignored.
func (s *State) Ingest(ev event.Event) {
	switch e := ev.(type) {
	case event.KeyboardInput:
		s.ingestKey(e)
	case event.ReceivedCharacter:
		if isTextRune(e.Char) {
			s.text = append(s.text, CharOf(e.Char))
		}
	case event.CursorMoved:
		s.position = e.Position
		s.hasPosition = true
	case event.MouseInput:
		if e.State == event.Pressed {
			s.mouseLog.push(Pressed, e.Button)
			s.mouseHeld.set(e.Button, true)
		} else {
			s.mouseLog.push(Released, e.Button)
			s.mouseHeld.set(e.Button, false)
		}
	case event.MouseWheel:
		x, y := e.Delta.Lines()
		s.xScroll += x
		s.yScroll += y
	case event.Resized:
		s.width, s.height = e.Width, e.Height
		s.hasSize = true
	case event.CloseRequested:
		s.closeRequest = true
	case event.Destroyed:
		s.destroyed = true
	}
}

func (s *State) ingestKey(e event.KeyboardInput) {
	if e.State == event.Released {
		s.keys.release(e.Logical)
		s.codes.release(e.Code)
		return
	}

	s.keys.press(e.Logical)
	if e.Logical.IsBackspace() {
		s.text = append(s.text, BackspaceChar())
	}
	s.codes.press(e.Code)
}

// Step closes the tick: the cursor position is snapshotted for MouseDiff,
// then action logs, scroll accumulators, text and one-shot window flags are
// cleared. Held state and the cursor position persist.
func (s *State) Step() {
	s.previous, s.hasPrevious = s.position, s.hasPosition

	s.keys.log.reset()
	s.codes.log.reset()
	s.mouseLog.reset()

	s.xScroll, s.yScroll = 0, 0
	s.text = s.text[:0]
	s.closeRequest = false
	s.destroyed = false
}

// KeyPressed returns true if k went down this tick. OS repeats do not count.
func (s *State) KeyPressed(k key.Logical) bool {
	return s.keys.log.Contains(Pressed, k)
}

// KeyPressedOS returns true if k was pressed or auto-repeated this tick.
func (s *State) KeyPressedOS(k key.Logical) bool {
	return s.keys.log.Contains(PressedRepeat, k)
}

// KeyHeld returns true if k is currently down.
func (s *State) KeyHeld(k key.Logical) bool {
	return s.keys.held.Held(k)
}

// KeyReleased returns true if k was released this tick.
func (s *State) KeyReleased(k key.Logical) bool {
	return s.keys.log.Contains(Released, k)
}

// CodePressed returns true if the physical key c went down this tick.
func (s *State) CodePressed(c key.Code) bool {
	return s.codes.log.Contains(Pressed, c)
}

// CodePressedOS returns true if c was pressed or auto-repeated this tick.
func (s *State) CodePressedOS(c key.Code) bool {
	return s.codes.log.Contains(PressedRepeat, c)
}

// CodeHeld returns true if the physical key c is currently down.
func (s *State) CodeHeld(c key.Code) bool {
	return s.codes.held.Held(c)
}

// CodeReleased returns true if c was released this tick.
func (s *State) CodeReleased(c key.Code) bool {
	return s.codes.log.Contains(Released, c)
}

// MousePressed returns true if b was pressed this tick.
func (s *State) MousePressed(b mouse.Button) bool {
	return s.mouseLog.Contains(Pressed, b)
}

// MouseHeld returns true if b is currently down.
func (s *State) MouseHeld(b mouse.Button) bool {
	return s.mouseHeld.Held(b)
}

// MouseReleased returns true if b was released this tick.
func (s *State) MouseReleased(b mouse.Button) bool {
	return s.mouseLog.Contains(Released, b)
}

// MousePosition returns the last cursor position. ok is false until the
// first cursor event has been seen.
func (s *State) MousePosition() (pos mouse.Position, ok bool) {
	return s.position, s.hasPosition
}

// MouseDiff returns how far the cursor moved since the last Step, or the
// zero position if either end is unknown.
func (s *State) MouseDiff() mouse.Position {
	if !s.hasPosition || !s.hasPrevious {
		return mouse.Position{}
	}
	return s.position.Sub(s.previous)
}

// ScrollDiff returns the scroll accumulated this tick, in lines.
func (s *State) ScrollDiff() (x, y float32) {
	return s.xScroll, s.yScroll
}

// Text returns a copy of this tick's text buffer in typing order.
func (s *State) Text() []TextChar {
	if len(s.text) == 0 {
		return nil
	}
	out := make([]TextChar, len(s.text))
	copy(out, s.text)
	return out
}

// CloseRequested returns true if a close request arrived this tick.
func (s *State) CloseRequested() bool {
	return s.closeRequest
}

// Destroyed returns true if the window was destroyed this tick.
func (s *State) Destroyed() bool {
	return s.destroyed
}

// Resolution returns the last reported window size.
func (s *State) Resolution() (width, height int, ok bool) {
	return s.width, s.height, s.hasSize
}

// HeldShift returns true if a Shift key is down.
func (s *State) HeldShift() bool {
	return s.KeyHeld(key.Named(key.KeyShift))
}

// HeldControl returns true if a Control key is down.
func (s *State) HeldControl() bool {
	return s.KeyHeld(key.Named(key.KeyControl))
}

// HeldAlt returns true if an Alt key is down.
func (s *State) HeldAlt() bool {
	return s.KeyHeld(key.Named(key.KeyAlt))
}

// Modifiers returns the modifier keys currently held.
func (s *State) Modifiers() key.Modifier {
	var m key.Modifier
	for _, mod := range key.AllModifiers {
		if s.KeyHeld(key.Named(mod.Key())) {
			m = m.With(mod)
		}
	}
	return m
}

// CodeModifiers returns the modifiers whose physical keys are held, left
// or right. It can differ from Modifiers after a layout remap.
func (s *State) CodeModifiers() key.Modifier {
	var m key.Modifier
	for _, c := range s.codes.held.Keys() {
		m = m.With(c.Modifier())
	}
	return m
}

// KeyActions returns a copy of this tick's logical key log.
func (s *State) KeyActions() []Action[key.Logical] {
	return s.keys.log.Entries()
}

// CodeActions returns a copy of this tick's physical key log.
func (s *State) CodeActions() []Action[key.Code] {
	return s.codes.log.Entries()
}

// MouseActions returns a copy of this tick's mouse button log.
func (s *State) MouseActions() []Action[mouse.Button] {
	return s.mouseLog.Entries()
}

// HeldKeys returns the logical keys currently down, in no particular order.
func (s *State) HeldKeys() []key.Logical {
	return s.keys.held.Keys()
}

// HeldCodes returns the physical keys currently down, in no particular order.
func (s *State) HeldCodes() []key.Code {
	return s.codes.held.Keys()
}

// HeldButtons returns the mouse buttons currently down.
func (s *State) HeldButtons() []mouse.Button {
	return s.mouseHeld.Keys()
}
