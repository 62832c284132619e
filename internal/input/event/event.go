// Package event defines the raw platform events consumed by the input
// reducer.
//
// Event is a closed sum type: only the types in this package implement it.
// A platform source translates whatever its windowing layer reports into
// these values and feeds them, in arrival order, to input.State.Ingest or
// input.Helper.Update.
package event

import (
	"github.com/dshills/inputstate/internal/input/key"
	"github.com/dshills/inputstate/internal/input/mouse"
)

// Event is one raw platform event.
type Event interface {
	// Kind returns a short stable name for the variant.
	Kind() string

	isEvent()
}

// ElementState is the state of a key or button in a state change event.
type ElementState uint8

const (
	// Pressed means the key or button went (or stayed) down.
	Pressed ElementState = iota
	// Released means the key or button went up.
	Released
)

// String returns a string representation of the state.
func (s ElementState) String() string {
	if s == Released {
		return "released"
	}
	return "pressed"
}

// KeyboardInput is a key state change. The same hardware event carries
// both the layout-dependent logical key and the physical code.
type KeyboardInput struct {
	Logical key.Logical
	Code    key.Code
	State   ElementState

	// Repeat is set by the platform on auto-repeat presses. The reducer
	// does not need it: every press is treated as a repeat.
	Repeat bool
}

// ReceivedCharacter is a character of text input.
type ReceivedCharacter struct {
	Char rune
}

// CursorMoved carries the absolute cursor position.
type CursorMoved struct {
	Position mouse.Position
}

// MouseInput is a pointer button state change.
type MouseInput struct {
	Button mouse.Button
	State  ElementState
}

// MouseWheel is a scroll delta.
type MouseWheel struct {
	Delta mouse.ScrollDelta
}

// Resized reports the new size of the window or terminal.
type Resized struct {
	Width  int
	Height int
}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// Destroyed reports that the window is gone.
type Destroyed struct{}

// NewTick opens a new tick. The helper steps the reducer on it.
type NewTick struct{}

// TickComplete closes the current tick. State is ready to query.
type TickComplete struct{}

func (KeyboardInput) Kind() string     { return "keyboard" }
func (ReceivedCharacter) Kind() string { return "character" }
func (CursorMoved) Kind() string       { return "cursor" }
func (MouseInput) Kind() string        { return "mouse" }
func (MouseWheel) Kind() string        { return "wheel" }
func (Resized) Kind() string           { return "resized" }
func (CloseRequested) Kind() string    { return "close" }
func (Destroyed) Kind() string         { return "destroyed" }
func (NewTick) Kind() string           { return "new-tick" }
func (TickComplete) Kind() string      { return "tick-complete" }

func (KeyboardInput) isEvent()     {}
func (ReceivedCharacter) isEvent() {}
func (CursorMoved) isEvent()       {}
func (MouseInput) isEvent()        {}
func (MouseWheel) isEvent()        {}
func (Resized) isEvent()           {}
func (CloseRequested) isEvent()    {}
func (Destroyed) isEvent()         {}
func (NewTick) isEvent()           {}
func (TickComplete) isEvent()      {}

// KeyPress returns a pressed KeyboardInput for a logical key and code.
func KeyPress(l key.Logical, c key.Code) KeyboardInput {
	return KeyboardInput{Logical: l, Code: c, State: Pressed}
}

// KeyRelease returns a released KeyboardInput for a logical key and code.
func KeyRelease(l key.Logical, c key.Code) KeyboardInput {
	return KeyboardInput{Logical: l, Code: c, State: Released}
}
