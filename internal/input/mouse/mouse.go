package mouse

import (
	"fmt"
	"strconv"
	"strings"
)

// Button identifies a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonBack is the back navigation button (mouse button 4).
	ButtonBack
	// ButtonForward is the forward navigation button (mouse button 5).
	ButtonForward

	// buttonOther is the first value used by Other.
	buttonOther
)

// Other returns the identity of an extra button, numbered from 0 past the
// five standard buttons.
func Other(n uint8) Button {
	if n > 255-uint8(buttonOther) {
		n = 255 - uint8(buttonOther)
	}
	return buttonOther + Button(n)
}

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonBack:
		return "back"
	case ButtonForward:
		return "forward"
	case ButtonNone:
		return "none"
	default:
		return fmt.Sprintf("other-%d", b-buttonOther)
	}
}

// ButtonFromName parses a button name as produced by String, also
// accepting "primary" and "secondary". ButtonNone and false are returned
// for unknown names.
func ButtonFromName(name string) (Button, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "left", "primary":
		return ButtonLeft, true
	case "right", "secondary":
		return ButtonRight, true
	case "middle":
		return ButtonMiddle, true
	case "back":
		return ButtonBack, true
	case "forward":
		return ButtonForward, true
	}
	if rest, ok := strings.CutPrefix(name, "other-"); ok {
		n, err := strconv.ParseUint(rest, 10, 8)
		if err == nil {
			return Other(uint8(n)), true
		}
	}
	return ButtonNone, false
}

// Position is an absolute cursor position in window coordinates.
type Position struct {
	X float32
	Y float32
}

// Sub returns the component-wise difference p - other.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}
