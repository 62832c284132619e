package mouse

// PixelsPerLine converts pixel scroll deltas into line units. The value is
// kept for compatibility with existing consumers; it has no deeper meaning.
const PixelsPerLine = 38.0

// ScrollUnit tells how a scroll delta was measured.
type ScrollUnit uint8

const (
	// ScrollLines is a delta in discrete lines (classic wheel notches).
	ScrollLines ScrollUnit = iota
	// ScrollPixels is a continuous delta in pixels (touchpads).
	ScrollPixels
)

// String returns a string representation of the unit.
func (u ScrollUnit) String() string {
	switch u {
	case ScrollLines:
		return "lines"
	case ScrollPixels:
		return "pixels"
	default:
		return "unknown"
	}
}

// ScrollDelta is one scroll event. Positive Y scrolls up, positive X
// scrolls right.
type ScrollDelta struct {
	Unit ScrollUnit
	X    float32
	Y    float32
}

// LineDelta returns a delta measured in lines.
func LineDelta(x, y float32) ScrollDelta {
	return ScrollDelta{Unit: ScrollLines, X: x, Y: y}
}

// PixelDelta returns a delta measured in pixels.
func PixelDelta(x, y float64) ScrollDelta {
	return ScrollDelta{Unit: ScrollPixels, X: float32(x), Y: float32(y)}
}

// Lines returns the delta in line units, dividing pixel deltas by
// PixelsPerLine so both forms accumulate into the same unit.
func (d ScrollDelta) Lines() (x, y float32) {
	if d.Unit == ScrollPixels {
		return d.X / PixelsPerLine, d.Y / PixelsPerLine
	}
	return d.X, d.Y
}
