package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dshills/inputstate/internal/input"
	"github.com/tidwall/gjson"
)

// ErrMalformed indicates a trace line is not a valid JSON object.
var ErrMalformed = errors.New("malformed trace line")

// maxLine bounds a single trace record.
const maxLine = 1 << 20

// Action is a decoded action log entry.
type Action struct {
	Kind string
	Key  string
}

// Point is a decoded 2D value.
type Point struct {
	X, Y float64
}

// Tick is one decoded trace record.
type Tick struct {
	Number uint64

	Keys  []Action
	Codes []Action
	Mouse []Action

	HeldKeys    []string
	HeldCodes   []string
	HeldButtons []string

	// Cursor is nil when the cursor position was unknown.
	Cursor *Point
	Diff   Point
	Scroll Point

	Text      []input.TextChar
	Modifiers string

	// Width and Height are zero when no resize was seen.
	Width, Height int

	CloseRequested bool
	Destroyed      bool
}

// ReadTicks decodes every record of a JSON lines trace.
func ReadTicks(r io.Reader) ([]Tick, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var ticks []Tick
	line := 0
	for sc.Scan() {
		line++
		data := sc.Bytes()
		if len(data) == 0 {
			continue
		}
		t, err := DecodeTick(data)
		if err != nil {
			return ticks, fmt.Errorf("line %d: %w", line, err)
		}
		ticks = append(ticks, t)
	}
	if err := sc.Err(); err != nil {
		return ticks, fmt.Errorf("reading trace: %w", err)
	}
	return ticks, nil
}

// DecodeTick decodes a single trace record.
func DecodeTick(data []byte) (Tick, error) {
	if !gjson.ValidBytes(data) {
		return Tick{}, ErrMalformed
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Tick{}, ErrMalformed
	}

	t := Tick{
		Number:         root.Get("tick").Uint(),
		Keys:           actions(root.Get("keys")),
		Codes:          actions(root.Get("codes")),
		Mouse:          actions(root.Get("mouse")),
		HeldKeys:       strs(root.Get("held.keys")),
		HeldCodes:      strs(root.Get("held.codes")),
		HeldButtons:    strs(root.Get("held.buttons")),
		Diff:           point(root.Get("diff")),
		Scroll:         point(root.Get("scroll")),
		Text:           input.DecodeText(root.Get("text").String()),
		Modifiers:      root.Get("modifiers").String(),
		Width:          int(root.Get("resolution.width").Int()),
		Height:         int(root.Get("resolution.height").Int()),
		CloseRequested: root.Get("close_requested").Bool(),
		Destroyed:      root.Get("destroyed").Bool(),
	}
	if c := root.Get("cursor"); c.Exists() {
		p := point(c)
		t.Cursor = &p
	}
	return t, nil
}

func actions(v gjson.Result) []Action {
	var out []Action
	v.ForEach(func(_, a gjson.Result) bool {
		out = append(out, Action{Kind: a.Get("kind").String(), Key: a.Get("key").String()})
		return true
	})
	return out
}

func strs(v gjson.Result) []string {
	var out []string
	for _, s := range v.Array() {
		out = append(out, s.String())
	}
	return out
}

func point(v gjson.Result) Point {
	return Point{X: v.Get("x").Float(), Y: v.Get("y").Float()}
}
