package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"sync"

	"github.com/dshills/inputstate/internal/input"
	"github.com/dshills/inputstate/internal/input/key"
	"github.com/dshills/inputstate/internal/input/mouse"
	"github.com/tidwall/sjson"
)

// Recorder writes one JSON object per tick to a writer (JSON lines).
type Recorder struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer
	count  uint64
}

// NewRecorder creates a recorder writing to w. Close flushes but does not
// close w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: bufio.NewWriter(w)}
}

// Create creates (or truncates) the file at path and records into it.
func Create(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	r := NewRecorder(f)
	r.closer = f
	return r, nil
}

// Record appends the state of one ready tick.
func (r *Recorder) Record(tick uint64, state input.Reader) error {
	line, err := Encode(tick, state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.w.Write(line); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("flushing trace: %w", err)
	}
	r.count++
	return nil
}

// Count returns the number of records written.
func (r *Recorder) Count() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Close flushes buffered output and closes the file opened by Create.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.w.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
		r.closer = nil
	}
	return err
}

// Encode renders one tick as a single-line JSON object.
func Encode(tick uint64, state input.Reader) ([]byte, error) {
	b := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err == nil {
			b, err = sjson.SetBytes(b, path, value)
		}
	}
	raw := func(path, value string) {
		if err == nil {
			b, err = sjson.SetRawBytes(b, path, []byte(value))
		}
	}

	set("tick", tick)

	raw("keys", "[]")
	for i, a := range state.KeyActions() {
		set(fmt.Sprintf("keys.%d.kind", i), a.Kind.String())
		set(fmt.Sprintf("keys.%d.key", i), a.Key.String())
	}
	raw("codes", "[]")
	for i, a := range state.CodeActions() {
		set(fmt.Sprintf("codes.%d.kind", i), a.Kind.String())
		set(fmt.Sprintf("codes.%d.key", i), a.Key.String())
	}
	raw("mouse", "[]")
	for i, a := range state.MouseActions() {
		set(fmt.Sprintf("mouse.%d.kind", i), a.Kind.String())
		set(fmt.Sprintf("mouse.%d.key", i), a.Key.String())
	}

	raw("held.keys", "[]")
	for i, name := range sortedNames(state.HeldKeys(), key.Logical.String) {
		set("held.keys."+strconv.Itoa(i), name)
	}
	raw("held.codes", "[]")
	for i, name := range sortedNames(state.HeldCodes(), key.Code.String) {
		set("held.codes."+strconv.Itoa(i), name)
	}
	raw("held.buttons", "[]")
	for i, name := range sortedNames(state.HeldButtons(), mouse.Button.String) {
		set("held.buttons."+strconv.Itoa(i), name)
	}

	if pos, ok := state.MousePosition(); ok {
		set("cursor.x", pos.X)
		set("cursor.y", pos.Y)
	}
	diff := state.MouseDiff()
	set("diff.x", diff.X)
	set("diff.y", diff.Y)
	sx, sy := state.ScrollDiff()
	set("scroll.x", sx)
	set("scroll.y", sy)

	set("text", input.EncodeText(state.Text()))

	if w, h, ok := state.Resolution(); ok {
		set("resolution.width", w)
		set("resolution.height", h)
	}
	if mods := state.Modifiers(); mods != key.ModNone {
		set("modifiers", mods.String())
	}
	set("close_requested", state.CloseRequested())
	set("destroyed", state.Destroyed())

	if err != nil {
		return nil, fmt.Errorf("encoding tick %d: %w", tick, err)
	}
	return b, nil
}

func sortedNames[T any](items []T, name func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = name(it)
	}
	slices.Sort(out)
	return out
}
