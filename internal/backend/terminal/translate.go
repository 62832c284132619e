package terminal

import (
	"slices"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputstate/internal/input/event"
	"github.com/dshills/inputstate/internal/input/key"
	"github.com/dshills/inputstate/internal/input/mouse"
)

// DefaultReleaseDelay is how long a key stays held after its last press
// or repeat. It is a little longer than the usual OS repeat delay so a key
// held down does not flicker between the first press and the first repeat.
const DefaultReleaseDelay = 550 * time.Millisecond

// heldKey is a key the terminal reported as pressed and that has not been
// released yet.
type heldKey struct {
	code key.Code
	at   time.Time
}

// Translator converts tcell events into raw input events.
//
// Terminals only report key presses. Translator remembers every pressed key
// and reports a release once ReleaseDelay passes without another press or
// repeat; a press that arrives while the key is remembered is an OS repeat.
//
// Physical codes are timed on their own. Logical keys sharing a code ('a'
// and 'A' on KeyA) stay held until the last press on that code expires,
// then all of them are released together.
type Translator struct {
	releaseDelay time.Duration
	quit         map[tcell.Key]bool

	held    map[key.Logical]heldKey
	codes   map[key.Code]time.Time
	buttons tcell.ButtonMask
	cursor  mouse.Position
	moved   bool
}

// Option configures a Translator.
type Option func(*Translator)

// WithReleaseDelay sets how long a key stays held without a repeat.
func WithReleaseDelay(d time.Duration) Option {
	return func(t *Translator) {
		if d > 0 {
			t.releaseDelay = d
		}
	}
}

// WithQuitKeys sets the keys translated into a close request. Names use
// the form "ctrl+c" or "esc"; unknown names are ignored. If no name is
// usable Ctrl+C stays the quit key.
func WithQuitKeys(names ...string) Option {
	return func(t *Translator) {
		quit := make(map[tcell.Key]bool, len(names))
		for _, name := range names {
			if k, ok := parseQuitKey(name); ok {
				quit[k] = true
			}
		}
		if len(quit) > 0 {
			t.quit = quit
		}
	}
}

// NewTranslator creates a translator. By default Ctrl+C requests close.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		releaseDelay: DefaultReleaseDelay,
		quit:         map[tcell.Key]bool{tcell.KeyCtrlC: true},
		held:         make(map[key.Logical]heldKey),
		codes:        make(map[key.Code]time.Time),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate converts one tcell event received at now.
func (t *Translator) Translate(ev tcell.Event, now time.Time) []event.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(e, now)
	case *tcell.EventMouse:
		return t.translateMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return []event.Event{event.Resized{Width: w, Height: h}}
	}
	return nil
}

func (t *Translator) translateKey(e *tcell.EventKey, now time.Time) []event.Event {
	if t.quit[chordKey(e)] {
		return []event.Event{event.CloseRequested{}}
	}

	logical, code, text := identify(e)
	if logical.IsZero() {
		return nil
	}

	var out []event.Event
	for _, mod := range modifiersOf(e) {
		out = append(out, t.press(key.Named(mod.Key()), modifierCode(mod), now))
	}
	out = append(out, t.press(logical, code, now))
	if text != 0 {
		out = append(out, event.ReceivedCharacter{Char: text})
	}
	return out
}

func (t *Translator) press(l key.Logical, c key.Code, now time.Time) event.Event {
	_, repeat := t.held[l]
	t.held[l] = heldKey{code: c, at: now}
	if last, ok := t.codes[c]; !ok || now.After(last) {
		t.codes[c] = now
	}
	ev := event.KeyPress(l, c)
	ev.Repeat = repeat
	return ev
}

// Expire releases every physical code whose last press is at least
// ReleaseDelay before now, together with the logical keys pressed on it.
// Releases are ordered by key so output is deterministic.
func (t *Translator) Expire(now time.Time) []event.Event {
	expiredCodes := make(map[key.Code]bool)
	for c, at := range t.codes {
		if now.Sub(at) >= t.releaseDelay {
			expiredCodes[c] = true
		}
	}
	if len(expiredCodes) == 0 {
		return nil
	}

	var expired []key.Logical
	for l, h := range t.held {
		if expiredCodes[h.code] {
			expired = append(expired, l)
		}
	}
	slices.SortFunc(expired, compareLogical)

	out := make([]event.Event, 0, len(expired))
	for _, l := range expired {
		out = append(out, event.KeyRelease(l, t.held[l].code))
		delete(t.held, l)
	}
	for c := range expiredCodes {
		delete(t.codes, c)
	}
	return out
}

// ReleaseAll releases every remembered key and mouse button, e.g. when the
// terminal loses focus or shuts down.
func (t *Translator) ReleaseAll() []event.Event {
	var out []event.Event
	if len(t.held) > 0 {
		keys := make([]key.Logical, 0, len(t.held))
		for l := range t.held {
			keys = append(keys, l)
		}
		slices.SortFunc(keys, compareLogical)
		for _, l := range keys {
			out = append(out, event.KeyRelease(l, t.held[l].code))
		}
		clear(t.held)
	}
	clear(t.codes)
	for _, b := range buttonBits {
		if t.buttons&b.mask != 0 {
			out = append(out, event.MouseInput{Button: b.button, State: event.Released})
		}
	}
	t.buttons = 0
	return out
}

// Held returns the number of keys the translator considers down.
func (t *Translator) Held() int {
	return len(t.held)
}

func compareLogical(a, b key.Logical) int {
	if a.Key != b.Key {
		return int(a.Key) - int(b.Key)
	}
	return int(a.Rune) - int(b.Rune)
}

var buttonBits = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.Button1, mouse.ButtonLeft},
	{tcell.Button2, mouse.ButtonRight},
	{tcell.Button3, mouse.ButtonMiddle},
	{tcell.Button4, mouse.ButtonBack},
	{tcell.Button5, mouse.ButtonForward},
}

var wheelBits = []struct {
	mask tcell.ButtonMask
	x, y float32
}{
	{tcell.WheelUp, 0, 1},
	{tcell.WheelDown, 0, -1},
	{tcell.WheelLeft, -1, 0},
	{tcell.WheelRight, 1, 0},
}

func (t *Translator) translateMouse(e *tcell.EventMouse) []event.Event {
	var out []event.Event

	x, y := e.Position()
	pos := mouse.Position{X: float32(x), Y: float32(y)}
	if !t.moved || pos != t.cursor {
		t.cursor, t.moved = pos, true
		out = append(out, event.CursorMoved{Position: pos})
	}

	mask := e.Buttons()
	for _, b := range buttonBits {
		was, is := t.buttons&b.mask != 0, mask&b.mask != 0
		switch {
		case is && !was:
			out = append(out, event.MouseInput{Button: b.button, State: event.Pressed})
		case was && !is:
			out = append(out, event.MouseInput{Button: b.button, State: event.Released})
		}
	}
	t.buttons = mask &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	for _, w := range wheelBits {
		if mask&w.mask != 0 {
			out = append(out, event.MouseWheel{Delta: mouse.LineDelta(w.x, w.y)})
		}
	}
	return out
}

// identify returns the logical key, physical code and produced text of a
// tcell key event. text is zero when the key produces no text.
func identify(e *tcell.EventKey) (key.Logical, key.Code, rune) {
	k := e.Key()
	mods := e.Modifiers()

	if k == tcell.KeyRune {
		r := e.Rune()
		if r == ' ' {
			return key.Named(key.KeySpace), key.CodeSpace, textFor(r, mods)
		}
		return key.Char(r), key.CodeForRune(r), textFor(r, mods)
	}

	if named := namedKey(k); named != key.KeyNone {
		return key.Named(named), key.CodeForKey(named), 0
	}

	// Remaining control codes are Ctrl+letter chords.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + (k - tcell.KeyCtrlA))
		return key.Char(r), key.CodeForRune(r), 0
	}

	return key.Logical{}, key.CodeUnidentified, 0
}

// chordKey returns the control-code key for Ctrl+letter, whether tcell
// reported it as a control code or as a rune with ModCtrl.
func chordKey(e *tcell.EventKey) tcell.Key {
	if e.Key() != tcell.KeyRune || e.Modifiers()&tcell.ModCtrl == 0 {
		return e.Key()
	}
	r := e.Rune()
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return e.Key()
	}
	return tcell.KeyCtrlA + tcell.Key(r-'a')
}

func textFor(r rune, mods tcell.ModMask) rune {
	if mods&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		return 0
	}
	return r
}

// namedKey maps tcell special keys. Control-code aliases (Ctrl+H for
// Backspace, Ctrl+I for Tab, Ctrl+M for Enter) resolve to the named key.
func namedKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab, tcell.KeyBacktab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	case tcell.KeyPause:
		return key.KeyPause
	case tcell.KeyPrint:
		return key.KeyPrintScreen
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.KeyF1 + key.Key(k-tcell.KeyF1)
	}
	return key.KeyNone
}

// modifiersOf lists the modifiers tcell reported with a key. Shift is only
// reported for named keys; for characters it is already part of the rune.
func modifiersOf(e *tcell.EventKey) []key.Modifier {
	m := e.Modifiers()
	var out []key.Modifier
	if m&tcell.ModCtrl != 0 {
		out = append(out, key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		out = append(out, key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		out = append(out, key.ModMeta)
	}
	if m&tcell.ModShift != 0 && e.Key() != tcell.KeyRune {
		out = append(out, key.ModShift)
	}
	return out
}

func modifierCode(m key.Modifier) key.Code {
	switch m {
	case key.ModShift:
		return key.CodeShiftLeft
	case key.ModCtrl:
		return key.CodeControlLeft
	case key.ModAlt:
		return key.CodeAltLeft
	case key.ModMeta:
		return key.CodeSuperLeft
	}
	return key.CodeUnidentified
}

// ValidQuitKey reports whether WithQuitKeys accepts name.
func ValidQuitKey(name string) bool {
	_, ok := parseQuitKey(name)
	return ok
}

// parseQuitKey parses "ctrl+<letter>" or "esc".
func parseQuitKey(name string) (tcell.Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "esc", "escape":
		return tcell.KeyEscape, true
	}
	letter, ok := strings.CutPrefix(name, "ctrl+")
	if !ok || len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return 0, false
	}
	return tcell.KeyCtrlA + tcell.Key(letter[0]-'a'), true
}
