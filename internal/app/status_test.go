package app

import (
	"strings"
	"testing"

	"github.com/dshills/inputstate/internal/input"
	"github.com/dshills/inputstate/internal/input/event"
	"github.com/dshills/inputstate/internal/input/key"
	"github.com/dshills/inputstate/internal/input/mouse"
)

func runTick(h *input.Helper, evs ...event.Event) input.Reader {
	h.Update(event.NewTick{})
	for _, ev := range evs {
		h.Update(ev)
	}
	h.Update(event.TickComplete{})
	return h.State()
}

func TestNewStatusLine(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		session    string
		quit       []string
		wantHeader string
		wantHint   string
	}{
		{
			name:       "full",
			version:    "v1.0.0",
			session:    "0123456789abcdef",
			quit:       []string{"ctrl+c", "ctrl+q"},
			wantHeader: "inputstate v1.0.0  session 01234567",
			wantHint:   "press ctrl+c or ctrl+q to quit",
		},
		{
			name:       "no version no quit keys",
			session:    "abc",
			wantHeader: "inputstate  session abc",
			wantHint:   "press a quit key to exit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStatusLine(tt.version, tt.session, tt.quit)
			if s.header != tt.wantHeader {
				t.Errorf("header = %q, want %q", s.header, tt.wantHeader)
			}
			if s.hint != tt.wantHint {
				t.Errorf("hint = %q, want %q", s.hint, tt.wantHint)
			}
		})
	}
}

func TestStatusLine_Lines(t *testing.T) {
	h := input.NewHelper()
	s := newStatusLine("", "abc", nil)

	state := runTick(h,
		event.KeyPress(key.Named(key.KeyShift), key.CodeShiftLeft),
		event.KeyPress(key.Char('B'), key.CodeKeyB),
		event.ReceivedCharacter{Char: 'B'},
		event.CursorMoved{Position: mouse.Position{X: 10, Y: 4}},
		event.MouseInput{Button: mouse.ButtonLeft, State: event.Pressed},
		event.Resized{Width: 80, Height: 24},
	)
	s.update(state)
	lines := s.lines(1, state)

	want := map[int]string{
		0: "inputstate  session abc  tick 1",
		2: "keys:    B Shift",
		3: "codes:   KeyB ShiftLeft",
		4: "mods:    Shift",
		7: "size:    80x24",
		8: "text:    B",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if !strings.HasPrefix(lines[5], "mouse:   10,4") || !strings.HasSuffix(lines[5], "buttons left") {
		t.Errorf("mouse line = %q", lines[5])
	}
}

func TestStatusLine_UnknownCursorAndSize(t *testing.T) {
	h := input.NewHelper()
	s := newStatusLine("", "abc", nil)
	state := runTick(h)
	lines := s.lines(1, state)

	if !strings.HasPrefix(lines[5], "mouse:   unknown") {
		t.Errorf("mouse line = %q", lines[5])
	}
	if lines[7] != "size:    unknown" {
		t.Errorf("size line = %q", lines[7])
	}
}

func TestStatusLine_TypedText(t *testing.T) {
	h := input.NewHelper()
	s := newStatusLine("", "abc", nil)

	s.update(runTick(h, event.ReceivedCharacter{Char: 'h'}, event.ReceivedCharacter{Char: 'i'}))
	s.update(runTick(h, event.KeyPress(key.Named(key.KeyBackspace), key.CodeBackspace)))
	if s.typed != "h" {
		t.Fatalf("typed = %q, want %q", s.typed, "h")
	}

	var evs []event.Event
	for i := 0; i < maxTyped+5; i++ {
		evs = append(evs, event.ReceivedCharacter{Char: 'x'})
	}
	s.update(runTick(h, evs...))
	if len(s.typed) != maxTyped {
		t.Errorf("typed length = %d, want %d", len(s.typed), maxTyped)
	}
	if strings.Contains(s.typed, "h") {
		t.Error("oldest text should be trimmed first")
	}
}
