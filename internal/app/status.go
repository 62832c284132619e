package app

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dshills/inputstate/internal/backend/terminal"
	"github.com/dshills/inputstate/internal/input"
)

// maxTyped is the number of cells of typed text kept for display.
const maxTyped = 60

// statusLine renders the live view of the reducer state.
type statusLine struct {
	header string
	hint   string
	typed  string
}

func newStatusLine(version, session string, quitKeys []string) statusLine {
	if len(session) > 8 {
		session = session[:8]
	}
	header := "inputstate"
	if version != "" {
		header += " " + version
	}
	header += "  session " + session

	hint := "press a quit key to exit"
	if len(quitKeys) > 0 {
		hint = "press " + strings.Join(quitKeys, " or ") + " to quit"
	}
	return statusLine{header: header, hint: hint}
}

// update folds this tick's text into the typed line.
func (s *statusLine) update(state input.Reader) {
	s.typed = input.ApplyText(s.typed, state.Text())
	for terminal.TextWidth(s.typed) > maxTyped {
		_, size := utf8.DecodeRuneInString(s.typed)
		s.typed = s.typed[size:]
	}
}

func (s *statusLine) lines(tick uint64, state input.Reader) []string {
	keys := names(state.HeldKeys())
	codes := names(state.HeldCodes())
	buttons := names(state.HeldButtons())

	cursor := "unknown"
	if pos, ok := state.MousePosition(); ok {
		cursor = fmt.Sprintf("%.0f,%.0f", pos.X, pos.Y)
	}
	diff := state.MouseDiff()
	sx, sy := state.ScrollDiff()

	size := "unknown"
	if w, h, ok := state.Resolution(); ok {
		size = fmt.Sprintf("%dx%d", w, h)
	}

	return []string{
		fmt.Sprintf("%s  tick %d", s.header, tick),
		"",
		"keys:    " + keys,
		"codes:   " + codes,
		"mods:    " + state.Modifiers().String(),
		fmt.Sprintf("mouse:   %s  diff %+.0f,%+.0f  buttons %s", cursor, diff.X, diff.Y, buttons),
		fmt.Sprintf("scroll:  %+.2f,%+.2f", sx, sy),
		"size:    " + size,
		"text:    " + s.typed,
		"",
		s.hint,
	}
}

func names[T fmt.Stringer](items []T) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	slices.Sort(out)
	return strings.Join(out, " ")
}
