package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DrawLines clears the screen and writes lines from the top-left corner,
// one per row, clipped to the screen size. Wide and combined characters are
// placed by grapheme cluster so typed text lines up.
func DrawLines(screen tcell.Screen, lines []string) {
	screen.Clear()

	width, height := screen.Size()
	style := tcell.StyleDefault

	for y, line := range lines {
		if y >= height {
			break
		}
		x := 0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			w := gr.Width()
			if w == 0 {
				continue
			}
			if x+w > width {
				break
			}
			runes := gr.Runes()
			screen.SetContent(x, y, runes[0], runes[1:], style)
			x += w
		}
	}

	screen.Show()
}

// TextWidth returns the number of terminal cells s occupies.
func TextWidth(s string) int {
	return uniseg.StringWidth(s)
}
