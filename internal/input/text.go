package input

import "strings"

// TextChar is one entry of the per-tick text buffer: either a typed
// character or a Backspace. Keeping both in one ordered buffer preserves
// the sub-tick order of typing and deleting.
type TextChar struct {
	// Backspace is set for a backspace entry. Char is zero then.
	Backspace bool
	Char      rune
}

// CharOf returns the text entry for a typed character.
func CharOf(r rune) TextChar {
	return TextChar{Char: r}
}

// BackspaceChar returns the backspace text entry.
func BackspaceChar() TextChar {
	return TextChar{Backspace: true}
}

// String returns the character, or "<BS>" for a backspace.
func (c TextChar) String() string {
	if c.Backspace {
		return "<BS>"
	}
	return string(c.Char)
}

// isTextRune reports whether a received character belongs in the text
// buffer. Backspace arrives through the key path; line breaks are not text.
func isTextRune(r rune) bool {
	switch r {
	case '\b', '\r', '\n':
		return false
	}
	return true
}

// ApplyText edits s by the entries of buf, appending characters and
// deleting the last rune on backspace.
func ApplyText(s string, buf []TextChar) string {
	runes := []rune(s)
	for _, c := range buf {
		if c.Backspace {
			if len(runes) > 0 {
				runes = runes[:len(runes)-1]
			}
			continue
		}
		runes = append(runes, c.Char)
	}
	return string(runes)
}

// EncodeText renders buf as a string with each backspace entry as '\b'.
func EncodeText(buf []TextChar) string {
	var b strings.Builder
	for _, c := range buf {
		if c.Backspace {
			b.WriteByte('\b')
			continue
		}
		b.WriteRune(c.Char)
	}
	return b.String()
}

// DecodeText is the inverse of EncodeText.
func DecodeText(s string) []TextChar {
	var out []TextChar
	for _, r := range s {
		if r == '\b' {
			out = append(out, BackspaceChar())
			continue
		}
		out = append(out, CharOf(r))
	}
	return out
}
