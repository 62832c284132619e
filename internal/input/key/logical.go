package key

import (
	"fmt"
	"unicode"
)

// Logical is a layout-dependent key identity: either a named key or the
// character the current layout produced. It is comparable and can be used
// as a map key.
type Logical struct {
	// Key is the named key, or KeyRune for character keys.
	Key Key

	// Rune is the produced character. Zero for named keys.
	Rune rune
}

// Named returns the logical identity of a named key.
func Named(k Key) Logical {
	return Logical{Key: k}
}

// Char returns the logical identity of a character key.
func Char(r rune) Logical {
	return Logical{Key: KeyRune, Rune: r}
}

// IsBackspace returns true if this identity is the Backspace key.
func (l Logical) IsBackspace() bool {
	return l.Key == KeyBackspace
}

// IsZero returns true for the empty identity.
func (l Logical) IsZero() bool {
	return l.Key == KeyNone && l.Rune == 0
}

// String returns the character for character keys and the key name otherwise.
func (l Logical) String() string {
	if l.Key == KeyRune {
		switch {
		case l.Rune == ' ':
			return "Space"
		case unicode.IsPrint(l.Rune):
			return string(l.Rune)
		default:
			return fmt.Sprintf("U+%04X", l.Rune)
		}
	}
	return l.Key.String()
}
