package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// ParseLogical parses a logical key specification.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Key names: "Enter", "Escape", "Backspace", "Space", "Shift", "F5"
//   - Bracketed names: "<CR>", "<BS>", "<Esc>"
//
// Character keys are case-sensitive because the layout decides the
// produced character: "a" and "A" are different logical keys.
func ParseLogical(spec string) (Logical, error) {
	// A lone space names the space bar; anything longer is trimmed.
	if spec == " " {
		return Named(KeySpace), nil
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Logical{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		spec = spec[1 : len(spec)-1]
	}

	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		if r == ' ' {
			return Named(KeySpace), nil
		}
		return Char(r), nil
	}

	if k := KeyFromName(spec); k != KeyNone {
		return Named(k), nil
	}

	return Logical{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, spec)
}

// ParseCode parses a physical key code name such as "KeyW", "Digit1",
// "ArrowUp" or "ShiftLeft". A single letter or digit is accepted as
// shorthand for its US QWERTY position.
func ParseCode(spec string) (Code, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return CodeUnidentified, ErrEmptySpec
	}

	if c := CodeFromName(spec); c != CodeUnidentified {
		return c, nil
	}

	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		if c := CodeForRune(r); c != CodeUnidentified {
			return c, nil
		}
	}

	return CodeUnidentified, fmt.Errorf("%w: unknown code %q", ErrInvalidSpec, spec)
}
