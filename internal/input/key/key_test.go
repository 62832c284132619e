package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyBackspace, "Backspace"},
		{KeyUp, "Up"},
		{KeyF12, "F12"},
		{KeySpace, "Space"},
		{KeyShift, "Shift"},
		{KeySuper, "Super"},
		{KeyRune, "Rune"},
		{Key(9999), "Key(9999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyIsFunctionKey(t *testing.T) {
	if !KeyF6.IsFunctionKey() || KeyEscape.IsFunctionKey() {
		t.Error("IsFunctionKey misclassified F6 or Escape")
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"escape", KeyEscape},
		{"esc", KeyEscape},
		{"return", KeyEnter},
		{"bs", KeyBackspace},
		{"pgdn", KeyPageDown},
		{"ctrl", KeyControl},
		{"cmd", KeySuper},
		{"kp5", KeyKP5},
		{"unknown", KeyNone},
		{"", KeyNone},
		{"ESCAPE", KeyEscape},
		{"  space  ", KeySpace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFromName(tt.name); got != tt.want {
				t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLogical(t *testing.T) {
	a := Char('a')
	if a.Key != KeyRune || a.IsBackspace() || a.IsZero() {
		t.Errorf("Char('a') classification wrong: %+v", a)
	}
	if Char('a') == Char('A') {
		t.Error("Char('a') and Char('A') must be distinct identities")
	}
	if Named(KeyEnter).Rune != 0 {
		t.Error("Named(Enter) should carry no rune")
	}
	if !Named(KeyBackspace).IsBackspace() {
		t.Error("Named(Backspace).IsBackspace() = false, want true")
	}
	if !(Logical{}).IsZero() {
		t.Error("zero Logical should report IsZero")
	}

	held := map[Logical]bool{Char('q'): true}
	if !held[Char('q')] {
		t.Error("Logical must be usable as a map key")
	}
}

func TestLogicalString(t *testing.T) {
	tests := []struct {
		l    Logical
		want string
	}{
		{Char('a'), "a"},
		{Char(' '), "Space"},
		{Char('\x01'), "U+0001"},
		{Named(KeyEnter), "Enter"},
		{Named(KeyBackspace), "Backspace"},
	}

	for _, tt := range tests {
		if got := tt.l.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.l, got, tt.want)
		}
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnidentified, "Unidentified"},
		{CodeKeyA, "KeyA"},
		{CodeKeyZ, "KeyZ"},
		{CodeDigit0, "Digit0"},
		{CodeShiftLeft, "ShiftLeft"},
		{CodeNumpadEnter, "NumpadEnter"},
		{Code(60000), "Unidentified"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeFromName(t *testing.T) {
	for c := CodeUnidentified + 1; c <= CodeNumpadEnter; c++ {
		if got := CodeFromName(c.String()); got != c {
			t.Errorf("CodeFromName(%q) = %v, want %v", c.String(), got, c)
		}
	}
	if got := CodeFromName(" keyw "); got != CodeKeyW {
		t.Errorf("CodeFromName(\" keyw \") = %v, want KeyW", got)
	}
	if got := CodeFromName("nope"); got != CodeUnidentified {
		t.Errorf("CodeFromName(\"nope\") = %v, want Unidentified", got)
	}
}

func TestCodeForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Code
	}{
		{'a', CodeKeyA},
		{'W', CodeKeyW},
		{'7', CodeDigit7},
		{'&', CodeDigit7},
		{'?', CodeSlash},
		{' ', CodeSpace},
		{'é', CodeUnidentified},
	}

	for _, tt := range tests {
		if got := CodeForRune(tt.r); got != tt.want {
			t.Errorf("CodeForRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestCodeForKey(t *testing.T) {
	tests := []struct {
		k    Key
		want Code
	}{
		{KeyBackspace, CodeBackspace},
		{KeyUp, CodeArrowUp},
		{KeyF1, CodeF1},
		{KeyF12, CodeF12},
		{KeyKP0, CodeNumpad0},
		{KeyKP9, CodeNumpad9},
		{KeyShift, CodeShiftLeft},
		{KeyRune, CodeUnidentified},
	}

	for _, tt := range tests {
		if got := CodeForKey(tt.k); got != tt.want {
			t.Errorf("CodeForKey(%v) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestCodeModifier(t *testing.T) {
	if CodeShiftRight.Modifier() != ModShift {
		t.Error("ShiftRight should be the Shift modifier")
	}
	if CodeSuperLeft.Modifier() != ModMeta {
		t.Error("SuperLeft should be the Meta modifier")
	}
	if CodeKeyA.Modifier() != ModNone {
		t.Error("KeyA should not be a modifier")
	}
}
