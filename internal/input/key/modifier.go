package key

import "strings"

// Modifier is a set of modifier keys held at the same time.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates either Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates either Control key.
	ModCtrl

	// ModAlt indicates either Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates either Super key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains every modifier in mod.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns m with mod removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// Key returns the logical named key for a single modifier, or KeyNone.
func (m Modifier) Key() Key {
	switch m {
	case ModShift:
		return KeyShift
	case ModCtrl:
		return KeyControl
	case ModAlt:
		return KeyAlt
	case ModMeta:
		return KeySuper
	}
	return KeyNone
}

// String returns a representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// AllModifiers lists each single modifier in display order.
var AllModifiers = []Modifier{ModCtrl, ModAlt, ModShift, ModMeta}

var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"super":   ModMeta,
	"cmd":     ModMeta,
	"win":     ModMeta,
}

// ModifierFromName returns the Modifier for a name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	return modifierNameMap[strings.ToLower(strings.TrimSpace(name))]
}

// ParseModifiers parses "Ctrl+Alt". Unknown parts are ignored.
func ParseModifiers(s string) Modifier {
	var result Modifier
	for _, part := range strings.Split(s, "+") {
		result = result.With(ModifierFromName(part))
	}
	return result
}
