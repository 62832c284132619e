package key

import "testing"

func TestModifierHas(t *testing.T) {
	m := ModCtrl.With(ModShift)

	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Errorf("%v should contain Ctrl and Shift", m)
	}
	if !m.Has(ModCtrl | ModShift) {
		t.Errorf("%v should contain Ctrl+Shift together", m)
	}
	if m.Has(ModAlt) || m.Has(ModCtrl|ModAlt) {
		t.Errorf("%v should not contain Alt", m)
	}
	if m.Has(ModNone) {
		t.Error("Has(ModNone) should be false")
	}
	if got := m.Without(ModCtrl); got != ModShift {
		t.Errorf("Without(Ctrl) = %v, want Shift", got)
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModShift | ModCtrl, "Ctrl+Shift"},
		{ModMeta | ModAlt | ModCtrl | ModShift, "Ctrl+Alt+Shift+Meta"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierKey(t *testing.T) {
	for _, m := range AllModifiers {
		if m.Key() < KeyShift || m.Key() > KeySuper {
			t.Errorf("%v.Key() = %v, want a modifier key", m, m.Key())
		}
	}
	if (ModCtrl | ModAlt).Key() != KeyNone {
		t.Error("combined modifiers have no single key")
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		in   string
		want Modifier
	}{
		{"", ModNone},
		{"ctrl", ModCtrl},
		{"Ctrl+Alt", ModCtrl | ModAlt},
		{"shift + cmd", ModShift | ModMeta},
		{"ctrl+bogus", ModCtrl},
	}

	for _, tt := range tests {
		if got := ParseModifiers(tt.in); got != tt.want {
			t.Errorf("ParseModifiers(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
