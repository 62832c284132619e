package key

import (
	"errors"
	"testing"
)

func TestParseLogical(t *testing.T) {
	tests := []struct {
		spec string
		want Logical
	}{
		{"a", Char('a')},
		{"A", Char('A')},
		{"@", Char('@')},
		{"é", Char('é')},
		{" ", Named(KeySpace)},
		{"Space", Named(KeySpace)},
		{"Enter", Named(KeyEnter)},
		{"backspace", Named(KeyBackspace)},
		{"<BS>", Named(KeyBackspace)},
		{"<CR>", Named(KeyEnter)},
		{"<a>", Char('a')},
		{"Shift", Named(KeyShift)},
		{"F5", Named(KeyF5)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseLogical(tt.spec)
			if err != nil {
				t.Fatalf("ParseLogical(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseLogical(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseLogicalErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"NotAKey", ErrInvalidSpec},
		{"<>", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := ParseLogical(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseLogical(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		spec string
		want Code
	}{
		{"KeyW", CodeKeyW},
		{"keyw", CodeKeyW},
		{"Digit1", CodeDigit1},
		{"ArrowUp", CodeArrowUp},
		{"ShiftLeft", CodeShiftLeft},
		{"w", CodeKeyW},
		{"9", CodeDigit9},
	}

	for _, tt := range tests {
		got, err := ParseCode(tt.spec)
		if err != nil {
			t.Fatalf("ParseCode(%q) error: %v", tt.spec, err)
		}
		if got != tt.want {
			t.Errorf("ParseCode(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}

	if _, err := ParseCode(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("ParseCode(\"\") error = %v, want ErrEmptySpec", err)
	}
	if _, err := ParseCode("Hyper"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("ParseCode(\"Hyper\") error = %v, want ErrInvalidSpec", err)
	}
}

