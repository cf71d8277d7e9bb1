package numeric

import (
	"testing"

	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		input string
		want  types.TYPE_NAME
		ok    bool
	}{
		{"5", types.TYPE_INT, true},
		{"-12", types.TYPE_INT, true},
		{"1_000_000", types.TYPE_INT, true},
		{"0xFF", types.TYPE_INT, true},
		{"0o17", types.TYPE_INT, true},
		{"0b1010", types.TYPE_INT, true},
		{"3.14", types.TYPE_DOUBLE, true},
		{"5.0", types.TYPE_INT, true}, // typed by value, not by spelling
		{"1e3", types.TYPE_INT, true},
		{"1.5e-3", types.TYPE_DOUBLE, true},
		{"1e400", types.TYPE_DOUBLE, true},
		{"1__0", "", false},
		{"_1", "", false},
		{"1_", "", false},
		{"0x_1", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := TypeOf(tt.input)
			if ok != tt.ok {
				t.Fatalf("TypeOf(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("TypeOf(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatPredicates(t *testing.T) {
	if !IsHexadecimal("0xdead_beef") {
		t.Error("0xdead_beef should be hexadecimal")
	}
	if IsDecimal("1.5") {
		t.Error("1.5 should not be a decimal integer")
	}
	if !IsFloat("1.5") || IsFloat("15") {
		t.Error("IsFloat requires a fraction or exponent")
	}
	if !IsBinary("0b1_0") || IsBinary("0b102") {
		t.Error("IsBinary returned an unexpected result")
	}
	if !IsOctal("0o7_7") || IsOctal("0o8") {
		t.Error("IsOctal returned an unexpected result")
	}
}
