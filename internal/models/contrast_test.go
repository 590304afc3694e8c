package models

import (
	"math"
	"testing"

	"github.com/codr1/designtokens/internal/hexcolor"
)

func TestReadableTextColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "black", value: "000000", want: lightTextColor},
		{name: "white", value: "FFFFFF", want: darkTextColor},
		{name: "dark_slate", value: "#1F2937", want: lightTextColor},
		{name: "pale_gray", value: "#E5E7EB", want: darkTextColor},
		{name: "translucent_black", value: "00000010", want: darkTextColor},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ratio := ReadableTextColor(hexcolor.Decode(test.value))
			if got != test.want {
				t.Fatalf("ReadableTextColor(%q) = %s, want %s", test.value, got, test.want)
			}
			if ratio < 1 || ratio > 21 {
				t.Fatalf("contrast ratio %v outside [1, 21]", ratio)
			}
		})
	}
}

func TestReadableTextColor_MaxContrast(t *testing.T) {
	_, ratio := ReadableTextColor(hexcolor.Decode("000000"))
	if math.Abs(ratio-21) > 1e-9 {
		t.Fatalf("black on white contrast = %v, want 21", ratio)
	}
}

func TestNewSwatch_Translucent(t *testing.T) {
	swatch := NewSwatch(ColorEntry{Name: "Overlay", Value: "#00FF0080"})

	if swatch.Hex != "#00ff0080" {
		t.Fatalf("Hex = %q", swatch.Hex)
	}
	if swatch.CSS != "rgba(0, 255, 0, 0.502)" {
		t.Fatalf("CSS = %q", swatch.CSS)
	}
	if swatch.Entry.Name != "Overlay" {
		t.Fatalf("entry not carried: %+v", swatch.Entry)
	}
}

func TestNewSwatch_UnparseableValueIsWhite(t *testing.T) {
	swatch := NewSwatch(ColorEntry{Value: ""})
	if swatch.Color != hexcolor.White || swatch.TextColor != darkTextColor {
		t.Fatalf("unexpected swatch: %+v", swatch)
	}
}
