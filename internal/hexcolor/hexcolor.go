// internal/hexcolor/hexcolor.go
package hexcolor

import (
	"errors"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const maxHexDigits = 8

// ErrInvalidColorFormat is returned by DecodeStrict for input that is not a
// 6 or 8 digit hex color.
var ErrInvalidColorFormat = errors.New("invalid color format")

// RGBA is a color with every channel in [0, 1].
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// White is the fallback for input the lenient decoder cannot interpret.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// Decode maps any string to a color. It never fails: input it cannot make
// sense of becomes opaque white.
//
// The string is trimmed and one leading '#' is removed. An odd number of
// digits is padded by repeating the last one and anything past eight digits
// is dropped. The result is read as gray (2), gray+alpha (4), RGB (6) or
// RGBA (8).
func Decode(s string) RGBA {
	digits := []rune(strings.TrimPrefix(strings.TrimSpace(s), "#"))

	if len(digits)%2 != 0 {
		digits = append(digits, digits[len(digits)-1])
	}
	if len(digits) > maxHexDigits {
		digits = digits[:maxHexDigits]
	}

	value := scanHex(string(digits))

	switch len(digits) {
	case 2:
		gray := channel(value)
		return RGBA{R: gray, G: gray, B: gray, A: 1}
	case 4:
		gray := channel(value >> 8)
		return RGBA{R: gray, G: gray, B: gray, A: channel(value)}
	case 6:
		return RGBA{
			R: channel(value >> 16),
			G: channel(value >> 8),
			B: channel(value),
			A: 1,
		}
	case 8:
		return RGBA{
			R: channel(value >> 24),
			G: channel(value >> 16),
			B: channel(value >> 8),
			A: channel(value),
		}
	default:
		return White
	}
}

// DecodeStrict accepts only RRGGBB or RRGGBBAA (with optional '#') and
// reports ErrInvalidColorFormat for anything else.
func DecodeStrict(s string) (RGBA, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), "#", "")
	if len(normalized) != 6 && len(normalized) != 8 {
		return RGBA{}, fmt.Errorf("%w: %q must have 6 or 8 hex digits", ErrInvalidColorFormat, s)
	}
	for i := 0; i < len(normalized); i++ {
		if _, ok := hexDigit(normalized[i]); !ok {
			return RGBA{}, fmt.Errorf("%w: %q contains non-hex character %q", ErrInvalidColorFormat, s, normalized[i])
		}
	}

	// Every digit is valid, so the lenient path yields the exact value.
	return Decode(normalized), nil
}

// IsValid reports whether DecodeStrict would accept s.
func IsValid(s string) bool {
	_, err := DecodeStrict(s)
	return err == nil
}

// scanHex reads the longest leading run of hex digits, accepting an optional
// 0x prefix, and ignores the rest. No digits yields 0.
func scanHex(s string) uint64 {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		if _, ok := hexDigit(s[2]); ok {
			s = s[2:]
		}
	}

	var value uint64
	for i := 0; i < len(s); i++ {
		digit, ok := hexDigit(s[i])
		if !ok {
			break
		}
		value = value<<4 | uint64(digit)
	}
	return value
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func channel(v uint64) float64 {
	return float64(v&0xFF) / 255.0
}

// Colorful drops alpha and returns the color for luminance and blending math.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex formats the color as #rrggbb, or #rrggbbaa when it is not opaque.
func (c RGBA) Hex() string {
	rgb := c.Colorful().Clamped().Hex()
	if c.A >= 1 {
		return rgb
	}
	return fmt.Sprintf("%s%02x", rgb, to8Bit(c.A))
}

// CSS formats the color as a CSS rgba() value.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", to8Bit(c.R), to8Bit(c.G), to8Bit(c.B), clamp01(c.A))
}

func to8Bit(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
