// internal/models/contrast.go
package models

import (
	"math"

	"github.com/codr1/designtokens/internal/hexcolor"
)

const darkTextColor = "#000000"
const lightTextColor = "#FFFFFF"

// Swatch is the render-ready form of a color entry.
type Swatch struct {
	Entry     ColorEntry    `json:"entry"`
	Color     hexcolor.RGBA `json:"color"`
	Hex       string        `json:"hex"`
	CSS       string        `json:"css"`
	TextColor string        `json:"textColor"`
	Contrast  float64       `json:"contrast"`
}

func NewSwatch(entry ColorEntry) Swatch {
	color := hexcolor.Decode(entry.Value)
	text, ratio := ReadableTextColor(color)
	return Swatch{
		Entry:     entry,
		Color:     color,
		Hex:       color.Hex(),
		CSS:       color.CSS(),
		TextColor: text,
		Contrast:  ratio,
	}
}

func NewSwatches(entries []ColorEntry) []Swatch {
	swatches := make([]Swatch, len(entries))
	for i, entry := range entries {
		swatches[i] = NewSwatch(entry)
	}
	return swatches
}

// ReadableTextColor picks black or white label text for a swatch, whichever
// contrasts more, and returns the WCAG contrast ratio it achieves. The swatch
// is composited over white first so translucent colors read as displayed.
func ReadableTextColor(background hexcolor.RGBA) (string, float64) {
	bg := overWhite(background)
	bgL := relativeLuminance(bg)

	best := darkTextColor
	bestRatio := 0.0
	for _, text := range []string{darkTextColor, lightTextColor} {
		ratio := contrastRatio(relativeLuminance(hexcolor.Decode(text)), bgL)
		if ratio > bestRatio {
			best = text
			bestRatio = ratio
		}
	}
	return best, bestRatio
}

func overWhite(c hexcolor.RGBA) hexcolor.RGBA {
	blend := func(v float64) float64 { return v*c.A + (1 - c.A) }
	return hexcolor.RGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: 1}
}

func contrastRatio(a, b float64) float64 {
	lightest := math.Max(a, b)
	darkest := math.Min(a, b)
	return (lightest + 0.05) / (darkest + 0.05)
}

func relativeLuminance(c hexcolor.RGBA) float64 {
	return 0.2126*srgbToLinear(c.R) + 0.7152*srgbToLinear(c.G) + 0.0722*srgbToLinear(c.B)
}

func srgbToLinear(value float64) float64 {
	if value <= 0.03928 {
		return value / 12.92
	}
	return math.Pow((value+0.055)/1.055, 2.4)
}
