package colorutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

// ParseHex accepts #RGB, #RRGGBB and #RRGGBBAA notations. The returned alpha
// is 1.0 unless an 8-digit value carries its own.
func ParseHex(s string) (RGB, float64, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return RGB{}, 0, fmt.Errorf("invalid hex color: %q", s)
	}
	parse := func(part string) (uint8, error) {
		v, err := strconv.ParseUint(part, 16, 8)
		return uint8(v), err
	}
	r, err := parse(hex[0:2])
	if err != nil {
		return RGB{}, 0, fmt.Errorf("invalid hex color: %q", s)
	}
	g, err := parse(hex[2:4])
	if err != nil {
		return RGB{}, 0, fmt.Errorf("invalid hex color: %q", s)
	}
	b, err := parse(hex[4:6])
	if err != nil {
		return RGB{}, 0, fmt.Errorf("invalid hex color: %q", s)
	}
	alpha := 1.0
	if len(hex) == 8 {
		a, err := parse(hex[6:8])
		if err != nil {
			return RGB{}, 0, fmt.Errorf("invalid hex color: %q", s)
		}
		alpha = float64(a) / 255.0
	}
	return RGB{R: r, G: g, B: b}, alpha, nil
}

// Hex returns the #RRGGBB form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend composites fg over bg with the given alpha in [0,1].
func Blend(fg, bg RGB, alpha float64) RGB {
	if alpha <= 0 {
		return bg
	}
	if alpha >= 1 {
		return fg
	}
	mix := func(f, b uint8) uint8 {
		return uint8(math.Round(float64(f)*alpha + float64(b)*(1-alpha)))
	}
	return RGB{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B)}
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func luminance(rgb RGB) float64 {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio computes the WCAG contrast ratio of two colors.
func ContrastRatio(fg, bg RGB) float64 {
	l1 := luminance(fg)
	l2 := luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// AutoTextColor picks black or white text for the given background.
func AutoTextColor(bg RGB) RGB {
	crBlack := ContrastRatio(black, bg)
	crWhite := ContrastRatio(white, bg)
	if crBlack >= 4.5 || crBlack >= crWhite {
		return black
	}
	return white
}
