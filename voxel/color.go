package voxel

import (
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidColor reports a color string that is not #RRGGBB form.
var ErrInvalidColor = fmt.Errorf("invalid color")

// Color is a validated 8-bit RGB color. Construct via ParseColor; the zero
// value is black.
type Color struct {
	R, G, B uint8
}

// ParseColor parses "#RRGGBB" (leading '#' optional, hex digits
// case-insensitive) into a Color.
func ParseColor(s string) (Color, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, err := strconv.ParseUint(h[0:2], 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	g, err := strconv.ParseUint(h[2:4], 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	b, err := strconv.ParseUint(h[4:6], 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// String re-encodes the color as #RRGGBB with uppercase hex digits.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA returns the color as normalized float RGBA with alpha 1.
func (c Color) RGBA() [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, 1}
}

// AdjustBrightness adds amount to each channel independently, rounding to
// the nearest integer and clamping to [0,255]. amount 0 is the identity.
func AdjustBrightness(c Color, amount float64) Color {
	return Color{
		R: clampChannel(float64(c.R) + amount),
		G: clampChannel(float64(c.G) + amount),
		B: clampChannel(float64(c.B) + amount),
	}
}

func clampChannel(v float64) uint8 {
	n := math.Round(v)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// Luminance computes the WCAG relative luminance of the color.
func Luminance(c Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(ch uint8) float64 {
	v := float64(ch) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two colors,
// in [1,21]. Order of arguments does not matter.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
