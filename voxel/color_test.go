package voxel

import (
	"errors"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#3B82F6")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if c.R != 0x3B || c.G != 0x82 || c.B != 0xF6 {
		t.Fatalf("wrong channels: %+v", c)
	}
	if c.String() != "#3B82F6" {
		t.Fatalf("re-encode mismatch: %s", c.String())
	}

	// leading '#' optional, hex case-insensitive
	c2, err := ParseColor("3b82f6")
	if err != nil {
		t.Fatalf("parse without hash failed: %v", err)
	}
	if c2 != c {
		t.Fatalf("case/hash variants differ: %v vs %v", c2, c)
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, s := range []string{"", "#", "#FFF", "#GGGGGG", "#12345", "#1234567", "red"} {
		if _, err := ParseColor(s); !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("expected ErrInvalidColor for %q, got %v", s, err)
		}
	}
}

func TestAdjustBrightness(t *testing.T) {
	base, _ := ParseColor("#3B82F6")
	if got := AdjustBrightness(base, 0); got != base {
		t.Fatalf("zero offset changed color: %s", got)
	}

	// lighting offsets at a 45 degree angle
	left := AdjustBrightness(base, -20+math.Sin(45*math.Pi/180)*10)
	if left.String() != "#2E75E9" {
		t.Fatalf("left fill mismatch: %s", left)
	}
	right := AdjustBrightness(base, -30+math.Cos(45*math.Pi/180)*10)
	if right.String() != "#246BDF" {
		t.Fatalf("right fill mismatch: %s", right)
	}

	// clamping
	if got := AdjustBrightness(Color{R: 255, G: 255, B: 255}, 50); got.String() != "#FFFFFF" {
		t.Fatalf("expected clamp at white, got %s", got)
	}
	if got := AdjustBrightness(Color{}, -50); got.String() != "#000000" {
		t.Fatalf("expected clamp at black, got %s", got)
	}
}

func TestLuminanceAndContrast(t *testing.T) {
	white := Color{R: 255, G: 255, B: 255}
	var black Color

	if l := Luminance(white); math.Abs(l-1) > 1e-9 {
		t.Fatalf("white luminance = %v, want 1", l)
	}
	if l := Luminance(black); l != 0 {
		t.Fatalf("black luminance = %v, want 0", l)
	}
	if cr := ContrastRatio(black, white); math.Abs(cr-21) > 1e-9 {
		t.Fatalf("black/white contrast = %v, want 21", cr)
	}
	if ContrastRatio(black, white) != ContrastRatio(white, black) {
		t.Fatalf("contrast ratio not symmetric")
	}
}
