package colorutil

import (
	"math"
	"testing"
)

func TestParseHexForms(t *testing.T) {
	rgb, alpha, err := ParseHex("#1E90FF")
	if err != nil {
		t.Fatal(err)
	}
	if rgb != (RGB{R: 0x1E, G: 0x90, B: 0xFF}) || alpha != 1.0 {
		t.Fatalf("unexpected parse: %+v alpha=%v", rgb, alpha)
	}

	rgb, _, err = ParseHex("#abc")
	if err != nil {
		t.Fatal(err)
	}
	if rgb != (RGB{R: 0xAA, G: 0xBB, B: 0xCC}) {
		t.Fatalf("short form should expand: %+v", rgb)
	}

	_, alpha, err = ParseHex("#FF8C0033")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(alpha-0x33/255.0) > 1e-9 {
		t.Fatalf("alpha mismatch: %v", alpha)
	}

	for _, bad := range []string{"", "#12345", "red", "#GGHHII"} {
		if _, _, err := ParseHex(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	if got := (RGB{R: 30, G: 144, B: 255}).Hex(); got != "#1E90FF" {
		t.Fatalf("Hex() = %q", got)
	}
}

func TestBlend(t *testing.T) {
	fg := RGB{R: 255, G: 255, B: 255}
	bg := RGB{R: 0, G: 0, B: 0}
	if Blend(fg, bg, 0) != bg {
		t.Fatal("alpha 0 should return background")
	}
	if Blend(fg, bg, 1) != fg {
		t.Fatal("alpha 1 should return foreground")
	}
	mid := Blend(fg, bg, 0.5)
	if mid.R < 127 || mid.R > 128 {
		t.Fatalf("midpoint blend off: %+v", mid)
	}
}

func TestContrastRatioBounds(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	ratio := ContrastRatio(black, white)
	if math.Abs(ratio-21.0) > 0.1 {
		t.Fatalf("black/white contrast should be 21, got %v", ratio)
	}
	if ContrastRatio(white, black) != ratio {
		t.Fatal("contrast must be symmetric")
	}
}

func TestAutoTextColor(t *testing.T) {
	if AutoTextColor(RGB{R: 255, G: 255, B: 200}) != (RGB{}) {
		t.Fatal("light backgrounds take black text")
	}
	if AutoTextColor(RGB{R: 10, G: 10, B: 40}) != (RGB{R: 255, G: 255, B: 255}) {
		t.Fatal("dark backgrounds take white text")
	}
}
