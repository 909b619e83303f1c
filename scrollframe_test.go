package scrollframe

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#0f172a", color.NRGBA{0x0f, 0x17, 0x2a, 0xff}},
		{"4ade80", color.NRGBA{0x4a, 0xde, 0x80, 0xff}},
		{"#4ADE8033", color.NRGBA{0x4a, 0xde, 0x80, 0x33}},
		{" #ffffff ", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		c, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got := c.toNRGBA(); got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#fff", "#12345", "#gggggg", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q) succeeded", bad)
		}
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}
	got := c.toRGBA()
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got != want {
		t.Errorf("toRGBA() = %v, want %v", got, want)
	}
	if c.WithAlpha(2).A != 1 || c.WithAlpha(-1).A != 0 {
		t.Error("WithAlpha does not clamp")
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: -10, Y: 0, Width: 120, Height: 50}
	if !r.Contains(0, 0) || !r.Contains(110, 50) || r.Contains(111, 10) {
		t.Error("Contains mismatch")
	}
	if !r.Covers(100, 50) {
		t.Error("Covers(100, 50) = false")
	}
	if r.Covers(100, 51) {
		t.Error("Covers(100, 51) = true")
	}
}
