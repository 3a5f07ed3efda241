package graphics

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", ColorRed},
		{"#80FF0000", Color(0x80FF0000)},
		{"0xFF00FF00", ColorGreen},
		{"0X000000FF", Color(0x000000FF)},
		{"white", ColorWhite},
		{" Transparent ", ColorTransparent},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "FF0000", "#FFF", "#GG0000", "0x123", "purple"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
		}
	}
}

func TestColorTextRoundTrip(t *testing.T) {
	c := RGBA8(0x12, 0x34, 0x56, 0x78)
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(text) != "0x78123456" {
		t.Fatalf("MarshalText = %s, want 0x78123456", text)
	}
	var back Color
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if back != c {
		t.Fatalf("round trip = %v, want %v", back, c)
	}
}

func TestColorNRGBA(t *testing.T) {
	got := RGBA8(10, 20, 30, 40).NRGBA()
	if got.R != 10 || got.G != 20 || got.B != 30 || got.A != 40 {
		t.Fatalf("NRGBA = %+v", got)
	}
}

func TestPaintEffectiveColor(t *testing.T) {
	p := DefaultPaint()
	p.Color = ColorRed
	if got := p.EffectiveColor(); got != ColorRed {
		t.Errorf("opaque paint EffectiveColor = %v, want %v", got, ColorRed)
	}
	p.Alpha = 0.5
	if got := p.EffectiveColor(); got != ColorRed.WithAlpha(0.5) {
		t.Errorf("half alpha EffectiveColor = %v, want %v", got, ColorRed.WithAlpha(0.5))
	}
}
