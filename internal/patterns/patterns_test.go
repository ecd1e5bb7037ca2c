package patterns_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/chromad/chromad/internal/patterns"
)

func TestFromName(t *testing.T) {
	for _, p := range patterns.All() {
		got, ok := patterns.FromName(p.Name())
		if !ok || got != p {
			t.Errorf("FromName(%q) = (%v, %v), want (%v, true)", p.Name(), got, ok, p)
		}
	}
	if _, ok := patterns.FromName("plaid"); ok {
		t.Error("FromName should reject unknown names")
	}
}

func TestRenderDimensions(t *testing.T) {
	for _, p := range patterns.All() {
		img := patterns.Render(p, 320, 240)
		b := img.Bounds()
		if b.Dx() != 320 || b.Dy() != 240 {
			t.Errorf("%s rendered %dx%d, want 320x240", p.Name(), b.Dx(), b.Dy())
		}
	}
}

func TestColorBarsLayout(t *testing.T) {
	img := patterns.Render(patterns.ColorBars, 700, 100)

	// First bar is 75% gray, last is 75% blue.
	if c := img.RGBAAt(10, 50); c.R != 191 || c.G != 191 || c.B != 191 {
		t.Errorf("first bar = %+v, want 75%% gray", c)
	}
	if c := img.RGBAAt(690, 50); c.R != 0 || c.G != 0 || c.B != 191 {
		t.Errorf("last bar = %+v, want 75%% blue", c)
	}
}

func TestGradientEndpoints(t *testing.T) {
	img := patterns.Render(patterns.Gradient, 640, 100)
	if c := img.RGBAAt(5, 50); c.R != 0 {
		t.Errorf("gradient start = %+v, want black", c)
	}
	if c := img.RGBAAt(635, 50); c.R != 255 {
		t.Errorf("gradient end = %+v, want white", c)
	}
}

func TestGammaMidGray(t *testing.T) {
	img := patterns.Render(patterns.Gamma, 200, 100)
	// Right half is the 2.2-gamma solid reference.
	if c := img.RGBAAt(150, 50); c.R != 186 {
		t.Errorf("gamma reference = %+v, want 186", c)
	}
	// Left half alternates full white and full black lines.
	top, next := img.RGBAAt(10, 0), img.RGBAAt(10, 1)
	if top.R == next.R {
		t.Error("gamma line pairs not alternating")
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := patterns.EncodePNG(&buf, patterns.DeadPixel, 64, 64); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("decoded width = %d", img.Bounds().Dx())
	}
}

func TestDescriptionsPresent(t *testing.T) {
	for _, p := range patterns.All() {
		if p.Description() == "" {
			t.Errorf("%s has no description", p.Name())
		}
	}
}
