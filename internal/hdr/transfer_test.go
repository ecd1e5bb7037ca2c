package hdr_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/chromad/chromad/internal/hdr"
)

func TestPQKnownValues(t *testing.T) {
	tests := []struct {
		signal string
		lum    float64
		sig    float64
		tol    float64
	}{
		// Reference points from the ST 2084 curve.
		{"black", 0, 0, 1e-9},
		{"peak", 10000, 1.0, 1e-9},
		{"100 nits", 100, 0.508, 1e-3},
		{"1000 nits", 1000, 0.7518, 1e-3},
	}
	for _, tt := range tests {
		got := hdr.PQOetf(tt.lum)
		if math.Abs(got-tt.sig) > tt.tol {
			t.Errorf("PQOetf(%s %v) = %v, want %v", tt.signal, tt.lum, got, tt.sig)
		}
	}
}

func TestPQRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lum := rapid.Float64Range(0.01, 10000).Draw(t, "lum")
		back := hdr.PQEotf(hdr.PQOetf(lum))
		if math.Abs(back-lum)/lum > 1e-3 {
			t.Fatalf("round trip %v -> %v", lum, back)
		}
	})
}

func TestPQMonotonic(t *testing.T) {
	prev := -1.0
	for lum := 0.0; lum <= 10000; lum += 50 {
		sig := hdr.PQOetf(lum)
		if sig <= prev {
			t.Fatalf("PQOetf not increasing at %v nits: %v <= %v", lum, sig, prev)
		}
		prev = sig
	}
}

func TestToneMapPQToSDR(t *testing.T) {
	// Reinhard: half the max content luminance maps to a third of target.
	got := hdr.ToneMapPQToSDR(500, 1000, 300)
	want := 100.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ToneMapPQToSDR(500, 1000, 300) = %v, want %v", got, want)
	}

	// Output never exceeds the SDR target.
	for _, v := range []float64{0, 100, 1000, 4000, 10000} {
		if out := hdr.ToneMapPQToSDR(v, 1000, 300); out >= 300 {
			t.Errorf("ToneMapPQToSDR(%v) = %v, exceeds target", v, out)
		}
	}
}
