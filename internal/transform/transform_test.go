package transform_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/chromad/chromad/internal/transform"
)

const tolerance = 1e-4

func TestSRGBTransferKnownValues(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1, 1},
		{0.04045, 0.04045 / 12.92},
		{0.5, 0.21404114},
	}
	for _, tt := range tests {
		got := transform.SRGBToLinear(tt.in)
		if math.Abs(got-tt.want) > tolerance {
			t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := rapid.Float64Range(0, 1).Draw(t, "c")
		back := transform.LinearToSRGB(transform.SRGBToLinear(c))
		if math.Abs(back-c) > tolerance {
			t.Fatalf("round trip %v -> %v", c, back)
		}
	})
}

func TestConvertSameSpaceIdentity(t *testing.T) {
	in := transform.RGB{0.25, 0.5, 0.75}
	for _, s := range transform.AllSpaces() {
		got, err := transform.Convert(in, s, s)
		if err != nil {
			t.Fatalf("Convert %s->%s: %v", s.Name(), s.Name(), err)
		}
		if got != in {
			t.Errorf("Convert %s->%s changed value: %v", s.Name(), s.Name(), got)
		}
	}
}

func TestConvertACEScgRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := transform.RGB{
			rapid.Float64Range(0, 1).Draw(t, "r"),
			rapid.Float64Range(0, 1).Draw(t, "g"),
			rapid.Float64Range(0, 1).Draw(t, "b"),
		}
		aces, err := transform.Convert(in, transform.SpaceLinear, transform.SpaceACEScg)
		if err != nil {
			t.Fatal(err)
		}
		back, err := transform.Convert(aces, transform.SpaceACEScg, transform.SpaceLinear)
		if err != nil {
			t.Fatal(err)
		}
		for i := range in {
			// The published 4-decimal matrices round-trip to about 1e-3.
			if math.Abs(back[i]-in[i]) > 2e-3 {
				t.Fatalf("round trip %v -> %v (component %d)", in, back, i)
			}
		}
	})
}

func TestConvertThroughXYZ(t *testing.T) {
	in := transform.RGB{0.2, 0.4, 0.6}
	xyz, err := transform.Convert(in, transform.SpaceSRGB, transform.SpaceXYZ)
	if err != nil {
		t.Fatalf("sRGB->XYZ: %v", err)
	}
	back, err := transform.Convert(xyz, transform.SpaceXYZ, transform.SpaceSRGB)
	if err != nil {
		t.Fatalf("XYZ->sRGB: %v", err)
	}
	for i := range in {
		if math.Abs(back[i]-in[i]) > tolerance {
			t.Errorf("XYZ round trip component %d: %v -> %v", i, in[i], back[i])
		}
	}
}

func TestConvertWhiteToXYZ(t *testing.T) {
	// Linear sRGB white lands on the D65 XYZ white point.
	xyz, err := transform.Convert(transform.RGB{1, 1, 1}, transform.SpaceLinear, transform.SpaceXYZ)
	if err != nil {
		t.Fatal(err)
	}
	want := transform.RGB{0.9505, 1.0, 1.0890}
	for i := range want {
		if math.Abs(xyz[i]-want[i]) > 1e-3 {
			t.Errorf("white XYZ[%d] = %v, want %v", i, xyz[i], want[i])
		}
	}
}

func TestConvertUnsupported(t *testing.T) {
	if _, err := transform.Convert(transform.RGB{}, transform.SpaceAdobeRGB, transform.SpaceSRGB); err == nil {
		t.Error("expected error for Adobe RGB source")
	}
	if _, err := transform.Convert(transform.RGB{}, transform.SpaceSRGB, transform.SpaceProPhotoRGB); err == nil {
		t.Error("expected error for ProPhoto target")
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want transform.Space
		ok   bool
	}{
		{"sRGB", transform.SpaceSRGB, true},
		{"acescg", transform.SpaceACEScg, true},
		{"Rec.709", transform.SpaceRec709, true},
		{"aces", transform.SpaceACES2065_1, true},
		{"nonsense", transform.SpaceSRGB, false},
	}
	for _, tt := range tests {
		got, ok := transform.FromName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FromName(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSpaceNamesResolve(t *testing.T) {
	for _, s := range transform.AllSpaces() {
		got, ok := transform.FromName(s.Name())
		if !ok || got != s {
			t.Errorf("FromName(%q) = (%v, %v), want (%v, true)", s.Name(), got, ok, s)
		}
	}
}
