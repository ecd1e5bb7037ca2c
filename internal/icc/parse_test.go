package icc_test

import (
	"encoding/binary"
	"testing"

	"github.com/chromad/chromad/internal/icc"
	"github.com/chromad/chromad/internal/models"
)

// fakeProfile builds a minimal valid 128-byte ICC header with the given
// class and color space signatures.
func fakeProfile(class, space string) []byte {
	data := make([]byte, 128)
	binary.BigEndian.PutUint32(data[0:4], 128)
	copy(data[12:16], class)
	copy(data[16:20], space)
	return data
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		class     string
		space     string
		wantClass models.ProfileClass
		wantSpace models.ColorSpace
	}{
		{"mntr", "RGB ", models.ClassDisplay, models.ColorSpaceRGB},
		{"prtr", "CMYK", models.ClassOutput, models.ColorSpaceCMYK},
		{"scnr", "GRAY", models.ClassInput, models.ColorSpaceGray},
		{"spac", "Lab ", models.ClassColorSpace, models.ColorSpaceLab},
		{"abst", "XYZ ", models.ClassAbstract, models.ColorSpaceXYZ},
		{"link", "RGB ", models.ClassDeviceLink, models.ColorSpaceRGB},
		{"nmcl", "RGB ", models.ClassNamedColor, models.ColorSpaceRGB},
		{"????", "????", models.ClassUnknown, models.ColorSpaceUnknown},
	}
	for _, tt := range tests {
		p, err := icc.ParseHeader("/tmp/Display_P3.icc", fakeProfile(tt.class, tt.space))
		if err != nil {
			t.Fatalf("ParseHeader(%s/%s): %v", tt.class, tt.space, err)
		}
		if p.Class != tt.wantClass {
			t.Errorf("class(%s) = %v, want %v", tt.class, p.Class, tt.wantClass)
		}
		if p.ColorSpace != tt.wantSpace {
			t.Errorf("space(%s) = %v, want %v", tt.space, p.ColorSpace, tt.wantSpace)
		}
	}
}

func TestParseHeaderNameFromFilename(t *testing.T) {
	p, err := icc.ParseHeader("/usr/share/color/icc/Display_P3.icc", fakeProfile("mntr", "RGB "))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Display_P3" {
		t.Errorf("name = %q, want Display_P3", p.Name)
	}
	if p.WhitePoint != models.D65XYZ() {
		t.Errorf("white point = %+v, want D65", p.WhitePoint)
	}
}

func TestParseHeaderTooSmall(t *testing.T) {
	if _, err := icc.ParseHeader("x.icc", make([]byte, 127)); err == nil {
		t.Error("expected error for 127-byte file")
	}
}

func TestParseHeaderTruncated(t *testing.T) {
	data := fakeProfile("mntr", "RGB ")
	// Declare a size larger than the file.
	binary.BigEndian.PutUint32(data[0:4], 4096)
	if _, err := icc.ParseHeader("x.icc", data); err == nil {
		t.Error("expected error for truncated profile")
	}
}
