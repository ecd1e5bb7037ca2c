package ddc

import (
	"context"
	"errors"
	"testing"
)

func TestMockGetSetVCP(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	cur, max, err := m.GetVCP(ctx, VCPBrightness)
	if err != nil {
		t.Fatalf("GetVCP: %v", err)
	}
	if cur != 0 || max != 100 {
		t.Errorf("fresh mock = (%d, %d), want (0, 100)", cur, max)
	}

	if err := m.SetVCP(ctx, VCPBrightness, 75); err != nil {
		t.Fatalf("SetVCP: %v", err)
	}
	cur, _, _ = m.GetVCP(ctx, VCPBrightness)
	if cur != 75 {
		t.Errorf("brightness = %d, want 75", cur)
	}

	// Features are independent.
	cur, _, _ = m.GetVCP(ctx, VCPContrast)
	if cur != 0 {
		t.Errorf("contrast = %d, want 0", cur)
	}
}

func TestMockError(t *testing.T) {
	m := NewMock()
	m.Err = errors.New("bus gone")
	if _, _, err := m.GetVCP(context.Background(), VCPBrightness); err == nil {
		t.Error("GetVCP should propagate the mock error")
	}
	if err := m.SetVCP(context.Background(), VCPBrightness, 1); err == nil {
		t.Error("SetVCP should propagate the mock error")
	}
}

func TestChecksum(t *testing.T) {
	// XOR is its own inverse, so folding the checksum back in yields zero.
	data := []byte{0x51, 0x82, 0x01, 0x10}
	c := checksum(0x6E, data)
	if checksum(0x6E, append(data, c)) != 0 {
		t.Error("checksum does not cancel itself")
	}

	if checksum(0x00, nil) != 0 {
		t.Error("empty checksum with zero seed should be zero")
	}
	if checksum(0x6E, nil) != 0x6E {
		t.Error("empty checksum should equal the seed")
	}
}
