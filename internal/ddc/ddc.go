// Package ddc talks DDC/CI to monitors over the Linux i2c-dev interface,
// enough to read and write the brightness and contrast VCP features when a
// calibration is applied.
package ddc

import "context"

// Well-known VCP feature codes (MCCS).
const (
	VCPBrightness = 0x10
	VCPContrast   = 0x12
)

// Control reads and writes monitor VCP features. Implementations: Driver
// for real /dev/i2c-N buses, Mock for tests.
type Control interface {
	// GetVCP reads the current and maximum value of a VCP feature.
	GetVCP(ctx context.Context, feature byte) (current, max uint16, err error)

	// SetVCP writes a VCP feature value.
	SetVCP(ctx context.Context, feature byte, value uint16) error

	// Close releases the underlying bus.
	Close() error
}

// Mock is an in-memory Control for tests.
type Mock struct {
	Values map[byte]uint16
	Max    uint16
	Err    error
}

// NewMock returns a mock with 100 as the max for every feature.
func NewMock() *Mock {
	return &Mock{Values: map[byte]uint16{}, Max: 100}
}

func (m *Mock) GetVCP(_ context.Context, feature byte) (uint16, uint16, error) {
	if m.Err != nil {
		return 0, 0, m.Err
	}
	return m.Values[feature], m.Max, nil
}

func (m *Mock) SetVCP(_ context.Context, feature byte, value uint16) error {
	if m.Err != nil {
		return m.Err
	}
	m.Values[feature] = value
	return nil
}

func (m *Mock) Close() error { return nil }

// checksum computes the DDC/CI packet checksum: XOR of every byte with the
// destination address (0x6E for host-to-display) folded in first.
func checksum(seed byte, data []byte) byte {
	c := seed
	for _, b := range data {
		c ^= b
	}
	return c
}
