package monitor

import (
	"encoding/binary"

	"github.com/chromad/chromad/internal/models"
)

// edidBlockSize is the base EDID block length. Extension blocks are not
// parsed; capability fields come from models.DefaultCapabilities.
const edidBlockSize = 128

const (
	fallbackWidth  = 1920
	fallbackHeight = 1080
)

// ParseEDID parses identity fields from a base EDID block, best-effort.
// Resolution comes from the first detailed timing descriptor and is floored
// to 1920x1080 when the descriptor is absent or zeroed.
func ParseEDID(data []byte) (*models.EdidInfo, error) {
	if len(data) < edidBlockSize {
		return nil, models.ErrProfile("EDID too small")
	}

	// Manufacturer: three 5-bit letters packed big-endian at bytes 8-9.
	id := binary.BigEndian.Uint16(data[8:10])
	manufacturer := decodeManufacturerID(id)

	year := 1990 + uint16(data[17])

	// First detailed timing descriptor: active pixel counts split across
	// low bytes and high nibbles.
	hActive := (uint32(data[58])&0xF0)<<4 | uint32(data[56])
	vActive := (uint32(data[61])&0xF0)<<4 | uint32(data[59])
	if hActive < fallbackWidth {
		hActive = fallbackWidth
	}
	if vActive < fallbackHeight {
		vActive = fallbackHeight
	}

	// Physical image size in mm, from the same descriptor, stored in cm.
	hSize := (uint32(data[68])&0xF0)<<4 | uint32(data[66])
	vSize := (uint32(data[68])&0x0F)<<8 | uint32(data[67])

	info := &models.EdidInfo{
		Manufacturer: manufacturer,
		Model:        "Monitor",
		Year:         year,
		Width:        hActive,
		Height:       vActive,
	}
	if hSize > 0 && vSize > 0 {
		sz := [2]uint32{hSize * 10, vSize * 10}
		info.PhysicalSizeMM = &sz
	}
	return info, nil
}

func decodeManufacturerID(id uint16) string {
	c1 := byte((id>>10)&0x1F) + 'A' - 1
	c2 := byte((id>>5)&0x1F) + 'A' - 1
	c3 := byte(id&0x1F) + 'A' - 1
	return string([]byte{c1, c2, c3})
}

// defaultEDID is the identity used when a connector exposes no readable
// EDID block.
func defaultEDID(connector string) models.EdidInfo {
	return models.EdidInfo{
		Manufacturer: "Unknown",
		Model:        connector,
		Year:         2024,
		Width:        fallbackWidth,
		Height:       fallbackHeight,
	}
}
