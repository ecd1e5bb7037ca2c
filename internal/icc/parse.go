package icc

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"

	"github.com/chromad/chromad/internal/models"
)

// headerSize is the fixed ICC profile header length. Files shorter than
// this cannot be profiles.
const headerSize = 128

// ParseHeader parses the fixed 128-byte ICC header from raw profile bytes.
// The display name and description derive from the filename stem; the tag
// table is not read, so the white point defaults to D65.
func ParseHeader(path string, data []byte) (*models.IccProfile, error) {
	if len(data) < headerSize {
		return nil, models.ErrProfile("profile too small")
	}

	// Declared profile size, big-endian at offset 0. A file shorter than
	// its own declaration is truncated.
	declared := binary.BigEndian.Uint32(data[0:4])
	if uint32(len(data)) < declared {
		return nil, models.ErrProfile("incomplete profile")
	}

	class := parseClass(data[12:16])
	space := parseColorSpace(data[16:20])

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" {
		name = "Unknown"
	}

	return &models.IccProfile{
		Path:        path,
		Name:        name,
		Description: name,
		ColorSpace:  space,
		Class:       class,
		WhitePoint:  models.D65XYZ(),
	}, nil
}

// ParseFile reads and parses a profile file.
func ParseFile(path string) (*models.IccProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseHeader(path, data)
}

func parseClass(sig []byte) models.ProfileClass {
	switch string(sig) {
	case "scnr":
		return models.ClassInput
	case "mntr":
		return models.ClassDisplay
	case "prtr":
		return models.ClassOutput
	case "link":
		return models.ClassDeviceLink
	case "spac":
		return models.ClassColorSpace
	case "abst":
		return models.ClassAbstract
	case "nmcl":
		return models.ClassNamedColor
	default:
		return models.ClassUnknown
	}
}

func parseColorSpace(sig []byte) models.ColorSpace {
	switch string(sig) {
	case "RGB ":
		return models.ColorSpaceRGB
	case "CMYK":
		return models.ColorSpaceCMYK
	case "GRAY":
		return models.ColorSpaceGray
	case "Lab ":
		return models.ColorSpaceLab
	case "XYZ ":
		return models.ColorSpaceXYZ
	default:
		return models.ColorSpaceUnknown
	}
}
