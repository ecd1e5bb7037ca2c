package models

// ColorSpace is the ICC data color space signature from the profile header.
type ColorSpace uint8

const (
	ColorSpaceRGB ColorSpace = iota
	ColorSpaceCMYK
	ColorSpaceGray
	ColorSpaceLab
	ColorSpaceXYZ
	ColorSpaceUnknown
)

func (c ColorSpace) String() string {
	switch c {
	case ColorSpaceRGB:
		return "RGB"
	case ColorSpaceCMYK:
		return "CMYK"
	case ColorSpaceGray:
		return "Gray"
	case ColorSpaceLab:
		return "Lab"
	case ColorSpaceXYZ:
		return "XYZ"
	default:
		return "unknown"
	}
}

func (c ColorSpace) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *ColorSpace) UnmarshalText(b []byte) error {
	switch string(b) {
	case "RGB":
		*c = ColorSpaceRGB
	case "CMYK":
		*c = ColorSpaceCMYK
	case "Gray":
		*c = ColorSpaceGray
	case "Lab":
		*c = ColorSpaceLab
	case "XYZ":
		*c = ColorSpaceXYZ
	default:
		*c = ColorSpaceUnknown
	}
	return nil
}

// ProfileClass is the ICC profile/device class signature.
type ProfileClass uint8

const (
	ClassInput ProfileClass = iota
	ClassDisplay
	ClassOutput
	ClassDeviceLink
	ClassColorSpace
	ClassAbstract
	ClassNamedColor
	ClassUnknown
)

func (p ProfileClass) String() string {
	switch p {
	case ClassInput:
		return "input"
	case ClassDisplay:
		return "display"
	case ClassOutput:
		return "output"
	case ClassDeviceLink:
		return "device_link"
	case ClassColorSpace:
		return "color_space"
	case ClassAbstract:
		return "abstract"
	case ClassNamedColor:
		return "named_color"
	default:
		return "unknown"
	}
}

func (p ProfileClass) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *ProfileClass) UnmarshalText(b []byte) error {
	switch string(b) {
	case "input":
		*p = ClassInput
	case "display":
		*p = ClassDisplay
	case "output":
		*p = ClassOutput
	case "device_link":
		*p = ClassDeviceLink
	case "color_space":
		*p = ClassColorSpace
	case "abstract":
		*p = ClassAbstract
	case "named_color":
		*p = ClassNamedColor
	default:
		*p = ClassUnknown
	}
	return nil
}

// XYZ is a tristimulus value.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// D65XYZ is the D65 reference white in XYZ, used as the default profile
// white point when the tag table is not parsed.
func D65XYZ() XYZ { return XYZ{X: 0.9505, Y: 1.0, Z: 1.0890} }

// IccProfile is one parsed ICC color profile file. Name and description are
// derived from the filename stem; the tag table is not parsed.
type IccProfile struct {
	Path        string       `json:"path"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ColorSpace  ColorSpace   `json:"color_space"`
	Class       ProfileClass `json:"class"`
	WhitePoint  XYZ          `json:"white_point"`
	Copyright   string       `json:"copyright,omitempty"`
}
