package models

// ColorDepth is the panel bit depth per channel.
type ColorDepth uint8

const (
	Depth8 ColorDepth = iota
	Depth10
	Depth12
	Depth16
)

func (d ColorDepth) String() string {
	switch d {
	case Depth8:
		return "8bit"
	case Depth10:
		return "10bit"
	case Depth12:
		return "12bit"
	case Depth16:
		return "16bit"
	default:
		return "8bit"
	}
}

func (d ColorDepth) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *ColorDepth) UnmarshalText(b []byte) error {
	switch string(b) {
	case "10bit":
		*d = Depth10
	case "12bit":
		*d = Depth12
	case "16bit":
		*d = Depth16
	default:
		*d = Depth8
	}
	return nil
}

// HdrCapability is what HDR signaling a display advertises.
type HdrCapability uint8

const (
	HdrNone HdrCapability = iota
	HdrCapHdr10
	HdrCapHdr10Plus
	HdrCapDolbyVision
	HdrCapHlgBt2100
)

func (h HdrCapability) String() string {
	switch h {
	case HdrCapHdr10:
		return "hdr10"
	case HdrCapHdr10Plus:
		return "hdr10+"
	case HdrCapDolbyVision:
		return "dolby_vision"
	case HdrCapHlgBt2100:
		return "hlg_bt2100"
	default:
		return "none"
	}
}

func (h HdrCapability) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *HdrCapability) UnmarshalText(b []byte) error {
	switch string(b) {
	case "hdr10":
		*h = HdrCapHdr10
	case "hdr10+":
		*h = HdrCapHdr10Plus
	case "dolby_vision":
		*h = HdrCapDolbyVision
	case "hlg_bt2100":
		*h = HdrCapHlgBt2100
	default:
		*h = HdrNone
	}
	return nil
}

// ColorGamut is the widest standard gamut a display covers.
type ColorGamut uint8

const (
	GamutSRGB ColorGamut = iota
	GamutAdobeRGB
	GamutDCIP3
	GamutBT2020
	GamutUnknown
)

func (g ColorGamut) String() string {
	switch g {
	case GamutSRGB:
		return "srgb"
	case GamutAdobeRGB:
		return "adobe_rgb"
	case GamutDCIP3:
		return "dci_p3"
	case GamutBT2020:
		return "bt2020"
	default:
		return "unknown"
	}
}

func (g ColorGamut) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *ColorGamut) UnmarshalText(b []byte) error {
	switch string(b) {
	case "srgb":
		*g = GamutSRGB
	case "adobe_rgb":
		*g = GamutAdobeRGB
	case "dci_p3":
		*g = GamutDCIP3
	case "bt2020":
		*g = GamutBT2020
	default:
		*g = GamutUnknown
	}
	return nil
}

// EdidInfo is display identity parsed from the base EDID block.
type EdidInfo struct {
	Manufacturer   string     `json:"manufacturer"`
	Model          string     `json:"model"`
	Serial         string     `json:"serial,omitempty"`
	Year           uint16     `json:"year"`
	Width          uint32     `json:"width"`
	Height         uint32     `json:"height"`
	PhysicalSizeMM *[2]uint32 `json:"physical_size_mm,omitempty"`
}

// MonitorCapabilities describes what a display can do. Values beyond the
// base EDID block are not parsed yet, so these are fixed SDR defaults for
// real hardware; see monitor.DefaultCapabilities.
type MonitorCapabilities struct {
	ColorDepth   ColorDepth    `json:"color_depth"`
	HdrSupport   HdrCapability `json:"hdr_support"`
	WideGamut    bool          `json:"wide_gamut"`
	NativeGamma  float32       `json:"native_gamma"`
	MaxLuminance *uint32       `json:"max_luminance,omitempty"` // cd/m²
	MinLuminance *float32      `json:"min_luminance,omitempty"` // cd/m²
	Gamut        ColorGamut    `json:"color_gamut"`
}

// WhitePoint is a target white chromaticity with its correlated color
// temperature.
type WhitePoint struct {
	Temperature uint32  `json:"temperature"`
	X           float32 `json:"x"`
	Y           float32 `json:"y"`
}

// D65 returns the standard daylight white point (6500K).
func D65() WhitePoint { return WhitePoint{Temperature: 6500, X: 0.3127, Y: 0.3290} }

// D50 returns the print-standard white point (5000K).
func D50() WhitePoint { return WhitePoint{Temperature: 5000, X: 0.3457, Y: 0.3585} }

// D93 returns the cool white point used by some broadcast standards (9300K).
func D93() WhitePoint { return WhitePoint{Temperature: 9300, X: 0.2848, Y: 0.2932} }

// WhitePointFromTemperature approximates the CIE daylight-locus chromaticity
// for a correlated color temperature in kelvin. The fit is defined for
// 4000K-25000K; values outside are clamped.
func WhitePointFromTemperature(kelvin uint32) WhitePoint {
	t := float64(kelvin)
	if t < 4000 {
		t = 4000
	}
	if t > 25000 {
		t = 25000
	}

	var x float64
	if t <= 7000 {
		x = 0.244063 + 0.09911e3/t + 2.9678e6/(t*t) - 4.6070e9/(t*t*t)
	} else {
		x = 0.237040 + 0.24748e3/t + 1.9018e6/(t*t) - 2.0064e9/(t*t*t)
	}
	y := -3.0*x*x + 2.870*x - 0.275
	return WhitePoint{Temperature: kelvin, X: float32(x), Y: float32(y)}
}

// CalibrationData is the result of a display calibration run.
type CalibrationData struct {
	Date       string        `json:"date"`
	WhitePoint WhitePoint    `json:"white_point"`
	Gamma      float32       `json:"gamma"`
	Brightness float32       `json:"brightness"` // percent, 0-100
	Contrast   float32       `json:"contrast"`   // percent, 0-100
	RGBGains   [3]float32    `json:"rgb_gains"`
	GammaCurve [][2]float32  `json:"gamma_curve,omitempty"`
}

// MonitorProfile is one detected display. Identity is the connector name;
// the registry rebuilds these wholesale on every detect.
type MonitorProfile struct {
	Name         string              `json:"name"`
	Edid         EdidInfo            `json:"edid"`
	Capabilities MonitorCapabilities `json:"capabilities"`
	Calibration  *CalibrationData    `json:"calibration,omitempty"`
	IccProfile   string              `json:"icc_profile,omitempty"`
}

// DeepCopy returns a deep copy of the monitor profile.
func (m MonitorProfile) DeepCopy() MonitorProfile {
	next := m
	if m.Edid.PhysicalSizeMM != nil {
		sz := *m.Edid.PhysicalSizeMM
		next.Edid.PhysicalSizeMM = &sz
	}
	if m.Capabilities.MaxLuminance != nil {
		v := *m.Capabilities.MaxLuminance
		next.Capabilities.MaxLuminance = &v
	}
	if m.Capabilities.MinLuminance != nil {
		v := *m.Capabilities.MinLuminance
		next.Capabilities.MinLuminance = &v
	}
	if m.Calibration != nil {
		cal := *m.Calibration
		if m.Calibration.GammaCurve != nil {
			cal.GammaCurve = make([][2]float32, len(m.Calibration.GammaCurve))
			copy(cal.GammaCurve, m.Calibration.GammaCurve)
		}
		next.Calibration = &cal
	}
	return next
}
