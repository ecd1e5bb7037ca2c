package models

// HdrFormat is the HDR signaling format carried in metadata.
type HdrFormat uint8

const (
	FormatSDR HdrFormat = iota
	FormatHdr10
	FormatHdr10Plus
	FormatDolbyVision
	FormatHlg
)

func (f HdrFormat) String() string {
	switch f {
	case FormatHdr10:
		return "hdr10"
	case FormatHdr10Plus:
		return "hdr10+"
	case FormatDolbyVision:
		return "dolby_vision"
	case FormatHlg:
		return "hlg"
	default:
		return "sdr"
	}
}

func (f HdrFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *HdrFormat) UnmarshalText(b []byte) error {
	switch string(b) {
	case "hdr10":
		*f = FormatHdr10
	case "hdr10+":
		*f = FormatHdr10Plus
	case "dolby_vision":
		*f = FormatDolbyVision
	case "hlg":
		*f = FormatHlg
	default:
		*f = FormatSDR
	}
	return nil
}

// TransferFunction identifies the signal encoding curve.
type TransferFunction uint8

const (
	TransferSRGB TransferFunction = iota
	TransferBT1886
	TransferPQ  // Perceptual Quantizer (ST 2084)
	TransferHLG // Hybrid Log-Gamma
	TransferLinear
)

func (t TransferFunction) String() string {
	switch t {
	case TransferBT1886:
		return "bt1886"
	case TransferPQ:
		return "pq"
	case TransferHLG:
		return "hlg"
	case TransferLinear:
		return "linear"
	default:
		return "srgb"
	}
}

func (t TransferFunction) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *TransferFunction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "bt1886":
		*t = TransferBT1886
	case "pq":
		*t = TransferPQ
	case "hlg":
		*t = TransferHLG
	case "linear":
		*t = TransferLinear
	default:
		*t = TransferSRGB
	}
	return nil
}

// Chromaticity is a CIE 1931 xy coordinate pair.
type Chromaticity struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// ColorPrimaries are the red/green/blue chromaticities of a color space.
type ColorPrimaries struct {
	Red   Chromaticity `json:"red"`
	Green Chromaticity `json:"green"`
	Blue  Chromaticity `json:"blue"`
}

// BT709Primaries returns the Rec.709 / sRGB primaries.
func BT709Primaries() ColorPrimaries {
	return ColorPrimaries{
		Red:   Chromaticity{0.64, 0.33},
		Green: Chromaticity{0.30, 0.60},
		Blue:  Chromaticity{0.15, 0.06},
	}
}

// BT2020Primaries returns the Rec.2020 wide-gamut primaries.
func BT2020Primaries() ColorPrimaries {
	return ColorPrimaries{
		Red:   Chromaticity{0.708, 0.292},
		Green: Chromaticity{0.170, 0.797},
		Blue:  Chromaticity{0.131, 0.046},
	}
}

// DCIP3Primaries returns the DCI-P3 cinema primaries.
func DCIP3Primaries() ColorPrimaries {
	return ColorPrimaries{
		Red:   Chromaticity{0.680, 0.320},
		Green: Chromaticity{0.265, 0.690},
		Blue:  Chromaticity{0.150, 0.060},
	}
}

// HdrMetadata is the static HDR metadata signaled to a display while HDR
// output is active.
type HdrMetadata struct {
	Format           HdrFormat        `json:"format"`
	MaxLuminance     uint32           `json:"max_luminance"`      // cd/m²
	MaxFrameAverage  uint32           `json:"max_frame_average"`  // cd/m²
	MinLuminance     float32          `json:"min_luminance"`      // cd/m²
	Primaries        ColorPrimaries   `json:"primaries"`
	WhitePoint       Chromaticity     `json:"white_point"`
	TransferFunction TransferFunction `json:"transfer_function"`
}

// DefaultHdr10Metadata is the metadata applied when HDR is enabled without
// an explicit override: HDR10, 1000/400 nit bounds, BT.2020, D65, PQ.
func DefaultHdr10Metadata() HdrMetadata {
	return HdrMetadata{
		Format:           FormatHdr10,
		MaxLuminance:     1000,
		MaxFrameAverage:  400,
		MinLuminance:     0.001,
		Primaries:        BT2020Primaries(),
		WhitePoint:       Chromaticity{0.3127, 0.3290}, // D65
		TransferFunction: TransferPQ,
	}
}

// HdrMonitorState is the HDR session state for one monitor. PlatformOK
// reports whether the last platform-level toggle was confirmed; the logical
// Active flag is recorded regardless.
type HdrMonitorState struct {
	Name       string        `json:"name"`
	Active     bool          `json:"active"`
	Capability HdrCapability `json:"capability"`
	Metadata   *HdrMetadata  `json:"metadata,omitempty"`
	PlatformOK bool          `json:"platform_ok"`
}
