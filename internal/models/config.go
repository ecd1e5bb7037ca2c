// Package models defines the data structures for the chromad color daemon.
// JSON field names form the persisted config document and the wire format of
// the HTTP API, so they are stable and human-editable.
package models

// RenderingIntent selects the gamut-mapping strategy used when converting
// between color spaces with different gamuts.
type RenderingIntent uint8

const (
	IntentPerceptual RenderingIntent = iota
	IntentRelativeColorimetric
	IntentSaturation
	IntentAbsoluteColorimetric
)

func (i RenderingIntent) String() string {
	switch i {
	case IntentPerceptual:
		return "perceptual"
	case IntentRelativeColorimetric:
		return "relative_colorimetric"
	case IntentSaturation:
		return "saturation"
	case IntentAbsoluteColorimetric:
		return "absolute_colorimetric"
	default:
		return "perceptual"
	}
}

// MarshalText encodes the intent as its string name.
func (i RenderingIntent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText decodes an intent name. Unknown names fall back to
// perceptual so a hand-edited config never fails to load.
func (i *RenderingIntent) UnmarshalText(b []byte) error {
	switch string(b) {
	case "relative_colorimetric":
		*i = IntentRelativeColorimetric
	case "saturation":
		*i = IntentSaturation
	case "absolute_colorimetric":
		*i = IntentAbsoluteColorimetric
	default:
		*i = IntentPerceptual
	}
	return nil
}

// GlobalSettings are the daemon-wide color management flags.
type GlobalSettings struct {
	Enabled                bool            `json:"enabled"`
	DefaultProfile         string          `json:"default_profile"`
	RenderingIntent        RenderingIntent `json:"rendering_intent"`
	BlackPointCompensation bool            `json:"black_point_compensation"`
	GamutWarning           bool            `json:"gamut_warning"`
	SoftProofing           bool            `json:"soft_proofing"`
}

// MonitorColorConfig is the persisted per-monitor configuration, keyed by
// connector name in ColorConfig.Monitors.
type MonitorColorConfig struct {
	EdidName         string  `json:"edid_name"`
	IccProfile       string  `json:"icc_profile,omitempty"`
	CalibrationDate  string  `json:"calibration_date,omitempty"`
	Brightness       float32 `json:"brightness"`
	Contrast         float32 `json:"contrast"`
	Gamma            float32 `json:"gamma"`
	WhitePoint       uint32  `json:"white_point"` // correlated color temperature in K
	HdrEnabled       bool    `json:"hdr_enabled"`
	HdrPeakLuminance *uint32 `json:"hdr_peak_luminance,omitempty"`
}

// OcioSelection is the persisted reference to the active OCIO pipeline.
type OcioSelection struct {
	ConfigPath    string `json:"config_path"`
	WorkingSpace  string `json:"working_space"`
	DisplaySpace  string `json:"display_space"`
	ViewTransform string `json:"view_transform"`
	Look          string `json:"look,omitempty"`
}

// WorkflowColorConfig describes the color setup for one creative workflow
// (photography, video, vfx, print, web).
type WorkflowColorConfig struct {
	Name             string          `json:"name"`
	WorkingSpace     string          `json:"working_space"`
	OcioConfig       string          `json:"ocio_config,omitempty"`
	DefaultIntent    RenderingIntent `json:"default_intent"`
	SoftProofProfile string          `json:"soft_proof_profile,omitempty"`
}

// ColorConfig is the complete persisted configuration document.
type ColorConfig struct {
	Version   uint32                         `json:"version"`
	Global    GlobalSettings                 `json:"global"`
	Monitors  map[string]MonitorColorConfig  `json:"monitors"`
	Ocio      *OcioSelection                 `json:"ocio,omitempty"`
	Workflows map[string]WorkflowColorConfig `json:"workflows"`
}

// DeepCopy returns a deep copy of the config.
func (c ColorConfig) DeepCopy() ColorConfig {
	next := c

	next.Monitors = make(map[string]MonitorColorConfig, len(c.Monitors))
	for k, v := range c.Monitors {
		mc := v
		if v.HdrPeakLuminance != nil {
			n := *v.HdrPeakLuminance
			mc.HdrPeakLuminance = &n
		}
		next.Monitors[k] = mc
	}

	if c.Ocio != nil {
		o := *c.Ocio
		next.Ocio = &o
	}

	next.Workflows = make(map[string]WorkflowColorConfig, len(c.Workflows))
	for k, v := range c.Workflows {
		next.Workflows[k] = v
	}

	return next
}
