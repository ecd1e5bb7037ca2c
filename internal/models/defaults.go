package models

// DefaultConfig returns the built-in configuration used when no config file
// exists or the existing one cannot be parsed: color management enabled,
// perceptual intent, and five pre-populated creative workflows.
func DefaultConfig() ColorConfig {
	return ColorConfig{
		Version: 1,
		Global: GlobalSettings{
			Enabled:                true,
			DefaultProfile:         "sRGB",
			RenderingIntent:        IntentPerceptual,
			BlackPointCompensation: true,
			GamutWarning:           false,
			SoftProofing:           false,
		},
		Monitors:  map[string]MonitorColorConfig{},
		Workflows: DefaultWorkflows(),
	}
}

// DefaultWorkflows returns the five built-in workflow entries.
func DefaultWorkflows() map[string]WorkflowColorConfig {
	return map[string]WorkflowColorConfig{
		"photography": {
			Name:          "Photography",
			WorkingSpace:  "ProPhoto RGB",
			DefaultIntent: IntentPerceptual,
		},
		"video": {
			Name:          "Video Editing",
			WorkingSpace:  "Rec.709",
			OcioConfig:    "/usr/share/ocio/aces_1.2/config.ocio",
			DefaultIntent: IntentRelativeColorimetric,
		},
		"vfx": {
			Name:          "VFX / 3D",
			WorkingSpace:  "ACEScg",
			OcioConfig:    "/usr/share/ocio/aces_1.2/config.ocio",
			DefaultIntent: IntentRelativeColorimetric,
		},
		"print": {
			Name:             "Print Design",
			WorkingSpace:     "Adobe RGB",
			DefaultIntent:    IntentRelativeColorimetric,
			SoftProofProfile: "/usr/share/color/icc/Fogra39.icc",
		},
		"web": {
			Name:          "Web Design",
			WorkingSpace:  "sRGB",
			DefaultIntent: IntentPerceptual,
		},
	}
}

// DefaultCapabilities returns the fixed "typical SDR monitor" capability set
// used for every detected display until CEA/HDR extension block parsing is
// wired up.
func DefaultCapabilities() MonitorCapabilities {
	maxLum := uint32(300)
	minLum := float32(0.5)
	return MonitorCapabilities{
		ColorDepth:   Depth8,
		HdrSupport:   HdrNone,
		WideGamut:    false,
		NativeGamma:  2.2,
		MaxLuminance: &maxLum,
		MinLuminance: &minLum,
		Gamut:        GamutSRGB,
	}
}
