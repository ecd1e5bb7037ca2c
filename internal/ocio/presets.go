package ocio

import (
	"os"
	"path/filepath"
)

// Preset is a well-known OCIO configuration discoverable without loading it
// first. Workflow tags line up with the built-in workflow keys.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ConfigPath  string `json:"config_path"`
	Workflow    string `json:"workflow"`
}

// BuiltinPresets returns the registry of named configurations chromad knows
// how to suggest to clients.
func BuiltinPresets() []Preset {
	return []Preset{
		{
			Name:        "ACES 1.2",
			Description: "Academy Color Encoding System - Industry standard for VFX/Film",
			ConfigPath:  "/usr/share/ocio/aces_1.2/config.ocio",
			Workflow:    "vfx",
		},
		{
			Name:        "ACES 1.3",
			Description: "Latest ACES with improved gamut mapping",
			ConfigPath:  "/usr/share/ocio/aces_1.3/config.ocio",
			Workflow:    "vfx",
		},
		{
			Name:        "Filmic Blender",
			Description: "Blender's filmic color transform for realistic renders",
			ConfigPath:  "/usr/share/ocio/filmic-blender/config.ocio",
			Workflow:    "3d",
		},
		{
			Name:        "sRGB Linear",
			Description: "Simple sRGB workflow for web and general use",
			ConfigPath:  "/usr/share/ocio/srgb/config.ocio",
			Workflow:    "web",
		},
		{
			Name:        "Rec.709 Video",
			Description: "Standard HD video color space",
			ConfigPath:  "/usr/share/ocio/rec709/config.ocio",
			Workflow:    "video",
		},
	}
}

// FindConfigs scans the standard system locations plus the user data
// directory for installed config.ocio files.
func FindConfigs() []string {
	var configs []string

	searchPaths := []string{"/usr/share/ocio", "/usr/local/share/ocio", "/opt/ocio"}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".local", "share", "ocio"))
	}

	for _, base := range searchPaths {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, e := range entries {
			cfg := filepath.Join(base, e.Name(), "config.ocio")
			if _, err := os.Stat(cfg); err == nil {
				configs = append(configs, cfg)
			}
		}
	}

	return configs
}
