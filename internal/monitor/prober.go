// Package monitor enumerates connected displays and parses their EDID
// identity into per-monitor profiles.
package monitor

import (
	"os"
	"path/filepath"
	"strings"
)

// Connector is a raw display-connector observation from the platform.
type Connector struct {
	Name      string
	Connected bool
	EDID      []byte // nil if the connector exposes no EDID
}

// Prober enumerates display connectors. Implementations: DRMProber for
// real hardware, MockProber for tests and --mock mode.
type Prober interface {
	Probe() ([]Connector, error)
}

// DRMProber walks /sys/class/drm for card connector entries.
type DRMProber struct {
	Root string // defaults to /sys/class/drm
}

// NewDRMProber creates a prober over the standard sysfs DRM tree.
func NewDRMProber() *DRMProber {
	return &DRMProber{Root: "/sys/class/drm"}
}

// Probe reads connector status and EDID for every card*-* entry. A missing
// DRM tree yields an empty list, not an error.
func (p *DRMProber) Probe() ([]Connector, error) {
	entries, err := os.ReadDir(p.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []Connector
	for _, e := range entries {
		name := e.Name()
		// Connector entries look like card0-HDMI-A-1; skip the bare card0.
		if !strings.HasPrefix(name, "card") || !strings.Contains(name, "-") {
			continue
		}

		c := Connector{Name: name}
		status, err := os.ReadFile(filepath.Join(p.Root, name, "status"))
		if err == nil {
			c.Connected = strings.TrimSpace(string(status)) == "connected"
		}
		if !c.Connected {
			continue
		}

		if edid, err := os.ReadFile(filepath.Join(p.Root, name, "edid")); err == nil && len(edid) > 0 {
			c.EDID = edid
		}
		out = append(out, c)
	}
	return out, nil
}

// MockProber reports a fixed connector set.
type MockProber struct {
	Connectors []Connector
	Err        error
}

func (m *MockProber) Probe() ([]Connector, error) {
	return m.Connectors, m.Err
}
