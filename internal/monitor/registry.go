package monitor

import (
	"log/slog"

	"github.com/chromad/chromad/internal/models"
)

// Registry holds the current set of detected monitors. Like the profile
// catalog it is rebuilt wholesale on every Detect and guarded by the
// service layer's lock.
type Registry struct {
	prober   Prober
	monitors []models.MonitorProfile
}

// NewRegistry creates a registry using the given prober. The monitor list
// is empty until Detect is called.
func NewRegistry(prober Prober) *Registry {
	return &Registry{prober: prober}
}

// Detect re-enumerates connected displays and replaces the monitor list.
// Callers never observe an empty list: if nothing is detected (or probing
// fails) a placeholder "Default" sRGB monitor is reported.
func (r *Registry) Detect() []models.MonitorProfile {
	var monitors []models.MonitorProfile

	connectors, err := r.prober.Probe()
	if err != nil {
		slog.Warn("monitor: probe failed", "err", err)
	}

	for _, c := range connectors {
		if !c.Connected {
			continue
		}

		var edid models.EdidInfo
		if c.EDID != nil {
			if parsed, err := ParseEDID(c.EDID); err == nil {
				edid = *parsed
			} else {
				slog.Warn("monitor: unreadable EDID, using connector defaults",
					"connector", c.Name, "err", err)
				edid = defaultEDID(c.Name)
			}
		} else {
			edid = defaultEDID(c.Name)
		}

		monitors = append(monitors, models.MonitorProfile{
			Name:         c.Name,
			Edid:         edid,
			Capabilities: models.DefaultCapabilities(),
		})
	}

	if len(monitors) == 0 {
		monitors = append(monitors, placeholderMonitor())
	}

	slog.Debug("monitor: detect complete", "monitors", len(monitors))
	r.monitors = monitors
	return r.List()
}

// List returns a deep copy of the current monitor set.
func (r *Registry) List() []models.MonitorProfile {
	out := make([]models.MonitorProfile, len(r.monitors))
	for i, m := range r.monitors {
		out[i] = m.DeepCopy()
	}
	return out
}

// Get returns a copy of the named monitor, or nil.
func (r *Registry) Get(name string) *models.MonitorProfile {
	for _, m := range r.monitors {
		if m.Name == name {
			cp := m.DeepCopy()
			return &cp
		}
	}
	return nil
}

// SetCalibration attaches calibration data to the named monitor.
func (r *Registry) SetCalibration(name string, cal *models.CalibrationData) bool {
	for i := range r.monitors {
		if r.monitors[i].Name == name {
			r.monitors[i].Calibration = cal
			return true
		}
	}
	return false
}

// placeholderMonitor is reported when no display hardware is found, so the
// rest of the daemon always has at least one monitor to operate on.
func placeholderMonitor() models.MonitorProfile {
	return models.MonitorProfile{
		Name: "Default",
		Edid: models.EdidInfo{
			Manufacturer: "Unknown",
			Model:        "Unknown Monitor",
			Year:         2024,
			Width:        fallbackWidth,
			Height:       fallbackHeight,
		},
		Capabilities: models.DefaultCapabilities(),
	}
}
