// Package hdr tracks per-monitor HDR capability and activation state, and
// implements the PQ transfer-function math.
package hdr

import (
	"log/slog"

	"github.com/chromad/chromad/internal/models"
)

// Controller owns the HDR session state for every HDR-capable monitor.
// State is derived from the monitor registry at detect time and rebuilt
// wholesale on every Detect. Not safe for concurrent use; the service layer
// holds the lock.
type Controller struct {
	enabled  bool
	monitors []models.HdrMonitorState
	platform Platform
}

// NewController creates a controller with no tracked monitors.
func NewController(platform Platform) *Controller {
	return &Controller{platform: platform}
}

// Detect derives HDR state from the given monitor set. Every monitor whose
// capability is not None gets a supported-inactive entry; the controller's
// enabled flag is true iff at least one exists. Previous activation state is
// discarded: a detect is a fresh session.
func (c *Controller) Detect(monitors []models.MonitorProfile) {
	var states []models.HdrMonitorState
	for _, m := range monitors {
		if m.Capabilities.HdrSupport == models.HdrNone {
			continue
		}
		states = append(states, models.HdrMonitorState{
			Name:       m.Name,
			Capability: m.Capabilities.HdrSupport,
		})
	}

	c.monitors = states
	c.enabled = len(states) > 0
	slog.Debug("hdr: detect complete", "capable_monitors", len(states))
}

// Supported reports whether any tracked monitor is HDR-capable.
func (c *Controller) Supported() bool { return c.enabled }

// States returns a copy of all tracked HDR monitor states.
func (c *Controller) States() []models.HdrMonitorState {
	out := make([]models.HdrMonitorState, len(c.monitors))
	for i, s := range c.monitors {
		cp := s
		if s.Metadata != nil {
			md := *s.Metadata
			cp.Metadata = &md
		}
		out[i] = cp
	}
	return out
}

// IsActive reports whether HDR output is active on the named monitor.
// Unknown monitors report false.
func (c *Controller) IsActive(name string) bool {
	if s := c.find(name); s != nil {
		return s.Active
	}
	return false
}

// Enable activates HDR on the named monitor with default HDR10 metadata.
// The platform toggle is best-effort: its outcome lands in PlatformOK but
// the logical transition happens regardless.
func (c *Controller) Enable(name string) error {
	s := c.find(name)
	if s == nil {
		return models.ErrMonitorNotFound(name)
	}
	if s.Capability == models.HdrNone {
		return models.ErrHdrNotSupported
	}

	s.PlatformOK = c.platform.EnableHDR(name) == nil
	if !s.PlatformOK {
		slog.Warn("hdr: platform enable unconfirmed", "monitor", name)
	}

	s.Active = true
	md := models.DefaultHdr10Metadata()
	s.Metadata = &md
	slog.Info("hdr: enabled", "monitor", name, "platform_ok", s.PlatformOK)
	return nil
}

// Disable deactivates HDR on the named monitor and clears its metadata.
func (c *Controller) Disable(name string) error {
	s := c.find(name)
	if s == nil {
		return models.ErrMonitorNotFound(name)
	}

	s.PlatformOK = c.platform.DisableHDR(name) == nil
	if !s.PlatformOK {
		slog.Warn("hdr: platform disable unconfirmed", "monitor", name)
	}

	s.Active = false
	s.Metadata = nil
	slog.Info("hdr: disabled", "monitor", name, "platform_ok", s.PlatformOK)
	return nil
}

// SetMetadata replaces the HDR metadata on an already-active monitor.
func (c *Controller) SetMetadata(name string, md models.HdrMetadata) error {
	s := c.find(name)
	if s == nil {
		return models.ErrMonitorNotFound(name)
	}
	if !s.Active {
		return models.ErrHdrNotSupported
	}
	s.Metadata = &md
	return nil
}

func (c *Controller) find(name string) *models.HdrMonitorState {
	for i := range c.monitors {
		if c.monitors[i].Name == name {
			return &c.monitors[i]
		}
	}
	return nil
}
