package service

import (
	"log/slog"

	"github.com/chromad/chromad/internal/models"
)

// IsHdrSupported reports whether any detected monitor can do HDR.
func (s *ColorService) IsHdrSupported() bool {
	s.hdrMu.RLock()
	defer s.hdrMu.RUnlock()
	return s.hdrCtl.Supported()
}

// IsHdrActive reports whether HDR output is currently active on a monitor.
// Unknown monitors report false.
func (s *ColorService) IsHdrActive(name string) bool {
	s.hdrMu.RLock()
	defer s.hdrMu.RUnlock()
	return s.hdrCtl.IsActive(name)
}

// HdrStates returns the HDR state of every HDR-capable monitor.
func (s *ColorService) HdrStates() []models.HdrMonitorState {
	s.hdrMu.RLock()
	defer s.hdrMu.RUnlock()
	return s.hdrCtl.States()
}

// EnableHdr switches a monitor to HDR output. The result reports whether the
// logical state changed; a monitor that cannot do HDR yields false. The
// per-monitor HdrEnabled flag is persisted on success.
func (s *ColorService) EnableHdr(name string) bool {
	s.hdrMu.Lock()
	err := s.hdrCtl.Enable(name)
	s.hdrMu.Unlock()
	if err != nil {
		slog.Warn("service: HDR enable refused", "monitor", name, "err", err)
		return false
	}

	s.persistHdrFlag(name, true)
	s.publish(models.Event{Kind: models.EventHdrChanged, Monitor: name, Detail: "enabled"})
	return true
}

// DisableHdr returns a monitor to SDR output.
func (s *ColorService) DisableHdr(name string) bool {
	s.hdrMu.Lock()
	err := s.hdrCtl.Disable(name)
	s.hdrMu.Unlock()
	if err != nil {
		slog.Warn("service: HDR disable refused", "monitor", name, "err", err)
		return false
	}

	s.persistHdrFlag(name, false)
	s.publish(models.Event{Kind: models.EventHdrChanged, Monitor: name, Detail: "disabled"})
	return true
}

// SetHdrMetadata replaces the HDR static metadata on an active monitor.
func (s *ColorService) SetHdrMetadata(name string, md models.HdrMetadata) error {
	s.hdrMu.Lock()
	err := s.hdrCtl.SetMetadata(name, md)
	s.hdrMu.Unlock()
	if err != nil {
		return err
	}
	s.publish(models.Event{Kind: models.EventHdrChanged, Monitor: name, Detail: "metadata"})
	return nil
}

func (s *ColorService) persistHdrFlag(name string, enabled bool) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	mc := s.cfg.Monitors[name]
	mc.EdidName = name
	mc.HdrEnabled = enabled
	s.cfg.Monitors[name] = mc
	s.saveConfigLocked()
}
