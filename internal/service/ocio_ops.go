package service

import (
	"log/slog"

	"github.com/chromad/chromad/internal/models"
	"github.com/chromad/chromad/internal/ocio"
)

// GetOcioConfig returns the path of the active OCIO config, or "" when none
// is loaded.
func (s *ColorService) GetOcioConfig() string {
	s.ocioMu.RLock()
	defer s.ocioMu.RUnlock()
	return s.ocioMgr.Path()
}

// SetOcioConfig loads the OCIO config at path and makes it active, or
// unloads the current one when path is empty. The result reports whether
// the request took effect; a missing or unparseable config yields false
// and leaves the previous config active.
func (s *ColorService) SetOcioConfig(path string) bool {
	s.ocioMu.Lock()
	if path == "" {
		s.ocioMgr.Unload()
	} else if err := s.ocioMgr.Load(path); err != nil {
		s.ocioMu.Unlock()
		slog.Warn("service: OCIO config rejected", "path", path, "err", err)
		return false
	}
	s.ocioMu.Unlock()

	s.cfgMu.Lock()
	if path == "" {
		s.cfg.Ocio = nil
	} else {
		if s.cfg.Ocio == nil {
			s.cfg.Ocio = &models.OcioSelection{}
		}
		s.cfg.Ocio.ConfigPath = path
	}
	s.saveConfigLocked()
	s.cfgMu.Unlock()

	s.publish(models.Event{Kind: models.EventOcioChanged, Detail: path})
	return true
}

// ListOcioColorSpaces returns the color space names of the active OCIO
// config. No config means an empty list.
func (s *ColorService) ListOcioColorSpaces() []string {
	s.ocioMu.RLock()
	defer s.ocioMu.RUnlock()
	return s.ocioMgr.ListColorSpaces()
}

// ListOcioDisplays returns the display names of the active OCIO config.
func (s *ColorService) ListOcioDisplays() []string {
	s.ocioMu.RLock()
	defer s.ocioMu.RUnlock()
	return s.ocioMgr.ListDisplays()
}

// OcioPresets lists the well-known OCIO configurations that can be offered
// as one-click choices, regardless of whether their files are installed.
func (s *ColorService) OcioPresets() []ocio.Preset {
	return ocio.BuiltinPresets()
}

// DiscoverOcioConfigs scans the standard filesystem locations for installed
// OCIO configs.
func (s *ColorService) DiscoverOcioConfigs() []string {
	return ocio.FindConfigs()
}
