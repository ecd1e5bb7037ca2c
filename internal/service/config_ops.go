package service

import "github.com/chromad/chromad/internal/models"

// IsEnabled reports the global color management flag.
func (s *ColorService) IsEnabled() bool {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg.Global.Enabled
}

// SetEnabled sets the global flag and persists. Returns whether the save
// was accepted.
func (s *ColorService) SetEnabled(enabled bool) bool {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.cfg.Global.Enabled = enabled
	ok := s.saveConfigLocked()
	if ok {
		s.publish(models.Event{Kind: models.EventConfigChanged, Detail: "enabled"})
	}
	return ok
}

// GlobalSettings returns a copy of the global settings block.
func (s *ColorService) GlobalSettings() models.GlobalSettings {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg.Global
}

// ListWorkflows returns the configured workflow keys.
func (s *ColorService) ListWorkflows() []string {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	out := make([]string, 0, len(s.cfg.Workflows))
	for k := range s.cfg.Workflows {
		out = append(out, k)
	}
	return out
}

// GetWorkflowConfig returns the named workflow entry.
func (s *ColorService) GetWorkflowConfig(name string) (models.WorkflowColorConfig, bool) {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	wf, ok := s.cfg.Workflows[name]
	return wf, ok
}

// GetMonitorProfile returns the assigned ICC profile path for a monitor,
// or "" if none is assigned.
func (s *ColorService) GetMonitorProfile(name string) string {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg.Monitors[name].IccProfile
}

// SetMonitorProfile assigns an ICC profile path to a monitor and persists;
// an empty path clears the assignment. The monitor must exist in the live
// registry, but the path is deliberately not checked against the profile
// catalog: clients may assign profiles the catalog has not scanned yet.
//
// The monitor lookup and the config write take their locks in sequence, so
// a concurrent refresh can interleave between them.
func (s *ColorService) SetMonitorProfile(name, path string) bool {
	s.monMu.RLock()
	known := s.monitors.Get(name) != nil
	s.monMu.RUnlock()
	if !known {
		return false
	}

	s.cfgMu.Lock()
	mc := s.cfg.Monitors[name]
	mc.EdidName = name
	mc.IccProfile = path
	s.cfg.Monitors[name] = mc
	ok := s.saveConfigLocked()
	s.cfgMu.Unlock()

	if ok {
		s.publish(models.Event{Kind: models.EventConfigChanged, Monitor: name, Detail: "profile"})
		if path != "" {
			go s.applyProfilePlatform(path, name)
		}
	}
	return ok
}
