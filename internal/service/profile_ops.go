package service

import (
	"log/slog"

	"github.com/chromad/chromad/internal/icc"
	"github.com/chromad/chromad/internal/models"
)

// ListProfiles returns the display names of every indexed profile.
func (s *ColorService) ListProfiles() []string {
	s.profMu.RLock()
	defer s.profMu.RUnlock()
	return profileNames(s.profiles.List())
}

// ListDisplayProfiles returns the names of profiles with the Display class.
func (s *ColorService) ListDisplayProfiles() []string {
	s.profMu.RLock()
	defer s.profMu.RUnlock()
	return profileNames(s.profiles.ListByClass(models.ClassDisplay))
}

// Profiles returns full records for every indexed profile.
func (s *ColorService) Profiles() []*models.IccProfile {
	s.profMu.RLock()
	defer s.profMu.RUnlock()
	return s.profiles.List()
}

// GetProfilePath resolves a profile name to its filesystem path, or "".
func (s *ColorService) GetProfilePath(name string) string {
	s.profMu.RLock()
	defer s.profMu.RUnlock()
	if p := s.profiles.Get(name); p != nil {
		return p.Path
	}
	return ""
}

// InstallProfile copies a profile file into the user directory and indexes it.
func (s *ColorService) InstallProfile(sourcePath string) bool {
	s.profMu.Lock()
	p, err := s.profiles.Install(sourcePath)
	s.profMu.Unlock()
	if err != nil {
		slog.Warn("service: profile install failed", "source", sourcePath, "err", err)
		return false
	}
	s.publish(models.Event{Kind: models.EventProfileChanged, Detail: p.Name})
	return true
}

// RemoveProfile removes a user-installed profile by name. System profiles
// are refused.
func (s *ColorService) RemoveProfile(name string) error {
	s.profMu.Lock()
	err := s.profiles.Remove(name)
	s.profMu.Unlock()
	if err == nil {
		s.publish(models.Event{Kind: models.EventProfileChanged, Detail: name})
	}
	return err
}

// applyProfilePlatform forwards a profile assignment to the OS color stack.
// Best-effort: the logical assignment already persisted.
func (s *ColorService) applyProfilePlatform(path, monitorName string) {
	if !icc.ApplyToMonitor(path, monitorName) {
		slog.Debug("service: platform profile apply unconfirmed", "monitor", monitorName)
	}
}

func profileNames(ps []*models.IccProfile) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}
