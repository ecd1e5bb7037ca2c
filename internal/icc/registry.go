// Package icc maintains the catalog of installed ICC color profiles.
// Profiles are indexed by display name (filename stem); two files producing
// the same name overwrite each other, last one scanned wins.
package icc

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chromad/chromad/internal/models"
)

// DefaultSystemDirs are the directories scanned for system-installed
// profiles. They are read-only from the daemon's point of view.
func DefaultSystemDirs() []string {
	return []string{
		"/usr/share/color/icc",
		"/usr/local/share/color/icc",
		"/var/lib/colord/icc",
	}
}

// DefaultUserDir returns the user-writable profile directory.
func DefaultUserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "icc"
	}
	return filepath.Join(home, ".local", "share", "icc")
}

// Registry scans profile directories and indexes parsed profiles by name.
// It is not safe for concurrent use; the service layer guards it with its
// own lock.
type Registry struct {
	profiles   map[string]*models.IccProfile
	systemDirs []string
	userDir    string
}

// NewRegistry creates a registry over the given system directories plus one
// user-writable directory. The index is empty until Scan is called.
func NewRegistry(systemDirs []string, userDir string) *Registry {
	return &Registry{
		profiles:   map[string]*models.IccProfile{},
		systemDirs: systemDirs,
		userDir:    userDir,
	}
}

// UserDir returns the user-writable profile directory.
func (r *Registry) UserDir() string { return r.userDir }

// Scan rebuilds the index from scratch. The new index is built off to the
// side and swapped in whole, so a failed directory never leaves the registry
// half-populated. Unreadable or malformed files are skipped.
func (r *Registry) Scan() {
	next := map[string]*models.IccProfile{}

	dirs := append(append([]string{}, r.systemDirs...), r.userDir)
	for _, dir := range dirs {
		scanDirectory(dir, next)
	}

	slog.Debug("icc: scan complete", "profiles", len(next))
	r.profiles = next
}

func scanDirectory(dir string, into map[string]*models.IccProfile) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Missing directories are normal on most systems.
		return
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".icc" && ext != ".icm" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		p, err := ParseFile(path)
		if err != nil {
			slog.Warn("icc: skipping profile", "path", path, "err", err)
			continue
		}
		into[p.Name] = p
	}
}

// Get returns the profile with the given display name, or nil.
func (r *Registry) Get(name string) *models.IccProfile {
	return r.profiles[name]
}

// List returns all indexed profiles sorted by name.
func (r *Registry) List() []*models.IccProfile {
	out := make([]*models.IccProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ListByClass returns profiles of the given class, sorted by name.
func (r *Registry) ListByClass(class models.ProfileClass) []*models.IccProfile {
	var out []*models.IccProfile
	for _, p := range r.profiles {
		if p.Class == class {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ListByColorSpace returns profiles with the given data color space, sorted
// by name.
func (r *Registry) ListByColorSpace(space models.ColorSpace) []*models.IccProfile {
	var out []*models.IccProfile
	for _, p := range r.profiles {
		if p.ColorSpace == space {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the number of indexed profiles.
func (r *Registry) Count() int { return len(r.profiles) }

// Install copies a profile file into the user directory, parses it, and
// inserts it into the index.
func (r *Registry) Install(source string) (*models.IccProfile, error) {
	if err := os.MkdirAll(r.userDir, 0755); err != nil {
		return nil, err
	}

	base := filepath.Base(source)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return nil, models.ErrProfile("invalid filename")
	}
	dest := filepath.Join(r.userDir, base)

	if err := copyFile(source, dest); err != nil {
		return nil, err
	}

	p, err := ParseFile(dest)
	if err != nil {
		return nil, err
	}
	r.profiles[p.Name] = p
	slog.Info("icc: installed profile", "name", p.Name, "path", dest)
	return p, nil
}

// Remove deletes a profile by name. Only profiles under the user directory
// may be removed; system profiles report a permission-style error.
func (r *Registry) Remove(name string) error {
	p, ok := r.profiles[name]
	if !ok {
		return nil
	}
	rel, err := filepath.Rel(r.userDir, p.Path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return models.ErrProfile("cannot remove system profile")
	}
	if err := os.Remove(p.Path); err != nil {
		return err
	}
	delete(r.profiles, name)
	slog.Info("icc: removed profile", "name", name)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
