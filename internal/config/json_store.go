package config

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chromad/chromad/internal/models"
)

const (
	configFileName = "color.json"
	debounceDelay  = 500 * time.Millisecond
)

// JSONStore is an atomic JSON file store with debounced writes.
type JSONStore struct {
	mu      sync.Mutex
	path    string
	timer   *time.Timer
	pending *models.ColorConfig
}

// NewJSONStore creates a new JSON store in the given config directory.
func NewJSONStore(configDir string) *JSONStore {
	return &JSONStore{
		path: filepath.Join(configDir, configFileName),
	}
}

// Path returns the file path used by this store.
func (s *JSONStore) Path() string { return s.path }

// Load reads the configuration from disk. Missing or unparsable files
// degrade to DefaultConfig rather than failing startup.
func (s *JSONStore) Load() (*models.ColorConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			def := models.DefaultConfig()
			return &def, nil
		}
		return nil, err
	}

	var cfg models.ColorConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		slog.Warn("config: corrupt JSON config, using defaults", "path", s.path, "err", err)
		def := models.DefaultConfig()
		return &def, nil
	}

	migrateConfig(&cfg)
	return &cfg, nil
}

// Save schedules a debounced write of the configuration to disk.
// The actual write happens after 500ms of no further Save calls.
func (s *JSONStore) Save(cfg *models.ColorConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Take a copy so we don't hold a reference to the caller's config
	cp := cfg.DeepCopy()
	s.pending = &cp

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(debounceDelay, func() {
		s.mu.Lock()
		c := s.pending
		s.mu.Unlock()
		if c != nil {
			if err := s.writeAtomic(c); err != nil {
				slog.Error("config: failed to write config", "path", s.path, "err", err)
			}
		}
	})
	return nil
}

// Flush forces an immediate write of any pending configuration.
func (s *JSONStore) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	c := s.pending
	s.mu.Unlock()
	if c == nil {
		return nil
	}
	return s.writeAtomic(c)
}

func (s *JSONStore) writeAtomic(cfg *models.ColorConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	// Write to temp file, then rename (atomic on Linux)
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}

// migrateConfig fills in anything a hand-edited or older config is missing.
func migrateConfig(cfg *models.ColorConfig) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Monitors == nil {
		cfg.Monitors = map[string]models.MonitorColorConfig{}
	}
	if len(cfg.Workflows) == 0 {
		cfg.Workflows = models.DefaultWorkflows()
	}
}
