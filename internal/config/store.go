// Package config handles loading and saving the chromad configuration.
package config

import "github.com/chromad/chromad/internal/models"

// Store is the interface for persisting the color configuration.
type Store interface {
	// Load loads the current configuration. Returns DefaultConfig if no
	// file exists or the file cannot be parsed.
	Load() (*models.ColorConfig, error)

	// Save persists the configuration. Implementations may debounce rapid saves.
	Save(cfg *models.ColorConfig) error

	// Path returns the file path used by this store.
	Path() string

	// Flush forces an immediate write of any pending configuration.
	Flush() error
}
