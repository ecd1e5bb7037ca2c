// Package maintenance provides background upkeep goroutines for chromad.
// Currently that is daily rotation-limited backups of the config document.
package maintenance

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	backupPrefix = "color-"
	backupSuffix = ".json"

	// keepBackups is how many daily snapshots survive rotation.
	keepBackups = 7
)

// Service manages background maintenance goroutines.
type Service struct {
	configPath string // path of the live config document
	backupDir  string // where snapshots go; "" means <config dir>/backups
}

// New creates a new maintenance Service for the config document at
// configPath.
func New(configPath string) *Service {
	return &Service{configPath: configPath}
}

// Start launches the backup goroutine and blocks until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	go s.runBackup(ctx)
	<-ctx.Done()
}

// RunBackupNow performs a backup immediately and returns the snapshot path.
func (s *Service) RunBackupNow() (string, error) {
	return s.backup()
}

// ListBackups returns the available snapshots sorted by name (newest last).
func (s *Service) ListBackups() ([]string, error) {
	dir := s.dir()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), backupPrefix) && strings.HasSuffix(e.Name(), backupSuffix) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// runBackup takes a snapshot daily at 2am.
func (s *Service) runBackup(ctx context.Context) {
	for {
		now := time.Now()
		// Next 2am
		next := time.Date(now.Year(), now.Month(), now.Day(), 2, 0, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(next.Sub(now)):
			path, err := s.backup()
			if err != nil {
				slog.Error("maintenance: backup failed", "err", err)
			} else {
				slog.Info("maintenance: backup created", "file", path)
			}
		}
	}
}

// backup copies the config document into the backup directory under a dated
// name, then rotates old snapshots out.
func (s *Service) backup() (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	src, err := os.Open(s.configPath)
	if err != nil {
		return "", fmt.Errorf("open config: %w", err)
	}
	defer src.Close()

	date := time.Now().Format("2006-01-02")
	destFile := filepath.Join(dir, backupPrefix+date+backupSuffix)

	dst, err := os.Create(destFile)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("copy config: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close snapshot: %w", err)
	}

	s.rotate()
	return destFile, nil
}

// rotate deletes the oldest snapshots beyond the retention count. Snapshot
// names embed the date, so lexical order is age order.
func (s *Service) rotate() {
	files, err := s.ListBackups()
	if err != nil {
		return
	}
	for len(files) > keepBackups {
		path := files[0]
		files = files[1:]
		if err := os.Remove(path); err != nil {
			slog.Warn("maintenance: failed to prune old backup", "file", path, "err", err)
		} else {
			slog.Info("maintenance: pruned old backup", "file", path)
		}
	}
}

func (s *Service) dir() string {
	if s.backupDir != "" {
		return s.backupDir
	}
	return filepath.Join(filepath.Dir(s.configPath), "backups")
}
