// Package service implements the ColorService façade: the coordination
// point for the profile catalog, monitor registry, HDR state, OCIO pipeline,
// and persisted configuration.
//
// Each subsystem sits behind its own read/write lock so unrelated calls
// (listing profiles while toggling HDR) never contend. Operations that span
// two subsystems take their locks in sequence and are not atomic across the
// pair; refresh replaces state per subsystem, not as one transaction.
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/chromad/chromad/internal/colorimeter"
	"github.com/chromad/chromad/internal/config"
	"github.com/chromad/chromad/internal/ddc"
	"github.com/chromad/chromad/internal/events"
	"github.com/chromad/chromad/internal/hdr"
	"github.com/chromad/chromad/internal/icc"
	"github.com/chromad/chromad/internal/models"
	"github.com/chromad/chromad/internal/monitor"
	"github.com/chromad/chromad/internal/ocio"
)

// ColorService owns one instance of each subsystem under independent
// synchronization and exposes the daemon's operation contract.
type ColorService struct {
	store config.Store
	bus   *events.Bus

	cfgMu sync.RWMutex
	cfg   models.ColorConfig

	profMu   sync.RWMutex
	profiles *icc.Registry

	monMu    sync.RWMutex
	monitors *monitor.Registry

	hdrMu  sync.RWMutex
	hdrCtl *hdr.Controller

	ocioMu  sync.RWMutex
	ocioMgr *ocio.Manager

	// Injectable for tests; real builds open hardware.
	openDDC         func(dev string) (ddc.Control, error)
	openColorimeter func(port string) (*colorimeter.Device, error)
}

// New assembles a service over the given subsystems. Call Init before
// serving requests.
func New(store config.Store, profiles *icc.Registry, monitors *monitor.Registry, hdrCtl *hdr.Controller, ocioMgr *ocio.Manager, bus *events.Bus) *ColorService {
	return &ColorService{
		store:    store,
		bus:      bus,
		cfg:      models.DefaultConfig(),
		profiles: profiles,
		monitors: monitors,
		hdrCtl:   hdrCtl,
		ocioMgr:  ocioMgr,
		openDDC: func(dev string) (ddc.Control, error) {
			return ddc.Open(dev)
		},
		openColorimeter: colorimeter.Open,
	}
}

// Init loads the configuration and performs the initial profile scan,
// monitor detect, and HDR detect. The OCIO manager stays unloaded until a
// client selects a config.
func (s *ColorService) Init() error {
	cfg, err := s.store.Load()
	if err != nil {
		// Load only fails on real I/O errors; parse errors already
		// degrade to defaults inside the store.
		slog.Warn("service: config load failed, using defaults", "err", err)
		def := models.DefaultConfig()
		cfg = &def
	}
	s.cfgMu.Lock()
	s.cfg = *cfg
	s.cfgMu.Unlock()

	s.profMu.Lock()
	s.profiles.Scan()
	s.profMu.Unlock()

	s.monMu.Lock()
	detected := s.monitors.Detect()
	s.monMu.Unlock()

	s.hdrMu.Lock()
	s.hdrCtl.Detect(detected)
	s.hdrMu.Unlock()

	slog.Info("service: initialized",
		"profiles", s.profiles.Count(),
		"monitors", len(detected),
		"hdr_supported", s.hdrCtl.Supported(),
	)
	return nil
}

// Refresh re-runs the profile scan, monitor detect, and HDR detect. Each
// subsystem's state is replaced atomically under its own lock; the three
// swaps are not one cross-subsystem transaction.
func (s *ColorService) Refresh() bool {
	s.profMu.Lock()
	s.profiles.Scan()
	s.profMu.Unlock()

	s.monMu.Lock()
	detected := s.monitors.Detect()
	s.monMu.Unlock()

	s.hdrMu.Lock()
	s.hdrCtl.Detect(detected)
	s.hdrMu.Unlock()

	s.publish(models.Event{Kind: models.EventRefresh})
	return true
}

// Info returns the daemon summary.
func (s *ColorService) Info() models.Info {
	s.profMu.RLock()
	profiles := s.profiles.Count()
	s.profMu.RUnlock()

	s.monMu.RLock()
	monitors := len(s.monitors.List())
	s.monMu.RUnlock()

	s.hdrMu.RLock()
	hdrSupported := s.hdrCtl.Supported()
	s.hdrMu.RUnlock()

	s.ocioMu.RLock()
	ocioPath := s.ocioMgr.Path()
	s.ocioMu.RUnlock()

	return models.Info{
		Version:      models.Version,
		Monitors:     monitors,
		Profiles:     profiles,
		HdrSupported: hdrSupported,
		OcioConfig:   ocioPath,
	}
}

func (s *ColorService) publish(ev models.Event) {
	if s.bus == nil {
		return
	}
	ev.Time = time.Now()
	s.bus.Publish(ev)
}

// saveConfigLocked persists the current config. Callers hold cfgMu.
func (s *ColorService) saveConfigLocked() bool {
	if err := s.store.Save(&s.cfg); err != nil {
		slog.Error("service: config save failed", "err", err)
		return false
	}
	return true
}
