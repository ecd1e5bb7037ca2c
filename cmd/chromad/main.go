// Command chromad is the color management daemon. It maintains the ICC
// profile catalog, monitor registry, HDR state, and active OCIO config, and
// serves them over HTTP and optionally D-Bus.
// Run with --mock to use simulated displays (no DRM tree required).
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chromad/chromad/internal/api"
	"github.com/chromad/chromad/internal/config"
	"github.com/chromad/chromad/internal/dbusapi"
	"github.com/chromad/chromad/internal/events"
	"github.com/chromad/chromad/internal/hdr"
	"github.com/chromad/chromad/internal/icc"
	"github.com/chromad/chromad/internal/maintenance"
	"github.com/chromad/chromad/internal/models"
	"github.com/chromad/chromad/internal/monitor"
	"github.com/chromad/chromad/internal/ocio"
	"github.com/chromad/chromad/internal/service"
	"github.com/chromad/chromad/internal/zeroconf"
)

func main() {
	var (
		mock     = flag.Bool("mock", false, "use mock display and HDR drivers (no DRM tree required)")
		addr     = flag.String("addr", ":8095", "HTTP listen address")
		cfgDir   = flag.String("config-dir", "", "config directory (default: ~/.config/chromad)")
		debug    = flag.Bool("debug", false, "enable debug logging")
		dbusFlag = flag.Bool("dbus", false, "export the service on the D-Bus session bus")
		watch    = flag.Bool("watch-profiles", false, "watch ICC profile directories and rescan on changes")
	)
	flag.Parse()

	// Configure logging
	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	// Resolve config directory
	if *cfgDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("cannot determine home directory", "err", err)
			os.Exit(1)
		}
		*cfgDir = filepath.Join(home, ".config", "chromad")
	}
	if err := os.MkdirAll(*cfgDir, 0755); err != nil {
		slog.Error("cannot create config directory", "path", *cfgDir, "err", err)
		os.Exit(1)
	}

	// Graceful shutdown context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Display prober and HDR platform
	var (
		prober   monitor.Prober
		platform hdr.Platform
	)
	if *mock {
		slog.Info("using mock display drivers")
		prober = &monitor.MockProber{Connectors: []monitor.Connector{
			{Name: "card0-HDMI-A-1", Connected: true},
		}}
		platform = hdr.NewMockPlatform()
	} else {
		slog.Info("using DRM display drivers")
		prober = monitor.NewDRMProber()
		platform = hdr.DRMPlatform{}
	}

	// Subsystems
	store := config.NewJSONStore(*cfgDir)
	bus := events.NewBus()
	profiles := icc.NewRegistry(icc.DefaultSystemDirs(), icc.DefaultUserDir())
	monitors := monitor.NewRegistry(prober)
	hdrCtl := hdr.NewController(platform)
	ocioMgr := ocio.NewManager()

	svc := service.New(store, profiles, monitors, hdrCtl, ocioMgr, bus)
	if err := svc.Init(); err != nil {
		slog.Error("service initialization failed", "err", err)
		os.Exit(1)
	}

	// D-Bus export (optional; a missing session bus is not fatal)
	if *dbusFlag {
		if srv, err := dbusapi.Start(svc); err != nil {
			slog.Warn("dbus export failed", "err", err)
		} else {
			defer srv.Close()
		}
	}

	// Profile directory watcher
	if *watch {
		if err := watchProfileDirs(ctx, svc); err != nil {
			slog.Warn("profile watcher failed", "err", err)
		}
	}

	// Maintenance goroutines (daily config backups)
	maint := maintenance.New(store.Path())
	go maint.Start(ctx)

	// Zeroconf mDNS registration
	hostname, _ := os.Hostname()
	port := 8095
	if parts := strings.SplitN(*addr, ":", 2); len(parts) == 2 && parts[1] != "" {
		if p, err := strconv.Atoi(parts[1]); err == nil {
			port = p
		}
	}
	zc := zeroconf.New(hostname, port)
	go func() {
		if err := zc.Start(ctx); err != nil {
			slog.Warn("zeroconf failed", "err", err)
		}
	}()

	// HTTP server
	srv := &http.Server{
		Addr:         *addr,
		Handler:      api.NewRouter(svc, bus),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // 0 = no timeout (needed for SSE)
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("chromad listening", "addr", *addr, "mock", *mock, "config", *cfgDir, "version", models.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	slog.Info("shutting down...")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()

	// Flush pending config writes
	if err := store.Flush(); err != nil {
		slog.Warn("failed to flush config", "err", err)
	}

	// Graceful HTTP shutdown
	if err := srv.Shutdown(shutCtx); err != nil {
		slog.Warn("server shutdown error", "err", err)
	}

	slog.Info("shutdown complete")
}

// watchProfileDirs rescans the profile catalog when files change in any
// profile directory. Events are debounced so a burst of writes from a
// profile installer triggers one rescan.
func watchProfileDirs(ctx context.Context, svc *service.ColorService) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dirs := append(icc.DefaultSystemDirs(), icc.DefaultUserDir())
	watched := 0
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			slog.Debug("watcher: skipping directory", "dir", dir, "err", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		watcher.Close()
		return nil
	}
	slog.Info("watching profile directories", "count", watched)

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		rescan := make(chan struct{}, 1)
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(time.Second, func() {
					select {
					case rescan <- struct{}{}:
					default:
					}
				})
			case <-rescan:
				slog.Info("profile directory changed, refreshing")
				svc.Refresh()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("watcher error", "err", err)
			}
		}
	}()
	return nil
}
