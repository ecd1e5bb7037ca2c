package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/chromad/chromad/internal/ddc"
	"github.com/chromad/chromad/internal/models"
)

// ListMonitors returns the connector names of all detected monitors.
func (s *ColorService) ListMonitors() []string {
	s.monMu.RLock()
	defer s.monMu.RUnlock()
	ms := s.monitors.List()
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}
	return out
}

// Monitors returns full records for all detected monitors.
func (s *ColorService) Monitors() []models.MonitorProfile {
	s.monMu.RLock()
	defer s.monMu.RUnlock()
	return s.monitors.List()
}

// GetMonitor returns the named monitor, or nil.
func (s *ColorService) GetMonitor(name string) *models.MonitorProfile {
	s.monMu.RLock()
	defer s.monMu.RUnlock()
	return s.monitors.Get(name)
}

// ApplyCalibration records calibration data for a monitor, persists its
// brightness/contrast/gamma into the config, and pushes brightness and
// contrast to the panel over DDC/CI when an i2c device is given. The DDC
// leg is best-effort: the logical calibration state is recorded whether or
// not the panel acknowledged.
func (s *ColorService) ApplyCalibration(name string, cal models.CalibrationData, i2cDev string) bool {
	s.monMu.Lock()
	ok := s.monitors.SetCalibration(name, &cal)
	s.monMu.Unlock()
	if !ok {
		return false
	}

	s.cfgMu.Lock()
	mc := s.cfg.Monitors[name]
	mc.EdidName = name
	mc.CalibrationDate = cal.Date
	mc.Brightness = cal.Brightness
	mc.Contrast = cal.Contrast
	mc.Gamma = cal.Gamma
	mc.WhitePoint = cal.WhitePoint.Temperature
	s.cfg.Monitors[name] = mc
	saved := s.saveConfigLocked()
	s.cfgMu.Unlock()

	if i2cDev != "" {
		go s.pushCalibrationDDC(name, i2cDev, cal)
	}

	s.publish(models.Event{Kind: models.EventConfigChanged, Monitor: name, Detail: "calibration"})
	return saved
}

func (s *ColorService) pushCalibrationDDC(name, i2cDev string, cal models.CalibrationData) {
	ctl, err := s.openDDC(i2cDev)
	if err != nil {
		slog.Warn("service: DDC unavailable, calibration recorded only", "monitor", name, "dev", i2cDev, "err", err)
		return
	}
	defer ctl.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := setVCPPercent(ctx, ctl, ddc.VCPBrightness, cal.Brightness); err != nil {
		slog.Warn("service: DDC brightness write failed", "monitor", name, "err", err)
	}
	if err := setVCPPercent(ctx, ctl, ddc.VCPContrast, cal.Contrast); err != nil {
		slog.Warn("service: DDC contrast write failed", "monitor", name, "err", err)
	}
}

// setVCPPercent scales a 0-100 percentage to the feature's advertised range.
func setVCPPercent(ctx context.Context, ctl ddc.Control, feature byte, percent float32) error {
	_, max, err := ctl.GetVCP(ctx, feature)
	if err != nil {
		return err
	}
	if max == 0 {
		max = 100
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return ctl.SetVCP(ctx, feature, uint16(percent*float32(max)/100+0.5))
}

// MeasurePatch takes one colorimeter reading from the instrument on the
// given serial port ("" uses the default port).
func (s *ColorService) MeasurePatch(port string) (models.XYZ, error) {
	dev, err := s.openColorimeter(port)
	if err != nil {
		return models.XYZ{}, err
	}
	defer dev.Close()
	return dev.MeasureXYZ()
}
