package monitor

import (
	"errors"
	"testing"

	"github.com/chromad/chromad/internal/models"
)

func TestDetectParsesConnectors(t *testing.T) {
	prober := &MockProber{Connectors: []Connector{
		{Name: "card0-HDMI-A-1", Connected: true, EDID: fakeEDID("DEL", 2021, 2560, 1440)},
		{Name: "card0-DP-1", Connected: false},
	}}
	r := NewRegistry(prober)

	monitors := r.Detect()
	if len(monitors) != 1 {
		t.Fatalf("detected %d monitors, want 1", len(monitors))
	}
	m := monitors[0]
	if m.Name != "card0-HDMI-A-1" {
		t.Errorf("name = %q", m.Name)
	}
	if m.Edid.Manufacturer != "DEL" {
		t.Errorf("manufacturer = %q, want DEL", m.Edid.Manufacturer)
	}
	if m.Capabilities.HdrSupport != models.HdrNone {
		t.Errorf("capabilities should default to SDR")
	}
}

func TestDetectPlaceholderWhenEmpty(t *testing.T) {
	r := NewRegistry(&MockProber{})

	monitors := r.Detect()
	if len(monitors) != 1 {
		t.Fatalf("detected %d monitors, want 1 placeholder", len(monitors))
	}
	if monitors[0].Name != "Default" {
		t.Errorf("placeholder name = %q, want Default", monitors[0].Name)
	}
}

func TestDetectPlaceholderOnProbeError(t *testing.T) {
	r := NewRegistry(&MockProber{Err: errors.New("no DRM")})
	monitors := r.Detect()
	if len(monitors) != 1 || monitors[0].Name != "Default" {
		t.Errorf("probe failure should yield the placeholder, got %v", monitors)
	}
}

func TestDetectDefaultEDIDWithoutBlock(t *testing.T) {
	r := NewRegistry(&MockProber{Connectors: []Connector{
		{Name: "card0-eDP-1", Connected: true},
	}})

	m := r.Detect()[0]
	if m.Edid.Manufacturer != "Unknown" {
		t.Errorf("manufacturer = %q, want Unknown", m.Edid.Manufacturer)
	}
	if m.Edid.Model != "card0-eDP-1" {
		t.Errorf("model = %q, want connector name", m.Edid.Model)
	}
	if m.Edid.Width != 1920 || m.Edid.Height != 1080 {
		t.Errorf("resolution = %dx%d, want 1920x1080", m.Edid.Width, m.Edid.Height)
	}
}

func TestDetectRebuildsWholesale(t *testing.T) {
	prober := &MockProber{Connectors: []Connector{
		{Name: "card0-HDMI-A-1", Connected: true},
		{Name: "card0-DP-1", Connected: true},
	}}
	r := NewRegistry(prober)
	r.Detect()

	prober.Connectors = prober.Connectors[:1]
	monitors := r.Detect()
	if len(monitors) != 1 {
		t.Fatalf("detected %d monitors after unplug, want 1", len(monitors))
	}
	if r.Get("card0-DP-1") != nil {
		t.Error("unplugged monitor survived re-detect")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	r := NewRegistry(&MockProber{Connectors: []Connector{
		{Name: "card0-HDMI-A-1", Connected: true},
	}})
	r.Detect()

	m := r.Get("card0-HDMI-A-1")
	if m == nil {
		t.Fatal("Get returned nil")
	}
	m.Edid.Manufacturer = "HAX"
	if r.Get("card0-HDMI-A-1").Edid.Manufacturer == "HAX" {
		t.Error("Get returned shared state")
	}

	if r.Get("card9-VGA-1") != nil {
		t.Error("Get on unknown monitor should return nil")
	}
}

func TestSetCalibration(t *testing.T) {
	r := NewRegistry(&MockProber{Connectors: []Connector{
		{Name: "card0-HDMI-A-1", Connected: true},
	}})
	r.Detect()

	cal := &models.CalibrationData{Date: "2026-08-30", Gamma: 2.2, WhitePoint: models.D65()}
	if !r.SetCalibration("card0-HDMI-A-1", cal) {
		t.Fatal("SetCalibration returned false")
	}
	got := r.Get("card0-HDMI-A-1").Calibration
	if got == nil || got.Date != "2026-08-30" {
		t.Errorf("calibration = %+v", got)
	}

	if r.SetCalibration("card9-VGA-1", cal) {
		t.Error("SetCalibration on unknown monitor should return false")
	}
}
