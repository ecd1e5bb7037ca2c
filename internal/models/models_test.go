package models_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/chromad/chromad/internal/models"
)

func TestRenderingIntentText(t *testing.T) {
	var i models.RenderingIntent
	if err := i.UnmarshalText([]byte("saturation")); err != nil {
		t.Fatal(err)
	}
	if i != models.IntentSaturation {
		t.Errorf("intent = %v", i)
	}

	// Unknown names degrade to perceptual so hand-edited configs load.
	if err := i.UnmarshalText([]byte("vivid")); err != nil {
		t.Fatal(err)
	}
	if i != models.IntentPerceptual {
		t.Errorf("unknown intent = %v, want perceptual", i)
	}
}

func TestEnumJSONEncoding(t *testing.T) {
	data, err := json.Marshal(models.ClassDisplay)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"display"` {
		t.Errorf("profile class encodes as %s", data)
	}

	var cap models.HdrCapability
	if err := json.Unmarshal([]byte(`"hdr10"`), &cap); err != nil {
		t.Fatal(err)
	}
	if cap != models.HdrCapHdr10 {
		t.Errorf("capability = %v", cap)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := models.DefaultConfig()
	if !cfg.Global.Enabled || !cfg.Global.BlackPointCompensation {
		t.Error("defaults should enable management and BPC")
	}
	if cfg.Global.RenderingIntent != models.IntentPerceptual {
		t.Errorf("default intent = %v", cfg.Global.RenderingIntent)
	}

	for _, key := range []string{"photography", "video", "vfx", "print", "web"} {
		if _, ok := cfg.Workflows[key]; !ok {
			t.Errorf("workflow %q missing from defaults", key)
		}
	}
	if ws := cfg.Workflows["vfx"].WorkingSpace; ws != "ACEScg" {
		t.Errorf("vfx working space = %q", ws)
	}
}

func TestColorConfigDeepCopy(t *testing.T) {
	cfg := models.DefaultConfig()
	peak := uint32(600)
	cfg.Monitors["m"] = models.MonitorColorConfig{EdidName: "m", HdrPeakLuminance: &peak}
	cfg.Ocio = &models.OcioSelection{ConfigPath: "/a/config.ocio"}

	cp := cfg.DeepCopy()
	*cp.Monitors["m"].HdrPeakLuminance = 1000
	cp.Ocio.ConfigPath = "/b/config.ocio"
	cp.Workflows["web"] = models.WorkflowColorConfig{Name: "changed"}

	if *cfg.Monitors["m"].HdrPeakLuminance != 600 {
		t.Error("DeepCopy shared the HDR peak pointer")
	}
	if cfg.Ocio.ConfigPath != "/a/config.ocio" {
		t.Error("DeepCopy shared the OCIO selection")
	}
	if cfg.Workflows["web"].Name == "changed" {
		t.Error("DeepCopy shared the workflow map")
	}
}

func TestMonitorProfileDeepCopy(t *testing.T) {
	sz := [2]uint32{600, 340}
	m := models.MonitorProfile{
		Name:        "card0-HDMI-A-1",
		Edid:        models.EdidInfo{PhysicalSizeMM: &sz},
		Calibration: &models.CalibrationData{Gamma: 2.2},
	}

	cp := m.DeepCopy()
	cp.Edid.PhysicalSizeMM[0] = 1
	cp.Calibration.Gamma = 1.8

	if m.Edid.PhysicalSizeMM[0] != 600 {
		t.Error("DeepCopy shared the physical size")
	}
	if m.Calibration.Gamma != 2.2 {
		t.Error("DeepCopy shared the calibration")
	}
}

func TestStandardWhitePoints(t *testing.T) {
	if wp := models.D65(); wp.Temperature != 6500 || wp.X != 0.3127 {
		t.Errorf("D65 = %+v", wp)
	}
	if wp := models.D50(); wp.Temperature != 5000 {
		t.Errorf("D50 = %+v", wp)
	}
	if wp := models.D93(); wp.Temperature != 9300 {
		t.Errorf("D93 = %+v", wp)
	}
}

func TestWhitePointFromTemperature(t *testing.T) {
	// The polynomial fit should land close to the standard illuminants.
	got := models.WhitePointFromTemperature(6500)
	if math.Abs(float64(got.X-0.3127)) > 0.01 || math.Abs(float64(got.Y-0.3290)) > 0.01 {
		t.Errorf("6500K = (%v, %v), want near D65", got.X, got.Y)
	}

	warm := models.WhitePointFromTemperature(3000)
	if warm.X <= got.X {
		t.Error("warmer temperatures should shift x upward")
	}
}

func TestDefaultHdr10Metadata(t *testing.T) {
	md := models.DefaultHdr10Metadata()
	if md.Format != models.FormatHdr10 || md.TransferFunction != models.TransferPQ {
		t.Errorf("metadata = %+v", md)
	}
	if md.MaxLuminance != 1000 || md.MaxFrameAverage != 400 || md.MinLuminance != 0.001 {
		t.Errorf("luminance bounds = %v/%v/%v", md.MaxLuminance, md.MaxFrameAverage, md.MinLuminance)
	}
	if md.Primaries != models.BT2020Primaries() {
		t.Error("default primaries should be BT.2020")
	}
}
