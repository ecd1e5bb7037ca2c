package hdr_test

import (
	"testing"

	"github.com/chromad/chromad/internal/hdr"
	"github.com/chromad/chromad/internal/models"
)

func testMonitors() []models.MonitorProfile {
	sdr := models.DefaultCapabilities()
	hdrCaps := models.DefaultCapabilities()
	hdrCaps.HdrSupport = models.HdrCapHdr10
	return []models.MonitorProfile{
		{Name: "card0-HDMI-A-1", Capabilities: hdrCaps},
		{Name: "card0-DP-1", Capabilities: sdr},
	}
}

func newTestController(t *testing.T) (*hdr.Controller, *hdr.MockPlatform) {
	t.Helper()
	platform := hdr.NewMockPlatform()
	c := hdr.NewController(platform)
	c.Detect(testMonitors())
	return c, platform
}

func TestDetectFiltersSDRMonitors(t *testing.T) {
	c, _ := newTestController(t)

	if !c.Supported() {
		t.Error("Supported() = false, want true")
	}
	states := c.States()
	if len(states) != 1 {
		t.Fatalf("tracked %d monitors, want 1", len(states))
	}
	if states[0].Name != "card0-HDMI-A-1" {
		t.Errorf("tracked monitor = %s", states[0].Name)
	}
	if states[0].Active {
		t.Error("monitor active after detect, want inactive")
	}
}

func TestDetectNoCapableMonitors(t *testing.T) {
	c := hdr.NewController(hdr.NewMockPlatform())
	c.Detect([]models.MonitorProfile{{Name: "a", Capabilities: models.DefaultCapabilities()}})

	if c.Supported() {
		t.Error("Supported() = true with SDR-only monitors")
	}
	if len(c.States()) != 0 {
		t.Error("States() not empty with SDR-only monitors")
	}
}

func TestEnableDisable(t *testing.T) {
	c, platform := newTestController(t)

	if err := c.Enable("card0-HDMI-A-1"); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if !c.IsActive("card0-HDMI-A-1") {
		t.Error("IsActive = false after Enable")
	}
	if !platform.Enabled["card0-HDMI-A-1"] {
		t.Error("platform toggle not called")
	}

	st := c.States()[0]
	if st.Metadata == nil {
		t.Fatal("no metadata after Enable")
	}
	if st.Metadata.MaxLuminance != 1000 {
		t.Errorf("default max luminance = %v, want 1000", st.Metadata.MaxLuminance)
	}
	if !st.PlatformOK {
		t.Error("PlatformOK = false for successful platform call")
	}

	if err := c.Disable("card0-HDMI-A-1"); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	if c.IsActive("card0-HDMI-A-1") {
		t.Error("IsActive = true after Disable")
	}
	if c.States()[0].Metadata != nil {
		t.Error("metadata not cleared by Disable")
	}
}

func TestEnableUnknownMonitor(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.Enable("card9-VGA-1"); err == nil {
		t.Error("Enable on unknown monitor should fail")
	}
}

func TestEnablePlatformFailureStillActivates(t *testing.T) {
	c, platform := newTestController(t)
	platform.FailNext = true

	if err := c.Enable("card0-HDMI-A-1"); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	st := c.States()[0]
	if !st.Active {
		t.Error("logical state should activate despite platform failure")
	}
	if st.PlatformOK {
		t.Error("PlatformOK should record the platform failure")
	}
}

func TestSetMetadataRequiresActive(t *testing.T) {
	c, _ := newTestController(t)
	md := models.DefaultHdr10Metadata()

	if err := c.SetMetadata("card0-HDMI-A-1", md); err == nil {
		t.Error("SetMetadata on inactive monitor should fail")
	}

	if err := c.Enable("card0-HDMI-A-1"); err != nil {
		t.Fatal(err)
	}
	md.MaxLuminance = 4000
	if err := c.SetMetadata("card0-HDMI-A-1", md); err != nil {
		t.Fatalf("SetMetadata: %v", err)
	}
	if got := c.States()[0].Metadata.MaxLuminance; got != 4000 {
		t.Errorf("max luminance = %v, want 4000", got)
	}
}

func TestDetectResetsActivation(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.Enable("card0-HDMI-A-1"); err != nil {
		t.Fatal(err)
	}

	c.Detect(testMonitors())
	if c.IsActive("card0-HDMI-A-1") {
		t.Error("activation survived a re-detect")
	}
}

func TestStatesReturnsCopies(t *testing.T) {
	c, _ := newTestController(t)
	if err := c.Enable("card0-HDMI-A-1"); err != nil {
		t.Fatal(err)
	}

	states := c.States()
	states[0].Metadata.MaxLuminance = 9999
	if got := c.States()[0].Metadata.MaxLuminance; got == 9999 {
		t.Error("States() returned shared metadata")
	}
}
