package monitor

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConnector(t *testing.T, root, name, status string, edid []byte) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "status"), []byte(status+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if edid != nil {
		if err := os.WriteFile(filepath.Join(dir, "edid"), edid, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDRMProber(t *testing.T) {
	root := t.TempDir()
	writeConnector(t, root, "card0-HDMI-A-1", "connected", fakeEDID("DEL", 2021, 1920, 1080))
	writeConnector(t, root, "card0-DP-1", "disconnected", nil)
	writeConnector(t, root, "card0-eDP-1", "connected", nil)
	// The bare card entry must be skipped.
	if err := os.MkdirAll(filepath.Join(root, "card0"), 0755); err != nil {
		t.Fatal(err)
	}

	p := &DRMProber{Root: root}
	connectors, err := p.Probe()
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if len(connectors) != 2 {
		t.Fatalf("probed %d connectors, want 2", len(connectors))
	}

	byName := map[string]Connector{}
	for _, c := range connectors {
		byName[c.Name] = c
	}
	if c := byName["card0-HDMI-A-1"]; c.EDID == nil {
		t.Error("HDMI connector missing EDID bytes")
	}
	if c := byName["card0-eDP-1"]; c.EDID != nil {
		t.Error("eDP connector should have no EDID")
	}
}

func TestDRMProberMissingTree(t *testing.T) {
	p := &DRMProber{Root: filepath.Join(t.TempDir(), "nonexistent")}
	connectors, err := p.Probe()
	if err != nil {
		t.Fatalf("missing tree should not error: %v", err)
	}
	if connectors != nil {
		t.Errorf("connectors = %v, want nil", connectors)
	}
}
