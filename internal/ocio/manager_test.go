package ocio

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `ocio_profile_version: 2

description: Test pipeline

roles:
  default: raw
  reference: lin_rec709
  scene_linear: lin_rec709

displays:
  sRGB:
    - !<View> {name: Standard, colorspace: out_srgb}
    - !<View> {name: Raw, colorspace: raw}
  Rec.709:
    - !<View> {name: Video, colorspace: out_rec709}

colorspaces:
  - !<ColorSpace>
    name: lin_rec709
    family: linear
    description: Scene-linear Rec.709

  - !<ColorSpace>
    name: out_srgb
    family: display

  - !<ColorSpace>
    name: raw
    family: data
    isdata: true
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ocio")
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParsesConfig(t *testing.T) {
	m := NewManager()
	path := writeSample(t)
	t.Cleanup(m.Unload)

	if err := m.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.Path() != path {
		t.Errorf("Path = %q, want %q", m.Path(), path)
	}

	spaces := m.ListColorSpaces()
	if len(spaces) != 3 {
		t.Fatalf("color spaces = %v, want 3 entries", spaces)
	}
	if spaces[0] != "lin_rec709" || spaces[2] != "raw" {
		t.Errorf("color space order wrong: %v", spaces)
	}

	cfg := m.Config()
	if cfg.ColorSpaces[0].Family != "linear" {
		t.Errorf("family = %q", cfg.ColorSpaces[0].Family)
	}
	if !cfg.ColorSpaces[2].IsData {
		t.Error("raw space should be data")
	}
	if cfg.Roles.SceneLinear != "lin_rec709" {
		t.Errorf("scene_linear role = %q", cfg.Roles.SceneLinear)
	}
	if m.SceneLinear() != "lin_rec709" {
		t.Errorf("SceneLinear = %q", m.SceneLinear())
	}
}

func TestLoadParsesDisplays(t *testing.T) {
	m := NewManager()
	t.Cleanup(m.Unload)
	if err := m.Load(writeSample(t)); err != nil {
		t.Fatal(err)
	}

	displays := m.ListDisplays()
	if len(displays) != 2 || displays[0] != "sRGB" || displays[1] != "Rec.709" {
		t.Fatalf("displays = %v", displays)
	}

	cfg := m.Config()
	if len(cfg.Views) != 3 {
		t.Fatalf("views = %v, want 3", cfg.Views)
	}
	v := cfg.Views[0]
	if v.Name != "Standard" || v.Display != "sRGB" || v.ColorSpace != "out_srgb" {
		t.Errorf("view = %+v", v)
	}
	if len(cfg.Displays[0].Views) != 2 {
		t.Errorf("sRGB views = %v", cfg.Displays[0].Views)
	}
}

func TestLoadSetsEnvironment(t *testing.T) {
	m := NewManager()
	path := writeSample(t)
	t.Cleanup(m.Unload)

	if err := m.Load(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("OCIO"); got != path {
		t.Errorf("OCIO env = %q, want %q", got, path)
	}

	m.Unload()
	if _, set := os.LookupEnv("OCIO"); set {
		t.Error("OCIO env still set after Unload")
	}
	if m.Path() != "" {
		t.Errorf("Path after Unload = %q", m.Path())
	}
}

func TestLoadMissingFile(t *testing.T) {
	m := NewManager()
	if err := m.Load(filepath.Join(t.TempDir(), "nope.ocio")); err == nil {
		t.Fatal("expected error for missing config")
	}
	if m.Config() != nil {
		t.Error("failed Load should leave manager empty")
	}
}

func TestEmptyManager(t *testing.T) {
	m := NewManager()
	if m.ListColorSpaces() != nil || m.ListDisplays() != nil {
		t.Error("empty manager should list nothing")
	}
	if m.Path() != "" || m.SceneLinear() != "" {
		t.Error("empty manager should report empty strings")
	}
}
