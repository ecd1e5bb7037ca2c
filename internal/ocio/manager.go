// Package ocio loads OpenColorIO-style pipeline configuration documents.
// The parser is deliberately line-oriented prefix matching: enough to
// enumerate color spaces, roles, and looks without a full YAML grammar.
package ocio

import (
	"log/slog"
	"os"
	"strings"

	"github.com/chromad/chromad/internal/models"
)

// ColorSpaceEntry is one color space declared by a config.
type ColorSpaceEntry struct {
	Name        string `json:"name"`
	Family      string `json:"family"`
	Description string `json:"description"`
	IsData      bool   `json:"is_data"`
}

// Display is a named display with its view list.
type Display struct {
	Name  string   `json:"name"`
	Views []string `json:"views"`
}

// View is one display/view transform pair.
type View struct {
	Name       string `json:"name"`
	Display    string `json:"display"`
	ColorSpace string `json:"color_space"`
}

// Look is a named creative look.
type Look struct {
	Name         string `json:"name"`
	ProcessSpace string `json:"process_space"`
	Description  string `json:"description,omitempty"`
}

// Roles are the well-known color space role bindings.
type Roles struct {
	Default     string `json:"default,omitempty"`
	Reference   string `json:"reference,omitempty"`
	SceneLinear string `json:"scene_linear,omitempty"`
}

// Config is one loaded pipeline document.
type Config struct {
	Path        string            `json:"path"`
	Description string            `json:"description"`
	ColorSpaces []ColorSpaceEntry `json:"color_spaces"`
	Displays    []Display         `json:"displays"`
	Views       []View            `json:"views"`
	Looks       []Look            `json:"looks"`
	Roles       Roles             `json:"roles"`
}

// Manager holds at most one loaded config. Replaced wholesale on Load,
// cleared on Unload. Guarded by the service layer's lock.
type Manager struct {
	config *Config
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Load parses the document at path and makes it the active config. The OCIO
// environment variable is set so child tooling picks up the same pipeline.
func (m *Manager) Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		return models.ErrNotFound("OCIO config not found: " + path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cfg := parseConfig(string(data), path)
	m.config = cfg
	os.Setenv("OCIO", path)
	slog.Info("ocio: loaded config", "path", path, "color_spaces", len(cfg.ColorSpaces))
	return nil
}

// Unload clears the active config and the OCIO environment variable.
func (m *Manager) Unload() {
	if m.config != nil {
		slog.Info("ocio: unloaded config", "path", m.config.Path)
	}
	m.config = nil
	os.Unsetenv("OCIO")
}

// Config returns the active config, or nil.
func (m *Manager) Config() *Config { return m.config }

// Path returns the active config path, or "".
func (m *Manager) Path() string {
	if m.config == nil {
		return ""
	}
	return m.config.Path
}

// ListColorSpaces returns the names of all declared color spaces.
func (m *Manager) ListColorSpaces() []string {
	if m.config == nil {
		return nil
	}
	out := make([]string, len(m.config.ColorSpaces))
	for i, cs := range m.config.ColorSpaces {
		out[i] = cs.Name
	}
	return out
}

// ListDisplays returns the names of all declared displays.
func (m *Manager) ListDisplays() []string {
	if m.config == nil {
		return nil
	}
	out := make([]string, len(m.config.Displays))
	for i, d := range m.config.Displays {
		out[i] = d.Name
	}
	return out
}

// SceneLinear returns the scene_linear role binding, or "".
func (m *Manager) SceneLinear() string {
	if m.config == nil {
		return ""
	}
	return m.config.Roles.SceneLinear
}

func parseConfig(content, path string) *Config {
	cfg := &Config{Path: path}

	section := ""
	var current *ColorSpaceEntry
	currentDisplay := -1

	flush := func() {
		if current != nil {
			cfg.ColorSpaces = append(cfg.ColorSpaces, *current)
			current = nil
		}
	}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "colorspaces:"):
			section = "colorspaces"
		case strings.HasPrefix(line, "displays:"):
			section = "displays"
		case strings.HasPrefix(line, "looks:"):
			section = "looks"
		case strings.HasPrefix(line, "roles:"):
			section = "roles"
		case section == "colorspaces" && strings.HasPrefix(line, "- !<ColorSpace>"):
			flush()
			current = &ColorSpaceEntry{}
		case section == "displays" && strings.HasSuffix(line, ":") && !strings.HasPrefix(line, "-"):
			cfg.Displays = append(cfg.Displays, Display{Name: strings.TrimSuffix(line, ":")})
			currentDisplay = len(cfg.Displays) - 1
		case section == "displays" && currentDisplay >= 0 && strings.HasPrefix(line, "- !<View>"):
			v := parseView(line, cfg.Displays[currentDisplay].Name)
			cfg.Views = append(cfg.Views, v)
			cfg.Displays[currentDisplay].Views = append(cfg.Displays[currentDisplay].Views, v.Name)
		case current != nil && strings.HasPrefix(line, "name:"):
			current.Name = strings.TrimSpace(strings.TrimPrefix(line, "name:"))
		case current != nil && strings.HasPrefix(line, "family:"):
			current.Family = strings.TrimSpace(strings.TrimPrefix(line, "family:"))
		case current != nil && strings.HasPrefix(line, "description:"):
			current.Description = strings.TrimSpace(strings.TrimPrefix(line, "description:"))
		case current != nil && strings.HasPrefix(line, "isdata:"):
			current.IsData = strings.Contains(line, "true")
		case section == "roles" && strings.HasPrefix(line, "default:"):
			cfg.Roles.Default = strings.TrimSpace(strings.TrimPrefix(line, "default:"))
		case section == "roles" && strings.HasPrefix(line, "reference:"):
			cfg.Roles.Reference = strings.TrimSpace(strings.TrimPrefix(line, "reference:"))
		case section == "roles" && strings.HasPrefix(line, "scene_linear:"):
			cfg.Roles.SceneLinear = strings.TrimSpace(strings.TrimPrefix(line, "scene_linear:"))
		case strings.HasPrefix(line, "description:"):
			cfg.Description = strings.TrimSpace(strings.TrimPrefix(line, "description:"))
		}
	}
	flush()

	return cfg
}

// parseView pulls name and colorspace out of an inline view mapping like
// `- !<View> {name: Film, colorspace: out_rec709}`.
func parseView(line, display string) View {
	v := View{Display: display}
	body := strings.TrimPrefix(line, "- !<View>")
	body = strings.Trim(strings.TrimSpace(body), "{}")
	for _, part := range strings.Split(body, ",") {
		k, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "name":
			v.Name = strings.TrimSpace(val)
		case "colorspace":
			v.ColorSpace = strings.TrimSpace(val)
		}
	}
	return v
}
