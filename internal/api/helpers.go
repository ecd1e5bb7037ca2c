// Package api implements the HTTP REST API for chromad.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/chromad/chromad/internal/models"
	"github.com/chromad/chromad/internal/ocio"
)

// Handlers holds dependencies for all HTTP handlers.
type Handlers struct {
	svc    Service
	events EventBus
}

// Service is the interface the handlers use to interact with the color
// management state.
type Service interface {
	Info() models.Info
	Refresh() bool
	IsEnabled() bool
	SetEnabled(enabled bool) bool
	GlobalSettings() models.GlobalSettings

	ListMonitors() []string
	Monitors() []models.MonitorProfile
	GetMonitor(name string) *models.MonitorProfile
	GetMonitorProfile(name string) string
	SetMonitorProfile(name, path string) bool
	ApplyCalibration(name string, cal models.CalibrationData, i2cDev string) bool
	MeasurePatch(port string) (models.XYZ, error)

	ListProfiles() []string
	ListDisplayProfiles() []string
	Profiles() []*models.IccProfile
	GetProfilePath(name string) string
	InstallProfile(sourcePath string) bool
	RemoveProfile(name string) error

	IsHdrSupported() bool
	IsHdrActive(name string) bool
	HdrStates() []models.HdrMonitorState
	EnableHdr(name string) bool
	DisableHdr(name string) bool
	SetHdrMetadata(name string, md models.HdrMetadata) error

	GetOcioConfig() string
	SetOcioConfig(path string) bool
	ListOcioColorSpaces() []string
	ListOcioDisplays() []string
	OcioPresets() []ocio.Preset
	DiscoverOcioConfigs() []string

	ListWorkflows() []string
	GetWorkflowConfig(name string) (models.WorkflowColorConfig, bool)
}

// EventBus is the interface for subscribing to service change events.
type EventBus interface {
	Subscribe(id string) <-chan models.Event
	Unsubscribe(id string)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an AppError as a JSON response.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	if appErr, ok := err.(*models.AppError); ok {
		w.WriteHeader(appErr.Status)
		_ = json.NewEncoder(w).Encode(appErr)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(models.ErrInternal(err.Error()))
}
