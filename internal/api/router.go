package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and returns the main HTTP router.
func NewRouter(svc Service, bus EventBus) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(corsMiddleware)
	r.Use(middleware.CleanPath)

	h := &Handlers{svc: svc, events: bus}

	// Summary
	r.Get("/api", h.getSummary)
	r.Get("/api/", h.getSummary)
	r.Get("/api/info", h.getInfo)
	r.Post("/api/refresh", h.refresh)

	// Global enable flag
	r.Get("/api/enabled", h.getEnabled)
	r.Put("/api/enabled", h.setEnabled)

	// Monitors
	r.Get("/api/monitors", h.getMonitors)
	r.Get("/api/monitors/{name}", h.getMonitor)
	r.Get("/api/monitors/{name}/profile", h.getMonitorProfile)
	r.Put("/api/monitors/{name}/profile", h.setMonitorProfile)
	r.Post("/api/monitors/{name}/hdr", h.enableHdr)
	r.Delete("/api/monitors/{name}/hdr", h.disableHdr)
	r.Put("/api/monitors/{name}/hdr/metadata", h.setHdrMetadata)
	r.Post("/api/monitors/{name}/calibration", h.applyCalibration)

	// Profiles
	r.Get("/api/profiles", h.getProfiles)
	r.Get("/api/profiles/display", h.getDisplayProfiles)
	r.Get("/api/profiles/{name}/path", h.getProfilePath)
	r.Post("/api/profiles", h.installProfile)
	r.Delete("/api/profiles/{name}", h.removeProfile)

	// HDR
	r.Get("/api/hdr", h.getHdrStates)

	// OCIO
	r.Get("/api/ocio", h.getOcio)
	r.Put("/api/ocio", h.setOcio)
	r.Delete("/api/ocio", h.unloadOcio)
	r.Get("/api/ocio/colorspaces", h.getOcioColorSpaces)
	r.Get("/api/ocio/displays", h.getOcioDisplays)
	r.Get("/api/ocio/presets", h.getOcioPresets)
	r.Get("/api/ocio/discover", h.discoverOcio)

	// Workflows
	r.Get("/api/workflows", h.getWorkflows)
	r.Get("/api/workflows/{name}", h.getWorkflow)

	// Calibration
	r.Get("/api/patterns/{name}.png", h.getPattern)
	r.Post("/api/calibration/measure", h.measurePatch)

	// SSE
	r.Get("/api/subscribe", h.sseEvents)

	return r
}

// corsMiddleware adds permissive CORS headers for local network access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
