package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chromad/chromad/internal/models"
)

func (h *Handlers) getSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"info":     h.svc.Info(),
		"enabled":  h.svc.IsEnabled(),
		"monitors": h.svc.Monitors(),
		"hdr":      h.svc.HdrStates(),
		"ocio":     h.svc.GetOcioConfig(),
	})
}

func (h *Handlers) getInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Info())
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	ok := h.svc.Refresh()
	writeJSON(w, http.StatusOK, map[string]bool{"refreshed": ok})
}

func (h *Handlers) getEnabled(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": h.svc.IsEnabled()})
}

func (h *Handlers) setEnabled(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrBadRequest("invalid JSON: "+err.Error()))
		return
	}
	ok := h.svc.SetEnabled(req.Enabled)
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": req.Enabled, "saved": ok})
}

func (h *Handlers) getWorkflows(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"workflows": h.svc.ListWorkflows()})
}

func (h *Handlers) getWorkflow(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	wf, ok := h.svc.GetWorkflowConfig(name)
	if !ok {
		writeError(w, models.ErrNotFound("unknown workflow: "+name))
		return
	}
	writeJSON(w, http.StatusOK, wf)
}
