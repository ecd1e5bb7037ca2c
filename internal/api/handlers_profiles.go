package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chromad/chromad/internal/models"
)

func (h *Handlers) getProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": h.svc.Profiles()})
}

func (h *Handlers) getDisplayProfiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": h.svc.ListDisplayProfiles()})
}

func (h *Handlers) getProfilePath(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	path := h.svc.GetProfilePath(name)
	if path == "" {
		writeError(w, models.ErrNotFound("unknown profile: "+name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name, "path": path})
}

func (h *Handlers) installProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrBadRequest("invalid JSON: "+err.Error()))
		return
	}
	if req.Path == "" {
		writeError(w, models.ErrBadRequest("path is required"))
		return
	}
	if !h.svc.InstallProfile(req.Path) {
		writeError(w, models.ErrProfile("install failed: "+req.Path))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"installed": req.Path})
}

func (h *Handlers) removeProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.svc.RemoveProfile(name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"removed": name})
}
