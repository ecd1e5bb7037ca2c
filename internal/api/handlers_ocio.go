package api

import (
	"encoding/json"
	"net/http"

	"github.com/chromad/chromad/internal/models"
)

func (h *Handlers) getOcio(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"config": h.svc.GetOcioConfig()})
}

func (h *Handlers) setOcio(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrBadRequest("invalid JSON: "+err.Error()))
		return
	}
	if !h.svc.SetOcioConfig(req.Path) {
		writeError(w, models.ErrConfigParse("cannot load OCIO config: "+req.Path))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"config": req.Path})
}

func (h *Handlers) unloadOcio(w http.ResponseWriter, r *http.Request) {
	h.svc.SetOcioConfig("")
	writeJSON(w, http.StatusOK, map[string]string{"config": ""})
}

func (h *Handlers) getOcioColorSpaces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"colorspaces": h.svc.ListOcioColorSpaces()})
}

func (h *Handlers) getOcioDisplays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"displays": h.svc.ListOcioDisplays()})
}

func (h *Handlers) getOcioPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"presets": h.svc.OcioPresets()})
}

func (h *Handlers) discoverOcio(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"configs": h.svc.DiscoverOcioConfigs()})
}
