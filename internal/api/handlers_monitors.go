package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chromad/chromad/internal/models"
)

func (h *Handlers) getMonitors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"monitors": h.svc.Monitors()})
}

func (h *Handlers) getMonitor(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	m := h.svc.GetMonitor(name)
	if m == nil {
		writeError(w, models.ErrMonitorNotFound(name))
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handlers) getMonitorProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if h.svc.GetMonitor(name) == nil {
		writeError(w, models.ErrMonitorNotFound(name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"profile": h.svc.GetMonitorProfile(name)})
}

func (h *Handlers) setMonitorProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var req struct {
		Profile string `json:"profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrBadRequest("invalid JSON: "+err.Error()))
		return
	}
	if !h.svc.SetMonitorProfile(name, req.Profile) {
		writeError(w, models.ErrMonitorNotFound(name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"monitor": name, "profile": req.Profile})
}

func (h *Handlers) getHdrStates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"supported": h.svc.IsHdrSupported(),
		"monitors":  h.svc.HdrStates(),
	})
}

func (h *Handlers) enableHdr(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !h.svc.EnableHdr(name) {
		writeError(w, models.ErrHdrNotSupported)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"monitor": name, "hdr": true})
}

func (h *Handlers) disableHdr(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !h.svc.DisableHdr(name) {
		writeError(w, models.ErrHdrNotSupported)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"monitor": name, "hdr": false})
}

func (h *Handlers) setHdrMetadata(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var md models.HdrMetadata
	if err := json.NewDecoder(r.Body).Decode(&md); err != nil {
		writeError(w, models.ErrBadRequest("invalid JSON: "+err.Error()))
		return
	}
	if err := h.svc.SetHdrMetadata(name, md); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"monitor": name})
}

func (h *Handlers) applyCalibration(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var req struct {
		Calibration models.CalibrationData `json:"calibration"`
		I2CDevice   string                 `json:"i2c_device,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrBadRequest("invalid JSON: "+err.Error()))
		return
	}
	if !h.svc.ApplyCalibration(name, req.Calibration, req.I2CDevice) {
		writeError(w, models.ErrMonitorNotFound(name))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"monitor": name, "calibrated": req.Calibration.Date})
}
