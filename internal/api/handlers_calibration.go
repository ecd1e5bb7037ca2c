package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chromad/chromad/internal/models"
	"github.com/chromad/chromad/internal/patterns"
)

// getPattern renders a calibration test pattern as PNG. Optional width and
// height query parameters override the 1920x1080 default.
func (h *Handlers) getPattern(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, ok := patterns.FromName(name)
	if !ok {
		writeError(w, models.ErrNotFound("unknown pattern: "+name))
		return
	}

	width := queryInt(r, "width", 1920)
	height := queryInt(r, "height", 1080)
	if width < 16 || width > 8192 || height < 16 || height > 8192 {
		writeError(w, models.ErrBadRequest("pattern size out of range"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := patterns.EncodePNG(w, p, width, height); err != nil {
		// Headers are already out; nothing more to do.
		return
	}
}

func (h *Handlers) measurePatch(w http.ResponseWriter, r *http.Request) {
	xyz, err := h.svc.MeasurePatch(r.URL.Query().Get("port"))
	if err != nil {
		writeError(w, models.ErrIO(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, xyz)
}

func queryInt(r *http.Request, name string, def int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
