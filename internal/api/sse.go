package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// sseEvents handles the SSE (Server-Sent Events) endpoint.
// Clients receive the current daemon info immediately, then stream change
// events as they happen.
func (h *Handlers) sseEvents(w http.ResponseWriter, r *http.Request) {
	// Verify the client supports streaming
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	id := uuid.New().String()
	ch := h.events.Subscribe(id)
	defer h.events.Unsubscribe(id)

	// Send current info immediately
	sendSSE(w, flusher, "info", h.svc.Info())

	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			sendSSE(w, flusher, string(ev.Kind), ev)
		case <-r.Context().Done():
			return
		}
	}
}

func sendSSE(w http.ResponseWriter, flusher http.Flusher, event string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	flusher.Flush()
}
