package httpapi

import (
	"fmt"
	"net/http"
)

// handleEvents streams "event: update\ndata: change\n\n" records for the
// requested plan id, filtering the engine's change bus down to that one
// plan. A lagged notification (the bus dropped events this subscriber
// couldn't keep up with) is emitted identically to a normal update: the
// client's only correct response to either is "re-fetch full state", so
// there is nothing to distinguish on the wire (src/api/server.rs's
// EventStream treats Lagged the same way).
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	_, events, cancel := s.eng.Subscribe()
	defer cancel()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, open := <-events:
			if !open {
				return
			}
			if ev.PlanId != id {
				continue
			}
			if _, err := fmt.Fprint(w, "event: update\ndata: change\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
