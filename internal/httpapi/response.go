package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// apiResponse is the wire envelope every handler writes: a boolean success
// flag plus either a data payload or an error message, matching the
// original server's ApiResponse<T> (success/data/error, never both data
// and error set).
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode http response failed", "error", err)
	}
}

// writeSuccess writes a 200 envelope wrapping data.
func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: data})
}

// writeOutcome writes a successful envelope, but maps the status to 400
// when the wrapped business outcome itself did not succeed — e.g.
// complete_task's inner false on a lease mismatch, or change_level's
// {ok:false, reason}. The engine call did not error; the outcome is still
// business data, not a transport failure, so Success stays true and the
// body is unchanged. Only the status code reflects the outcome (spec.md
// §7: "Completion that fails... is NOT an error").
func writeOutcome(w http.ResponseWriter, ok bool, data any) {
	status := http.StatusOK
	if !ok {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, apiResponse{Success: true, Data: data})
}

// writeError maps an engine error to a transport-appropriate HTTP status
// per spec.md §7's table (404 PlanNotFound, 400 for input/level/index/
// lease/capacity problems, 500 for everything else) and writes the
// failure envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()

	if e, ok := err.(*models.Error); ok {
		msg = e.Message
		switch e.Kind {
		case models.KindPlanNotFound:
			status = http.StatusNotFound
		case models.KindIndexOutOfRange, models.KindLevelOutOfRange,
			models.KindLeaseExhausted, models.KindCapacityExhausted,
			models.KindInvalidInput:
			status = http.StatusBadRequest
		}
	}

	writeJSON(w, status, apiResponse{Success: false, Error: msg})
}
