package httpapi

import (
	"net/http"
	"strings"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// handleListPlans implements list_plans: GET /api/plans.
func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]any{"plans": s.eng.ListPlans()})
}

type createPlanRequest struct {
	Prompt string `json:"prompt"`
	Notes  string `json:"notes,omitempty"`
}

// handleCreatePlan implements create_plan: POST /api/plans. A missing or
// empty prompt is rejected here as InvalidInput rather than forwarded as
// an empty string, so the caller gets the same error whether they omitted
// the field entirely or sent "".
func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, models.ErrInvalidInput("prompt must not be empty"))
		return
	}

	id, err := s.eng.CreatePlan(req.Prompt, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]any{"id": id})
}

// handleDeletePlan implements delete_plan: DELETE /api/plans/{id}.
func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.eng.DeletePlan(id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]any{"deleted": true})
}

// handleGetPlan implements get_plan: GET /api/plans/{id}/plan.
func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.eng.GetPlan(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// handleCurrent implements current: GET /api/plans/{id}/current.
func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.eng.Current(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// handleDistilledContext implements distilled_context: GET
// /api/plans/{id}/distilled.
func (s *Server) handleDistilledContext(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := s.eng.DistilledContext(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

type addTaskRequest struct {
	ParentIndex string `json:"parent_index"`
	Description string `json:"description"`
	LevelIndex  int    `json:"level_index"`
	Notes       string `json:"notes,omitempty"`
}

// handleAddTask implements add_task: POST /api/plans/{id}/task. An empty
// parent_index names the root, matching ParseIndex's empty-string
// rejection being specific to wire addressing of existing tasks — add_task
// is the one place a caller legitimately means "under the root" with no
// index at all, so the empty string is accepted here rather than run
// through ParseIndex.
func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req addTaskRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var parentIdx models.Index
	if strings.TrimSpace(req.ParentIndex) != "" {
		parentIdx, err = parseIndexParam(req.ParentIndex)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	resp, err := s.eng.AddTask(id, parentIdx, req.Description, req.LevelIndex, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

type moveRequest struct {
	Index string `json:"index"`
}

// handleMoveTo implements move_to: POST /api/plans/{id}/move. A
// nonexistent index is not an error (spec.md §6): it comes back as a
// successful envelope whose inner result is nil, remapped to HTTP 400. A
// malformed index string is rejected as InvalidInput.
func (s *Server) handleMoveTo(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var idx models.Index
	if strings.TrimSpace(req.Index) != "" {
		idx, err = parseIndexParam(req.Index)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	resp, err := s.eng.MoveTo(id, idx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOutcome(w, resp.Result != nil, resp)
}

type changeLevelRequest struct {
	Index      string `json:"index"`
	LevelIndex int    `json:"level_index"`
}

// handleChangeLevel implements change_level: POST
// /api/plans/{id}/task/level.
func (s *Server) handleChangeLevel(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req changeLevelRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	idx, err := parseIndexParam(req.Index)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.eng.ChangeLevel(id, idx, req.LevelIndex)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOutcome(w, resp.Result.OK, resp)
}

type completeTaskRequest struct {
	Index   string  `json:"index"`
	Lease   *uint8  `json:"lease,omitempty"`
	Force   bool    `json:"force"`
	Summary *string `json:"summary,omitempty"`
}

// handleCompleteTask implements complete_task: POST
// /api/plans/{id}/task/complete. A lease mismatch, missing summary, or
// already-complete is a successful call with inner false, remapped to
// HTTP 400 — not a transport error (spec.md §7).
func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req completeTaskRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	idx, err := parseIndexParam(req.Index)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.eng.CompleteTask(id, idx, req.Lease, req.Force, req.Summary)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOutcome(w, resp.Result, resp)
}

type uncompleteRequest struct {
	Index string `json:"index"`
}

// handleUncompleteTask implements uncomplete_task: POST
// /api/plans/{id}/task/uncomplete.
func (s *Server) handleUncompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req uncompleteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	idx, err := parseIndexParam(req.Index)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.eng.UncompleteTask(id, idx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOutcome(w, resp.Result.Succeeded, resp)
}

// handleRemoveTask implements remove_task: DELETE
// /api/plans/{id}/tasks/{index...}. The wildcard segment captures every
// remaining path component; since Index's wire format is comma-separated
// but a URL path splits on '/', the route encodes an index as
// slash-separated positions and this handler rejoins them with commas
// before handing the string to ParseIndex.
func (s *Server) handleRemoveTask(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	raw := r.PathValue("index")
	idx, err := parseIndexParam(strings.ReplaceAll(raw, "/", ","))
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.eng.RemoveTask(id, idx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOutcome(w, resp.Result.Reason == "", resp)
}

type generateLeaseRequest struct {
	Index string `json:"index"`
}

// handleGenerateLease implements generate_lease: POST
// /api/plans/{id}/task/lease.
func (s *Server) handleGenerateLease(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req generateLeaseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	idx, err := parseIndexParam(req.Index)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.eng.GenerateLease(id, idx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// handleGetTaskNotes implements get_task_notes: GET
// /api/plans/{id}/task/notes?index=.... Not wrapped in a PlanResponse
// (spec.md §6), so this returns the raw optional string.
func (s *Server) handleGetTaskNotes(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	idx, err := parseIndexParam(r.URL.Query().Get("index"))
	if err != nil {
		writeError(w, err)
		return
	}

	notes, err := s.eng.GetTaskNotes(id, idx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]any{"notes": notes})
}

type setNotesRequest struct {
	Index string `json:"index"`
	Notes string `json:"notes"`
}

// handleSetTaskNotes implements set_task_notes: POST
// /api/plans/{id}/task/notes.
func (s *Server) handleSetTaskNotes(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req setNotesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	idx, err := parseIndexParam(req.Index)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.eng.SetTaskNotes(id, idx, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOutcome(w, resp.Result.OK, resp)
}

// handleDeleteTaskNotes implements delete_task_notes: DELETE
// /api/plans/{id}/task/notes?index=....
func (s *Server) handleDeleteTaskNotes(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlanID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	idx, err := parseIndexParam(r.URL.Query().Get("index"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.eng.DeleteTaskNotes(id, idx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOutcome(w, resp.Result.OK, resp)
}
