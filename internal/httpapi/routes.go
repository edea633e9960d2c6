package httpapi

import "net/http"

// routes registers every spec.md §6 operation onto its HTTP route, mirroring
// src/api/server.rs's route table on a Go 1.22 ServeMux with method
// patterns and {name} path values, the way internal/server/server.go does
// for TaskWing's own API.
func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/plans", s.handleListPlans)
	mux.HandleFunc("POST /api/plans", s.handleCreatePlan)
	mux.HandleFunc("DELETE /api/plans/{id}", s.handleDeletePlan)

	mux.HandleFunc("GET /api/plans/{id}/plan", s.handleGetPlan)
	mux.HandleFunc("GET /api/plans/{id}/current", s.handleCurrent)
	mux.HandleFunc("GET /api/plans/{id}/distilled", s.handleDistilledContext)

	mux.HandleFunc("POST /api/plans/{id}/task", s.handleAddTask)
	mux.HandleFunc("POST /api/plans/{id}/move", s.handleMoveTo)
	mux.HandleFunc("POST /api/plans/{id}/task/level", s.handleChangeLevel)
	mux.HandleFunc("POST /api/plans/{id}/task/complete", s.handleCompleteTask)
	mux.HandleFunc("POST /api/plans/{id}/task/uncomplete", s.handleUncompleteTask)
	mux.HandleFunc("DELETE /api/plans/{id}/tasks/{index...}", s.handleRemoveTask)
	mux.HandleFunc("POST /api/plans/{id}/task/lease", s.handleGenerateLease)

	mux.HandleFunc("GET /api/plans/{id}/task/notes", s.handleGetTaskNotes)
	mux.HandleFunc("POST /api/plans/{id}/task/notes", s.handleSetTaskNotes)
	mux.HandleFunc("DELETE /api/plans/{id}/task/notes", s.handleDeleteTaskNotes)

	mux.HandleFunc("GET /ui/events/{id}", s.handleEvents)
}
