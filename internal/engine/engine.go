package engine

import (
	"log/slog"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// Engine is the public facade over a Registry and a ChangeBus. It is the
// only thing frontends (internal/httpapi, internal/mcpserver, the CLI's
// apiclient) depend on. Every mutating operation publishes to the change
// bus only after its registry-scoped critical section has returned,
// matching spec.md §5's "publish after commit, never while holding the
// plan lock" data-flow rule.
type Engine struct {
	registry *Registry
	bus      *ChangeBus
	log      *slog.Logger
}

// New builds an Engine around a fresh registry and change bus.
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{registry: NewRegistry(), bus: NewChangeBus(), log: log}
}

// CreatePlan allocates a new plan. Like delete_plan, and unlike the other
// mutating operations, create_plan is not wrapped in a PlanResponse: there is no prior state to
// distill against (spec.md §6).
func (e *Engine) CreatePlan(prompt, notes string) (models.PlanId, error) {
	id, err := e.registry.Create(prompt, notes, models.DefaultCatalog())
	if err != nil {
		return 0, err
	}
	e.bus.Publish(id)
	e.log.Info("plan created", "plan_id", id)
	return id, nil
}

// DeletePlan removes a plan outright. Not wrapped in a PlanResponse.
func (e *Engine) DeletePlan(id models.PlanId) error {
	if err := e.registry.Delete(id); err != nil {
		return err
	}
	e.bus.Publish(id)
	e.log.Info("plan deleted", "plan_id", id)
	return nil
}

// ListPlans returns every live plan id, sorted. Not wrapped in a
// PlanResponse.
func (e *Engine) ListPlans() []models.PlanId {
	return e.registry.List()
}

// GetPlan returns a full snapshot of a plan's state.
func (e *Engine) GetPlan(id models.PlanId) (models.PlanResponse[*models.Plan], error) {
	return WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[*models.Plan], error) {
		return models.NewPlanResponse(p.Clone(), assemble(p), followups(opDistill, nil), ""), nil
	})
}

// Current returns the task at the plan's cursor, or a nil result if the
// cursor is at the root.
func (e *Engine) Current(id models.PlanId) (models.PlanResponse[*models.CurrentSummary], error) {
	return WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[*models.CurrentSummary], error) {
		ctx := assemble(p)
		return models.NewPlanResponse(ctx.CurrentTask, ctx, followups(opDistill, nil), ""), nil
	})
}

// DistilledContext returns a plan's distilled context on its own, with no
// other inner result (spec.md §6: "unit, context is in the envelope").
func (e *Engine) DistilledContext(id models.PlanId) (models.PlanResponse[struct{}], error) {
	return WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[struct{}], error) {
		return models.NewPlanResponse(struct{}{}, assemble(p), followups(opDistill, nil), ""), nil
	})
}

// AddTask appends a new task under parentIdx and returns it together with
// its assigned index.
func (e *Engine) AddTask(id models.PlanId, parentIdx models.Index, description string, level int, notes string) (models.PlanResponse[AddTaskResult], error) {
	resp, err := WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[AddTaskResult], error) {
		result, err := addTask(p, parentIdx, description, level, notes)
		if err != nil {
			return models.PlanResponse[AddTaskResult]{}, err
		}
		return models.NewPlanResponse(result, assemble(p), followups(opAddTask, result.Index), ""), nil
	})
	if err == nil {
		e.bus.Publish(id)
	}
	return resp, err
}

// MoveTo relocates the plan's cursor. A target that does not exist leaves
// the cursor untouched and returns a nil description — not an error.
func (e *Engine) MoveTo(id models.PlanId, idx models.Index) (models.PlanResponse[*string], error) {
	resp, err := WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[*string], error) {
		desc, err := moveTo(p, idx)
		if err != nil {
			return models.PlanResponse[*string]{}, err
		}
		return models.NewPlanResponse(desc, assemble(p), followups(opMoveTo, idx), ""), nil
	})
	if err == nil {
		e.bus.Publish(id)
	}
	return resp, err
}

// ChangeLevel sets idx's explicit abstraction-level override.
func (e *Engine) ChangeLevel(id models.PlanId, idx models.Index, level int) (models.PlanResponse[changeLevelOutcome], error) {
	resp, err := WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[changeLevelOutcome], error) {
		outcome := changeLevel(p, idx, level)
		return models.NewPlanResponse(outcome, assemble(p), followups(opChangeLevel, idx), ""), nil
	})
	if err == nil {
		e.bus.Publish(id)
	}
	return resp, err
}

// CompleteTask marks a task (and its descendants) completed, subject to
// the force/summary/lease rules in spec.md §4.6.
func (e *Engine) CompleteTask(id models.PlanId, idx models.Index, lease *uint8, force bool, summary *string) (models.PlanResponse[bool], error) {
	resp, err := WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[bool], error) {
		succeeded, reminder, err := completeTask(p, idx, lease, force, summary)
		if err != nil {
			return models.PlanResponse[bool]{}, err
		}
		kind := opComplete
		if !succeeded && reminder != "" {
			kind = opCompleteRetry
		}
		return models.NewPlanResponse(succeeded, assemble(p), followups(kind, idx), reminder), nil
	})
	if err == nil {
		e.bus.Publish(id)
	}
	return resp, err
}

// UncompleteTask clears a task's completed flag without touching its
// descendants.
func (e *Engine) UncompleteTask(id models.PlanId, idx models.Index) (models.PlanResponse[uncompleteOutcome], error) {
	resp, err := WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[uncompleteOutcome], error) {
		outcome := uncompleteTask(p, idx)
		return models.NewPlanResponse(outcome, assemble(p), followups(opUncomplete, idx), ""), nil
	})
	if err == nil {
		e.bus.Publish(id)
	}
	return resp, err
}

// RemoveTask deletes a task from its parent's children, cascading lease
// and cursor renumbering as needed.
func (e *Engine) RemoveTask(id models.PlanId, idx models.Index) (models.PlanResponse[RemoveResult], error) {
	resp, err := WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[RemoveResult], error) {
		result, err := removeTask(p, idx)
		if err != nil {
			return models.PlanResponse[RemoveResult]{}, err
		}
		return models.NewPlanResponse(result, assemble(p), followups(opRemoveTask, idx), ""), nil
	})
	if err == nil {
		e.bus.Publish(id)
	}
	return resp, err
}

// GenerateLease mints a fresh single-use completion token for idx.
func (e *Engine) GenerateLease(id models.PlanId, idx models.Index) (models.PlanResponse[LeaseResult], error) {
	resp, err := WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[LeaseResult], error) {
		token, verification, err := generateLease(p, idx)
		if err != nil {
			return models.PlanResponse[LeaseResult]{}, err
		}
		return models.NewPlanResponse(LeaseResult{Token: token, Suggestions: verification}, assemble(p), followups(opLease, idx), ""), nil
	})
	if err == nil {
		e.bus.Publish(id)
	}
	return resp, err
}

// GetTaskNotes returns a task's notes, or nil if it has none. Unlike
// set/delete, get_task_notes is not wrapped in a PlanResponse (spec.md §6).
func (e *Engine) GetTaskNotes(id models.PlanId, idx models.Index) (*string, error) {
	return WithPlan(e.registry, id, func(p *models.Plan) (*string, error) {
		return getNotes(p, idx)
	})
}

type notesOutcome struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// SetTaskNotes replaces a task's free-text notes.
func (e *Engine) SetTaskNotes(id models.PlanId, idx models.Index, notes string) (models.PlanResponse[notesOutcome], error) {
	resp, err := WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[notesOutcome], error) {
		ok, reason := setNotes(p, idx, notes)
		return models.NewPlanResponse(notesOutcome{OK: ok, Reason: reason}, assemble(p), followups(opNotes, idx), ""), nil
	})
	if err == nil {
		e.bus.Publish(id)
	}
	return resp, err
}

// DeleteTaskNotes clears a task's notes.
func (e *Engine) DeleteTaskNotes(id models.PlanId, idx models.Index) (models.PlanResponse[notesOutcome], error) {
	resp, err := WithPlan(e.registry, id, func(p *models.Plan) (models.PlanResponse[notesOutcome], error) {
		ok, reason := deleteNotes(p, idx)
		return models.NewPlanResponse(notesOutcome{OK: ok, Reason: reason}, assemble(p), followups(opNotes, idx), ""), nil
	})
	if err == nil {
		e.bus.Publish(id)
	}
	return resp, err
}

// Subscribe registers a change-bus listener. The returned cancel func must
// be called (typically deferred) once the caller stops reading events.
func (e *Engine) Subscribe() (id string, events <-chan Event, cancel func()) {
	return e.bus.Subscribe()
}
