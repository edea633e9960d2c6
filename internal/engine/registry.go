// Package engine is the core of scatterbrain: a registry of independent
// plans, each guarded by its own mutex, plus the tree, lease, cursor, and
// distillation logic that implements spec.md's §4 component design and §6
// operation surface. Frontends (HTTP, MCP, CLI) never touch a *models.Plan
// directly; they call through the Engine facade in engine.go.
package engine

import (
	"log/slog"
	"runtime/debug"
	"sort"
	"sync"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// maxPlans mirrors PlanId's 8-bit range: the registry never holds more than
// 256 live plans (spec.md §4.1).
const maxPlans = 256

type planEntry struct {
	mu   sync.Mutex
	plan *models.Plan
}

// Registry owns every live plan. A single registry mutex guards the id →
// entry map itself; each entry carries its own mutex guarding that plan's
// state. WithPlan releases the registry lock before taking a plan lock;
// Delete takes the plan lock while still holding the registry lock. No path
// takes the registry lock while holding a plan lock, so the two locks can
// never deadlock against each other (spec.md §4.1, "lock ordering").
type Registry struct {
	mu    sync.Mutex
	plans map[models.PlanId]*planEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{plans: make(map[models.PlanId]*planEntry)}
}

// Create allocates the lowest free PlanId, builds a fresh plan with the
// given prompt/notes/catalog, and inserts it. It returns CapacityExhausted
// once all 256 ids are in use.
func (r *Registry) Create(prompt, notes string, levels models.Catalog) (models.PlanId, error) {
	if prompt == "" {
		return 0, models.ErrInvalidInput("prompt must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.plans) >= maxPlans {
		return 0, models.ErrCapacityExhausted()
	}
	var id models.PlanId
	for candidate := 0; candidate < maxPlans; candidate++ {
		if _, taken := r.plans[models.PlanId(candidate)]; !taken {
			id = models.PlanId(candidate)
			break
		}
	}
	r.plans[id] = &planEntry{plan: models.NewPlan(id, prompt, notes, levels)}
	return id, nil
}

// Delete removes a plan outright. It takes the registry lock and then the
// entry's own lock (in that order) so a concurrent WithPlan call on the
// same id cannot observe a half-deleted entry.
func (r *Registry) Delete(id models.PlanId) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.plans[id]
	if !ok {
		return models.ErrPlanNotFound(id)
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	delete(r.plans, id)
	return nil
}

// List returns every live PlanId, sorted ascending.
func (r *Registry) List() []models.PlanId {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.PlanId, 0, len(r.plans))
	for id := range r.plans {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Registry) lookup(id models.PlanId) (*planEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.plans[id]
	return entry, ok
}

// WithPlan looks up id, takes its entry lock for the duration of fn, and
// returns whatever fn returns. A panic inside fn is recovered, logged, and
// turned into an Internal error: the entry's mutex is released by the
// deferred Unlock regardless, so the plan's state (whatever fn mutated
// before panicking) remains reachable by the next caller rather than
// poisoning the plan forever — Go's defer/recover gives this for free where
// the Rust original needed an explicit PoisonError recovery path.
func WithPlan[T any](r *Registry, id models.PlanId, fn func(*models.Plan) (T, error)) (result T, err error) {
	entry, ok := r.lookup(id)
	if !ok {
		return result, models.ErrPlanNotFound(id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("recovered panic in plan critical section",
				"plan_id", id, "panic", rec, "stack", string(debug.Stack()))
			err = models.ErrInternal("recovered from an internal error: %v", rec)
		}
	}()

	return fn(entry.plan)
}
