package engine

import "github.com/scatterbrain-dev/scatterbrain/models"

// LeaseResult is the inner payload of a generate_lease response.
type LeaseResult struct {
	Token       uint8    `json:"token"`
	Suggestions []string `json:"suggested_followups"`
}

// generateLease validates that idx names a real, incomplete task and
// assigns it a fresh single-use token. Only one token is ever live per
// task: regenerating replaces whatever token that task held before,
// since the lease table is keyed by index (spec.md §4.5). The returned
// suggestions are the task's effective level's own verification
// questions — the caller is expected to check them before presenting the
// lease back to complete_task.
func generateLease(p *models.Plan, idx models.Index) (token uint8, suggestions []string, err error) {
	target, err := walk(p.Root, idx)
	if err != nil {
		return 0, nil, err
	}
	if target.Completed {
		return 0, nil, models.ErrInvalidInput("task %q is already completed", idx.String())
	}

	used := make(map[uint8]bool, len(p.Leases))
	key := idx.String()
	for k, tok := range p.Leases {
		if k == key {
			continue
		}
		used[tok] = true
	}

	found := false
	for candidate := 0; candidate < 256; candidate++ {
		if !used[uint8(candidate)] {
			token = uint8(candidate)
			found = true
			break
		}
	}
	if !found {
		return 0, nil, models.ErrLeaseExhausted()
	}

	p.Leases[key] = token
	p.Record("generate_lease", idx.String())

	if level, ok := models.EffectiveLevel(target, idx); ok {
		if lvl, lvlErr := p.Levels.At(level); lvlErr == nil {
			suggestions = lvl.Questions
		}
	}
	return token, suggestions, nil
}

// clearLeaseSubtree drops every lease entry at or below idx, used when a
// task (and therefore its whole subtree) is completed or removed.
func clearLeaseSubtree(p *models.Plan, idx models.Index) {
	for key := range p.Leases {
		leaseIdx, err := models.ParseIndex(key)
		if err != nil {
			continue
		}
		if idx.HasPrefix(leaseIdx) {
			delete(p.Leases, key)
		}
	}
}
