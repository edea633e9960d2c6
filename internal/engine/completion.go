package engine

import (
	"strings"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// completeTask applies spec.md §4.6's completion rules:
//
//  1. The task must exist (IndexOutOfRange otherwise — an engine Error,
//     unlike the other tree ops, since completion is the one mutation a
//     caller can't sensibly retry against a guessed index).
//  2. Already-completed is a no-op success (succeeded=false, no mutation).
//  3. Unless force is set, a non-empty summary is required.
//  4. Unless force is set, if the task currently holds a lease, the
//     caller's lease must match it; the lease is consumed on success.
//     force always clears any existing lease, matching or not.
//  5. On success the task (and every descendant) is marked completed.
//     Descendant summaries are left untouched — only the target task's
//     summary is set from the caller-supplied text.
func completeTask(p *models.Plan, idx models.Index, lease *uint8, force bool, summary *string) (succeeded bool, reminder string, err error) {
	target, err := walk(p.Root, idx)
	if err != nil {
		return false, "", err
	}
	if target.Completed {
		return false, "task is already completed", nil
	}

	hasSummary := summary != nil && strings.TrimSpace(*summary) != ""
	if !force && !hasSummary {
		return false, "a non-empty summary is required to complete this task (pass force=true to skip)", nil
	}

	key := idx.String()
	storedToken, hasLease := p.Leases[key]
	if !force && hasLease {
		if lease == nil || *lease != storedToken {
			return false, "lease mismatch: generate_lease and pass the fresh token, or force the completion", nil
		}
	}

	target.Completed = true
	if summary != nil {
		target.Summary = *summary
	}
	cascadeComplete(target)
	clearLeaseSubtree(p, idx)

	p.Record("complete_task", idx.String())
	return true, "", nil
}

func cascadeComplete(t *models.Task) {
	for _, c := range t.Children {
		c.Completed = true
		cascadeComplete(c)
	}
}

// uncompleteOutcome is the inner payload of an uncomplete_task response.
type uncompleteOutcome struct {
	Succeeded bool   `json:"succeeded"`
	Reason    string `json:"reason,omitempty"`
}

// uncompleteTask clears a task's completed flag and summary. It does not
// cascade: descendants keep whatever completion state they already had.
// An out-of-range idx is a failed outcome, not an engine Error (spec.md
// §6: Result<bool, reason>).
func uncompleteTask(p *models.Plan, idx models.Index) uncompleteOutcome {
	target, err := walk(p.Root, idx)
	if err != nil {
		return uncompleteOutcome{Reason: "index is out of range"}
	}
	if !target.Completed {
		return uncompleteOutcome{Succeeded: false}
	}
	target.Completed = false
	target.Summary = ""
	p.Record("uncomplete_task", idx.String())
	return uncompleteOutcome{Succeeded: true}
}
