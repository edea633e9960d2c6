package engine

import "github.com/scatterbrain-dev/scatterbrain/models"

// opKind names which operation just ran, used to pick an advisory
// follow-up suggestion list. These are hints only: nothing enforces that
// a caller actually takes one, and picking the "wrong" one is never an
// error (spec.md §4.7, "suggested_followups").
type opKind string

const (
	opCreatePlan    opKind = "create_plan"
	opAddTask       opKind = "add_task"
	opMoveTo        opKind = "move_to"
	opChangeLevel   opKind = "change_level"
	opComplete      opKind = "complete_task"
	opCompleteRetry opKind = "complete_task_retry"
	opUncomplete    opKind = "uncomplete_task"
	opRemoveTask    opKind = "remove_task"
	opLease         opKind = "generate_lease"
	opNotes         opKind = "task_notes"
	opDistill       opKind = "distilled_context"
)

// followups returns the suggestion list for an operation's outcome. idx
// may be nil when the operation has no natural target to reference.
func followups(kind opKind, idx models.Index) []string {
	ref := ""
	if idx != nil {
		ref = idx.String()
	}
	switch kind {
	case opCreatePlan:
		return []string{"add_task to start building out the plan", "current to confirm the cursor is at the root"}
	case opAddTask:
		return []string{"move_to(" + ref + ") to focus the new task", "add_task under it to break it down further"}
	case opMoveTo:
		return []string{"current to see the task you just moved to", "distilled_context to re-orient on the whole plan"}
	case opChangeLevel:
		return []string{"current to see the task's updated effective level"}
	case opComplete:
		return []string{"move_to the parent to review its remaining children", "current to see what's next"}
	case opCompleteRetry:
		return []string{"generate_lease to obtain a fresh token", "retry complete_task with force=true if you're certain"}
	case opUncomplete:
		return []string{"current to confirm the task is open again"}
	case opRemoveTask:
		return []string{"current to see where the cursor landed", "distilled_context to confirm the tree shape"}
	case opLease:
		return []string{"complete_task with the returned lease token before it is regenerated"}
	case opNotes:
		return []string{"current to see the task the notes are attached to"}
	case opDistill:
		return []string{"move_to a task to focus it", "add_task to extend the plan"}
	default:
		return []string{"current to confirm your position", "distilled_context to re-orient"}
	}
}
