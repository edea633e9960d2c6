package engine

import (
	"strings"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// walk follows idx from root and returns the named task.
func walk(root *models.Task, idx models.Index) (*models.Task, error) {
	cur := root
	for _, pos := range idx {
		if pos < 0 || pos >= len(cur.Children) {
			return nil, models.ErrIndexOutOfRange(idx)
		}
		cur = cur.Children[pos]
	}
	return cur, nil
}

// walkChain follows idx from root and returns every task visited, root
// first and the named task last, so callers can inspect or mutate
// ancestors (e.g. clearing a stale "completed" flag).
func walkChain(root *models.Task, idx models.Index) ([]*models.Task, error) {
	chain := make([]*models.Task, 0, len(idx)+1)
	chain = append(chain, root)
	cur := root
	for _, pos := range idx {
		if pos < 0 || pos >= len(cur.Children) {
			return nil, models.ErrIndexOutOfRange(idx)
		}
		cur = cur.Children[pos]
		chain = append(chain, cur)
	}
	return chain, nil
}

// AddTaskResult is the inner payload of an add_task response.
type AddTaskResult struct {
	Task  *models.Task  `json:"task"`
	Index models.Index  `json:"index"`
}

// addTask appends a new task under parentIdx, with the given explicit
// level and optional notes. Any ancestor of parentIdx that was previously
// marked completed has that flag cleared: adding fresh work under a
// "done" branch means the branch is no longer fully done (spec.md §4.3).
func addTask(p *models.Plan, parentIdx models.Index, description string, level int, notes string) (AddTaskResult, error) {
	if strings.TrimSpace(description) == "" {
		return AddTaskResult{}, models.ErrInvalidInput("description must not be empty")
	}
	if _, err := p.Levels.At(level); err != nil {
		return AddTaskResult{}, err
	}
	chain, err := walkChain(p.Root, parentIdx)
	if err != nil {
		return AddTaskResult{}, err
	}

	parent := chain[len(chain)-1]
	child := models.NewTask(description)
	lvl := level
	child.Level = &lvl
	child.Notes = notes
	parent.Children = append(parent.Children, child)
	newIndex := parentIdx.Child(len(parent.Children) - 1)

	for _, ancestor := range chain {
		ancestor.Completed = false
	}

	p.Record("add_task", newIndex.String()+": "+description)
	return AddTaskResult{Task: child, Index: newIndex}, nil
}

// RemoveResult is the inner payload of a remove_task response: the removed
// task on success, or a reason string on a validated failure.
type RemoveResult struct {
	Task   *models.Task `json:"task,omitempty"`
	Reason string       `json:"reason,omitempty"`
}

// removeTask deletes the task named by idx from its parent's children,
// clears any lease entries under that subtree, and renumbers any sibling
// (and lease/cursor references into it) that shifted left as a result,
// preserving the "positions are dense from zero" invariant (spec.md §3).
func removeTask(p *models.Plan, idx models.Index) (RemoveResult, error) {
	if idx.Empty() {
		return RemoveResult{Reason: "cannot remove the root task"}, nil
	}
	parentIdx := idx[:len(idx)-1]
	pos := idx[len(idx)-1]

	parent, err := walk(p.Root, parentIdx)
	if err != nil {
		return RemoveResult{Reason: "parent index is out of range"}, nil
	}
	if pos < 0 || pos >= len(parent.Children) {
		return RemoveResult{Reason: "index is out of range"}, nil
	}

	removed := parent.Children[pos]
	parent.Children = append(parent.Children[:pos], parent.Children[pos+1:]...)

	renumbered := make(map[string]uint8, len(p.Leases))
	for key, tok := range p.Leases {
		leaseIdx, err := models.ParseIndex(key)
		if err != nil {
			renumbered[key] = tok
			continue
		}
		adjusted, dropped := adjustIndex(leaseIdx, parentIdx, pos)
		if dropped {
			continue
		}
		renumbered[adjusted.String()] = tok
	}
	p.Leases = renumbered

	if adjusted, dropped := adjustIndex(p.Cursor, parentIdx, pos); dropped {
		p.Cursor = parentIdx.Clone()
	} else {
		p.Cursor = adjusted
	}

	p.Record("remove_task", idx.String()+": "+removed.Description)
	return RemoveResult{Task: removed}, nil
}

// adjustIndex renumbers idx after the sibling at position pos under
// removedParent was deleted. dropped is true when idx named the removed
// task itself or something inside its subtree.
func adjustIndex(idx, removedParent models.Index, pos int) (adjusted models.Index, dropped bool) {
	if !removedParent.HasPrefix(idx) || len(idx) <= len(removedParent) {
		return idx, false
	}
	depth := len(removedParent)
	switch {
	case idx[depth] == pos:
		return nil, true
	case idx[depth] > pos:
		out := idx.Clone()
		out[depth]--
		return out, false
	default:
		return idx, false
	}
}

func setNotes(p *models.Plan, idx models.Index, notes string) (bool, string) {
	target, err := walk(p.Root, idx)
	if err != nil {
		return false, "index is out of range"
	}
	target.Notes = notes
	p.Record("set_task_notes", idx.String())
	return true, ""
}

func deleteNotes(p *models.Plan, idx models.Index) (bool, string) {
	target, err := walk(p.Root, idx)
	if err != nil {
		return false, "index is out of range"
	}
	target.Notes = ""
	p.Record("delete_task_notes", idx.String())
	return true, ""
}

func getNotes(p *models.Plan, idx models.Index) (*string, error) {
	target, err := walk(p.Root, idx)
	if err != nil {
		return nil, err
	}
	if target.Notes == "" {
		return nil, nil
	}
	notes := target.Notes
	return &notes, nil
}
