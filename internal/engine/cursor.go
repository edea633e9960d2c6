package engine

import "github.com/scatterbrain-dev/scatterbrain/models"

// CurrentInfo describes the task at a plan's cursor together with the
// ancestor descriptions between the root and it (spec.md §4.4).
type CurrentInfo struct {
	Index   models.Index
	Task    *models.Task
	Level   int
	History []string
}

// moveTo relocates the cursor to idx. An empty idx returns the cursor to
// the root. An idx that does not exist leaves the cursor untouched and
// reports no target (Option<description>, spec.md §6): this is a normal,
// non-error outcome, not an engine Error.
func moveTo(p *models.Plan, idx models.Index) (*string, error) {
	if idx.Empty() {
		p.Cursor = models.Index{}
		p.Record("move_to", "root")
		desc := "root"
		return &desc, nil
	}
	target, err := walk(p.Root, idx)
	if err != nil {
		return nil, nil
	}
	p.Cursor = idx.Clone()
	p.Record("move_to", idx.String())
	desc := target.Description
	return &desc, nil
}

// current returns the task at the plan's cursor, or ok=false if the
// cursor is at the root (spec.md §4.4: "if cursor is empty, returns
// none").
func current(p *models.Plan) (CurrentInfo, bool) {
	if p.Cursor.Empty() {
		return CurrentInfo{}, false
	}
	chain, err := walkChain(p.Root, p.Cursor)
	if err != nil {
		// The cursor referred to a task that a concurrent remove_task
		// deleted out from under it; treat it like an empty cursor.
		return CurrentInfo{}, false
	}
	target := chain[len(chain)-1]
	level, _ := models.EffectiveLevel(target, p.Cursor)

	history := make([]string, 0, len(chain)-2)
	for _, ancestor := range chain[1 : len(chain)-1] {
		history = append(history, ancestor.Description)
	}

	return CurrentInfo{Index: p.Cursor.Clone(), Task: target, Level: level, History: history}, true
}

// changeLevelOutcome is the inner payload of a change_level response.
type changeLevelOutcome struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// changeLevel sets idx's explicit level override. An out-of-range idx or
// level_index is reported as a failed outcome rather than an engine Error
// (spec.md §6: change_level's result is Result<unit, reason_string>).
func changeLevel(p *models.Plan, idx models.Index, level int) changeLevelOutcome {
	if _, err := p.Levels.At(level); err != nil {
		return changeLevelOutcome{Reason: "level is out of range for this plan's catalog"}
	}
	target, err := walk(p.Root, idx)
	if err != nil {
		return changeLevelOutcome{Reason: "index is out of range"}
	}
	lvl := level
	target.Level = &lvl
	p.Record("change_level", idx.String())
	return changeLevelOutcome{OK: true}
}
