package engine

import "github.com/scatterbrain-dev/scatterbrain/models"

// assemble builds the DistilledContext every engine response carries: the
// full tree pre-order (rooted at the plan's top-level tasks — the
// synthetic root itself is never addressable, so it never appears as a
// node), the current task summary, the level catalog, and the full
// transition history (spec.md §4.7).
func assemble(p *models.Plan) models.DistilledContext {
	nodes := make([]*models.TreeNode, 0, len(p.Root.Children))
	for i, child := range p.Root.Children {
		nodes = append(nodes, buildNode(child, models.Index{i}, p.Cursor))
	}

	var cur *models.CurrentSummary
	if info, ok := current(p); ok {
		cur = &models.CurrentSummary{
			Index:       info.Index,
			Description: info.Task.Description,
			Completed:   info.Task.Completed,
		}
		if info.Task.Level != nil {
			lvl := *info.Task.Level
			cur.ExplicitLevel = &lvl
		}
	}

	levels := make([]models.LevelSummary, len(p.Levels))
	for i, l := range p.Levels {
		levels[i] = models.LevelSummary{Name: l.Name(), Focus: l.AbstractionFocus, Questions: l.Questions}
	}

	return models.DistilledContext{
		UsageSummary:      models.UsageSummaryText,
		TaskTree:          nodes,
		CurrentTask:       cur,
		Levels:            levels,
		TransitionHistory: append([]models.HistoryEntry{}, p.History...),
	}
}

func buildNode(t *models.Task, idx models.Index, cursor models.Index) *models.TreeNode {
	node := &models.TreeNode{
		Index:       idx.Clone(),
		Description: t.Description,
		Completed:   t.Completed,
		IsCurrent:   idx.Equal(cursor),
	}
	for i, c := range t.Children {
		node.Children = append(node.Children, buildNode(c, idx.Child(i), cursor))
	}
	return node
}
