package clidisplay

import (
	"fmt"
	"strings"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// Tree renders a plan's task tree: one line per node, indented by depth,
// the cursor's node marked with an arrow, completed nodes checked off in
// the success color.
func Tree(nodes []*models.TreeNode) string {
	var b strings.Builder
	for _, n := range nodes {
		renderNode(&b, n, 0)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderNode(b *strings.Builder, n *models.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	marker := "○"
	line := fmt.Sprintf("%s %s [%s]", marker, n.Description, n.Index.String())
	if n.Completed {
		line = StyleCompleted.Render("✓ " + n.Description + " [" + n.Index.String() + "]")
	}
	if n.IsCurrent {
		line = StyleCursor.Render("→ " + n.Description + " [" + n.Index.String() + "]")
	}
	fmt.Fprintf(b, "%s%s\n", indent, line)
	for _, c := range n.Children {
		renderNode(b, c, depth+1)
	}
}

// Current renders a single cursor summary.
func Current(s *models.CurrentSummary) string {
	if s == nil {
		return StyleSubtle.Render("cursor is at the root")
	}
	status := "incomplete"
	if s.Completed {
		status = StyleCompleted.Render("completed")
	}
	level := ""
	if s.ExplicitLevel != nil {
		level = fmt.Sprintf(" (explicit level %d)", *s.ExplicitLevel)
	}
	return fmt.Sprintf("%s  [%s]  %s%s", StyleCursor.Render(s.Description), s.Index.String(), status, level)
}

// Levels renders a plan's level catalog, one line per level.
func Levels(levels []models.LevelSummary) string {
	var b strings.Builder
	b.WriteString(StyleSectionTag.Render("LEVELS") + "\n")
	for i, l := range levels {
		fmt.Fprintf(&b, "%d. %s — %s\n", i, StyleLevelName.Render(l.Name), l.Focus)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Reminder renders a non-empty PlanResponse.Reminder string, or "" if
// there is nothing to show.
func Reminder(reminder string) string {
	if reminder == "" {
		return ""
	}
	return StyleReminder.Render("reminder: " + reminder)
}
