// Package guide holds scatterbrain's static usage guide: the same prose
// surfaced by the CLI's `scatterbrain guide` command and the MCP server's
// "guide" prompt, so the two frontends never drift out of sync. Grounded
// on original_source/src/guide.rs's section structure (getting started,
// workflow, command reference, abstraction levels, transitioning, best
// practices) — rewritten in scatterbrain's own voice rather than
// translated, per SPEC_FULL.md's supplemented-features note that this is
// new prose, not a port.
package guide

import (
	"fmt"
	"strings"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// Text returns the full static guide.
func Text() string {
	return strings.Join([]string{
		overview,
		gettingStarted,
		workflowGuide,
		commandReference,
		levelsExplained(),
		transitioning,
		bestPractices,
	}, "\n\n")
}

const overview = `== SCATTERBRAIN ==

Scatterbrain keeps a hierarchical plan for a piece of work: a tree of
tasks, each pinned to one of four abstraction levels, plus a cursor
naming "where you are" in that tree right now. Every operation returns
a distilled context alongside its result — the full tree, your current
position, the level catalog, and the change history — so a caller never
has to make a second call just to re-orient.`

const gettingStarted = `== GETTING STARTED ==

1. create_plan(prompt) to start a new plan. You get back a PlanId (a
   small integer, 0-255) — every other operation is scoped to one.
2. add_task(plan, parent_index, description, level_index) to grow the
   tree. The first task you add under the root becomes index "0".
3. move_to(plan, index) to set the cursor. current(plan) then
   describes whatever the cursor points at.
4. When you're done with a task, generate_lease(plan, index) first,
   then complete_task(plan, index, lease, force=false, summary) with
   that token and a short summary of what you actually did.`

const workflowGuide = `== WORKFLOW ==

The intended loop is: move to a task, read its distilled context and
level guidance, do the work, generate a lease, then complete the task
with a summary. A completion without a matching lease (or without a
summary) is rejected — not as an error, but as a reminder to go get
one; the response's "reminder" field explains why, and you're free to
retry with force=true if you really mean to skip that check.

Adding a task under a branch that was previously marked complete
un-completes every ancestor on that branch: finishing "the design" and
then adding a newly discovered subtask means the design isn't actually
finished anymore.`

const commandReference = `== INTERFACES ==

The same engine is reachable four ways:
  - HTTP/JSON: POST/GET against /api/plans/... (see "scatterbrain serve").
  - MCP tools: one tool per operation, for AI agents (see "scatterbrain mcp").
  - CLI: "scatterbrain plan|task|move|current|lease|notes ..." subcommands,
    which are themselves a thin HTTP client against a running server.
  - An interactive shell ("scatterbrain shell") and a live TUI watcher
    ("scatterbrain watch") for humans who want to drive a plan directly.`

func levelsExplained() string {
	var b strings.Builder
	b.WriteString("== ABSTRACTION LEVELS ==\n\n")
	b.WriteString("Lower index means higher altitude. Every task carries an\n")
	b.WriteString("explicit or inherited level; generate_lease returns that\n")
	b.WriteString("level's own questions as verification suggestions.\n")
	for i, lvl := range models.DefaultCatalog() {
		fmt.Fprintf(&b, "\n%d. %s\n   %s", i, lvl.Description, lvl.AbstractionFocus)
	}
	return b.String()
}

const transitioning = `== MOVING BETWEEN LEVELS ==

change_level(plan, index, level_index) replaces a task's level.
add_task records the level_index it is given; a task's depth in the tree
stands in as its level only when no level is set, and that depth is not
clamped to the catalog. Use change_level when a task belongs to a
different abstraction than the one it was added at: a deeply nested task
that is still planning-level work, for instance.`

const bestPractices = `== BEST PRACTICES ==

- Keep plan prompts short but specific: they're what a caller sees when
  deciding which PlanId is "the one about X".
- Write completion summaries a future reader could act on without
  re-reading the code: what changed and why, not "done".
- Prefer force=true only when you are knowingly skipping the lease
  check — leases exist so a task can't be marked done by two different
  callers acting on stale context.
- Re-fetch distilled_context on every SSE update: the stream marks a
  dropped event no differently from an ordinary update, so one update
  can stand for several changes.`
