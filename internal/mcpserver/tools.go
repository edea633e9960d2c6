package mcpserver

import (
	"context"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/scatterbrain-dev/scatterbrain/internal/engine"
	"github.com/scatterbrain-dev/scatterbrain/models"
)

// result builds a CallToolResultFor carrying both a human-readable summary
// and the full structured payload, the shape mcp/core_tools.go's handlers
// return for every tool.
func result(text string, data any) *mcpsdk.CallToolResultFor[any] {
	return &mcpsdk.CallToolResultFor[any]{
		Content:           []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		StructuredContent: data,
	}
}

func parseIndexOrEmpty(s string) (models.Index, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return models.ParseIndex(s)
}

// registerTools registers one MCP tool per spec.md §6 operation, plus
// level-guidance (SPEC_FULL.md's supplemented "get_guidance" surface).
func registerTools(server *mcpsdk.Server, eng *engine.Engine) error {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "create-plan",
		Description: "Start a new plan from a prompt. Returns the new plan's id.",
	}, createPlanHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "delete-plan",
		Description: "Delete a plan outright.",
	}, deletePlanHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "list-plans",
		Description: "List every live plan id.",
	}, listPlansHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-plan",
		Description: "Get a full snapshot of a plan's task tree.",
	}, getPlanHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "current",
		Description: "Describe the task at a plan's cursor.",
	}, currentHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "distilled-context",
		Description: "Get a plan's distilled context: task tree, cursor, level catalog, and history.",
	}, distilledContextHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "add-task",
		Description: "🎯 Add a new task to a plan under parent_index (empty parent_index means the root). Returns the task and its assigned index.",
	}, addTaskHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "move-to",
		Description: "Move a plan's cursor to index. An index that doesn't exist leaves the cursor untouched.",
	}, moveToHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "change-level",
		Description: "Set a task's explicit abstraction-level override.",
	}, changeLevelHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "complete-task",
		Description: "🎯 Mark a task (and its subtree) completed. Generate a lease first and pass it here, or set force=true with no lease.",
	}, completeTaskHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "uncomplete-task",
		Description: "Clear a task's completed flag without touching its descendants.",
	}, uncompleteTaskHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "remove-task",
		Description: "Delete a task from its parent's children. The root cannot be removed.",
	}, removeTaskHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "generate-lease",
		Description: "Mint a fresh single-use completion token for a task, along with its level's verification questions.",
	}, generateLeaseHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get-task-notes",
		Description: "Get a task's free-text notes, if any.",
	}, getTaskNotesHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "set-task-notes",
		Description: "Replace a task's free-text notes.",
	}, setTaskNotesHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "delete-task-notes",
		Description: "Clear a task's notes.",
	}, deleteTaskNotesHandler(eng))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "level-guidance",
		Description: "Get the human-readable guidance text for one of a plan's abstraction levels: description, focus instruction, and verification questions.",
	}, levelGuidanceHandler(eng))

	return nil
}

func createPlanHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[createPlanParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[createPlanParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		id, err := eng.CreatePlan(args.Prompt, args.Notes)
		if err != nil {
			return nil, err
		}
		return result("created plan "+id.String(), map[string]any{"id": id}), nil
	}
}

func deletePlanHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[planIDParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[planIDParams]) (*mcpsdk.CallToolResultFor[any], error) {
		id := models.PlanId(params.Arguments.PlanID)
		if err := eng.DeletePlan(id); err != nil {
			return nil, err
		}
		return result("deleted plan "+id.String(), map[string]any{"deleted": true}), nil
	}
}

type noParams struct{}

func listPlansHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[noParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[noParams]) (*mcpsdk.CallToolResultFor[any], error) {
		ids := eng.ListPlans()
		return result("there are currently live plans", map[string]any{"plans": ids}), nil
	}
}

func getPlanHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[planIDParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[planIDParams]) (*mcpsdk.CallToolResultFor[any], error) {
		resp, err := eng.GetPlan(models.PlanId(params.Arguments.PlanID))
		if err != nil {
			return nil, err
		}
		return result("plan snapshot", resp), nil
	}
}

func currentHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[planIDParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[planIDParams]) (*mcpsdk.CallToolResultFor[any], error) {
		resp, err := eng.Current(models.PlanId(params.Arguments.PlanID))
		if err != nil {
			return nil, err
		}
		text := "cursor is at the root"
		if resp.Result != nil {
			text = "current task: " + resp.Result.Description
		}
		return result(text, resp), nil
	}
}

func distilledContextHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[planIDParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[planIDParams]) (*mcpsdk.CallToolResultFor[any], error) {
		resp, err := eng.DistilledContext(models.PlanId(params.Arguments.PlanID))
		if err != nil {
			return nil, err
		}
		return result(resp.DistilledContext.UsageSummary, resp), nil
	}
}

func addTaskHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[addTaskParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[addTaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		parentIdx, err := parseIndexOrEmpty(args.ParentIndex)
		if err != nil {
			return nil, err
		}
		resp, err := eng.AddTask(models.PlanId(args.PlanID), parentIdx, args.Description, args.LevelIndex, args.Notes)
		if err != nil {
			return nil, err
		}
		return result("added task at index "+resp.Result.Index.String(), resp), nil
	}
}

func moveToHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[moveToParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[moveToParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		idx, err := parseIndexOrEmpty(args.Index)
		if err != nil {
			return nil, err
		}
		resp, err := eng.MoveTo(models.PlanId(args.PlanID), idx)
		if err != nil {
			return nil, err
		}
		text := "no task at that index; cursor unchanged"
		if resp.Result != nil {
			text = "moved to: " + *resp.Result
		}
		return result(text, resp), nil
	}
}

func changeLevelHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[changeLevelParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[changeLevelParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		idx, err := models.ParseIndex(args.Index)
		if err != nil {
			return nil, err
		}
		resp, err := eng.ChangeLevel(models.PlanId(args.PlanID), idx, args.LevelIndex)
		if err != nil {
			return nil, err
		}
		text := "level changed"
		if !resp.Result.OK {
			text = "level change rejected: " + resp.Result.Reason
		}
		return result(text, resp), nil
	}
}

func completeTaskHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[completeTaskParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[completeTaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		idx, err := models.ParseIndex(args.Index)
		if err != nil {
			return nil, err
		}
		var summary *string
		if strings.TrimSpace(args.Summary) != "" {
			summary = &args.Summary
		}
		resp, err := eng.CompleteTask(models.PlanId(args.PlanID), idx, args.Lease, args.Force, summary)
		if err != nil {
			return nil, err
		}
		text := "task completed"
		if !resp.Result {
			text = "not completed: " + resp.Reminder
		}
		return result(text, resp), nil
	}
}

func uncompleteTaskHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[indexParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[indexParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		idx, err := models.ParseIndex(args.Index)
		if err != nil {
			return nil, err
		}
		resp, err := eng.UncompleteTask(models.PlanId(args.PlanID), idx)
		if err != nil {
			return nil, err
		}
		text := "task uncompleted"
		if !resp.Result.Succeeded {
			text = "not changed: " + resp.Result.Reason
		}
		return result(text, resp), nil
	}
}

func removeTaskHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[indexParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[indexParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		idx, err := models.ParseIndex(args.Index)
		if err != nil {
			return nil, err
		}
		resp, err := eng.RemoveTask(models.PlanId(args.PlanID), idx)
		if err != nil {
			return nil, err
		}
		text := "task removed"
		if resp.Result.Reason != "" {
			text = "not removed: " + resp.Result.Reason
		}
		return result(text, resp), nil
	}
}

func generateLeaseHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[indexParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[indexParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		idx, err := models.ParseIndex(args.Index)
		if err != nil {
			return nil, err
		}
		resp, err := eng.GenerateLease(models.PlanId(args.PlanID), idx)
		if err != nil {
			return nil, err
		}
		return result("lease token minted; verify the suggested questions before completing", resp), nil
	}
}

func getTaskNotesHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[indexParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[indexParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		idx, err := models.ParseIndex(args.Index)
		if err != nil {
			return nil, err
		}
		notes, err := eng.GetTaskNotes(models.PlanId(args.PlanID), idx)
		if err != nil {
			return nil, err
		}
		text := "no notes for this task"
		if notes != nil {
			text = *notes
		}
		return result(text, map[string]any{"notes": notes}), nil
	}
}

func setTaskNotesHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[setNotesParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[setNotesParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		idx, err := models.ParseIndex(args.Index)
		if err != nil {
			return nil, err
		}
		resp, err := eng.SetTaskNotes(models.PlanId(args.PlanID), idx, args.Notes)
		if err != nil {
			return nil, err
		}
		return result("notes updated", resp), nil
	}
}

func deleteTaskNotesHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[indexParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[indexParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		idx, err := models.ParseIndex(args.Index)
		if err != nil {
			return nil, err
		}
		resp, err := eng.DeleteTaskNotes(models.PlanId(args.PlanID), idx)
		if err != nil {
			return nil, err
		}
		return result("notes cleared", resp), nil
	}
}

// levelGuidanceHandler implements SPEC_FULL.md's supplemented
// "get_guidance" surface: the human-readable orientation text for one
// level of a plan's catalog, built from models.Level.Guidance().
func levelGuidanceHandler(eng *engine.Engine) mcpsdk.ToolHandlerFor[levelGuidanceParams, any] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[levelGuidanceParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		resp, err := eng.GetPlan(models.PlanId(args.PlanID))
		if err != nil {
			return nil, err
		}
		lvl, err := resp.Result.Levels.At(args.LevelIndex)
		if err != nil {
			return nil, err
		}
		return result(lvl.Guidance(), map[string]any{"guidance": lvl.Guidance()}), nil
	}
}
