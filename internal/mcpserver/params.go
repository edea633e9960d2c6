package mcpserver

// Parameter and result types for each MCP tool, one struct per operation,
// grounded on types/mcp.go's `json:"..." mcp:"..."` tagging convention
// (the second tag is the go-sdk's parameter description, surfaced to the
// calling model). Index fields are the wire string format ("0,1,2").

type createPlanParams struct {
	Prompt string `json:"prompt" mcp:"The plan's prompt (required, non-empty)"`
	Notes  string `json:"notes,omitempty" mcp:"Optional free-text notes for the plan"`
}

type planIDParams struct {
	PlanID int `json:"plan_id" mcp:"The plan id (0-255)"`
}

type indexParams struct {
	PlanID int    `json:"plan_id" mcp:"The plan id (0-255)"`
	Index  string `json:"index" mcp:"Task index, comma-separated (e.g. \"0,1\")"`
}

type addTaskParams struct {
	PlanID      int    `json:"plan_id" mcp:"The plan id (0-255)"`
	ParentIndex string `json:"parent_index,omitempty" mcp:"Parent task index; empty means the root"`
	Description string `json:"description" mcp:"The new task's description"`
	LevelIndex  int    `json:"level_index" mcp:"Abstraction level for the new task (0 = highest)"`
	Notes       string `json:"notes,omitempty" mcp:"Optional free-text notes for the new task"`
}

type moveToParams struct {
	PlanID int    `json:"plan_id" mcp:"The plan id (0-255)"`
	Index  string `json:"index,omitempty" mcp:"Target index; empty returns the cursor to the root"`
}

type changeLevelParams struct {
	PlanID     int    `json:"plan_id" mcp:"The plan id (0-255)"`
	Index      string `json:"index" mcp:"Task index, comma-separated"`
	LevelIndex int    `json:"level_index" mcp:"New explicit abstraction level for this task"`
}

type completeTaskParams struct {
	PlanID  int    `json:"plan_id" mcp:"The plan id (0-255)"`
	Index   string `json:"index" mcp:"Task index, comma-separated"`
	Lease   *uint8 `json:"lease,omitempty" mcp:"The token from generate_lease, omitted when forcing"`
	Force   bool   `json:"force,omitempty" mcp:"Skip the lease/summary check"`
	Summary string `json:"summary,omitempty" mcp:"What was actually done, required unless forcing"`
}

type setNotesParams struct {
	PlanID int    `json:"plan_id" mcp:"The plan id (0-255)"`
	Index  string `json:"index" mcp:"Task index, comma-separated"`
	Notes  string `json:"notes" mcp:"Replacement notes text"`
}

type levelGuidanceParams struct {
	PlanID     int `json:"plan_id" mcp:"The plan id (0-255), used to look up this plan's level catalog"`
	LevelIndex int `json:"level_index" mcp:"Which level to explain (0 = highest abstraction)"`
}
