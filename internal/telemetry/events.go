package telemetry

// Event names tracked across scatterbrain's frontends. Names and properties
// are chosen to carry zero plan content: no prompts, descriptions, notes,
// or summaries ever appear in a tracked property.
const (
	EventServerStarted  = "server_started"
	EventCLICommand     = "cli_command_executed"
	EventMCPToolInvoked = "mcp_tool_invoked"
	EventPlanCreated    = "plan_created"
	EventPlanDeleted    = "plan_deleted"
	EventTaskAdded      = "task_added"
	EventTaskCompleted  = "task_completed"
	EventTaskRemoved    = "task_removed"
	EventLeaseGenerated = "lease_generated"
	EventLevelChanged   = "level_changed"
)
