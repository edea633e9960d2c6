package models

// TreeNode is one entry in a pre-order tree snapshot: its path, text, and
// completion state, with IsCurrent set only for the node at the cursor.
type TreeNode struct {
	Index       Index       `json:"index"`
	Description string      `json:"description"`
	Completed   bool        `json:"completed"`
	IsCurrent   bool        `json:"is_current"`
	Children    []*TreeNode `json:"children,omitempty"`
}

// CurrentSummary describes the task at a plan's cursor.
type CurrentSummary struct {
	Index         Index  `json:"index"`
	Description   string `json:"description"`
	Completed     bool   `json:"completed"`
	ExplicitLevel *int   `json:"explicit_level,omitempty"`
}

// LevelSummary is the abbreviated form of a Level shown in a distilled
// context: name, focus, and the level's questions.
type LevelSummary struct {
	Name      string   `json:"name"`
	Focus     string   `json:"focus"`
	Questions []string `json:"questions"`
}

// DistilledContext is the orientation payload attached to every engine
// response: the full tree, the current position, the level catalog, the
// transition history, and a fixed usage summary string.
type DistilledContext struct {
	UsageSummary       string           `json:"usage_summary"`
	TaskTree           []*TreeNode      `json:"task_tree"`
	CurrentTask        *CurrentSummary  `json:"current_task,omitempty"`
	Levels             []LevelSummary   `json:"levels"`
	TransitionHistory  []HistoryEntry   `json:"transition_history"`
}

// UsageSummaryText is the fixed orientation string every distilled context
// carries, describing what its fields mean to a caller seeing one for the
// first time.
const UsageSummaryText = "task_tree is the full plan pre-order, with is_current marking your position; " +
	"current_task is that position's description, completion, and effective level; " +
	"levels is the abstraction ladder (lower index = higher altitude); " +
	"transition_history is every change to this plan so far, oldest first."

// PlanResponse is the universal return envelope: the operation's inner
// result, the freshly assembled distilled context, advisory follow-up
// suggestions, and an optional reminder string (e.g. "summary required").
type PlanResponse[T any] struct {
	Result              T                `json:"result"`
	DistilledContext    DistilledContext `json:"distilled_context"`
	SuggestedFollowups  []string         `json:"suggested_followups"`
	Reminder            string           `json:"reminder,omitempty"`
}

// NewPlanResponse wraps a result with its distilled context and follow-up
// suggestions.
func NewPlanResponse[T any](result T, ctx DistilledContext, followups []string, reminder string) PlanResponse[T] {
	return PlanResponse[T]{
		Result:             result,
		DistilledContext:   ctx,
		SuggestedFollowups: followups,
		Reminder:           reminder,
	}
}
