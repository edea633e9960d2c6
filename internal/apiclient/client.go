// Package apiclient is a typed HTTP client for scatterbrain's own
// internal/httpapi server, used by the plan/task/move/current/lease/notes
// commands, the interactive shell and cmd/watch.go's snapshot fetch, so
// those commands never touch internal/engine directly (watch reads the SSE
// stream itself). Grounded on original_source/src/api/client.rs, which factors
// exactly this concern in the original (a client the CLI uses to talk to
// its own server) — translated into idiomatic Go rather than ported, and
// generalized from client.rs's five single-plan methods to the full
// multi-plan §6 operation surface that src/api/server.rs actually exposes.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/scatterbrain-dev/scatterbrain/internal/engine"
	"github.com/scatterbrain-dev/scatterbrain/models"
)

// DefaultBaseURL is used when no --server base URL is given.
const DefaultBaseURL = "http://127.0.0.1:3000"

// Client talks to a running scatterbrain HTTP API server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New builds a Client against baseURL (e.g. "http://127.0.0.1:3000"). A nil
// httpClient gets http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// APIError reports a server-side business failure: the envelope's
// success field was false. StatusCode is the HTTP status the server chose
// for it (404 for PlanNotFound, 400 for input problems, 500 otherwise —
// spec.md §7).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("scatterbrain api error (status %d): %s", e.StatusCode, e.Message)
}

// envelope mirrors internal/httpapi's wire format: {success, data, error}.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// do issues an HTTP request with an optional JSON body and decodes the
// {success,data,error} envelope into T. A false Success is reported as an
// *APIError regardless of HTTP status; the business-outcome-to-400 cases
// (move_to's nil target, complete_task's false, etc.) keep Success=true
// and are returned normally as data for the caller to inspect.
func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reqBody)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("decode response from %s %s: %w", method, path, err)
	}

	if !env.Success {
		return zero, &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	return env.Data, nil
}

func planPath(id models.PlanId, suffix string) string {
	return fmt.Sprintf("/api/plans/%d%s", id, suffix)
}

// CreatePlan calls create_plan.
func (c *Client) CreatePlan(ctx context.Context, prompt, notes string) (models.PlanId, error) {
	data, err := do[struct {
		ID models.PlanId `json:"id"`
	}](ctx, c, http.MethodPost, "/api/plans", map[string]string{"prompt": prompt, "notes": notes})
	if err != nil {
		return 0, err
	}
	return data.ID, nil
}

// DeletePlan calls delete_plan.
func (c *Client) DeletePlan(ctx context.Context, id models.PlanId) error {
	_, err := do[map[string]any](ctx, c, http.MethodDelete, planPath(id, ""), nil)
	return err
}

// ListPlans calls list_plans.
func (c *Client) ListPlans(ctx context.Context) ([]models.PlanId, error) {
	data, err := do[struct {
		Plans []models.PlanId `json:"plans"`
	}](ctx, c, http.MethodGet, "/api/plans", nil)
	if err != nil {
		return nil, err
	}
	return data.Plans, nil
}

// GetPlan calls get_plan.
func (c *Client) GetPlan(ctx context.Context, id models.PlanId) (models.PlanResponse[*models.Plan], error) {
	return do[models.PlanResponse[*models.Plan]](ctx, c, http.MethodGet, planPath(id, "/plan"), nil)
}

// Current calls current.
func (c *Client) Current(ctx context.Context, id models.PlanId) (models.PlanResponse[*models.CurrentSummary], error) {
	return do[models.PlanResponse[*models.CurrentSummary]](ctx, c, http.MethodGet, planPath(id, "/current"), nil)
}

// DistilledContext calls distilled_context.
func (c *Client) DistilledContext(ctx context.Context, id models.PlanId) (models.PlanResponse[struct{}], error) {
	return do[models.PlanResponse[struct{}]](ctx, c, http.MethodGet, planPath(id, "/distilled"), nil)
}

// AddTask calls add_task. An empty parentIdx targets the root.
func (c *Client) AddTask(ctx context.Context, id models.PlanId, parentIdx models.Index, description string, levelIndex int, notes string) (models.PlanResponse[engine.AddTaskResult], error) {
	body := map[string]any{
		"parent_index": parentIdx.String(),
		"description":  description,
		"level_index":  levelIndex,
		"notes":        notes,
	}
	return do[models.PlanResponse[engine.AddTaskResult]](ctx, c, http.MethodPost, planPath(id, "/task"), body)
}

// MoveTo calls move_to. A nil Result means the target index didn't exist;
// that is a successful call, not an error.
func (c *Client) MoveTo(ctx context.Context, id models.PlanId, idx models.Index) (models.PlanResponse[*string], error) {
	return do[models.PlanResponse[*string]](ctx, c, http.MethodPost, planPath(id, "/move"), map[string]string{"index": idx.String()})
}

// LevelOutcome is the inner payload of change_level.
type LevelOutcome struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// ChangeLevel calls change_level.
func (c *Client) ChangeLevel(ctx context.Context, id models.PlanId, idx models.Index, levelIndex int) (models.PlanResponse[LevelOutcome], error) {
	body := map[string]any{"index": idx.String(), "level_index": levelIndex}
	return do[models.PlanResponse[LevelOutcome]](ctx, c, http.MethodPost, planPath(id, "/task/level"), body)
}

// CompleteTask calls complete_task. A false Result means the completion
// was rejected (lease mismatch, missing summary, already complete) — not
// an error; the envelope's Reminder explains why.
func (c *Client) CompleteTask(ctx context.Context, id models.PlanId, idx models.Index, lease *uint8, force bool, summary *string) (models.PlanResponse[bool], error) {
	body := map[string]any{
		"index":   idx.String(),
		"lease":   lease,
		"force":   force,
		"summary": summary,
	}
	return do[models.PlanResponse[bool]](ctx, c, http.MethodPost, planPath(id, "/task/complete"), body)
}

// UncompleteOutcome is the inner payload of uncomplete_task.
type UncompleteOutcome struct {
	Succeeded bool   `json:"succeeded"`
	Reason    string `json:"reason,omitempty"`
}

// UncompleteTask calls uncomplete_task.
func (c *Client) UncompleteTask(ctx context.Context, id models.PlanId, idx models.Index) (models.PlanResponse[UncompleteOutcome], error) {
	return do[models.PlanResponse[UncompleteOutcome]](ctx, c, http.MethodPost, planPath(id, "/task/uncomplete"), map[string]string{"index": idx.String()})
}

// RemoveTask calls remove_task, deleting the task at idx.
func (c *Client) RemoveTask(ctx context.Context, id models.PlanId, idx models.Index) (models.PlanResponse[engine.RemoveResult], error) {
	path := planPath(id, "/tasks/"+url.PathEscape(idx.String()))
	return do[models.PlanResponse[engine.RemoveResult]](ctx, c, http.MethodDelete, path, nil)
}

// GenerateLease calls generate_lease.
func (c *Client) GenerateLease(ctx context.Context, id models.PlanId, idx models.Index) (models.PlanResponse[engine.LeaseResult], error) {
	return do[models.PlanResponse[engine.LeaseResult]](ctx, c, http.MethodPost, planPath(id, "/task/lease"), map[string]string{"index": idx.String()})
}

// GetTaskNotes calls get_task_notes.
func (c *Client) GetTaskNotes(ctx context.Context, id models.PlanId, idx models.Index) (*string, error) {
	data, err := do[struct {
		Notes *string `json:"notes"`
	}](ctx, c, http.MethodGet, planPath(id, "/task/notes?index="+url.QueryEscape(idx.String())), nil)
	if err != nil {
		return nil, err
	}
	return data.Notes, nil
}

// NotesOutcome is the inner payload of set/delete_task_notes.
type NotesOutcome struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// SetTaskNotes calls set_task_notes.
func (c *Client) SetTaskNotes(ctx context.Context, id models.PlanId, idx models.Index, notes string) (models.PlanResponse[NotesOutcome], error) {
	body := map[string]string{"index": idx.String(), "notes": notes}
	return do[models.PlanResponse[NotesOutcome]](ctx, c, http.MethodPost, planPath(id, "/task/notes"), body)
}

// DeleteTaskNotes calls delete_task_notes.
func (c *Client) DeleteTaskNotes(ctx context.Context, id models.PlanId, idx models.Index) (models.PlanResponse[NotesOutcome], error) {
	return do[models.PlanResponse[NotesOutcome]](ctx, c, http.MethodDelete, planPath(id, "/task/notes?index="+url.QueryEscape(idx.String())), nil)
}
