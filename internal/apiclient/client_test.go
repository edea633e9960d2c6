package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scatterbrain-dev/scatterbrain/internal/apiclient"
	"github.com/scatterbrain-dev/scatterbrain/internal/engine"
	"github.com/scatterbrain-dev/scatterbrain/internal/httpapi"
	"github.com/scatterbrain-dev/scatterbrain/models"
)

func newTestClient(t *testing.T) *apiclient.Client {
	t.Helper()
	eng := engine.New(nil)
	srv := httptest.NewServer(httpapi.New(eng, ":0", nil).Handler())
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, nil)
}

func TestClientCreateAddMoveCurrentRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	id, err := c.CreatePlan(ctx, "build X", "")
	require.NoError(t, err)
	assert.Equal(t, models.PlanId(0), id)

	resp, err := c.AddTask(ctx, id, nil, "root task", 0, "")
	require.NoError(t, err)
	assert.Equal(t, models.Index{0}, resp.Result.Index)

	moveResp, err := c.MoveTo(ctx, id, models.Index{0})
	require.NoError(t, err)
	require.NotNil(t, moveResp.Result)
	assert.Equal(t, "root task", *moveResp.Result)

	curResp, err := c.Current(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, curResp.Result)
	assert.Equal(t, "root task", curResp.Result.Description)
}

func TestClientGetPlanNotFoundReturnsAPIError(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.GetPlan(ctx, 5)
	require.Error(t, err)
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClientCompleteTaskLeaseLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	id, err := c.CreatePlan(ctx, "build X", "")
	require.NoError(t, err)
	addResp, err := c.AddTask(ctx, id, nil, "task", 0, "")
	require.NoError(t, err)
	idx := addResp.Result.Index

	leaseResp, err := c.GenerateLease(ctx, id, idx)
	require.NoError(t, err)
	token := leaseResp.Result.Token

	summary := "done"
	badToken := token + 1
	badResp, err := c.CompleteTask(ctx, id, idx, &badToken, false, &summary)
	require.NoError(t, err, "a lease mismatch is a business outcome, not a transport error")
	assert.False(t, badResp.Result)

	okResp, err := c.CompleteTask(ctx, id, idx, &token, false, &summary)
	require.NoError(t, err)
	assert.True(t, okResp.Result)
}

func TestClientRemoveTaskRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	id, err := c.CreatePlan(ctx, "build X", "")
	require.NoError(t, err)
	addResp, err := c.AddTask(ctx, id, nil, "task", 0, "")
	require.NoError(t, err)
	idx := addResp.Result.Index

	removeResp, err := c.RemoveTask(ctx, id, idx)
	require.NoError(t, err)
	require.NotNil(t, removeResp.Result.Task)
	assert.Equal(t, "task", removeResp.Result.Task.Description)
}

func TestClientNotesRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	id, err := c.CreatePlan(ctx, "build X", "")
	require.NoError(t, err)
	addResp, err := c.AddTask(ctx, id, nil, "task", 0, "")
	require.NoError(t, err)
	idx := addResp.Result.Index

	_, err = c.SetTaskNotes(ctx, id, idx, "note")
	require.NoError(t, err)

	notes, err := c.GetTaskNotes(ctx, id, idx)
	require.NoError(t, err)
	require.NotNil(t, notes)
	assert.Equal(t, "note", *notes)

	_, err = c.DeleteTaskNotes(ctx, id, idx)
	require.NoError(t, err)

	notes, err = c.GetTaskNotes(ctx, id, idx)
	require.NoError(t, err)
	assert.Nil(t, notes)
}
