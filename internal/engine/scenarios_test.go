package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// TestScenarioS1 mirrors spec.md §8 scenario S1.
func TestScenarioS1(t *testing.T) {
	e := New(nil)

	id, err := e.CreatePlan("build X", "")
	require.NoError(t, err)
	assert.Equal(t, models.PlanId(0), id)

	added, err := e.AddTask(id, models.Index{}, "root task", 0, "")
	require.NoError(t, err)
	assert.Equal(t, models.Index{0}, added.Result.Index)

	moved, err := e.MoveTo(id, models.Index{0})
	require.NoError(t, err)
	require.NotNil(t, moved.Result)
	assert.Equal(t, "root task", *moved.Result)

	added, err = e.AddTask(id, models.Index{0}, "sub", 1, "")
	require.NoError(t, err)
	assert.Equal(t, models.Index{0, 0}, added.Result.Index)

	cur, err := e.Current(id)
	require.NoError(t, err)
	require.NotNil(t, cur.Result)
	assert.Equal(t, "sub", cur.Result.Description)
	assert.Equal(t, models.Index{0, 0}, cur.Result.Index)
}

// TestScenarioS2 mirrors spec.md §8 scenario S2.
func TestScenarioS2(t *testing.T) {
	e := New(nil)
	id, _ := e.CreatePlan("build X", "")
	e.AddTask(id, models.Index{}, "root task", 0, "")
	e.AddTask(id, models.Index{0}, "sub", 1, "")

	leaseResp, err := e.GenerateLease(id, models.Index{0, 0})
	require.NoError(t, err)
	token := leaseResp.Result.Token

	wrong := token + 1
	summary := "done"
	resp, err := e.CompleteTask(id, models.Index{0, 0}, &wrong, false, &summary)
	require.NoError(t, err)
	assert.False(t, resp.Result, "mismatched lease must not complete the task")

	resp, err = e.CompleteTask(id, models.Index{0, 0}, &token, false, &summary)
	require.NoError(t, err)
	assert.True(t, resp.Result)

	resp, err = e.CompleteTask(id, models.Index{0, 0}, nil, false, &summary)
	require.NoError(t, err)
	assert.False(t, resp.Result, "already-completed task must report false, not an error")
}

// TestScenarioS3 mirrors spec.md §8 scenario S3: forced completion cascades.
func TestScenarioS3(t *testing.T) {
	e := New(nil)
	id, _ := e.CreatePlan("build X", "")
	added, _ := e.AddTask(id, models.Index{}, "parent", 0, "")
	assert.Equal(t, models.Index{0}, added.Result.Index)
	e.MoveTo(id, models.Index{0})
	added, _ = e.AddTask(id, models.Index{0}, "child", 1, "")
	assert.Equal(t, models.Index{0, 0}, added.Result.Index)

	resp, err := e.CompleteTask(id, models.Index{0}, nil, true, nil)
	require.NoError(t, err)
	assert.True(t, resp.Result)

	plan, err := e.GetPlan(id)
	require.NoError(t, err)
	parent, err := walk(plan.Result.Root, models.Index{0})
	require.NoError(t, err)
	child, err := walk(plan.Result.Root, models.Index{0, 0})
	require.NoError(t, err)
	assert.True(t, parent.Completed)
	assert.True(t, child.Completed)
}

// TestScenarioS4 mirrors spec.md §8 scenario S4: lowest-free-id reuse.
func TestScenarioS4(t *testing.T) {
	e := New(nil)
	idA, _ := e.CreatePlan("A", "")
	idB, _ := e.CreatePlan("B", "")
	assert.Equal(t, models.PlanId(0), idA)
	assert.Equal(t, models.PlanId(1), idB)

	require.NoError(t, e.DeletePlan(idA))
	assert.Equal(t, []models.PlanId{1}, e.ListPlans())

	idC, _ := e.CreatePlan("C", "")
	assert.Equal(t, models.PlanId(0), idC, "id 0 must be reused, the lowest free slot")
}

// TestScenarioS5 mirrors spec.md §8 scenario S5: notes CRUD.
func TestScenarioS5(t *testing.T) {
	e := New(nil)
	id, _ := e.CreatePlan("build X", "")
	added, _ := e.AddTask(id, models.Index{}, "x", 0, "")
	idx := added.Result.Index

	_, err := e.SetTaskNotes(id, idx, "note")
	require.NoError(t, err)

	notes, err := e.GetTaskNotes(id, idx)
	require.NoError(t, err)
	require.NotNil(t, notes)
	assert.Equal(t, "note", *notes)

	_, err = e.DeleteTaskNotes(id, idx)
	require.NoError(t, err)

	notes, err = e.GetTaskNotes(id, idx)
	require.NoError(t, err)
	assert.Nil(t, notes)
}

// TestScenarioS6 mirrors spec.md §8 scenario S6: remove_task on the root
// and on an out-of-range index both surface as a failed Result, not a
// thrown engine error (spec.md §6's Result<Task, reason> inner type).
func TestScenarioS6(t *testing.T) {
	e := New(nil)
	id, _ := e.CreatePlan("build X", "")

	resp, err := e.RemoveTask(id, models.Index{})
	require.NoError(t, err)
	assert.Nil(t, resp.Result.Task)
	assert.NotEmpty(t, resp.Result.Reason)

	resp, err = e.RemoveTask(id, models.Index{99})
	require.NoError(t, err)
	assert.Nil(t, resp.Result.Task)
	assert.NotEmpty(t, resp.Result.Reason)
}
