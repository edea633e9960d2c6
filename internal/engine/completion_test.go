package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

func TestCompleteTaskRequiresSummaryUnlessForced(t *testing.T) {
	p := newTestPlan()
	result, _ := addTask(p, models.Index{}, "x", 0, "")

	succeeded, reminder, err := completeTask(p, result.Index, nil, false, nil)
	require.NoError(t, err)
	assert.False(t, succeeded)
	assert.NotEmpty(t, reminder)

	summary := "done"
	succeeded, reminder, err = completeTask(p, result.Index, nil, false, &summary)
	require.NoError(t, err)
	assert.True(t, succeeded)
	assert.Empty(t, reminder)
}

func TestCompleteTaskMissingIndexIsError(t *testing.T) {
	p := newTestPlan()
	_, _, err := completeTask(p, models.Index{5}, nil, true, nil)
	require.Error(t, err)
	var merr *models.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, models.KindIndexOutOfRange, merr.Kind)
}

func TestCompleteTaskForceClearsExistingLeaseRegardless(t *testing.T) {
	p := newTestPlan()
	result, _ := addTask(p, models.Index{}, "x", 0, "")
	generateLease(p, result.Index)
	require.NotEmpty(t, p.Leases)

	succeeded, _, err := completeTask(p, result.Index, nil, true, nil)
	require.NoError(t, err)
	assert.True(t, succeeded)
	assert.Empty(t, p.Leases)
}

func TestCascadeCompleteLeavesDescendantSummariesUntouched(t *testing.T) {
	p := newTestPlan()
	parent, _ := addTask(p, models.Index{}, "parent", 0, "")
	child, _ := addTask(p, parent.Index, "child", 1, "")
	child.Task.Summary = "already had one"

	_, _, err := completeTask(p, parent.Index, nil, true, nil)
	require.NoError(t, err)

	kid, err := walk(p.Root, child.Index)
	require.NoError(t, err)
	assert.True(t, kid.Completed)
	assert.Equal(t, "already had one", kid.Summary, "forced cascade must not synthesize a summary for descendants")
}

func TestUncompleteTaskClearsFlagAndSummary(t *testing.T) {
	p := newTestPlan()
	result, _ := addTask(p, models.Index{}, "x", 0, "")
	summary := "done"
	completeTask(p, result.Index, nil, false, &summary)

	outcome := uncompleteTask(p, result.Index)
	assert.True(t, outcome.Succeeded)

	task, err := walk(p.Root, result.Index)
	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Empty(t, task.Summary)
}

func TestUncompleteTaskAlreadyOpenReturnsFalse(t *testing.T) {
	p := newTestPlan()
	result, _ := addTask(p, models.Index{}, "x", 0, "")
	outcome := uncompleteTask(p, result.Index)
	assert.False(t, outcome.Succeeded)
	assert.Empty(t, outcome.Reason)
}

func TestUncompleteDoesNotCascade(t *testing.T) {
	p := newTestPlan()
	parent, _ := addTask(p, models.Index{}, "parent", 0, "")
	addTask(p, parent.Index, "child", 1, "")
	completeTask(p, parent.Index, nil, true, nil)

	uncompleteTask(p, parent.Index)

	child, err := walk(p.Root, models.Index{0, 0})
	require.NoError(t, err)
	assert.True(t, child.Completed, "uncomplete must not cascade to children")
}
