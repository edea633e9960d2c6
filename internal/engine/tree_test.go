package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

func newTestPlan() *models.Plan {
	return models.NewPlan(0, "goal", "", models.DefaultCatalog())
}

func TestAddTaskRejectsBadLevel(t *testing.T) {
	p := newTestPlan()
	_, err := addTask(p, models.Index{}, "x", 99, "")
	require.Error(t, err)
	var merr *models.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, models.KindLevelOutOfRange, merr.Kind)
}

func TestAddTaskRejectsEmptyDescription(t *testing.T) {
	p := newTestPlan()
	_, err := addTask(p, models.Index{}, "   ", 0, "")
	require.Error(t, err)
	var merr *models.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, models.KindInvalidInput, merr.Kind)
}

func TestAddTaskClearsCompletedAncestors(t *testing.T) {
	p := newTestPlan()
	result, err := addTask(p, models.Index{}, "parent", 0, "")
	require.NoError(t, err)
	parentIdx := result.Index

	succeeded, _, err := completeTask(p, parentIdx, nil, true, nil)
	require.NoError(t, err)
	require.True(t, succeeded)

	parent, err := walk(p.Root, parentIdx)
	require.NoError(t, err)
	require.True(t, parent.Completed)

	_, err = addTask(p, parentIdx, "late arrival", 1, "")
	require.NoError(t, err)

	parent, err = walk(p.Root, parentIdx)
	require.NoError(t, err)
	assert.False(t, parent.Completed, "adding work under a completed ancestor must un-complete it")
}

func TestRemoveTaskRenumbersSiblingsAndLeases(t *testing.T) {
	p := newTestPlan()
	addTask(p, models.Index{}, "a", 0, "")
	addTask(p, models.Index{}, "b", 0, "")
	addTask(p, models.Index{}, "c", 0, "")

	// Two leases: the first claims token 0, so the one we track is
	// guaranteed non-zero and a bug that zeroes a relocated token can't
	// hide behind a token that was already 0.
	_, _, err := generateLease(p, models.Index{1})
	require.NoError(t, err)
	wantToken, _, err := generateLease(p, models.Index{2})
	require.NoError(t, err)
	require.NotZero(t, wantToken)

	p.Cursor = models.Index{2}

	result, err := removeTask(p, models.Index{0})
	require.NoError(t, err)
	require.NotNil(t, result.Task)
	assert.Equal(t, "a", result.Task.Description)

	assert.Len(t, p.Root.Children, 2)
	assert.Equal(t, "b", p.Root.Children[0].Description)
	assert.Equal(t, "c", p.Root.Children[1].Description)

	assert.Equal(t, models.Index{1}, p.Cursor, "cursor must renumber along with its sibling")

	_, hasOldKey := p.Leases["2"]
	assert.False(t, hasOldKey)
	gotToken, hasNewKey := p.Leases["1"]
	require.True(t, hasNewKey, "the lease must follow its task to the new position")
	assert.Equal(t, wantToken, gotToken, "the lease's token must survive the renumber, not reset to zero")
}

func TestRemoveTaskDropsLeasesUnderRemovedSubtree(t *testing.T) {
	p := newTestPlan()
	addTask(p, models.Index{}, "parent", 0, "")
	addTask(p, models.Index{0}, "child", 1, "")
	generateLease(p, models.Index{0, 0})

	_, err := removeTask(p, models.Index{0})
	require.NoError(t, err)
	assert.Empty(t, p.Leases)
}

func TestRemoveTaskCursorInsideRemovedSubtreeResetsToParent(t *testing.T) {
	p := newTestPlan()
	addTask(p, models.Index{}, "parent", 0, "")
	addTask(p, models.Index{0}, "child", 1, "")
	p.Cursor = models.Index{0, 0}

	_, err := removeTask(p, models.Index{0, 0})
	require.NoError(t, err)
	assert.Equal(t, models.Index{0}, p.Cursor)
}

func TestNotesCRUD(t *testing.T) {
	p := newTestPlan()
	result, _ := addTask(p, models.Index{}, "x", 0, "")
	idx := result.Index

	ok, reason := setNotes(p, idx, "hello")
	assert.True(t, ok)
	assert.Empty(t, reason)

	notes, err := getNotes(p, idx)
	require.NoError(t, err)
	require.NotNil(t, notes)
	assert.Equal(t, "hello", *notes)

	ok, _ = deleteNotes(p, idx)
	assert.True(t, ok)

	notes, err = getNotes(p, idx)
	require.NoError(t, err)
	assert.Nil(t, notes)

	// Deleting again is a no-op, not a failure.
	ok, _ = deleteNotes(p, idx)
	assert.True(t, ok)
}

func TestNotesOnMissingIndexReportsReason(t *testing.T) {
	p := newTestPlan()
	ok, reason := setNotes(p, models.Index{7}, "x")
	assert.False(t, ok)
	assert.NotEmpty(t, reason)
}
