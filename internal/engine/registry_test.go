package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

func TestRegistryCreateAllocatesLowestFreeId(t *testing.T) {
	r := NewRegistry()
	idA, err := r.Create("a", "", models.DefaultCatalog())
	require.NoError(t, err)
	idB, err := r.Create("b", "", models.DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, models.PlanId(0), idA)
	assert.Equal(t, models.PlanId(1), idB)

	require.NoError(t, r.Delete(idA))
	idC, err := r.Create("c", "", models.DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, models.PlanId(0), idC)
}

func TestRegistryCreateRejectsEmptyPrompt(t *testing.T) {
	r := NewRegistry()
	_, err := r.Create("", "", models.DefaultCatalog())
	require.Error(t, err)
	var merr *models.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, models.KindInvalidInput, merr.Kind)
}

func TestRegistryCreateReportsCapacityExhausted(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < maxPlans; i++ {
		_, err := r.Create("p", "", models.DefaultCatalog())
		require.NoError(t, err)
	}
	_, err := r.Create("overflow", "", models.DefaultCatalog())
	require.Error(t, err)
	var merr *models.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, models.KindCapacityExhausted, merr.Kind)
}

func TestRegistryDeleteUnknownPlanNotFound(t *testing.T) {
	r := NewRegistry()
	err := r.Delete(models.PlanId(42))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &models.Error{Kind: models.KindPlanNotFound}))
}

func TestWithPlanUnknownPlanNotFound(t *testing.T) {
	r := NewRegistry()
	_, err := WithPlan(r, models.PlanId(9), func(p *models.Plan) (int, error) {
		return 0, nil
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, &models.Error{Kind: models.KindPlanNotFound}))
}

// TestWithPlanRecoversPanicAndLeavesPlanUsable exercises spec.md §4.1's
// "if the lock is poisoned by a prior panic, recovery MUST still return
// the underlying state" requirement: Go's defer/recover releases the
// mutex regardless, so the very next call against the same plan succeeds
// normally.
func TestWithPlanRecoversPanicAndLeavesPlanUsable(t *testing.T) {
	r := NewRegistry()
	id, err := r.Create("p", "", models.DefaultCatalog())
	require.NoError(t, err)

	_, err = WithPlan(r, id, func(p *models.Plan) (int, error) {
		panic("simulated failure mid-mutation")
	})
	require.Error(t, err)
	var merr *models.Error
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, models.KindInternal, merr.Kind)

	result, err := WithPlan(r, id, func(p *models.Plan) (string, error) {
		return p.Prompt, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "p", result)
}

func TestRegistryListIsSorted(t *testing.T) {
	r := NewRegistry()
	r.Create("a", "", models.DefaultCatalog())
	r.Create("b", "", models.DefaultCatalog())
	r.Create("c", "", models.DefaultCatalog())
	assert.Equal(t, []models.PlanId{0, 1, 2}, r.List())
}
