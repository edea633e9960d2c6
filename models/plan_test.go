package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanRecordsCreateHistory(t *testing.T) {
	p := NewPlan(0, "build X", "", DefaultCatalog())
	require.Len(t, p.History, 1)
	assert.Equal(t, "create", p.History[0].Action)
	assert.Equal(t, "build X", p.History[0].Details)
	assert.Equal(t, "root", p.Root.Description)
	assert.True(t, p.Cursor.Empty())
	assert.Empty(t, p.Leases)
}

func TestPlanCloneIsIndependent(t *testing.T) {
	p := NewPlan(1, "goal", "notes", DefaultCatalog())
	p.Leases["0"] = 5

	clone := p.Clone()
	clone.Prompt = "changed"
	clone.Leases["0"] = 9
	clone.Root.Description = "changed too"

	assert.Equal(t, "goal", p.Prompt)
	assert.Equal(t, uint8(5), p.Leases["0"])
	assert.Equal(t, "root", p.Root.Description)
}

func TestValidateStructRejectsEmptyPrompt(t *testing.T) {
	p := NewPlan(2, "x", "", DefaultCatalog())
	p.Prompt = ""
	err := ValidateStruct(p)
	require.Error(t, err)
}
