package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexRoundTrip(t *testing.T) {
	cases := []Index{
		{0},
		{0, 1, 2},
		{5, 4, 3, 2, 1},
	}
	for _, idx := range cases {
		parsed, err := ParseIndex(idx.String())
		require.NoError(t, err)
		assert.True(t, parsed.Equal(idx), "parse(format(%v)) = %v", idx, parsed)
	}
}

func TestParseIndexRejectsEmptyAndInvalid(t *testing.T) {
	_, err := ParseIndex("")
	require.Error(t, err)

	_, err = ParseIndex("0, a, 2")
	require.Error(t, err)

	_, err = ParseIndex("-1")
	require.Error(t, err)
}

func TestIndexHasPrefix(t *testing.T) {
	assert.True(t, Index{0, 1}.HasPrefix(Index{0, 1, 2}))
	assert.True(t, Index{0, 1}.HasPrefix(Index{0, 1}))
	assert.False(t, Index{0, 1}.HasPrefix(Index{0, 2}))
	assert.False(t, Index{0, 1, 2}.HasPrefix(Index{0, 1}))
}

func TestIndexChildAndClone(t *testing.T) {
	base := Index{0, 1}
	child := base.Child(2)
	assert.Equal(t, Index{0, 1, 2}, child)

	clone := base.Clone()
	clone[0] = 9
	assert.Equal(t, 0, base[0], "mutating a clone must not affect the original")
}
