package main

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/drought-dashboard/internal/catalog"
)

func TestWalk_StepsAtMostOneLevel(t *testing.T) {
	c, err := catalog.Load(catalog.Options{})
	require.NoError(t, err)
	levels := c.Levels()

	labels := walk(levels, 500, rand.New(rand.NewPCG(1, nameHash("Indralaya"))))
	require.Len(t, labels, 500)

	prev := 0
	for i, l := range labels {
		rank, ok := c.Ordinal(l)
		require.True(t, ok, "row %d label %q", i, l)
		if i > 0 {
			assert.LessOrEqual(t, abs(rank-prev), 1, "row %d jumped from %d to %d", i, prev, rank)
		}
		prev = rank
	}
}

func TestWalk_Deterministic(t *testing.T) {
	c, err := catalog.Load(catalog.Options{})
	require.NoError(t, err)

	a := walk(c.Levels(), 100, rand.New(rand.NewPCG(7, nameHash("Kandis"))))
	b := walk(c.Levels(), 100, rand.New(rand.NewPCG(7, nameHash("Kandis"))))
	assert.Equal(t, a, b)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
