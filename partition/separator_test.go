package partition_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/graph"
	"github.com/katalvlaran/treedepth/partition"
)

func TestSeparator_GridFindsBalancedSeparator(t *testing.T) {
	const side = 4
	g := graph.Grid(side, side)

	rng := rand.New(rand.NewSource(5))
	sep, ok := partition.Separator(g, side*side, rng)
	require.True(t, ok)
	assert.NotEmpty(t, sep)
	assert.Less(t, len(sep), side*side)
}

func TestSeparator_Disconnected_RejectsZeroSeparator(t *testing.T) {
	// two isolated edges: every 2-coloring splitting along components
	// yields a zero-size cut/separator, which must be reported as failure.
	b := graph.NewBuilder(4)
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(2, 3))
	g := b.Build()

	rng := rand.New(rand.NewSource(9))
	_, ok := partition.Separator(g, 4, rng)
	assert.False(t, ok)
}
