package shrink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/graph"
	"github.com/katalvlaran/treedepth/shrink"
)

func TestShrink_RedundantCandidateRemoved(t *testing.T) {
	// path 0-1-2-3-4-5-6, separator {2,4}, processed in that order.
	// Removing 2 first rejoins {0,1} with {3} into a size-4 component,
	// which is within floor(2*7/3)=4; removing 4 next would then merge
	// that size-4 component with {5,6} into size 7, which exceeds bound,
	// so only the first candidate should be dropped.
	const n = 7
	b := graph.NewBuilder(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, b.AddEdge(int32(i), int32(i+1)))
	}
	g := b.Build()

	kept := shrink.Shrink(g, []int32{2, 4})
	assert.Equal(t, []int32{4}, kept)
}

func TestShrink_NecessaryNodeRetained(t *testing.T) {
	// path of 10 nodes, separator {1} alone: removing it from the
	// separator rejoins the whole 10-node path into one component, far
	// over floor(2*10/3)=6, so it must be retained.
	const n = 10
	b := graph.NewBuilder(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, b.AddEdge(int32(i), int32(i+1)))
	}
	g := b.Build()

	kept := shrink.Shrink(g, []int32{1})
	assert.Equal(t, []int32{1}, kept)
}

func TestShrink_EmptySeparator(t *testing.T) {
	g := graph.NewBuilder(3).Build()
	kept := shrink.Shrink(g, nil)
	assert.Empty(t, kept)
}
