package dissect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/elimtree"
	"github.com/katalvlaran/treedepth/graph"
)

func buildPathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, b.AddEdge(int32(i), int32(i+1)))
	}
	return b.Build()
}

func TestTreeDepthOrderOfTree_PathDepthBound(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 8, 15, 16, 17} {
		g := buildPathGraph(t, n)
		order := treeDepthOrderOfTree(g)
		require.Len(t, order, n)

		depth := elimtree.Depth(elimtree.Build(g, order))
		bound := int(math.Ceil(math.Log2(float64(n + 1))))
		assert.LessOrEqualf(t, depth, bound, "path of %d nodes: depth %d exceeds ceil(log2(n+1))=%d", n, depth, bound)
	}
}

func TestTreeDepthOrderOfTree_IsPermutation(t *testing.T) {
	b := graph.NewBuilder(6)
	for _, e := range [][2]int32{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}} {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	g := b.Build()

	order := treeDepthOrderOfTree(g)
	seen := make(map[int32]bool)
	for _, v := range order {
		assert.False(t, seen[v], "node %d appears twice in order", v)
		seen[v] = true
	}
	assert.Len(t, seen, 6)
}

func TestSmallestLevelNotTwice(t *testing.T) {
	assert.Equal(t, int32(0), smallestLevelNotTwice(nil))
	assert.Equal(t, int32(1), smallestLevelNotTwice([]int32{0, 0}))
	assert.Equal(t, int32(0), smallestLevelNotTwice([]int32{1}))
	assert.Equal(t, int32(2), smallestLevelNotTwice([]int32{0, 0, 1, 1}))
}
