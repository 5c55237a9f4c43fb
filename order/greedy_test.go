package order_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/graph"
	"github.com/katalvlaran/treedepth/order"
)

func assertIsPermutation(t *testing.T, perm []int32, n int) {
	t.Helper()
	require.Len(t, perm, n)
	seen := make([]bool, n)
	for _, v := range perm {
		require.False(t, seen[v], "duplicate id %d in order", v)
		require.True(t, int(v) >= 0 && int(v) < n)
		seen[v] = true
	}
}

func TestGreedy_SingleNode(t *testing.T) {
	b := graph.NewBuilder(1)
	g := b.Build()
	assertIsPermutation(t, order.Greedy(g), 1)
}

func TestGreedy_IsPermutation_Triangle(t *testing.T) {
	b := graph.NewBuilder(3)
	require.NoError(t, b.AddEdge(0, 1))
	require.NoError(t, b.AddEdge(1, 2))
	require.NoError(t, b.AddEdge(0, 2))
	g := b.Build()
	assertIsPermutation(t, order.Greedy(g), 3)
}

func TestGreedy_IsPermutation_Path(t *testing.T) {
	const n = 50
	b := graph.NewBuilder(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, b.AddEdge(int32(i), int32(i+1)))
	}
	g := b.Build()
	perm := order.Greedy(g)
	assertIsPermutation(t, perm, n)
}

func TestGreedy_HotBail_DenseGraph(t *testing.T) {
	// a graph denser than the hot-bail threshold must still yield a full
	// permutation (exercises the >150-degree short-circuit path).
	const n = 200
	b := graph.NewBuilder(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, b.AddEdge(int32(i), int32(j)))
		}
	}
	g := b.Build()
	perm := order.Greedy(g)
	assertIsPermutation(t, perm, n)
}

func TestGreedy_Deterministic(t *testing.T) {
	// Greedy has no randomness; same input must give the same output.
	const n = 30
	b := graph.NewBuilder(n)
	for i := 0; i < n-1; i += 2 {
		require.NoError(t, b.AddEdge(int32(i), int32(i+1)))
	}
	for i := 0; i < n; i += 3 {
		for j := i + 1; j < n; j += 5 {
			_ = b.AddEdge(int32(i), int32(j))
		}
	}
	g := b.Build()
	first := order.Greedy(g)
	second := order.Greedy(g)
	assert.Equal(t, first, second)
}

func TestGreedy_EmptyGraphZeroEdges(t *testing.T) {
	b := graph.NewBuilder(4)
	g := b.Build()
	perm := order.Greedy(g)
	sorted := append([]int32(nil), perm...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	assertIsPermutation(t, sorted, 4)
}
