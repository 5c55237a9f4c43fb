package partition

import (
	"math/rand"

	"github.com/katalvlaran/treedepth/graph"
)

// Side is a 2-coloring of a graph's nodes.
type Side []uint8

// Seed2BFS picks two distinct random seed nodes, colors one side 0 and the
// other side 1, and breadth-first-fills the rest of the graph from both
// simultaneously: whichever seed's search reaches a node first determines
// its side. Ties for simultaneous discovery are broken by enqueue order,
// which is deterministic for a fixed rng.
func Seed2BFS(g *graph.Graph, rng *rand.Rand) Side {
	n := g.NodeCount()
	side := make(Side, n)
	if n < 2 {
		return side
	}

	s := int32(rng.Intn(n))
	t := s
	for t == s {
		t = int32(rng.Intn(n))
	}

	wasPushed := make([]bool, n)
	queue := make([]int32, 0, n)

	side[s] = 0
	side[t] = 1
	wasPushed[s] = true
	wasPushed[t] = true
	queue = append(queue, s, t)

	for qi := 0; qi < len(queue); qi++ {
		x := queue[qi]
		for _, y := range g.Neighbors(x) {
			if !wasPushed[y] {
				wasPushed[y] = true
				side[y] = side[x]
				queue = append(queue, y)
			}
		}
	}
	return side
}
