package partition

import (
	"math/rand"

	"github.com/katalvlaran/treedepth/graph"
)

// ActiveSet tracks the nodes with at least one neighbor on the other side,
// as a densely packed list plus a membership bit per node, so membership
// is O(1), insertion is O(1), and a full pass over active nodes is O(k).
type ActiveSet struct {
	g        *graph.Graph
	side     Side
	list     []int32
	isActive []bool
}

// NewActiveSet scans every node once to seed the initial active set.
func NewActiveSet(g *graph.Graph, side Side) *ActiveSet {
	n := g.NodeCount()
	a := &ActiveSet{
		g:        g,
		side:     side,
		list:     make([]int32, 0, n),
		isActive: make([]bool, n),
	}
	for v := int32(0); int(v) < n; v++ {
		if a.hasCrossNeighbor(v) {
			a.list = append(a.list, v)
			a.isActive[v] = true
		}
	}
	return a
}

func (a *ActiveSet) hasCrossNeighbor(x int32) bool {
	mySide := a.side[x]
	for _, y := range a.g.Neighbors(x) {
		if a.side[y] != mySide {
			return true
		}
	}
	return false
}

// Activate adds x to the active set if it isn't already in it.
func (a *ActiveSet) Activate(x int32) {
	if !a.isActive[x] {
		a.isActive[x] = true
		a.list = append(a.list, x)
	}
}

// NotifySideChanged must be called after x's side flips: x and every one
// of its neighbors may have become newly active.
func (a *ActiveSet) NotifySideChanged(x int32) {
	a.Activate(x)
	for _, y := range a.g.Neighbors(x) {
		a.Activate(y)
	}
}

// IsActive reports whether x is currently in the active set.
func (a *ActiveSet) IsActive(x int32) bool { return a.isActive[x] }

// Shuffle randomizes iteration order for the next ForEachActive pass.
func (a *ActiveSet) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(a.list), func(i, j int) { a.list[i], a.list[j] = a.list[j], a.list[i] })
}

// ForEachActive visits every still-active node exactly once: nodes that
// have lost their last cross-side neighbor since being enqueued are
// dropped (swap-removed) before the callback runs, rather than invoked.
func (a *ActiveSet) ForEachActive(callback func(x int32)) {
	i := 0
	for i < len(a.list) {
		x := a.list[i]
		if !a.hasCrossNeighbor(x) {
			last := len(a.list) - 1
			a.list[i] = a.list[last]
			a.list = a.list[:last]
			a.isActive[x] = false
			continue
		}
		callback(x)
		i++
	}
}
