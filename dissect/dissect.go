package dissect

import (
	"sort"

	"github.com/katalvlaran/treedepth/elimtree"
	"github.com/katalvlaran/treedepth/graph"
	"github.com/katalvlaran/treedepth/internal/invariant"
	"github.com/katalvlaran/treedepth/order"
)

// TreeDepthOrder computes an elimination order for g, possibly
// disconnected, whose induced tree depth is strictly below depthBound. It
// returns ok=false if no such order could be produced for some component
// (the whole call fails if any component fails).
func TreeDepthOrder(g *graph.Graph, provide SeparatorProvider, depthBound int) (result []int32, ok bool) {
	reordered, localToGlobal := graph.ReorderPreorder(g)

	out := make([]int32, 0, g.NodeCount())
	succeeded := graph.ForEachComponent(reordered, func(sub *graph.Graph, subToReordered []int32) bool {
		subOrder, good := connectedOrder(sub, provide, depthBound)
		if !good {
			return false
		}
		for _, local := range subOrder {
			out = append(out, localToGlobal[subToReordered[local]])
		}
		return true
	})
	if !succeeded {
		return nil, false
	}
	invariant.Assert(len(out) == g.NodeCount(), "dissect: produced order of length %d for a %d-node graph", len(out), g.NodeCount())
	return out, true
}

// connectedOrder implements the base cases and recursive split for a
// single connected component.
func connectedOrder(sub *graph.Graph, provide SeparatorProvider, depthBound int) ([]int32, bool) {
	n := sub.NodeCount()

	if sub.IsTree() {
		treeOrder := treeDepthOrderOfTree(sub)
		if elimtree.Depth(elimtree.Build(sub, treeOrder)) >= depthBound {
			return nil, false
		}
		return treeOrder, true
	}
	if sub.IsClique() {
		// the identity order of a clique has depth n.
		if n >= depthBound {
			return nil, false
		}
		identity := make([]int32, n)
		for i := range identity {
			identity[i] = int32(i)
		}
		return identity, true
	}

	best := order.Greedy(sub)
	bestDepth := elimtree.Depth(elimtree.Build(sub, best))

	bound := depthBound
	if bestDepth < bound {
		bound = bestDepth
	}
	bound--

	if separator, found := provide(sub, bound); found && len(separator) > 0 {
		if ndOrder, good := splitAndOrder(sub, separator, provide, bound); good {
			ndDepth := elimtree.Depth(elimtree.Build(sub, ndOrder))
			if ndDepth < bestDepth {
				best, bestDepth = ndOrder, ndDepth
			}
		}
	}

	if bestDepth >= depthBound {
		return nil, false
	}
	return best, true
}

// splitAndOrder removes separator from sub, recursively orders each
// remaining component under the same bound, concatenates the child
// orders, and appends the separator nodes ordered so that nodes bordering
// a deeper child subtree are eliminated later (closer to the elimination
// tree's root).
func splitAndOrder(sub *graph.Graph, separator []int32, provide SeparatorProvider, bound int) ([]int32, bool) {
	n := sub.NodeCount()
	removeFlag := make([]bool, n)
	for _, x := range separator {
		removeFlag[x] = true
	}

	residual, localToGlobal := graph.Induced(sub, removeFlag)

	childDepthOf := make([]int, n)
	order := make([]int32, 0, n)

	succeeded := graph.ForEachComponent(residual, func(comp *graph.Graph, compToResidual []int32) bool {
		compOrder, good := connectedOrder(comp, provide, bound)
		if !good {
			return false
		}
		compDepth := elimtree.Depth(elimtree.Build(comp, compOrder))
		for _, compLocal := range compOrder {
			global := localToGlobal[compToResidual[compLocal]]
			order = append(order, global)
			childDepthOf[global] = compDepth
		}
		return true
	})
	if !succeeded {
		return nil, false
	}

	// Each separator node's priority is the deepest child component depth
	// among its non-separator neighbors; nodes with the smallest priority
	// are eliminated first (appended first), so a node bordering the
	// deepest subtree ends up last, highest in the elimination tree.
	priority := make([]int, len(separator))
	for i, x := range separator {
		max := 0
		for _, y := range sub.Neighbors(x) {
			if removeFlag[y] {
				continue
			}
			if childDepthOf[y] > max {
				max = childDepthOf[y]
			}
		}
		priority[i] = max
	}

	sepOrder := make([]int, len(separator))
	for i := range sepOrder {
		sepOrder[i] = i
	}
	sort.SliceStable(sepOrder, func(i, j int) bool { return priority[sepOrder[i]] < priority[sepOrder[j]] })
	for _, i := range sepOrder {
		order = append(order, separator[i])
	}

	return order, true
}
