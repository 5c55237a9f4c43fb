package flowsep

import "github.com/katalvlaran/treedepth/graph"

// buildSplitGraph expands g into the standard vertex-capacitated flow
// network for extracting a minimum vertex separator between s and t: every
// node v becomes an in(v)/out(v) pair joined by a capacity-1 internal arc
// (capacity infinite for s and t themselves, since neither may appear in
// the separator), and every original edge {u, v} becomes infinite-capacity
// arcs out(u)->in(v) and out(v)->in(u). A min s-out to t-in cut then
// corresponds to a minimum set of intermediate vertices separating s from
// t. Grounded on the node-splitting ("expanded_graph") construction in
// flow_cutter::ComputeSeparator (separator.h).
func buildSplitGraph(g *graph.Graph, s, t int32) (fg *dinicGraph, sOut, tIn int32) {
	n := int32(g.NodeCount())
	fg = newDinicGraph(2 * n)

	for v := int32(0); v < n; v++ {
		capacity := 1
		if v == s || v == t {
			capacity = infCapacity
		}
		fg.addEdge(in(v), out(v), capacity)
	}
	for a := 0; a < len(g.Tail); a++ {
		u, v := g.Tail[a], g.Head[a]
		fg.addEdge(out(u), in(v), infCapacity)
	}

	return fg, out(s), in(t)
}

func in(v int32) int32  { return 2 * v }
func out(v int32) int32 { return 2*v + 1 }

// extractSeparator reads the vertex separator off the split graph's final
// residual state: a node v is in the separator exactly when in(v) is
// reachable from sOut in the residual graph but out(v) is not, i.e. its
// internal capacity-1 arc is the saturated cut edge.
func extractSeparator(fg *dinicGraph, sOut int32, nodeCount int32) []int32 {
	reachable := fg.reachableFrom(sOut)

	var separator []int32
	for v := int32(0); v < nodeCount; v++ {
		if reachable[in(v)] && !reachable[out(v)] {
			separator = append(separator, v)
		}
	}
	return separator
}
