package flowsep

import "github.com/katalvlaran/treedepth/graph"

// distantPair runs the triple-BFS sweep of original_source/src/distant_node.h's
// compute_distant_node_pair: a BFS from start reaches a farthest node a, a
// BFS from a reaches a farthest node s, and a BFS from s reaches a farthest
// node t. {s, t} is then a plausible "far apart" pair of terminals to flow
// between for a vertex separator. Unlike the original (which always seeds
// from node 0), start is caller-supplied so repeated rounds can explore
// different terminal pairs on the same graph.
func distantPair(g *graph.Graph, start int32) (s, t int32) {
	a := bfsFarthest(g, start)
	s = bfsFarthest(g, a)
	t = bfsFarthest(g, s)
	return s, t
}

// bfsFarthest returns the last node visited by a BFS rooted at from, i.e.
// a node at maximum BFS distance from it (the graph is assumed connected).
func bfsFarthest(g *graph.Graph, from int32) int32 {
	n := g.NodeCount()
	visited := make([]bool, n)
	visited[from] = true
	queue := make([]int32, 1, n)
	queue[0] = from

	last := from
	for qi := 0; qi < len(queue); qi++ {
		x := queue[qi]
		last = x
		for _, y := range g.Neighbors(x) {
			if !visited[y] {
				visited[y] = true
				queue = append(queue, y)
			}
		}
	}
	return last
}
