package elimtree

import "github.com/katalvlaran/treedepth/graph"

// Root is the sentinel parent value for a tree root; distinct from any
// valid node id since node ids are non-negative.
const Root int32 = -1

// Build converts an elimination order over g into the parent array of the
// induced elimination tree: parent[v] is the earliest-eliminated node that
// is eliminated after v and reachable from v through already-eliminated
// nodes, or Root if none exists.
//
// Algorithm: for each node x, must_be_ancestors[x] holds the later-ranked
// endpoints of x's arcs, sorted by elimination rank ascending. Processing
// nodes in elimination order, the first (smallest-rank) entry becomes x's
// parent p, and the rest of x's ancestor set is merged into p's — this is
// valid because every node reachable from x through already-eliminated
// nodes becomes, once x is eliminated, reachable from p the same way.
func Build(g *graph.Graph, order []int32) []int32 {
	n := g.NodeCount()
	rank := make([]int32, n)
	for i, v := range order {
		rank[v] = int32(i)
	}

	mustBeAncestors := make([][]int32, n)
	for a := 0; a < len(g.Tail); a++ {
		x, y := g.Tail[a], g.Head[a]
		if rank[x] < rank[y] {
			mustBeAncestors[x] = append(mustBeAncestors[x], y)
		}
	}
	for x := 0; x < n; x++ {
		sortByRank(mustBeAncestors[x], rank)
	}

	parent := make([]int32, n)
	for i := 0; i < n; i++ {
		x := order[i]
		anc := mustBeAncestors[x]
		if len(anc) == 0 {
			parent[x] = Root
			continue
		}
		p := anc[0]
		parent[x] = p
		mustBeAncestors[p] = mergeUniqueByRank(anc[1:], mustBeAncestors[p], rank)
		mustBeAncestors[x] = nil
	}
	return parent
}

func sortByRank(ids []int32, rank []int32) {
	// insertion sort: ancestor lists are short in practice (bounded by
	// degree), and this avoids pulling in sort.Slice's interface overhead
	// on the hottest loop in the package.
	for i := 1; i < len(ids); i++ {
		v := ids[i]
		j := i - 1
		for j >= 0 && rank[ids[j]] > rank[v] {
			ids[j+1] = ids[j]
			j--
		}
		ids[j+1] = v
	}
}

// mergeUniqueByRank merges two rank-sorted, duplicate-free id slices into
// one rank-sorted, duplicate-free slice.
func mergeUniqueByRank(a, b []int32, rank []int32) []int32 {
	out := make([]int32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case rank[a[i]] < rank[b[j]]:
			out = append(out, a[i])
			i++
		case rank[a[i]] > rank[b[j]]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Depth returns the length, in nodes, of the longest root-to-leaf path in
// the forest described by parent. A lone root has depth 1.
//
// Each node's depth is computed once and memoized: an upward walk from an
// unvisited node either reaches Root (depth counted from scratch) or an
// already-memoized ancestor (depth derived by addition), then a second
// walk writes the memoized depth, decreasing by one per step, back down
// the path just traversed.
func Depth(parent []int32) int {
	n := len(parent)
	depthOf := make([]int32, n)
	for i := range depthOf {
		depthOf[i] = -1
	}

	treeDepth := 0
	for x := 0; x < n; x++ {
		if depthOf[x] != -1 {
			continue
		}

		depthOfX := int32(1)
		y := int32(x)
		for {
			z := parent[y]
			if z == Root {
				break
			}
			if depthOf[z] != -1 {
				depthOfX += depthOf[z]
				break
			}
			y = z
			depthOfX++
		}

		y = int32(x)
		depthOfY := depthOfX
		for {
			depthOf[y] = depthOfY
			z := parent[y]
			if z == Root {
				break
			}
			if depthOf[z] != -1 {
				break
			}
			y = z
			depthOfY--
		}

		if int(depthOfX) > treeDepth {
			treeDepth = int(depthOfX)
		}
	}
	return treeDepth
}
