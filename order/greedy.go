package order

import "github.com/katalvlaran/treedepth/graph"

// hotBailDegree is the degree threshold past which the remaining graph is
// treated as effectively complete and elimination order no longer matters.
const hotBailDegree = 150

// levelWeight scales the level term against raw degree in the priority
// formula 8*level(v) + deg(v).
const levelWeight = 8

// Greedy computes a minimum-degree elimination order of g, breaking ties
// toward nodes recently raised in the partial elimination tree.
func Greedy(g *graph.Graph) []int32 {
	n := g.NodeCount()
	adj := make([][]int32, n)
	for v := int32(0); int(v) < n; v++ {
		adj[v] = append([]int32(nil), g.Neighbors(v)...)
	}

	q := newPriorityQueue(n)
	for v := int32(0); int(v) < n; v++ {
		q.push(v, int32(len(adj[v])))
	}

	level := make([]int32, n)
	result := make([]int32, 0, n)

	for !q.empty() {
		x := q.popMin()
		result = append(result, x)

		if len(adj[x]) > hotBailDegree {
			for !q.empty() {
				result = append(result, q.popMin())
			}
			break
		}

		for _, y := range contractNode(adj, x) {
			if level[y] < level[x]+1 {
				level[y] = level[x] + 1
			}
			q.pushOrSetKey(y, levelWeight*level[y]+int32(len(adj[y])))
		}
	}

	return result
}

// contractNode eliminates x: every former neighbor y of x receives the
// sorted union of x's and y's former neighbor lists, minus x and y
// themselves. Returns x's former neighbor set.
func contractNode(adj [][]int32, x int32) []int32 {
	formerNeighbors := adj[x]
	for _, y := range formerNeighbors {
		adj[y] = sortedUnionExcluding(adj[x], adj[y], x, y)
	}
	return formerNeighbors
}

// sortedUnionExcluding merges two ascending, duplicate-free slices,
// suppressing duplicates and dropping any occurrence of skip1 or skip2.
func sortedUnionExcluding(a, b []int32, skip1, skip2 int32) []int32 {
	out := make([]int32, 0, len(a)+len(b))
	i, j := 0, 0
	keep := func(v int32) bool { return v != skip1 && v != skip2 }
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			if keep(a[i]) {
				out = append(out, a[i])
			}
			i++
		case a[i] > b[j]:
			if keep(b[j]) {
				out = append(out, b[j])
			}
			j++
		default:
			if keep(a[i]) {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		if keep(a[i]) {
			out = append(out, a[i])
		}
	}
	for ; j < len(b); j++ {
		if keep(b[j]) {
			out = append(out, b[j])
		}
	}
	return out
}
