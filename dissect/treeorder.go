package dissect

import (
	"sort"

	"github.com/katalvlaran/treedepth/graph"
)

// treeDepthOrderOfTree orders the nodes of a free tree by a node ranking
// that yields optimal (or near-optimal) tree depth: a leaf gets level 0;
// an internal node's level is one more than the smallest level that does
// not occur twice among its children's levels. Sorting by level ascending
// gives an elimination order in which low-ranked (shallow-subtree) nodes
// are eliminated first and high-ranked nodes end up near the root.
func treeDepthOrderOfTree(g *graph.Graph) []int32 {
	n := g.NodeCount()
	if n == 0 {
		return nil
	}

	parent := make([]int32, n)
	visited := make([]bool, n)
	bfsOrder := make([]int32, 0, n)

	parent[0] = -1
	visited[0] = true
	bfsOrder = append(bfsOrder, 0)
	for i := 0; i < len(bfsOrder); i++ {
		x := bfsOrder[i]
		for _, y := range g.Neighbors(x) {
			if !visited[y] {
				visited[y] = true
				parent[y] = x
				bfsOrder = append(bfsOrder, y)
			}
		}
	}

	childLevels := make([][]int32, n)
	level := make([]int32, n)
	for i := len(bfsOrder) - 1; i >= 0; i-- {
		x := bfsOrder[i]
		if len(childLevels[x]) == 0 {
			level[x] = 0
		} else {
			level[x] = smallestLevelNotTwice(childLevels[x]) + 1
		}
		if i != 0 {
			p := parent[x]
			childLevels[p] = append(childLevels[p], level[x])
		}
	}

	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	sort.SliceStable(order, func(i, j int) bool { return level[order[i]] < level[order[j]] })
	return order
}

// smallestLevelNotTwice returns the smallest non-negative level that
// occurs at most once among children.
func smallestLevelNotTwice(children []int32) int32 {
	count := make(map[int32]int, len(children))
	for _, c := range children {
		count[c]++
	}
	for l := int32(0); ; l++ {
		if count[l] < 2 {
			return l
		}
	}
}
