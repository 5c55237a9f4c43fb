package graph

// Preorder computes a BFS-preorder relabeling of g: processing would-be
// roots in increasing id order and breadth-first from each, it assigns
// each node a new id equal to its visit rank. The result is a relabeling
// under which every connected component occupies a contiguous new-id
// range, and within a component every non-root node has at least one
// neighbor with a strictly smaller new id (its BFS parent).
//
// newID[old] is the new id of node old; oldID is its inverse.
func Preorder(g *Graph) (newID, oldID []int32) {
	n := g.NodeCount()
	newID = make([]int32, n)
	oldID = make([]int32, n)
	visited := make([]bool, n)

	queue := make([]int32, 0, n)
	next := int32(0)
	for root := int32(0); int(root) < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		for qi := 0; qi < len(queue); qi++ {
			x := queue[qi]
			newID[x] = next
			oldID[next] = x
			next++
			for _, y := range g.Neighbors(x) {
				if !visited[y] {
					visited[y] = true
					queue = append(queue, y)
				}
			}
		}
	}
	return newID, oldID
}

// Relabel returns a new Graph on the same node count with every node id v
// replaced by newID[v], arcs re-sorted accordingly.
func Relabel(g *Graph, newID []int32) *Graph {
	m := len(g.Tail)
	tail := make([]int32, m)
	head := make([]int32, m)
	for a := 0; a < m; a++ {
		tail[a] = newID[g.Tail[a]]
		head[a] = newID[g.Head[a]]
	}
	return newFromArcs(g.NodeCount(), tail, head)
}

// ReorderPreorder relabels g in BFS preorder (see Preorder) and returns the
// resulting Graph together with localToGlobal, the inverse mapping from a
// new (local) id back to g's original node id.
func ReorderPreorder(g *Graph) (*Graph, []int32) {
	newID, oldID := Preorder(g)
	return Relabel(g, newID), oldID
}

// Induced removes every node v with remove[v] set, relabels the survivors
// in BFS preorder (so the result's connected components are contiguous),
// and returns the resulting Graph together with localToGlobal, the map
// from a node id in the result back to its id in g.
func Induced(g *Graph, remove []bool) (*Graph, []int32) {
	n := g.NodeCount()

	compact := make([]int32, n)
	var survivors []int32
	for v := int32(0); int(v) < n; v++ {
		if !remove[v] {
			compact[v] = int32(len(survivors))
			survivors = append(survivors, v)
		} else {
			compact[v] = -1
		}
	}

	var tail, head []int32
	for a := 0; a < len(g.Tail); a++ {
		u, v := g.Tail[a], g.Head[a]
		if !remove[u] && !remove[v] {
			tail = append(tail, compact[u])
			head = append(head, compact[v])
		}
	}

	sub := newFromArcs(len(survivors), tail, head)
	reordered, localToSub := ReorderPreorder(sub)

	localToGlobal := make([]int32, len(survivors))
	for local, subID := range localToSub {
		localToGlobal[local] = survivors[subID]
	}
	return reordered, localToGlobal
}

// ForEachComponent assumes g's connected components already occupy
// contiguous id ranges (true of anything produced by Preorder, Relabel, or
// Induced) and invokes fn once per component in ascending id order, with a
// freshly built sub-Graph on that component's local ids and the map from
// those local ids back to g's ids. fn returns false to signal that the
// caller should abort immediately (propagated as ForEachComponent
// returning false without visiting further components).
func ForEachComponent(g *Graph, fn func(sub *Graph, localToGlobal []int32) bool) bool {
	n := g.NodeCount()
	if n == 0 {
		return true
	}

	begin := make([]bool, n)
	for i := range begin {
		begin[i] = true
	}
	for a := 0; a < len(g.Tail); a++ {
		if g.Head[a] < g.Tail[a] {
			begin[g.Tail[a]] = false
		}
	}

	m := len(g.Tail)
	nodeBegin, arcBegin := 0, 0
	for nodeEnd := 1; nodeEnd <= n; nodeEnd++ {
		if nodeEnd != n && !begin[nodeEnd] {
			continue
		}
		arcEnd := arcBegin
		for arcEnd < m && int(g.Tail[arcEnd]) < nodeEnd {
			arcEnd++
		}

		sub, localToGlobal := sliceComponent(g, nodeBegin, nodeEnd, arcBegin, arcEnd)
		if !fn(sub, localToGlobal) {
			return false
		}
		nodeBegin, arcBegin = nodeEnd, arcEnd
	}
	return true
}

func sliceComponent(g *Graph, nodeBegin, nodeEnd, arcBegin, arcEnd int) (*Graph, []int32) {
	subN := nodeEnd - nodeBegin
	tail := make([]int32, arcEnd-arcBegin)
	head := make([]int32, arcEnd-arcBegin)
	for i := arcBegin; i < arcEnd; i++ {
		tail[i-arcBegin] = g.Tail[i] - int32(nodeBegin)
		head[i-arcBegin] = g.Head[i] - int32(nodeBegin)
	}
	localToGlobal := make([]int32, subN)
	for i := 0; i < subN; i++ {
		localToGlobal[i] = int32(nodeBegin + i)
	}
	return newFromArcs(subN, tail, head), localToGlobal
}
