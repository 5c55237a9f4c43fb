package graph

import (
	"errors"
	"sort"
)

// Sentinel errors for graph construction.
var (
	// ErrSelfLoop is returned when an edge's endpoints are equal.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge is returned when the same unordered pair is added twice.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrNodeOutOfRange is returned when an endpoint id is outside [0, n).
	ErrNodeOutOfRange = errors.New("graph: node id out of range")
)

// Graph is an undirected simple graph stored as paired directed arcs.
//
// For every arc a there is a unique reverse arc a' = Back[a] with
// Tail[a']=Head[a] and Head[a']=Tail[a]. Arcs are sorted first by Tail then
// by Head, so each node's out-arcs (see outStart below) are always a
// contiguous range of arc indices.
type Graph struct {
	n int

	Tail []int32
	Head []int32
	Back []int32

	// outStart[v]..outStart[v+1] is the range of arc indices with Tail==v.
	outStart []int32
}

// NodeCount returns the number of nodes n.
func (g *Graph) NodeCount() int { return g.n }

// ArcCount returns the number of directed arcs (twice the edge count).
func (g *Graph) ArcCount() int { return len(g.Tail) }

// Neighbors returns the neighbor node ids of v, ascending, one per arc.
func (g *Graph) Neighbors(v int32) []int32 {
	lo, hi := g.outStart[v], g.outStart[v+1]
	out := make([]int32, 0, hi-lo)
	for a := lo; a < hi; a++ {
		out = append(out, g.Head[a])
	}
	return out
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int32) int {
	return int(g.outStart[v+1] - g.outStart[v])
}

// IsTree reports whether the graph is a free tree: m = 2(n-1).
func (g *Graph) IsTree() bool {
	return len(g.Tail) == 2*(g.n-1)
}

// IsClique reports whether the graph is a complete graph: m = n(n-1).
func (g *Graph) IsClique() bool {
	return len(g.Tail) == g.n*(g.n-1)
}

// Builder accumulates undirected edges and produces an immutable Graph.
type Builder struct {
	n     int
	edges [][2]int32
	seen  map[[2]int32]struct{}
}

// NewBuilder returns a Builder for a graph on n nodes, ids in [0, n).
func NewBuilder(n int) *Builder {
	return &Builder{
		n:    n,
		seen: make(map[[2]int32]struct{}),
	}
}

// AddEdge records an undirected edge {u, v}. Order of u, v does not matter;
// adding {u,v} twice (in either order) is an error, as is u == v.
func (b *Builder) AddEdge(u, v int32) error {
	if u < 0 || int(u) >= b.n || v < 0 || int(v) >= b.n {
		return ErrNodeOutOfRange
	}
	if u == v {
		return ErrSelfLoop
	}
	key := [2]int32{u, v}
	if u > v {
		key = [2]int32{v, u}
	}
	if _, dup := b.seen[key]; dup {
		return ErrDuplicateEdge
	}
	b.seen[key] = struct{}{}
	b.edges = append(b.edges, key)
	return nil
}

// Build finalizes the accumulated edges into a Graph: each edge becomes a
// pair of reverse arcs, arcs are sorted by (tail, head), and the back-arc
// and CSR out-index are derived.
func (b *Builder) Build() *Graph {
	m := len(b.edges) * 2
	tail := make([]int32, 0, m)
	head := make([]int32, 0, m)
	for _, e := range b.edges {
		tail = append(tail, e[0], e[1])
		head = append(head, e[1], e[0])
	}
	return newFromArcs(b.n, tail, head)
}

// newFromArcs sorts (tail, head) pairs and derives Back and outStart.
func newFromArcs(n int, tail, head []int32) *Graph {
	m := len(tail)
	order := make([]int32, m)
	for i := range order {
		order[i] = int32(i)
	}
	sort.Slice(order, func(i, j int) bool {
		ai, aj := order[i], order[j]
		if tail[ai] != tail[aj] {
			return tail[ai] < tail[aj]
		}
		return head[ai] < head[aj]
	})

	sortedTail := make([]int32, m)
	sortedHead := make([]int32, m)
	for i, a := range order {
		sortedTail[i] = tail[a]
		sortedHead[i] = head[a]
	}

	back := computeBackArcs(sortedTail, sortedHead)

	outStart := make([]int32, n+1)
	for _, t := range sortedTail {
		outStart[t+1]++
	}
	for v := 0; v < n; v++ {
		outStart[v+1] += outStart[v]
	}

	return &Graph{
		n:        n,
		Tail:     sortedTail,
		Head:     sortedHead,
		Back:     back,
		outStart: outStart,
	}
}

// computeBackArcs pairs each arc (u,v) with its reverse (v,u). Arcs are
// sorted by (tail, head), so for every arc a there is exactly one arc a'
// with tail[a']==head[a] and head[a']==tail[a]; a map from each
// still-unmatched arc's (tail, head) pair to its index finds it in O(m)
// expected time.
func computeBackArcs(tail, head []int32) []int32 {
	m := len(tail)
	back := make([]int32, m)
	pending := make(map[[2]int32]int32, m/2)
	for a := 0; a < m; a++ {
		u, v := tail[a], head[a]
		key := [2]int32{v, u}
		if other, ok := pending[key]; ok {
			back[a] = other
			back[other] = int32(a)
			delete(pending, key)
		} else {
			pending[[2]int32{u, v}] = int32(a)
		}
	}
	return back
}
