package flowsep

import "context"

// infCapacity stands in for an unbounded edge: large enough that it is
// never the binding constraint in a vertex-capacitated flow network sized
// to a single subproblem.
const infCapacity = 1 << 30

// dinicGraph is a capacitated directed graph laid out for Dinic's
// algorithm: edges are stored in paired forward/reverse slots (index i's
// reverse is at i^1), and head[u] lists the edge indices leaving u. This
// mirrors the level-graph-plus-blocking-flow structure of the teacher's
// own Dinic (bfs levels, then repeated DFS pushes against a per-node
// resume iterator), adapted from its string-keyed capacity maps to dense
// int32 ids since flowsep's nodes are always a split graph's [0, 2n) range.
type dinicGraph struct {
	to   []int32
	cap  []int
	head [][]int32
}

func newDinicGraph(nodeCount int32) *dinicGraph {
	return &dinicGraph{head: make([][]int32, nodeCount)}
}

func (g *dinicGraph) addEdge(u, v int32, capacity int) {
	g.to = append(g.to, v)
	g.cap = append(g.cap, capacity)
	g.head[u] = append(g.head[u], int32(len(g.to)-1))

	g.to = append(g.to, u)
	g.cap = append(g.cap, 0)
	g.head[v] = append(g.head[v], int32(len(g.to)-1))
}

// maxFlow computes the maximum flow from s to t, mutating cap in place
// into the final residual capacities.
func (g *dinicGraph) maxFlow(ctx context.Context, s, t int32) int {
	n := int32(len(g.head))
	level := make([]int32, n)
	iter := make([]int32, n)
	queue := make([]int32, 0, n)

	flow := 0
	for {
		if err := ctx.Err(); err != nil {
			break
		}

		for i := range level {
			level[i] = -1
		}
		level[s] = 0
		queue = append(queue[:0], s)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, ei := range g.head[u] {
				v := g.to[ei]
				if g.cap[ei] > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[t] < 0 {
			break
		}

		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := g.dfsPush(s, t, infCapacity, level, iter)
			if pushed == 0 {
				break
			}
			flow += pushed
		}
	}
	return flow
}

func (g *dinicGraph) dfsPush(u, t int32, avail int, level, iter []int32) int {
	if u == t {
		return avail
	}
	for ; iter[u] < int32(len(g.head[u])); iter[u]++ {
		ei := g.head[u][iter[u]]
		v := g.to[ei]
		if g.cap[ei] <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := avail
		if g.cap[ei] < send {
			send = g.cap[ei]
		}
		pushed := g.dfsPush(v, t, send, level, iter)
		if pushed > 0 {
			g.cap[ei] -= pushed
			g.cap[ei^1] += pushed
			return pushed
		}
	}
	return 0
}

// reachableFrom returns, for the graph's current (residual) capacities,
// the set of nodes reachable from s along positive-capacity edges.
func (g *dinicGraph) reachableFrom(s int32) []bool {
	n := int32(len(g.head))
	reachable := make([]bool, n)
	reachable[s] = true
	queue := []int32{s}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, ei := range g.head[u] {
			v := g.to[ei]
			if g.cap[ei] > 0 && !reachable[v] {
				reachable[v] = true
				queue = append(queue, v)
			}
		}
	}
	return reachable
}
