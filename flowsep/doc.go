// Package flowsep provides a flow-based alternative to partition's BFS
// separator search: it finds a minimum vertex separator between a pair of
// distant terminals by running Dinic's max-flow algorithm over a
// node-split expansion of the graph, in which each vertex's unit capacity
// becomes an edge capacity.
//
// What: given a connected graph and a pair of terminals s, t, split every
// node v into in(v)/out(v) joined by a capacity-1 arc (infinite for s and
// t), route original edges as infinite-capacity arcs between split
// halves, and read the minimum vertex cut off the maximum flow's residual
// graph. Several rounds try different distant terminal pairs (picked via a
// triple breadth-first sweep) and keep the smallest separator that both
// fits the caller's size bound and clears a randomly selected balance
// ratio.
//
// Why: a pure greedy-degree or BFS-cut separator search can miss cases
// where a small vertex cut exists but isn't visible to 2-coloring-based
// local search; routing flow between genuinely far-apart terminals finds
// the provably minimum cut for that terminal pair directly.
//
// Complexity: one Dinic run is O(V^2 * E) on the 2V-node, O(E) split
// graph; flowRounds repeats this with different terminal pairs.
package flowsep
