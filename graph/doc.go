// Package graph implements the symmetric graph model the rest of this
// module builds on: an undirected simple graph stored as paired directed
// arcs, each with its reverse-arc index, sorted first by tail then by
// head so a node's neighbors are a contiguous slice.
//
// What
//
//   - Graph holds parallel arrays Tail, Head, Back of equal length m = 2|E|
//     (every undirected edge contributes two arcs) plus a CSR-style index
//     over Tail giving each node's out-arcs as a contiguous sub-slice.
//   - Builder accumulates edges one at a time and produces an immutable
//     Graph via Build, rejecting self-loops and duplicate edges.
//   - Preorder, Induced and ForEachComponent support the recursive
//     subproblem construction nested dissection needs: relabeling nodes
//     in BFS preorder so connected components occupy contiguous id
//     ranges, and removing a node set (a separator) to split a graph.
//
// Why
//
//   - A flat (Tail, Head, Back) triple is the cheapest representation that
//     still answers "neighbors of v" and "the arc back from a to its
//     tail" in O(1)/O(deg) without per-node heap allocation for adjacency.
//   - Keeping arcs sorted by (tail, head) means adjacency is a slice, not
//     a map: no hashing on the hot path of greedy elimination or BFS.
//
// Complexity (n = |V|, m = |arcs| = 2|E|)
//
//   - Build: O(m log m) for the sort.
//   - Neighbors(v): O(deg(v)); it returns a freshly allocated copy.
//   - Preorder / Induced: O(n + m).
package graph
