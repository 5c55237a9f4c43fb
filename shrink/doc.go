// Package shrink post-processes a vertex separator by removing as many of
// its nodes as possible without letting any resulting component of the
// graph minus the separator grow past two thirds of the node count.
//
// What
//
//   - Shrink walks candidate separator nodes in input order, tracking the
//     non-separator side as a union-find structure, and drops a candidate
//     whenever the component it would rejoin stays within bound.
//
// Why
//
//   - A freshly converted cut-to-separator result is often larger than it
//     needs to be; shrinking it reduces the separator's contribution to
//     the elimination tree's depth without reopening the balance search.
//
// Complexity (n = |V|, m = |arcs|)
//
//   - O((n + m) * alpha(n)) for the initial union pass plus one O(deg(x))
//     mark-and-sweep per candidate.
package shrink
