// Package partition produces balanced vertex separators from a graph by
// growing a two-sided coloring from random seeds, locally refining its cut,
// and converting the refined cut into a separator.
//
// What
//
//   - Seed2BFS grows a 2-coloring from two random seeds by breadth-first
//     search, giving every discovered node its discoverer's side.
//   - ActiveSet tracks exactly the nodes with a neighbor on the other
//     side, supporting O(1) activation/membership and O(k) iteration over
//     the active set.
//   - OptimizeCut runs rounds of single- and paired-node flips against
//     three acceptance predicates (cut-decrease, cut-decrease-or-balance,
//     rebalance-to-side-0) in a fixed phase schedule, to reduce cut size
//     and then balance the two sides without reopening the cut.
//   - CutToSeparator turns a 2-coloring's edge cut into a vertex separator
//     by picking, for each cut edge not already covered, an endpoint on
//     the larger side; it rejects (returns ok=false) if the resulting
//     smaller side holds less than a third of the non-separator nodes.
//   - Separator runs several independent BFS-seeded rounds through the
//     full pipeline and keeps the smallest balanced separator found,
//     discarding the result if it still exceeds a caller-supplied bound.
//
// Why
//
//   - A single BFS 2-coloring is a cheap starting cut but usually far from
//     balanced or minimal; OptimizeCut's phased local search is what turns
//     it into something usable as a nested-dissection separator.
//
// Complexity (n = |V|, m = |arcs|)
//
//   - Seed2BFS: O(n + m).
//   - One OptimizeCut round: O(n + m) amortized across the active set.
//   - CutToSeparator: O(m).
package partition
