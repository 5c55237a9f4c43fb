// Package order implements the greedy minimum-degree elimination orderer
// used both as a baseline and as the early-exit order for small or dense
// subgraphs in nested dissection.
//
// What
//
//   - Greedy repeatedly pops the node of smallest priority from an indexed
//     min-heap, appends it to the output order, and eliminates it: its
//     former neighbors are made pairwise adjacent (graph contraction) and
//     their priorities are refreshed.
//   - Priority starts as plain degree, then becomes 8*level(v) + deg(v)
//     once v has been touched by an elimination, where level(v) tracks how
//     deep v has been pushed in the partial elimination tree so far. The
//     level term biases ties toward nodes recently raised, which in turn
//     biases the resulting elimination tree toward shallower depth.
//   - Once the popped node's degree exceeds 150 the remaining graph is
//     treated as effectively a clique and the rest of the queue is
//     appended in whatever order it drains in ("hot-bail").
//
// Why
//
//   - Pure minimum-degree degenerates into near-arbitrary tie-breaking on
//     dense subgraphs; the level term and hot-bail keep it useful as a
//     baseline across the whole size range nested dissection hands it.
//
// Complexity (n = |V|, m = |arcs|)
//
//   - O((n+m) log n): each contraction merges two sorted neighbor lists
//     and performs O(deg) heap updates.
package order
