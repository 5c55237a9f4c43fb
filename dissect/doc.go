// Package dissect implements the nested-dissection driver: it recursively
// splits a graph along a balanced vertex separator, orders each resulting
// component, and concatenates the pieces into a single elimination order
// whose tree depth it tries to keep below a caller-supplied bound.
//
// What
//
//   - SeparatorProvider abstracts over how a separator is found; BFSProvider
//     wires up the package's own partition/shrink pipeline, but the driver
//     itself is agnostic to the provider's internals.
//   - TreeDepthOrder handles a possibly disconnected graph: it reorders in
//     BFS preorder so components occupy contiguous id ranges, then drives
//     the connected-graph recursion per component.
//   - The connected-graph recursion bottoms out at two exact base cases
//     (tree, clique) and otherwise compares a greedy fallback order against
//     a separator-driven split, keeping whichever is shallower.
//
// Why
//
//   - Comparing against a greedy fallback at every recursion level means a
//     bad separator can never make the result worse than not using nested
//     dissection at all; it can only fail to help.
//
// Complexity
//
//   - Dominated by however many separator searches the recursion performs;
//     each level does O(n + m) work outside of the separator provider call.
package dissect
