package dissect

import (
	"math/rand"

	"github.com/katalvlaran/treedepth/graph"
	"github.com/katalvlaran/treedepth/partition"
	"github.com/katalvlaran/treedepth/shrink"
)

// SeparatorProvider produces a vertex separator of g whose size is at most
// bound, or reports ok=false if it cannot find one. The driver
// makes no assumption about a provider beyond this contract: the BFS-based
// provider below and an external flow-based one are both valid.
type SeparatorProvider func(g *graph.Graph, bound int) (separator []int32, ok bool)

// BFSProvider builds a SeparatorProvider backed by the partition package:
// several BFS-seeded cut refinements (partition.Separator), shrunk with
// shrink.Shrink before being handed to the driver. bound already is the
// caller's max separator size (the driver derives it as
// min(depthBound, bestDepth)-1 before calling the provider), so it is
// passed through unchanged.
func BFSProvider(rng *rand.Rand) SeparatorProvider {
	return func(g *graph.Graph, bound int) ([]int32, bool) {
		sep, ok := partition.Separator(g, bound, rng)
		if !ok {
			return nil, false
		}
		return shrink.Shrink(g, sep), true
	}
}
