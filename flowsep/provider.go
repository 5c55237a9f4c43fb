package flowsep

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/treedepth/dissect"
	"github.com/katalvlaran/treedepth/graph"
	"github.com/katalvlaran/treedepth/shrink"
)

// flowRounds bounds how many distant-pair attempts Provider makes before
// giving up, mirroring partition.Separator's best-of-several-rounds shape.
const flowRounds = 8

// Provider builds a dissect.SeparatorProvider backed by vertex-capacitated
// max-flow: each round picks a fresh pair of distant terminals, computes
// their minimum vertex cut via Dinic over a node-split expansion of g, and
// accepts the resulting separator if it fits within bound and clears a
// randomly chosen balance ratio. It keeps the smallest accepted separator
// across rounds, analogous to partition.Separator's best-of-N driver.
func Provider(rng *rand.Rand) dissect.SeparatorProvider {
	return func(g *graph.Graph, bound int) ([]int32, bool) {
		maxSize := bound
		n := g.NodeCount()
		if maxSize < 1 || n < 2 {
			return nil, false
		}

		var best []int32
		for round := 0; round < flowRounds; round++ {
			start := int32(rng.Intn(n))
			s, t := distantPair(g, start)
			if s == t {
				continue
			}

			fg, sOut, tIn := buildSplitGraph(g, s, t)
			flowValue := fg.maxFlow(context.Background(), sOut, tIn)
			if flowValue > maxSize {
				continue
			}

			sep := extractSeparator(fg, sOut, int32(n))
			sep = shrink.Shrink(g, sep)
			if len(sep) == 0 || len(sep) > maxSize {
				continue
			}

			num, den := balanceRatio(rng.Uint32(), n)
			smallSide := smallerComponentSize(g, sep)
			if den*smallSide <= num*(n-len(sep)) {
				continue
			}

			if best == nil || len(sep) < len(best) {
				best = sep
			}
		}

		if best == nil {
			return nil, false
		}
		return best, true
	}
}

// smallerComponentSize returns the size of the smallest connected component
// of g with separator's nodes removed, used to test a candidate separator's
// balance.
func smallerComponentSize(g *graph.Graph, separator []int32) int {
	n := g.NodeCount()
	removeFlag := make([]bool, n)
	for _, x := range separator {
		removeFlag[x] = true
	}
	residual, _ := graph.Induced(g, removeFlag)
	if residual.NodeCount() == 0 {
		return 0
	}

	min := residual.NodeCount()
	graph.ForEachComponent(residual, func(sub *graph.Graph, _ []int32) bool {
		if sub.NodeCount() < min {
			min = sub.NodeCount()
		}
		return true
	})
	return min
}
