package search

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treedepth/dissect"
	"github.com/katalvlaran/treedepth/elimtree"
	"github.com/katalvlaran/treedepth/flowsep"
	"github.com/katalvlaran/treedepth/graph"
	"github.com/katalvlaran/treedepth/internal/invariant"
	"github.com/katalvlaran/treedepth/order"
)

// OnImprove is called, from whichever worker goroutine found it, every
// time Best records a strictly smaller depth. Implementations must be
// safe to call concurrently and should not block for long, since it runs
// on the worker's own goroutine.
type OnImprove func(d *Decomposition)

// OnCandidate is called, from whichever worker goroutine produced it,
// every time a provider yields a candidate decomposition, whether or not
// it ends up improving Best. Implementations must be safe to call
// concurrently and should not block for long. May be nil.
type OnCandidate func(depth int)

// Run launches one worker per seed in workerSeeds, each alternating
// between the BFS-based and flow-based separator providers with a
// shrinking depth bound, all racing to improve best. It returns once
// every worker has exited (either ctx was canceled or every worker's
// bound collapsed to where no further improvement is reachable).
func Run(ctx context.Context, g *graph.Graph, workerSeeds []int64, best *Best, onImprove OnImprove, onCandidate OnCandidate) error {
	grp, ctx := errgroup.WithContext(ctx)
	for _, seed := range workerSeeds {
		seed := seed
		grp.Go(func() error {
			return runWorker(ctx, g, seed, best, onImprove, onCandidate)
		})
	}
	return grp.Wait()
}

func runWorker(ctx context.Context, g *graph.Graph, seed int64, best *Best, onImprove OnImprove, onCandidate OnCandidate) error {
	rng := rand.New(rand.NewSource(seed))

	greedy := order.Greedy(g)
	greedyParent := elimtree.Build(g, greedy)
	greedyDecomposition := newDecomposition(greedy, greedyParent)
	if onCandidate != nil {
		onCandidate(greedyDecomposition.Depth)
	}
	record(best, greedyDecomposition, onImprove)

	bfsProvide := dissect.BFSProvider(rng)
	flowProvide := flowsep.Provider(rng)

	bound := best.Depth()
	useFlow := false
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if bound <= 1 {
			return nil
		}

		provide := bfsProvide
		if useFlow {
			provide = flowProvide
		}
		useFlow = !useFlow

		candidateOrder, ok := dissect.TreeDepthOrder(g, provide, bound)
		if !ok {
			bound--
			continue
		}

		parent := elimtree.Build(g, candidateOrder)
		depth := elimtree.Depth(parent)
		invariant.Assert(depth < bound, "search: provider reported success with depth %d >= bound %d", depth, bound)
		if onCandidate != nil {
			onCandidate(depth)
		}
		record(best, newDecomposition(candidateOrder, parent), onImprove)
		bound = depth
	}
}

func record(best *Best, candidate *Decomposition, onImprove OnImprove) {
	if best.TryImprove(candidate) && onImprove != nil {
		onImprove(candidate)
	}
}
