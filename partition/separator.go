package partition

import (
	"math/rand"

	"github.com/katalvlaran/treedepth/graph"
)

// separatorRounds is how many independent BFS-seeded attempts Separator
// makes before settling on its best result.
const separatorRounds = 15

// Separator runs several independent rounds of Seed2BFS, OptimizeCut and
// CutToSeparator and keeps the smallest balanced separator found across all
// of them. It reports ok=false if no round produced a balanced separator,
// or if the best one found still exceeds maxSize.
func Separator(g *graph.Graph, maxSize int, rng *rand.Rand) (best []int32, ok bool) {
	for round := 0; round < separatorRounds; round++ {
		side := Seed2BFS(g, rng)
		OptimizeCut(g, side, rng)
		sep, found := CutToSeparator(g, side)
		if !found {
			continue
		}
		if !ok || len(sep) < len(best) {
			best = sep
			ok = true
		}
	}
	if !ok || len(best) > maxSize {
		return nil, false
	}
	return best, true
}
