package partition

import (
	"math/rand"

	"github.com/katalvlaran/treedepth/graph"
)

const (
	roundsPerPhase      = 8
	minMovesToContinue  = 10
	rebalanceIterations = 20
)

// shouldMove is an acceptance predicate for a candidate move: same and
// other count the moving object's neighbors currently on its own side and
// the other side respectively, mySize/otherSize are the pre-move side
// populations, obj is the number of nodes moving (1 for a single move, 2
// for a pair move), and otherSideID identifies the destination side.
type shouldMove func(same, other, mySize, otherSize, obj, otherSideID int) bool

// OptimizeCut runs the fixed three-phase local search described for the
// cut optimizer: decrease cut size to a fixpoint, then balance the two
// sides without reopening the cut, then alternate a side-0 rebalance with
// both of the above 20 times. It mutates side in place.
func OptimizeCut(g *graph.Graph, side Side, rng *rand.Rand) {
	n := g.NodeCount()
	active := NewActiveSet(g, side)

	var sideSize [2]int
	for v := 0; v < n; v++ {
		sideSize[side[v]]++
	}

	cutDecrease := func(same, other, _, otherSize, obj, _ int) bool {
		return other > same && 3*otherSize+obj < 2*n
	}
	cutDecreaseOrBalance := func(same, other, mySize, otherSize, obj, otherSideID int) bool {
		return cutDecrease(same, other, mySize, otherSize, obj, otherSideID) ||
			(same == other && otherSize+obj < mySize)
	}
	rebalanceToSide0 := func(same, other, _, otherSize, obj, otherSideID int) bool {
		return same == other && otherSideID == 0 && 3*otherSize+obj < 2*n
	}

	runPhase := func(should shouldMove) {
		for i := 0; i < roundsPerPhase; i++ {
			if moveNodesAndEdges(active, g, side, &sideSize, rng, should) < minMovesToContinue {
				break
			}
		}
	}

	decreaseCutSize := func() { runPhase(cutDecrease) }
	balanceCut := func() { runPhase(cutDecreaseOrBalance) }
	rebalance := func() { runPhase(rebalanceToSide0) }

	decreaseCutSize()
	balanceCut()
	for i := 0; i < rebalanceIterations; i++ {
		rebalance()
		decreaseCutSize()
		balanceCut()
	}
}

func moveNodesAndEdges(a *ActiveSet, g *graph.Graph, side Side, sideSize *[2]int, rng *rand.Rand, should shouldMove) int {
	return moveNodes(a, g, side, sideSize, rng, should) + moveEdges(a, g, side, sideSize, rng, should)
}

// moveNodes considers flipping the side of each active node individually.
func moveNodes(a *ActiveSet, g *graph.Graph, side Side, sideSize *[2]int, rng *rand.Rand, should shouldMove) int {
	moveCount := 0
	a.Shuffle(rng)
	a.ForEachActive(func(x int32) {
		mySide := side[x]
		otherSide := uint8(1) - mySide

		same, other := 0, 0
		for _, y := range g.Neighbors(x) {
			if side[y] == mySide {
				same++
			} else {
				other++
			}
		}

		if should(same, other, sideSize[mySide], sideSize[otherSide], 1, int(otherSide)) {
			sideSize[mySide]--
			side[x] = otherSide
			a.NotifySideChanged(x)
			sideSize[otherSide]++
			moveCount++
		}
	})
	return moveCount
}

// moveEdges considers flipping adjacent same-side node pairs together.
func moveEdges(a *ActiveSet, g *graph.Graph, side Side, sideSize *[2]int, rng *rand.Rand, should shouldMove) int {
	n := g.NodeCount()
	isNeighborOfX := make([]bool, n)
	moveCount := 0

	a.Shuffle(rng)
	a.ForEachActive(func(x int32) {
		for _, y := range g.Neighbors(x) {
			isNeighborOfX[y] = true
		}

		mySide := side[x]
		otherSide := uint8(1) - mySide

		for _, y := range g.Neighbors(x) {
			if side[y] != mySide {
				continue
			}
			// dedup: consider each unordered pair once, preferring the
			// smaller id unless the larger one is already inactive.
			if !(x < y || !a.IsActive(y)) {
				continue
			}

			same, other := 0, 0
			for _, z := range g.Neighbors(x) {
				if side[z] == mySide {
					same++
				} else {
					other++
				}
			}
			for _, z := range g.Neighbors(y) {
				if isNeighborOfX[z] {
					continue
				}
				if side[z] == mySide {
					same++
				} else {
					other++
				}
			}
			same -= 2 // x and y themselves move, don't count each other

			if should(same, other, sideSize[mySide], sideSize[otherSide], 2, int(otherSide)) {
				sideSize[mySide] -= 2
				side[x] = otherSide
				side[y] = otherSide
				a.NotifySideChanged(x)
				a.NotifySideChanged(y)
				sideSize[otherSide] += 2
				moveCount++
			}
		}

		for _, y := range g.Neighbors(x) {
			isNeighborOfX[y] = false
		}
	})
	return moveCount
}
