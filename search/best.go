// Package search drives tree-depth decomposition across parallel
// workers: each worker repeatedly tries to improve on the current best
// decomposition, racing against the others under a shared, monotonically
// improving depth record.
package search

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/treedepth/elimtree"
)

// Decomposition is one candidate elimination order and its derived parent
// array and depth.
type Decomposition struct {
	Order  []int32
	Parent []int32
	Depth  int
}

// Best holds the current best Decomposition across workers. Depth is kept
// in a separate atomic so readers can cheaply check "is there any point
// trying to beat this" without touching the mutex; the pointer swap itself
// is always guarded by mu, which re-checks depth under the lock before
// committing (the check-then-swap matching core's own mutex-guarded
// mutation methods, generalized from single-field updates to a whole
// struct swap).
type Best struct {
	mu    sync.Mutex
	value atomic.Pointer[Decomposition]
	depth atomic.Int64
}

// NewBest returns an empty Best with no decomposition recorded yet.
func NewBest() *Best {
	b := &Best{}
	b.depth.Store(int64(noDecompositionDepth))
	return b
}

// noDecompositionDepth is stored in depth before any candidate has been
// recorded; it is larger than any real tree depth a caller would pass.
const noDecompositionDepth = 1<<62 - 1

// Depth returns the current best known depth, or noDecompositionDepth's
// sentinel value if nothing has been recorded yet.
func (b *Best) Depth() int {
	return int(b.depth.Load())
}

// Get returns the current best Decomposition, or nil if none has been
// recorded yet. The returned value must be treated as read-only.
func (b *Best) Get() *Decomposition {
	return b.value.Load()
}

// TryImprove offers a candidate. It is only committed if its depth is
// strictly smaller than the current best, checked again inside the
// critical section to guard against a race between the caller's own
// read of Depth() and the swap (two workers both seeing room to improve,
// only the first should actually win).
func (b *Best) TryImprove(candidate *Decomposition) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if int64(candidate.Depth) >= b.depth.Load() {
		return false
	}
	b.depth.Store(int64(candidate.Depth))
	b.value.Store(candidate)
	return true
}

// newDecomposition builds a Decomposition from an elimination order and
// its already-computed parent array.
func newDecomposition(order, parent []int32) *Decomposition {
	return &Decomposition{Order: order, Parent: parent, Depth: elimtree.Depth(parent)}
}
