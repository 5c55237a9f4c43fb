package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/search"
)

func TestBest_EmptyInitially(t *testing.T) {
	b := search.NewBest()
	assert.Nil(t, b.Get())
}

func TestBest_TryImprove_AcceptsStrictlySmaller(t *testing.T) {
	b := search.NewBest()

	first := &search.Decomposition{Order: []int32{0, 1, 2}, Depth: 3}
	require.True(t, b.TryImprove(first))
	assert.Equal(t, 3, b.Depth())

	worse := &search.Decomposition{Order: []int32{0, 1, 2}, Depth: 4}
	assert.False(t, b.TryImprove(worse))
	assert.Equal(t, 3, b.Depth())

	same := &search.Decomposition{Order: []int32{0, 1, 2}, Depth: 3}
	assert.False(t, b.TryImprove(same))

	better := &search.Decomposition{Order: []int32{0, 1, 2}, Depth: 2}
	require.True(t, b.TryImprove(better))
	assert.Equal(t, 2, b.Depth())
	assert.Same(t, better, b.Get())
}

func TestBest_TryImprove_ConcurrentOnlySmallestWins(t *testing.T) {
	b := search.NewBest()
	done := make(chan struct{})
	for depth := 10; depth > 0; depth-- {
		depth := depth
		go func() {
			b.TryImprove(&search.Decomposition{Depth: depth})
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
	assert.Equal(t, 1, b.Depth())
}
