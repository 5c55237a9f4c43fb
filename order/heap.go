package order

import "container/heap"

// heapEntry is one node's slot in the indexed priority queue. index tracks
// its current position in the backing slice so push_or_set_key can locate
// and fix it in O(log n) instead of doing a lazy re-push.
type heapEntry struct {
	id    int32
	key   int32
	index int
}

// nodeHeap is a container/heap.Interface over *heapEntry, ordered by key
// ascending. It keeps each entry's index up to date on every swap, the
// same bookkeeping container/heap's own documentation example uses for a
// priority queue that supports updating an item already in the heap.
type nodeHeap []*heapEntry

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x interface{}) {
	e := x.(*heapEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// priorityQueue is the push / pop-min / push_or_set_key priority queue
// required by the greedy degree orderer (spec: "Priority queue contract").
// entries[id] is nil when id is not currently in the queue.
type priorityQueue struct {
	h       nodeHeap
	entries []*heapEntry
}

func newPriorityQueue(n int) *priorityQueue {
	return &priorityQueue{
		h:       make(nodeHeap, 0, n),
		entries: make([]*heapEntry, n),
	}
}

func (q *priorityQueue) push(id, key int32) {
	e := &heapEntry{id: id, key: key}
	q.entries[id] = e
	heap.Push(&q.h, e)
}

// pushOrSetKey inserts id with key if absent, or updates its key and
// restores the heap invariant if already present. Idempotent.
func (q *priorityQueue) pushOrSetKey(id, key int32) {
	if e := q.entries[id]; e != nil {
		e.key = key
		heap.Fix(&q.h, e.index)
		return
	}
	q.push(id, key)
}

func (q *priorityQueue) empty() bool { return q.h.Len() == 0 }

// popMin removes and returns the id with smallest key.
func (q *priorityQueue) popMin() int32 {
	e := heap.Pop(&q.h).(*heapEntry)
	q.entries[e.id] = nil
	return e.id
}
