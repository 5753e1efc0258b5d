package market

import "container/heap"

type maxHeap []int64

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(int64)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

type minHeap []int64

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(int64)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// MedianTracker is a two-heap running median over the trade prices of the
// current timestamp: lower half in a max-heap, upper half in a min-heap,
// sizes kept within one of each other with the lower half holding the extra.
// It is reset at every timestamp boundary; it never spans intervals.
type MedianTracker struct {
	lower maxHeap
	upper minHeap
}

func NewMedianTracker() *MedianTracker {
	m := &MedianTracker{}
	heap.Init(&m.lower)
	heap.Init(&m.upper)
	return m
}

func (m *MedianTracker) Insert(price int64) {
	if len(m.lower) == 0 || price < m.lower[0] {
		heap.Push(&m.lower, price)
	} else {
		heap.Push(&m.upper, price)
	}
	m.rebalance()
}

func (m *MedianTracker) rebalance() {
	for len(m.lower) > len(m.upper)+1 {
		heap.Push(&m.upper, heap.Pop(&m.lower))
	}
	for len(m.upper) > len(m.lower)+1 {
		heap.Push(&m.lower, heap.Pop(&m.upper))
	}
}

// Median returns the median of the prices inserted since the last Reset.
// An even count averages the two middle prices with the fraction truncated
// (prices are positive, so truncation is a floor). ok is false when no
// trades happened this interval. Repeated calls without intervening inserts
// return the same value.
func (m *MedianTracker) Median() (price int64, ok bool) {
	switch {
	case len(m.lower) == 0 && len(m.upper) == 0:
		return 0, false
	case len(m.lower) > len(m.upper):
		return m.lower[0], true
	case len(m.upper) > len(m.lower):
		return m.upper[0], true
	default:
		return (m.lower[0] + m.upper[0]) / 2, true
	}
}

func (m *MedianTracker) Reset() {
	m.lower = m.lower[:0]
	m.upper = m.upper[:0]
}
