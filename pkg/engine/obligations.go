package engine

import (
	"container/heap"

	"github.com/sirandreww/ic3pdr/pkg/formula"
)

// obligation is a proof obligation: block cube at frame (spec.md §3
// "Proof obligations").
type obligation struct {
	cube  formula.Cube
	frame int
}

// obligationQueue is the min-heap of §4.6.4, keyed by frame index
// ascending, shared by both the IC3 (§4.6.5) and PDR (§4.6.6) flavors.
type obligationQueue struct {
	items obligationHeap
}

func newObligationQueue() *obligationQueue {
	return &obligationQueue{}
}

func (q *obligationQueue) push(o obligation) {
	heap.Push(&q.items, o)
}

// pop removes and returns the obligation with the smallest frame index.
func (q *obligationQueue) pop() obligation {
	return heap.Pop(&q.items).(obligation)
}

func (q *obligationQueue) empty() bool {
	return len(q.items) == 0
}

type obligationHeap []obligation

func (h obligationHeap) Len() int            { return len(h) }
func (h obligationHeap) Less(i, j int) bool  { return h[i].frame < h[j].frame }
func (h obligationHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *obligationHeap) Push(x interface{}) { *h = append(*h, x.(obligation)) }
func (h *obligationHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
