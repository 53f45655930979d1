package bpe

import "container/heap"

// mergeCandidate is one entry in the merge priority queue: a proposed merge
// of the symbol at index pos with its (then-current) right neighbor.
//
// leftID/rightID and leftGen/rightGen pin down exactly which symbols and
// which "generation" of those slots this candidate was computed against.
// A merge earlier in the queue can mutate slot pos or its neighbor before
// this entry is popped, so every pop re-validates against the live word
// rather than trusting the cached priority — see Word.mergeAll.
type mergeCandidate struct {
	rank     uint32
	pos      int
	leftID   uint32
	rightID  uint32
	newID    uint32
	leftGen  int
	rightGen int
}

// mergeHeap is a container/heap min-heap ordered by (rank, pos): lower rank
// wins, and among equal ranks the leftmost position wins, giving
// deterministic "earlier position wins" tie-breaking.
type mergeHeap []mergeCandidate

func (h mergeHeap) Len() int { return len(h) }

func (h mergeHeap) Less(i, j int) bool {
	if h[i].rank != h[j].rank {
		return h[i].rank < h[j].rank
	}
	return h[i].pos < h[j].pos
}

func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x any) {
	*h = append(*h, x.(mergeCandidate))
}

func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

var _ heap.Interface = (*mergeHeap)(nil)
