package bpe

import "container/heap"

// Word is the in-place representation of a sequence of symbols used while
// greedily applying BPE merges. It is a doubly-linked list over dense
// arrays: every symbol keeps stable prev/next indices so that the merge
// priority queue can reference positions without them moving, and removed
// symbols are tombstoned (byte length zeroed, unlinked) rather than
// deleted from the backing slices.
//
// A Word is a transient, per-sequence structure; it is not safe for
// concurrent mutation, but once merging is finished it is treated as a
// read-only value suitable for storing in the Cache.
type Word struct {
	ids      []uint32
	byteLens []int
	prev     []int
	next     []int
	gen      []int
	live     []bool
	head     int
}

const noIndex = -1

// NewWord allocates a Word with room for up to n symbols without further
// reallocation.
func NewWord(n int) *Word {
	return &Word{
		ids:      make([]uint32, 0, n),
		byteLens: make([]int, 0, n),
		prev:     make([]int, 0, n),
		next:     make([]int, 0, n),
		gen:      make([]int, 0, n),
		live:     make([]bool, 0, n),
		head:     noIndex,
	}
}

// Add appends a new live symbol at the tail of the word.
func (w *Word) Add(id uint32, byteLen int) {
	idx := len(w.ids)
	tail := noIndex
	if idx > 0 {
		tail = idx - 1
		// tail may itself have been superseded by nothing yet -- Add is
		// only ever called during construction, before any merges occur,
		// so the previously appended slot is always the current tail.
	}

	w.ids = append(w.ids, id)
	w.byteLens = append(w.byteLens, byteLen)
	w.prev = append(w.prev, tail)
	w.next = append(w.next, noIndex)
	w.gen = append(w.gen, 0)
	w.live = append(w.live, true)

	if tail != noIndex {
		w.next[tail] = idx
	}
	if w.head == noIndex {
		w.head = idx
	}
}

// Len returns the number of live symbols.
func (w *Word) Len() int {
	n := 0
	for i := w.head; i != noIndex; i = w.next[i] {
		n++
	}
	return n
}

// pushCandidate evaluates the pair (i, next(i)) against merges and, if a
// merge rule applies, pushes it onto the queue tagged with the current
// generation of both slots.
func (w *Word) pushCandidate(h *mergeHeap, merges MergeMap, i int) {
	if i == noIndex {
		return
	}
	j := w.next[i]
	if j == noIndex {
		return
	}
	pair := Pair{A: w.ids[i], B: w.ids[j]}
	mr, ok := merges[pair]
	if !ok {
		return
	}
	heap.Push(h, mergeCandidate{
		rank:     mr.Rank,
		pos:      i,
		leftID:   w.ids[i],
		rightID:  w.ids[j],
		newID:    mr.NewID,
		leftGen:  w.gen[i],
		rightGen: w.gen[j],
	})
}

// mergeAll performs greedy pair merging: a priority queue of candidate
// merges is repeatedly popped, stale entries (invalidated by an earlier
// merge) are discarded, and dropout optionally skips an otherwise-valid
// merge without re-enqueuing it.
//
// dropout nil or pointing at 0.0 must behave identically to no dropout at
// all; dropout pointing at 1.0 must apply no merges whatsoever.
func (w *Word) mergeAll(merges MergeMap, dropout *float64, rng *dropoutRNG) {
	if len(w.ids) < 2 {
		return
	}

	h := &mergeHeap{}
	heap.Init(h)
	for i := w.head; i != noIndex; i = w.next[i] {
		w.pushCandidate(h, merges, i)
	}

	for h.Len() > 0 {
		c := heap.Pop(h).(mergeCandidate)
		i := c.pos
		if !w.live[i] {
			continue
		}
		j := w.next[i]
		if j == noIndex || !w.live[j] {
			continue
		}
		if w.gen[i] != c.leftGen || w.gen[j] != c.rightGen {
			continue
		}
		if w.ids[i] != c.leftID || w.ids[j] != c.rightID {
			continue
		}

		if dropout != nil && rng.Float64() < *dropout {
			continue
		}

		// Apply the merge: absorb j into i, then unlink and tombstone j.
		w.ids[i] = c.newID
		w.byteLens[i] += w.byteLens[j]
		w.gen[i]++

		nj := w.next[j]
		w.next[i] = nj
		if nj != noIndex {
			w.prev[nj] = i
		}

		w.live[j] = false
		w.byteLens[j] = 0
		w.prev[j] = noIndex
		w.next[j] = noIndex
		w.gen[j]++

		if pi := w.prev[i]; pi != noIndex {
			w.pushCandidate(h, merges, pi)
		}
		w.pushCandidate(h, merges, i)
	}
}

// CharsIter returns the ids of the live symbols in order.
func (w *Word) CharsIter() []uint32 {
	out := make([]uint32, 0, len(w.ids))
	for i := w.head; i != noIndex; i = w.next[i] {
		out = append(out, w.ids[i])
	}
	return out
}

// OffsetsIter returns the byte offsets of the live symbols in order; the
// start of each is the running sum of preceding live symbols' byte
// lengths, and the end is that plus the symbol's own byte length.
func (w *Word) OffsetsIter() []Offsets {
	out := make([]Offsets, 0, len(w.ids))
	start := 0
	for i := w.head; i != noIndex; i = w.next[i] {
		end := start + w.byteLens[i]
		out = append(out, Offsets{Start: start, End: end})
		start = end
	}
	return out
}
