package bpe

import "testing"

func buildWord(t *testing.T, letters string) *Word {
	t.Helper()
	w := NewWord(len(letters))
	for i := 0; i < len(letters); i++ {
		w.Add(uint32(letters[i]), 1)
	}
	return w
}

func TestWordAddAndLen(t *testing.T) {
	w := buildWord(t, "abc")
	if w.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", w.Len())
	}
	if got := w.CharsIter(); len(got) != 3 {
		t.Fatalf("CharsIter() = %v, want 3 entries", got)
	}
}

func TestWordMergeAllSinglePass(t *testing.T) {
	// a=97, b=98, c=99; merge (a,b) -> 1000, then (1000,c) -> 2000.
	w := buildWord(t, "abc")
	merges := MergeMap{
		Pair{A: 97, B: 98}:   MergeRank{Rank: 0, NewID: 1000},
		Pair{A: 1000, B: 99}: MergeRank{Rank: 1, NewID: 2000},
	}
	w.mergeAll(merges, nil, newDropoutRNG(nil))

	ids := w.CharsIter()
	if len(ids) != 1 || ids[0] != 2000 {
		t.Fatalf("CharsIter() = %v, want [2000]", ids)
	}
	offsets := w.OffsetsIter()
	if len(offsets) != 1 || offsets[0] != (Offsets{0, 3}) {
		t.Fatalf("OffsetsIter() = %v, want [{0 3}]", offsets)
	}
}

func TestWordMergeAllNoApplicableMerges(t *testing.T) {
	w := buildWord(t, "xyz")
	merges := MergeMap{Pair{A: 1, B: 2}: MergeRank{Rank: 0, NewID: 99}}
	w.mergeAll(merges, nil, newDropoutRNG(nil))

	if w.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (no merges should apply)", w.Len())
	}
}

func TestWordMergeAllRankOrderWinsOverPosition(t *testing.T) {
	// a b c d, with a rank-0 merge available at position 1 (b,c) and an
	// overlapping rank-1 merge at position 0 (a,b). The lower rank must win
	// even though it sits to the right, consuming b so (a,b) never applies.
	w := buildWord(t, "abcd")
	merges := MergeMap{
		Pair{A: 'a', B: 'b'}: MergeRank{Rank: 1, NewID: 1001},
		Pair{A: 'b', B: 'c'}: MergeRank{Rank: 0, NewID: 1000},
	}
	w.mergeAll(merges, nil, newDropoutRNG(nil))

	ids := w.CharsIter()
	want := []uint32{uint32('a'), 1000, uint32('d')}
	if len(ids) != len(want) {
		t.Fatalf("CharsIter() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("CharsIter() = %v, want %v", ids, want)
		}
	}
}

func TestWordMergeAllStaleCandidateDiscarded(t *testing.T) {
	// a b c: merging (a,b) first must invalidate any stale queued candidate
	// that assumed b was still adjacent to c in its original identity.
	w := buildWord(t, "abc")
	merges := MergeMap{
		Pair{A: 'a', B: 'b'}: MergeRank{Rank: 0, NewID: 500},
		Pair{A: 'b', B: 'c'}: MergeRank{Rank: 1, NewID: 600},
	}
	w.mergeAll(merges, nil, newDropoutRNG(nil))

	ids := w.CharsIter()
	if len(ids) != 2 || ids[0] != 500 || ids[1] != uint32('c') {
		t.Fatalf("CharsIter() = %v, want [500 c]", ids)
	}
}

func TestWordMergeAllDropoutOneSkipsEverything(t *testing.T) {
	w := buildWord(t, "abc")
	merges := MergeMap{
		Pair{A: 'a', B: 'b'}: MergeRank{Rank: 0, NewID: 500},
		Pair{A: 'b', B: 'c'}: MergeRank{Rank: 1, NewID: 600},
	}
	full := 1.0
	w.mergeAll(merges, &full, newDropoutRNG(nil))

	if w.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (dropout=1.0 disables all merges)", w.Len())
	}
}

func TestWordLenOnEmptyWord(t *testing.T) {
	w := NewWord(0)
	if w.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", w.Len())
	}
	if got := w.CharsIter(); len(got) != 0 {
		t.Fatalf("CharsIter() = %v, want empty", got)
	}
}
