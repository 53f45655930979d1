package bpe

// Pair is an ordered pair of token ids, the key into a MergeMap.
type Pair struct {
	A uint32
	B uint32
}

// MergeRank is the value a Pair maps to: the priority of the merge (lower
// applies first) and the vocab id of the concatenated token it produces.
type MergeRank struct {
	Rank  uint32
	NewID uint32
}

// MergeMap maps adjacent token-id pairs to the rank and resulting token id
// of the merge rule that applies to them.
type MergeMap map[Pair]MergeRank
