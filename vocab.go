package bpe

// Vocab maps a token string to its dense-but-not-necessarily-contiguous id.
type Vocab map[string]uint32

// InverseVocab maps an id back to its token string. For every (s, i) in a
// Vocab, the corresponding InverseVocab must satisfy InverseVocab[i] == s.
type InverseVocab map[uint32]string

// Merges is the ordered list of (a, b) token-string pairs read from a
// merges file or supplied to a Builder; earlier entries have lower (higher
// priority) rank.
type Merges [][2]string

func invertVocab(vocab Vocab) InverseVocab {
	inv := make(InverseVocab, len(vocab))
	for token, id := range vocab {
		inv[id] = token
	}
	return inv
}
