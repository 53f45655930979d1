package bpe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ReadFiles reads a vocab.json file and a merges.txt file into a Vocab and
// Merges pair.
func ReadFiles(vocabPath, mergesPath string) (Vocab, Merges, error) {
	vocabData, err := os.ReadFile(vocabPath)
	if err != nil {
		return nil, nil, err
	}
	vocab, err := parseVocabJSON(vocabData)
	if err != nil {
		return nil, nil, err
	}

	mergesData, err := os.ReadFile(mergesPath)
	if err != nil {
		return nil, nil, err
	}
	merges, err := parseMerges(string(mergesData))
	if err != nil {
		return nil, nil, err
	}

	return vocab, merges, nil
}

// parseVocabJSON decodes a vocab.json object of token -> non-negative
// integer id. Anything else -- a top-level array/scalar, or a non-integer
// value -- is ErrBadVocabulary.
func parseVocabJSON(data []byte) (Vocab, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]json.Number
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadVocabulary, err)
	}

	vocab := make(Vocab, len(raw))
	for token, num := range raw {
		n, err := num.Int64()
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: token %q has a non-integer id", ErrBadVocabulary, token)
		}
		vocab[token] = uint32(n)
	}
	return vocab, nil
}

// parseMerges parses merges.txt content. The first non-empty line is
// dropped if it starts with "#version"; every other non-empty line must
// split into exactly two whitespace-separated tokens. Line numbers in
// BadMergesError are 1-based and counted after blank lines and the version
// header are filtered out.
func parseMerges(data string) (Merges, error) {
	var merges Merges
	lineNo := 0
	seenFirstNonEmpty := false

	for _, raw := range strings.Split(data, "\n") {
		line := strings.TrimRight(raw, "\r")
		if line == "" {
			continue
		}
		if !seenFirstNonEmpty {
			seenFirstNonEmpty = true
			if strings.HasPrefix(line, "#version") {
				continue
			}
		}

		lineNo++
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, &BadMergesError{Line: lineNo}
		}
		merges = append(merges, [2]string{parts[0], parts[1]})
	}
	return merges, nil
}

// Save writes a Model's vocab and merges to folder, using name as a file
// prefix if given (nil means "vocab.json"/"merges.txt" with no prefix). It
// returns the paths written.
func Save(m *Model, folder string, name *string) ([]string, error) {
	vocabFile, mergesFile := "vocab.json", "merges.txt"
	if name != nil {
		vocabFile = *name + "-vocab.json"
		mergesFile = *name + "-merges.txt"
	}

	vocabPath := filepath.Join(folder, vocabFile)
	if err := os.WriteFile(vocabPath, orderedVocabJSON(m.vocabR), 0o644); err != nil {
		return nil, err
	}

	mergesPath := filepath.Join(folder, mergesFile)
	if err := os.WriteFile(mergesPath, mergesText(m.merges, m.vocabR), 0o644); err != nil {
		return nil, err
	}

	return []string{vocabPath, mergesPath}, nil
}

// orderedVocabIter walks an InverseVocab in ascending id order: the
// canonical, diff-friendly ordering used when serializing vocab.json. A
// plain map iteration would be randomized by Go's map implementation, so
// this exists as its own step rather than being inlined at the call site,
// matching the Rust original's dedicated OrderedVocabIter adapter.
func orderedVocabIter(inv InverseVocab) []uint32 {
	ids := make([]uint32, 0, len(inv))
	for id := range inv {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func orderedVocabJSON(inv InverseVocab) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range orderedVocabIter(inv) {
		if i > 0 {
			buf.WriteByte(',')
		}
		tokenJSON, _ := json.Marshal(inv[id])
		buf.Write(tokenJSON)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", id)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func mergesText(merges MergeMap, inv InverseVocab) []byte {
	type ranked struct {
		rank uint32
		pair Pair
	}
	ordered := make([]ranked, 0, len(merges))
	for pair, mr := range merges {
		ordered = append(ordered, ranked{rank: mr.Rank, pair: pair})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].rank < ordered[j].rank })

	var buf bytes.Buffer
	buf.WriteString("#version: 0.2\n")
	for _, r := range ordered {
		fmt.Fprintf(&buf, "%s %s\n", inv[r.pair.A], inv[r.pair.B])
	}
	return buf.Bytes()
}
