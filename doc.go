// Package bpe implements a Byte Pair Encoding subword tokenizer model:
// given a learned vocabulary (token -> id) and an ordered list of pair
// merges, it converts a UTF-8 input string into a sequence of subword
// tokens, each carrying its integer id and the byte span it occupies in
// the original input.
//
// # Overview
//
// Tokenizing a sequence has three stages:
//
//  1. Decoration: the sequence is split on Unicode character boundaries,
//     and continuing_subword_prefix / end_of_word_suffix are applied to
//     non-initial / final characters respectively.
//  2. Resolution: each decorated character is resolved against the vocab,
//     falling back to per-byte <0xNN> tokens (byte_fallback) and then to a
//     possibly-fused UNK token if neither succeeds.
//  3. Merging: the resulting Word is repeatedly merged greedily according
//     to the model's merge-rank table, optionally perturbed by dropout.
//
// # Architecture
//
//	┌──────────────┐
//	│ Input string │
//	└──────┬───────┘
//	       ▼
//	┌──────────────────┐     ┌───────────────────┐
//	│ Character         │───▶│ Vocab resolution / │
//	│ decoration         │     │ byte fallback / UNK│
//	└──────────────────┘     └─────────┬──────────┘
//	                                    ▼
//	                           ┌─────────────────┐
//	                           │ Word (linked     │
//	                           │ symbol array)    │
//	                           └────────┬─────────┘
//	                                    ▼
//	                           ┌─────────────────┐
//	                           │ Greedy merge      │
//	                           │ (priority queue)  │
//	                           └────────┬─────────┘
//	                                    ▼
//	                           ┌─────────────────┐
//	                           │ []Token           │
//	                           └─────────────────┘
//
// # Basic usage
//
//	model, err := bpe.NewBuilder().
//		Files("vocab.json", "merges.txt").
//		UnkToken("<unk>").
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	tokens, err := model.Tokenize("hello world")
//
// # Caching
//
// Tokenize results for inputs shorter than MaxLength are memoized in a
// bounded, concurrency-safe Cache keyed by the input string. Dropout
// bypasses the cache entirely, since memoizing a randomized result would
// be incorrect.
//
// # Thread safety
//
// A Model is read-only after Builder.Build, aside from its internal
// Cache, and is safe for concurrent Tokenize calls from many goroutines.
//
// # Out of scope
//
// Trainers, language bindings, normalization, pre-tokenization, decoders,
// and post-processors are external collaborators this package does not
// implement.
package bpe
