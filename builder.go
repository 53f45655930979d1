package bpe

// Builder constructs a Model with a validated configuration. It mirrors
// the Rust original's BpeBuilder: a sequence of chained setters followed
// by Build(), which validates dropout range and merge/vocab consistency
// before producing a read-only Model.
type Builder struct {
	vocabPath  string
	mergesPath string
	hasFiles   bool

	vocab  Vocab
	merges Merges

	cacheCapacity int
	dropout       *float64
	seed          *uint64

	unkToken                string
	hasUnkToken              bool
	continuingSubwordPrefix string
	hasContinuingPrefix      bool
	endOfWordSuffix          string
	hasEndOfWordSuffix       bool

	fuseUnk      bool
	byteFallback bool
	ignoreMerges bool

	trainer TrainerConfig
}

// NewBuilder returns a Builder with sensible defaults: no dropout, no unk
// token, fuse_unk/byte_fallback/ignore_merges false, and
// DefaultCacheCapacity for the cache.
func NewBuilder() *Builder {
	return &Builder{
		vocab:         Vocab{},
		cacheCapacity: DefaultCacheCapacity,
		trainer:       DefaultTrainerConfig(),
	}
}

// Option configures a Builder. Mirrors the teacher's functional-options
// pattern, retargeted from a flat config struct onto the Builder.
type Option func(*Builder) error

// New builds a Model directly from a set of Options, for callers who
// prefer functional options to the chained Builder API.
func New(opts ...Option) (*Model, error) {
	b := NewBuilder()
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// WithFiles loads vocab and merges from disk.
func WithFiles(vocabPath, mergesPath string) Option {
	return func(b *Builder) error {
		b.Files(vocabPath, mergesPath)
		return nil
	}
}

// WithVocabAndMerges sets the vocab and merges directly.
func WithVocabAndMerges(vocab Vocab, merges Merges) Option {
	return func(b *Builder) error {
		b.VocabAndMerges(vocab, merges)
		return nil
	}
}

// WithCacheCapacity sets the cache capacity (0 disables caching).
func WithCacheCapacity(capacity int) Option {
	return func(b *Builder) error {
		if capacity < 0 {
			return newConfigError("cache_capacity", capacity, ErrInvalidCacheCapacity)
		}
		b.CacheCapacity(capacity)
		return nil
	}
}

// WithDropout sets the dropout probability.
func WithDropout(p float64) Option {
	return func(b *Builder) error {
		b.Dropout(p)
		return nil
	}
}

// WithUnkToken sets the unk token.
func WithUnkToken(token string) Option {
	return func(b *Builder) error {
		b.UnkToken(token)
		return nil
	}
}

// WithContinuingSubwordPrefix sets the continuing-subword prefix.
func WithContinuingSubwordPrefix(prefix string) Option {
	return func(b *Builder) error {
		b.ContinuingSubwordPrefix(prefix)
		return nil
	}
}

// WithEndOfWordSuffix sets the end-of-word suffix.
func WithEndOfWordSuffix(suffix string) Option {
	return func(b *Builder) error {
		b.EndOfWordSuffix(suffix)
		return nil
	}
}

// WithFuseUnk enables or disables UNK fusion.
func WithFuseUnk(fuse bool) Option {
	return func(b *Builder) error {
		b.FuseUnk(fuse)
		return nil
	}
}

// WithByteFallback enables or disables byte fallback.
func WithByteFallback(enabled bool) Option {
	return func(b *Builder) error {
		b.ByteFallback(enabled)
		return nil
	}
}

// WithIgnoreMerges enables or disables the ignore_merges shortcut.
func WithIgnoreMerges(enabled bool) Option {
	return func(b *Builder) error {
		b.IgnoreMerges(enabled)
		return nil
	}
}

// WithSeed pins the dropout RNG for reproducible tests.
func WithSeed(seed uint64) Option {
	return func(b *Builder) error {
		b.Seed(seed)
		return nil
	}
}

// Files sets the vocab.json / merges.txt paths Build will read.
func (b *Builder) Files(vocabPath, mergesPath string) *Builder {
	b.vocabPath, b.mergesPath, b.hasFiles = vocabPath, mergesPath, true
	return b
}

// VocabAndMerges sets the vocab and merges directly, bypassing file I/O.
func (b *Builder) VocabAndMerges(vocab Vocab, merges Merges) *Builder {
	b.vocab, b.merges = vocab, merges
	return b
}

// CacheCapacity sets the cache's capacity. 0 disables caching.
func (b *Builder) CacheCapacity(capacity int) *Builder {
	b.cacheCapacity = capacity
	return b
}

// Dropout sets the merge dropout probability. Build validates it lies in
// [0.0, 1.0].
func (b *Builder) Dropout(p float64) *Builder {
	b.dropout = &p
	return b
}

// Seed pins the dropout RNG's seed.
func (b *Builder) Seed(seed uint64) *Builder {
	b.seed = &seed
	return b
}

// UnkToken sets the token emitted for out-of-vocabulary characters.
func (b *Builder) UnkToken(token string) *Builder {
	b.unkToken, b.hasUnkToken = token, true
	return b
}

// ContinuingSubwordPrefix sets the prefix applied to non-initial subwords.
func (b *Builder) ContinuingSubwordPrefix(prefix string) *Builder {
	b.continuingSubwordPrefix, b.hasContinuingPrefix = prefix, true
	return b
}

// EndOfWordSuffix sets the suffix applied to the final subword of a word.
func (b *Builder) EndOfWordSuffix(suffix string) *Builder {
	b.endOfWordSuffix, b.hasEndOfWordSuffix = suffix, true
	return b
}

// FuseUnk sets whether adjacent UNK emissions coalesce into one token.
func (b *Builder) FuseUnk(fuse bool) *Builder {
	b.fuseUnk = fuse
	return b
}

// ByteFallback sets whether out-of-vocabulary bytes fall back to <0xNN>
// tokens instead of (or before) UNK.
func (b *Builder) ByteFallback(enabled bool) *Builder {
	b.byteFallback = enabled
	return b
}

// IgnoreMerges sets whether a whole-sequence vocab hit bypasses merging.
func (b *Builder) IgnoreMerges(enabled bool) *Builder {
	b.ignoreMerges = enabled
	return b
}

// Trainer overrides the TrainerConfig Model.GetTrainer will return.
func (b *Builder) Trainer(t TrainerConfig) *Builder {
	b.trainer = t
	return b
}

// Build validates the configuration and produces a read-only Model.
//
// Validation:
//   - dropout, if set, must lie in [0.0, 1.0]
//   - every merge (a, b) at rank r must have a, b, and a+b[prefixLen:] all
//     present in the vocab
func (b *Builder) Build() (*Model, error) {
	if b.dropout != nil && (*b.dropout < 0.0 || *b.dropout > 1.0) {
		return nil, ErrInvalidDropout
	}

	vocab := b.vocab
	merges := b.merges
	if b.hasFiles {
		v, m, err := ReadFiles(b.vocabPath, b.mergesPath)
		if err != nil {
			return nil, err
		}
		vocab, merges = v, m
	}
	if vocab == nil {
		vocab = Vocab{}
	}

	prefixLen := 0
	if b.hasContinuingPrefix {
		prefixLen = len(b.continuingSubwordPrefix)
	}

	mergeMap := make(MergeMap, len(merges))
	for rank, pair := range merges {
		a, b2 := pair[0], pair[1]
		aID, ok := vocab[a]
		if !ok {
			return nil, &MergeTokenError{Token: a}
		}
		bID, ok := vocab[b2]
		if !ok {
			return nil, &MergeTokenError{Token: b2}
		}
		if prefixLen > len(b2) {
			return nil, &MergeTokenError{Token: b2}
		}
		newToken := a + b2[prefixLen:]
		newID, ok := vocab[newToken]
		if !ok {
			return nil, &MergeTokenError{Token: newToken}
		}
		mergeMap[Pair{A: aID, B: bID}] = MergeRank{Rank: uint32(rank), NewID: newID}
	}

	var cache *Cache
	if b.cacheCapacity > 0 {
		cache = NewCache(b.cacheCapacity)
	}

	m := &Model{
		vocab:                   vocab,
		vocabR:                  invertVocab(vocab),
		merges:                  mergeMap,
		cache:                   cache,
		rng:                     newDropoutRNG(b.seed),
		trainer:                 b.trainer,
		dropout:                 b.dropout,
		unkToken:                b.unkToken,
		hasUnkToken:             b.hasUnkToken,
		continuingSubwordPrefix: b.continuingSubwordPrefix,
		hasContinuingPrefix:     b.hasContinuingPrefix,
		endOfWordSuffix:         b.endOfWordSuffix,
		hasEndOfWordSuffix:      b.hasEndOfWordSuffix,
		fuseUnk:                 b.fuseUnk,
		byteFallback:            b.byteFallback,
		ignoreMerges:            b.ignoreMerges,
	}
	return m, nil
}
