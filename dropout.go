package bpe

import (
	"math/rand/v2"
	"sync"
)

// dropoutRNG is a concurrency-safe source of uniform [0,1) samples used to
// perturb merge selection. dropout > 0 is intentionally non-deterministic
// by default, but a Builder.Seed call pins the source for reproducible
// tests.
type dropoutRNG struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newDropoutRNG(seed *uint64) *dropoutRNG {
	var rnd *rand.Rand
	if seed != nil {
		rnd = rand.New(rand.NewPCG(*seed, *seed))
	} else {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &dropoutRNG{rnd: rnd}
}

// Float64 returns a uniform sample in [0, 1).
func (d *dropoutRNG) Float64() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rnd.Float64()
}
