package noisegen

import (
	crand "crypto/rand"
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"strconv"
	"time"
)

// Rand is the engine's random source. A seeded Rand produces a bit-identical
// sequence across runs and platforms (math/rand's generator is covered by the
// Go 1 compatibility promise), which is what makes seeded profiles reproducible.
//
// Rand is not safe for concurrent use; every playback owns its own instance.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a random source from a profile seed. An empty seed yields a
// source seeded from OS entropy, so two unseeded sources produce different
// sequences.
//
// Seed normalization: a seed string that parses as a decimal integer seeds the
// generator with that integer directly, so the string seed "42" and the integer
// seed 42 (via NewRandInt) are equivalent. Any other string is folded through
// FNV-1a into the same int64 state space.
func NewRand(seed string) *Rand {
	if seed == "" {
		return &Rand{rng: rand.New(rand.NewSource(entropySeed()))}
	}
	return &Rand{rng: rand.New(rand.NewSource(normalizeSeed(seed)))}
}

// NewRandInt creates a random source from an integer seed.
func NewRandInt(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns the next sample, uniformly distributed in [-1, 1).
func (r *Rand) Uniform() float64 {
	return r.rng.Float64()*2 - 1
}

func normalizeSeed(seed string) int64 {
	if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
		return n
	}
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing is close to impossible; the clock still keeps
		// unseeded sources distinct across constructions.
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
