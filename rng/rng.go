package rng

import (
	crand "crypto/rand"
	"encoding/binary"

	"golang.org/x/exp/rand"
)

// Source is a deterministic random source. It is not safe for concurrent
// use; a generation run owns exactly one Source.
type Source struct {
	seed  int32
	r     *rand.Rand
	draws int
}

// New returns a Source seeded with seed.
// Complexity: O(1).
func New(seed int32) *Source {
	// uint32 conversion keeps negative seeds distinct from their positive twins.
	src := rand.NewSource(uint64(uint32(seed)))

	return &Source{seed: seed, r: rand.New(src)}
}

// NewSeed returns a non-deterministic 32-bit seed read from crypto/rand.
// If the system entropy source fails, it falls back to a fixed seed of 1.
func NewSeed() int32 {
	var buf [4]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 1
	}

	return int32(binary.LittleEndian.Uint32(buf[:]))
}

// Seed reports the seed the Source was created with.
func (s *Source) Seed() int32 { return s.seed }

// Draws reports how many values have been drawn so far.
func (s *Source) Draws() int { return s.draws }

// Intn returns a value in [0,n). n <= 0 returns 0 without consuming a draw.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.draws++

	return s.r.Intn(n)
}

// Range returns a value in the half-open interval [lo,hi).
// When hi <= lo it returns lo without consuming a draw.
func (s *Source) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + s.Intn(hi-lo)
}

// Float64 returns a value in [0,1).
func (s *Source) Float64() float64 {
	s.draws++

	return s.r.Float64()
}

// Chance reports whether a single draw falls below p.
// p <= 0 is always false, p >= 1 always true; both still consume a draw
// so the sequence does not depend on the probability value.
func (s *Source) Chance(p float64) bool {
	return s.Float64() < p
}

// Coin is an unbiased coin flip.
func (s *Source) Coin() bool {
	return s.Float64() < 0.5
}

// Jitter returns a value in [-max,max). max <= 0 still consumes a draw and
// returns 0.
func (s *Source) Jitter(max float64) float64 {
	v := s.Float64()
	if max <= 0 {
		return 0
	}

	return (v*2 - 1) * max
}

// Shuffle permutes n elements using swap (Fisher–Yates, front to back).
// Each position i < n-1 consumes exactly one draw.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n-1; i++ {
		j := s.Range(i, n)
		if j != i {
			swap(i, j)
		}
	}
}

// ShuffleSlice permutes xs in place.
func ShuffleSlice[T any](s *Source, xs []T) {
	s.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
}

// Pick returns a uniformly chosen element of xs. ok is false for an empty
// slice, in which case no draw is consumed.
func Pick[T any](s *Source, xs []T) (v T, ok bool) {
	if len(xs) == 0 {
		return v, false
	}

	return xs[s.Intn(len(xs))], true
}
