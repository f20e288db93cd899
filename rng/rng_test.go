package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roguemaze/rng"
)

// drawSequence consumes a fixed mix of draws and returns what it saw.
func drawSequence(s *rng.Source) []float64 {
	var out []float64
	for i := 0; i < 16; i++ {
		out = append(out, float64(s.Intn(1000)))
		out = append(out, s.Float64())
		out = append(out, float64(s.Range(-5, 5)))
	}

	return out
}

func TestSource_SameSeedSameSequence(t *testing.T) {
	a := drawSequence(rng.New(42))
	b := drawSequence(rng.New(42))
	assert.Equal(t, a, b)
}

func TestSource_DifferentSeedsDiverge(t *testing.T) {
	a := drawSequence(rng.New(42))
	b := drawSequence(rng.New(43))
	assert.NotEqual(t, a, b)
}

func TestSource_NegativeSeed(t *testing.T) {
	s := rng.New(-7)
	assert.Equal(t, int32(-7), s.Seed())
	assert.NotEqual(t, drawSequence(rng.New(-7)), drawSequence(rng.New(7)))
}

func TestSource_RangeBounds(t *testing.T) {
	s := rng.New(1)
	for i := 0; i < 1000; i++ {
		v := s.Range(3, 9)
		require.GreaterOrEqual(t, v, 3)
		require.Less(t, v, 9)
	}
	before := s.Draws()
	assert.Equal(t, 4, s.Range(4, 4))
	assert.Equal(t, 4, s.Range(4, 2))
	assert.Equal(t, before, s.Draws(), "empty ranges must not consume draws")
}

func TestSource_IntnNonPositive(t *testing.T) {
	s := rng.New(1)
	assert.Equal(t, 0, s.Intn(0))
	assert.Equal(t, 0, s.Intn(-3))
	assert.Equal(t, 0, s.Draws())
}

func TestSource_ChanceExtremes(t *testing.T) {
	s := rng.New(9)
	for i := 0; i < 200; i++ {
		require.False(t, s.Chance(0))
		require.True(t, s.Chance(1))
	}
	assert.Equal(t, 400, s.Draws())
}

func TestSource_Jitter(t *testing.T) {
	s := rng.New(5)
	for i := 0; i < 500; i++ {
		v := s.Jitter(0.75)
		require.GreaterOrEqual(t, v, -0.75)
		require.Less(t, v, 0.75)
	}
	assert.Equal(t, 0.0, s.Jitter(0))
}

func TestShuffleSlice_Permutation(t *testing.T) {
	s := rng.New(3)
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng.ShuffleSlice(s, xs)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, xs)
	assert.Equal(t, 9, s.Draws())

	ys := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng.ShuffleSlice(rng.New(3), ys)
	assert.Equal(t, xs, ys)
}

func TestPick(t *testing.T) {
	s := rng.New(11)
	_, ok := rng.Pick[int](s, nil)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Draws())

	v, ok := rng.Pick(s, []string{"a", "b", "c"})
	require.True(t, ok)
	assert.Contains(t, []string{"a", "b", "c"}, v)
}

func TestNewSeed_Varies(t *testing.T) {
	seen := make(map[int32]bool)
	for i := 0; i < 8; i++ {
		seen[rng.NewSeed()] = true
	}
	assert.Greater(t, len(seen), 1)
}
