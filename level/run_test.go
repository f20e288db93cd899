package level_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roguemaze/level"
)

func TestRun_Progression(t *testing.T) {
	run, err := level.NewRun(scenario(42), quiet)
	require.NoError(t, err)

	first := run.Current()
	assert.Equal(t, 1, run.Level())
	assert.Equal(t, int32(42), first.Seed())

	next, err := run.Advance(7)
	require.NoError(t, err)
	assert.Equal(t, 2, run.Level())
	assert.Same(t, next, run.Current())
	assert.Equal(t, int32(7), next.Seed())
	assert.Equal(t, 2, next.Level())

	direct, err := level.Generate(scenario(7), quiet)
	require.NoError(t, err)
	assert.True(t, direct.Grid().Equal(next.Grid()), "a run level equals a direct generation with the same seed")
	assert.Equal(t, direct.Start(), next.Start())

	third, err := run.AdvanceRandom()
	require.NoError(t, err)
	assert.Equal(t, 3, third.Level())
	assert.True(t, third.Config().FixedSeed)

	// The first snapshot is untouched by later levels.
	assert.Equal(t, 1, first.Level())
	assert.Equal(t, int32(42), first.Seed())
}
