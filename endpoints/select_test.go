package endpoints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roguemaze/connect"
	"github.com/katalvlaran/roguemaze/endpoints"
	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/rng"
	"github.com/katalvlaran/roguemaze/rooms"
)

func c(x, y int) grid.Cell { return grid.Cell{X: x, Y: y} }

func mustRows(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows...)
	require.NoError(t, err)

	return g
}

func TestSelect_NilInput(t *testing.T) {
	_, err := endpoints.Select(nil, rng.New(1))
	assert.ErrorIs(t, err, endpoints.ErrNilInput)
}

func TestSelect_WindingCorridor(t *testing.T) {
	g := mustRows(t,
		"#######",
		"#.....#",
		"#.###.#",
		"#.#...#",
		"#######",
	)
	for seed := int32(0); seed < 15; seed++ {
		src := rng.New(seed)
		res, err := endpoints.Select(g, src)
		require.NoError(t, err)

		assert.ElementsMatch(t, []grid.Cell{c(1, 1), c(3, 1)}, []grid.Cell{res.Start, res.Exit})
		assert.Equal(t, 10, res.Distance)
		assert.False(t, res.Degenerate)
		assert.False(t, res.BorderKept)
		assert.Equal(t, 1, src.Draws())
	}
}

func TestSelect_DegenerateGrid(t *testing.T) {
	g := mustRows(t,
		"######",
		"##.###",
		"######",
		"######",
	)
	src := rng.New(4)
	res, err := endpoints.Select(g, src)
	require.NoError(t, err)

	assert.True(t, res.Degenerate)
	assert.Equal(t, c(3, 2), res.Start)
	assert.Equal(t, res.Start, res.Exit)
	assert.Zero(t, src.Draws())
}

func TestSelect_PushesBorderEndpointInward(t *testing.T) {
	g := mustRows(t,
		"#####",
		"....#",
		"#####",
	)
	res, err := endpoints.Select(g, rng.New(2))
	require.NoError(t, err)

	assert.ElementsMatch(t, []grid.Cell{c(0, 1), c(3, 1)}, []grid.Cell{res.B, res.C})
	assert.ElementsMatch(t, []grid.Cell{c(1, 1), c(3, 1)}, []grid.Cell{res.Start, res.Exit})
	assert.False(t, res.BorderKept)
}

func TestSelect_KeepsBorderWhenInwardIsWall(t *testing.T) {
	g := mustRows(t,
		"#####",
		".####",
		".####",
		".####",
		"#####",
	)
	res, err := endpoints.Select(g, rng.New(9))
	require.NoError(t, err)

	assert.ElementsMatch(t, []grid.Cell{c(0, 1), c(0, 3)}, []grid.Cell{res.Start, res.Exit})
	assert.True(t, res.BorderKept)
	assert.Equal(t, 2, res.Distance)
}

func TestInward(t *testing.T) {
	g := mustRows(t,
		"#....",
		"#....",
		".....",
	)
	// Bottom-left corner: x=0 is tried before y=0.
	got, kept := endpoints.Inward(g, c(0, 0))
	assert.Equal(t, c(1, 0), got)
	assert.False(t, kept)

	got, kept = endpoints.Inward(g, c(4, 2))
	assert.Equal(t, c(3, 2), got)
	assert.False(t, kept)

	got, kept = endpoints.Inward(g, c(2, 1))
	assert.Equal(t, c(2, 1), got, "interior cells stay")
	assert.False(t, kept)
}

func TestSelect_GeneratedLayouts(t *testing.T) {
	for seed := int32(0); seed < 40; seed++ {
		g, err := grid.New(40, 30)
		require.NoError(t, err)
		src := rng.New(seed)
		placed, err := rooms.Place(g, src, rooms.WithMaxRooms(6), rooms.WithSize(5, 5, 9, 9))
		require.NoError(t, err)
		_, err = connect.Connect(g, src, placed.Centers())
		require.NoError(t, err)

		res, err := endpoints.Select(g, src)
		require.NoError(t, err)

		assert.NotEqual(t, res.Start, res.Exit, "seed %d", seed)
		assert.True(t, g.IsPassable(res.Start))
		assert.True(t, g.IsPassable(res.Exit))
		assert.False(t, g.OnBorder(res.Start))
		assert.False(t, g.OnBorder(res.Exit))
		assert.Positive(t, res.Distance)
	}
}
