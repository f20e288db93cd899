package corridor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roguemaze/corridor"
	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/rng"
)

func c(x, y int) grid.Cell { return grid.Cell{X: x, Y: y} }

func TestPath_HorizontalFirst(t *testing.T) {
	got := corridor.Path(c(1, 1), c(4, 3), true)
	assert.Equal(t, []grid.Cell{c(1, 1), c(2, 1), c(3, 1), c(4, 1), c(4, 2), c(4, 3)}, got)
}

func TestPath_VerticalFirst(t *testing.T) {
	got := corridor.Path(c(4, 3), c(1, 1), false)
	assert.Equal(t, []grid.Cell{c(4, 3), c(4, 2), c(4, 1), c(3, 1), c(2, 1), c(1, 1)}, got)
}

func TestPath_Degenerate(t *testing.T) {
	assert.Equal(t, []grid.Cell{c(2, 2)}, corridor.Path(c(2, 2), c(2, 2), true))
	assert.Equal(t, []grid.Cell{c(2, 2), c(2, 3), c(2, 4)}, corridor.Path(c(2, 2), c(2, 4), true))
	assert.Equal(t, []grid.Cell{c(5, 2), c(4, 2)}, corridor.Path(c(5, 2), c(4, 2), false))
}

func TestPath_NoDiagonalSteps(t *testing.T) {
	for _, hf := range []bool{true, false} {
		p := corridor.Path(c(7, 2), c(1, 9), hf)
		require.Len(t, p, c(7, 2).Manhattan(c(1, 9))+1)
		for i := 1; i < len(p); i++ {
			assert.Equal(t, 1, p[i-1].Manhattan(p[i]), "step %d", i)
		}
	}
}

func TestCarve_Idempotent(t *testing.T) {
	g, err := grid.New(12, 12)
	require.NoError(t, err)

	a, b := c(1, 2), c(9, 8)
	first := corridor.Carve(g, corridor.Path(a, b, true))
	once := g.Clone()
	second := corridor.Carve(g, corridor.Path(a, b, true))

	assert.Equal(t, a.Manhattan(b)+1, first)
	assert.Zero(t, second)
	assert.True(t, g.Equal(once))
}

func TestCarve_ClipsToBounds(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	opened := corridor.Line(g, c(-3, 2), c(7, 2))
	assert.Equal(t, 5, opened)
	assert.Equal(t, 5, g.CountPassable())
}

func TestCarveL_OneDrawAndDeterministic(t *testing.T) {
	g1, _ := grid.New(20, 20)
	g2, _ := grid.New(20, 20)
	s1, s2 := rng.New(99), rng.New(99)

	for i := 0; i < 10; i++ {
		a, b := c(1+i, 2), c(15, 3+i)
		corridor.CarveL(g1, s1, a, b)
		corridor.CarveL(g2, s2, a, b)
	}

	assert.Equal(t, 10, s1.Draws())
	assert.True(t, g1.Equal(g2))
}

func TestCarveL_EndpointsConnected(t *testing.T) {
	src := rng.New(5)
	for i := 0; i < 20; i++ {
		g, _ := grid.New(16, 16)
		a, b := c(1+i%7, 14-i%5), c(13-i%3, 1+i%11)
		corridor.CarveL(g, src, a, b)

		res, err := grid.BFS(g, a)
		require.NoError(t, err)
		assert.Equal(t, a.Manhattan(b), res.Depth(b))
		assert.True(t, g.Connected())
	}
}
