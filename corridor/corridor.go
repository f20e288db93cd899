package corridor

import (
	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/rng"
)

// Path returns the cells of the L between a and b, both ends included.
//
//	horizontalFirst: along a.Y from a.X to b.X, then along b.X to b.Y
//	otherwise:       along a.X from a.Y to b.Y, then along b.Y to b.X
//
// The corner appears once. Path(a, a, _) is []Cell{a}.
func Path(a, b grid.Cell, horizontalFirst bool) []grid.Cell {
	if horizontalFirst {
		return joinRuns(a, grid.Cell{X: b.X, Y: a.Y}, b)
	}

	return joinRuns(a, grid.Cell{X: a.X, Y: b.Y}, b)
}

// joinRuns concatenates the straight runs a→corner and corner→b.
func joinRuns(a, corner, b grid.Cell) []grid.Cell {
	out := make([]grid.Cell, 0, a.Manhattan(corner)+corner.Manhattan(b)+1)
	out = appendRun(out, a, corner)
	out = appendRun(out, corner, b)

	return out
}

// appendRun appends the axis-aligned run from → to. The first cell is
// skipped when it already ends out.
func appendRun(out []grid.Cell, from, to grid.Cell) []grid.Cell {
	dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)
	c := from
	if n := len(out); n == 0 || out[n-1] != c {
		out = append(out, c)
	}
	for c != to {
		c = grid.Cell{X: c.X + dx, Y: c.Y + dy}
		out = append(out, c)
	}

	return out
}

// Carve opens every listed cell that lies inside g and returns the number
// of cells that were walls before.
func Carve(g *grid.Grid, cells []grid.Cell) int {
	opened := 0
	for _, c := range cells {
		if g.Carve(c) {
			opened++
		}
	}

	return opened
}

// Line carves the straight run between two aligned cells. Unaligned cells
// are joined horizontal-first.
func Line(g *grid.Grid, a, b grid.Cell) int {
	return Carve(g, Path(a, b, true))
}

// CarveL flips one coin from src to choose the orientation and carves the L
// between a and b. Returns the number of newly opened cells.
func CarveL(g *grid.Grid, src *rng.Source, a, b grid.Cell) int {
	return Carve(g, Path(a, b, src.Coin()))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}
