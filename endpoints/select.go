package endpoints

import (
	"errors"

	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/rng"
)

// ErrNilInput is returned when the grid or the random source is nil.
var ErrNilInput = errors.New("endpoints: grid and source are required")

// Result holds the chosen endpoints and how they were found.
type Result struct {
	Start, Exit grid.Cell

	// A is the random seed cell, B and C the two farthest cells.
	A, B, C grid.Cell

	// Distance is the BFS distance from B to C.
	Distance int

	// Degenerate is set when fewer than two walkable cells exist, in which
	// case Start and Exit are both the grid centre, or when the search
	// collapsed onto a single cell.
	Degenerate bool

	// BorderKept is set when an endpoint lies on the border and no inward
	// neighbour was passable.
	BorderKept bool
}

// Select picks start and exit on g. It consumes exactly one draw, or none
// when the grid has fewer than two walkable cells.
func Select(g *grid.Grid, src *rng.Source) (Result, error) {
	if g == nil || src == nil {
		return Result{}, ErrNilInput
	}

	walkable := g.Walkable()
	if len(walkable) < 2 {
		c := g.Center()
		return Result{Start: c, Exit: c, A: c, B: c, C: c, Degenerate: true}, nil
	}

	var res Result
	res.A, _ = rng.Pick(src, walkable)

	var err error
	if res.B, _, err = grid.FarthestFrom(g, res.A); err != nil {
		return Result{}, err
	}
	if res.C, res.Distance, err = grid.FarthestFrom(g, res.B); err != nil {
		return Result{}, err
	}

	var keptB, keptC bool
	res.Start, keptB = Inward(g, res.B)
	res.Exit, keptC = Inward(g, res.C)
	res.BorderKept = keptB || keptC
	res.Degenerate = res.Start == res.Exit

	return res, nil
}

// Inward moves a border cell one step towards the interior. Candidates are
// tried in the order x=0, x=w-1, y=0, y=h-1 and the first passable one
// wins. kept reports that c is on the border and could not be moved.
// Interior cells are returned unchanged.
func Inward(g *grid.Grid, c grid.Cell) (out grid.Cell, kept bool) {
	if !g.OnBorder(c) {
		return c, false
	}

	w, h := g.Size()
	var candidates []grid.Cell
	if c.X == 0 {
		candidates = append(candidates, grid.Cell{X: c.X + 1, Y: c.Y})
	}
	if c.X == w-1 {
		candidates = append(candidates, grid.Cell{X: c.X - 1, Y: c.Y})
	}
	if c.Y == 0 {
		candidates = append(candidates, grid.Cell{X: c.X, Y: c.Y + 1})
	}
	if c.Y == h-1 {
		candidates = append(candidates, grid.Cell{X: c.X, Y: c.Y - 1})
	}

	for _, n := range candidates {
		if g.IsPassable(n) {
			return n, false
		}
	}

	return c, true
}
