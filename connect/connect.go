package connect

import (
	"github.com/katalvlaran/roguemaze/corridor"
	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/rng"
)

// Connect joins the rooms whose centres are given and carves a corridor for
// every chosen edge into g.
//
// Order of work, and therefore of draws:
//  1. Candidates (no draws).
//  2. SpanningTree over a copy of the candidates (one shuffle).
//  3. Carve the tree edges (one coin each).
//  4. Extras from the shuffled copy (one shuffle), carve each.
//  5. Repair, carve each added edge.
//
// Returns ErrNilInput, ErrNoRooms, ErrOptionViolation, or ErrDisconnected
// when repair fails.
func Connect(g *grid.Grid, src *rng.Source, centers []grid.Cell, opts ...Option) (Result, error) {
	if g == nil || src == nil {
		return Result{}, ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if len(centers) == 0 {
		return Result{}, ErrNoRooms
	}

	var res Result
	carve := func(edges []Edge) {
		for _, e := range edges {
			res.Opened += corridor.CarveL(g, src, e.A, e.B)
			res.Carved = append(res.Carved, e)
		}
	}

	res.Candidates = Candidates(centers, o.Neighbors)
	work := append([]Edge(nil), res.Candidates...)

	res.Tree = SpanningTree(len(centers), work, src)
	carve(res.Tree)

	res.Extra = Extras(work, res.Tree, o.Extra, src)
	carve(res.Extra)

	repair, err := Repair(centers, res.Carved)
	if err != nil {
		return res, err
	}
	res.Repair = repair
	carve(res.Repair)

	return res, nil
}
