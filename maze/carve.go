package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roguemaze/corridor"
	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/rng"
)

// Carve converts rooms of g into mazes. Every room consumes one draw for
// the ratio test; a converted room then draws its root and three values
// per visited node for the direction shuffle.
//
// Returns ErrNilInput or ErrOptionViolation for invalid input.
// Complexity: O(area of converted rooms).
func Carve(g *grid.Grid, src *rng.Source, rooms []grid.Rect, opts ...Option) (Result, error) {
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

	var res Result
	for i, room := range rooms {
		if src.Float64() > o.Ratio {
			continue
		}
		inner := room.Inset(1)
		if inner.W < MinInner || inner.H < MinInner {
			continue
		}

		g.FillRect(inner, false)
		nodes := lattice(inner, o.Step)
		root, _ := rng.Pick(src, nodes)

		m := Maze{Room: i, Inner: inner, Root: root}
		m.Nodes = walk(g, src, inner, root, o.Step)
		g.CarveBorder(room)

		res.Mazes = append(res.Mazes, m)
	}

	return res, nil
}

// lattice lists the nodes of inner spaced step apart, row by row from the
// min corner.
func lattice(inner grid.Rect, step int) []grid.Cell {
	var out []grid.Cell
	for y := inner.MinY(); y < inner.MaxY(); y += step {
		for x := inner.MinX(); x < inner.MaxX(); x += step {
			out = append(out, grid.Cell{X: x, Y: y})
		}
	}

	return out
}

// frame is one level of the depth-first search.
type frame struct {
	at   grid.Cell
	dirs [4]grid.Dir
	next int
}

// walk runs the depth-first search from root with an explicit stack and
// returns the nodes in visit order. Draws happen in the same order as a
// recursive search: a node shuffles its directions when it is entered.
func walk(g *grid.Grid, src *rng.Source, inner grid.Rect, root grid.Cell, step int) []grid.Cell {
	visited := mapset.New[grid.Cell]()
	var order []grid.Cell
	var stack []*frame

	enter := func(c grid.Cell) {
		visited.Put(c)
		order = append(order, c)
		g.Carve(c)

		f := &frame{at: c, dirs: grid.Dirs}
		rng.ShuffleSlice(src, f.dirs[:])
		stack = append(stack, f)
	}

	enter(root)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next == len(f.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := f.dirs[f.next]
		f.next++

		n := f.at.Step(d, step)
		if !inner.Contains(n) || visited.Has(n) {
			continue
		}
		corridor.Line(g, f.at, n)
		enter(n)
	}

	return order
}
