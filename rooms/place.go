package rooms

import (
	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/rng"
)

// Result describes the outcome of Place.
type Result struct {
	Rooms    []grid.Rect // accepted rooms in acceptance order
	Attempts int         // sampling attempts consumed
	Fallback bool        // true when the fallback room was inserted
}

// Centers returns the centre cell of every room, in room order.
func (r Result) Centers() []grid.Cell {
	return Centers(r.Rooms)
}

// Centers returns the centre cell of every room, in room order.
func Centers(rooms []grid.Rect) []grid.Cell {
	out := make([]grid.Cell, len(rooms))
	for i, room := range rooms {
		out[i] = room.Center()
	}

	return out
}

// Place samples and carves up to MaxRooms non-overlapping rooms into g.
// It always returns at least one room.
// Returns ErrNilInput or ErrOptionViolation for invalid input; sampling
// itself never fails.
func Place(g *grid.Grid, src *rng.Source, opts ...Option) (Result, error) {
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
	o.normalize()

	w, h := g.Size()
	// Rooms stay one cell away from the outer border.
	area := g.Bounds().Inset(1)

	var res Result
	for res.Attempts < o.MaxAttempts && len(res.Rooms) < o.MaxRooms {
		res.Attempts++

		rw := src.Range(o.MinW, o.MaxW+1)
		rh := src.Range(o.MinH, o.MaxH+1)
		x := src.Range(1, max(2, w-rw-1))
		y := src.Range(1, max(2, h-rh-1))
		cand := grid.Rect{X: x, Y: y, W: rw, H: rh}

		if !cand.Within(area) || intersectsAny(cand, res.Rooms, o.Padding) {
			continue
		}
		res.Rooms = append(res.Rooms, cand)
		g.CarveRect(cand)
	}

	if len(res.Rooms) == 0 {
		fb := fallbackRoom(w, h)
		res.Rooms = append(res.Rooms, fb)
		res.Fallback = true
		g.CarveRect(fb)
	}

	return res, nil
}

// intersectsAny reports whether r grown by padding overlaps any of rooms.
func intersectsAny(r grid.Rect, rooms []grid.Rect, padding int) bool {
	expanded := r.Expand(padding)
	for _, o := range rooms {
		if expanded.Overlaps(o) {
			return true
		}
	}

	return false
}

// fallbackRoom is a fixed-size room centred on a w×h grid, shrunk so it
// keeps a one-cell margin on small grids.
func fallbackRoom(w, h int) grid.Rect {
	fw := max(1, min(fallbackW, w-2))
	fh := max(1, min(fallbackH, h-2))

	return grid.Rect{X: (w - fw) / 2, Y: (h - fh) / 2, W: fw, H: fh}
}
