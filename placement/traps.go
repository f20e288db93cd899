package placement

import (
	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/rng"
)

// Traps marks walkable cells as traps. Cells within SafeRadius of start or
// exit consume no draw; every other cell consumes exactly one. A
// non-positive Probability returns an empty set without drawing.
func Traps(walkable []grid.Cell, start, exit grid.Cell, src *rng.Source, opts ...TrapOption) (*TrapSet, error) {
	if src == nil {
		return nil, ErrNilInput
	}
	o := DefaultTrapOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ts := NewTrapSet()
	if o.Probability <= 0 {
		return ts, nil
	}
	for _, c := range walkable {
		if c.Manhattan(start) <= o.SafeRadius || c.Manhattan(exit) <= o.SafeRadius {
			continue
		}
		if src.Chance(o.Probability) {
			ts.add(c)
		}
	}

	return ts, nil
}
