package placement

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/rng"
)

// Budget returns the attempt budget for count spawns.
func Budget(count int) int {
	return max(200, 40*count)
}

// Spawns samples up to Count spawn cells from walkable.
//
// Each attempt draws one cell index. An accepted cell then draws JitterX,
// JitterZ and Kind, in that order. Sampling stops when Count spawns are
// placed or Budget(Count) attempts are used. Count <= 0 or an empty
// walkable list returns immediately without drawing.
func Spawns(walkable []grid.Cell, start, exit grid.Cell, src *rng.Source, opts ...SpawnOption) (SpawnResult, error) {
	if src == nil {
		return SpawnResult{}, ErrNilInput
	}
	o := DefaultSpawnOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return SpawnResult{}, o.err
	}

	res := SpawnResult{Requested: o.Count}
	if o.Count <= 0 || len(walkable) == 0 {
		res.Shortfall = o.Count
		return res, nil
	}

	taken := mapset.New[grid.Cell]()
	budget := Budget(o.Count)
	for len(res.Spawns) < o.Count && res.Attempts < budget {
		res.Attempts++

		c := walkable[src.Intn(len(walkable))]
		if c == start || c == exit || taken.Has(c) {
			continue
		}
		if c.Manhattan(start) < o.MinDistance || c.Manhattan(exit) < o.MinDistance {
			continue
		}
		if o.Avoid != nil && o.Avoid.Has(c) {
			continue
		}
		if tooClose(c, res.Spawns, o.MinSeparation) {
			continue
		}

		sp := Spawn{Cell: c}
		sp.JitterX = src.Jitter(o.Jitter)
		sp.JitterZ = src.Jitter(o.Jitter)
		sp.Kind = src.Intn(o.Kinds)

		taken.Put(c)
		res.Spawns = append(res.Spawns, sp)
	}
	res.Shortfall = o.Count - len(res.Spawns)

	return res, nil
}

// tooClose reports whether c is closer than sep to any placed spawn.
func tooClose(c grid.Cell, spawns []Spawn, sep int) bool {
	if sep <= 0 {
		return false
	}
	for _, s := range spawns {
		if c.Manhattan(s.Cell) < sep {
			return true
		}
	}

	return false
}
