package placement

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roguemaze/grid"
)

// ErrNilInput is returned when the random source is nil.
var ErrNilInput = errors.New("placement: source is required")

// ErrOptionViolation is returned when an invalid option is supplied.
var ErrOptionViolation = errors.New("placement: invalid option supplied")

// TrapSet is an ordered set of trap cells.
type TrapSet struct {
	cells []grid.Cell
	set   mapset.Set[grid.Cell]
}

// NewTrapSet builds a set from cells, dropping duplicates and keeping the
// first occurrence order.
func NewTrapSet(cells ...grid.Cell) *TrapSet {
	ts := &TrapSet{set: mapset.New[grid.Cell]()}
	for _, c := range cells {
		ts.add(c)
	}

	return ts
}

func (ts *TrapSet) add(c grid.Cell) {
	if ts.set.Has(c) {
		return
	}
	ts.set.Put(c)
	ts.cells = append(ts.cells, c)
}

// Has reports whether c is a trap. A nil set has no traps.
func (ts *TrapSet) Has(c grid.Cell) bool {
	return ts != nil && ts.set.Has(c)
}

// Len returns the number of traps.
func (ts *TrapSet) Len() int {
	if ts == nil {
		return 0
	}

	return len(ts.cells)
}

// Cells returns a copy of the traps in placement order.
func (ts *TrapSet) Cells() []grid.Cell {
	if ts == nil {
		return nil
	}

	return append([]grid.Cell(nil), ts.cells...)
}

// Avoider reports cells that spawns must not use.
type Avoider interface {
	Has(c grid.Cell) bool
}

// TrapOptions configures Traps.
type TrapOptions struct {
	Probability float64 // per-cell chance, in [0,1]
	SafeRadius  int     // Manhattan radius kept clear around start and exit

	err error
}

// TrapOption configures TrapOptions.
type TrapOption func(*TrapOptions)

// DefaultTrapOptions returns probability 0.08 and safe radius 2.
func DefaultTrapOptions() TrapOptions {
	return TrapOptions{Probability: 0.08, SafeRadius: 2}
}

// WithProbability sets the per-cell trap chance. Values outside [0,1] and
// NaN are violations.
func WithProbability(p float64) TrapOption {
	return func(o *TrapOptions) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: Probability=%v", ErrOptionViolation, p)
			return
		}
		o.Probability = p
	}
}

// WithSafeRadius sets the trap-free radius. r < 0 is a violation.
func WithSafeRadius(r int) TrapOption {
	return func(o *TrapOptions) {
		if r < 0 {
			o.err = fmt.Errorf("%w: SafeRadius=%d", ErrOptionViolation, r)
			return
		}
		o.SafeRadius = r
	}
}

// Spawn is one entity placement.
type Spawn struct {
	Cell grid.Cell
	Kind int // index in [0, Kinds)

	// JitterX and JitterZ offset the spawn inside its cell, in world units.
	JitterX, JitterZ float64
}

// SpawnOptions configures Spawns.
type SpawnOptions struct {
	Count         int     // requested spawns
	MinDistance   int     // minimum Manhattan distance from start and exit
	MinSeparation int     // minimum Manhattan distance between spawns
	Kinds         int     // number of entity kinds, >= 1
	Jitter        float64 // maximum in-cell offset, >= 0
	Avoid         Avoider // cells that must stay free, may be nil

	err error
}

// SpawnOption configures SpawnOptions.
type SpawnOption func(*SpawnOptions)

// DefaultSpawnOptions returns 8 spawns of a single kind with no distance
// constraints and no jitter.
func DefaultSpawnOptions() SpawnOptions {
	return SpawnOptions{Count: 8, Kinds: 1}
}

// WithCount sets the number of requested spawns. n < 0 is a violation.
func WithCount(n int) SpawnOption {
	return func(o *SpawnOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Count=%d", ErrOptionViolation, n)
			return
		}
		o.Count = n
	}
}

// WithMinDistance keeps spawns at least d steps from start and exit.
func WithMinDistance(d int) SpawnOption {
	return func(o *SpawnOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MinDistance=%d", ErrOptionViolation, d)
			return
		}
		o.MinDistance = d
	}
}

// WithMinSeparation keeps spawns at least d steps from each other.
func WithMinSeparation(d int) SpawnOption {
	return func(o *SpawnOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MinSeparation=%d", ErrOptionViolation, d)
			return
		}
		o.MinSeparation = d
	}
}

// WithKinds sets the number of entity kinds. n < 1 is a violation.
func WithKinds(n int) SpawnOption {
	return func(o *SpawnOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Kinds=%d", ErrOptionViolation, n)
			return
		}
		o.Kinds = n
	}
}

// WithJitter sets the maximum in-cell offset. Negative values and NaN are
// violations.
func WithJitter(j float64) SpawnOption {
	return func(o *SpawnOptions) {
		if math.IsNaN(j) || j < 0 {
			o.err = fmt.Errorf("%w: Jitter=%v", ErrOptionViolation, j)
			return
		}
		o.Jitter = j
	}
}

// WithAvoid excludes the cells reported by a from spawning.
func WithAvoid(a Avoider) SpawnOption {
	return func(o *SpawnOptions) {
		o.Avoid = a
	}
}

// SpawnResult reports the outcome of Spawns.
type SpawnResult struct {
	Spawns    []Spawn
	Requested int
	Shortfall int // Requested - len(Spawns)
	Attempts  int
}
