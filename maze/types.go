package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/roguemaze/grid"
)

// ErrNilInput is returned when the grid or the random source is nil.
var ErrNilInput = errors.New("maze: grid and source are required")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("maze: invalid option supplied")

// MinInner is the smallest interior side that can hold a maze.
const MinInner = 3

// Options configures Carve.
type Options struct {
	Ratio float64 // probability that a room becomes a maze, in [0,1]
	Step  int     // lattice spacing, >= 2

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Ratio 0.5 and Step 2.
func DefaultOptions() Options {
	return Options{Ratio: 0.5, Step: 2}
}

// WithRatio sets the conversion probability. Values outside [0,1] and NaN
// are violations.
func WithRatio(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: Ratio=%v", ErrOptionViolation, p)
			return
		}
		o.Ratio = p
	}
}

// WithStep sets the lattice spacing. s < 2 is a violation.
func WithStep(s int) Option {
	return func(o *Options) {
		if s < 2 {
			o.err = fmt.Errorf("%w: Step=%d", ErrOptionViolation, s)
			return
		}
		o.Step = s
	}
}

// Maze describes one converted room.
type Maze struct {
	Room  int         // index into the room list
	Inner grid.Rect   // interior that was reset and carved
	Root  grid.Cell   // lattice node the search started from
	Nodes []grid.Cell // lattice nodes in visit order
}

// Result lists the converted rooms in room order.
type Result struct {
	Mazes []Maze
}

// Rooms returns the indices of the converted rooms.
func (r Result) Rooms() []int {
	out := make([]int, len(r.Mazes))
	for i, m := range r.Mazes {
		out[i] = m.Room
	}

	return out
}
