package connect

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roguemaze/grid"
)

// Sentinel errors for room connection.
var (
	// ErrNilInput is returned when the grid or the random source is nil.
	ErrNilInput = errors.New("connect: grid and source are required")

	// ErrNoRooms is returned when there is no room centre to connect.
	ErrNoRooms = errors.New("connect: no rooms to connect")

	// ErrDisconnected signals that repair could not join two components.
	// It indicates inconsistent room bookkeeping, never a layout condition.
	ErrDisconnected = errors.New("connect: rooms cannot be connected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("connect: invalid option supplied")
)

// Edge joins room U and room V. A and B are their centres.
// Edges are undirected: (U,V) and (V,U) name the same corridor.
type Edge struct {
	U, V int
	A, B grid.Cell
}

// key identifies an undirected edge.
type key struct{ lo, hi int }

func (e Edge) key() key {
	if e.U < e.V {
		return key{e.U, e.V}
	}

	return key{e.V, e.U}
}

// Same reports whether e and o join the same pair of rooms.
func (e Edge) Same(o Edge) bool { return e.key() == o.key() }

// Length returns the Manhattan distance between the two centres.
func (e Edge) Length() int { return e.A.Manhattan(e.B) }

func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.U, e.V)
}

// Options configures Connect.
type Options struct {
	// Neighbors is k, the number of nearest centres each room proposes.
	Neighbors int

	// Extra is the maximum number of loop-forming edges added after the
	// spanning tree.
	Extra int

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns k=3 and three extra connections.
func DefaultOptions() Options {
	return Options{Neighbors: 3, Extra: 3}
}

// WithNeighbors sets k. k < 1 is a violation.
func WithNeighbors(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Neighbors=%d", ErrOptionViolation, k)
			return
		}
		o.Neighbors = k
	}
}

// WithExtraConnections sets the loop budget. n < 0 is a violation.
func WithExtraConnections(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Extra=%d", ErrOptionViolation, n)
			return
		}
		o.Extra = n
	}
}

// Result reports every edge considered and carved by Connect.
type Result struct {
	Candidates []Edge // k-NN candidates in discovery order
	Tree       []Edge // spanning tree edges in insertion order
	Extra      []Edge // loop edges
	Repair     []Edge // edges added by connectivity repair
	Carved     []Edge // Tree, then Extra, then Repair
	Opened     int    // cells opened by all corridors
}
