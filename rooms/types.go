package rooms

import (
	"errors"
	"fmt"
)

// ErrNilInput is returned when the grid or the random source is nil.
var ErrNilInput = errors.New("rooms: grid and source are required")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("rooms: invalid option supplied")

// Fallback room size, shrunk to fit small grids.
const (
	fallbackW = 10
	fallbackH = 8
)

// MinRoomSide is the smallest accepted room width or height.
const MinRoomSide = 3

// Options configures Place.
type Options struct {
	MaxRooms    int // upper bound on accepted rooms, >= 1
	MaxAttempts int // sampling budget, >= MaxRooms
	MinW, MinH  int // inclusive lower size bounds, >= MinRoomSide
	MaxW, MaxH  int // inclusive upper size bounds, >= MinW/MinH
	Padding     int // empty cells required between rooms, >= 0

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the classic layout knobs:
// 12 rooms, 60 attempts, rooms 6..14 wide and 6..12 high, padding 1.
func DefaultOptions() Options {
	return Options{
		MaxRooms:    12,
		MaxAttempts: 60,
		MinW:        6,
		MinH:        6,
		MaxW:        14,
		MaxH:        12,
		Padding:     1,
	}
}

// WithMaxRooms caps the number of placed rooms. n < 1 is a violation.
func WithMaxRooms(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxRooms=%d", ErrOptionViolation, n)
			return
		}
		o.MaxRooms = n
	}
}

// WithMaxAttempts sets the sampling budget. n < 1 is a violation.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts=%d", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithSize sets the inclusive size bounds. Bounds are normalised by Place:
// minimums are raised to MinRoomSide and maximums to their minimum.
func WithSize(minW, minH, maxW, maxH int) Option {
	return func(o *Options) {
		o.MinW, o.MinH, o.MaxW, o.MaxH = minW, minH, maxW, maxH
	}
}

// WithPadding sets the number of wall cells kept between rooms.
func WithPadding(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: Padding=%d", ErrOptionViolation, p)
			return
		}
		o.Padding = p
	}
}

// normalize clamps inverted or undersized bounds into a valid order.
func (o *Options) normalize() {
	o.MinW = clamp(o.MinW, MinRoomSide, max(MinRoomSide, o.MaxW))
	o.MinH = clamp(o.MinH, MinRoomSide, max(MinRoomSide, o.MaxH))
	o.MaxW = max(o.MaxW, o.MinW)
	o.MaxH = max(o.MaxH, o.MinH)
	o.MaxAttempts = max(o.MaxAttempts, o.MaxRooms)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
