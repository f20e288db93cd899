package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a non-positive width or height.
	ErrInvalidSize = errors.New("grid: width and height must be positive")

	// ErrStartNotPassable indicates a traversal was started on a wall or
	// outside the grid.
	ErrStartNotPassable = errors.New("grid: start cell is not passable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Dir is one of the four orthogonal directions.
type Dir int

const (
	North Dir = iota // +Y
	East             // +X
	South            // -Y
	West             // -X
)

// dirOffsets is indexed by Dir. The order N, E, S, W is part of the
// determinism contract of every traversal in this package.
var dirOffsets = [4]Cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Dirs lists the four directions in traversal order.
var Dirs = [4]Dir{North, East, South, West}

// Offset returns the unit step of d.
func (d Dir) Offset() Cell { return dirOffsets[d] }

func (d Dir) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}

	return fmt.Sprintf("Dir(%d)", int(d))
}

// Add returns c translated by o.
func (c Cell) Add(o Cell) Cell { return Cell{c.X + o.X, c.Y + o.Y} }

// Step returns the cell n steps from c in direction d.
func (c Cell) Step(d Dir, n int) Cell {
	o := d.Offset()

	return Cell{c.X + o.X*n, c.Y + o.Y*n}
}

// Manhattan returns |dx| + |dy| between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Rect is an axis-aligned rectangle of cells: [X,X+W) × [Y,Y+H).
type Rect struct {
	X, Y, W, H int
}

// MinX returns the first column of r.
func (r Rect) MinX() int { return r.X }

// MinY returns the first row of r.
func (r Rect) MinY() int { return r.Y }

// MaxX returns one past the last column of r.
func (r Rect) MaxX() int { return r.X + r.W }

// MaxY returns one past the last row of r.
func (r Rect) MaxY() int { return r.Y + r.H }

// Center returns the integer middle of r: (X+W/2, Y+H/2).
func (r Rect) Center() Cell { return Cell{r.X + r.W/2, r.Y + r.H/2} }

// Area returns W×H, or 0 for empty rectangles.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}

	return r.W * r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Expand grows r by p cells on every side.
func (r Rect) Expand(p int) Rect {
	return Rect{r.X - p, r.Y - p, r.W + 2*p, r.H + 2*p}
}

// Inset shrinks r by p cells on every side. Each dimension keeps at least
// one cell, so the interior of a tiny room is never negative.
func (r Rect) Inset(p int) Rect {
	return Rect{r.X + p, r.Y + p, max(1, r.W-2*p), max(1, r.H-2*p)}
}

// Overlaps reports whether r and o share at least one cell.
// Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Contains reports whether c lies inside r (half-open bounds).
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.X && c.X < r.MaxX() && c.Y >= r.Y && c.Y < r.MaxY()
}

// Within reports whether r lies entirely inside o.
func (r Rect) Within(o Rect) bool {
	return r.X >= o.X && r.Y >= o.Y && r.MaxX() <= o.MaxX() && r.MaxY() <= o.MaxY()
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.W, r.H)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
