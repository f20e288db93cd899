package grid

import "fmt"

// Grid is a rectangular passability matrix. The zero value is unusable;
// construct with New. A Grid is owned by one generation run and is not
// safe for concurrent mutation.
type Grid struct {
	width, height int
	cells         []bool // row-major: y*width + x
}

// New returns an all-wall grid of the given size.
// Returns ErrInvalidSize if width or height is not positive.
// Complexity: O(W×H).
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	return &Grid{width: width, height: height, cells: make([]bool, width*height)}, nil
}

// FromRows builds a grid from text rows where '#' is a wall and any other
// rune is floor. Row 0 of the input is the top of the picture, i.e. the
// highest y. Returns ErrInvalidSize for empty or ragged input.
func FromRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidSize
	}
	w, h := len(rows[0]), len(rows)
	g, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidSize, i, len(row), w)
		}
		y := h - 1 - i
		for x := 0; x < w; x++ {
			g.cells[g.index(x, y)] = row[x] != '#'
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns width and height.
func (g *Grid) Size() (width, height int) { return g.width, g.height }

// Bounds returns the whole grid as a Rect.
func (g *Grid) Bounds() Rect { return Rect{0, 0, g.width, g.height} }

// Center returns the middle cell (width/2, height/2).
func (g *Grid) Center() Cell { return Cell{g.width / 2, g.height / 2} }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether c lies within the grid.
func (g *Grid) Contains(c Cell) bool { return g.InBounds(c.X, c.Y) }

// Passable reports whether (x,y) is floor. Out-of-bounds cells are walls.
// Complexity: O(1).
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.index(x, y)]
}

// IsPassable is Passable for a Cell.
func (g *Grid) IsPassable(c Cell) bool { return g.Passable(c.X, c.Y) }

// OnBorder reports whether c lies on the outermost ring of the grid.
func (g *Grid) OnBorder(c Cell) bool {
	return c.X == 0 || c.Y == 0 || c.X == g.width-1 || c.Y == g.height-1
}

// Set writes v at c. Out-of-bounds writes are ignored and report false.
func (g *Grid) Set(c Cell, v bool) bool {
	if !g.Contains(c) {
		return false
	}
	g.cells[g.index(c.X, c.Y)] = v

	return true
}

// Carve marks c passable. It reports whether the cell changed, so carving
// an already-open cell is a no-op that returns false.
func (g *Grid) Carve(c Cell) bool {
	if !g.Contains(c) {
		return false
	}
	i := g.index(c.X, c.Y)
	if g.cells[i] {
		return false
	}
	g.cells[i] = true

	return true
}

// CarveRect opens every in-bounds cell of r and returns how many changed.
func (g *Grid) CarveRect(r Rect) int {
	n := 0
	for y := r.MinY(); y < r.MaxY(); y++ {
		for x := r.MinX(); x < r.MaxX(); x++ {
			if g.Carve(Cell{x, y}) {
				n++
			}
		}
	}

	return n
}

// FillRect writes v to every in-bounds cell of r.
func (g *Grid) FillRect(r Rect, v bool) {
	for y := max(0, r.MinY()); y < min(g.height, r.MaxY()); y++ {
		for x := max(0, r.MinX()); x < min(g.width, r.MaxX()); x++ {
			g.cells[g.index(x, y)] = v
		}
	}
}

// CarveBorder opens the one-cell frame of r and returns how many cells
// changed.
func (g *Grid) CarveBorder(r Rect) int {
	if r.Empty() {
		return 0
	}
	n := 0
	for x := r.MinX(); x < r.MaxX(); x++ {
		if g.Carve(Cell{x, r.MinY()}) {
			n++
		}
		if g.Carve(Cell{x, r.MaxY() - 1}) {
			n++
		}
	}
	for y := r.MinY(); y < r.MaxY(); y++ {
		if g.Carve(Cell{r.MinX(), y}) {
			n++
		}
		if g.Carve(Cell{r.MaxX() - 1, y}) {
			n++
		}
	}

	return n
}

// Walkable returns every passable cell, rows by ascending y, cells by
// ascending x.
// Complexity: O(W×H).
func (g *Grid) Walkable() []Cell {
	out := make([]Cell, 0, g.CountPassable())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] {
				out = append(out, Cell{x, y})
			}
		}
	}

	return out
}

// CountPassable returns the number of floor cells.
func (g *Grid) CountPassable() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}

	return n
}

// Neighbors returns the passable 4-neighbours of c in N, E, S, W order.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range Dirs {
		n := c.Add(d.Offset())
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)

	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether g and o have the same size and passability.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// index maps (x,y) to a row-major index: y*width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{idx % g.width, idx / g.width}
}

// Index converts an in-bounds Cell to its row-major index.
func (g *Grid) Index(c Cell) int {
	return g.index(c.X, c.Y)
}
