package grid

import "strings"

const (
	wallRune  = '#'
	floorRune = '.'
)

// String renders the grid with '#' for walls and '.' for floor. The first
// line is the highest row, so the picture reads with +Y pointing up.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the grid like String, letting overlay replace the rune of
// any cell. overlay may be nil.
func (g *Grid) Render(overlay func(c Cell) (rune, bool)) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			c := Cell{x, y}
			if overlay != nil {
				if r, ok := overlay(c); ok {
					b.WriteRune(r)
					continue
				}
			}
			if g.cells[g.index(x, y)] {
				b.WriteRune(floorRune)
			} else {
				b.WriteRune(wallRune)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
