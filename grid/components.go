package grid

// ConnectedComponents groups passable cells into 4-connected regions.
// Components are ordered by their first cell in row-major order and each
// component lists its cells in BFS order from that first cell.
//
// Time:   O(W×H).
// Memory: O(W×H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]Cell

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i0 := g.index(x, y)
			if !g.cells[i0] || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			var comp []Cell

			for qi := 0; qi < len(queue); qi++ {
				c := g.Coordinate(queue[qi])
				comp = append(comp, c)
				for _, d := range Dirs {
					n := c.Add(d.Offset())
					if !g.IsPassable(n) {
						continue
					}
					ni := g.index(n.X, n.Y)
					if !seen[ni] {
						seen[ni] = true
						queue = append(queue, ni)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// Connected reports whether all passable cells form a single component.
// A grid without floor counts as connected.
func (g *Grid) Connected() bool {
	return len(g.ConnectedComponents()) <= 1
}
