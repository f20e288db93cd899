package grid

// WallEdge is one side of a passable cell that faces a wall or the
// outside of the grid.
type WallEdge struct {
	Cell Cell
	Side Dir
}

// WallEdges lists every wall-facing side of every passable cell, cells in
// row-major order and sides in N, E, S, W order.
// Complexity: O(W×H).
func (g *Grid) WallEdges() []WallEdge {
	var out []WallEdge
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[g.index(x, y)] {
				continue
			}
			c := Cell{x, y}
			for _, d := range Dirs {
				if !g.IsPassable(c.Add(d.Offset())) {
					out = append(out, WallEdge{Cell: c, Side: d})
				}
			}
		}
	}

	return out
}
