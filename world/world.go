// Package world maps grid cells to world-space positions for the
// collaborators that build geometry and entities from a level.
//
// Two frames are supported: a corner frame, where cell (x,y) sits at
// (x·s, 0, y·s) from the origin, and a centred frame, where the whole grid
// is centred on the origin and positions are cell centres. Grid Y maps to
// world Z.
package world

import (
	"github.com/katalvlaran/roguemaze/grid"
	"github.com/katalvlaran/roguemaze/level"
	"github.com/katalvlaran/roguemaze/placement"
)

// Vec3 is a world-space point.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Frame converts cell coordinates into world positions.
type Frame struct {
	CellSize float64
	Origin   Vec3
	Centered bool

	// Width and Height of the grid, needed by centred frames.
	Width, Height int
}

// ForSnapshot returns a frame sized for s, using its configured cell size.
func ForSnapshot(s *level.Snapshot, origin Vec3, centered bool) Frame {
	return Frame{
		CellSize: s.Config().CellSize,
		Origin:   origin,
		Centered: centered,
		Width:    s.Width(),
		Height:   s.Height(),
	}
}

// Position returns the world position of c at ground level.
func (f Frame) Position(c grid.Cell) Vec3 {
	s := f.CellSize
	if !f.Centered {
		return f.Origin.Add(Vec3{X: float64(c.X) * s, Z: float64(c.Y) * s})
	}

	return f.Origin.Add(Vec3{
		X: float64(c.X)*s + s/2 - float64(f.Width)*s/2,
		Z: float64(c.Y)*s + s/2 - float64(f.Height)*s/2,
	})
}

// SpawnPosition returns the position of sp including its in-cell jitter.
func (f Frame) SpawnPosition(sp placement.Spawn) Vec3 {
	return f.Position(sp.Cell).Add(Vec3{X: sp.JitterX, Z: sp.JitterZ})
}

// Wall is one wall segment on the side of a floor cell.
type Wall struct {
	Cell     grid.Cell
	Side     grid.Dir
	Position Vec3
	Yaw      float64 // degrees around +Y: 0 for N/S walls, 90 for E/W walls
}

// Walls lists a segment for every side of a floor cell that faces a wall
// or the outside of g, in grid.WallEdges order.
func (f Frame) Walls(g *grid.Grid) []Wall {
	half := f.CellSize / 2
	edges := g.WallEdges()
	out := make([]Wall, 0, len(edges))
	for _, e := range edges {
		o := e.Side.Offset()
		w := Wall{
			Cell:     e.Cell,
			Side:     e.Side,
			Position: f.Position(e.Cell).Add(Vec3{X: float64(o.X) * half, Z: float64(o.Y) * half}),
		}
		if e.Side == grid.East || e.Side == grid.West {
			w.Yaw = 90
		}
		out = append(out, w)
	}

	return out
}
