package grid_test

import (
	"testing"

	"github.com/katalvlaran/roguemaze/grid"
)

// open returns a w×h grid whose interior is entirely floor.
func open(b *testing.B, w, h int) *grid.Grid {
	g, err := grid.New(w, h)
	if err != nil {
		b.Fatal(err)
	}
	g.CarveRect(grid.Rect{X: 1, Y: 1, W: w - 2, H: h - 2})

	return g
}

// BenchmarkBFS_Open floods a 256×256 open floor.
func BenchmarkBFS_Open(b *testing.B) {
	g := open(b, 256, 256)
	start := grid.Cell{X: 1, Y: 1}

	b.ReportAllocs()
	b.SetBytes(int64(g.CountPassable()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.BFS(g, start); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConnectedComponents labels a 256×256 open floor.
func BenchmarkConnectedComponents(b *testing.B) {
	g := open(b, 256, 256)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}
