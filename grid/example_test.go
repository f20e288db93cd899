package grid_test

import (
	"fmt"

	"github.com/katalvlaran/roguemaze/grid"
)

// ExampleBFS finds the far end of a winding corridor.
func ExampleBFS() {
	g, _ := grid.FromRows(
		"#######",
		"#.....#",
		"#.###.#",
		"#.#...#",
		"#######",
	)
	res, err := grid.BFS(g, grid.Cell{X: 1, Y: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Farthest, res.MaxDepth)
	// Output:
	// (3,1) 10
}

// ExampleGrid_CarveBorder carves the frame of a room.
func ExampleGrid_CarveBorder() {
	g, _ := grid.New(6, 5)
	g.CarveBorder(grid.Rect{X: 1, Y: 1, W: 4, H: 3})
	fmt.Print(g)
	// Output:
	// ######
	// #....#
	// #.##.#
	// #....#
	// ######
}
