package corridor_test

import (
	"fmt"

	"github.com/katalvlaran/roguemaze/corridor"
	"github.com/katalvlaran/roguemaze/grid"
)

// ExamplePath shows both orientations of the same corridor.
func ExamplePath() {
	a, b := grid.Cell{X: 1, Y: 1}, grid.Cell{X: 3, Y: 3}
	fmt.Println(corridor.Path(a, b, true))
	fmt.Println(corridor.Path(a, b, false))
	// Output:
	// [(1,1) (2,1) (3,1) (3,2) (3,3)]
	// [(1,1) (1,2) (1,3) (2,3) (3,3)]
}

// ExampleLine carves a corridor into an empty grid.
func ExampleLine() {
	g, _ := grid.New(6, 4)
	corridor.Line(g, grid.Cell{X: 1, Y: 2}, grid.Cell{X: 4, Y: 1})
	fmt.Print(g)
	// Output:
	// ######
	// #....#
	// ####.#
	// ######
}
