package grid_test

import (
	"fmt"

	"github.com/matzehuels/gategrid/pkg/grid"
)

func ExampleFits() {
	spec := grid.Default()

	fmt.Println(grid.Fits(grid.Rect{X: 9, Y: 0, W: 1, H: 1}, spec))
	fmt.Println(grid.Fits(grid.Rect{X: 9, Y: 0, W: 2, H: 1}, spec))
	// Output:
	// true
	// false
}

func ExampleColumnsIntersect() {
	expanded := grid.Rect{X: 2, Y: 0, W: 3, H: 2}

	// Row does not matter: the expanded tile protects whole columns.
	fmt.Println(grid.ColumnsIntersect(grid.Rect{X: 3, Y: 2, W: 1, H: 1}, expanded))
	fmt.Println(grid.ColumnsIntersect(grid.Rect{X: 5, Y: 2, W: 1, H: 1}, expanded))
	// Output:
	// true
	// false
}
