package builder_test

import (
	"fmt"

	"github.com/katalvlaran/tourlath/builder"
)

// ExampleGrid lays out a 2×2 lattice with spacing 3.
func ExampleGrid() {
	pts, err := builder.Grid(2, 2, builder.WithScale(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range pts {
		fmt.Printf("%d:(%g,%g) ", p.ID, p.X, p.Y)
	}
	fmt.Println()
	// Output:
	// 0:(0,0) 1:(3,0) 2:(0,3) 3:(3,3)
}
