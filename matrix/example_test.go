package matrix_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tourlath/geom"
	"github.com/katalvlaran/tourlath/matrix"
)

// ExampleNewEuclidean builds the distance table of a 3-4-5 triangle.
func ExampleNewEuclidean() {
	pts := geom.FromCoords([][2]float64{{0, 0}, {3, 0}, {3, 4}})

	d, err := matrix.NewEuclidean(context.Background(), pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d.ToDense())
	// Output:
	// [0, 3, 5]
	// [3, 0, 4]
	// [5, 4, 0]
}
