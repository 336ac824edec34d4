// Package matrix_test provides benchmarks for the Euclidean distance fill,
// using deterministic point sets from builder.
package matrix_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/tourlath/builder"
	"github.com/katalvlaran/tourlath/matrix"
)

// benchSizes are the point counts to benchmark.
var benchSizes = []int{128, 512, 2048}

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.Distance
	sinkF float64
)

func BenchmarkNewEuclidean(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, workers := range []int{1, 0} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				pts, err := builder.Uniform(n, builder.WithSeed(1337), builder.WithScale(1000))
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					d, err := matrix.NewEuclidean(context.Background(), pts, matrix.WithWorkers(workers))
					if err != nil {
						b.Fatal(err)
					}
					sinkD = d
				}
			})
		}
	}
}

func BenchmarkDist(b *testing.B) {
	pts, err := builder.Uniform(512, builder.WithSeed(4242))
	if err != nil {
		b.Fatal(err)
	}
	d, err := matrix.NewEuclidean(context.Background(), pts)
	if err != nil {
		b.Fatal(err)
	}
	n := d.N()

	b.ResetTimer()
	var s float64
	for i := 0; i < b.N; i++ {
		s += d.Dist(i%n, (i*7)%n)
	}
	sinkF = s
}
