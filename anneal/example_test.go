package anneal_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/tsp"
)

// ExampleEngine_Run anneals the unit square from its greedy tour. The
// schedule 100·0.9ᵏ drops below 1e-3 after 110 iterations.
func ExampleEngine_Run() {
	pts := []tsp.Point{{ID: 1}, {ID: 2, X: 1}, {ID: 3, X: 1, Y: 1}, {ID: 4, Y: 1}}
	dist, err := tsp.NewDistanceMatrix(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, err := tsp.NearestNeighborFrom(dist, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	e, err := anneal.New(dist, start,
		anneal.WithAlpha(0.9),
		anneal.WithSeed(42),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := e.Run(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("stop: %s after %d iterations\n", res.Stop, res.Iterations)
	fmt.Printf("greedy: %.4f best: %.4f\n", res.GreedyFitness, res.Fitness)
	// Output:
	// stop: temperature after 110 iterations
	// greedy: 4.0000 best: 4.0000
}

// ExampleIterationBound predicts when a schedule stops.
func ExampleIterationBound() {
	fmt.Println(anneal.IterationBound(100, 0.99, 1e-3, 100000))
	fmt.Println(anneal.IterationBound(100, 0.99999, 1e-3, 500000))
	// Output:
	// 1146
	// 500000
}
