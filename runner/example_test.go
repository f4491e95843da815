package runner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/runner"
	"github.com/katalvlaran/annealtsp/tsp"
)

// ExampleRunner_Run repeats a short search three times over a unit square.
func ExampleRunner_Run() {
	pts := []tsp.Point{{ID: 1}, {ID: 2, X: 1}, {ID: 3, X: 1, Y: 1}, {ID: 4, Y: 1}}

	r, err := runner.New(pts,
		runner.WithRepetitions(3),
		runner.WithSeed(42),
		runner.WithAnnealOptions(anneal.WithAlpha(0.9)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, err := r.Run(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("runs: %d failed: %d\n", len(out.Runs), out.Failed())
	fmt.Printf("best: %.4f after %d iterations\n", out.Best.Fitness, out.Best.Iterations)
	// Output:
	// runs: 3 failed: 0
	// best: 4.0000 after 110 iterations
}
