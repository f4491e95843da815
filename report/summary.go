package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/annealtsp/runner"
)

const rule = "++++++++++++++++++++++++++++++++++++++++++++++++++"

// Improvement returns the relative gain of best over greedy in percent,
// 100·(greedy − best)/greedy. A zero greedy length yields 0.
func Improvement(greedy, best float64) float64 {
	if greedy == 0 {
		return 0
	}

	return 100 * (greedy - best) / greedy
}

// SummaryOptions tunes Summary. The zero value prints three decimals.
type SummaryOptions struct {
	Precision int  // digits after the decimal point for lengths and %; 0 ⇒ 3
	Runs      bool // append the per-run fitness list

	// LowerBound, when positive, is a lower bound on the optimal length
	// (see tsp.OneTreeBound); the gap of the best tour to it is printed.
	LowerBound float64
}

// Gap returns how far best lies above the lower bound lb, in percent of lb.
// A non-positive lb yields 0.
func Gap(best, lb float64) float64 {
	if lb <= 0 {
		return 0
	}

	return 100 * (best - lb) / lb
}

// Summary writes the summary block of the winning run:
// schedule parameters, greedy and annealing fitness, improvement and timing.
//
// Without a successful run only the schedule and the failure count are
// written.
func Summary(w io.Writer, out runner.Outcome, opts SummaryOptions) error {
	prec := opts.Precision
	if prec <= 0 {
		prec = 3
	}

	var b strings.Builder
	line := func(label, format string, args ...any) {
		fmt.Fprintf(&b, " %-36s: "+format+"\n", append([]any{label}, args...)...)
	}

	b.WriteString(rule + "\n")
	line("Cities", "%d", out.Points)
	line("Initial Temperature", "%.*f", prec, out.Anneal.InitialTemp)
	line("Learning Rate - Alpha", "%g", out.Anneal.Alpha)
	line("Stopping Temperature", "%g", out.Anneal.StopTemp)
	line("Stopping Iteration", "%d", out.StoppingIteration())
	line("Acceptance", "%s", out.Anneal.Acceptance)
	line("Runs (failed)", "%d (%d)", len(out.Runs), out.Failed())
	if out.BestRun >= 0 {
		best := out.Best
		line("Best Run", "%d", out.BestRun)
		line("Best Fitness - Greedy Search", "%.*f", prec, best.GreedyFitness)
		line("Best Fitness - Simulated Annealing", "%.*f", prec, best.Fitness)
		line("Annealing improvement over Greedy", "%.*f%%", prec, Improvement(best.GreedyFitness, best.Fitness))
		line("Annealing Execution Time", "%s", best.Elapsed.Round(time.Millisecond))
		if opts.LowerBound > 0 {
			line("Lower Bound - Held-Karp 1-tree", "%.*f", prec, opts.LowerBound)
			line("Gap to Lower Bound", "%.*f%%", prec, Gap(best.Fitness, opts.LowerBound))
		}
	}
	line("Total Execution Time", "%s", out.TotalElapsed.Round(time.Millisecond))
	line("Wall Clock", "%s", out.WallClock.Round(time.Millisecond))
	b.WriteString(rule + "\n")

	if opts.Runs {
		for i, rep := range ranked(out.Runs) {
			if rep.Err != nil {
				fmt.Fprintf(&b, "Simulated Annealing %d (run %d) failed: %v\n", i+1, rep.Run, rep.Err)
				continue
			}
			fmt.Fprintf(&b, "Simulated Annealing %d (run %d), best fitness is %.*f\n", i+1, rep.Run, prec, rep.Fitness)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: summary: %w", err)
	}

	return nil
}
