package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/annealtsp/runner"
	"github.com/katalvlaran/annealtsp/tsp"
)

// ranked returns a copy of reps ordered by fitness (ties by run index);
// failed runs follow in run order.
func ranked(reps []runner.RunReport) []runner.RunReport {
	out := append([]runner.RunReport(nil), reps...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Err == nil) != (b.Err == nil) {
			return a.Err == nil
		}
		if a.Err != nil || a.Fitness == b.Fitness {
			return a.Run < b.Run
		}

		return a.Fitness < b.Fitness
	})

	return out
}

// RunTable renders one row per run, best first. The footer carries the
// summed execution time and the number of failed runs.
func RunTable(out runner.Outcome, m Mode) string {
	w := newTable(m)
	w.AppendHeader(table.Row{"Rank", "Run", "Greedy", "Annealed", "Improvement %", "Iterations", "Stop", "Elapsed", "Error"})

	for i, rep := range ranked(out.Runs) {
		if rep.Err != nil {
			w.AppendRow(table.Row{i + 1, rep.Run, "-", "-", "-", rep.Iterations, rep.Stop, "-", rep.Err.Error()})
			continue
		}
		w.AppendRow(table.Row{
			i + 1,
			rep.Run,
			fmt.Sprintf("%.4f", rep.GreedyFitness),
			fmt.Sprintf("%.4f", rep.Fitness),
			fmt.Sprintf("%.3f", Improvement(rep.GreedyFitness, rep.Fitness)),
			rep.Iterations,
			rep.Stop,
			rep.Elapsed.Round(time.Millisecond),
			"",
		})
	}
	w.AppendFooter(table.Row{"", "", "", "", "", "", "total", out.TotalElapsed.Round(time.Millisecond), fmt.Sprintf("%d failed", out.Failed())})
	w.SetColumnConfigs(rightAligned(1, 2, 3, 4, 5, 6))

	return render(w, m)
}

// TourTable lists tour in visiting order: the matrix index, the city's id
// from points (when points covers every index) and the length of the leg to
// the next city, the last row closing the cycle.
func TourTable(dist *tsp.DistanceMatrix, tour tsp.Tour, points []tsp.Point, m Mode) string {
	w := newTable(m)
	w.AppendHeader(table.Row{"Step", "Index", "City", "Leg"})

	var (
		n     = len(tour)
		total float64
	)
	for i, c := range tour {
		id := c
		if len(points) == n {
			id = points[c].ID
		}
		leg := dist.At(c, tour[(i+1)%n])
		total += leg
		w.AppendRow(table.Row{i + 1, c, id, fmt.Sprintf("%.4f", leg)})
	}
	w.AppendFooter(table.Row{"", "", "total", fmt.Sprintf("%.4f", tsp.Round4(total))})
	w.SetColumnConfigs(rightAligned(1, 2, 3, 4))

	return render(w, m)
}
