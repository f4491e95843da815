package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/annealtsp/anneal"
)

// ErrNoHistory indicates a result recorded without fitness history.
var ErrNoHistory = errors.New("report: result has no fitness history")

// WriteHistoryCSV writes the convergence curve of res as
// "iteration,best_fitness" rows, iteration 0 being the starting tour.
func WriteHistoryCSV(w io.Writer, res anneal.RunResult) error {
	if len(res.FitnessHistory) == 0 {
		return ErrNoHistory
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"iteration", "best_fitness"}); err != nil {
		return fmt.Errorf("report: history: %w", err)
	}
	for k, f := range res.FitnessHistory {
		row := []string{strconv.Itoa(k), strconv.FormatFloat(f, 'f', 4, 64)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: history: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: history: %w", err)
	}

	return nil
}
