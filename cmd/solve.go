package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/annealtsp/config"
	"github.com/katalvlaran/annealtsp/dataset"
	"github.com/katalvlaran/annealtsp/report"
	"github.com/katalvlaran/annealtsp/runner"
	"github.com/katalvlaran/annealtsp/tsp"
)

// errNoDataset is returned when neither --points nor the config names a file.
var errNoDataset = errors.New("solve: no dataset (use --points or set dataset in the config)")

type solveFlags struct {
	points      string
	config      string
	repetitions int
	parallel    int
	seed        int64
	t0          float64
	alpha       float64
	tmin        float64
	maxIter     int
	acceptance  string
	historyCSV  string
	format      string
	showTour    bool
	lowerBound  bool
	timeout     time.Duration
	logLevel    string
}

func newSolveCmd() *cobra.Command {
	f := &solveFlags{}
	def := config.Default()

	c := &cobra.Command{
		Use:   "solve",
		Short: "Run repeated greedy + simulated annealing searches over a point file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runSolve(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.Flags(), f)
		},
	}

	fl := c.Flags()
	fl.StringVarP(&f.points, "points", "p", "", "Point file, one 'id x y' per line")
	fl.StringVarP(&f.config, "config", "c", "", "YAML configuration file; flags override its values")
	fl.IntVarP(&f.repetitions, "repetitions", "r", def.Repetitions, "Number of independent runs")
	fl.IntVar(&f.parallel, "parallel", def.Parallelism, "Concurrent runs (0 = GOMAXPROCS, 1 = sequential)")
	fl.Int64Var(&f.seed, "seed", def.Seed, "Base seed; run i uses a stream derived from it")
	fl.Float64Var(&f.t0, "t0", def.Anneal.InitialTemperature, "Initial temperature")
	fl.Float64Var(&f.alpha, "alpha", def.Anneal.Alpha, "Geometric cooling factor in (0,1)")
	fl.Float64Var(&f.tmin, "tmin", def.Anneal.StoppingTemperature, "Stopping temperature")
	fl.IntVar(&f.maxIter, "max-iter", def.Anneal.MaxIterations, "Iteration cap per run")
	fl.StringVar(&f.acceptance, "acceptance", def.Anneal.Acceptance, "Metropolis divisor: fixed-initial or live-temperature")
	fl.StringVar(&f.historyCSV, "history-csv", def.Output.HistoryCSV, "Write the best run's fitness history to this CSV file")
	fl.StringVar(&f.format, "format", def.Output.Format, "Table format: ascii or markdown")
	fl.BoolVar(&f.showTour, "show-tour", def.Output.ShowTour, "Print the best tour")
	fl.BoolVar(&f.lowerBound, "lower-bound", def.Output.LowerBound, "Report the gap to the Held-Karp 1-tree lower bound")
	fl.DurationVar(&f.timeout, "timeout", 0, "Abort the search after this duration (0 = none)")
	fl.StringVar(&f.logLevel, "log", def.LogLevel, "Log level (trace, debug, info, warn, error)")

	return c
}

// resolveConfig layers the config file (if any) and explicitly set flags on
// top of the defaults.
func resolveConfig(fl *pflag.FlagSet, f *solveFlags) (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return config.Config{}, err
		}
	}

	set := func(name string, apply func()) {
		if fl.Changed(name) {
			apply()
		}
	}
	set("points", func() { cfg.Dataset = f.points })
	set("repetitions", func() { cfg.Repetitions = f.repetitions })
	set("parallel", func() { cfg.Parallelism = f.parallel })
	set("seed", func() { cfg.Seed = f.seed })
	set("t0", func() { cfg.Anneal.InitialTemperature = f.t0 })
	set("alpha", func() { cfg.Anneal.Alpha = f.alpha })
	set("tmin", func() { cfg.Anneal.StoppingTemperature = f.tmin })
	set("max-iter", func() { cfg.Anneal.MaxIterations = f.maxIter })
	set("acceptance", func() { cfg.Anneal.Acceptance = f.acceptance })
	set("history-csv", func() { cfg.Output.HistoryCSV = f.historyCSV })
	set("format", func() { cfg.Output.Format = f.format })
	set("show-tour", func() { cfg.Output.ShowTour = f.showTour })
	set("lower-bound", func() { cfg.Output.LowerBound = f.lowerBound })
	set("log", func() { cfg.LogLevel = f.logLevel })

	if cfg.Output.HistoryCSV != "" {
		cfg.Anneal.KeepHistory = true
	}
	if cfg.Dataset == "" {
		return config.Config{}, errNoDataset
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func runSolve(ctx context.Context, stdout, stderr io.Writer, fl *pflag.FlagSet, f *solveFlags) error {
	cfg, err := resolveConfig(fl, f)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(cfg.Level())

	pts, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"dataset": cfg.Dataset, "cities": len(pts)}).Info("dataset loaded")

	ropts, err := cfg.RunnerOptions(logger)
	if err != nil {
		return err
	}
	r, err := runner.New(pts, ropts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	out, runErr := r.Run(ctx)
	if out.BestRun < 0 {
		return runErr
	}
	if runErr != nil {
		logger.WithError(runErr).Warn("search interrupted, reporting completed runs")
	}

	sopts := report.SummaryOptions{Runs: true}
	if cfg.Output.LowerBound {
		bcfg := tsp.DefaultBoundConfig()
		bcfg.UB = out.Best.Fitness
		if sopts.LowerBound, err = tsp.OneTreeBound(r.Matrix(), bcfg); err != nil {
			return err
		}
	}
	if err = report.Summary(stdout, out, sopts); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, report.RunTable(out, cfg.Mode()))
	if cfg.Output.ShowTour {
		tour, terr := tsp.RotateToStart(out.Best.Tour, 0)
		if terr != nil {
			return terr
		}
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, report.TourTable(r.Matrix(), tour, pts, cfg.Mode()))
	}
	if cfg.Output.HistoryCSV != "" {
		if err = writeHistory(cfg.Output.HistoryCSV, out); err != nil {
			return err
		}
		logger.WithField("path", cfg.Output.HistoryCSV).Info("fitness history written")
	}

	return runErr
}

func writeHistory(path string, out runner.Outcome) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if err = report.WriteHistoryCSV(file, out.Best); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
