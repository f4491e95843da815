package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/config"
	"github.com/katalvlaran/annealtsp/report"
	"github.com/katalvlaran/annealtsp/runner"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, runner.DefaultRepetitions, cfg.Repetitions)
	require.Equal(t, "fixed-initial", cfg.Anneal.Acceptance)
	require.Equal(t, logrus.InfoLevel, cfg.Level())
	require.Equal(t, report.ASCII, cfg.Mode())

	opts, err := cfg.AnnealOptions()
	require.NoError(t, err)
	got := anneal.Apply(opts...)
	want := anneal.DefaultOptions()
	want.KeepTourHistory = false
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("default anneal options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "tr-sample.yaml"))
	require.NoError(t, err)

	want := config.Config{
		Dataset:     "cities.txt",
		Seed:        42,
		Repetitions: 6,
		Parallelism: 2,
		Anneal: config.AnnealConfig{
			InitialTemperature:  50,
			Alpha:               0.999,
			StoppingTemperature: 0.01,
			MaxIterations:       20000,
			Acceptance:          "live-temperature",
			KeepHistory:         true,
		},
		Output:   config.OutputConfig{HistoryCSV: "history.csv", Format: "markdown", ShowTour: true},
		LogLevel: "debug",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, logrus.DebugLevel, cfg.Level())
	require.Equal(t, report.Markdown, cfg.Mode())

	ropts, err := cfg.RunnerOptions(logrus.New())
	require.NoError(t, err)
	o := runner.DefaultOptions()
	for _, opt := range ropts {
		opt(&o)
	}
	require.Equal(t, 6, o.Repetitions)
	require.Equal(t, 2, o.Parallelism)
	require.Equal(t, int64(42), o.Seed)
	a := anneal.Apply(o.Anneal...)
	require.Equal(t, anneal.AcceptLiveTemperature, a.Acceptance)
	require.Equal(t, 20000, a.MaxIterations)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("repetitions: 2\nanneal:\n  alpha: 0.95\n"))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Repetitions)
	require.Equal(t, 0.95, cfg.Anneal.Alpha)
	require.Equal(t, anneal.DefaultInitialTemp, cfg.Anneal.InitialTemperature)
	require.Equal(t, anneal.DefaultMaxIterations, cfg.Anneal.MaxIterations)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse(strings.NewReader("anneal:\n  alhpa: 0.9\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "alhpa")
}

func TestParse_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"alpha", "anneal:\n  alpha: 1.5\n", anneal.ErrAlpha},
		{"stop temperature", "anneal:\n  stopping_temperature: 500\n", anneal.ErrStopTemperature},
		{"iterations", "anneal:\n  max_iterations: 0\n", anneal.ErrMaxIterations},
		{"acceptance", "anneal:\n  acceptance: greedy\n", anneal.ErrAcceptanceMode},
		{"repetitions", "repetitions: 0\n", runner.ErrRepetitions},
		{"parallelism", "parallelism: -2\n", runner.ErrParallelism},
		{"format", "output:\n  format: html\n", report.ErrFormat},
		{"log level", "log_level: loud\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalid)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
