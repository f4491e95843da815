// Package config loads the YAML run configuration and converts it into
// solver options.
//
// Decoding is strict: unknown keys are errors, so a typo never silently falls
// back to a default. Keys missing from the file keep the values of Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/annealtsp/anneal"
	"github.com/katalvlaran/annealtsp/report"
	"github.com/katalvlaran/annealtsp/runner"
)

// ErrInvalid matches every validation failure returned by Config.Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full configuration file.
type Config struct {
	Dataset     string       `yaml:"dataset"`
	Seed        int64        `yaml:"seed"`
	Repetitions int          `yaml:"repetitions"`
	Parallelism int          `yaml:"parallelism"`
	Anneal      AnnealConfig `yaml:"anneal"`
	Output      OutputConfig `yaml:"output"`
	LogLevel    string       `yaml:"log_level"`
}

// AnnealConfig mirrors anneal.Options.
type AnnealConfig struct {
	InitialTemperature  float64 `yaml:"initial_temperature"`
	Alpha               float64 `yaml:"alpha"`
	StoppingTemperature float64 `yaml:"stopping_temperature"`
	MaxIterations       int     `yaml:"max_iterations"`
	Acceptance          string  `yaml:"acceptance"`
	KeepHistory         bool    `yaml:"keep_history"`
	KeepTourHistory     bool    `yaml:"keep_tour_history"`
}

// OutputConfig selects what the CLI writes besides the summary.
type OutputConfig struct {
	HistoryCSV string `yaml:"history_csv"` // empty ⇒ no CSV
	Format     string `yaml:"format"`      // ascii | markdown
	ShowTour   bool   `yaml:"show_tour"`
	LowerBound bool   `yaml:"lower_bound"` // compute the Held–Karp bound
}

// Default returns the reference configuration. Tour snapshots are off: the
// CLI only exports the fitness curve.
func Default() Config {
	d := anneal.DefaultOptions()

	return Config{
		Repetitions: runner.DefaultRepetitions,
		Anneal: AnnealConfig{
			InitialTemperature:  d.InitialTemp,
			Alpha:               d.Alpha,
			StoppingTemperature: d.StopTemp,
			MaxIterations:       d.MaxIterations,
			Acceptance:          d.Acceptance.String(),
			KeepHistory:         true,
			KeepTourHistory:     false,
		},
		Output:   OutputConfig{Format: report.ASCII.String()},
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Parse decodes YAML from r on top of Default and validates the result.
// An empty document yields Default.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field. Range errors of the solver options keep their
// underlying sentinels (e.g. anneal.ErrAlpha) and also match ErrInvalid.
func (c Config) Validate() error {
	if _, err := c.RunnerOptions(nil); err != nil {
		return err
	}
	if _, err := report.ParseMode(c.Output.Format); err != nil {
		return invalid("output.format", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return invalid("log_level", err)
	}

	return nil
}

// Level returns the configured log level (Info if unparsable).
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// Mode returns the configured table mode (ASCII if unparsable).
func (c Config) Mode() report.Mode {
	m, err := report.ParseMode(c.Output.Format)
	if err != nil {
		return report.ASCII
	}

	return m
}

// AnnealOptions converts the anneal section into validated engine options.
func (c Config) AnnealOptions() ([]anneal.Option, error) {
	mode, err := anneal.ParseAcceptanceMode(c.Anneal.Acceptance)
	if err != nil {
		return nil, invalid("anneal.acceptance", err)
	}
	opts := []anneal.Option{
		anneal.WithInitialTemperature(c.Anneal.InitialTemperature),
		anneal.WithAlpha(c.Anneal.Alpha),
		anneal.WithStopTemperature(c.Anneal.StoppingTemperature),
		anneal.WithMaxIterations(c.Anneal.MaxIterations),
		anneal.WithAcceptance(mode),
		anneal.WithHistory(c.Anneal.KeepHistory),
		anneal.WithTourHistory(c.Anneal.KeepTourHistory),
	}
	if err = anneal.Apply(opts...).Validate(); err != nil {
		return nil, invalid("anneal", err)
	}

	return opts, nil
}

// RunnerOptions converts the whole configuration into runner options,
// logging through logger (the logrus standard logger when nil).
func (c Config) RunnerOptions(logger logrus.FieldLogger) ([]runner.Option, error) {
	aopts, err := c.AnnealOptions()
	if err != nil {
		return nil, err
	}
	opts := []runner.Option{
		runner.WithRepetitions(c.Repetitions),
		runner.WithParallelism(c.Parallelism),
		runner.WithSeed(c.Seed),
		runner.WithAnnealOptions(aopts...),
		runner.WithLogger(logger),
	}

	o := runner.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err = o.Validate(); err != nil {
		return nil, invalid("runner", err)
	}

	return opts, nil
}

// fieldError ties a validation failure to its configuration key.
type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string { return fmt.Sprintf("config: %s: %v", e.field, e.err) }

func (e *fieldError) Unwrap() []error { return []error{ErrInvalid, e.err} }

func invalid(field string, err error) error { return &fieldError{field: field, err: err} }
