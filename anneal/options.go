// Package anneal - configuration.
//
// Options follow the functional-options pattern: start from DefaultOptions,
// apply Option values, then Validate. New does all three.
package anneal

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/annealtsp/tsp"
)

// Default parameters, matching the reference driver.
const (
	DefaultInitialTemp   = 100.0
	DefaultAlpha         = 0.99999
	DefaultStopTemp      = 1e-3
	DefaultMaxIterations = 500000
)

// MinCities is the smallest instance the segment-reversal move is defined on.
const MinCities = 4

// AcceptanceMode selects the divisor of the Metropolis criterion.
type AcceptanceMode int

const (
	// AcceptFixedInitial divides by the configured initial temperature for the
	// whole search, regardless of cooling.
	AcceptFixedInitial AcceptanceMode = iota

	// AcceptLiveTemperature divides by the current (cooled) temperature.
	AcceptLiveTemperature
)

// String returns the mode's configuration name.
func (m AcceptanceMode) String() string {
	switch m {
	case AcceptFixedInitial:
		return "fixed-initial"
	case AcceptLiveTemperature:
		return "live-temperature"
	default:
		return fmt.Sprintf("AcceptanceMode(%d)", int(m))
	}
}

// ParseAcceptanceMode maps a configuration name (case-insensitive) to a mode.
// The empty string selects AcceptFixedInitial.
func ParseAcceptanceMode(s string) (AcceptanceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed-initial", "fixed":
		return AcceptFixedInitial, nil
	case "live-temperature", "live":
		return AcceptLiveTemperature, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrAcceptanceMode, s)
	}
}

// Options configures one annealing search.
//
// InitialTemp   – T₀; starting live temperature and the fixed acceptance divisor.
// Alpha         – geometric cooling factor, 0 < α < 1.
// StopTemp      – Tmin; the search stops once the live temperature drops below it.
// MaxIterations – iteration cap, ≥ 1.
// Acceptance    – Metropolis divisor policy (see AcceptanceMode).
// Seed          – seed of the engine's private RNG (0 ⇒ tsp.DefaultSeed).
// RNG           – caller-owned random source; overrides Seed when non-nil.
// KeepHistory   – record the best fitness after every iteration.
// KeepTourHistory – also record the best tour after every iteration
// (O(N·iterations) memory worst case; requires KeepHistory).
type Options struct {
	InitialTemp     float64
	Alpha           float64
	StopTemp        float64
	MaxIterations   int
	Acceptance      AcceptanceMode
	Seed            int64
	RNG             *rand.Rand
	KeepHistory     bool
	KeepTourHistory bool
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithInitialTemperature sets T₀.
func WithInitialTemperature(t0 float64) Option {
	return func(o *Options) { o.InitialTemp = t0 }
}

// WithAlpha sets the cooling factor α.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithStopTemperature sets Tmin.
func WithStopTemperature(tmin float64) Option {
	return func(o *Options) { o.StopTemp = tmin }
}

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithAcceptance selects the Metropolis divisor policy.
func WithAcceptance(m AcceptanceMode) Option {
	return func(o *Options) { o.Acceptance = m }
}

// WithSeed seeds the engine's private RNG.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRNG hands the engine a caller-owned random source. The source must not
// be used concurrently by anyone else while the engine runs.
func WithRNG(rng *rand.Rand) Option {
	return func(o *Options) { o.RNG = rng }
}

// WithHistory toggles fitness (and tour) history recording.
func WithHistory(keep bool) Option {
	return func(o *Options) { o.KeepHistory = keep }
}

// WithTourHistory toggles tour snapshots in the history. Fitness history is
// unaffected.
func WithTourHistory(keep bool) Option {
	return func(o *Options) { o.KeepTourHistory = keep }
}

// DefaultOptions returns the reference configuration:
//   - InitialTemp:   100
//   - Alpha:         0.99999
//   - StopTemp:      1e-3
//   - MaxIterations: 500000
//   - Acceptance:    AcceptFixedInitial
//   - KeepHistory, KeepTourHistory: true
func DefaultOptions() Options {
	return Options{
		InitialTemp:     DefaultInitialTemp,
		Alpha:           DefaultAlpha,
		StopTemp:        DefaultStopTemp,
		MaxIterations:   DefaultMaxIterations,
		Acceptance:      AcceptFixedInitial,
		KeepHistory:     true,
		KeepTourHistory: true,
	}
}

// Apply returns DefaultOptions with opts applied in order.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Validate checks every parameter; the first violation is returned as a
// *tsp.ConfigurationError wrapping one of the sentinels in errors.go.
//
// Complexity: O(1).
func (o Options) Validate() error {
	const op = "anneal.Options"
	if !(o.InitialTemp > 0) || math.IsInf(o.InitialTemp, 0) {
		return &tsp.ConfigurationError{Op: op, Err: ErrInitialTemperature}
	}
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return &tsp.ConfigurationError{Op: op, Err: ErrAlpha}
	}
	if !(o.StopTemp > 0 && o.StopTemp < o.InitialTemp) {
		return &tsp.ConfigurationError{Op: op, Err: ErrStopTemperature}
	}
	if o.MaxIterations < 1 {
		return &tsp.ConfigurationError{Op: op, Err: ErrMaxIterations}
	}
	if o.Acceptance != AcceptFixedInitial && o.Acceptance != AcceptLiveTemperature {
		return &tsp.ConfigurationError{Op: op, Err: ErrAcceptanceMode}
	}

	return nil
}
