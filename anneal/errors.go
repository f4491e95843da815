package anneal

import "errors"

// Option validation sentinels. They are always returned wrapped in a
// *tsp.ConfigurationError, so errors.Is(err, tsp.ErrConfiguration) holds too.
var (
	// ErrInitialTemperature indicates InitialTemp is not a positive finite number.
	ErrInitialTemperature = errors.New("anneal: initial temperature must be positive and finite")

	// ErrAlpha indicates the cooling factor is outside (0, 1).
	ErrAlpha = errors.New("anneal: alpha must be in (0, 1)")

	// ErrStopTemperature indicates StopTemp is not in (0, InitialTemp).
	ErrStopTemperature = errors.New("anneal: stopping temperature must be in (0, initial temperature)")

	// ErrMaxIterations indicates MaxIterations < 1.
	ErrMaxIterations = errors.New("anneal: max iterations must be >= 1")

	// ErrAcceptanceMode indicates an unknown AcceptanceMode.
	ErrAcceptanceMode = errors.New("anneal: unknown acceptance mode")
)
