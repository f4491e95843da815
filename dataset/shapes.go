// Package dataset - synthetic instance generators.
//
// Contract:
//   - Generators are closures; Build runs one with the configured RNG.
//   - Ids are 1..n in generation order; coordinates are rounded to 4 digits.
//   - Parameter errors wrap ErrShape; generators never panic.
//   - Deterministic for a fixed seed.

package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/annealtsp/tsp"
)

// ErrShape indicates invalid generator parameters or an unknown shape name.
var ErrShape = errors.New("dataset: invalid shape")

// Shape names accepted by NewGenerator.
const (
	ShapeUniform   = "uniform"
	ShapeCircle    = "circle"
	ShapeGrid      = "grid"
	ShapeClustered = "clustered"
)

// Generator produces an instance from rng.
type Generator func(rng *rand.Rand) ([]tsp.Point, error)

type genConfig struct {
	rng *rand.Rand
}

// GenOption customizes Build.
type GenOption func(*genConfig)

// WithSeed seeds a fresh RNG (0 ⇒ tsp.DefaultSeed).
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = tsp.NewRNG(seed) }
}

// WithRand uses a caller-owned RNG; nil keeps the default.
func WithRand(rng *rand.Rand) GenOption {
	return func(c *genConfig) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// Build runs g with the configured RNG (tsp.DefaultSeed unless overridden).
func Build(g Generator, opts ...GenOption) ([]tsp.Point, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil generator", ErrShape)
	}
	cfg := genConfig{rng: tsp.NewRNG(tsp.DefaultSeed)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return g(cfg.rng)
}

// Uniform draws n cities uniformly from [0,width)×[0,height).
func Uniform(n int, width, height float64) Generator {
	return func(rng *rand.Rand) ([]tsp.Point, error) {
		if n < 1 || !(width > 0) || !(height > 0) {
			return nil, fmt.Errorf("%w: uniform n=%d width=%g height=%g", ErrShape, n, width, height)
		}

		return Random(n, width, height, rng), nil
	}
}

// Circle places n cities evenly on a circle of the given radius centred at
// (radius, radius). Its optimal tour is the inscribed polygon, of length
// n·2r·sin(π/n). The RNG is unused.
func Circle(n int, radius float64) Generator {
	return func(*rand.Rand) ([]tsp.Point, error) {
		if n < 3 || !(radius > 0) {
			return nil, fmt.Errorf("%w: circle n=%d radius=%g", ErrShape, n, radius)
		}
		pts := make([]tsp.Point, n)
		for i := range pts {
			th := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = tsp.Point{
				ID: i + 1,
				X:  tsp.Round4(radius + radius*math.Cos(th)),
				Y:  tsp.Round4(radius + radius*math.Sin(th)),
			}
		}

		return pts, nil
	}
}

// Grid places rows×cols cities on a lattice with the given spacing, in
// row-major order. With rows·cols even the optimal tour has length
// rows·cols·spacing.
func Grid(rows, cols int, spacing float64) Generator {
	return func(*rand.Rand) ([]tsp.Point, error) {
		if rows < 1 || cols < 1 || rows*cols < 2 || !(spacing > 0) {
			return nil, fmt.Errorf("%w: grid %dx%d spacing=%g", ErrShape, rows, cols, spacing)
		}
		pts := make([]tsp.Point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, tsp.Point{
					ID: len(pts) + 1,
					X:  tsp.Round4(float64(c) * spacing),
					Y:  tsp.Round4(float64(r) * spacing),
				})
			}
		}

		return pts, nil
	}
}

// Clustered draws k centres uniformly from [0,width)×[0,height) and spreads
// n cities around them with a normal offset of the given standard deviation.
// City i belongs to centre i mod k.
func Clustered(n, k int, width, height, spread float64) Generator {
	return func(rng *rand.Rand) ([]tsp.Point, error) {
		if n < 1 || k < 1 || k > n || !(width > 0) || !(height > 0) || spread < 0 {
			return nil, fmt.Errorf("%w: clustered n=%d k=%d spread=%g", ErrShape, n, k, spread)
		}
		centres := make([][2]float64, k)
		for i := range centres {
			centres[i] = [2]float64{rng.Float64() * width, rng.Float64() * height}
		}
		pts := make([]tsp.Point, n)
		for i := range pts {
			c := centres[i%k]
			pts[i] = tsp.Point{
				ID: i + 1,
				X:  tsp.Round4(c[0] + rng.NormFloat64()*spread),
				Y:  tsp.Round4(c[1] + rng.NormFloat64()*spread),
			}
		}

		return pts, nil
	}
}

// NewGenerator maps a shape name to a generator over a width×height area.
// Grid uses the squarest rows×cols layout with rows·cols == n; Circle fits
// the smaller side; Clustered uses the given cluster count.
func NewGenerator(shape string, n int, width, height float64, clusters int) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(shape)) {
	case "", ShapeUniform:
		return Uniform(n, width, height), nil
	case ShapeCircle:
		return Circle(n, math.Min(width, height)/2), nil
	case ShapeGrid:
		rows := int(math.Sqrt(float64(n)))
		for rows > 1 && n%rows != 0 {
			rows--
		}
		if rows < 1 {
			rows = 1
		}
		cols := n / rows
		spacing := width / float64(max(cols-1, 1))
		return Grid(rows, cols, spacing), nil
	case ShapeClustered:
		return Clustered(n, clusters, width, height, math.Min(width, height)/20), nil
	default:
		return nil, fmt.Errorf("%w: unknown shape %q", ErrShape, shape)
	}
}
