// Package dataset reads and writes city coordinate files.
//
// Format: one city per line, three whitespace-separated fields
//
//	id x y
//
// The id may be written as a float ("1.0") as long as it is integral. Blank
// lines are ignored and '#' starts a comment that runs to the end of the
// line. Line order defines the city index used by the solver.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/annealtsp/tsp"
)

var (
	// ErrMalformedLine matches every *ParseError.
	ErrMalformedLine = errors.New("dataset: malformed line")

	// ErrNoPoints indicates an input without a single city.
	ErrNoPoints = errors.New("dataset: no points")

	// errFieldCount and errFractionalID are ParseError details.
	errFieldCount   = errors.New("want 3 fields: id x y")
	errFractionalID = errors.New("id is not an integer")
)

// ParseError locates a bad input line.
type ParseError struct {
	Line int    // 1-based
	Text string // offending line, trimmed
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap exposes the detail error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrMalformedLine.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedLine }

// Read parses every city from r.
//
// Complexity: O(size of input).
func Read(r io.Reader) ([]tsp.Point, error) {
	var (
		pts  []tsp.Point
		line int
		sc   = bufio.NewScanner(r)
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		p, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}

	return pts, nil
}

func parseLine(text string) (tsp.Point, error) {
	f := strings.Fields(text)
	if len(f) != 3 {
		return tsp.Point{}, errFieldCount
	}

	var (
		v   [3]float64
		err error
	)
	for i := range f {
		if v[i], err = strconv.ParseFloat(f[i], 64); err != nil {
			return tsp.Point{}, err
		}
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return tsp.Point{}, tsp.ErrNonFiniteCoordinate
		}
	}
	if v[0] != math.Trunc(v[0]) || math.Abs(v[0]) > math.MaxInt32 {
		return tsp.Point{}, errFractionalID
	}

	return tsp.Point{ID: int(v[0]), X: v[1], Y: v[2]}, nil
}

// Load reads the file at path.
func Load(path string) ([]tsp.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	pts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// Write emits pts in the format Read accepts, with 4-digit coordinates.
func Write(w io.Writer, pts []tsp.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%d %.4f %.4f\n", p.ID, p.X, p.Y); err != nil {
			return fmt.Errorf("dataset: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dataset: write: %w", err)
	}

	return nil
}

// Random returns n cities drawn uniformly from [0,width)×[0,height), with
// ids 1..n. n < 1 yields nil.
func Random(n int, width, height float64, rng *rand.Rand) []tsp.Point {
	if n < 1 || rng == nil {
		return nil
	}
	pts := make([]tsp.Point, n)
	for i := range pts {
		pts[i] = tsp.Point{
			ID: i + 1,
			X:  tsp.Round4(rng.Float64() * width),
			Y:  tsp.Round4(rng.Float64() * height),
		}
	}

	return pts
}
