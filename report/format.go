// Package report renders search outcomes for humans and tools: the summary
// block, a per-run table (ASCII or Markdown) and the best run's convergence
// history as CSV.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ErrFormat indicates an unknown output format name.
var ErrFormat = errors.New("report: unknown format")

// Mode controls the table output format.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// String returns the configuration name of m.
func (m Mode) String() string {
	switch m {
	case ASCII:
		return "ascii"
	case Markdown:
		return "markdown"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "ascii" (or "") and "markdown" (or "md") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ascii", "text":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// newTable returns a go-pretty writer styled for m.
func newTable(m Mode) table.Writer {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}

	return w
}

// render renders w in mode m.
func render(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}

	return w.Render()
}

// rightAligned configures columns (1-based) as right-aligned numbers.
func rightAligned(cols ...int) []table.ColumnConfig {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight, AlignHeader: text.AlignRight}
	}

	return cfgs
}
