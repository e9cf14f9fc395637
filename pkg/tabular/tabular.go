package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/bugra/fakedatagen/pkg/ferrors"
	"github.com/bugra/fakedatagen/pkg/model"
)

// Config bounds one Write call.
type Config struct {
	Samples   int     // number of rows to emit
	ColRate   float64 // tsvColRate: per-node inclusion probability
	Recursion int     // tsvRecursion: name-expansion depth for headers
}

// column is one selected node, tagged with the weld prefix of the model it
// came from so multiple graphs' columns can share one pair of files.
type column struct {
	node   *model.Node
	prefix string
}

func weldPrefix(index, total int) string {
	if total <= 1 {
		return ""
	}
	return string(rune('a' + index))
}

// SelectColumns keeps each of nodes independently with probability rate,
// then returns the survivors in a uniformly shuffled order (spec.md §4.8).
func SelectColumns(nodes []*model.Node, rate float64, rng *rand.Rand) []*model.Node {
	var selected []*model.Node
	for _, n := range nodes {
		if rng.Float64() < rate {
			selected = append(selected, n)
		}
	}
	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected
}

func selectColumns(models []*model.Model, rate float64, rng *rand.Rand) []column {
	var cols []column
	for gi, m := range models {
		prefix := weldPrefix(gi, len(models))
		for _, n := range SelectColumns(m.Nodes, rate, rng) {
			cols = append(cols, column{node: n, prefix: prefix})
		}
	}
	rng.Shuffle(len(cols), func(i, j int) {
		cols[i], cols[j] = cols[j], cols[i]
	})
	return cols
}

// header renders the shared header row for cols, expanding each node's name
// to recursion levels. When noisy is true, each entry additionally names its
// column's noise operator.
func header(cols []*model.Node, recursion int, noisy bool) []string {
	row := make([]string, len(cols))
	for i, n := range cols {
		row[i] = headerFor(column{node: n}, recursion, noisy)
	}
	return row
}

func headerFor(c column, recursion int, noisy bool) string {
	base := fmt.Sprintf("%s%s:%s", c.prefix, c.node.ID, c.node.GenerateName(recursion))
	if noisy {
		base = fmt.Sprintf("%s (as %s)", base, c.node.Noise.GenerateName([]string{c.node.ID}))
	}
	return base
}

// Write streams cfg.Samples rows of models' selected, welded columns to
// clean and noisy, both tab-separated. clean records each column's
// Calculate value, noisy its ColumnValue (calculate run back through the
// column's noise operator). Rows are evaluated with a fresh cache each time
// via Model.ResetRow, so memory stays bounded by the models' combined width
// rather than by the row count. ctx is checked between rows so a cancelled
// run stops at a row boundary instead of mid-row.
func Write(ctx context.Context, clean, noisy io.Writer, models []*model.Model, cfg Config, rng *rand.Rand) error {
	cols := selectColumns(models, cfg.ColRate, rng)

	cw := csv.NewWriter(clean)
	cw.Comma = '\t'
	nw := csv.NewWriter(noisy)
	nw.Comma = '\t'

	cleanHeader := make([]string, len(cols))
	noisyHeader := make([]string, len(cols))
	for i, c := range cols {
		cleanHeader[i] = headerFor(c, cfg.Recursion, false)
		noisyHeader[i] = headerFor(c, cfg.Recursion, true)
	}
	if err := cw.Write(cleanHeader); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeIO, err, "tabular: write clean header")
	}
	if err := nw.Write(noisyHeader); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeIO, err, "tabular: write noisy header")
	}

	cleanRow := make([]string, len(cols))
	noisyRow := make([]string, len(cols))
	for x := 0; x < cfg.Samples; x++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i, c := range cols {
			cleanRow[i] = formatValue(c.node.Calculate(x))
			noisyRow[i] = formatValue(c.node.ColumnValue(x))
		}
		if err := cw.Write(cleanRow); err != nil {
			return ferrors.Wrap(ferrors.ErrCodeIO, err, "tabular: write clean row %d", x)
		}
		if err := nw.Write(noisyRow); err != nil {
			return ferrors.Wrap(ferrors.ErrCodeIO, err, "tabular: write noisy row %d", x)
		}
		for _, m := range models {
			m.ResetRow()
		}
	}

	cw.Flush()
	nw.Flush()
	if err := cw.Error(); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeIO, err, "tabular: flush clean file")
	}
	if err := nw.Error(); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeIO, err, "tabular: flush noisy file")
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
