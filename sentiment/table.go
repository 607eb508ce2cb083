package sentiment

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Compound scores at or beyond this threshold count as positive
// (negative) in a Summary.
const PolarityThreshold = 0.05

// Table holds one Score per phrase, in input order.
type Table struct {
	rows []Score
}

// NewTable returns a table of the given rows.
func NewTable(rows ...Score) *Table {
	t := &Table{rows: make([]Score, len(rows))}
	copy(t.rows, rows)

	return t
}

// BuildTable scores every phrase, one after the other. The table has
// exactly one row per phrase in the same order; an empty input gives an
// empty table.
func BuildTable(s *Scorer, phrases []string) *Table {
	rows := make([]Score, 0, len(phrases))
	for _, text := range phrases {
		rows = append(rows, s.Score(text))
	}

	return &Table{rows: rows}
}

// BuildTableConcurrent scores phrases on up to workers goroutines
// (unbounded when workers <= 0). The result is the same as BuildTable;
// the only error is the context's.
func BuildTableConcurrent(ctx context.Context, s *Scorer, phrases []string, workers int) (*Table, error) {
	rows := make([]Score, len(phrases))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, text := range phrases {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = s.Score(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Table{rows: rows}, nil
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th row. It panics if i is out of range.
func (t *Table) Row(i int) Score {
	return t.rows[i]
}

// Rows returns a copy of the rows.
func (t *Table) Rows() []Score {
	rows := make([]Score, len(t.rows))
	copy(rows, t.rows)

	return rows
}

func (t *Table) Texts() []string {
	texts := make([]string, len(t.rows))
	for i, row := range t.rows {
		texts[i] = row.Text
	}

	return texts
}

func (t *Table) Compounds() []float64 {
	compounds := make([]float64, len(t.rows))
	for i, row := range t.rows {
		compounds[i] = row.Compound
	}

	return compounds
}

func (t *Table) Colors() []Color {
	colors := make([]Color, len(t.rows))
	for i, row := range t.rows {
		colors[i] = row.Color
	}

	return colors
}

// Summary describes the compound scores of a table.
type Summary struct {
	Count    int     `json:"count"`
	Positive int     `json:"positive"`
	Neutral  int     `json:"neutral"`
	Negative int     `json:"negative"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"stddev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

func (t *Table) Summary() Summary {
	summary := Summary{Count: len(t.rows)}
	if summary.Count == 0 {
		return summary
	}

	compounds := t.Compounds()
	summary.Min, summary.Max = compounds[0], compounds[0]
	for _, c := range compounds {
		switch {
		case c >= PolarityThreshold:
			summary.Positive++
		case c <= -PolarityThreshold:
			summary.Negative++
		default:
			summary.Neutral++
		}
		if c < summary.Min {
			summary.Min = c
		}
		if c > summary.Max {
			summary.Max = c
		}
	}

	if summary.Count == 1 {
		summary.Mean = compounds[0]
		return summary
	}
	summary.Mean, summary.StdDev = stat.MeanStdDev(compounds, nil)

	return summary
}

var csvHeader = []string{"text", "neg", "neu", "pos", "compound", "red", "green", "blue"}

// WriteCSV writes the table with a header row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range t.rows {
		record := []string{
			row.Text,
			formatFloat(row.Negative),
			formatFloat(row.Neutral),
			formatFloat(row.Positive),
			formatFloat(row.Compound),
			formatFloat(row.Color.R),
			formatFloat(row.Color.G),
			formatFloat(row.Color.B),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the rows as a JSON array.
func (t *Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(t.Rows())
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
