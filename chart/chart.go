// Package chart draws a sentiment table as a horizontal bar chart: one
// bar per phrase, as long as its compound score and filled with its
// sentiment color.
package chart

import (
	"fmt"
	"io"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mileserickson/vader-sentiment-demo/sentiment"
)

const DefaultTitle = "Vader Sentiment Examples"

// maximum runes of a phrase shown as a bar label
const maxLabelLen = 48

// LegendEntry names the sentiment a color channel stands for.
type LegendEntry struct {
	Label string
	Color sentiment.Color
}

// Legend is attached to every chart, whatever sentiments the data holds.
var Legend = []LegendEntry{
	{Label: "Negative", Color: sentiment.Color{R: 1}},
	{Label: "Neutral", Color: sentiment.Color{B: 1}},
	{Label: "Positive", Color: sentiment.Color{G: 1}},
}

type Options struct {
	Title string
	// Width and Height of the drawing. A zero Height grows with the
	// number of rows.
	Width  vg.Length
	Height vg.Length
	// BarWidth is the thickness of a single bar.
	BarWidth vg.Length
	Logger   *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		Title:    DefaultTitle,
		Width:    8 * vg.Inch,
		BarWidth: vg.Points(14),
	}
}

// Chart is a rendered chart, ready to be saved.
type Chart struct {
	Plot *plot.Plot
	// Bars holds the bar of every row, in table order.
	Bars   []*plotter.BarChart
	Width  vg.Length
	Height vg.Length
	Rows   int
}

// Render builds the chart of t. An empty table gives a chart with axes
// and legend only. Errors of the plotting library are returned wrapped.
func Render(t *sentiment.Table, opts Options) (*Chart, error) {
	opts = withDefaults(opts)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Compound score"

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	rows, colors := t.Rows(), t.Colors()
	labels := make([]string, len(rows))
	allBars := make([]*plotter.BarChart, len(rows))
	for i, row := range rows {
		if !colors[i].Valid() {
			return nil, fmt.Errorf("row %d (%q): color %+v outside [0, 1]", i, row.Text, colors[i])
		}

		bars, err := plotter.NewBarChart(plotter.Values{row.Compound}, opts.BarWidth)
		if err != nil {
			return nil, fmt.Errorf("row %d (%q): %w", i, row.Text, err)
		}
		bars.Horizontal = true
		bars.XMin = float64(i)
		bars.Color = colors[i]
		bars.LineStyle.Width = 0
		p.Add(bars)
		allBars[i] = bars

		labels[i] = truncate(row.Text, maxLabelLen)
	}

	// compound scores live in [-1, 1]
	p.X.Min, p.X.Max = -1, 1
	if len(rows) > 0 {
		p.NominalY(labels...)
		p.Y.Min, p.Y.Max = -0.5, float64(len(rows))-0.5
	} else {
		p.Y.Min, p.Y.Max = 0, 1
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
	}

	for _, entry := range Legend {
		p.Legend.Add(entry.Label, swatch{color: entry.Color})
	}
	p.Legend.Top = true

	height := opts.Height
	if height == 0 {
		height = autoHeight(len(rows))
	}

	opts.Logger.Debug("rendered chart",
		zap.Int("rows", len(rows)),
		zap.Float64("width_pt", float64(opts.Width)),
		zap.Float64("height_pt", float64(height)),
	)

	return &Chart{
		Plot:   p,
		Bars:   allBars,
		Width:  opts.Width,
		Height: height,
		Rows:   len(rows),
	}, nil
}

// Save writes the chart to path, in the format given by its extension
// (png, svg, pdf, jpg, eps, tif).
func (c *Chart) Save(path string) error {
	if err := c.Plot.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("save chart to %s: %w", path, err)
	}

	return nil
}

// Encode writes the chart to w in the given format, see Save.
func (c *Chart) Encode(w io.Writer, format string) error {
	wt, err := c.Plot.WriterTo(c.Width, c.Height, format)
	if err != nil {
		return fmt.Errorf("encode chart as %s: %w", format, err)
	}

	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("encode chart as %s: %w", format, err)
	}

	return nil
}

func withDefaults(opts Options) Options {
	defaults := DefaultOptions()
	if opts.Title == "" {
		opts.Title = defaults.Title
	}
	if opts.Width <= 0 {
		opts.Width = defaults.Width
	}
	if opts.Height < 0 {
		opts.Height = 0
	}
	if opts.BarWidth <= 0 {
		opts.BarWidth = defaults.BarWidth
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return opts
}

func autoHeight(rows int) vg.Length {
	return vg.Length(math.Max(3, 1.5+0.35*float64(rows))) * vg.Inch
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}

// swatch is a legend thumbnail filled with a single color.
type swatch struct {
	color sentiment.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, c.ClipPolygonY(pts))
}
