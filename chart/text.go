package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mileserickson/vader-sentiment-demo/sentiment"
)

const (
	minTextWidth   = 40
	maxTextLabel   = 32
	barGlyph       = "█"
	valueColumnLen = 8
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// RenderText draws t as a bar chart for a terminal at most width cells
// wide. Bars grow left of the axis for negative scores and right of it
// for positive ones.
func RenderText(t *sentiment.Table, width int) string {
	if width < minTextWidth {
		width = minTextWidth
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(DefaultTitle))
	sb.WriteString("\n\n")

	rows := t.Rows()
	if len(rows) == 0 {
		sb.WriteString("(no phrases)\n\n")
		sb.WriteString(textLegend())
		sb.WriteString("\n")
		return sb.String()
	}

	labelWidth := 0
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = truncate(strings.Join(strings.Fields(row.Text), " "), maxTextLabel)
		labelWidth = max(labelWidth, lipgloss.Width(labels[i]))
	}

	// label, space, left half, axis, right half, space, value
	half := (width - labelWidth - valueColumnLen - 3) / 2
	if half < 1 {
		half = 1
	}

	for i, row := range rows {
		n := 0
		if !math.IsNaN(row.Compound) {
			n = int(math.Round(math.Min(math.Abs(row.Compound), 1) * float64(half)))
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color.Hex())).Render(strings.Repeat(barGlyph, n))

		left, right := strings.Repeat(" ", half), strings.Repeat(" ", half)
		switch {
		case row.Compound < 0:
			left = strings.Repeat(" ", half-n) + bar
		case row.Compound > 0:
			right = bar + strings.Repeat(" ", half-n)
		}

		fmt.Fprintf(&sb, "%s%s %s│%s %+.4f\n",
			labels[i], strings.Repeat(" ", labelWidth-lipgloss.Width(labels[i])),
			left, right, row.Compound)
	}

	sb.WriteString("\n")
	sb.WriteString(textLegend())
	sb.WriteString("\n")

	return sb.String()
}

func textLegend() string {
	entries := make([]string, len(Legend))
	for i, entry := range Legend {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Color.Hex())).Render("■")
		entries[i] = swatch + " " + entry.Label
	}

	return strings.Join(entries, "  ")
}
