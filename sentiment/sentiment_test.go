package sentiment

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mileserickson/vader-sentiment-demo/vader"
)

// fixedAnalyzer returns canned scores and counts calls.
type fixedAnalyzer struct {
	scores map[string]vader.Scores
	calls  int
}

func (f *fixedAnalyzer) PolarityScores(text string) vader.Scores {
	f.calls++
	return f.scores[text]
}

func newScorer(t *testing.T) *Scorer {
	t.Helper()

	sia, err := vader.New()
	require.NoError(t, err)

	return NewScorer(sia)
}

func TestScorer_Score(t *testing.T) {
	analyzer := &fixedAnalyzer{scores: map[string]vader.Scores{
		"meh": {Negative: 0.2, Neutral: 0.7, Positive: 0.1, Compound: -0.1},
	}}
	s := NewScorer(analyzer)

	got := s.Score("meh")
	want := Score{
		Text:     "meh",
		Negative: 0.2,
		Neutral:  0.7,
		Positive: 0.1,
		Compound: -0.1,
		Color:    Color{R: 0.2, G: 0.1, B: 0.7},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, analyzer.scores["meh"], got.Scores())
	assert.Equal(t, 1, analyzer.calls)
}

func TestScorer_Examples(t *testing.T) {
	s := newScorer(t)

	love := s.Score("I love this!")
	assert.Greater(t, love.Compound, 0.0)
	assert.Greater(t, love.Positive, love.Negative)
	assert.Greater(t, love.Color.G, love.Color.R)

	hate := s.Score("I hate this.")
	assert.Less(t, hate.Compound, 0.0)
	assert.Greater(t, hate.Color.R, hate.Color.G)

	empty := s.Score("")
	assert.InDelta(t, 1.0, empty.Neutral, 0.01)
	assert.InDelta(t, 0.0, empty.Compound, 0.01)
	assert.Equal(t, Color{B: 1}, empty.Color)
}

func TestScorer_Deterministic(t *testing.T) {
	s := newScorer(t)

	for _, text := range []string{"I love this!", "I hate this.", "", "Not bad at all"} {
		assert.Equal(t, s.Score(text), s.Score(text), text)
	}
}

func TestScorer_ColorMatchesComponents(t *testing.T) {
	s := newScorer(t)

	for _, text := range []string{"great", "terrible", "ok", "The food was terrible, but the service was good", ""} {
		score := s.Score(text)
		for _, v := range []float64{score.Negative, score.Neutral, score.Positive} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
		assert.Equal(t, Color{R: score.Negative, G: score.Positive, B: score.Neutral}, score.Color, text)
		assert.True(t, score.Color.Valid())
	}
}

func TestScorer_WithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sia, err := vader.New()
	require.NoError(t, err)

	s := NewScorer(sia, WithLogger(zap.New(core)))
	s.Score("great")

	entries := logs.FilterMessage("scored phrase").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "great", entries[0].ContextMap()["text"])
}

func TestBuildTable(t *testing.T) {
	s := newScorer(t)
	phrases := []string{"great", "terrible", "ok"}

	table := BuildTable(s, phrases)

	require.Equal(t, len(phrases), table.Len())
	assert.Equal(t, phrases, table.Texts())
	assert.Greater(t, table.Row(0).Compound, 0.0)
	assert.Less(t, table.Row(1).Compound, 0.0)
	assert.Greater(t, table.Row(2).Compound, 0.0)
	for i, text := range phrases {
		assert.Equal(t, s.Score(text), table.Row(i))
	}
}

func TestBuildTable_KeepsDuplicates(t *testing.T) {
	s := newScorer(t)
	phrases := []string{"ok", "", "ok", "great", ""}

	table := BuildTable(s, phrases)

	assert.Equal(t, phrases, table.Texts())
}

func TestBuildTable_Empty(t *testing.T) {
	s := newScorer(t)

	for _, phrases := range [][]string{nil, {}} {
		table := BuildTable(s, phrases)
		assert.Equal(t, 0, table.Len())
		assert.Empty(t, table.Rows())
		assert.Empty(t, table.Compounds())
		assert.Equal(t, Summary{}, table.Summary())
	}
}

func TestBuildTableConcurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := newScorer(t)
	phrases := []string{
		"VADER is smart, handsome, and funny.",
		"VADER is not smart, handsome, nor funny.",
		"great", "terrible", "ok", "",
		"The book was kind of good.",
		"Today SUX!",
	}

	for _, workers := range []int{0, 1, 3, 16} {
		table, err := BuildTableConcurrent(context.Background(), s, phrases, workers)
		require.NoError(t, err)

		if diff := cmp.Diff(BuildTable(s, phrases).Rows(), table.Rows()); diff != "" {
			t.Errorf("workers=%d: rows mismatch (-sequential +concurrent):\n%s", workers, diff)
		}
	}
}

func TestBuildTableConcurrent_Canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table, err := BuildTableConcurrent(ctx, newScorer(t), []string{"great", "ok"}, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, table)
}

func TestTable_Summary(t *testing.T) {
	table := NewTable(
		Score{Text: "a", Compound: 0.5},
		Score{Text: "b", Compound: -0.5},
		Score{Text: "c", Compound: 0.0},
		Score{Text: "d", Compound: 0.04},
	)

	summary := table.Summary()

	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, 1, summary.Positive)
	assert.Equal(t, 1, summary.Negative)
	assert.Equal(t, 2, summary.Neutral)
	assert.InDelta(t, 0.01, summary.Mean, 1e-9)
	assert.Greater(t, summary.StdDev, 0.0)
	assert.Equal(t, -0.5, summary.Min)
	assert.Equal(t, 0.5, summary.Max)

	single := NewTable(Score{Compound: 0.7}).Summary()
	assert.Equal(t, 0.7, single.Mean)
	assert.Equal(t, 0.0, single.StdDev)
}

func TestTable_Columns(t *testing.T) {
	table := NewTable(
		Score{Text: "up", Compound: 0.6, Color: Color{R: 0.1, G: 0.6, B: 0.3}},
		Score{Text: "down", Compound: -0.8, Color: Color{R: 0.7, B: 0.3}},
	)

	assert.Equal(t, []string{"up", "down"}, table.Texts())
	assert.Equal(t, []float64{0.6, -0.8}, table.Compounds())
	assert.Equal(t, []Color{{R: 0.1, G: 0.6, B: 0.3}, {R: 0.7, B: 0.3}}, table.Colors())

	colors := table.Colors()
	colors[0] = Color{}
	assert.Equal(t, Color{R: 0.1, G: 0.6, B: 0.3}, table.Row(0).Color)

	assert.Empty(t, NewTable().Colors())
}

func TestTable_RowsAreCopies(t *testing.T) {
	table := NewTable(Score{Text: "a"})

	rows := table.Rows()
	rows[0].Text = "changed"

	assert.Equal(t, "a", table.Row(0).Text)
}

func TestTable_WriteCSV(t *testing.T) {
	table := NewTable(
		Score{Text: "I love this, really", Negative: 0, Neutral: 0.308, Positive: 0.692, Compound: 0.6696, Color: Color{G: 0.692, B: 0.308}},
		Score{Text: "", Neutral: 1, Color: Color{B: 1}},
	)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"I love this, really", "0", "0.308", "0.692", "0.6696", "0", "0.692", "0.308"}, records[1])
	assert.Equal(t, []string{"", "0", "1", "0", "0", "0", "0", "1"}, records[2])
}

func TestTable_WriteJSON(t *testing.T) {
	table := NewTable(Score{Text: "ok", Neutral: 0.2, Positive: 0.8, Compound: 0.296, Color: Color{G: 0.8, B: 0.2}})

	var buf bytes.Buffer
	require.NoError(t, table.WriteJSON(&buf))

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "ok", raw[0]["text"])
	assert.Equal(t, []any{0.0, 0.8, 0.2}, raw[0]["color"])

	var rows []Score
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	assert.Equal(t, table.Rows(), rows)
}

func TestColor(t *testing.T) {
	c := SentimentColor(vader.Scores{Negative: 1, Neutral: 0.5, Positive: 0})

	assert.Equal(t, Color{R: 1, G: 0, B: 0.5}, c)
	assert.Equal(t, "#ff0080", c.Hex())

	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x8000), b)
	assert.Equal(t, uint32(0xffff), a)

	assert.True(t, c.Valid())
	assert.False(t, Color{R: 1.2}.Valid())
	assert.False(t, Color{G: -0.1}.Valid())
}
