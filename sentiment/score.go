// Package sentiment scores phrases with a VADER analyzer, tags every
// score with a color derived from its components and collects the
// results in an ordered table.
package sentiment

import (
	"go.uber.org/zap"

	"github.com/mileserickson/vader-sentiment-demo/vader"
)

// Analyzer is the polarity scoring capability the Scorer delegates to.
// *vader.SentimentIntensityAnalyzer implements it.
type Analyzer interface {
	PolarityScores(text string) vader.Scores
}

// Score is the sentiment of one phrase.
type Score struct {
	Text     string  `json:"text"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`
	Positive float64 `json:"pos"`
	Compound float64 `json:"compound"`
	Color    Color   `json:"color"`
}

// NewScore builds the Score of text from its polarity scores.
func NewScore(text string, scores vader.Scores) Score {
	return Score{
		Text:     text,
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
		Positive: scores.Positive,
		Compound: scores.Compound,
		Color:    SentimentColor(scores),
	}
}

// Scores returns the polarity scores the Score was built from.
func (s Score) Scores() vader.Scores {
	return vader.Scores{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}
}

// Scorer turns phrases into Scores. It holds no per-call state and can
// be shared between goroutines as long as its Analyzer can.
type Scorer struct {
	analyzer Analyzer
	logger   *zap.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger makes the Scorer log every scored phrase at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scorer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewScorer(analyzer Analyzer, opts ...Option) *Scorer {
	s := &Scorer{
		analyzer: analyzer,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score returns the sentiment of text. Any text is accepted, including
// the empty string.
func (s *Scorer) Score(text string) Score {
	score := NewScore(text, s.analyzer.PolarityScores(text))

	s.logger.Debug("scored phrase",
		zap.String("text", text),
		zap.Float64("compound", score.Compound),
		zap.Float64("neg", score.Negative),
		zap.Float64("neu", score.Neutral),
		zap.Float64("pos", score.Positive),
	)

	return score
}
