package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/mileserickson/vader-sentiment-demo/chart"
	"github.com/mileserickson/vader-sentiment-demo/segment"
	"github.com/mileserickson/vader-sentiment-demo/sentiment"
)

// inputFlags select where phrases come from besides the arguments.
type inputFlags struct {
	file      string
	sentences bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read phrases from a file, one per line (- for stdin)")
	cmd.Flags().BoolVar(&f.sentences, "sentences", false, "split the file into sentences instead of lines")
}

// phrases returns the arguments followed by the phrases of the input file.
func (f *inputFlags) phrases(cmd *cobra.Command, args []string) ([]string, error) {
	phrases := append([]string(nil), args...)
	if f.file == "" {
		if f.sentences {
			return nil, fmt.Errorf("--sentences requires --file")
		}
		return phrases, nil
	}

	var r io.Reader = cmd.InOrStdin()
	if f.file != "-" {
		file, err := os.Open(f.file)
		if err != nil {
			return nil, fmt.Errorf("failed to open phrases: %w", err)
		}
		defer file.Close()
		r = file
	}

	var read []string
	var err error
	if f.sentences {
		read, err = segment.ReadSentences(r)
	} else {
		read, err = segment.Lines(r)
	}
	if err != nil {
		return nil, err
	}

	return append(phrases, read...), nil
}

// chartFlags override the chart section of the configuration.
type chartFlags struct {
	out      string
	title    string
	width    float64
	height   float64
	terminal bool
	columns  int
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "chart file; the extension selects png, svg, pdf, jpg, eps or tif (default from config)")
	cmd.Flags().StringVar(&f.title, "title", "", "chart title (default from config)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "chart width in inches (default from config)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "chart height in inches, 0 grows with the phrases (default from config)")
	cmd.Flags().BoolVar(&f.terminal, "terminal", false, "draw the chart on the terminal instead of a file")
	cmd.Flags().IntVar(&f.columns, "columns", 80, "terminal chart width in cells")
}

func (a *app) drawChart(cmd *cobra.Command, f *chartFlags, t *sentiment.Table) error {
	if f.terminal {
		_, err := fmt.Fprint(cmd.OutOrStdout(), chart.RenderText(t, f.columns))
		return err
	}

	opts := chart.Options{
		Title:  a.cfg.Title,
		Width:  vg.Length(a.cfg.Chart.Width) * vg.Inch,
		Height: vg.Length(a.cfg.Chart.Height) * vg.Inch,
		Logger: a.logger,
	}
	if f.title != "" {
		opts.Title = f.title
	}
	if f.width > 0 {
		opts.Width = vg.Length(f.width) * vg.Inch
	}
	if f.height > 0 {
		opts.Height = vg.Length(f.height) * vg.Inch
	}
	path := a.cfg.Chart.Path
	if f.out != "" {
		path = f.out
	}

	c, err := chart.Render(t, opts)
	if err != nil {
		return err
	}
	if err := c.Save(path); err != nil {
		return err
	}

	a.logger.Info("chart written", zap.String("path", path), zap.Int("phrases", c.Rows))
	fmt.Fprintf(cmd.OutOrStdout(), "chart of %d phrases written to %s\n", c.Rows, path)

	return nil
}

func (a *app) scoreCmd() *cobra.Command {
	var input inputFlags
	var format string

	cmd := &cobra.Command{
		Use:   "score [phrases...]",
		Short: "Print the sentiment scores of phrases",
		Long: `Scores every phrase and prints one row per phrase, in input order, with
its negative, neutral, positive and compound scores and its color.`,
		Example: `  vader-sentiment-demo score "I love this!" "I hate this."
  vader-sentiment-demo score --file reviews.txt --sentences --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrases, err := input.phrases(cmd, args)
			if err != nil {
				return err
			}
			if format == "" {
				format = a.cfg.Output.Format
			}

			t, err := a.scoreTable(cmd.Context(), phrases)
			if err != nil {
				return err
			}

			return writeTable(cmd.OutOrStdout(), t, format)
		},
	}

	input.register(cmd)
	cmd.Flags().StringVar(&format, "format", "", "output format: text, csv or json (default from config)")

	return cmd
}

func (a *app) plotCmd() *cobra.Command {
	var input inputFlags
	var flags chartFlags

	cmd := &cobra.Command{
		Use:   "plot [phrases...]",
		Short: "Chart the sentiment of phrases",
		Long: `Scores every phrase and draws a horizontal bar per phrase: the bar is as
long as the compound score and colored red, green and blue by the
negative, positive and neutral proportions.`,
		Example: `  vader-sentiment-demo plot -o chart.svg great terrible ok
  vader-sentiment-demo plot --terminal --file reviews.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrases, err := input.phrases(cmd, args)
			if err != nil {
				return err
			}

			t, err := a.scoreTable(cmd.Context(), phrases)
			if err != nil {
				return err
			}

			return a.drawChart(cmd, &flags, t)
		},
	}

	input.register(cmd)
	flags.register(cmd)

	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	var flags chartFlags
	var tricky bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Score and chart the classic VADER example sentences",
		Long: `Analyzes typical example cases, including handling of:
  -- negations
  -- punctuation emphasis & punctuation flooding
  -- word-shape as emphasis (capitalization difference)
  -- degree modifiers (intensifiers such as 'very' and dampeners such as 'kind of')
  -- slang words as modifiers such as 'uber' or 'friggin' or 'kinda'
  -- contrastive conjunction 'but' indicating a shift in sentiment; sentiment of later text is dominant
  -- use of contractions as negations
  -- sentiment laden emoticons such as :) and :D
  -- utf-8 encoded emojis such as 💘 and 💋 and 😁
  -- sentiment laden slang words (e.g., 'sux')
  -- sentiment laden initialisms and acronyms (for example: 'lol')

With --tricky, analyzes sentences that cause trouble to other sentiment
analysis tools instead: special case idioms such as 'never good' vs
'never this good' or 'bad' vs 'bad ass', and 'least' as negation versus
comparison.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrases := exampleSentences
			if tricky {
				phrases = trickySentences
			}

			t, err := a.scoreTable(cmd.Context(), phrases)
			if err != nil {
				return err
			}
			if err := writeTable(cmd.OutOrStdout(), t, "text"); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())

			return a.drawChart(cmd, &flags, t)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&tricky, "tricky", false, "use the tricky sentences")

	return cmd
}

func writeTable(w io.Writer, t *sentiment.Table, format string) error {
	switch format {
	case "csv":
		return t.WriteCSV(w)
	case "json":
		return t.WriteJSON(w)
	case "text":
		_, err := fmt.Fprintln(w, textTable(t))
		return err
	default:
		return fmt.Errorf("unknown format %q, want text, csv or json", format)
	}
}

func textTable(t *sentiment.Table) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("text", "neg", "neu", "pos", "compound", "color")

	for _, row := range t.Rows() {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color.Hex())).Render("■ " + row.Color.Hex())
		tbl.Row(
			row.Text,
			strconv.FormatFloat(row.Negative, 'f', 3, 64),
			strconv.FormatFloat(row.Neutral, 'f', 3, 64),
			strconv.FormatFloat(row.Positive, 'f', 3, 64),
			strconv.FormatFloat(row.Compound, 'f', 4, 64),
			swatch,
		)
	}

	s := t.Summary()
	return fmt.Sprintf("%s\n%d phrases: %d positive, %d neutral, %d negative; mean compound %.4f (sd %.4f)",
		tbl.Render(), s.Count, s.Positive, s.Neutral, s.Negative, s.Mean, s.StdDev)
}
