// Package config loads the demo's settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config holds all settings of the demo.
type Config struct {
	// Title of the rendered chart
	Title string `yaml:"title" validate:"required"`

	Chart    ChartConfig    `yaml:"chart"`
	Output   OutputConfig   `yaml:"output"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Workers scoring phrases concurrently; 1 scores them in order on the
	// calling goroutine.
	Workers int `yaml:"workers" validate:"gte=1,lte=256"`
}

// ChartConfig sizes the rendered chart, in inches. A zero height grows
// with the number of phrases.
type ChartConfig struct {
	Width  float64 `yaml:"width" validate:"gt=0,lte=100"`
	Height float64 `yaml:"height" validate:"gte=0,lte=100"`
	// Path the chart is written to; its extension selects the format.
	Path string `yaml:"path" validate:"required"`
}

// OutputConfig selects how score tables are printed.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text csv json"`
}

// AnalyzerConfig points at custom lexicon files. Both or none must be set.
type AnalyzerConfig struct {
	LexiconPath      string `yaml:"lexicon_path" validate:"required_with=EmojiLexiconPath"`
	EmojiLexiconPath string `yaml:"emoji_lexicon_path" validate:"required_with=LexiconPath"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Title: "Vader Sentiment Examples",
		Chart: ChartConfig{
			Width: 8,
			Path:  "sentiment.png",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Workers: 1,
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// LexiconFiles returns the custom lexicon paths, or nil for the
// embedded lexicons.
func (c *Config) LexiconFiles() []string {
	if c.Analyzer.LexiconPath == "" {
		return nil
	}

	return []string{c.Analyzer.LexiconPath, c.Analyzer.EmojiLexiconPath}
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	return nil
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_with":
		return fmt.Sprintf("%s is required together with %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s must satisfy %s=%s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	}
}
