package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Vader Sentiment Examples", cfg.Title)
	assert.Equal(t, 1, cfg.Workers)
	assert.Nil(t, cfg.LexiconFiles())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
title: Movie reviews
chart:
  width: 10
  height: 6
  path: reviews.svg
output:
  format: json
analyzer:
  lexicon_path: lexicon.txt
  emoji_lexicon_path: emoji.txt
workers: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Movie reviews", cfg.Title)
	assert.Equal(t, 10.0, cfg.Chart.Width)
	assert.Equal(t, 6.0, cfg.Chart.Height)
	assert.Equal(t, "reviews.svg", cfg.Chart.Path)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"lexicon.txt", "emoji.txt"}, cfg.LexiconFiles())
	// untouched sections keep their defaults
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown format",
			content: "output:\n  format: xml\n",
			wantErr: "Output.Format must be one of",
		},
		{
			name:    "zero workers",
			content: "workers: 0\n",
			wantErr: "Workers must satisfy gte=1",
		},
		{
			name:    "negative width",
			content: "chart:\n  width: -1\n",
			wantErr: "Chart.Width must satisfy gt=0",
		},
		{
			name:    "half analyzer",
			content: "analyzer:\n  lexicon_path: lexicon.txt\n",
			wantErr: "Analyzer.EmojiLexiconPath is required together with LexiconPath",
		},
		{
			name:    "empty title",
			content: "title: \"\"\n",
			wantErr: "Title is required",
		},
		{
			name:    "bad yaml",
			content: "workers: [\n",
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Example(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "config.example.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
