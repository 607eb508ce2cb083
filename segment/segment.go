// Package segment turns raw input into phrases for scoring.
package segment

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
	tokenizerErr  error
)

// Lines returns the non-blank lines of r, trimmed.
func Lines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}

	return lines, nil
}

// Sentences splits English prose into sentences, using the punkt model
// shipped with the tokenizer.
func Sentences(text string) ([]string, error) {
	tokenizerOnce.Do(func() {
		tokenizer, tokenizerErr = english.NewSentenceTokenizer(nil)
	})
	if tokenizerErr != nil {
		return nil, fmt.Errorf("load sentence tokenizer: %w", tokenizerErr)
	}

	var out []string
	for _, s := range tokenizer.Tokenize(text) {
		sentence := strings.Join(strings.Fields(s.Text), " ")
		if sentence == "" {
			continue
		}
		out = append(out, sentence)
	}

	return out, nil
}

// ReadSentences reads all of r and splits it into sentences.
func ReadSentences(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	return Sentences(string(data))
}
