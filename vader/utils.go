package vader

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize the score to be between -1 and 1 using an alpha that
// approximates the max expected value
func Normalize(score float64) float64 {
	normalizedScore := score / math.Sqrt((score*score)+float64(Alpha))

	if normalizedScore < -1.0 {
		return -1.0
	} else if normalizedScore > 1.0 {
		return 1.0
	} else {
		return normalizedScore
	}
}

// Removes leading and trailing punctuation
// Leaves contractions and most emoticons
// Does not preserve punc-plus-letter emoticons (e.g. :D)
// Returns list of clean words from text
func CleanWordsAndEmoticons(text string) []string {
	words := strings.Fields(text)

	cleanWords := make([]string, 0, len(words))
	for _, word := range words {
		cleanWord := strings.Trim(word, Punctuation)

		if utf8.RuneCountInString(cleanWord) <= 2 {
			cleanWords = append(cleanWords, word)
		} else {
			cleanWords = append(cleanWords, cleanWord)
		}
	}

	return cleanWords
}

// IsUpper reports whether word has at least one cased letter and no
// lowercase ones.
func IsUpper(word string) bool {
	cased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}

	return cased
}

// Check whether just some words in the input are ALL CAPS
func IsAllCapDiff(words []string) bool {
	allCapWords := 0
	for _, word := range words {
		if IsUpper(word) {
			allCapWords++
		}
	}

	capDifferential := len(words) - allCapWords
	return capDifferential > 0 && capDifferential < len(words)
}

// find percent difference occurences (+2%,-2% etc.)
// and replace it with placeholder from lexicon
func ReplacePercentages(text string) string {
	text = PositivePercentageRegexp.ReplaceAllString(text, " "+PositivePercentToken+" ")
	text = NegativePercentageRegexp.ReplaceAllString(text, " "+NegativePercentToken+" ")

	return text
}

// Replace every emoji found in the emoji lexicon by its description,
// keeping the description separated from the neighbouring words
func ReplaceEmojis(text string, emojiLexicon map[string]string) string {
	if len(emojiLexicon) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	prevSpace, prevEmoji := true, false
	for _, r := range text {
		if description, ok := emojiLexicon[string(r)]; ok {
			if !prevSpace {
				sb.WriteByte(' ')
			}
			sb.WriteString(description)
			prevSpace, prevEmoji = false, true
		} else {
			if prevEmoji && !unicode.IsSpace(r) {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r)
			prevSpace, prevEmoji = r == ' ', false
		}
	}

	return sb.String()
}

// Convert lexicon file data to map
func MakeLexiconMap(lexicon string) (map[string]float64, error) {
	lexiconDict := make(map[string]float64)

	for n, line := range strings.Split(lexicon, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := strings.Split(line, "\t")
		if len(values) < 2 {
			return nil, fmt.Errorf("lexicon line %d: expected token and measure separated by a tab", n+1)
		}

		word := strings.TrimSpace(values[0])
		measure, err := strconv.ParseFloat(strings.TrimSpace(values[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("lexicon line %d: %w", n+1, err)
		}
		if math.IsNaN(measure) || math.IsInf(measure, 0) {
			return nil, fmt.Errorf("lexicon line %d: measure of %q is not a finite number", n+1, word)
		}

		lexiconDict[word] = measure
	}

	return lexiconDict, nil
}

// Convert emoji lexicon file data to map
func MakeEmojiLexiconMap(emojiLexicon string) (map[string]string, error) {
	emojiLexiconDict := make(map[string]string)

	for n, line := range strings.Split(emojiLexicon, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := strings.Split(line, "\t")
		if len(values) < 2 {
			return nil, fmt.Errorf("emoji lexicon line %d: expected emoji and description separated by a tab", n+1)
		}

		emojiLexiconDict[strings.TrimSpace(values[0])] = strings.TrimSpace(values[1])
	}

	return emojiLexiconDict, nil
}

// Determine if input contains negation words
func ContainsNegation(inputWords []string) bool {
	for i, word := range inputWords {
		for _, negWord := range Negations {
			if negWord == word {
				return true
			}
		}

		if word == "least" {
			if i > 0 && inputWords[i-1] != "at" && inputWords[i-1] != "very" {
				return true
			}
		}

		if IncludeNt {
			if strings.Contains(word, "n't") {
				return true
			}
		}
	}

	return false
}
