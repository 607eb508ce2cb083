package vader

import (
	"strings"
)

// SentiText is the tokenized form of a text: the words and emoticons
// with surrounding punctuation stripped, their lowercase forms and
// whether ALL CAPS is used to emphasize some of them.
type SentiText struct {
	WordsAndEmoticons      []string
	WordsAndEmoticonsLower []string
	IsCapDiff              bool
}

func NewSentiText(text string) *SentiText {
	wordsAndEmoticons := CleanWordsAndEmoticons(text)
	isCapDiff := IsAllCapDiff(wordsAndEmoticons)

	wordsAndEmoticonsLower := make([]string, 0, len(wordsAndEmoticons))
	for _, w := range wordsAndEmoticons {
		wordsAndEmoticonsLower = append(wordsAndEmoticonsLower, strings.ToLower(w))
	}

	return &SentiText{
		WordsAndEmoticons:      wordsAndEmoticons,
		WordsAndEmoticonsLower: wordsAndEmoticonsLower,
		IsCapDiff:              isCapDiff,
	}
}
