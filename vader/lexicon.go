package vader

import (
	_ "embed"
)

//go:embed data/vader_lexicon.txt
var defaultLexicon string

//go:embed data/emoji_utf8_lexicon.txt
var defaultEmojiLexicon string
