package vader

import (
	"reflect"
	"strings"
	"testing"
)

func TestCleanWordsAndEmoticons(t *testing.T) {
	cases := map[string][]string{
		"I love this!":           {"I", "love", "this"},
		"Make sure you :) or :D": {"Make", "sure", "you", ":)", "or", ":D"},
		"don't!! stop...":        {"don't", "stop"},
		"":                       {},
	}

	for text, want := range cases {
		if got := CleanWordsAndEmoticons(text); !reflect.DeepEqual(got, want) {
			t.Errorf("%q: got %q, want %q", text, got, want)
		}
	}
}

func TestIsAllCapDiff(t *testing.T) {
	if !IsAllCapDiff([]string{"VADER", "is", "smart"}) {
		t.Error("mixed case should differ")
	}
	if IsAllCapDiff([]string{"ALL", "CAPS"}) {
		t.Error("all caps should not differ")
	}
	if IsAllCapDiff([]string{"no", "caps"}) {
		t.Error("no caps should not differ")
	}
	if IsUpper(":)") {
		t.Error("emoticon without letters is not upper")
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(0); got != 0 {
		t.Errorf("Normalize(0) = %f", got)
	}
	if got := Normalize(1000); got <= 0.99 || got > 1 {
		t.Errorf("Normalize(1000) = %f", got)
	}
	if got := Normalize(-1000); got >= -0.99 || got < -1 {
		t.Errorf("Normalize(-1000) = %f", got)
	}
}

func TestReplaceEmojis(t *testing.T) {
	lexicon := map[string]string{"😁": "beaming face"}

	if got := ReplaceEmojis("wow😁now", lexicon); got != "wow beaming face now" {
		t.Errorf("got %q", got)
	}
	if got := ReplaceEmojis("😁 ok", lexicon); got != "beaming face ok" {
		t.Errorf("got %q", got)
	}
}

func TestMakeLexiconMap(t *testing.T) {
	lexicon, err := MakeLexiconMap("good\t1.9\t0.9\t[2, 1]\r\n\nbad\t-2.5\n")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(lexicon, map[string]float64{"good": 1.9, "bad": -2.5}) {
		t.Errorf("got %v", lexicon)
	}

	if _, err := MakeLexiconMap("good 1.9\n"); err == nil {
		t.Error("expected error for a line without tab")
	}
	if _, err := MakeEmojiLexiconMap("😁\n"); err == nil {
		t.Error("expected error for an emoji without description")
	}

	for _, measure := range []string{"Inf", "+Inf", "-Inf", "NaN", "nan", "infinity"} {
		if _, err := MakeLexiconMap("ok\t1.2\ngood\t" + measure + "\n"); err == nil {
			t.Errorf("expected error for measure %s", measure)
		} else if !strings.Contains(err.Error(), "line 2") {
			t.Errorf("measure %s: error %q does not name the line", measure, err)
		}
	}
}

func TestContainsNegation(t *testing.T) {
	for _, word := range []string{"not", "never", "isn't", "without"} {
		if !ContainsNegation([]string{word}) {
			t.Errorf("%s should negate", word)
		}
	}
	if ContainsNegation([]string{"very"}) {
		t.Error("very should not negate")
	}
}
