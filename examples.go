package main

var exampleSentences = []string{
	// positive sentence example
	"VADER is smart, handsome, and funny.",
	// punctuation emphasis handled correctly (sentiment intensity adjusted)
	"VADER is smart, handsome, and funny!",
	// booster words handled correctly (sentiment intensity adjusted)
	"VADER is very smart, handsome, and funny.",
	// emphasis for ALLCAPS handled
	"VADER is VERY SMART, handsome, and FUNNY.",
	// combination of signals - VADER appropriately adjusts intensity
	"VADER is VERY SMART, handsome, and FUNNY!!!",
	// booster words & punctuation make this close to ceiling for score
	"VADER is VERY SMART, uber handsome, and FRIGGIN FUNNY!!!",
	// negation sentence example
	"VADER is not smart, handsome, nor funny.",
	// positive sentence
	"The book was good.",
	// negated negative sentence with contraction
	"At least it isn't a horrible book.",
	// qualified positive sentence is handled correctly (intensity adjusted)
	"The book was only kind of good.",
	// mixed negation sentence
	"The plot was good, but the characters are uncompelling and the dialog is not great.",
	// negative slang with capitalization emphasis
	"Today SUX!",
	// mixed sentiment example with slang and constrastive conjunction "but"
	"Today only kinda sux! But I'll get by, lol",
	// emoticons handled
	"Make sure you :) or :D today!",
	// emojis handled
	"Catch utf-8 emoji such as 💘 and 💋 and 😁",
	// Capitalized negation
	"Not bad at all",
}

var trickySentences = []string{
	"Sentiment analysis has never been good.",
	"Sentiment analysis has never been this good!",
	"Most automated sentiment analysis tools are shit.",
	"With VADER, sentiment analysis is the shit!",
	"Other sentiment analysis tools can be quite bad.",
	"On the other hand, VADER is quite bad ass",
	// slang with punctuation emphasis
	"VADER is such a badass!",
	"Without a doubt, excellent idea.",
	"Roger Dodger is one of the most compelling variations on this theme.",
	"Roger Dodger is at least compelling as a variation on the theme.",
	"Roger Dodger is one of the least compelling variations on this theme.",
	// Capitalized negation with slang
	"Not such a badass after all.",
	// "without {any} doubt" as negation
	"Without a doubt, an excellent idea.",
}
