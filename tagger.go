package signgloss

import (
	"context"
	"strings"
	"unicode"
)

// Tagger splits raw text into normalized tokens and assigns each a
// part-of-speech category.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Token, error)
}

// Tokenize lowercases text, splits it into word units, trims edge punctuation
// and drops any unit that is not purely alphanumeric. Punctuation-only or
// mixed-symbol units are discarded, not errored. Empty or whitespace-only
// input yields an empty slice.
func Tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(strings.ToLower(text)) {
		unit := strings.TrimFunc(field, isNotAlphanumeric)
		if unit == "" || !isAlphanumeric(unit) {
			continue
		}
		tokens = append(tokens, unit)
	}
	return tokens
}

// TokenizeWhitespace splits on whitespace only, keeping purely alphanumeric
// units. Edge punctuation is not trimmed, so "rice." is discarded whole.
func TokenizeWhitespace(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(strings.ToLower(text)) {
		if !isAlphanumeric(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if isNotAlphanumeric(r) {
			return false
		}
	}
	return true
}

func isNotAlphanumeric(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// LexiconTagger is the built-in heuristic part-of-speech tagger. It
// classifies pronouns as subjects, verbs (by lexicon and suffix) as verbs,
// function words as other, and everything remaining as a noun/object.
// It is a pure function over the input text and never fails.
type LexiconTagger struct{}

// NewLexiconTagger creates the built-in heuristic tagger.
func NewLexiconTagger() *LexiconTagger {
	return &LexiconTagger{}
}

// Tag tokenizes and classifies text. The error is always nil; malformed text
// degrades to fewer (or zero) tokens.
func (t *LexiconTagger) Tag(_ context.Context, text string) ([]Token, error) {
	units := Tokenize(text)
	tokens := make([]Token, 0, len(units))
	for _, unit := range units {
		tokens = append(tokens, Token{Text: unit, Category: Classify(unit)})
	}
	return tokens, nil
}

// Classify assigns a part-of-speech category to a single lowercase word unit.
func Classify(word string) PartOfSpeech {
	switch {
	case pronouns[word]:
		return Subject
	case verbs[word]:
		return Verb
	case functionWords[word]:
		return Other
	case strings.HasSuffix(word, "ing") && len(word) > 4:
		return Verb
	case strings.HasSuffix(word, "ed") && len(word) > 3:
		return Verb
	default:
		// Remaining content words are treated as nouns.
		return Object
	}
}

// WhitespaceTagger is the simplified tagger used for languages without
// grammar reordering: a pure whitespace split with no categorization, every
// retained unit mapped to Other.
type WhitespaceTagger struct{}

// NewWhitespaceTagger creates the whitespace-split tagger.
func NewWhitespaceTagger() *WhitespaceTagger {
	return &WhitespaceTagger{}
}

// Tag splits text on whitespace and returns every retained unit as Other.
func (t *WhitespaceTagger) Tag(_ context.Context, text string) ([]Token, error) {
	units := TokenizeWhitespace(text)
	tokens := make([]Token, 0, len(units))
	for _, unit := range units {
		tokens = append(tokens, Token{Text: unit, Category: Other})
	}
	return tokens, nil
}

// pronouns are classified as subjects.
var pronouns = wordSet(
	"i", "you", "he", "she", "it", "we", "they",
	"me", "him", "her", "us", "them",
	"my", "your", "his", "its", "our", "their",
	"mine", "yours", "hers", "ours", "theirs",
	"myself", "yourself", "himself", "herself", "itself",
	"ourselves", "yourselves", "themselves",
)

// verbs covers common verbs plus auxiliaries and modals.
var verbs = wordSet(
	"be", "am", "is", "are", "was", "were", "been", "being",
	"do", "does", "did", "done",
	"have", "has", "had",
	"will", "shall", "would", "should", "can", "could", "may", "might", "must",
	"eat", "drink", "go", "come", "see", "look", "watch", "hear", "listen",
	"want", "need", "like", "love", "hate", "make", "take", "give", "get",
	"know", "think", "say", "tell", "ask", "answer", "speak", "talk",
	"run", "walk", "sit", "stand", "sleep", "wake", "play", "work", "study",
	"learn", "teach", "help", "buy", "sell", "pay", "open", "close",
	"read", "write", "draw", "sign", "live", "stay", "leave", "arrive",
	"use", "find", "call", "feel", "become", "put", "keep", "let", "begin",
	"start", "stop", "finish", "show", "turn", "bring", "carry", "cook",
	"wash", "clean", "cut", "meet", "wait", "try", "win", "lose",
)

// functionWords are determiners, prepositions, conjunctions and other
// grammatical glue classified as Other.
var functionWords = wordSet(
	"a", "an", "the",
	"to", "of", "in", "on", "at", "by", "for", "with", "from", "into",
	"about", "over", "under", "between", "through", "during", "before",
	"after", "above", "below", "up", "down", "out", "off",
	"and", "or", "but", "nor", "so", "yet",
	"not", "no", "yes",
	"this", "that", "these", "those", "there", "here",
	"very", "too", "also", "just", "only", "then", "than", "as",
	"if", "because", "while", "when", "where", "how", "why", "what",
	"who", "whom", "whose", "which",
	"now", "today", "tomorrow", "yesterday", "always", "never", "often",
	"sometimes", "again", "please",
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
