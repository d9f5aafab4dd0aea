package signgloss

import "strings"

// PartOfSpeech classifies a token for grammar reordering.
type PartOfSpeech int

const (
	// Subject covers pronouns and other grammatical subjects.
	Subject PartOfSpeech = iota
	// Object covers nouns, treated as objects under the simplified rule.
	Object
	// Verb covers verbs, including auxiliaries and modals.
	Verb
	// Other covers everything else (determiners, prepositions, adverbs, ...).
	Other
)

// String returns the category name used in tagged output and model prompts.
func (p PartOfSpeech) String() string {
	switch p {
	case Subject:
		return "SUBJECT"
	case Object:
		return "OBJECT"
	case Verb:
		return "VERB"
	default:
		return "OTHER"
	}
}

// ParsePartOfSpeech converts a category name back to a PartOfSpeech.
// Unknown names map to Other.
func ParsePartOfSpeech(s string) PartOfSpeech {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SUBJECT":
		return Subject
	case "OBJECT":
		return Object
	case "VERB":
		return Verb
	default:
		return Other
	}
}

// Token is a normalized word unit with its part-of-speech category.
// Tokens are immutable once produced by a Tagger.
type Token struct {
	Text     string
	Category PartOfSpeech
}

// GlossSequence is an ordered sequence of upper-case gloss strings. The order
// reflects the target-language grammar.
type GlossSequence []string

// String joins the sequence into the space-separated gloss string used in
// results.
func (g GlossSequence) String() string {
	return strings.Join(g, " ")
}

// TranslationResult is the normalized outcome of a translation. When Success
// is true, AssetRef and Gloss carry the outcome; when false, only Error does.
type TranslationResult struct {
	Success          bool   `json:"success"`
	AssetRef         string `json:"asset_ref,omitempty"`
	Gloss            string `json:"gloss,omitempty"`
	ProcessingTimeMs int64  `json:"processing_time_ms,omitempty"`
	Error            string `json:"error,omitempty"`
}
