package signgloss

import "strings"

// Compose reorders tagged tokens into a gloss sequence for the target
// grammar. An empty token slice yields an empty sequence, not an error.
func Compose(tokens []Token, lang Language) GlossSequence {
	switch lang {
	case ISL:
		return composeSOV(tokens)
	case ASL:
		return composeIdentity(tokens)
	default:
		// Language is a closed enum; unknown values fall back to identity
		// order rather than panicking.
		return composeIdentity(tokens)
	}
}

// composeSOV partitions tokens by category, preserving original relative
// order within each partition, and concatenates the partitions in
// Subject, Object, Verb, Other order. A stable multi-key sort: ties within a
// category keep input order.
func composeSOV(tokens []Token) GlossSequence {
	var subjects, objects, verbs, others []string

	for _, tok := range tokens {
		gloss := strings.ToUpper(tok.Text)
		switch tok.Category {
		case Subject:
			subjects = append(subjects, gloss)
		case Object:
			objects = append(objects, gloss)
		case Verb:
			verbs = append(verbs, gloss)
		case Other:
			others = append(others, gloss)
		}
	}

	sequence := make(GlossSequence, 0, len(tokens))
	sequence = append(sequence, subjects...)
	sequence = append(sequence, objects...)
	sequence = append(sequence, verbs...)
	sequence = append(sequence, others...)
	return sequence
}

// composeIdentity upper-cases tokens without reordering.
func composeIdentity(tokens []Token) GlossSequence {
	sequence := make(GlossSequence, 0, len(tokens))
	for _, tok := range tokens {
		sequence = append(sequence, strings.ToUpper(tok.Text))
	}
	return sequence
}
