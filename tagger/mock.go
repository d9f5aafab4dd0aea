package tagger

import (
	"context"

	"github.com/RebelAKL/signgloss"
)

// MockTagger is a mock tagger for testing.
type MockTagger struct {
	Categories map[string]signgloss.PartOfSpeech // Map of token text to category
	Err        error                             // Error to return (takes precedence)
	CallCount  int                               // Number of times Tag was called
	LastText   string                            // Last text received
}

// NewMockTagger creates a new mock tagger with default categories.
func NewMockTagger() *MockTagger {
	return &MockTagger{
		Categories: map[string]signgloss.PartOfSpeech{
			"i":    signgloss.Subject,
			"you":  signgloss.Subject,
			"eat":  signgloss.Verb,
			"go":   signgloss.Verb,
			"rice": signgloss.Object,
			"home": signgloss.Object,
		},
	}
}

// Tag tokenizes text and assigns categories from the map, defaulting to
// Other for unknown tokens.
func (m *MockTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	m.CallCount++
	m.LastText = text

	if m.Err != nil {
		return nil, m.Err
	}

	units := signgloss.Tokenize(text)
	tokens := make([]Token, 0, len(units))
	for _, unit := range units {
		category, ok := m.Categories[unit]
		if !ok {
			category = signgloss.Other
		}
		tokens = append(tokens, Token{Text: unit, Category: category})
	}
	return tokens, nil
}

// Reset resets the call count and last text.
func (m *MockTagger) Reset() {
	m.CallCount = 0
	m.LastText = ""
}

// Verify MockTagger implements Tagger
var _ Tagger = (*MockTagger)(nil)
