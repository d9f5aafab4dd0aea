package source

import "strings"

// PlainExtractor passes plain text through with whitespace trimmed.
type PlainExtractor struct{}

// NewPlainExtractor creates a plain-text extractor.
func NewPlainExtractor() *PlainExtractor {
	return &PlainExtractor{}
}

// Extract returns the trimmed content.
func (e *PlainExtractor) Extract(content string) (string, error) {
	return strings.TrimSpace(content), nil
}

// ContentType returns "text".
func (e *PlainExtractor) ContentType() string {
	return "text"
}

// Verify PlainExtractor implements Extractor
var _ Extractor = (*PlainExtractor)(nil)
