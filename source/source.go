// Package source extracts translatable text from input content so that
// structured formats (HTML pages) can be fed through the gloss pipeline.
package source

// Extractor pulls the translatable plain text out of raw content.
type Extractor interface {
	// Extract returns the plain text contained in content.
	Extract(content string) (string, error)

	// ContentType identifies the format this extractor handles.
	ContentType() string
}
