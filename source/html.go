package source

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/RebelAKL/signgloss"
	"golang.org/x/net/html"
)

// ignoredTags contains HTML tags whose content is not translatable text.
var ignoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// HTMLExtractor extracts the visible text of an HTML document so a page can
// be translated into gloss.
type HTMLExtractor struct {
	ignoredTags map[string]bool
}

// NewHTMLExtractor creates an HTML extractor with default ignored tags.
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{
		ignoredTags: ignoredTags,
	}
}

// NewHTMLExtractorWithIgnoredTags creates an HTML extractor with custom
// ignored tags.
func NewHTMLExtractorWithIgnoredTags(tags []string) *HTMLExtractor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLExtractor{
		ignoredTags: ignored,
	}
}

// Extract parses HTML and returns the visible text joined with spaces,
// skipping ignored tags and elements marked data-no-translate.
func (e *HTMLExtractor) Extract(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", &signgloss.ExtractError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if e.ignoredTags[strings.ToLower(n.Data)] {
				return
			}
			for _, attr := range n.Attr {
				if attr.Key == "data-no-translate" {
					return
				}
			}
		}

		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, root := range doc.Nodes {
		walk(root)
	}

	return strings.Join(parts, " "), nil
}

// ContentType returns "html".
func (e *HTMLExtractor) ContentType() string {
	return "html"
}

// Verify HTMLExtractor implements Extractor
var _ Extractor = (*HTMLExtractor)(nil)
