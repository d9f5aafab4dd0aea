package signgloss

import "fmt"

// UnsupportedLanguageError indicates the requested target language is not a
// recognized variant. It is the only error the Translator returns directly;
// every other failure is folded into a failed TranslationResult.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language %q (supported: isl, asl)", e.Language)
}

// TaggerError indicates a tokenization/tagging failure (model API error,
// malformed response, etc.).
type TaggerError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *TaggerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tagger error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("tagger error: %s", e.Message)
}

func (e *TaggerError) Unwrap() error {
	return e.Cause
}

// RenderError indicates the renderer failed to produce an asset.
type RenderError struct {
	Message string
	Cause   error
	AssetID string
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error (%s): %s: %v", e.AssetID, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error (%s): %s", e.AssetID, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure. The cache is best-effort:
// the Translator logs these and continues without caching.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// ExtractError indicates a source content extraction failure (parse error, etc.).
type ExtractError struct {
	Message     string
	Cause       error
	ContentType string // The type of content that failed to extract
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error (%s): %s", e.ContentType, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// TagCountMismatchError indicates the model returned a different number of
// categories than tokens sent.
type TagCountMismatchError struct {
	Expected int
	Got      int
}

func (e *TagCountMismatchError) Error() string {
	return fmt.Sprintf("tag count mismatch: expected %d, got %d", e.Expected, e.Got)
}
