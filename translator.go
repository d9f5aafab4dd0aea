package signgloss

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// TranslationCache is the interface for memoizing translation results. Values
// are JSON-encoded TranslationResults; keys come from CacheKey.
type TranslationCache interface {
	// Get retrieves a cached value. Returns empty string and false if not
	// found or expired.
	Get(key string) (string, bool)

	// Set stores a value in the cache.
	Set(key string, value string) error
}

// Renderer turns a gloss sequence into a resolvable asset reference (e.g., a
// file path or URL). Media synthesis itself is external; the default
// file-backed renderer writes a plain-text sign description.
type Renderer interface {
	Render(ctx context.Context, gloss GlossSequence, assetID string) (string, error)
}

// Translator is the translation facade. It dispatches by target language to
// the right tagger/composer pair, wraps the pipeline with the cache, and
// normalizes every pipeline failure into a failed TranslationResult.
type Translator struct {
	renderer          Renderer
	cache             TranslationCache
	taggers           map[Language]Tagger
	namer             *AssetNamer
	logger            *log.Logger
	parallelThreshold int
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithCache sets the translation cache.
func WithCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithTagger overrides the tagger for a language, e.g. to use a
// language-model backed tagger for ISL.
func WithTagger(lang Language, tagger Tagger) TranslatorOption {
	return func(t *Translator) {
		t.taggers[lang] = tagger
	}
}

// WithNamer sets the asset namer.
func WithNamer(namer *AssetNamer) TranslatorOption {
	return func(t *Translator) {
		t.namer = namer
	}
}

// WithLogger sets the logger. By default the translator is silent.
func WithLogger(logger *log.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithParallelThreshold sets the minimum batch size for parallel cache
// lookups in TranslateBatch.
func WithParallelThreshold(n int) TranslatorOption {
	return func(t *Translator) {
		t.parallelThreshold = n
	}
}

// NewTranslator creates a Translator with the given renderer. ISL defaults to
// the built-in lexicon tagger and ASL to the whitespace tagger; both can be
// overridden with WithTagger.
func NewTranslator(renderer Renderer, opts ...TranslatorOption) *Translator {
	t := &Translator{
		renderer: renderer,
		taggers: map[Language]Tagger{
			ISL: NewLexiconTagger(),
			ASL: NewWhitespaceTagger(),
		},
		namer:             NewAssetNamer(),
		logger:            log.New(io.Discard),
		parallelThreshold: 5,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate converts text into a gloss sequence and asset reference for the
// target language.
//
// The only error it returns is an UnsupportedLanguageError, raised before any
// cache or pipeline work. Every pipeline failure (tagging, rendering,
// cancellation) is converted into TranslationResult{Success: false, Error}.
// Cache failures are swallowed: a broken cache degrades to pass-through.
func (t *Translator) Translate(ctx context.Context, text string, language string) (*TranslationResult, error) {
	lang, err := ParseLanguage(language)
	if err != nil {
		return nil, err
	}
	return t.translate(ctx, text, lang), nil
}

func (t *Translator) translate(ctx context.Context, text string, lang Language) *TranslationResult {
	key := CacheKey(text, lang)

	if cached, ok := t.cacheGet(key); ok {
		t.logger.Debug("cache hit", "language", lang)
		return cached
	}

	result := t.run(ctx, text, lang)

	// Only successful results are cached; the policy lives here, not in the
	// cache.
	if result.Success {
		t.cacheSet(key, result)
	}

	return result
}

// run executes the pipeline: tag, compose, name, render.
func (t *Translator) run(ctx context.Context, text string, lang Language) *TranslationResult {
	start := time.Now()

	tokens, err := t.taggers[lang].Tag(ctx, text)
	if err != nil {
		return failedResult(err)
	}

	// Cancellation short-circuits before the renderer; partial tagging work
	// is cheap to discard.
	if err := ctx.Err(); err != nil {
		return failedResult(err)
	}

	gloss := Compose(tokens, lang)
	assetID := t.namer.Name(gloss, lang, time.Now())

	assetRef, err := t.renderer.Render(ctx, gloss, assetID)
	if err != nil {
		return failedResult(err)
	}

	elapsed := time.Since(start)
	t.logger.Debug("translated", "language", lang, "tokens", len(tokens), "elapsed", elapsed)

	return &TranslationResult{
		Success:          true,
		AssetRef:         assetRef,
		Gloss:            gloss.String(),
		ProcessingTimeMs: elapsed.Milliseconds(),
	}
}

// cacheGet reads and decodes a cached result. Read or decode failures are
// treated as a miss.
func (t *Translator) cacheGet(key string) (*TranslationResult, bool) {
	if t.cache == nil {
		return nil, false
	}
	raw, ok := t.cache.Get(key)
	if !ok {
		return nil, false
	}
	var result TranslationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.logger.Warn("dropping undecodable cache entry", "err", err)
		return nil, false
	}
	return &result, true
}

// cacheSet stores a result. Failures are logged, never propagated.
func (t *Translator) cacheSet(key string, result *TranslationResult) {
	if t.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.logger.Warn("encoding result for cache failed", "err", err)
		return
	}
	if err := t.cache.Set(key, string(data)); err != nil {
		t.logger.Warn("cache write failed", "err", err)
	}
}

func failedResult(err error) *TranslationResult {
	return &TranslationResult{
		Success: false,
		Error:   err.Error(),
	}
}

// Languages returns the language variants this translator dispatches to.
func (t *Translator) Languages() []Language {
	return SupportedLanguages()
}
