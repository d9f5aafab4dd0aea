package signgloss

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitConfig bounds the request rate of a model-backed tagger.
type RateLimitConfig struct {
	RequestsPerMinute int // Maximum requests per minute (default: 60)
	BurstSize         int // Maximum burst size (default: same as RPM)
}

// RateLimitedTagger wraps a Tagger so Tag calls never exceed the configured
// rate. Calls over the limit block until a slot frees up or the context is
// cancelled.
type RateLimitedTagger struct {
	tagger  Tagger
	limiter *rate.Limiter
}

// NewRateLimitedTagger creates a rate-limited tagger.
func NewRateLimitedTagger(tagger Tagger, cfg RateLimitConfig) *RateLimitedTagger {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = rpm
	}

	return &RateLimitedTagger{
		tagger:  tagger,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst),
	}
}

// Tag waits for a rate slot, then delegates to the wrapped tagger.
func (t *RateLimitedTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, &TaggerError{
			Message:   "rate limit wait cancelled",
			Cause:     err,
			Retryable: false,
		}
	}

	return t.tagger.Tag(ctx, text)
}

// Allow reports whether a call could proceed right now without blocking. It
// does not consume a slot decision on behalf of Tag.
func (t *RateLimitedTagger) Allow() bool {
	tok := t.limiter.Tokens()
	return tok >= 1
}

// Verify RateLimitedTagger implements Tagger
var _ Tagger = (*RateLimitedTagger)(nil)
