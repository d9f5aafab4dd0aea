package signgloss

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryConfig bounds the retry behavior of a RetryableTagger.
type RetryConfig struct {
	MaxRetries int           // Retry attempts after the first call
	BaseDelay  time.Duration // Initial backoff delay
	MaxDelay   time.Duration // Cap on the backoff delay
}

// DefaultRetryConfig returns the retry policy used by the CLI.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// IsRetryable reports whether a failed Tag call is worth repeating. Only
// TaggerErrors explicitly marked retryable qualify; malformed responses,
// count mismatches and cancellations are terminal.
func IsRetryable(err error) bool {
	var taggerErr *TaggerError
	if errors.As(err, &taggerErr) {
		return taggerErr.Retryable
	}
	return false
}

// RetryableTagger wraps a Tagger with exponential backoff, for taggers backed
// by a remote model API.
type RetryableTagger struct {
	tagger  Tagger
	backoff func() retry.Backoff
}

// NewRetryableTagger creates a tagger that retries transient failures.
func NewRetryableTagger(tagger Tagger, cfg RetryConfig) *RetryableTagger {
	base := cfg.BaseDelay
	if base <= 0 {
		base = time.Second
	}

	return &RetryableTagger{
		tagger: tagger,
		backoff: func() retry.Backoff {
			b := retry.NewExponential(base)
			if cfg.MaxDelay > 0 {
				b = retry.WithCappedDuration(cfg.MaxDelay, b)
			}
			return retry.WithMaxRetries(uint64(cfg.MaxRetries), b)
		},
	}
}

// Tag calls the wrapped tagger, repeating on retryable failures until the
// attempt budget runs out or the context is cancelled.
func (t *RetryableTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	var tokens []Token

	err := retry.Do(ctx, t.backoff(), func(ctx context.Context) error {
		result, err := t.tagger.Tag(ctx, text)
		if err != nil {
			if IsRetryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		tokens = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

// Verify RetryableTagger implements Tagger
var _ Tagger = (*RetryableTagger)(nil)
