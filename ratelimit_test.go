package signgloss

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitedTagger_PassesThrough(t *testing.T) {
	inner := &mockTagger{}
	limited := NewRateLimitedTagger(inner, RateLimitConfig{RequestsPerMinute: 6000})

	tokens, err := limited.Tag(context.Background(), "I eat rice")
	if err != nil {
		t.Fatalf("Tag failed: %v", err)
	}
	if len(tokens) != 3 {
		t.Errorf("got %d tokens, want 3", len(tokens))
	}
	if inner.callCount != 1 {
		t.Errorf("inner tagger called %d times, want 1", inner.callCount)
	}
}

func TestRateLimitedTagger_ThrottlesBurst(t *testing.T) {
	inner := &mockTagger{}
	// One request per second, no burst headroom past the first call.
	limited := NewRateLimitedTagger(inner, RateLimitConfig{
		RequestsPerMinute: 60,
		BurstSize:         1,
	})

	ctx := context.Background()
	start := time.Now()

	for i := 0; i < 2; i++ {
		if _, err := limited.Tag(ctx, "hello"); err != nil {
			t.Fatalf("Tag %d failed: %v", i, err)
		}
	}

	if elapsed := time.Since(start); elapsed < 500*time.Millisecond {
		t.Errorf("second call returned after %v, expected throttling near 1s", elapsed)
	}
}

func TestRateLimitedTagger_CancelledWait(t *testing.T) {
	inner := &mockTagger{}
	limited := NewRateLimitedTagger(inner, RateLimitConfig{
		RequestsPerMinute: 1,
		BurstSize:         1,
	})

	ctx := context.Background()
	if _, err := limited.Tag(ctx, "first"); err != nil {
		t.Fatalf("first Tag failed: %v", err)
	}

	// The bucket is now empty; a short deadline must abort the wait.
	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	_, err := limited.Tag(short, "second")
	if err == nil {
		t.Fatal("expected error from cancelled wait")
	}

	var tagErr *TaggerError
	if !errors.As(err, &tagErr) {
		t.Fatalf("expected TaggerError, got %T", err)
	}
	if tagErr.Retryable {
		t.Error("cancelled wait should not be retryable")
	}
	if inner.callCount != 1 {
		t.Errorf("inner tagger called %d times, want 1", inner.callCount)
	}
}

func TestRateLimitedTagger_Defaults(t *testing.T) {
	limited := NewRateLimitedTagger(&mockTagger{}, RateLimitConfig{})

	// Defaults allow an immediate call.
	if !limited.Allow() {
		t.Error("default limiter should allow an immediate call")
	}
}

func TestRateLimitedTagger_InnerErrorPropagates(t *testing.T) {
	inner := &mockTagger{err: errors.New("model unavailable")}
	limited := NewRateLimitedTagger(inner, RateLimitConfig{RequestsPerMinute: 6000})

	if _, err := limited.Tag(context.Background(), "hello"); err == nil {
		t.Fatal("expected inner tagger error to propagate")
	}
}
