package providers

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "feed",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got != "rate limited (status=429)" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got != "provider rate limited" {
		t.Fatalf("expected fallback message, got %q", got)
	}
}

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("fetch stats: %w", &RateLimitError{RetryAfter: time.Second})
	rl, ok := AsRateLimitError(wrapped)
	if !ok || rl.RetryAfter != time.Second {
		t.Fatalf("expected to unwrap rate limit error, got %+v %v", rl, ok)
	}
	if _, ok := AsRateLimitError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to match")
	}
}
