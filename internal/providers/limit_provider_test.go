package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewRateLimitedProviderPassThroughWhenDisabled(t *testing.T) {
	inner := &flakeyProvider{}
	if got := NewRateLimitedProvider(inner, 0, nil); got != DataProvider(inner) {
		t.Fatalf("expected inner provider to be returned unchanged")
	}
}

func TestRateLimitedProviderFirstCallImmediate(t *testing.T) {
	inner := &flakeyProvider{}
	p := NewRateLimitedProvider(inner, time.Hour, nil)

	start := time.Now()
	if _, err := p.FetchPlayers(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("expected first call not to wait")
	}
}

func TestRateLimitedProviderWaitsAndHonoursCancel(t *testing.T) {
	inner := &flakeyProvider{}
	p := NewRateLimitedProvider(inner, time.Hour, nil)
	if _, err := p.FetchSchedule(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := p.FetchSchedule(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline while throttled, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected throttled call not to reach upstream, got %d calls", inner.calls)
	}
}

func TestRateLimitedProviderAllowsAfterInterval(t *testing.T) {
	inner := &flakeyProvider{}
	p := NewRateLimitedProvider(inner, time.Minute, nil).(*rateLimitedProvider)
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return clock }

	if _, err := p.FetchPlayers(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	clock = clock.Add(2 * time.Minute)
	if _, err := p.FetchPlayers(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", inner.calls)
	}
}

func TestRateLimitedProviderNilNext(t *testing.T) {
	p := &rateLimitedProvider{interval: time.Second, now: time.Now}
	if _, err := p.FetchPlayers(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
