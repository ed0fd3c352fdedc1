package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
	"github.com/preston-bernstein/nba-props-service/internal/logging"
	"github.com/preston-bernstein/nba-props-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 10 * time.Second
)

// retryingProvider wraps a DataProvider with exponential backoff. A
// RateLimitError with a Retry-After overrides the next computed delay.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	recorder     *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		recorder:     recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) ([]props.Player, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return withRetry(ctx, r, "players", r.inner.FetchPlayers)
}

func (r *retryingProvider) FetchSchedule(ctx context.Context) ([]games.Game, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return withRetry(ctx, r, "schedule", r.inner.FetchSchedule)
}

func withRetry[T any](ctx context.Context, r *retryingProvider, resource string, fetch func(context.Context) (T, error)) (T, error) {
	var (
		result T
		zero   T
	)
	policy := &retryPolicy{base: backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1))}
	attempt := 0

	operation := func() error {
		attempt++
		start := time.Now()
		out, err := fetch(ctx)
		r.recorder.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			result = out
			return nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.providerName, rl.RetryAfter)
			policy.retryAfter = rl.RetryAfter
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch retry",
			"resource", resource,
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay,
			"error", err,
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
			"resource", resource,
			"attempts", attempt,
			"error", err,
		)
		return zero, err
	}
	return result, nil
}

// retryPolicy defers to base but honours a pending Retry-After once.
type retryPolicy struct {
	base       backoff.BackOff
	retryAfter time.Duration
}

func (p *retryPolicy) NextBackOff() time.Duration {
	next := p.base.NextBackOff()
	if next == backoff.Stop {
		return backoff.Stop
	}
	if p.retryAfter > 0 {
		next = p.retryAfter
		p.retryAfter = 0
	}
	return next
}

func (p *retryPolicy) Reset() {
	p.base.Reset()
	p.retryAfter = 0
}
