package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

// rateLimitedProvider spaces upstream calls by at least interval. The first
// call goes through immediately; later calls wait out the remainder.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewRateLimitedProvider returns next unchanged when interval is not positive.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		return next
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context) ([]props.Player, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx)
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context) ([]games.Game, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchSchedule(ctx)
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p.next == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return ErrProviderUnavailable
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if delay := p.interval - p.now().Sub(p.last); delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	p.last = p.now()
	return nil
}
