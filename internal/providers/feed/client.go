package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
)

// Config controls how the feed client reaches the published payloads.
type Config struct {
	StatsURL    string
	ScheduleURL string
	HTTPClient  *http.Client
	Timeout     time.Duration
}

// Client fetches the stats and schedule JSON documents over HTTP.
type Client struct {
	statsURL    string
	scheduleURL string
	httpClient  httpDoer
	now         func() time.Time
}

// NewClient constructs a feed client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		statsURL:    resolveURL(cfg.StatsURL, defaultStatsURL),
		scheduleURL: resolveURL(cfg.ScheduleURL, defaultScheduleURL),
		httpClient:  resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:         time.Now,
	}
}

// FetchPlayers downloads and decodes the stats payload.
func (c *Client) FetchPlayers(ctx context.Context) ([]props.Player, error) {
	body, err := c.get(ctx, c.statsURL)
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}
	defer body.Close()
	return providers.DecodePlayers(body)
}

// FetchSchedule downloads and decodes the schedule payload.
func (c *Client) FetchSchedule(ctx context.Context) ([]games.Game, error) {
	body, err := c.get(ctx, c.scheduleURL)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}
	defer body.Close()
	return providers.DecodeSchedule(body)
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		defer resp.Body.Close()
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "feed rate limited",
		}
	case resp.StatusCode != http.StatusOK:
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("feed: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp.Body, nil
}
