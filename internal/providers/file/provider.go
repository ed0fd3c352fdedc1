// Package file serves the stats and schedule payloads from local JSON files.
package file

import (
	"context"
	"fmt"
	"os"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
	"github.com/preston-bernstein/nba-props-service/internal/providers"
)

// Provider reads payloads from disk on every fetch, so edits are picked up on reload.
type Provider struct {
	statsPath    string
	schedulePath string
}

// New creates a file provider for the given paths.
func New(statsPath, schedulePath string) *Provider {
	return &Provider{statsPath: statsPath, schedulePath: schedulePath}
}

// FetchPlayers decodes the stats file.
func (p *Provider) FetchPlayers(ctx context.Context) ([]props.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(p.statsPath)
	if err != nil {
		return nil, fmt.Errorf("open stats file: %w", err)
	}
	defer f.Close()
	return providers.DecodePlayers(f)
}

// FetchSchedule decodes the schedule file. A missing file is an empty schedule.
func (p *Provider) FetchSchedule(ctx context.Context) ([]games.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(p.schedulePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []games.Game{}, nil
		}
		return nil, fmt.Errorf("open schedule file: %w", err)
	}
	defer f.Close()
	return providers.DecodeSchedule(f)
}
