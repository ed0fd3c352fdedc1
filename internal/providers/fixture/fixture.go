package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

// Provider returns a static board useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchSchedule returns games starting a few hours from now so every fixture
// team has an upcoming game.
func (p *Provider) FetchSchedule(ctx context.Context) ([]games.Game, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)
	return []games.Game{
		{Home: "BOS", Away: "LAL", Time: start.Add(2 * time.Hour).Format(time.RFC3339)},
		{Home: "GSW", Away: "MIA", Time: start.Add(4 * time.Hour).Format(time.RFC3339)},
		{Home: "LAL", Away: "GSW", Time: start.Add(26 * time.Hour).Format(time.RFC3339)},
	}, nil
}

// FetchPlayers returns a deterministic set of players covering positive,
// negative and missing lines.
func (p *Provider) FetchPlayers(ctx context.Context) ([]props.Player, error) {
	_ = ctx
	return []props.Player{
		{
			ID:   "fixture-1",
			Name: "Jane Doe",
			Team: "BOS",
			Lines: props.Lines{
				"points": 24.5, "rebounds": 6.5, "assists": 4.5, "fg3PtMade": 2.5,
				"steals": 1.5, "blocks": 0.5, "pointsReboundsAssists": 35.5, "fantasyPts": 42,
			},
			Projections: props.Projections{
				"points": 27.1, "rebounds": 5.8, "assists": 5.2, "fg3PtMade": 3.1,
				"steals": 1.2, "blocks": 0.6, "pointsReboundsAssists": 38.1, "fantasyPts": 45.3,
				"minutes": 35.2, "turnovers": 2.7, "doubleDouble": 0.18, "tripleDouble": 0.02,
			},
		},
		{
			ID:   "fixture-2",
			Name: "John Smith",
			Team: "LAL",
			Lines: props.Lines{
				"points": 18.5, "rebounds": 10.5, "assists": 2.5, "fg3PtMade": 0.5,
				"steals": 0.5, "blocks": 1.5, "pointsReboundsAssists": 31.5, "fantasyPts": 38,
			},
			Projections: props.Projections{
				"points": 16.4, "rebounds": 11.9, "assists": 2.1, "fg3PtMade": 0.3,
				"steals": 0.7, "blocks": 1.9, "pointsReboundsAssists": 30.4, "fantasyPts": 39.2,
				"minutes": 31.8, "turnovers": 1.4, "doubleDouble": 0.46,
			},
		},
		{
			ID:   "fixture-3",
			Name: "Alex Rivera",
			Team: "GSW",
			Lines: props.Lines{
				"points": 12.5, "assists": 7.5, "fg3PtMade": 1.5,
			},
			Projections: props.Projections{
				"points": 13.9, "rebounds": 4.1, "assists": 8.4, "fg3PtMade": 1.5,
				"minutes": 29.5,
			},
		},
		{
			ID:   "fixture-4",
			Name: "Sam Lee",
			Team: "MIA",
			Lines: props.Lines{
				"points": 0, "rebounds": 3.5,
			},
			Projections: props.Projections{
				"points": 6.2, "rebounds": 3.5, "minutes": 18,
			},
		},
	}, nil
}
