package providers

import (
	"context"

	"github.com/preston-bernstein/nba-props-service/internal/domain/games"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

// PropsProvider fetches the player lines/projections payload.
type PropsProvider interface {
	FetchPlayers(ctx context.Context) ([]props.Player, error)
}

// ScheduleProvider fetches the upcoming games payload.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context) ([]games.Game, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PropsProvider
	ScheduleProvider
}
