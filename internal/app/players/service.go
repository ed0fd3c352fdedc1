package players

import (
	"errors"
	"math"
	"time"

	"github.com/preston-bernstein/nba-props-service/internal/board"
	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-props-service/internal/ranking"
	"github.com/preston-bernstein/nba-props-service/internal/schedule"
)

var (
	// ErrNotReady is returned before the first board has been loaded.
	ErrNotReady = errors.New("player data not loaded")
	// ErrNotFound is returned for unknown player ids.
	ErrNotFound = errors.New("player not found")
)

// Store exposes the current board.
type Store interface {
	Board() (*board.Board, bool)
}

// PlayerView is a player as listed by the API: raw stats, next game and deltas.
type PlayerView struct {
	ID          props.PlayerID        `json:"id"`
	Name        string                `json:"name"`
	Team        string                `json:"team"`
	Lines       props.Lines           `json:"lines"`
	Projections props.Projections     `json:"projections"`
	Game        *schedule.GameInfo    `json:"game,omitempty"`
	Deltas      []ranking.MetricDelta `json:"deltas"`
}

// Extras are the secondary projections shown on the detail page.
type Extras struct {
	Minutes         float64  `json:"minutes"`
	Turnovers       *float64 `json:"turnovers,omitempty"`
	DoubleDoublePct *float64 `json:"doubleDoublePct,omitempty"`
	TripleDoublePct *float64 `json:"tripleDoublePct,omitempty"`
}

// PlayerDetail is the single-player payload.
type PlayerDetail struct {
	PlayerView
	Extras Extras       `json:"extras"`
	Colors teams.Colors `json:"colors"`
}

// QueryResult is a filtered, sorted page of players.
type QueryResult struct {
	Total    int          `json:"total"`
	Count    int          `json:"count"`
	Sort     string       `json:"sort"`
	BoardID  string       `json:"boardId"`
	MappedAt time.Time    `json:"mappedAt"`
	Players  []PlayerView `json:"players"`
}

// Service answers player queries against the current board.
type Service struct {
	store     Store
	location  *time.Location
	formatter *ranking.Formatter
}

// NewService constructs a Service. loc is used for game date/time rendering
// and f for signed delta strings; nil values fall back to UTC and English.
func NewService(store Store, loc *time.Location, f *ranking.Formatter) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if f == nil {
		f = ranking.NewFormatter("en")
	}
	return &Service{store: store, location: loc, formatter: f}
}

// Query filters and sorts the current players.
func (s *Service) Query(filter ranking.Filter, spec ranking.SortSpec) (QueryResult, error) {
	b, ok := s.store.Board()
	if !ok {
		return QueryResult{}, ErrNotReady
	}
	matched, err := ranking.Query(b.Players, filter, spec)
	if err != nil {
		return QueryResult{}, err
	}

	views := make([]PlayerView, 0, len(matched))
	for _, p := range matched {
		views = append(views, s.view(b, p))
	}
	return QueryResult{
		Total:    len(b.Players),
		Count:    len(views),
		Sort:     spec.String(),
		BoardID:  b.ID,
		MappedAt: b.MappedAt,
		Players:  views,
	}, nil
}

// Detail returns the full view for one player.
func (s *Service) Detail(id props.PlayerID) (PlayerDetail, error) {
	b, ok := s.store.Board()
	if !ok {
		return PlayerDetail{}, ErrNotReady
	}
	p, ok := b.Player(id)
	if !ok {
		return PlayerDetail{}, ErrNotFound
	}
	return PlayerDetail{
		PlayerView: s.view(b, p),
		Extras:     extrasFor(p.Projections),
		Colors:     teams.ColorsFor(p.Team),
	}, nil
}

func (s *Service) view(b *board.Board, p props.Player) PlayerView {
	v := PlayerView{
		ID:          p.ID,
		Name:        p.Name,
		Team:        p.Team,
		Lines:       p.Lines,
		Projections: p.Projections,
		Deltas:      ranking.Deltas(p, s.formatter),
	}
	if g, ok := b.Game(p.ID); ok {
		info := schedule.Describe(g, p.Team, s.location)
		v.Game = &info
	}
	return v
}

// extrasFor hides zero turnovers; probabilities are shown whenever present,
// as whole percentages.
func extrasFor(proj props.Projections) Extras {
	e := Extras{Minutes: proj.Minutes()}
	if v, ok := proj.Turnovers(); ok && v > 0 {
		e.Turnovers = &v
	}
	if v, ok := proj.DoubleDouble(); ok {
		pct := math.Round(v * 100)
		e.DoubleDoublePct = &pct
	}
	if v, ok := proj.TripleDouble(); ok {
		pct := math.Round(v * 100)
		e.TripleDoublePct = &pct
	}
	return e
}
