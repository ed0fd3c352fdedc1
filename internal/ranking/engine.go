package ranking

import (
	"cmp"
	"slices"
	"strings"

	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

// AllTeams disables the team filter.
const AllTeams = "all"

// Filter narrows the player set before sorting.
type Filter struct {
	// Search is matched case-insensitively against the player name; empty matches all.
	Search string
	// Team is an exact team code, or AllTeams.
	Team string
}

// Matches reports whether p passes both the name and the team filter.
func (f Filter) Matches(p props.Player) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return f.Team == "" || f.Team == AllTeams || p.Team == f.Team
}

// SignedDiff is projection minus line for m; missing values count as 0.
func SignedDiff(p props.Player, m props.Metric) float64 {
	return p.Projections.Get(m) - p.Lines.Get(m)
}

// PercentDiff is the signed diff relative to the line, in percent.
// A zero or missing line yields exactly 0.
func PercentDiff(p props.Player, m props.Metric) float64 {
	line := p.Lines.Get(m)
	if line == 0 {
		return 0
	}
	return (p.Projections.Get(m) - line) / line * 100
}

// Value is the number a player is ranked by under spec.
func Value(p props.Player, spec SortSpec) float64 {
	switch spec.Mode {
	case ModeSignedDiff:
		return SignedDiff(p, spec.Metric)
	case ModePercentDiff:
		return PercentDiff(p, spec.Metric)
	default:
		return p.Projections.Get(spec.Metric)
	}
}

// Query returns the players matching filter, ordered by spec. The sort is
// stable so equal keys keep their input order. players is not modified.
func Query(players []props.Player, filter Filter, spec SortSpec) ([]props.Player, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	type keyed struct {
		player props.Player
		key    float64
	}
	matched := make([]keyed, 0, len(players))
	for _, p := range players {
		if filter.Matches(p) {
			matched = append(matched, keyed{player: p, key: Value(p, spec)})
		}
	}

	slices.SortStableFunc(matched, func(a, b keyed) int {
		if spec.Direction == Ascending {
			return cmp.Compare(a.key, b.key)
		}
		return cmp.Compare(b.key, a.key)
	})

	out := make([]props.Player, len(matched))
	for i, k := range matched {
		out[i] = k.player
	}
	return out, nil
}
