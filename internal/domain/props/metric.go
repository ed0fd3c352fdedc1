package props

// Metric is one of the tracked statistical categories that carry both a line and a projection.
type Metric string

const (
	Points                Metric = "points"
	Rebounds              Metric = "rebounds"
	Assists               Metric = "assists"
	ThreesMade            Metric = "fg3PtMade"
	Steals                Metric = "steals"
	Blocks                Metric = "blocks"
	PointsReboundsAssists Metric = "pointsReboundsAssists"
	FantasyPoints         Metric = "fantasyPts"

	// Minutes is projection-only; it has no line and only works as a raw sort key.
	Minutes Metric = "minutes"
)

const (
	keyTurnovers    = "turnovers"
	keyDoubleDouble = "doubleDouble"
	keyTripleDouble = "tripleDouble"
)

type metricInfo struct {
	short string
	long  string
}

// lineMetrics keeps display order (card order in the dashboard).
var lineMetrics = []Metric{
	Points,
	Rebounds,
	Assists,
	ThreesMade,
	Steals,
	Blocks,
	PointsReboundsAssists,
	FantasyPoints,
}

var metricLabels = map[Metric]metricInfo{
	Points:                {short: "PTS", long: "Points"},
	Rebounds:              {short: "REB", long: "Rebounds"},
	Assists:               {short: "AST", long: "Assists"},
	ThreesMade:            {short: "3PM", long: "Threes Made"},
	Steals:                {short: "STL", long: "Steals"},
	Blocks:                {short: "BLK", long: "Blocks"},
	PointsReboundsAssists: {short: "PRA", long: "Points + Rebounds + Assists"},
	FantasyPoints:         {short: "FAN", long: "Fantasy Points"},
	Minutes:               {short: "MIN", long: "Minutes"},
}

// Metrics returns the eight line metrics in display order.
func Metrics() []Metric {
	out := make([]Metric, len(lineMetrics))
	copy(out, lineMetrics)
	return out
}

// IsLineMetric reports whether m is one of the eight metrics that have a bookmaker line.
func (m Metric) IsLineMetric() bool {
	for _, known := range lineMetrics {
		if m == known {
			return true
		}
	}
	return false
}

// IsProjected reports whether m can be read from projections (line metrics plus minutes).
func (m Metric) IsProjected() bool {
	return m == Minutes || m.IsLineMetric()
}

// ShortLabel is the card abbreviation (PTS, REB, ...).
func (m Metric) ShortLabel() string {
	return metricLabels[m].short
}

// Label is the human readable name.
func (m Metric) Label() string {
	if info, ok := metricLabels[m]; ok {
		return info.long
	}
	return string(m)
}
