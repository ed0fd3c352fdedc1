// Package ranking filters and orders players by raw projections or by the
// gap between projection and bookmaker line.
package ranking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

var (
	// ErrUnknownMetric is returned when a sort names a metric outside the enumeration.
	ErrUnknownMetric = errors.New("unknown metric key")
	// ErrInvalidSort is returned for sort strings that do not follow the grammar.
	ErrInvalidSort = errors.New("invalid sort")
)

// Mode selects the value a sort orders by.
type Mode int

const (
	ModeRaw Mode = iota
	ModeSignedDiff
	ModePercentDiff
)

const (
	prefixDiff = "diff_"
	prefixPerc = "perc_"
)

func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModeSignedDiff:
		return "diff"
	case ModePercentDiff:
		return "perc"
	default:
		return "unknown"
	}
}

// Direction is the sort order.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

// SortSpec is a parsed sort request.
type SortSpec struct {
	Mode      Mode
	Metric    props.Metric
	Direction Direction
}

// DefaultSort orders by projected points, highest first.
var DefaultSort = SortSpec{Mode: ModeRaw, Metric: props.Points, Direction: Descending}

// String renders the canonical form accepted by ParseSortSpec.
func (s SortSpec) String() string {
	switch s.Mode {
	case ModeSignedDiff:
		return prefixDiff + string(s.Metric) + "_" + s.Direction.String()
	case ModePercentDiff:
		return prefixPerc + string(s.Metric) + "_" + s.Direction.String()
	default:
		if s.Direction == Ascending {
			return string(s.Metric) + "_asc"
		}
		return string(s.Metric)
	}
}

// Validate checks that the spec refers to a metric usable in its mode.
func (s SortSpec) Validate() error {
	switch s.Mode {
	case ModeRaw:
		if !s.Metric.IsProjected() {
			return fmt.Errorf("%w: %q", ErrUnknownMetric, s.Metric)
		}
	case ModeSignedDiff, ModePercentDiff:
		if !s.Metric.IsLineMetric() {
			return fmt.Errorf("%w: %q", ErrUnknownMetric, s.Metric)
		}
	default:
		return fmt.Errorf("%w: mode %d", ErrInvalidSort, s.Mode)
	}
	if s.Direction != Ascending && s.Direction != Descending {
		return fmt.Errorf("%w: direction %d", ErrInvalidSort, s.Direction)
	}
	return nil
}

// ParseSortSpec parses `points`, `diff_points`, `diff_points_asc`,
// `perc_rebounds_desc` and so on. Bare keys sort descending; `<key>_asc` is
// also accepted for raw sorts. Nothing falls back to a default.
func ParseSortSpec(raw string) (SortSpec, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return SortSpec{}, fmt.Errorf("%w: empty sort", ErrInvalidSort)
	}

	spec := SortSpec{Mode: ModeRaw, Direction: Descending}
	switch {
	case strings.HasPrefix(value, prefixDiff):
		spec.Mode = ModeSignedDiff
		value = strings.TrimPrefix(value, prefixDiff)
	case strings.HasPrefix(value, prefixPerc):
		spec.Mode = ModePercentDiff
		value = strings.TrimPrefix(value, prefixPerc)
	}

	key, order, hasOrder := strings.Cut(value, "_")
	if key == "" {
		return SortSpec{}, fmt.Errorf("%w: %q", ErrInvalidSort, raw)
	}
	if hasOrder {
		dir, err := parseDirection(order)
		if err != nil {
			return SortSpec{}, fmt.Errorf("%w: %q", err, raw)
		}
		spec.Direction = dir
	}
	spec.Metric = props.Metric(key)

	if err := spec.Validate(); err != nil {
		return SortSpec{}, err
	}
	return spec, nil
}

func parseDirection(order string) (Direction, error) {
	switch order {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return Descending, ErrInvalidSort
	}
}

// SortOption describes a selectable sort.
type SortOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Mode  string `json:"mode"`
}

// Options lists every sort the engine accepts in canonical form, grouped by mode.
func Options() []SortOption {
	metrics := props.Metrics()
	out := make([]SortOption, 0, len(metrics)*5+2)
	for _, m := range append(metrics, props.Minutes) {
		out = append(out, SortOption{
			Key:   SortSpec{Mode: ModeRaw, Metric: m}.String(),
			Label: m.Label(),
			Mode:  ModeRaw.String(),
		})
	}
	for _, mode := range []Mode{ModeSignedDiff, ModePercentDiff} {
		for _, m := range metrics {
			for _, dir := range []Direction{Descending, Ascending} {
				out = append(out, SortOption{
					Key:   SortSpec{Mode: mode, Metric: m, Direction: dir}.String(),
					Label: optionLabel(mode, m, dir),
					Mode:  mode.String(),
				})
			}
		}
	}
	return out
}

func optionLabel(mode Mode, m props.Metric, dir Direction) string {
	kind := "Diff"
	if mode == ModePercentDiff {
		kind = "Diff %"
	}
	arrow := "high to low"
	if dir == Ascending {
		arrow = "low to high"
	}
	return fmt.Sprintf("%s %s (%s)", m.ShortLabel(), kind, arrow)
}
