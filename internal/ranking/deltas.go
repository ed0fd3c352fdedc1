package ranking

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/preston-bernstein/nba-props-service/internal/domain/props"
)

// Trend directions for a metric card.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendSame = "same"
)

// MetricDelta is the line vs projection comparison for one metric.
type MetricDelta struct {
	Metric      props.Metric `json:"metric"`
	Label       string       `json:"label"`
	Line        float64      `json:"line"`
	Projection  float64      `json:"projection"`
	Diff        float64      `json:"diff"`
	PercentDiff float64      `json:"percentDiff"`
	Trend       string       `json:"trend"`
	Display     string       `json:"display"`
	DisplayPerc string       `json:"displayPerc"`
}

// Formatter renders signed deltas using locale number formatting.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a Formatter for the BCP 47 tag, falling back to English.
func NewFormatter(tag string) *Formatter {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.English
	}
	return &Formatter{printer: message.NewPrinter(lang)}
}

// Signed renders v with one decimal and an explicit "+" for positive values.
func (f *Formatter) Signed(v float64) string {
	return f.signed(v, "%.1f")
}

// SignedPercent renders v as a percentage with an explicit "+" for positive values.
func (f *Formatter) SignedPercent(v float64) string {
	return f.signed(v, "%.1f%%")
}

func (f *Formatter) signed(v float64, format string) string {
	v = roundTenth(v)
	s := f.messagePrinter().Sprintf(format, v)
	if v > 0 {
		return "+" + s
	}
	return s
}

func (f *Formatter) messagePrinter() *message.Printer {
	if f == nil || f.printer == nil {
		return message.NewPrinter(language.English)
	}
	return f.printer
}

// roundTenth avoids "-0.0" and "+0.0" when a tiny diff rounds to zero.
func roundTenth(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0
	}
	return r
}

// Trend classifies a signed diff.
func Trend(diff float64) string {
	switch {
	case diff > 0:
		return TrendUp
	case diff < 0:
		return TrendDown
	default:
		return TrendSame
	}
}

// Deltas computes the comparison for each line metric in display order.
func Deltas(p props.Player, f *Formatter) []MetricDelta {
	metrics := props.Metrics()
	out := make([]MetricDelta, 0, len(metrics))
	for _, m := range metrics {
		diff := SignedDiff(p, m)
		perc := PercentDiff(p, m)
		out = append(out, MetricDelta{
			Metric:      m,
			Label:       m.ShortLabel(),
			Line:        p.Lines.Get(m),
			Projection:  p.Projections.Get(m),
			Diff:        diff,
			PercentDiff: perc,
			Trend:       Trend(diff),
			Display:     f.Signed(diff),
			DisplayPerc: f.SignedPercent(perc),
		})
	}
	return out
}
