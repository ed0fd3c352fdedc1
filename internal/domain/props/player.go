package props

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PlayerID identifies a player record. Upstream payloads use numbers or strings.
type PlayerID string

// UnmarshalJSON accepts both `"12"` and `12`.
func (id *PlayerID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PlayerID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("player id: %w", err)
	}
	*id = PlayerID(n.String())
	return nil
}

// Lines maps metric names to bookmaker thresholds.
type Lines map[string]float64

// Projections maps metric names to predicted values. Besides the line metrics it
// carries minutes, turnovers and double/triple-double probabilities.
type Projections map[string]float64

// Player is a single props record as delivered by the stats feed.
type Player struct {
	ID          PlayerID    `json:"id"`
	Name        string      `json:"name"`
	Team        string      `json:"team"`
	Lines       Lines       `json:"lines"`
	Projections Projections `json:"projections"`
}

// StatValue is the one place where a missing stat becomes 0.
// Nil maps and absent keys both read as 0; nothing else in the service coerces.
func StatValue(values map[string]float64, key Metric) float64 {
	if values == nil {
		return 0
	}
	return values[string(key)]
}

// Get returns the line for m, 0 when absent.
func (l Lines) Get(m Metric) float64 {
	return StatValue(l, m)
}

// Has reports whether a line was published for m.
func (l Lines) Has(m Metric) bool {
	_, ok := l[string(m)]
	return ok
}

// Get returns the projection for m, 0 when absent.
func (p Projections) Get(m Metric) float64 {
	return StatValue(p, m)
}

// Has reports whether a projection was published for m.
func (p Projections) Has(m Metric) bool {
	_, ok := p[string(m)]
	return ok
}

// Minutes returns projected minutes (0 when absent).
func (p Projections) Minutes() float64 {
	return StatValue(p, Minutes)
}

// Turnovers returns projected turnovers when present.
func (p Projections) Turnovers() (float64, bool) {
	return p.optional(keyTurnovers)
}

// DoubleDouble returns the double-double probability in [0,1] when present.
func (p Projections) DoubleDouble() (float64, bool) {
	return p.optional(keyDoubleDouble)
}

// TripleDouble returns the triple-double probability in [0,1] when present.
func (p Projections) TripleDouble() (float64, bool) {
	return p.optional(keyTripleDouble)
}

func (p Projections) optional(key string) (float64, bool) {
	v, ok := p[key]
	return v, ok
}

// String renders the id for logs.
func (id PlayerID) String() string {
	return string(id)
}

// UnmarshalJSON tolerates malformed stat objects: non-object payloads decode as
// empty and non-numeric entries are dropped, so they read as missing.
func (l *Lines) UnmarshalJSON(data []byte) error {
	*l = decodeStats(data)
	return nil
}

// UnmarshalJSON mirrors Lines.UnmarshalJSON.
func (p *Projections) UnmarshalJSON(data []byte) error {
	*p = decodeStats(data)
	return nil
}

func decodeStats(data []byte) map[string]float64 {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil
	}
	out := make(map[string]float64, len(raw))
	for key, value := range raw {
		if v, ok := decodeNumber(value); ok {
			out[key] = v
		}
	}
	return out
}

func decodeNumber(value json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(value, &f); err == nil {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return 0, false
		}
		return f, true
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return 0, false
	}
	n := json.Number(s)
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}
