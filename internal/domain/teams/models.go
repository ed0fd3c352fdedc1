package teams

// Colors is the presentation palette for a team card.
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Team pairs a team code with its palette.
type Team struct {
	Code   string `json:"code"`
	Colors Colors `json:"colors"`
}

// DefaultColors is used for codes without a palette.
var DefaultColors = Colors{Primary: "#3b82f6", Secondary: "#8b5cf6"}

var palette = map[string]Colors{
	"ATL": {Primary: "#E03A3E", Secondary: "#C1D32F"},
	"BOS": {Primary: "#007A33", Secondary: "#BA9653"},
	"BKN": {Primary: "#000000", Secondary: "#FFFFFF"},
	"CHA": {Primary: "#1D1160", Secondary: "#00788C"},
	"CHI": {Primary: "#CE1141", Secondary: "#000000"},
	"CLE": {Primary: "#860038", Secondary: "#FDBB30"},
	"DAL": {Primary: "#00538C", Secondary: "#002B5E"},
	"DEN": {Primary: "#0E2240", Secondary: "#FEC524"},
	"DET": {Primary: "#C8102E", Secondary: "#1D42BA"},
	"GSW": {Primary: "#1D428A", Secondary: "#FFC72C"},
	"HOU": {Primary: "#CE1141", Secondary: "#000000"},
	"IND": {Primary: "#002D62", Secondary: "#FDBB30"},
	"LAC": {Primary: "#C8102E", Secondary: "#1D428A"},
	"LAL": {Primary: "#552583", Secondary: "#FDB927"},
	"MEM": {Primary: "#5D76A9", Secondary: "#12173F"},
	"MIA": {Primary: "#98002E", Secondary: "#F9A01B"},
	"MIL": {Primary: "#00471B", Secondary: "#EEE1C6"},
	"MIN": {Primary: "#0C2340", Secondary: "#236192"},
	"NOP": {Primary: "#0C2340", Secondary: "#C8102E"},
	"NYK": {Primary: "#006BB6", Secondary: "#F58426"},
	"OKC": {Primary: "#007AC1", Secondary: "#EF3B24"},
	"ORL": {Primary: "#0077C0", Secondary: "#C4CED4"},
	"PHI": {Primary: "#006BB6", Secondary: "#ED174C"},
	"PHX": {Primary: "#1D1160", Secondary: "#E56020"},
	"POR": {Primary: "#E03A3E", Secondary: "#000000"},
	"SAC": {Primary: "#5A2D81", Secondary: "#63727A"},
	"SAS": {Primary: "#C4CED4", Secondary: "#000000"},
	"TOR": {Primary: "#CE1141", Secondary: "#000000"},
	"UTA": {Primary: "#002B5C", Secondary: "#00471B"},
	"WAS": {Primary: "#002B5C", Secondary: "#E31837"},
}

// ColorsFor returns the palette for a team code, falling back to DefaultColors.
func ColorsFor(code string) Colors {
	if c, ok := palette[code]; ok {
		return c
	}
	return DefaultColors
}

// FromCodes builds Team entries for the given codes, preserving order.
func FromCodes(codes []string) []Team {
	out := make([]Team, 0, len(codes))
	for _, code := range codes {
		out = append(out, Team{Code: code, Colors: ColorsFor(code)})
	}
	return out
}
