package props

// Dedupe collapses players sharing a name into the last record seen.
// Output keeps the position where each name first appeared.
func Dedupe(players []Player) []Player {
	if len(players) == 0 {
		return []Player{}
	}
	index := make(map[string]int, len(players))
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if i, ok := index[p.Name]; ok {
			out[i] = p
			continue
		}
		index[p.Name] = len(out)
		out = append(out, p)
	}
	return out
}
