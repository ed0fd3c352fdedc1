package props

import "testing"

func TestDedupeKeepsLastRecordPerName(t *testing.T) {
	in := []Player{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "A"},
	}
	out := Dedupe(in)
	if len(out) != 1 {
		t.Fatalf("expected 1 player, got %d", len(out))
	}
	if out[0].ID != "2" {
		t.Fatalf("expected last record (id 2) to win, got %s", out[0].ID)
	}
}

func TestDedupeKeepsFirstAppearanceOrder(t *testing.T) {
	in := []Player{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
		{ID: "3", Name: "A"},
		{ID: "4", Name: "C"},
		{ID: "5", Name: "B"},
	}
	out := Dedupe(in)
	wantNames := []string{"A", "B", "C"}
	wantIDs := []PlayerID{"3", "5", "4"}
	if len(out) != len(wantNames) {
		t.Fatalf("expected %d players, got %d", len(wantNames), len(out))
	}
	for i := range out {
		if out[i].Name != wantNames[i] || out[i].ID != wantIDs[i] {
			t.Fatalf("position %d: expected %s/%s, got %s/%s", i, wantNames[i], wantIDs[i], out[i].Name, out[i].ID)
		}
	}
	if in[0].ID != "1" {
		t.Fatalf("expected input to be left untouched")
	}
}

func TestDedupeEmpty(t *testing.T) {
	if out := Dedupe(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}
