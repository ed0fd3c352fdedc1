package teams

import (
	"reflect"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"Code", "code"},
		{"Colors", "colors"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestColorsForKnownTeam(t *testing.T) {
	got := ColorsFor("LAL")
	if got.Primary != "#552583" || got.Secondary != "#FDB927" {
		t.Fatalf("unexpected LAL palette %+v", got)
	}
}

func TestColorsForUnknownTeamFallsBack(t *testing.T) {
	if got := ColorsFor("XYZ"); got != DefaultColors {
		t.Fatalf("expected default palette, got %+v", got)
	}
	if len(palette) != 30 {
		t.Fatalf("expected 30 team palettes, got %d", len(palette))
	}
}

func TestFromCodesPreservesOrder(t *testing.T) {
	got := FromCodes([]string{"NYK", "ATL", "???"})
	if len(got) != 3 || got[0].Code != "NYK" || got[1].Code != "ATL" {
		t.Fatalf("unexpected teams %+v", got)
	}
	if got[2].Colors != DefaultColors {
		t.Fatalf("expected default colors for unknown code")
	}
}
