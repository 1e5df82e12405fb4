package shot

import "testing"

func TestSummarize(t *testing.T) {
	t.Parallel()

	shots := []Shot{
		{ShotType: TypeThreePoint, Made: true},
		{ShotType: TypeThreePoint},
		{ShotType: TypeThreePoint},
		{ShotType: TypeTwoPoint, Made: true},
		{ShotType: TypeTwoPoint, Made: true},
	}

	got := Summarize(shots)
	if got.TotalShots != 5 || got.Made != 3 || got.Missed != 2 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if got.FGPct != 60 {
		t.Fatalf("expected FG%% 60, got=%v", got.FGPct)
	}
	if got.ThreePoint == nil || got.ThreePoint.Attempts != 3 || got.ThreePoint.Made != 1 {
		t.Fatalf("unexpected three point split: %+v", got.ThreePoint)
	}
	if got.TwoPoint == nil || got.TwoPoint.Pct != 100 {
		t.Fatalf("unexpected two point split: %+v", got.TwoPoint)
	}
}

func TestSummarize_OmitsEmptySplits(t *testing.T) {
	t.Parallel()

	got := Summarize([]Shot{{ShotType: TypeTwoPoint}})
	if got.ThreePoint != nil {
		t.Fatalf("expected no three point split, got=%+v", got.ThreePoint)
	}
	if got.FGPct != 0 {
		t.Fatalf("expected 0 FG%%, got=%v", got.FGPct)
	}

	empty := Summarize(nil)
	if empty.TotalShots != 0 || empty.FGPct != 0 || empty.TwoPoint != nil {
		t.Fatalf("expected zero summary, got=%+v", empty)
	}
}

func TestClassifyZone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		x, y float64
		want string
	}{
		{"at the rim", 0, 5, ZoneRestrictedArea},
		{"short baseline", 60, 20, ZonePaint},
		{"free throw line", 0, 140, ZonePaint},
		{"elbow jumper", 100, 140, ZoneMidRange},
		{"left corner", -225, 10, ZoneLeftCorner3},
		{"right corner", 225, 10, ZoneRightCorner3},
		{"top of the key", 0, 250, ZoneAboveBreak3},
		{"wing three", 180, 170, ZoneAboveBreak3},
		{"half court heave", 0, 450, ZoneBackcourt},
	}
	for _, tc := range cases {
		if got := ClassifyZone(tc.x, tc.y); got != tc.want {
			t.Fatalf("%s: ClassifyZone(%v,%v)=%q, want %q", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestByZone_PrefersProviderZone(t *testing.T) {
	t.Parallel()

	shots := []Shot{
		{ZoneBasic: ZoneAboveBreak3, LocX: 0, LocY: 5, Made: true},
		{LocX: 0, LocY: 5, Made: true},
		{LocX: 0, LocY: 5},
		{ZoneBasic: "Heave", LocX: 0, LocY: 800},
	}

	got := ByZone(shots)
	if len(got) != 3 {
		t.Fatalf("expected 3 zones, got=%d (%+v)", len(got), got)
	}
	if got[0].Zone != ZoneRestrictedArea || got[0].Attempts != 2 || got[0].Pct != 50 {
		t.Fatalf("unexpected restricted area line: %+v", got[0])
	}
	if got[1].Zone != ZoneAboveBreak3 || got[1].Made != 1 {
		t.Fatalf("unexpected above the break line: %+v", got[1])
	}
	if got[2].Zone != "Heave" {
		t.Fatalf("expected unknown provider zone last, got=%q", got[2].Zone)
	}
}

func TestPartition(t *testing.T) {
	t.Parallel()

	made, missed := Partition([]Shot{{Made: true, GameEventID: 1}, {GameEventID: 2}, {Made: true, GameEventID: 3}})
	if len(made) != 2 || len(missed) != 1 {
		t.Fatalf("expected 2 made and 1 missed, got=%d/%d", len(made), len(missed))
	}
	if made[1].GameEventID != 3 {
		t.Fatalf("expected order preserved, got=%d", made[1].GameEventID)
	}
}
