package standings

import (
	"testing"

	"github.com/riskibarqy/hoopstats/internal/domain/stat"
)

func league() []TeamLine {
	return []TeamLine{
		{TeamID: 1, TeamName: "Boston Celtics", Stats: stat.Line{"PTS": 120.6}},
		{TeamID: 2, TeamName: "Indiana Pacers", Stats: stat.Line{"PTS": 123.3}},
		{TeamID: 3, TeamName: "Los Angeles Lakers", Stats: stat.Line{"PTS": 118.0}},
		{TeamID: 4, TeamName: "Memphis Grizzlies", Stats: stat.Line{}},
	}
}

func TestTopN(t *testing.T) {
	t.Parallel()

	got := TopN(league(), "PTS", 2)
	if len(got) != 2 || got[0].TeamID != 2 || got[1].TeamID != 1 {
		t.Fatalf("unexpected top teams: %+v", got)
	}

	all := TopN(league(), "PTS", 10)
	if len(all) != 3 {
		t.Fatalf("expected rows without the column to be skipped, got=%d", len(all))
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	got := Select(league(), []string{"los angeles lakers", "Boston Celtics", "Seattle SuperSonics"})
	if len(got) != 2 || got[0].TeamID != 3 || got[1].TeamID != 1 {
		t.Fatalf("unexpected selection: %+v", got)
	}
}

func TestByTeamID(t *testing.T) {
	t.Parallel()

	got, ok := ByTeamID(league(), 3)
	if !ok || got.TeamName != "Los Angeles Lakers" {
		t.Fatalf("unexpected row: %+v ok=%v", got, ok)
	}
	if _, ok := ByTeamID(league(), 99); ok {
		t.Fatalf("unknown team id should not match")
	}
}
