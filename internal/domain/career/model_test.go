package career

import (
	"testing"

	"github.com/riskibarqy/hoopstats/internal/domain/stat"
)

func TestProgression(t *testing.T) {
	t.Parallel()

	seasons := []Season{
		{SeasonID: "2009-10", Stats: stat.Line{"PTS": 17.5}},
		{SeasonID: "2010-11", Stats: stat.Line{}},
		{SeasonID: "2011-12", Stats: stat.Line{"PTS": 14.7}},
	}

	labels, values := Progression(seasons, "PTS")
	if len(labels) != 2 || labels[1] != "2011-12" || values[1] != 14.7 {
		t.Fatalf("unexpected progression: %v %v", labels, values)
	}
}
