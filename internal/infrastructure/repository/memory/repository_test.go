package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/hoopstats/internal/domain/game"
)

func TestSeedTeams_AreValidAndUnique(t *testing.T) {
	t.Parallel()

	teams := SeedTeams()
	if len(teams) != 30 {
		t.Fatalf("expected 30 teams, got=%d", len(teams))
	}
	seenID := make(map[int64]struct{}, len(teams))
	seenAbbr := make(map[string]struct{}, len(teams))
	for _, item := range teams {
		if err := item.Validate(); err != nil {
			t.Fatalf("invalid team %+v: %v", item, err)
		}
		if _, ok := seenID[item.ID]; ok {
			t.Fatalf("duplicate team id %d", item.ID)
		}
		if _, ok := seenAbbr[item.Abbreviation]; ok {
			t.Fatalf("duplicate abbreviation %s", item.Abbreviation)
		}
		seenID[item.ID] = struct{}{}
		seenAbbr[item.Abbreviation] = struct{}{}
	}
}

func TestTeamRepository_GetByID(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedTeams())
	item, ok, err := repo.GetByID(context.Background(), TeamIDLakers)
	if err != nil || !ok {
		t.Fatalf("expected lakers, ok=%v err=%v", ok, err)
	}
	if item.Abbreviation != "LAL" {
		t.Fatalf("unexpected team: %+v", item)
	}
	if _, ok, _ := repo.GetByID(context.Background(), 42); ok {
		t.Fatalf("unexpected team for unknown id")
	}
}

func TestGameRepository_LoadBeforeSave(t *testing.T) {
	t.Parallel()

	repo := NewGameRepository()
	if _, err := repo.Load(context.Background()); !errors.Is(err, game.ErrSlateNotFound) {
		t.Fatalf("expected ErrSlateNotFound, got=%v", err)
	}

	ids := []string{"0022300500", "0022300501"}
	if err := repo.Save(context.Background(), game.Slate{Date: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), GameIDs: ids}); err != nil {
		t.Fatalf("save: %v", err)
	}
	ids[0] = "mutated"

	slate, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(slate.GameIDs) != 2 || slate.GameIDs[0] != "0022300500" {
		t.Fatalf("unexpected slate: %+v", slate)
	}
}
