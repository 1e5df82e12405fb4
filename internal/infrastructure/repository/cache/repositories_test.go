package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/hoopstats/internal/domain/player"
	"github.com/riskibarqy/hoopstats/internal/domain/team"
	basecache "github.com/riskibarqy/hoopstats/internal/platform/cache"
)

type countingPlayers struct {
	calls int
	err   error
}

func (c *countingPlayers) List(context.Context) ([]player.Player, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []player.Player{{ID: 2544, FullName: "LeBron James"}}, nil
}

func TestPlayerRepository_CachesIndex(t *testing.T) {
	t.Parallel()

	next := &countingPlayers{}
	repo := NewPlayerRepository(next, basecache.NewStore[[]player.Player](time.Hour))

	for i := 0; i < 3; i++ {
		items, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].ID != 2544 {
			t.Fatalf("unexpected items: %+v", items)
		}
		items[0].FullName = "mutated"
	}
	if next.calls != 1 {
		t.Fatalf("expected one upstream call, got=%d", next.calls)
	}

	items, _ := repo.List(context.Background())
	if items[0].FullName != "LeBron James" {
		t.Fatalf("callers must not share the cached slice, got=%q", items[0].FullName)
	}
}

func TestPlayerRepository_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	next := &countingPlayers{err: errors.New("boom")}
	repo := NewPlayerRepository(next, basecache.NewStore[[]player.Player](time.Hour))

	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	next.err = nil
	if _, err := repo.List(context.Background()); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("expected two upstream calls, got=%d", next.calls)
	}
}

type staticTeams struct{ calls int }

func (s *staticTeams) List(context.Context) ([]team.Team, error) {
	s.calls++
	return []team.Team{{ID: 1610612747, FullName: "Los Angeles Lakers"}}, nil
}

func (s *staticTeams) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	s.calls++
	if teamID == 1610612747 {
		return team.Team{ID: teamID, FullName: "Los Angeles Lakers"}, true, nil
	}
	return team.Team{}, false, nil
}

func TestTeamRepository_CachesMisses(t *testing.T) {
	t.Parallel()

	next := &staticTeams{}
	repo := NewTeamRepository(next, basecache.NewStore[any](time.Hour))

	for i := 0; i < 2; i++ {
		if _, ok, err := repo.GetByID(context.Background(), 1); err != nil || ok {
			t.Fatalf("expected cached miss, ok=%v err=%v", ok, err)
		}
	}
	item, ok, err := repo.GetByID(context.Background(), 1610612747)
	if err != nil || !ok || item.FullName != "Los Angeles Lakers" {
		t.Fatalf("unexpected lookup: %+v ok=%v err=%v", item, ok, err)
	}
	if next.calls != 2 {
		t.Fatalf("expected two upstream calls, got=%d", next.calls)
	}
}
