package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoopstats/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
	index map[int64]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	index := make(map[int64]team.Team, len(teams))
	for _, item := range teams {
		index[item.ID] = item
	}

	return &TeamRepository{teams: append([]team.Team(nil), teams...), index: index}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.index[teamID]
	return item, ok, nil
}
