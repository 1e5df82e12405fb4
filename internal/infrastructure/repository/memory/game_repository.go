package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/hoopstats/internal/domain/game"
)

// GameRepository keeps the last saved slate in process.
type GameRepository struct {
	mu    sync.RWMutex
	slate game.Slate
	saved bool
}

func NewGameRepository() *GameRepository {
	return &GameRepository{}
}

func (r *GameRepository) Save(_ context.Context, slate game.Slate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slate = game.Slate{Date: slate.Date, GameIDs: slices.Clone(slate.GameIDs)}
	r.saved = true
	return nil
}

func (r *GameRepository) Load(_ context.Context) (game.Slate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.saved {
		return game.Slate{}, game.ErrSlateNotFound
	}
	return game.Slate{Date: r.slate.Date, GameIDs: slices.Clone(r.slate.GameIDs)}, nil
}
