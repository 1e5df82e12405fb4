package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoopstats/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	return &PlayerRepository{players: append([]player.Player(nil), players...)}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

// Replace swaps the whole index, used when a fresh provider index arrives.
func (r *PlayerRepository) Replace(players []player.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = append([]player.Player(nil), players...)
}
