package nbastats

import (
	"context"

	"github.com/riskibarqy/hoopstats/internal/domain/player"
)

// PlayerIndex exposes the provider's all-time player list as a
// player.Repository.
type PlayerIndex struct {
	client   *Client
	season   string
	fallback player.Repository
}

func NewPlayerIndex(client *Client, season string) *PlayerIndex {
	return &PlayerIndex{client: client, season: season}
}

// WithFallback serves players from repo when the provider cannot be reached.
func (p *PlayerIndex) WithFallback(repo player.Repository) *PlayerIndex {
	p.fallback = repo
	return p
}

func (p *PlayerIndex) List(ctx context.Context) ([]player.Player, error) {
	players, err := p.client.ListPlayers(ctx, p.season)
	if err == nil || p.fallback == nil || ctx.Err() != nil {
		return players, err
	}

	p.client.logger.WarnContext(ctx, "player index unavailable, using fallback", "season", p.season, "error", err)
	return p.fallback.List(ctx)
}
