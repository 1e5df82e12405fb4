package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/hoopstats/internal/domain/career"
	"github.com/riskibarqy/hoopstats/internal/domain/game"
	"github.com/riskibarqy/hoopstats/internal/domain/gamelog"
	"github.com/riskibarqy/hoopstats/internal/domain/player"
	"github.com/riskibarqy/hoopstats/internal/domain/shot"
	"github.com/riskibarqy/hoopstats/internal/domain/standings"
	"github.com/riskibarqy/hoopstats/internal/platform/chart"
)

const (
	SeasonTypeRegular  = "Regular Season"
	SeasonTypePlayoffs = "Playoffs"
	SeasonTypePre      = "Pre Season"
	SeasonTypeAllStar  = "All Star"
	SeasonTypePlayIn   = "PlayIn"

	ContextMeasureFGA = "FGA"
)

// ShotChartQuery selects shots for shotchartdetail. TeamID zero means any team.
type ShotChartQuery struct {
	PlayerID       int64
	TeamID         int64
	Season         string
	SeasonType     string
	ContextMeasure string
}

// StatsProvider is the remote statistics service.
type StatsProvider interface {
	PlayerInfo(ctx context.Context, playerID int64) (player.Info, error)
	ShotChart(ctx context.Context, query ShotChartQuery) ([]shot.Shot, error)
	CareerStats(ctx context.Context, playerID int64, perMode string) ([]career.Season, error)
	PlayerGameLog(ctx context.Context, playerID int64, season, seasonType string) ([]gamelog.Game, error)
	TeamGameLog(ctx context.Context, teamID int64, season, seasonType string) ([]gamelog.Game, error)
	LeagueTeamStats(ctx context.Context, season, seasonType, perMode string) ([]standings.TeamLine, error)
	FindGameIDs(ctx context.Context, date time.Time, seasonType string) ([]string, error)
	BoxScoreSummary(ctx context.Context, gameID string) (game.BoxScore, error)
}

// FigureWriter renders a figure and stores it under name, returning where
// it was written.
type FigureWriter interface {
	Write(ctx context.Context, name string, fig chart.Figure) (string, error)
}
