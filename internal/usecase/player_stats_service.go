package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/hoopstats/internal/domain/career"
	"github.com/riskibarqy/hoopstats/internal/domain/gamelog"
	"github.com/riskibarqy/hoopstats/internal/domain/player"
	"github.com/riskibarqy/hoopstats/internal/platform/chart"
	"github.com/riskibarqy/hoopstats/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultPerformanceStats are plotted when no stat is requested.
var DefaultPerformanceStats = []string{"PTS", "AST", "REB"}

// PlayerComparison is one player's line in a comparison.
type PlayerComparison struct {
	PlayerID    int64              `json:"player_id"`
	Name        string             `json:"name"`
	GamesPlayed int                `json:"games_played"`
	Averages    map[string]float64 `json:"averages"`
}

// PlayerStatsService fetches player tables and keeps the latest of each for
// plotting and aggregation.
type PlayerStatsService struct {
	directory   *DirectoryService
	provider    StatsProvider
	figures     FigureWriter
	logger      *logging.Logger
	workerCount int

	mu         sync.RWMutex
	info       *player.Info
	careerName string
	career     []career.Season
	logName    string
	logSeason  string
	gameLog    []gamelog.Game
	hasCareer  bool
	hasGameLog bool
}

func NewPlayerStatsService(
	directory *DirectoryService,
	provider StatsProvider,
	figures FigureWriter,
	logger *logging.Logger,
	workerCount int,
) *PlayerStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	return &PlayerStatsService{
		directory:   directory,
		provider:    provider,
		figures:     figures,
		logger:      logger,
		workerCount: workerCount,
	}
}

func (s *PlayerStatsService) FetchPlayerInfo(ctx context.Context, name string) (player.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.FetchPlayerInfo")
	var err error
	defer func() { endSpan(span, err) }()

	p, err := s.directory.resolvePlayer(ctx, name)
	if err != nil {
		return player.Info{}, err
	}

	info, err := s.provider.PlayerInfo(ctx, p.ID)
	if err != nil {
		err = fmt.Errorf("fetch player info: %w", err)
		return player.Info{}, err
	}

	s.mu.Lock()
	s.info = &info
	s.mu.Unlock()
	return info, nil
}

// PlayerInfo returns the last fetched biography.
func (s *PlayerStatsService) PlayerInfo() (player.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.info == nil {
		return player.Info{}, fmt.Errorf("%w: fetch player info first", ErrNoData)
	}
	return *s.info, nil
}

// FetchCareerStats loads the regular-season career table in the given per
// mode.
func (s *PlayerStatsService) FetchCareerStats(ctx context.Context, name, perMode string) ([]career.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.FetchCareerStats",
		attribute.String("per_mode", perMode),
	)
	var err error
	defer func() { endSpan(span, err) }()

	if err = validateInput(ctx, careerQuery{PerMode: perMode}); err != nil {
		return nil, err
	}

	p, err := s.directory.resolvePlayer(ctx, name)
	if err != nil {
		return nil, err
	}

	seasons, err := s.provider.CareerStats(ctx, p.ID, perMode)
	if err != nil {
		err = fmt.Errorf("fetch career stats: %w", err)
		return nil, err
	}

	s.mu.Lock()
	s.career = seasons
	s.careerName = p.FullName
	s.hasCareer = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "career stats loaded", "player_id", p.ID, "seasons", len(seasons))
	return seasons, nil
}

func (s *PlayerStatsService) FetchGameLog(ctx context.Context, name, season, seasonType string) ([]gamelog.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.FetchGameLog",
		attribute.String("season", season),
		attribute.String("season_type", seasonType),
	)
	var err error
	defer func() { endSpan(span, err) }()

	if err = validateInput(ctx, seasonQuery{Season: season, SeasonType: seasonType}); err != nil {
		return nil, err
	}

	p, err := s.directory.resolvePlayer(ctx, name)
	if err != nil {
		return nil, err
	}

	games, err := s.provider.PlayerGameLog(ctx, p.ID, season, seasonType)
	if err != nil {
		err = fmt.Errorf("fetch player game log: %w", err)
		return nil, err
	}

	s.mu.Lock()
	s.gameLog = games
	s.logName = p.FullName
	s.logSeason = season
	s.hasGameLog = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "player game log loaded", "player_id", p.ID, "season", season, "games", len(games))
	return games, nil
}

// PlotCareerProgression draws column across the loaded career seasons.
func (s *PlayerStatsService) PlotCareerProgression(ctx context.Context, column string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.PlotCareerProgression")
	var err error
	defer func() { endSpan(span, err) }()

	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		err = fmt.Errorf("%w: stat is required", ErrInvalidInput)
		return "", err
	}

	s.mu.RLock()
	seasons, name, ok := s.career, s.careerName, s.hasCareer
	s.mu.RUnlock()
	if !ok || len(seasons) == 0 {
		err = fmt.Errorf("%w: fetch career stats first", ErrNoData)
		return "", err
	}

	labels, values := career.Progression(seasons, column)
	if len(values) == 0 {
		err = fmt.Errorf("%w: career table has no %s column", ErrInvalidInput, column)
		return "", err
	}

	path, err := s.figures.Write(ctx, fmt.Sprintf("%s career %s", name, column), chart.LineChart{
		Title:  fmt.Sprintf("%s Career %s Progression", name, column),
		XLabel: "Season",
		YLabel: column,
		Labels: labels,
		Series: []chart.LineSeries{{Name: column, Values: values}},
	})
	if err != nil {
		err = fmt.Errorf("write career chart: %w", err)
		return "", err
	}
	return path, nil
}

// PlotSeasonPerformance draws one line per requested column present in the
// loaded game log, oldest game first.
func (s *PlayerStatsService) PlotSeasonPerformance(ctx context.Context, columns []string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.PlotSeasonPerformance")
	var err error
	defer func() { endSpan(span, err) }()

	games, name, season, err := s.loadedGameLog()
	if err != nil {
		return "", err
	}
	if len(columns) == 0 {
		columns = DefaultPerformanceStats
	}

	series := performanceSeries(gamelog.Chronological(games), columns)
	if len(series) == 0 {
		err = fmt.Errorf("%w: game log has none of %v", ErrInvalidInput, columns)
		return "", err
	}

	path, err := s.figures.Write(ctx, fmt.Sprintf("%s season performance %s", name, season), chart.LineChart{
		Title:  fmt.Sprintf("%s Season Performance %s", name, season),
		XLabel: "Game",
		YLabel: "Value",
		Series: series,
	})
	if err != nil {
		err = fmt.Errorf("write season performance chart: %w", err)
		return "", err
	}
	return path, nil
}

// SeasonAverages averages the standard columns over the loaded game log.
func (s *PlayerStatsService) SeasonAverages() (map[string]float64, error) {
	games, _, _, err := s.loadedGameLog()
	if err != nil {
		return nil, err
	}
	return gamelog.SeasonAverages(games), nil
}

// PlotShootingSplits draws FG%, 3P% and FT% of the loaded game log.
func (s *PlayerStatsService) PlotShootingSplits(ctx context.Context) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.PlotShootingSplits")
	var err error
	defer func() { endSpan(span, err) }()

	games, name, season, err := s.loadedGameLog()
	if err != nil {
		return "", err
	}

	splits := gamelog.ShootingSplits(games)
	bars := make([]chart.Bar, 0, len(splits))
	for _, item := range splits {
		bars = append(bars, chart.Bar{Label: item.Statistic, Value: item.Value})
	}

	path, err := s.figures.Write(ctx, fmt.Sprintf("%s shooting splits %s", name, season), chart.BarChart{
		Title:  fmt.Sprintf("%s Shooting Splits %s", name, season),
		YLabel: "Percentage",
		Bars:   bars,
		YRange: &chart.Range{Min: 0, Max: 100},
	})
	if err != nil {
		err = fmt.Errorf("write shooting splits chart: %w", err)
		return "", err
	}
	return path, nil
}

// StatsSummary is the per-game summary table of the loaded game log.
func (s *PlayerStatsService) StatsSummary() ([]gamelog.SummaryItem, error) {
	games, _, _, err := s.loadedGameLog()
	if err != nil {
		return nil, err
	}
	return gamelog.PlayerSummary(games), nil
}

// ComparePlayers fetches each player's game log concurrently and returns
// their averages in the order of names. The loaded game log is untouched.
func (s *PlayerStatsService) ComparePlayers(ctx context.Context, names []string, season, seasonType string) ([]PlayerComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.ComparePlayers",
		attribute.Int("players", len(names)),
	)
	var err error
	defer func() { endSpan(span, err) }()

	if len(names) == 0 {
		err = fmt.Errorf("%w: at least one player is required", ErrInvalidInput)
		return nil, err
	}
	if err = validateInput(ctx, seasonQuery{Season: season, SeasonType: seasonType}); err != nil {
		return nil, err
	}

	out := make([]PlayerComparison, len(names))
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError().WithMaxGoroutines(s.workerCount)
	for i, name := range names {
		p.Go(func(ctx context.Context) error {
			pl, err := s.directory.resolvePlayer(ctx, name)
			if err != nil {
				return err
			}
			games, err := s.provider.PlayerGameLog(ctx, pl.ID, season, seasonType)
			if err != nil {
				return fmt.Errorf("fetch game log for %s: %w", pl.FullName, err)
			}
			out[i] = PlayerComparison{
				PlayerID:    pl.ID,
				Name:        pl.FullName,
				GamesPlayed: len(games),
				Averages:    gamelog.SeasonAverages(games),
			}
			return nil
		})
	}
	if err = p.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PlayerStatsService) loadedGameLog() ([]gamelog.Game, string, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasGameLog {
		return nil, "", "", fmt.Errorf("%w: fetch a game log first", ErrNoData)
	}
	if len(s.gameLog) == 0 {
		return nil, "", "", fmt.Errorf("%w: %s has no games in %s", ErrNoData, s.logName, s.logSeason)
	}
	return s.gameLog, s.logName, s.logSeason, nil
}

func performanceSeries(games []gamelog.Game, columns []string) []chart.LineSeries {
	out := make([]chart.LineSeries, 0, len(columns))
	for _, col := range columns {
		col = strings.ToUpper(strings.TrimSpace(col))
		values, ok := gamelog.Series(games, col)
		if !ok {
			continue
		}
		out = append(out, chart.LineSeries{Name: col, Values: values})
	}
	return out
}
