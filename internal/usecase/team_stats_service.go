package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/hoopstats/internal/domain/career"
	"github.com/riskibarqy/hoopstats/internal/domain/gamelog"
	"github.com/riskibarqy/hoopstats/internal/domain/standings"
	"github.com/riskibarqy/hoopstats/internal/platform/chart"
	"github.com/riskibarqy/hoopstats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultCompareStats are compared when no stat is requested.
var DefaultCompareStats = []string{"PTS", "REB", "AST"}

// TeamStatsService fetches league and team tables and keeps the latest of
// each for plotting and aggregation.
type TeamStatsService struct {
	directory *DirectoryService
	provider  StatsProvider
	figures   FigureWriter
	logger    *logging.Logger

	mu           sync.RWMutex
	standings    []standings.TeamLine
	standSeason  string
	hasStandings bool
	gameLog      []gamelog.Game
	logTeam      string
	logSeason    string
	hasGameLog   bool
}

func NewTeamStatsService(directory *DirectoryService, provider StatsProvider, figures FigureWriter, logger *logging.Logger) *TeamStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamStatsService{
		directory: directory,
		provider:  provider,
		figures:   figures,
		logger:    logger,
	}
}

// FetchLeagueStandings loads per-game team stats for every team.
func (s *TeamStatsService) FetchLeagueStandings(ctx context.Context, season, seasonType string) ([]standings.TeamLine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.FetchLeagueStandings",
		attribute.String("season", season),
		attribute.String("season_type", seasonType),
	)
	var err error
	defer func() { endSpan(span, err) }()

	if err = validateInput(ctx, seasonQuery{Season: season, SeasonType: seasonType}); err != nil {
		return nil, err
	}

	lines, err := s.provider.LeagueTeamStats(ctx, season, seasonType, career.PerModePerGame)
	if err != nil {
		err = fmt.Errorf("fetch league team stats: %w", err)
		return nil, err
	}

	s.mu.Lock()
	s.standings = lines
	s.standSeason = season
	s.hasStandings = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "league standings loaded", "season", season, "teams", len(lines))
	return lines, nil
}

func (s *TeamStatsService) FetchTeamGameLog(ctx context.Context, name, season, seasonType string) ([]gamelog.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.FetchTeamGameLog",
		attribute.String("season", season),
		attribute.String("season_type", seasonType),
	)
	var err error
	defer func() { endSpan(span, err) }()

	if err = validateInput(ctx, seasonQuery{Season: season, SeasonType: seasonType}); err != nil {
		return nil, err
	}

	t, err := s.directory.resolveTeam(ctx, name)
	if err != nil {
		return nil, err
	}

	games, err := s.provider.TeamGameLog(ctx, t.ID, season, seasonType)
	if err != nil {
		err = fmt.Errorf("fetch team game log: %w", err)
		return nil, err
	}

	s.mu.Lock()
	s.gameLog = games
	s.logTeam = t.FullName
	s.logSeason = season
	s.hasGameLog = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "team game log loaded", "team_id", t.ID, "season", season, "games", len(games))
	return games, nil
}

// LeagueLeaders returns the topN teams by column, highest first.
func (s *TeamStatsService) LeagueLeaders(ctx context.Context, column string, topN int) ([]standings.TeamLine, error) {
	column = strings.ToUpper(strings.TrimSpace(column))
	if err := validateInput(ctx, leadersQuery{Stat: column, TopN: topN}); err != nil {
		return nil, err
	}

	lines, _, err := s.loadedStandings()
	if err != nil {
		return nil, err
	}
	top := standings.TopN(lines, column, topN)
	if len(top) == 0 {
		return nil, fmt.Errorf("%w: standings have no %s column", ErrInvalidInput, column)
	}
	return top, nil
}

// PlotLeagueLeaders draws the topN teams by column.
func (s *TeamStatsService) PlotLeagueLeaders(ctx context.Context, column string, topN int) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.PlotLeagueLeaders")
	var err error
	defer func() { endSpan(span, err) }()

	top, err := s.LeagueLeaders(ctx, column, topN)
	if err != nil {
		return "", err
	}
	column = strings.ToUpper(strings.TrimSpace(column))

	bars := make([]chart.Bar, 0, len(top))
	for _, line := range top {
		v, _ := line.Stats.Get(column)
		bars = append(bars, chart.Bar{Label: line.TeamName, Value: v})
	}

	path, err := s.figures.Write(ctx, fmt.Sprintf("top %d teams %s", len(top), column), chart.BarChart{
		Title:  fmt.Sprintf("Top %d Teams by %s", len(top), column),
		YLabel: column,
		Bars:   bars,
	})
	if err != nil {
		err = fmt.Errorf("write league leaders chart: %w", err)
		return "", err
	}
	return path, nil
}

// PlotTeamPerformance draws one line per requested column present in the
// loaded team game log, oldest game first.
func (s *TeamStatsService) PlotTeamPerformance(ctx context.Context, columns []string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.PlotTeamPerformance")
	var err error
	defer func() { endSpan(span, err) }()

	games, teamName, season, err := s.loadedGameLog()
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

	path, err := s.figures.Write(ctx, fmt.Sprintf("%s performance %s", teamName, season), chart.LineChart{
		Title:  fmt.Sprintf("%s Performance %s", teamName, season),
		XLabel: "Game",
		YLabel: "Value",
		Series: series,
	})
	if err != nil {
		err = fmt.Errorf("write team performance chart: %w", err)
		return "", err
	}
	return path, nil
}

// WinLossRecord is the running record of the loaded team game log.
func (s *TeamStatsService) WinLossRecord() ([]gamelog.RecordPoint, error) {
	games, _, _, err := s.loadedGameLog()
	if err != nil {
		return nil, err
	}
	return gamelog.CumulativeRecord(games), nil
}

// PlotWinLossRecord draws cumulative wins and losses game by game.
func (s *TeamStatsService) PlotWinLossRecord(ctx context.Context) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.PlotWinLossRecord")
	var err error
	defer func() { endSpan(span, err) }()

	games, teamName, season, err := s.loadedGameLog()
	if err != nil {
		return "", err
	}

	record := gamelog.CumulativeRecord(games)
	wins := make([]float64, len(record))
	losses := make([]float64, len(record))
	for i, p := range record {
		wins[i] = float64(p.Wins)
		losses[i] = float64(p.Losses)
	}

	path, err := s.figures.Write(ctx, fmt.Sprintf("%s win loss %s", teamName, season), chart.LineChart{
		Title:  fmt.Sprintf("%s Win-Loss Record %s", teamName, season),
		XLabel: "Game Number",
		YLabel: "Count",
		Series: []chart.LineSeries{
			{Name: "Wins", Values: wins},
			{Name: "Losses", Values: losses},
		},
	})
	if err != nil {
		err = fmt.Errorf("write win loss chart: %w", err)
		return "", err
	}
	return path, nil
}

// TeamSummary rolls the loaded team game log up.
func (s *TeamStatsService) TeamSummary() (gamelog.TeamSummary, error) {
	games, _, _, err := s.loadedGameLog()
	if err != nil {
		return gamelog.TeamSummary{}, err
	}
	return gamelog.SummarizeTeam(games), nil
}

// CompareTeams draws grouped bars of columns for the named teams, matched
// against the loaded standings by exact team name. Teams missing from the
// standings are skipped; columns missing for a team count as zero.
func (s *TeamStatsService) CompareTeams(ctx context.Context, names, columns []string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.CompareTeams",
		attribute.Int("teams", len(names)),
	)
	var err error
	defer func() { endSpan(span, err) }()

	if len(names) == 0 {
		err = fmt.Errorf("%w: at least one team is required", ErrInvalidInput)
		return "", err
	}
	lines, season, err := s.loadedStandings()
	if err != nil {
		return "", err
	}
	if len(columns) == 0 {
		columns = DefaultCompareStats
	}

	selected := make([]standings.TeamLine, 0, len(names))
	for _, name := range names {
		line, ok, lerr := s.standingsLine(ctx, lines, name)
		if lerr != nil {
			err = lerr
			return "", err
		}
		if ok {
			selected = append(selected, line)
		}
	}
	if len(selected) == 0 {
		err = fmt.Errorf("%w: none of %v are in the standings", ErrNotFound, names)
		return "", err
	}

	groups := make([]string, 0, len(columns))
	for _, col := range columns {
		groups = append(groups, strings.ToUpper(strings.TrimSpace(col)))
	}
	series := make([]chart.GroupSeries, 0, len(selected))
	for _, line := range selected {
		gs := chart.GroupSeries{Name: line.TeamName, Values: make([]float64, len(groups))}
		for i, col := range groups {
			gs.Values[i], _ = line.Stats.Get(col)
		}
		series = append(series, gs)
	}

	path, err := s.figures.Write(ctx, fmt.Sprintf("team comparison %s", season), chart.GroupedBarChart{
		Title:  fmt.Sprintf("Team Comparison %s", season),
		YLabel: "Value",
		Groups: groups,
		Series: series,
	})
	if err != nil {
		err = fmt.Errorf("write team comparison chart: %w", err)
		return "", err
	}
	return path, nil
}

// standingsLine looks name up by exact standings name first, then through
// the directory so abbreviations and nicknames resolve to a team ID.
func (s *TeamStatsService) standingsLine(ctx context.Context, lines []standings.TeamLine, name string) (standings.TeamLine, bool, error) {
	if found := standings.Select(lines, []string{name}); len(found) > 0 {
		return found[0], true, nil
	}
	t, ok, err := s.directory.FindTeam(ctx, name)
	if err != nil || !ok {
		return standings.TeamLine{}, false, err
	}
	line, ok := standings.ByTeamID(lines, t.ID)
	return line, ok, nil
}

func (s *TeamStatsService) loadedStandings() ([]standings.TeamLine, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasStandings || len(s.standings) == 0 {
		return nil, "", fmt.Errorf("%w: fetch league standings first", ErrNoData)
	}
	return s.standings, s.standSeason, nil
}

func (s *TeamStatsService) loadedGameLog() ([]gamelog.Game, string, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasGameLog {
		return nil, "", "", fmt.Errorf("%w: fetch a team game log first", ErrNoData)
	}
	if len(s.gameLog) == 0 {
		return nil, "", "", fmt.Errorf("%w: %s has no games in %s", ErrNoData, s.logTeam, s.logSeason)
	}
	return s.gameLog, s.logTeam, s.logSeason, nil
}
