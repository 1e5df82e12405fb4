package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/hoopstats/internal/domain/career"
	"github.com/riskibarqy/hoopstats/internal/domain/gamelog"
	"github.com/riskibarqy/hoopstats/internal/domain/standings"
	"github.com/riskibarqy/hoopstats/internal/domain/stat"
	"github.com/riskibarqy/hoopstats/internal/platform/chart"
	"github.com/stretchr/testify/mock"
)

func leagueLines() []standings.TeamLine {
	return []standings.TeamLine{
		{TeamID: testTeamLakers, TeamName: "Los Angeles Lakers", Stats: stat.Line{"PTS": 118, "REB": 44}},
		{TeamID: testTeamCeltics, TeamName: "Boston Celtics", Stats: stat.Line{"PTS": 120.6, "REB": 46.3}},
		{TeamID: 1610612743, TeamName: "Denver Nuggets", Stats: stat.Line{"PTS": 114.9}},
	}
}

// teamLog is newest first; oldest to newest the results read W W L W.
func teamLog() []gamelog.Game {
	return []gamelog.Game{
		{GameID: "4", Date: day(7), WL: gamelog.ResultWin, Stats: stat.Line{"PTS": 110, "FG_PCT": 0.5, "REB": 40, "AST": 25}},
		{GameID: "3", Date: day(5), WL: gamelog.ResultLoss, Stats: stat.Line{"PTS": 100, "FG_PCT": 0.25, "REB": 42, "AST": 20}},
		{GameID: "2", Date: day(3), WL: gamelog.ResultWin, Stats: stat.Line{"PTS": 120, "FG_PCT": 0.75, "REB": 46, "AST": 30}},
		{GameID: "1", Date: day(1), WL: gamelog.ResultWin, Stats: stat.Line{"PTS": 130, "FG_PCT": 0.5, "REB": 44, "AST": 29}},
	}
}

func newLoadedTeamService(t *testing.T, figures *figureRecorder) *TeamStatsService {
	t.Helper()
	provider := newStatsProviderMock(t)
	provider.On("LeagueTeamStats", mock.Anything, "2023-24", SeasonTypeRegular, career.PerModePerGame).
		Return(leagueLines(), nil).
		Maybe()
	provider.On("TeamGameLog", mock.Anything, testTeamLakers, "2023-24", SeasonTypeRegular).
		Return(teamLog(), nil).
		Maybe()
	return NewTeamStatsService(newTestDirectory(t), provider, figures, nil)
}

func TestTeamStatsService_LeagueLeaders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	figures := &figureRecorder{}
	service := newLoadedTeamService(t, figures)

	if _, err := service.PlotLeagueLeaders(ctx, "PTS", 2); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData before fetch, got %v", err)
	}
	if _, err := service.FetchLeagueStandings(ctx, "2023-24", SeasonTypeRegular); err != nil {
		t.Fatalf("fetch standings: %v", err)
	}

	if _, err := service.PlotLeagueLeaders(ctx, "pts", 2); err != nil {
		t.Fatalf("plot league leaders: %v", err)
	}
	bars := figures.last(t).fig.(chart.BarChart)
	if len(bars.Bars) != 2 || bars.Bars[0].Label != "Boston Celtics" || bars.Bars[1].Label != "Los Angeles Lakers" {
		t.Fatalf("unexpected leaders: %+v", bars.Bars)
	}
	if bars.Title != "Top 2 Teams by PTS" {
		t.Fatalf("unexpected title: %q", bars.Title)
	}

	if _, err := service.PlotLeagueLeaders(ctx, "PTS", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for topN=0, got %v", err)
	}
}

func TestTeamStatsService_GameLogSummaryAndRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	figures := &figureRecorder{}
	service := newLoadedTeamService(t, figures)

	if _, err := service.TeamSummary(); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData before fetch, got %v", err)
	}
	if _, err := service.FetchTeamGameLog(ctx, "LAL", "2023-24", SeasonTypeRegular); err != nil {
		t.Fatalf("fetch team game log: %v", err)
	}

	summary, err := service.TeamSummary()
	if err != nil {
		t.Fatalf("team summary: %v", err)
	}
	if summary.GamesPlayed != 4 || summary.Wins != 3 || summary.Losses != 1 || summary.WinPercentage != 75 {
		t.Fatalf("unexpected record: %+v", summary)
	}
	if summary.PPG != 115 || summary.OppPPG != 0 || summary.FGPct != 50 {
		t.Fatalf("unexpected averages: %+v", summary)
	}

	record, err := service.WinLossRecord()
	if err != nil {
		t.Fatalf("win loss record: %v", err)
	}
	last := record[len(record)-1]
	if last.GameNumber != 4 || last.Wins != 3 || last.Losses != 1 {
		t.Fatalf("unexpected final record: %+v", last)
	}
	if record[2].Losses != 1 || record[1].Losses != 0 {
		t.Fatalf("loss should land on the third game: %+v", record)
	}

	if _, err := service.PlotWinLossRecord(ctx); err != nil {
		t.Fatalf("plot win loss: %v", err)
	}
	lines := figures.last(t).fig.(chart.LineChart)
	if len(lines.Series) != 2 || lines.Series[0].Name != "Wins" || lines.Series[0].Values[3] != 3 {
		t.Fatalf("unexpected win loss series: %+v", lines.Series)
	}

	if _, err := service.PlotTeamPerformance(ctx, nil); err != nil {
		t.Fatalf("plot team performance: %v", err)
	}
	perf := figures.last(t).fig.(chart.LineChart)
	if len(perf.Series) != 3 {
		t.Fatalf("default stats should all be present: %+v", perf.Series)
	}
}

func TestTeamStatsService_FetchTeamGameLogUnknownTeam(t *testing.T) {
	t.Parallel()

	service := newLoadedTeamService(t, &figureRecorder{})
	_, err := service.FetchTeamGameLog(context.Background(), "Seattle SuperSonics", "2023-24", SeasonTypeRegular)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamStatsService_CompareTeams(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	figures := &figureRecorder{}
	service := newLoadedTeamService(t, figures)

	if _, err := service.CompareTeams(ctx, []string{"Boston Celtics"}, nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData before fetch, got %v", err)
	}
	if _, err := service.FetchLeagueStandings(ctx, "2023-24", SeasonTypeRegular); err != nil {
		t.Fatalf("fetch standings: %v", err)
	}

	if _, err := service.CompareTeams(ctx, []string{"Denver Nuggets", "Boston Celtics", "Seattle SuperSonics"}, []string{"pts", "REB"}); err != nil {
		t.Fatalf("compare teams: %v", err)
	}
	fig := figures.last(t).fig.(chart.GroupedBarChart)
	if len(fig.Groups) != 2 || fig.Groups[0] != "PTS" {
		t.Fatalf("unexpected groups: %v", fig.Groups)
	}
	if len(fig.Series) != 2 || fig.Series[0].Name != "Denver Nuggets" {
		t.Fatalf("unexpected series: %+v", fig.Series)
	}
	if fig.Series[0].Values[1] != 0 || fig.Series[1].Values[1] != 46.3 {
		t.Fatalf("unexpected REB values: %+v", fig.Series)
	}

	if _, err := service.CompareTeams(ctx, []string{"BOS", "lal"}, []string{"PTS"}); err != nil {
		t.Fatalf("compare teams by abbreviation: %v", err)
	}
	byAbbr := figures.last(t).fig.(chart.GroupedBarChart)
	if len(byAbbr.Series) != 2 || byAbbr.Series[0].Name != "Boston Celtics" || byAbbr.Series[1].Name != "Los Angeles Lakers" {
		t.Fatalf("abbreviations should resolve through the directory: %+v", byAbbr.Series)
	}
	if byAbbr.Series[1].Values[0] != 118 {
		t.Fatalf("unexpected Lakers PTS: %+v", byAbbr.Series[1])
	}

	if _, err := service.CompareTeams(ctx, []string{"Seattle SuperSonics"}, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
