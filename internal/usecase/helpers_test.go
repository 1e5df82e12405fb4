package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/hoopstats/internal/domain/career"
	"github.com/riskibarqy/hoopstats/internal/domain/game"
	"github.com/riskibarqy/hoopstats/internal/domain/gamelog"
	"github.com/riskibarqy/hoopstats/internal/domain/player"
	"github.com/riskibarqy/hoopstats/internal/domain/shot"
	"github.com/riskibarqy/hoopstats/internal/domain/standings"
	"github.com/riskibarqy/hoopstats/internal/domain/team"
	playermock "github.com/riskibarqy/hoopstats/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/hoopstats/internal/mocks/domain/team"
	"github.com/riskibarqy/hoopstats/internal/platform/chart"
	"github.com/stretchr/testify/mock"
)

const (
	testPlayerLeBron int64 = 2544
	testPlayerCurry  int64 = 201939
	testTeamLakers   int64 = 1610612747
	testTeamCeltics  int64 = 1610612738
)

type statsProviderMock struct {
	mock.Mock
}

func newStatsProviderMock(t *testing.T) *statsProviderMock {
	m := &statsProviderMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *statsProviderMock) PlayerInfo(ctx context.Context, playerID int64) (player.Info, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(player.Info), args.Error(1)
}

func (m *statsProviderMock) ShotChart(ctx context.Context, query ShotChartQuery) ([]shot.Shot, error) {
	args := m.Called(ctx, query)
	out, _ := args.Get(0).([]shot.Shot)
	return out, args.Error(1)
}

func (m *statsProviderMock) CareerStats(ctx context.Context, playerID int64, perMode string) ([]career.Season, error) {
	args := m.Called(ctx, playerID, perMode)
	out, _ := args.Get(0).([]career.Season)
	return out, args.Error(1)
}

func (m *statsProviderMock) PlayerGameLog(ctx context.Context, playerID int64, season, seasonType string) ([]gamelog.Game, error) {
	args := m.Called(ctx, playerID, season, seasonType)
	out, _ := args.Get(0).([]gamelog.Game)
	return out, args.Error(1)
}

func (m *statsProviderMock) TeamGameLog(ctx context.Context, teamID int64, season, seasonType string) ([]gamelog.Game, error) {
	args := m.Called(ctx, teamID, season, seasonType)
	out, _ := args.Get(0).([]gamelog.Game)
	return out, args.Error(1)
}

func (m *statsProviderMock) LeagueTeamStats(ctx context.Context, season, seasonType, perMode string) ([]standings.TeamLine, error) {
	args := m.Called(ctx, season, seasonType, perMode)
	out, _ := args.Get(0).([]standings.TeamLine)
	return out, args.Error(1)
}

func (m *statsProviderMock) FindGameIDs(ctx context.Context, date time.Time, seasonType string) ([]string, error) {
	args := m.Called(ctx, date, seasonType)
	out, _ := args.Get(0).([]string)
	return out, args.Error(1)
}

func (m *statsProviderMock) BoxScoreSummary(ctx context.Context, gameID string) (game.BoxScore, error) {
	args := m.Called(ctx, gameID)
	return args.Get(0).(game.BoxScore), args.Error(1)
}

type writtenFigure struct {
	name string
	fig  chart.Figure
}

// figureRecorder keeps figures in memory instead of rendering them.
type figureRecorder struct {
	mu      sync.Mutex
	written []writtenFigure
	err     error
}

func (r *figureRecorder) Write(_ context.Context, name string, fig chart.Figure) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	r.written = append(r.written, writtenFigure{name: name, fig: fig})
	return chart.FileName(name), nil
}

func (r *figureRecorder) last(t *testing.T) writtenFigure {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.written) == 0 {
		t.Fatalf("no figure written")
	}
	return r.written[len(r.written)-1]
}

func testPlayers() []player.Player {
	return []player.Player{
		{ID: testPlayerLeBron, FullName: "LeBron James", IsActive: true},
		{ID: testPlayerCurry, FullName: "Stephen Curry", IsActive: true},
	}
}

func testTeams() []team.Team {
	return []team.Team{
		{ID: testTeamCeltics, FullName: "Boston Celtics", Abbreviation: "BOS"},
		{ID: testTeamLakers, FullName: "Los Angeles Lakers", Abbreviation: "LAL"},
	}
}

// newTestDirectory backs a directory with mocks that may or may not be hit.
func newTestDirectory(t *testing.T) *DirectoryService {
	t.Helper()
	players := playermock.NewRepository(t)
	players.On("List", mock.Anything).Return(testPlayers(), nil).Maybe()
	teams := teammock.NewRepository(t)
	teams.On("List", mock.Anything).Return(testTeams(), nil).Maybe()
	return NewDirectoryService(players, teams)
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}
