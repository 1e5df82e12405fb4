package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/hoopstats/internal/domain/court"
	"github.com/riskibarqy/hoopstats/internal/domain/shot"
	"github.com/riskibarqy/hoopstats/internal/platform/chart"
	"github.com/stretchr/testify/mock"
)

func sampleShots() []shot.Shot {
	return []shot.Shot{
		{GameID: "0022300001", LocX: 0, LocY: 10, ShotType: shot.TypeTwoPoint, ZoneBasic: shot.ZoneRestrictedArea, Attempted: true, Made: true},
		{GameID: "0022300001", LocX: -225, LocY: 20, ShotType: shot.TypeThreePoint, ZoneBasic: shot.ZoneLeftCorner3, Attempted: true, Made: false},
		{GameID: "0022300001", LocX: 30, LocY: 250, ShotType: shot.TypeThreePoint, ZoneBasic: shot.ZoneAboveBreak3, Attempted: true, Made: true},
		{GameID: "0022300002", LocX: 100, LocY: 100, ShotType: shot.TypeTwoPoint, ZoneBasic: shot.ZoneMidRange, Attempted: true, Made: false},
	}
}

func lebronShotQuery() ShotChartQuery {
	return ShotChartQuery{
		PlayerID:       testPlayerLeBron,
		Season:         "2023-24",
		SeasonType:     SeasonTypeRegular,
		ContextMeasure: ContextMeasureFGA,
	}
}

func TestShotChartService_FetchAndSummarize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := newStatsProviderMock(t)
	provider.On("ShotChart", mock.Anything, lebronShotQuery()).Return(sampleShots(), nil).Once()

	service := NewShotChartService(newTestDirectory(t), provider, &figureRecorder{}, nil)
	shots, err := service.FetchShotData(ctx, "LeBron James", "2023-24", SeasonTypeRegular)
	if err != nil {
		t.Fatalf("fetch shot data: %v", err)
	}
	if len(shots) != 4 {
		t.Fatalf("unexpected shot count: %d", len(shots))
	}

	stats, err := service.Statistics()
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalShots != 4 || stats.Made != 2 || stats.Missed != 2 || stats.FGPct != 50 {
		t.Fatalf("unexpected summary: %+v", stats)
	}
	if stats.ThreePoint == nil || stats.ThreePoint.Attempts != 2 || stats.ThreePoint.Made != 1 {
		t.Fatalf("unexpected three point split: %+v", stats.ThreePoint)
	}

	zones, err := service.ZoneBreakdown()
	if err != nil {
		t.Fatalf("zone breakdown: %v", err)
	}
	if len(zones) != 4 || zones[0].Zone != shot.ZoneRestrictedArea || zones[0].Pct != 100 {
		t.Fatalf("unexpected zones: %+v", zones)
	}
}

func TestShotChartService_UnknownPlayer(t *testing.T) {
	t.Parallel()

	service := NewShotChartService(newTestDirectory(t), newStatsProviderMock(t), &figureRecorder{}, nil)
	_, err := service.FetchShotData(context.Background(), "Kobe Bryant", "2023-24", SeasonTypeRegular)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShotChartService_RejectsBadSeason(t *testing.T) {
	t.Parallel()

	service := NewShotChartService(newTestDirectory(t), newStatsProviderMock(t), &figureRecorder{}, nil)
	_, err := service.FetchShotData(context.Background(), "LeBron James", "2023-2024", SeasonTypeRegular)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestShotChartService_GettersNeedData(t *testing.T) {
	t.Parallel()

	service := NewShotChartService(newTestDirectory(t), newStatsProviderMock(t), &figureRecorder{}, nil)
	if _, err := service.Statistics(); !errors.Is(err, ErrNoData) {
		t.Fatalf("statistics: expected ErrNoData, got %v", err)
	}
	if _, err := service.ZoneBreakdown(); !errors.Is(err, ErrNoData) {
		t.Fatalf("zones: expected ErrNoData, got %v", err)
	}
	if _, err := service.PlotShotChart(context.Background(), ShotChartRequest{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("plot: expected ErrNoData, got %v", err)
	}
}

func TestShotChartService_EmptyFetchIsNoData(t *testing.T) {
	t.Parallel()

	provider := newStatsProviderMock(t)
	provider.On("ShotChart", mock.Anything, lebronShotQuery()).Return([]shot.Shot{}, nil).Once()

	service := NewShotChartService(newTestDirectory(t), provider, &figureRecorder{}, nil)
	if _, err := service.FetchShotData(context.Background(), "LeBron James", "2023-24", SeasonTypeRegular); err != nil {
		t.Fatalf("fetch shot data: %v", err)
	}
	if _, err := service.Statistics(); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestShotChartService_PlotFetchesWhenNothingLoaded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := newStatsProviderMock(t)
	provider.On("ShotChart", mock.Anything, lebronShotQuery()).Return(sampleShots(), nil).Once()
	figures := &figureRecorder{}

	service := NewShotChartService(newTestDirectory(t), provider, figures, nil)
	path, err := service.PlotShotChart(ctx, ShotChartRequest{
		Player:     "LeBron James",
		Season:     "2023-24",
		SeasonType: SeasonTypeRegular,
	})
	if err != nil {
		t.Fatalf("plot shot chart: %v", err)
	}
	if path != "LeBron_James_shot_chart_2023-24.png" {
		t.Fatalf("unexpected path: %s", path)
	}

	written := figures.last(t)
	fig, ok := written.fig.(chart.ShotChart)
	if !ok {
		t.Fatalf("expected shot chart figure, got %T", written.fig)
	}
	if want := "LeBron James Shot Chart | 2023-24 Regular Season | FG%: 50.0%"; fig.Title != want {
		t.Fatalf("unexpected title: %q", fig.Title)
	}
	if len(fig.MadeX) != 2 || len(fig.MissedX) != 2 {
		t.Fatalf("unexpected made/missed split: %d/%d", len(fig.MadeX), len(fig.MissedX))
	}
	if fig.XRange.Min != court.MinX || fig.XRange.Max != court.MaxX || fig.YRange.Min != court.MinY || fig.YRange.Max != court.MaxY {
		t.Fatalf("unexpected ranges: %+v %+v", fig.XRange, fig.YRange)
	}
	if len(fig.Outline) != len(court.Lines(true)) {
		t.Fatalf("court outline should include outer lines")
	}

	// Second plot for the same selection reuses the loaded shots.
	if _, err := service.PlotShotChart(ctx, ShotChartRequest{Title: "Custom"}); err != nil {
		t.Fatalf("second plot: %v", err)
	}
	if got := figures.last(t).fig.(chart.ShotChart).Title; got != "Custom" {
		t.Fatalf("expected custom title, got %q", got)
	}
}

func TestShotChartService_PlotPropagatesWriterError(t *testing.T) {
	t.Parallel()

	provider := newStatsProviderMock(t)
	provider.On("ShotChart", mock.Anything, lebronShotQuery()).Return(sampleShots(), nil).Once()
	figures := &figureRecorder{err: errors.New("disk full")}

	service := NewShotChartService(newTestDirectory(t), provider, figures, nil)
	_, err := service.PlotShotChart(context.Background(), ShotChartRequest{
		Player: "LeBron James", Season: "2023-24", SeasonType: SeasonTypeRegular,
	})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected writer error, got %v", err)
	}
}

func TestShotChartService_Court(t *testing.T) {
	t.Parallel()

	service := NewShotChartService(newTestDirectory(t), newStatsProviderMock(t), &figureRecorder{}, nil)
	if len(service.Court(true)) != len(service.Court(false))+1 {
		t.Fatalf("outer lines should add exactly one shape")
	}
}

func TestShotChartService_PlotRefetchesOnNewSelection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lastSeason := lebronShotQuery()
	lastSeason.Season = "2022-23"
	curry := lastSeason
	curry.PlayerID = testPlayerCurry

	provider := newStatsProviderMock(t)
	provider.On("ShotChart", mock.Anything, lebronShotQuery()).Return(sampleShots(), nil).Once()
	provider.On("ShotChart", mock.Anything, lastSeason).Return(sampleShots()[2:], nil).Once()
	provider.On("ShotChart", mock.Anything, curry).Return(sampleShots()[:1], nil).Once()
	figures := &figureRecorder{}

	service := NewShotChartService(newTestDirectory(t), provider, figures, nil)
	if _, err := service.FetchShotData(ctx, "LeBron James", "2023-24", SeasonTypeRegular); err != nil {
		t.Fatalf("fetch shot data: %v", err)
	}

	path, err := service.PlotShotChart(ctx, ShotChartRequest{Season: "2022-23"})
	if err != nil {
		t.Fatalf("plot other season: %v", err)
	}
	if path != "LeBron_James_shot_chart_2022-23.png" {
		t.Fatalf("unexpected path: %s", path)
	}
	if want := "LeBron James Shot Chart | 2022-23 Regular Season | FG%: 50.0%"; figures.last(t).fig.(chart.ShotChart).Title != want {
		t.Fatalf("unexpected title: %q", figures.last(t).fig.(chart.ShotChart).Title)
	}

	path, err = service.PlotShotChart(ctx, ShotChartRequest{Player: "Stephen Curry"})
	if err != nil {
		t.Fatalf("plot other player: %v", err)
	}
	if path != "Stephen_Curry_shot_chart_2022-23.png" {
		t.Fatalf("unexpected path: %s", path)
	}
	fig := figures.last(t).fig.(chart.ShotChart)
	if want := "Stephen Curry Shot Chart | 2022-23 Regular Season | FG%: 100.0%"; fig.Title != want {
		t.Fatalf("unexpected title: %q", fig.Title)
	}
	if len(fig.MadeX) != 1 || len(fig.MissedX) != 0 {
		t.Fatalf("chart should show the new player's shots: %d/%d", len(fig.MadeX), len(fig.MissedX))
	}

	stats, err := service.Statistics()
	if err != nil || stats.TotalShots != 1 {
		t.Fatalf("statistics should follow the new selection: %+v err=%v", stats, err)
	}
}
