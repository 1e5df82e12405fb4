package usecase

import (
	"cmp"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/hoopstats/internal/domain/court"
	"github.com/riskibarqy/hoopstats/internal/domain/shot"
	"github.com/riskibarqy/hoopstats/internal/platform/chart"
	"github.com/riskibarqy/hoopstats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// ShotChartRequest selects whose shots to plot. Title and FileName are
// derived from the player and season when empty.
type ShotChartRequest struct {
	Player     string
	Season     string
	SeasonType string
	Title      string
	FileName   string
}

type shotSelection struct {
	playerID   int64
	playerName string
	season     string
	seasonType string
}

// ShotChartService fetches a player's shot locations and keeps the last
// result for statistics and plotting.
type ShotChartService struct {
	directory *DirectoryService
	provider  StatsProvider
	figures   FigureWriter
	logger    *logging.Logger

	mu        sync.RWMutex
	shots     []shot.Shot
	selection *shotSelection
}

func NewShotChartService(directory *DirectoryService, provider StatsProvider, figures FigureWriter, logger *logging.Logger) *ShotChartService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ShotChartService{
		directory: directory,
		provider:  provider,
		figures:   figures,
		logger:    logger,
	}
}

// FetchShotData loads every field goal attempt of player for the season and
// replaces the previously loaded shots.
func (s *ShotChartService) FetchShotData(ctx context.Context, playerName, season, seasonType string) ([]shot.Shot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShotChartService.FetchShotData",
		attribute.String("season", season),
		attribute.String("season_type", seasonType),
	)
	var err error
	defer func() { endSpan(span, err) }()

	if err = validateInput(ctx, seasonQuery{Season: season, SeasonType: seasonType}); err != nil {
		return nil, err
	}

	p, err := s.directory.resolvePlayer(ctx, playerName)
	if err != nil {
		return nil, err
	}

	shots, err := s.provider.ShotChart(ctx, ShotChartQuery{
		PlayerID:       p.ID,
		Season:         season,
		SeasonType:     seasonType,
		ContextMeasure: ContextMeasureFGA,
	})
	if err != nil {
		err = fmt.Errorf("fetch shot chart: %w", err)
		return nil, err
	}

	s.mu.Lock()
	s.shots = shots
	s.selection = &shotSelection{
		playerID:   p.ID,
		playerName: p.FullName,
		season:     season,
		seasonType: seasonType,
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "shot data loaded", "player_id", p.ID, "season", season, "shots", len(shots))
	return cloneShots(shots), nil
}

// Statistics summarises the loaded shots.
func (s *ShotChartService) Statistics() (shot.Summary, error) {
	shots, err := s.loaded()
	if err != nil {
		return shot.Summary{}, err
	}
	return shot.Summarize(shots), nil
}

// ZoneBreakdown splits the loaded shots by court zone.
func (s *ShotChartService) ZoneBreakdown() ([]shot.ZoneLine, error) {
	shots, err := s.loaded()
	if err != nil {
		return nil, err
	}
	return shot.ByZone(shots), nil
}

// Court returns the half-court markings the shots are drawn over.
func (s *ShotChartService) Court(outerLines bool) []court.Shape {
	return court.Lines(outerLines)
}

// PlotShotChart draws the loaded shots over the court. Shots are fetched
// first when nothing is loaded or the loaded shots belong to another
// player or season.
func (s *ShotChartService) PlotShotChart(ctx context.Context, req ShotChartRequest) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShotChartService.PlotShotChart")
	var err error
	defer func() { endSpan(span, err) }()

	if err = s.ensureLoaded(ctx, req); err != nil {
		return "", err
	}

	s.mu.RLock()
	shots := s.shots
	sel := *s.selection
	s.mu.RUnlock()

	if len(shots) == 0 {
		err = fmt.Errorf("%w: %s has no shots in %s %s", ErrNoData, sel.playerName, sel.season, sel.seasonType)
		return "", err
	}

	summary := shot.Summarize(shots)
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = fmt.Sprintf("%s Shot Chart | %s %s | FG%%: %.1f%%", sel.playerName, sel.season, sel.seasonType, summary.FGPct)
	}
	name := strings.TrimSpace(req.FileName)
	if name == "" {
		name = fmt.Sprintf("%s shot chart %s", sel.playerName, sel.season)
	}

	path, err := s.figures.Write(ctx, name, shotFigure(title, shots, court.Lines(true)))
	if err != nil {
		err = fmt.Errorf("write shot chart: %w", err)
		return "", err
	}
	return path, nil
}

func (s *ShotChartService) ensureLoaded(ctx context.Context, req ShotChartRequest) error {
	s.mu.RLock()
	sel := s.selection
	s.mu.RUnlock()

	if sel == nil {
		if strings.TrimSpace(req.Player) == "" {
			return fmt.Errorf("%w: no shot data loaded and no player given", ErrNoData)
		}
		_, err := s.FetchShotData(ctx, req.Player, req.Season, req.SeasonType)
		return err
	}
	if matchesSelection(*sel, req) {
		return nil
	}

	// Fields left empty keep the loaded selection.
	_, err := s.FetchShotData(ctx,
		cmp.Or(strings.TrimSpace(req.Player), sel.playerName),
		cmp.Or(req.Season, sel.season),
		cmp.Or(req.SeasonType, sel.seasonType),
	)
	return err
}

// matchesSelection treats empty request fields as "whatever is loaded".
func matchesSelection(sel shotSelection, req ShotChartRequest) bool {
	if req.Player != "" && !strings.EqualFold(strings.TrimSpace(req.Player), sel.playerName) {
		return false
	}
	if req.Season != "" && req.Season != sel.season {
		return false
	}
	if req.SeasonType != "" && req.SeasonType != sel.seasonType {
		return false
	}
	return true
}

func (s *ShotChartService) loaded() ([]shot.Shot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selection == nil {
		return nil, fmt.Errorf("%w: fetch shot data first", ErrNoData)
	}
	if len(s.shots) == 0 {
		return nil, fmt.Errorf("%w: no shots for %s", ErrNoData, s.selection.playerName)
	}
	return s.shots, nil
}

func shotFigure(title string, shots []shot.Shot, lines []court.Shape) chart.ShotChart {
	fig := chart.ShotChart{
		Title:  title,
		XRange: chart.Range{Min: court.MinX, Max: court.MaxX},
		YRange: chart.Range{Min: court.MinY, Max: court.MaxY},
		Width:  1000,
		Height: 940,
	}
	for _, shape := range lines {
		pl := chart.Polyline{Dashed: shape.Dashed}
		for _, p := range shape.Points {
			pl.X = append(pl.X, p.X)
			pl.Y = append(pl.Y, p.Y)
		}
		fig.Outline = append(fig.Outline, pl)
	}

	made, missed := shot.Partition(shots)
	for _, sh := range made {
		fig.MadeX = append(fig.MadeX, sh.LocX)
		fig.MadeY = append(fig.MadeY, sh.LocY)
	}
	for _, sh := range missed {
		fig.MissedX = append(fig.MissedX, sh.LocX)
		fig.MissedY = append(fig.MissedY, sh.LocY)
	}
	return fig
}

func cloneShots(in []shot.Shot) []shot.Shot {
	if in == nil {
		return nil
	}
	out := make([]shot.Shot, len(in))
	copy(out, in)
	return out
}
