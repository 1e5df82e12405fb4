package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/hoopstats/internal/domain/game"
	"github.com/riskibarqy/hoopstats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// BoxScoreFailure records a game whose summary could not be fetched.
type BoxScoreFailure struct {
	GameID string `json:"game_id"`
	Err    error  `json:"-"`
}

func (f BoxScoreFailure) Error() string {
	return fmt.Sprintf("game %s: %v", f.GameID, f.Err)
}

// BoxScoreBatch holds the summaries that were fetched, in request order,
// and the games that failed.
type BoxScoreBatch struct {
	Scores   []game.BoxScore   `json:"scores"`
	Failures []BoxScoreFailure `json:"failures"`
}

// GameFinderService lists the games played on a date and persists the
// identifiers for later commands.
type GameFinderService struct {
	provider    StatsProvider
	store       game.Repository
	logger      *logging.Logger
	workerCount int
	now         func() time.Time
}

func NewGameFinderService(provider StatsProvider, store game.Repository, logger *logging.Logger, workerCount int) *GameFinderService {
	if logger == nil {
		logger = logging.Default()
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	return &GameFinderService{
		provider:    provider,
		store:       store,
		logger:      logger,
		workerCount: workerCount,
		now:         time.Now,
	}
}

// FindGames returns the regular-season games played on date.
func (s *GameFinderService) FindGames(ctx context.Context, date time.Time) (game.Slate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameFinderService.FindGames",
		attribute.String("date", date.Format(time.DateOnly)),
	)
	var err error
	defer func() { endSpan(span, err) }()

	if date.IsZero() {
		err = fmt.Errorf("%w: date is required", ErrInvalidInput)
		return game.Slate{}, err
	}

	ids, err := s.provider.FindGameIDs(ctx, date, SeasonTypeRegular)
	if err != nil {
		err = fmt.Errorf("find games: %w", err)
		return game.Slate{}, err
	}

	return game.Slate{Date: date, GameIDs: game.UniqueIDs(ids)}, nil
}

// WriteYesterdaysGames finds the games played the day before today and
// saves their identifiers. An empty slate is returned, and nothing is
// written, when no games were played.
func (s *GameFinderService) WriteYesterdaysGames(ctx context.Context) (game.Slate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameFinderService.WriteYesterdaysGames")
	var err error
	defer func() { endSpan(span, err) }()

	date := game.Yesterday(s.now())
	slate, err := s.FindGames(ctx, date)
	if err != nil {
		return game.Slate{}, err
	}
	if slate.Empty() {
		s.logger.InfoContext(ctx, "no games found", "date", date.Format(time.DateOnly))
		return slate, nil
	}

	if err = s.store.Save(ctx, slate); err != nil {
		err = fmt.Errorf("save game ids: %w", err)
		return game.Slate{}, err
	}

	s.logger.InfoContext(ctx, "game ids saved", "date", date.Format(time.DateOnly), "games", len(slate.GameIDs))
	return slate, nil
}

// ReadGameIDs returns the identifiers saved by the last write. A store that
// was never written reports ErrNotFound.
func (s *GameFinderService) ReadGameIDs(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameFinderService.ReadGameIDs")
	var err error
	defer func() { endSpan(span, err) }()

	slate, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, game.ErrSlateNotFound) {
			err = fmt.Errorf("%w: no saved game ids", ErrNotFound)
			return nil, err
		}
		err = fmt.Errorf("load game ids: %w", err)
		return nil, err
	}
	return game.UniqueIDs(slate.GameIDs), nil
}

// FetchBoxScores fetches the summary of every game concurrently. A failing
// game is logged and reported in the batch without stopping the others.
func (s *GameFinderService) FetchBoxScores(ctx context.Context, gameIDs []string) (BoxScoreBatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameFinderService.FetchBoxScores",
		attribute.Int("games", len(gameIDs)),
	)
	var err error
	defer func() { endSpan(span, err) }()

	ids := game.UniqueIDs(gameIDs)
	if len(ids) == 0 {
		return BoxScoreBatch{}, nil
	}

	pool, err := ants.NewPool(min(s.workerCount, len(ids)))
	if err != nil {
		err = fmt.Errorf("create worker pool: %w", err)
		return BoxScoreBatch{}, err
	}
	defer pool.Release()

	scores := make([]*game.BoxScore, len(ids))
	failures := make([]error, len(ids))

	var workers sync.WaitGroup
	for i, id := range ids {
		workers.Add(1)
		if err = pool.Submit(func() {
			defer workers.Done()

			score, fetchErr := s.provider.BoxScoreSummary(ctx, id)
			if fetchErr != nil {
				failures[i] = fetchErr
				s.logger.WarnContext(ctx, "fetch box score failed", "game_id", id, "error", fetchErr)
				return
			}
			scores[i] = &score
		}); err != nil {
			workers.Done()
			workers.Wait()
			err = fmt.Errorf("submit box score task: %w", err)
			return BoxScoreBatch{}, err
		}
	}
	workers.Wait()

	var batch BoxScoreBatch
	for i, id := range ids {
		if failures[i] != nil {
			batch.Failures = append(batch.Failures, BoxScoreFailure{GameID: id, Err: failures[i]})
			continue
		}
		if scores[i] != nil {
			batch.Scores = append(batch.Scores, *scores[i])
		}
	}
	return batch, nil
}
