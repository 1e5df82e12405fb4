// Package app wires configuration, adapters and use cases for one CLI run.
package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoopstats/external/nbastats"
	"github.com/riskibarqy/hoopstats/internal/config"
	"github.com/riskibarqy/hoopstats/internal/domain/game"
	"github.com/riskibarqy/hoopstats/internal/domain/player"
	"github.com/riskibarqy/hoopstats/internal/domain/team"
	"github.com/riskibarqy/hoopstats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/hoopstats/internal/infrastructure/repository/file"
	"github.com/riskibarqy/hoopstats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hoopstats/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/hoopstats/internal/platform/cache"
	"github.com/riskibarqy/hoopstats/internal/platform/chart"
	"github.com/riskibarqy/hoopstats/internal/platform/logging"
	"github.com/riskibarqy/hoopstats/internal/platform/metrics"
	"github.com/riskibarqy/hoopstats/internal/platform/resilience"
	"github.com/riskibarqy/hoopstats/internal/usecase"
)

// App holds the services a command runs against.
type App struct {
	Config  config.Config
	Logger  *logging.Logger
	Metrics *metrics.Recorder

	Directory  *usecase.DirectoryService
	ShotCharts *usecase.ShotChartService
	Players    *usecase.PlayerStatsService
	Teams      *usecase.TeamStatsService
	Games      *usecase.GameFinderService

	db *sqlx.DB
}

// Dependencies overrides adapters, mostly for tests. Nil fields are built
// from the config.
type Dependencies struct {
	HTTPClient *http.Client
	Players    player.Repository
	Teams      team.Repository
	GameStore  game.Repository
	Provider   usecase.StatsProvider
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	return NewWithDependencies(ctx, cfg, logger, Dependencies{})
}

func NewWithDependencies(ctx context.Context, cfg config.Config, logger *logging.Logger, deps Dependencies) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	recorder := metrics.NewRecorder()
	a := &App{Config: cfg, Logger: logger, Metrics: recorder}

	provider := deps.Provider
	playerRepo := deps.Players
	if provider == nil || playerRepo == nil {
		client := nbastats.NewClient(nbastats.ClientConfig{
			HTTPClient:        deps.HTTPClient,
			BaseURL:           cfg.NBAStatsBaseURL,
			UserAgent:         cfg.NBAStatsUserAgent,
			Timeout:           cfg.NBAStatsTimeout,
			MaxRetries:        cfg.NBAStatsMaxRetries,
			RetryBackoff:      cfg.NBAStatsRetryBackoff,
			RequestsPerSecond: cfg.NBAStatsRateLimit,
			Logger:            logger,
			Metrics:           recorder,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.NBAStatsCircuitEnabled,
				FailureThreshold: cfg.NBAStatsCircuitFailureCount,
				OpenTimeout:      cfg.NBAStatsCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.NBAStatsCircuitHalfOpenMaxReq,
			},
		})
		if provider == nil {
			provider = client
		}
		if playerRepo == nil {
			index := nbastats.NewPlayerIndex(client, cfg.DefaultSeason).
				WithFallback(memory.NewPlayerRepository(memory.SeedPlayers()))
			playerRepo = cache.NewPlayerRepository(index, basecache.NewStore[[]player.Player](cfg.PlayerIndexTTL))
		}
	}

	teamRepo := deps.Teams
	if teamRepo == nil {
		teamRepo = cache.NewTeamRepository(memory.NewTeamRepository(memory.SeedTeams()), basecache.NewStore[any](cfg.PlayerIndexTTL))
	}

	store := deps.GameStore
	if store == nil {
		var err error
		store, err = a.gameStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	figures := chart.NewWriter(chart.WriterConfig{
		Dir:     cfg.ChartDir,
		Logger:  logger,
		Metrics: recorder,
	})

	a.Directory = usecase.NewDirectoryService(playerRepo, teamRepo)
	a.ShotCharts = usecase.NewShotChartService(a.Directory, provider, figures, logger)
	a.Players = usecase.NewPlayerStatsService(a.Directory, provider, figures, logger, cfg.WorkerCount)
	a.Teams = usecase.NewTeamStatsService(a.Directory, provider, figures, logger)
	a.Games = usecase.NewGameFinderService(provider, store, logger, cfg.WorkerCount)

	return a, nil
}

func (a *App) gameStore(ctx context.Context, cfg config.Config) (game.Repository, error) {
	switch cfg.GameIDStore {
	case config.GameIDStorePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.db = db
		a.Logger.Debug("game id store", "kind", cfg.GameIDStore, "db", dbNameFromURL(cfg.DBURL))
		return postgres.NewGameSlateRepository(db), nil
	case config.GameIDStoreFile, "":
		a.Logger.Debug("game id store", "kind", config.GameIDStoreFile, "path", cfg.GameIDFile)
		return file.NewGameRepository(cfg.GameIDFile), nil
	default:
		return nil, fmt.Errorf("unsupported game id store %q", cfg.GameIDStore)
	}
}

// Close releases the database handle and dumps the run's metrics when a
// metrics file is configured.
func (a *App) Close() error {
	var errs []error
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, crerr.Wrap(err, "close postgres"))
		}
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		errs = append(errs, crerr.Wrap(err, "write metrics file"))
	}
	return stderrors.Join(errs...)
}
