package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoopstats/internal/platform/logging"
)

const (
	GameIDStoreFile     = "file"
	GameIDStorePostgres = "postgres"

	// LogFormatAuto picks console output on a terminal and JSON otherwise.
	LogFormatAuto = "auto"
)

// Config stores runtime configuration for the CLI.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	LogLevel                      logging.Level
	LogFormat                     string
	NBAStatsBaseURL               string
	NBAStatsTimeout               time.Duration
	NBAStatsMaxRetries            int
	NBAStatsRetryBackoff          time.Duration
	NBAStatsUserAgent             string
	NBAStatsRateLimit             float64
	NBAStatsCircuitEnabled        bool
	NBAStatsCircuitFailureCount   int
	NBAStatsCircuitOpenTimeout    time.Duration
	NBAStatsCircuitHalfOpenMaxReq int
	PlayerIndexTTL                time.Duration
	DefaultSeason                 string
	DefaultSeasonType             string
	WorkerCount                   int
	GameIDStore                   string
	GameIDFile                    string
	ChartDir                      string
	MetricsFile                   string
	DBURL                         string
	DBDisablePreparedBinary       bool
	UptraceEnabled                bool
	UptraceDSN                    string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	logFormat := strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_FORMAT", LogFormatAuto)))
	switch logFormat {
	case LogFormatAuto, logging.FormatJSON, logging.FormatConsole:
	default:
		return Config{}, fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s, %s", logFormat, LogFormatAuto, logging.FormatJSON, logging.FormatConsole)
	}

	statsTimeout, err := time.ParseDuration(getEnv("NBA_STATS_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_STATS_TIMEOUT: %w", err)
	}
	if statsTimeout <= 0 {
		return Config{}, fmt.Errorf("NBA_STATS_TIMEOUT must be > 0")
	}
	statsMaxRetries, err := getEnvAsInt("NBA_STATS_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_STATS_MAX_RETRIES: %w", err)
	}
	if statsMaxRetries < 0 {
		return Config{}, fmt.Errorf("NBA_STATS_MAX_RETRIES must be >= 0")
	}
	statsRetryBackoff, err := time.ParseDuration(getEnv("NBA_STATS_RETRY_BACKOFF", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_STATS_RETRY_BACKOFF: %w", err)
	}
	if statsRetryBackoff <= 0 {
		return Config{}, fmt.Errorf("NBA_STATS_RETRY_BACKOFF must be > 0")
	}

	statsRateLimit, err := strconv.ParseFloat(getEnv("NBA_STATS_RATE_LIMIT", "2"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_STATS_RATE_LIMIT: %w", err)
	}
	if statsRateLimit < 0 {
		return Config{}, fmt.Errorf("NBA_STATS_RATE_LIMIT must be >= 0")
	}

	statsCircuitEnabled, err := strconv.ParseBool(getEnv("NBA_STATS_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_STATS_CIRCUIT_ENABLED: %w", err)
	}
	statsCircuitFailureCount, err := getEnvAsInt("NBA_STATS_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_STATS_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if statsCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("NBA_STATS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	statsCircuitOpenTimeout, err := time.ParseDuration(getEnv("NBA_STATS_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_STATS_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if statsCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("NBA_STATS_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	statsCircuitHalfOpenMaxReq, err := getEnvAsInt("NBA_STATS_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse NBA_STATS_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if statsCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("NBA_STATS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	playerIndexTTL, err := time.ParseDuration(getEnv("PLAYER_INDEX_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PLAYER_INDEX_TTL: %w", err)
	}
	if playerIndexTTL <= 0 {
		return Config{}, fmt.Errorf("PLAYER_INDEX_TTL must be > 0")
	}

	workerCount, err := getEnvAsInt("WORKER_COUNT", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse WORKER_COUNT: %w", err)
	}
	if workerCount < 1 {
		return Config{}, fmt.Errorf("WORKER_COUNT must be >= 1")
	}

	gameIDStore := strings.ToLower(strings.TrimSpace(getEnv("GAME_ID_STORE", GameIDStoreFile)))
	if gameIDStore != GameIDStoreFile && gameIDStore != GameIDStorePostgres {
		return Config{}, fmt.Errorf("invalid GAME_ID_STORE %q: valid values are %s, %s", gameIDStore, GameIDStoreFile, GameIDStorePostgres)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if gameIDStore == GameIDStorePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when GAME_ID_STORE=%s", GameIDStorePostgres)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("APP_SERVICE_NAME", "hoopstats"),
		ServiceVersion:                getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                      logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:                     logFormat,
		NBAStatsBaseURL:               strings.TrimSpace(getEnv("NBA_STATS_BASE_URL", "https://stats.nba.com/stats")),
		NBAStatsTimeout:               statsTimeout,
		NBAStatsMaxRetries:            statsMaxRetries,
		NBAStatsRetryBackoff:          statsRetryBackoff,
		NBAStatsUserAgent:             strings.TrimSpace(getEnv("NBA_STATS_USER_AGENT", "")),
		NBAStatsRateLimit:             statsRateLimit,
		NBAStatsCircuitEnabled:        statsCircuitEnabled,
		NBAStatsCircuitFailureCount:   statsCircuitFailureCount,
		NBAStatsCircuitOpenTimeout:    statsCircuitOpenTimeout,
		NBAStatsCircuitHalfOpenMaxReq: statsCircuitHalfOpenMaxReq,
		PlayerIndexTTL:                playerIndexTTL,
		DefaultSeason:                 strings.TrimSpace(getEnv("DEFAULT_SEASON", "2023-24")),
		DefaultSeasonType:             strings.TrimSpace(getEnv("DEFAULT_SEASON_TYPE", "Regular Season")),
		WorkerCount:                   workerCount,
		GameIDStore:                   gameIDStore,
		GameIDFile:                    strings.TrimSpace(getEnv("GAME_ID_FILE", "yesterdays_games.txt")),
		ChartDir:                      strings.TrimSpace(getEnv("CHART_DIR", ".")),
		MetricsFile:                   strings.TrimSpace(getEnv("METRICS_FILE", "")),
		DBURL:                         dbURL,
		DBDisablePreparedBinary:       dbDisablePreparedBinary,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
