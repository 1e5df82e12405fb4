package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/riskibarqy/hoopstats/internal/app"
	"github.com/riskibarqy/hoopstats/internal/config"
	"github.com/riskibarqy/hoopstats/internal/interfaces/cli"
	"github.com/riskibarqy/hoopstats/internal/observability"
	"github.com/riskibarqy/hoopstats/internal/platform/logging"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 2
	}
	if cfg.ServiceVersion == "dev" && version != "dev" {
		cfg.ServiceVersion = version
	}

	logger := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: logFormat(cfg.LogFormat),
	}).With("run_id", uuid.NewString())
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	commands := cli.New(cfg, logger, func(ctx context.Context) (*app.App, error) {
		return app.New(ctx, cfg, logger)
	}, cfg.ServiceVersion)
	defer func() {
		if err := commands.Close(); err != nil {
			logger.Warn("close app", "error", err)
		}
	}()

	if err := commands.Command().ExecuteContext(ctx); err != nil {
		return commands.WriteError(os.Stderr, err)
	}
	return 0
}

// logFormat resolves "auto" to console output on a terminal and JSON
// otherwise.
func logFormat(format string) string {
	if format != config.LogFormatAuto {
		return format
	}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return logging.FormatConsole
	}
	return logging.FormatJSON
}
