// Package migration applies the schema migrations with golang-migrate.
package migration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/hoopstats/db"
	"github.com/riskibarqy/hoopstats/internal/platform/logging"
)

// Runner wraps a migrate instance. The embedded migrations are used unless
// Dir points at a directory on disk.
type Runner struct {
	m      *migrate.Migrate
	source string
	logger *logging.Logger
}

type Options struct {
	DBURL  string
	Dir    string
	Logger *logging.Logger
}

func NewRunner(opts Options) (*Runner, error) {
	dbURL := strings.TrimSpace(opts.DBURL)
	if dbURL == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	dir := strings.TrimSpace(opts.Dir)
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("resolve migrations dir: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("migration directory %q not found", abs)
		}
		sourceURL := "file://" + filepath.ToSlash(abs)
		m, err := migrate.New(sourceURL, dbURL)
		if err != nil {
			return nil, fmt.Errorf("create migrator: %w", err)
		}
		return &Runner{m: m, source: sourceURL, logger: logger}, nil
	}

	src, err := iofs.New(db.Migrations, db.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return &Runner{m: m, source: "embedded", logger: logger}, nil
}

func (r *Runner) Up() error {
	if err := ignoreNoChange(r.m.Up()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	r.logger.Info("migrations applied", "source", r.source)
	return nil
}

func (r *Runner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("down steps must be > 0")
	}
	if err := ignoreNoChange(r.m.Steps(-steps)); err != nil {
		return fmt.Errorf("roll back %d migration(s): %w", steps, err)
	}
	r.logger.Info("migrations rolled back", "steps", steps)
	return nil
}

func (r *Runner) Goto(version uint) error {
	if err := ignoreNoChange(r.m.Migrate(version)); err != nil {
		return fmt.Errorf("migrate to version %d: %w", version, err)
	}
	r.logger.Info("migrated", "version", version)
	return nil
}

func (r *Runner) Force(version int) error {
	if version < 0 {
		return fmt.Errorf("version must be >= 0")
	}
	if err := r.m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	r.logger.Warn("forced migration version", "version", version)
	return nil
}

// Version reports the applied version. ok is false when nothing has been
// applied yet.
func (r *Runner) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("read version: %w", err)
	}
	return version, dirty, true, nil
}

func (r *Runner) Close() {
	srcErr, dbErr := r.m.Close()
	if srcErr != nil {
		r.logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		r.logger.Warn("close migration db", "error", dbErr)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
