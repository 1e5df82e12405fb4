package postgres

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/hoopstats/internal/domain/game"
)

// openTestDB connects to HOOPSTATS_TEST_DB_URL, a database that already has
// the migrations applied.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("HOOPSTATS_TEST_DB_URL"))
	if dsn == "" {
		t.Skip("HOOPSTATS_TEST_DB_URL not set")
	}
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Exec("TRUNCATE " + gameSlatesTable); err != nil {
		t.Fatalf("truncate game slates: %v", err)
	}
	return db
}

func TestGameSlateRepository_SaveAndLoadLatest(t *testing.T) {
	db := openTestDB(t)
	repo := NewGameSlateRepository(db)
	ctx := context.Background()

	if _, err := repo.Load(ctx); !errors.Is(err, game.ErrSlateNotFound) {
		t.Fatalf("expected ErrSlateNotFound on empty table, got=%v", err)
	}

	older := game.Slate{Date: time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), GameIDs: []string{"0022300490"}}
	newer := game.Slate{Date: time.Date(2024, 1, 14, 18, 0, 0, 0, time.UTC), GameIDs: []string{"0022300501", "0022300500", "0022300501"}}
	if err := repo.Save(ctx, older); err != nil {
		t.Fatalf("save older: %v", err)
	}
	if err := repo.Save(ctx, newer); err != nil {
		t.Fatalf("save newer: %v", err)
	}

	slate, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(slate.GameIDs) != 2 || slate.GameIDs[0] != "0022300501" || slate.GameIDs[1] != "0022300500" {
		t.Fatalf("unexpected ids: %v", slate.GameIDs)
	}
	if slate.Date.Day() != 14 {
		t.Fatalf("unexpected date: %v", slate.Date)
	}
}

func TestTruncateDay(t *testing.T) {
	got := truncateDay(time.Date(2024, 1, 14, 23, 59, 0, 0, time.UTC))
	if got.Hour() != 0 || got.Day() != 14 {
		t.Fatalf("unexpected truncated day: %v", got)
	}
}
