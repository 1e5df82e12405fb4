package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoopstats/internal/domain/game"
	qb "github.com/riskibarqy/hoopstats/internal/platform/querybuilder"
)

const gameSlatesTable = "game_slates"

type GameSlateRepository struct {
	db *sqlx.DB
}

func NewGameSlateRepository(db *sqlx.DB) *GameSlateRepository {
	return &GameSlateRepository{db: db}
}

// Save replaces the slate stored for slate.Date. IDs already stored under
// another date move to this one.
func (r *GameSlateRepository) Save(ctx context.Context, slate game.Slate) error {
	day := truncateDay(slate.Date)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save game slate: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom(gameSlatesTable).
		Where(qb.Eq("game_date", day)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear game slate query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear game slate date=%s: %w", day.Format(time.DateOnly), err)
	}

	ids := game.UniqueIDs(slate.GameIDs)
	if len(ids) > 0 {
		insert := qb.InsertInto(gameSlatesTable).Columns("game_id", "game_date", "position")
		for i, id := range ids {
			insert.Values(id, day, i)
		}
		query, args, err := insert.Suffix(`ON CONFLICT (game_id)
DO UPDATE SET
    game_date = EXCLUDED.game_date,
    position = EXCLUDED.position`).ToSQL()
		if err != nil {
			return fmt.Errorf("build insert game slate query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert game slate date=%s: %w", day.Format(time.DateOnly), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save game slate tx: %w", err)
	}
	return nil
}

// Load returns the slate of the most recent stored date.
func (r *GameSlateRepository) Load(ctx context.Context) (game.Slate, error) {
	query, args, err := qb.Select("game_id", "game_date", "position", "created_at").
		From(gameSlatesTable).
		Where(qb.Expr("game_date = (SELECT MAX(game_date) FROM "+gameSlatesTable+")")).
		OrderBy("position", "game_id").
		ToSQL()
	if err != nil {
		return game.Slate{}, fmt.Errorf("build select game slate query: %w", err)
	}

	var rows []gameSlateTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return game.Slate{}, fmt.Errorf("select game slate: %w", err)
	}
	if len(rows) == 0 {
		return game.Slate{}, game.ErrSlateNotFound
	}

	out := game.Slate{Date: rows[0].GameDate, GameIDs: make([]string, 0, len(rows))}
	for _, row := range rows {
		out.GameIDs = append(out.GameIDs, row.GameID)
	}
	return out, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
