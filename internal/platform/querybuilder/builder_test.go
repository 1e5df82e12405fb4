package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("game_id", "game_date").
		From("game_slates").
		Where(Expr("game_date = (SELECT MAX(game_date) FROM game_slates)")).
		OrderBy("position", "game_id").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT game_id, game_date FROM game_slates WHERE game_date = (SELECT MAX(game_date) FROM game_slates) ORDER BY position, game_id LIMIT 50"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultipleRows(t *testing.T) {
	day := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
	query, args, err := InsertInto("game_slates").
		Columns("game_id", "game_date", "position").
		Values("0022300500", day, 0).
		Values("0022300501", day, 1).
		Suffix("ON CONFLICT (game_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO game_slates (game_id, game_date, position) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT (game_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[3] != "0022300501" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RejectsShortRow(t *testing.T) {
	if _, _, err := InsertInto("game_slates").Columns("game_id", "game_date").Values("x").ToSQL(); err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("game_slates").
		Where(Eq("game_date", "2024-01-14"), Expr("position >= ?", 3)).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM game_slates WHERE game_date = $1 AND position >= $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("game_slates").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}
