package nbastats

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestRow_TypedAccessors(t *testing.T) {
	t.Parallel()

	var env envelope
	raw := `{"resultSets":[{"name":"PlayerGameLog","headers":["Game_ID","GAME_DATE","WL","PTS","FG_PCT","FG3_PCT"],
		"rowSet":[["0022301195","APR 14, 2024","W",28,0.5,null]]}]}`
	if err := sonic.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	rs, ok := env.response().Set("PlayerGameLog")
	if !ok || rs.Len() != 1 {
		t.Fatalf("expected one PlayerGameLog row")
	}
	row := rs.Rows()[0]

	if row.String("GAME_ID") != "0022301195" {
		t.Fatalf("header lookup must be case-insensitive, got=%q", row.String("GAME_ID"))
	}
	if row.Int("PTS") != 28 {
		t.Fatalf("expected pts=28, got=%d", row.Int("PTS"))
	}
	if got := row.Date("GAME_DATE"); got.Year() != 2024 || got.Month() != 4 || got.Day() != 14 {
		t.Fatalf("unexpected date: %v", got)
	}
	if _, ok := row.Float("FG3_PCT"); ok {
		t.Fatalf("null cell must be missing")
	}

	stats := row.Stats()
	if stats["PTS"] != 28 || stats["FG_PCT"] != 0.5 {
		t.Fatalf("unexpected stats: %v", stats)
	}
	if _, ok := stats["FG3_PCT"]; ok {
		t.Fatalf("null cell must not appear in stats")
	}
}

func TestResponse_SetFallsBackOnlyForEmptyName(t *testing.T) {
	t.Parallel()

	resp := Response{Sets: []ResultSet{newResultSet(wireResultSet{Name: "A"})}}
	if _, ok := resp.Set("B"); ok {
		t.Fatalf("unexpected match for unknown set")
	}
	if rs, ok := resp.Set(""); !ok || rs.Name != "A" {
		t.Fatalf("expected first set for empty name")
	}
}
