package postgres

import "time"

type gameSlateTableModel struct {
	GameID    string    `db:"game_id"`
	GameDate  time.Time `db:"game_date"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}
