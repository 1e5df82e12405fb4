package gamelog

import (
	"slices"
	"time"

	"github.com/riskibarqy/hoopstats/internal/domain/stat"
)

const (
	ResultWin  = "W"
	ResultLoss = "L"
)

// Game is one row of a player or team game log.
type Game struct {
	GameID   string
	Date     time.Time
	Matchup  string
	WL       string
	PlayerID int64
	TeamID   int64
	Stats    stat.Line
}

// Chronological returns a copy of games ordered oldest first. The provider
// lists newest first, so the copy is reversed before a stable date sort;
// rows without a date keep the reversed order.
func Chronological(games []Game) []Game {
	out := slices.Clone(games)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b Game) int {
		if a.Date.IsZero() || b.Date.IsZero() {
			return 0
		}
		return a.Date.Compare(b.Date)
	})
	return out
}

func Lines(games []Game) []stat.Line {
	out := make([]stat.Line, 0, len(games))
	for _, g := range games {
		out = append(out, g.Stats)
	}
	return out
}

// Series returns column for every game, in the given order, with NaN
// holes replaced by zero. The second return is false when no game has it.
func Series(games []Game, column string) ([]float64, bool) {
	values := make([]float64, len(games))
	found := false
	for i, g := range games {
		if v, ok := g.Stats.Get(column); ok {
			values[i] = v
			found = true
		}
	}
	return values, found
}

// RecordPoint is the running record after GameNumber games.
type RecordPoint struct {
	GameNumber int `json:"game_number"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
}

// CumulativeRecord walks games oldest first and returns the running
// win/loss count after each game. Anything other than a win counts as a loss.
func CumulativeRecord(games []Game) []RecordPoint {
	ordered := Chronological(games)
	out := make([]RecordPoint, 0, len(ordered))
	var wins, losses int
	for i, g := range ordered {
		if g.WL == ResultWin {
			wins++
		} else {
			losses++
		}
		out = append(out, RecordPoint{GameNumber: i + 1, Wins: wins, Losses: losses})
	}
	return out
}
