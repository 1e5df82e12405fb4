package career

import "github.com/riskibarqy/hoopstats/internal/domain/stat"

const (
	PerModeTotals  = "Totals"
	PerModePerGame = "PerGame"
	PerModePer36   = "Per36"
)

// Season is one regular-season row of a player's career table. Traded
// players have one row per team plus a TOT row.
type Season struct {
	PlayerID         int64
	SeasonID         string
	LeagueID         string
	TeamID           int64
	TeamAbbreviation string
	PlayerAge        float64
	Stats            stat.Line
}

// Progression returns the season labels and column values in table order,
// skipping seasons without the column.
func Progression(seasons []Season, column string) (labels []string, values []float64) {
	for _, s := range seasons {
		v, ok := s.Stats.Get(column)
		if !ok {
			continue
		}
		labels = append(labels, s.SeasonID)
		values = append(values, v)
	}
	return labels, values
}
