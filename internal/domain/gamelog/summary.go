package gamelog

import "github.com/riskibarqy/hoopstats/internal/domain/stat"

// AverageColumns are the columns SeasonAverages reports when present.
var AverageColumns = []string{"PTS", "AST", "REB", "STL", "BLK", "FG_PCT", "FG3_PCT", "FT_PCT", "MIN"}

// SeasonAverages returns the mean of every AverageColumns entry carried by
// the log.
func SeasonAverages(games []Game) map[string]float64 {
	lines := Lines(games)
	out := make(map[string]float64, len(AverageColumns))
	for _, col := range AverageColumns {
		if v, ok := stat.Mean(lines, col); ok {
			out[col] = v
		}
	}
	return out
}

// SummaryItem is one labelled value of a stats summary table.
type SummaryItem struct {
	Statistic string  `json:"statistic"`
	Value     float64 `json:"value"`
}

// PlayerSummary builds the per-game summary table. Values are rounded to two
// decimals; shooting columns are expressed as percentages.
func PlayerSummary(games []Game) []SummaryItem {
	lines := Lines(games)
	mean := func(col string, scale float64) float64 {
		v, _ := stat.Mean(lines, col)
		return stat.Round(v*scale, 2)
	}
	return []SummaryItem{
		{Statistic: "Games Played", Value: float64(len(games))},
		{Statistic: "PPG", Value: mean("PTS", 1)},
		{Statistic: "RPG", Value: mean("REB", 1)},
		{Statistic: "APG", Value: mean("AST", 1)},
		{Statistic: "SPG", Value: mean("STL", 1)},
		{Statistic: "BPG", Value: mean("BLK", 1)},
		{Statistic: "FG%", Value: mean("FG_PCT", 100)},
		{Statistic: "3P%", Value: mean("FG3_PCT", 100)},
		{Statistic: "FT%", Value: mean("FT_PCT", 100)},
		{Statistic: "MPG", Value: mean("MIN", 1)},
	}
}

// ShootingSplits returns FG%, 3P% and FT% as percentages of the log means.
func ShootingSplits(games []Game) []SummaryItem {
	lines := Lines(games)
	out := make([]SummaryItem, 0, 3)
	for _, c := range []struct{ label, col string }{
		{"FG%", "FG_PCT"},
		{"3P%", "FG3_PCT"},
		{"FT%", "FT_PCT"},
	} {
		v, _ := stat.Mean(lines, c.col)
		out = append(out, SummaryItem{Statistic: c.label, Value: v * 100})
	}
	return out
}

// TeamSummary is the season rollup of a team game log.
type TeamSummary struct {
	GamesPlayed   int     `json:"games_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
	PPG           float64 `json:"ppg"`
	OppPPG        float64 `json:"opp_ppg"`
	FGPct         float64 `json:"fg_pct"`
	FG3Pct        float64 `json:"fg3_pct"`
	FTPct         float64 `json:"ft_pct"`
	RebPG         float64 `json:"reb_pg"`
	AstPG         float64 `json:"ast_pg"`
}

// SummarizeTeam rolls a team game log up. OppPPG is zero when the log has
// no OPP_PTS column.
func SummarizeTeam(games []Game) TeamSummary {
	lines := Lines(games)
	mean := func(col string) float64 {
		v, _ := stat.Mean(lines, col)
		return v
	}

	out := TeamSummary{GamesPlayed: len(games)}
	for _, g := range games {
		switch g.WL {
		case ResultWin:
			out.Wins++
		case ResultLoss:
			out.Losses++
		}
	}
	out.WinPercentage = stat.Pct(out.Wins, out.GamesPlayed)
	out.PPG = mean("PTS")
	out.OppPPG = mean("OPP_PTS")
	out.FGPct = mean("FG_PCT") * 100
	out.FG3Pct = mean("FG3_PCT") * 100
	out.FTPct = mean("FT_PCT") * 100
	out.RebPG = mean("REB")
	out.AstPG = mean("AST")
	return out
}
