package standings

import (
	"slices"
	"strings"

	"github.com/riskibarqy/hoopstats/internal/domain/stat"
)

// TeamLine is one row of the league-wide team dashboard.
type TeamLine struct {
	TeamID   int64
	TeamName string
	Stats    stat.Line
}

// TopN returns the n rows with the highest column value, descending. Rows
// without the column are ignored; ties keep table order.
func TopN(lines []TeamLine, column string, n int) []TeamLine {
	out := make([]TeamLine, 0, len(lines))
	for _, l := range lines {
		if l.Stats.Has(column) {
			out = append(out, l)
		}
	}
	slices.SortStableFunc(out, func(a, b TeamLine) int {
		av, _ := a.Stats.Get(column)
		bv, _ := b.Stats.Get(column)
		switch {
		case av > bv:
			return -1
		case av < bv:
			return 1
		default:
			return 0
		}
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Select returns the rows whose team name matches one of names exactly
// (case-insensitive), in the order of names.
func Select(lines []TeamLine, names []string) []TeamLine {
	out := make([]TeamLine, 0, len(names))
	for _, name := range names {
		for _, l := range lines {
			if strings.EqualFold(l.TeamName, strings.TrimSpace(name)) {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

// ByTeamID returns the row of teamID.
func ByTeamID(lines []TeamLine, teamID int64) (TeamLine, bool) {
	i := slices.IndexFunc(lines, func(l TeamLine) bool { return l.TeamID == teamID })
	if i < 0 {
		return TeamLine{}, false
	}
	return lines[i], true
}
