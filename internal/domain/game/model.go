package game

import (
	"strings"
	"time"
)

// DateLayout is the provider's date filter format.
const DateLayout = "01/02/2006"

// Slate is the set of games played on one date.
type Slate struct {
	Date    time.Time
	GameIDs []string
}

func (s Slate) Empty() bool {
	return len(s.GameIDs) == 0
}

// UniqueIDs trims ids and drops blanks and duplicates, keeping first-seen order.
func UniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Yesterday returns the calendar day before now in now's location.
func Yesterday(now time.Time) time.Time {
	y, m, d := now.AddDate(0, 0, -1).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// LineScore is one team's row of a box score summary.
type LineScore struct {
	TeamID           int64  `json:"team_id"`
	TeamAbbreviation string `json:"team_abbreviation"`
	TeamCityName     string `json:"team_city_name"`
	TeamNickname     string `json:"team_nickname"`
	WinsLosses       string `json:"wins_losses"`
	Quarters         []int  `json:"quarters"`
	Points           int    `json:"points"`
}

// BoxScore is the game-level summary of a box score.
type BoxScore struct {
	GameID        string      `json:"game_id"`
	GameDate      string      `json:"game_date"`
	Status        string      `json:"status"`
	HomeTeamID    int64       `json:"home_team_id"`
	VisitorTeamID int64       `json:"visitor_team_id"`
	Season        string      `json:"season"`
	LineScores    []LineScore `json:"line_scores"`
}
