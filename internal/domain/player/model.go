package player

import "strings"

// Player is one entry of the league-wide player index.
type Player struct {
	ID               int64
	FullName         string
	FirstName        string
	LastName         string
	IsActive         bool
	FromYear         string
	ToYear           string
	TeamID           int64
	TeamAbbreviation string
}

// Info is the biographical row returned for a single player.
type Info struct {
	PlayerID            int64
	DisplayName         string
	BirthDate           string
	School              string
	Country             string
	Height              string
	Weight              string
	SeasonExperience    int
	Jersey              string
	Position            string
	RosterStatus        string
	TeamID              int64
	TeamName            string
	TeamAbbreviation    string
	TeamCity            string
	FromYear            int
	ToYear              int
	DraftYear           string
	DraftRound          string
	DraftNumber         string
	GreatestSeventyFive bool
}

// SplitName splits a display name into first and last name on the first space.
func SplitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	first, last, found := strings.Cut(full, " ")
	if !found {
		return "", full
	}
	return first, strings.TrimSpace(last)
}
