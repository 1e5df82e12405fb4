package memory

import (
	"github.com/riskibarqy/hoopstats/internal/domain/player"
	"github.com/riskibarqy/hoopstats/internal/domain/team"
)

const (
	TeamIDLakers     int64 = 1610612747
	PlayerIDLeBron   int64 = 2544
	PlayerIDStephen  int64 = 201939
	PlayerIDDurant   int64 = 201142
	PlayerIDJokic    int64 = 203999
	PlayerIDGiannis  int64 = 203507
	PlayerIDEmbiid   int64 = 203954
	PlayerIDTatum    int64 = 1628369
	PlayerIDDoncic   int64 = 1629029
	PlayerIDGilgeous int64 = 1628983
)

// SeedTeams returns the 30 NBA franchises in provider ID order.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1610612737, FullName: "Atlanta Hawks", Abbreviation: "ATL", Nickname: "Hawks", City: "Atlanta", State: "Georgia", YearFounded: 1949},
		{ID: 1610612738, FullName: "Boston Celtics", Abbreviation: "BOS", Nickname: "Celtics", City: "Boston", State: "Massachusetts", YearFounded: 1946},
		{ID: 1610612739, FullName: "Cleveland Cavaliers", Abbreviation: "CLE", Nickname: "Cavaliers", City: "Cleveland", State: "Ohio", YearFounded: 1970},
		{ID: 1610612740, FullName: "New Orleans Pelicans", Abbreviation: "NOP", Nickname: "Pelicans", City: "New Orleans", State: "Louisiana", YearFounded: 2002},
		{ID: 1610612741, FullName: "Chicago Bulls", Abbreviation: "CHI", Nickname: "Bulls", City: "Chicago", State: "Illinois", YearFounded: 1966},
		{ID: 1610612742, FullName: "Dallas Mavericks", Abbreviation: "DAL", Nickname: "Mavericks", City: "Dallas", State: "Texas", YearFounded: 1980},
		{ID: 1610612743, FullName: "Denver Nuggets", Abbreviation: "DEN", Nickname: "Nuggets", City: "Denver", State: "Colorado", YearFounded: 1976},
		{ID: 1610612744, FullName: "Golden State Warriors", Abbreviation: "GSW", Nickname: "Warriors", City: "Golden State", State: "California", YearFounded: 1946},
		{ID: 1610612745, FullName: "Houston Rockets", Abbreviation: "HOU", Nickname: "Rockets", City: "Houston", State: "Texas", YearFounded: 1967},
		{ID: 1610612746, FullName: "Los Angeles Clippers", Abbreviation: "LAC", Nickname: "Clippers", City: "Los Angeles", State: "California", YearFounded: 1970},
		{ID: 1610612747, FullName: "Los Angeles Lakers", Abbreviation: "LAL", Nickname: "Lakers", City: "Los Angeles", State: "California", YearFounded: 1948},
		{ID: 1610612748, FullName: "Miami Heat", Abbreviation: "MIA", Nickname: "Heat", City: "Miami", State: "Florida", YearFounded: 1988},
		{ID: 1610612749, FullName: "Milwaukee Bucks", Abbreviation: "MIL", Nickname: "Bucks", City: "Milwaukee", State: "Wisconsin", YearFounded: 1968},
		{ID: 1610612750, FullName: "Minnesota Timberwolves", Abbreviation: "MIN", Nickname: "Timberwolves", City: "Minnesota", State: "Minnesota", YearFounded: 1989},
		{ID: 1610612751, FullName: "Brooklyn Nets", Abbreviation: "BKN", Nickname: "Nets", City: "Brooklyn", State: "New York", YearFounded: 1976},
		{ID: 1610612752, FullName: "New York Knicks", Abbreviation: "NYK", Nickname: "Knicks", City: "New York", State: "New York", YearFounded: 1946},
		{ID: 1610612753, FullName: "Orlando Magic", Abbreviation: "ORL", Nickname: "Magic", City: "Orlando", State: "Florida", YearFounded: 1989},
		{ID: 1610612754, FullName: "Indiana Pacers", Abbreviation: "IND", Nickname: "Pacers", City: "Indiana", State: "Indiana", YearFounded: 1976},
		{ID: 1610612755, FullName: "Philadelphia 76ers", Abbreviation: "PHI", Nickname: "76ers", City: "Philadelphia", State: "Pennsylvania", YearFounded: 1949},
		{ID: 1610612756, FullName: "Phoenix Suns", Abbreviation: "PHX", Nickname: "Suns", City: "Phoenix", State: "Arizona", YearFounded: 1968},
		{ID: 1610612757, FullName: "Portland Trail Blazers", Abbreviation: "POR", Nickname: "Trail Blazers", City: "Portland", State: "Oregon", YearFounded: 1970},
		{ID: 1610612758, FullName: "Sacramento Kings", Abbreviation: "SAC", Nickname: "Kings", City: "Sacramento", State: "California", YearFounded: 1948},
		{ID: 1610612759, FullName: "San Antonio Spurs", Abbreviation: "SAS", Nickname: "Spurs", City: "San Antonio", State: "Texas", YearFounded: 1976},
		{ID: 1610612760, FullName: "Oklahoma City Thunder", Abbreviation: "OKC", Nickname: "Thunder", City: "Oklahoma City", State: "Oklahoma", YearFounded: 1967},
		{ID: 1610612761, FullName: "Toronto Raptors", Abbreviation: "TOR", Nickname: "Raptors", City: "Toronto", State: "Ontario", YearFounded: 1995},
		{ID: 1610612762, FullName: "Utah Jazz", Abbreviation: "UTA", Nickname: "Jazz", City: "Utah", State: "Utah", YearFounded: 1974},
		{ID: 1610612763, FullName: "Memphis Grizzlies", Abbreviation: "MEM", Nickname: "Grizzlies", City: "Memphis", State: "Tennessee", YearFounded: 1995},
		{ID: 1610612764, FullName: "Washington Wizards", Abbreviation: "WAS", Nickname: "Wizards", City: "Washington", State: "District of Columbia", YearFounded: 1961},
		{ID: 1610612765, FullName: "Detroit Pistons", Abbreviation: "DET", Nickname: "Pistons", City: "Detroit", State: "Michigan", YearFounded: 1948},
		{ID: 1610612766, FullName: "Charlotte Hornets", Abbreviation: "CHA", Nickname: "Hornets", City: "Charlotte", State: "North Carolina", YearFounded: 1988},
	}
}

// SeedPlayers is a small offline player index of current stars. It backs
// directory lookups when the provider index is unreachable.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: PlayerIDLeBron, FullName: "LeBron James", FirstName: "LeBron", LastName: "James", IsActive: true, FromYear: "2003", TeamID: TeamIDLakers, TeamAbbreviation: "LAL"},
		{ID: PlayerIDStephen, FullName: "Stephen Curry", FirstName: "Stephen", LastName: "Curry", IsActive: true, FromYear: "2009", TeamID: 1610612744, TeamAbbreviation: "GSW"},
		{ID: PlayerIDDurant, FullName: "Kevin Durant", FirstName: "Kevin", LastName: "Durant", IsActive: true, FromYear: "2007", TeamID: 1610612756, TeamAbbreviation: "PHX"},
		{ID: PlayerIDJokic, FullName: "Nikola Jokic", FirstName: "Nikola", LastName: "Jokic", IsActive: true, FromYear: "2015", TeamID: 1610612743, TeamAbbreviation: "DEN"},
		{ID: PlayerIDGiannis, FullName: "Giannis Antetokounmpo", FirstName: "Giannis", LastName: "Antetokounmpo", IsActive: true, FromYear: "2013", TeamID: 1610612749, TeamAbbreviation: "MIL"},
		{ID: PlayerIDEmbiid, FullName: "Joel Embiid", FirstName: "Joel", LastName: "Embiid", IsActive: true, FromYear: "2016", TeamID: 1610612755, TeamAbbreviation: "PHI"},
		{ID: PlayerIDTatum, FullName: "Jayson Tatum", FirstName: "Jayson", LastName: "Tatum", IsActive: true, FromYear: "2017", TeamID: 1610612738, TeamAbbreviation: "BOS"},
		{ID: PlayerIDDoncic, FullName: "Luka Doncic", FirstName: "Luka", LastName: "Doncic", IsActive: true, FromYear: "2018", TeamID: 1610612742, TeamAbbreviation: "DAL"},
		{ID: PlayerIDGilgeous, FullName: "Shai Gilgeous-Alexander", FirstName: "Shai", LastName: "Gilgeous-Alexander", IsActive: true, FromYear: "2018", TeamID: 1610612760, TeamAbbreviation: "OKC"},
	}
}
