package nbastats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoopstats/internal/domain/career"
	"github.com/riskibarqy/hoopstats/internal/domain/game"
	"github.com/riskibarqy/hoopstats/internal/domain/gamelog"
	"github.com/riskibarqy/hoopstats/internal/domain/player"
	"github.com/riskibarqy/hoopstats/internal/domain/shot"
	"github.com/riskibarqy/hoopstats/internal/domain/standings"
	"github.com/riskibarqy/hoopstats/internal/usecase"
)

const leagueNBA = "00"

// params builds a query from key/value pairs. The provider rejects
// requests that omit optional filters, so callers pass them empty.
func params(kv ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		values.Set(kv[i], kv[i+1])
	}
	return values
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// ListPlayers returns every player in league history from commonallplayers.
func (c *Client) ListPlayers(ctx context.Context, season string) ([]player.Player, error) {
	resp, err := c.fetch(ctx, "commonallplayers", params(
		"LeagueID", leagueNBA,
		"Season", season,
		"IsOnlyCurrentSeason", "0",
	))
	if err != nil {
		return nil, err
	}
	rs, ok := resp.Set("CommonAllPlayers")
	if !ok {
		return nil, fmt.Errorf("commonallplayers: missing CommonAllPlayers result set")
	}

	out := make([]player.Player, 0, rs.Len())
	for _, row := range rs.Rows() {
		full := row.String("DISPLAY_FIRST_LAST")
		first, last := player.SplitName(full)
		out = append(out, player.Player{
			ID:               row.Int64("PERSON_ID"),
			FullName:         full,
			FirstName:        first,
			LastName:         last,
			IsActive:         row.Bool("ROSTERSTATUS"),
			FromYear:         row.String("FROM_YEAR"),
			ToYear:           row.String("TO_YEAR"),
			TeamID:           row.Int64("TEAM_ID"),
			TeamAbbreviation: row.String("TEAM_ABBREVIATION"),
		})
	}
	return out, nil
}

func (c *Client) PlayerInfo(ctx context.Context, playerID int64) (player.Info, error) {
	resp, err := c.fetch(ctx, "commonplayerinfo", params(
		"PlayerID", id(playerID),
		"LeagueID", "",
	))
	if err != nil {
		return player.Info{}, err
	}
	rs, ok := resp.Set("CommonPlayerInfo")
	if !ok || rs.Len() == 0 {
		return player.Info{}, fmt.Errorf("%w: player info player_id=%d", usecase.ErrNotFound, playerID)
	}

	row := rs.Rows()[0]
	return player.Info{
		PlayerID:            row.Int64("PERSON_ID"),
		DisplayName:         row.String("DISPLAY_FIRST_LAST"),
		BirthDate:           strings.TrimSuffix(row.String("BIRTHDATE"), "T00:00:00"),
		School:              row.String("SCHOOL"),
		Country:             row.String("COUNTRY"),
		Height:              row.String("HEIGHT"),
		Weight:              row.String("WEIGHT"),
		SeasonExperience:    row.Int("SEASON_EXP"),
		Jersey:              row.String("JERSEY"),
		Position:            row.String("POSITION"),
		RosterStatus:        row.String("ROSTERSTATUS"),
		TeamID:              row.Int64("TEAM_ID"),
		TeamName:            row.String("TEAM_NAME"),
		TeamAbbreviation:    row.String("TEAM_ABBREVIATION"),
		TeamCity:            row.String("TEAM_CITY"),
		FromYear:            row.Int("FROM_YEAR"),
		ToYear:              row.Int("TO_YEAR"),
		DraftYear:           row.String("DRAFT_YEAR"),
		DraftRound:          row.String("DRAFT_ROUND"),
		DraftNumber:         row.String("DRAFT_NUMBER"),
		GreatestSeventyFive: row.Bool("GREATEST_75_FLAG"),
	}, nil
}

func (c *Client) ShotChart(ctx context.Context, q usecase.ShotChartQuery) ([]shot.Shot, error) {
	contextMeasure := q.ContextMeasure
	if contextMeasure == "" {
		contextMeasure = usecase.ContextMeasureFGA
	}
	resp, err := c.fetch(ctx, "shotchartdetail", params(
		"PlayerID", id(q.PlayerID),
		"TeamID", id(q.TeamID),
		"Season", q.Season,
		"SeasonType", q.SeasonType,
		"ContextMeasure", contextMeasure,
		"LeagueID", leagueNBA,
		"AheadBehind", "",
		"ClutchTime", "",
		"ContextFilter", "",
		"DateFrom", "",
		"DateTo", "",
		"EndPeriod", "",
		"EndRange", "",
		"GameID", "",
		"GameSegment", "",
		"LastNGames", "0",
		"Location", "",
		"Month", "0",
		"OpponentTeamID", "0",
		"Outcome", "",
		"Period", "0",
		"PlayerPosition", "",
		"PointDiff", "",
		"Position", "",
		"RangeType", "",
		"RookieYear", "",
		"SeasonSegment", "",
		"StartPeriod", "",
		"StartRange", "",
		"VsConference", "",
		"VsDivision", "",
	))
	if err != nil {
		return nil, err
	}
	rs, ok := resp.Set("Shot_Chart_Detail")
	if !ok {
		return nil, fmt.Errorf("shotchartdetail: missing Shot_Chart_Detail result set")
	}

	out := make([]shot.Shot, 0, rs.Len())
	for _, row := range rs.Rows() {
		x, _ := row.Float("LOC_X")
		y, _ := row.Float("LOC_Y")
		out = append(out, shot.Shot{
			GameID:      row.String("GAME_ID"),
			GameDate:    row.String("GAME_DATE"),
			GameEventID: row.Int64("GAME_EVENT_ID"),
			PlayerID:    row.Int64("PLAYER_ID"),
			PlayerName:  row.String("PLAYER_NAME"),
			TeamID:      row.Int64("TEAM_ID"),
			TeamName:    row.String("TEAM_NAME"),
			Period:      row.Int("PERIOD"),
			MinutesLeft: row.Int("MINUTES_REMAINING"),
			SecondsLeft: row.Int("SECONDS_REMAINING"),
			EventType:   row.String("EVENT_TYPE"),
			ActionType:  row.String("ACTION_TYPE"),
			ShotType:    row.String("SHOT_TYPE"),
			ZoneBasic:   row.String("SHOT_ZONE_BASIC"),
			ZoneArea:    row.String("SHOT_ZONE_AREA"),
			ZoneRange:   row.String("SHOT_ZONE_RANGE"),
			Distance:    row.Int("SHOT_DISTANCE"),
			LocX:        x,
			LocY:        y,
			Attempted:   row.Bool("SHOT_ATTEMPTED_FLAG"),
			Made:        row.Bool("SHOT_MADE_FLAG"),
			HomeTeam:    row.String("HTM"),
			VisitorTeam: row.String("VTM"),
		})
	}
	return out, nil
}

func (c *Client) CareerStats(ctx context.Context, playerID int64, perMode string) ([]career.Season, error) {
	resp, err := c.fetch(ctx, "playercareerstats", params(
		"PlayerID", id(playerID),
		"PerMode", perMode,
		"LeagueID", leagueNBA,
	))
	if err != nil {
		return nil, err
	}
	rs, ok := resp.Set("SeasonTotalsRegularSeason")
	if !ok {
		return nil, fmt.Errorf("playercareerstats: missing SeasonTotalsRegularSeason result set")
	}

	out := make([]career.Season, 0, rs.Len())
	for _, row := range rs.Rows() {
		age, _ := row.Float("PLAYER_AGE")
		out = append(out, career.Season{
			PlayerID:         row.Int64("PLAYER_ID"),
			SeasonID:         row.String("SEASON_ID"),
			LeagueID:         row.String("LEAGUE_ID"),
			TeamID:           row.Int64("TEAM_ID"),
			TeamAbbreviation: row.String("TEAM_ABBREVIATION"),
			PlayerAge:        age,
			Stats:            row.Stats(),
		})
	}
	return out, nil
}

func (c *Client) PlayerGameLog(ctx context.Context, playerID int64, season, seasonType string) ([]gamelog.Game, error) {
	resp, err := c.fetch(ctx, "playergamelog", params(
		"PlayerID", id(playerID),
		"Season", season,
		"SeasonType", seasonType,
		"LeagueID", "",
		"DateFrom", "",
		"DateTo", "",
	))
	if err != nil {
		return nil, err
	}
	rs, ok := resp.Set("PlayerGameLog")
	if !ok {
		return nil, fmt.Errorf("playergamelog: missing PlayerGameLog result set")
	}
	return gameLogRows(rs), nil
}

func (c *Client) TeamGameLog(ctx context.Context, teamID int64, season, seasonType string) ([]gamelog.Game, error) {
	resp, err := c.fetch(ctx, "teamgamelog", params(
		"TeamID", id(teamID),
		"Season", season,
		"SeasonType", seasonType,
		"LeagueID", "",
		"DateFrom", "",
		"DateTo", "",
	))
	if err != nil {
		return nil, err
	}
	rs, ok := resp.Set("TeamGameLog")
	if !ok {
		return nil, fmt.Errorf("teamgamelog: missing TeamGameLog result set")
	}
	return gameLogRows(rs), nil
}

func gameLogRows(rs ResultSet) []gamelog.Game {
	out := make([]gamelog.Game, 0, rs.Len())
	for _, row := range rs.Rows() {
		out = append(out, gamelog.Game{
			GameID:   row.String("GAME_ID"),
			Date:     row.Date("GAME_DATE"),
			Matchup:  row.String("MATCHUP"),
			WL:       row.String("WL"),
			PlayerID: row.Int64("PLAYER_ID"),
			TeamID:   row.Int64("TEAM_ID"),
			Stats:    row.Stats(),
		})
	}
	return out
}

func (c *Client) LeagueTeamStats(ctx context.Context, season, seasonType, perMode string) ([]standings.TeamLine, error) {
	resp, err := c.fetch(ctx, "leaguedashteamstats", params(
		"Season", season,
		"SeasonType", seasonType,
		"PerMode", perMode,
		"MeasureType", "Base",
		"LeagueID", leagueNBA,
		"PaceAdjust", "N",
		"PlusMinus", "N",
		"Rank", "N",
		"LastNGames", "0",
		"Month", "0",
		"OpponentTeamID", "0",
		"Period", "0",
		"TeamID", "0",
		"Conference", "",
		"DateFrom", "",
		"DateTo", "",
		"Division", "",
		"GameScope", "",
		"GameSegment", "",
		"Location", "",
		"Outcome", "",
		"PORound", "0",
		"PlayerExperience", "",
		"PlayerPosition", "",
		"SeasonSegment", "",
		"ShotClockRange", "",
		"StarterBench", "",
		"TwoWay", "0",
		"VsConference", "",
		"VsDivision", "",
	))
	if err != nil {
		return nil, err
	}
	rs, ok := resp.Set("LeagueDashTeamStats")
	if !ok {
		return nil, fmt.Errorf("leaguedashteamstats: missing LeagueDashTeamStats result set")
	}

	out := make([]standings.TeamLine, 0, rs.Len())
	for _, row := range rs.Rows() {
		out = append(out, standings.TeamLine{
			TeamID:   row.Int64("TEAM_ID"),
			TeamName: row.String("TEAM_NAME"),
			Stats:    row.Stats(),
		})
	}
	return out, nil
}

// FindGameIDs returns the distinct game IDs played on date, in the order
// the provider lists them.
func (c *Client) FindGameIDs(ctx context.Context, date time.Time, seasonType string) ([]string, error) {
	day := date.Format(game.DateLayout)
	resp, err := c.fetch(ctx, "leaguegamefinder", params(
		"PlayerOrTeam", "T",
		"LeagueID", leagueNBA,
		"DateFrom", day,
		"DateTo", day,
		"SeasonType", seasonType,
		"Conference", "",
		"Division", "",
		"GameID", "",
		"Location", "",
		"Outcome", "",
		"PlayerID", "",
		"Season", "",
		"TeamID", "",
		"VsConference", "",
		"VsDivision", "",
		"VsTeamID", "",
	))
	if err != nil {
		return nil, err
	}
	rs, ok := resp.Set("LeagueGameFinderResults")
	if !ok {
		return nil, fmt.Errorf("leaguegamefinder: missing LeagueGameFinderResults result set")
	}

	ids := make([]string, 0, rs.Len())
	for _, row := range rs.Rows() {
		ids = append(ids, row.String("GAME_ID"))
	}
	return game.UniqueIDs(ids), nil
}

func (c *Client) BoxScoreSummary(ctx context.Context, gameID string) (game.BoxScore, error) {
	resp, err := c.fetch(ctx, "boxscoresummaryv2", params("GameID", gameID))
	if err != nil {
		return game.BoxScore{}, err
	}
	summary, ok := resp.Set("GameSummary")
	if !ok || summary.Len() == 0 {
		return game.BoxScore{}, fmt.Errorf("%w: box score game_id=%s", usecase.ErrNotFound, gameID)
	}

	row := summary.Rows()[0]
	out := game.BoxScore{
		GameID:        firstNonEmpty(row.String("GAME_ID"), gameID),
		GameDate:      strings.TrimSuffix(row.String("GAME_DATE_EST"), "T00:00:00"),
		Status:        row.String("GAME_STATUS_TEXT"),
		HomeTeamID:    row.Int64("HOME_TEAM_ID"),
		VisitorTeamID: row.Int64("VISITOR_TEAM_ID"),
		Season:        row.String("SEASON"),
	}

	if lines, ok := resp.Set("LineScore"); ok {
		for _, line := range lines.Rows() {
			out.LineScores = append(out.LineScores, game.LineScore{
				TeamID:           line.Int64("TEAM_ID"),
				TeamAbbreviation: line.String("TEAM_ABBREVIATION"),
				TeamCityName:     line.String("TEAM_CITY_NAME"),
				TeamNickname:     line.String("TEAM_NICKNAME"),
				WinsLosses:       line.String("TEAM_WINS_LOSSES"),
				Quarters:         quarterPoints(line),
				Points:           line.Int("PTS"),
			})
		}
	}
	return out, nil
}

// quarterPoints returns regulation quarters followed by any played overtimes.
func quarterPoints(row Row) []int {
	out := make([]int, 0, 4)
	for q := 1; q <= 4; q++ {
		v, _ := row.Float(fmt.Sprintf("PTS_QTR%d", q))
		out = append(out, int(v))
	}
	for ot := 1; ot <= 10; ot++ {
		v, ok := row.Float(fmt.Sprintf("PTS_OT%d", ot))
		if !ok || v == 0 {
			break
		}
		out = append(out, int(v))
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
