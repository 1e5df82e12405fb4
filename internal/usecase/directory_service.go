package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/hoopstats/internal/domain/game"
	"github.com/riskibarqy/hoopstats/internal/domain/player"
	"github.com/riskibarqy/hoopstats/internal/domain/team"
)

// DirectoryService resolves player and team names to provider identifiers.
type DirectoryService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
}

func NewDirectoryService(playerRepo player.Repository, teamRepo team.Repository) *DirectoryService {
	return &DirectoryService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

// FindPlayer searches the full player index. A name that matches nobody is
// reported through the bool, not as an error.
func (s *DirectoryService) FindPlayer(ctx context.Context, name string) (player.Player, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.FindPlayer")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, false, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("list players: %w", err)
	}

	found, ok := player.Match(players, name)
	return found, ok, nil
}

func (s *DirectoryService) PlayerID(ctx context.Context, name string) (int64, bool, error) {
	p, ok, err := s.FindPlayer(ctx, name)
	if err != nil || !ok {
		return 0, ok, err
	}
	return p.ID, true, nil
}

// FindTeam matches the franchise table by full name, then abbreviation.
func (s *DirectoryService) FindTeam(ctx context.Context, name string) (team.Team, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.FindTeam")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, false, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("list teams: %w", err)
	}

	found, ok := team.Match(teams, name)
	return found, ok, nil
}

func (s *DirectoryService) TeamID(ctx context.Context, name string) (int64, bool, error) {
	t, ok, err := s.FindTeam(ctx, name)
	if err != nil || !ok {
		return 0, ok, err
	}
	return t.ID, true, nil
}

func (s *DirectoryService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// Matchup names the teams of a box score as "Visitor @ Home". A team the
// directory does not know falls back to its line score abbreviation, then
// its ID. Box scores without team IDs have no matchup.
func (s *DirectoryService) Matchup(ctx context.Context, box game.BoxScore) (string, error) {
	if box.HomeTeamID == 0 && box.VisitorTeamID == 0 {
		return "", nil
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.Matchup")
	defer span.End()

	visitor, err := s.teamLabel(ctx, box, box.VisitorTeamID)
	if err != nil {
		return "", err
	}
	home, err := s.teamLabel(ctx, box, box.HomeTeamID)
	if err != nil {
		return "", err
	}
	return visitor + " @ " + home, nil
}

func (s *DirectoryService) teamLabel(ctx context.Context, box game.BoxScore, teamID int64) (string, error) {
	t, ok, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return "", fmt.Errorf("get team %d: %w", teamID, err)
	}
	if ok {
		return t.FullName, nil
	}
	for _, l := range box.LineScores {
		if l.TeamID == teamID && l.TeamAbbreviation != "" {
			return l.TeamAbbreviation, nil
		}
	}
	return strconv.FormatInt(teamID, 10), nil
}

// resolvePlayer turns a miss into ErrNotFound for callers that need a player.
func (s *DirectoryService) resolvePlayer(ctx context.Context, name string) (player.Player, error) {
	p, ok, err := s.FindPlayer(ctx, name)
	if err != nil {
		return player.Player{}, err
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player %q not found", ErrNotFound, name)
	}
	return p, nil
}

func (s *DirectoryService) resolveTeam(ctx context.Context, name string) (team.Team, error) {
	t, ok, err := s.FindTeam(ctx, name)
	if err != nil {
		return team.Team{}, err
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team %q not found", ErrNotFound, name)
	}
	return t, nil
}
