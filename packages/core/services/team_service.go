package services

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
	"github.com/d-exit/team-management-app.ver4/packages/core/utils"
)

// ErrConfirmationRequired is returned when a destructive action arrives
// without the explicit confirmation step. Declining aborts with no state
// change.
var ErrConfirmationRequired = errors.New("confirmation required")

type TeamService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewTeamService(st *store.Store, log zerolog.Logger) *TeamService {
	return &TeamService{
		store: st,
		log:   log.With().Str("service", "team").Logger(),
	}
}

func (s *TeamService) AllTeams() []models.Team {
	return s.store.Teams()
}

func (s *TeamService) ManagedTeams() []models.Team {
	return s.store.ManagedTeams()
}

func (s *TeamService) FollowedTeams() []models.FollowedTeam {
	return s.store.FollowedTeams()
}

func (s *TeamService) GetTeam(id string) (models.Team, error) {
	return s.store.TeamByID(id)
}

func (s *TeamService) CreateTeam(name, coachName string) (models.Team, error) {
	return s.store.CreateTeam(name, coachName)
}

// DeleteTeam removes the team from the managed subset. The confirmed flag
// carries the user's answer to the confirmation prompt.
func (s *TeamService) DeleteTeam(id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	return s.store.DeleteTeam(id)
}

func (s *TeamService) UpdateManagedTeam(team models.Team) error {
	if strings.TrimSpace(team.Name) == "" {
		return store.ErrValidation
	}
	return s.store.UpdateManagedTeam(team)
}

func (s *TeamService) ToggleFollowTeam(team models.Team) bool {
	return s.store.ToggleFollowTeam(team)
}

func (s *TeamService) ToggleFavoriteTeam(id string) {
	s.store.ToggleFavoriteTeam(id)
}

// TeamMatches returns the matches the team takes part in.
func (s *TeamService) TeamMatches(teamID string) ([]models.Match, error) {
	if _, err := s.store.TeamByID(teamID); err != nil {
		return nil, err
	}
	return s.store.MatchesForTeam(teamID), nil
}

// TeamRank computes the team's rating position overall and, when set, within
// its prefecture and age-category cohorts.
func (s *TeamService) TeamRank(teamID string) (models.TeamRankResponse, error) {
	team, err := s.store.TeamByID(teamID)
	if err != nil {
		return models.TeamRankResponse{}, err
	}

	all := s.store.Teams()
	resp := models.TeamRankResponse{Overall: utils.RankByRating(all, teamID)}

	if team.Prefecture != "" {
		rank := utils.RankByRating(utils.FilterByPrefecture(all, team.Prefecture), teamID)
		resp.Prefecture = &rank
	}
	if team.AgeCategory != "" {
		rank := utils.RankByRating(utils.FilterByAgeCategory(all, team.AgeCategory), teamID)
		resp.AgeCategory = &rank
	}
	return resp, nil
}
