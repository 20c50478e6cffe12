package services

import (
	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

type MatchmakingService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewMatchmakingService(st *store.Store, log zerolog.Logger) *MatchmakingService {
	return &MatchmakingService{
		store: st,
		log:   log.With().Str("service", "matchmaking").Logger(),
	}
}

// Search scans the team universe with the given filters. The operator's own
// managed team is never part of the result. All filters are conjunctive; an
// unset filter matches everything.
func (s *MatchmakingService) Search(filters models.MatchmakingFilters) []models.Team {
	ownID := s.store.Session().SelectedManagedTeamID

	results := []models.Team{}
	for _, team := range s.store.Teams() {
		if team.ID == ownID {
			continue
		}
		if matchesFilters(team, filters) {
			results = append(results, team)
		}
	}
	s.log.Debug().Int("results", len(results)).Msg("matchmaking search")
	return results
}

func matchesFilters(team models.Team, f models.MatchmakingFilters) bool {
	if len(f.Prefectures) > 0 && !containsString(f.Prefectures, team.Prefecture) {
		return false
	}
	if len(f.Levels) > 0 && !containsLevel(f.Levels, team.Level) {
		return false
	}
	if len(f.AgeCategories) > 0 && (team.AgeCategory == "" || !containsAge(f.AgeCategories, team.AgeCategory)) {
		return false
	}
	if f.RatingMin != nil && team.Rating < *f.RatingMin {
		return false
	}
	if f.RatingMax != nil && team.Rating > *f.RatingMax {
		return false
	}
	if f.AvailableOnly {
		if team.AvailableSlotsText != models.AvailabilityOpen && team.AvailableSlotsText != models.AvailabilityWeekendsOnly {
			return false
		}
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func containsLevel(values []models.TeamLevel, v models.TeamLevel) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func containsAge(values []models.AgeCategory, v models.AgeCategory) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
