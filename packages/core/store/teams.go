package store

import (
	"fmt"
	"strings"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

// Teams returns a copy of the global team collection.
func (s *Store) Teams() []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTeams(s.teams)
}

// ManagedTeams returns a copy of the teams the operator administers.
func (s *Store) ManagedTeams() []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTeams(s.managedTeams)
}

// FollowedTeams returns a copy of the followed-team snapshots.
func (s *Store) FollowedTeams() []models.FollowedTeam {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFollowedTeams(s.followedTeams)
}

// TeamByID looks up a team in the global collection.
func (s *Store) TeamByID(id string) (models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.ID == id {
			return cloneTeam(t), nil
		}
	}
	return models.Team{}, ErrTeamNotFound
}

// CreateTeam creates a managed team with default attributes and inserts it
// into both the managed subset and the global collection as a single update.
func (s *Store) CreateTeam(name, coachName string) (models.Team, error) {
	name = strings.TrimSpace(name)
	coachName = strings.TrimSpace(coachName)
	if name == "" || coachName == "" {
		return models.Team{}, fmt.Errorf("%w: name and coach name are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UnixMilli()
	team := models.Team{
		ID:          fmt.Sprintf("team-%d", now),
		Name:        name,
		CoachName:   coachName,
		LogoURL:     fmt.Sprintf("https://picsum.photos/seed/%d/200/200", now),
		Level:       models.LevelBeginner,
		Rating:      1200,
		Rank:        0,
		Members:     []models.Member{},
		Description: "A brand new team. Looking forward to playing!",
		AgeCategory: models.AgeGeneral,
	}

	s.managedTeams = append(s.managedTeams, cloneTeam(team))
	s.teams = append(s.teams, cloneTeam(team))

	s.log.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("team created")
	return team, nil
}

// DeleteTeam removes a team from the managed subset only. The global
// collection and anything referencing the team are deliberately untouched.
// The caller is responsible for having confirmed the action with the user.
func (s *Store) DeleteTeam(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.managedTeams {
		if t.ID == id {
			s.managedTeams = append(s.managedTeams[:i], s.managedTeams[i+1:]...)
			if s.session.SelectedManagedTeamID == id {
				s.session.SelectedManagedTeamID = ""
				s.session.RequiresTeamSelection = true
			}
			s.log.Info().Str("team_id", id).Msg("team removed from managed subset")
			return nil
		}
	}
	return ErrTeamNotFound
}

// UpdateManagedTeam propagates the full updated record into the managed
// subset, the global collection, and any followed-team snapshot sharing the
// id, preserving the snapshot's IsFavorite flag. This three-way propagation
// is the central consistency rule of the store.
func (s *Store) UpdateManagedTeam(updated models.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i, t := range s.managedTeams {
		if t.ID == updated.ID {
			s.managedTeams[i] = cloneTeam(updated)
			found = true
			break
		}
	}
	if !found {
		return ErrTeamNotFound
	}

	for i, t := range s.teams {
		if t.ID == updated.ID {
			s.teams[i] = cloneTeam(updated)
			break
		}
	}
	for i, ft := range s.followedTeams {
		if ft.ID == updated.ID {
			s.followedTeams[i] = models.FollowedTeam{Team: cloneTeam(updated), IsFavorite: ft.IsFavorite}
			break
		}
	}

	s.log.Debug().Str("team_id", updated.ID).Msg("managed team updated")
	return nil
}

// UpdateTeams applies a batch update to the global collection, then
// re-derives the managed subset by looking each managed id up in the updated
// collection, falling back to the previous value if the id disappeared.
func (s *Store) UpdateTeams(update func(teams []models.Team) []models.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = cloneTeams(update(cloneTeams(s.teams)))

	for i, mt := range s.managedTeams {
		for _, t := range s.teams {
			if t.ID == mt.ID {
				s.managedTeams[i] = cloneTeam(t)
				break
			}
		}
	}
}

// ToggleFollowTeam unfollows an already-followed team, or inserts a snapshot
// derived from the authoritative global record (falling back to the passed-in
// team when absent) with IsFavorite off.
func (s *Store) ToggleFollowTeam(team models.Team) (following bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, ft := range s.followedTeams {
		if ft.ID == team.ID {
			s.followedTeams = append(s.followedTeams[:i], s.followedTeams[i+1:]...)
			s.log.Debug().Str("team_id", team.ID).Msg("team unfollowed")
			return false
		}
	}

	snapshot := team
	for _, t := range s.teams {
		if t.ID == team.ID {
			snapshot = t
			break
		}
	}
	s.followedTeams = append(s.followedTeams, models.FollowedTeam{Team: cloneTeam(snapshot)})
	s.log.Debug().Str("team_id", team.ID).Msg("team followed")
	return true
}

// ToggleFavoriteTeam flips IsFavorite on the matching followed entry. Not
// being followed is not an error; the call is a no-op then.
func (s *Store) ToggleFavoriteTeam(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.followedTeams {
		if s.followedTeams[i].ID == id {
			s.followedTeams[i].IsFavorite = !s.followedTeams[i].IsFavorite
			return
		}
	}
}
