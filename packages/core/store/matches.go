package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

// Match and thread order is re-derived after every mutation that could change
// it, so read order is a pure function of current data, never of insertion
// history. Dates are normalized YYYY-MM-DD strings, which makes lexical and
// chronological descending order coincide.
func sortMatchesByDateDesc(ms []models.Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Date > ms[j].Date
	})
}

// Matches returns a copy of the match collection, date-descending.
func (s *Store) Matches() []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMatches(s.matches)
}

// MatchByID looks a match up by id.
func (s *Store) MatchByID(id string) (models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.matches {
		if m.ID == id {
			return cloneMatch(m), nil
		}
	}
	return models.Match{}, ErrMatchNotFound
}

// MatchesForTeam returns the matches the team takes part in.
func (s *Store) MatchesForTeam(teamID string) []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Match
	for _, m := range s.matches {
		if m.HasTeam(teamID) {
			out = append(out, cloneMatch(m))
		}
	}
	return out
}

// UpdateMatches applies a batch update to the match collection and restores
// date ordering afterwards.
func (s *Store) UpdateMatches(update func(matches []models.Match) []models.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = cloneMatches(update(cloneMatches(s.matches)))
	sortMatchesByDateDesc(s.matches)
}

// UpdateMatchStatus moves a match through its lifecycle.
func (s *Store) UpdateMatchStatus(id string, status models.MatchStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.matches {
		if s.matches[i].ID == id {
			s.matches[i].Status = status
			s.log.Debug().Str("match_id", id).Str("status", string(status)).Msg("match status updated")
			return nil
		}
	}
	return ErrMatchNotFound
}

// UpdateGuidelineForMatch overwrites the match's guideline and mirrors the
// guideline's event name, date, and start time into the match's location,
// date, and time. The mirror is what keeps list screens consistent with the
// guideline without re-reading it.
func (s *Store) UpdateGuidelineForMatch(matchID string, guideline models.TournamentInfoFormData) error {
	if strings.TrimSpace(guideline.EventName) == "" {
		return fmt.Errorf("%w: event name is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.matches {
		if s.matches[i].ID == matchID {
			info := guideline
			s.matches[i].DetailedTournamentInfo = &info
			s.matches[i].Location = guideline.EventName
			s.matches[i].Date = guideline.EventDateTime.EventDate
			s.matches[i].Time = guideline.EventDateTime.StartTime
			sortMatchesByDateDesc(s.matches)
			s.log.Info().Str("match_id", matchID).Str("event", guideline.EventName).Msg("guideline updated")
			return nil
		}
	}
	return ErrMatchNotFound
}

// SaveGuidelineAsNewMatch promotes a guideline into a fresh tournament match
// at the head of the collection, then re-sorts by date descending.
func (s *Store) SaveGuidelineAsNewMatch(ownerTeamID string, guideline models.TournamentInfoFormData) (models.Match, error) {
	if strings.TrimSpace(guideline.EventName) == "" {
		return models.Match{}, fmt.Errorf("%w: event name is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	date := guideline.EventDateTime.EventDate
	if date == "" {
		date = now.Format("2006-01-02")
	}
	t := guideline.EventDateTime.StartTime
	if t == "" {
		t = "09:00"
	}

	info := guideline
	match := models.Match{
		ID:                     fmt.Sprintf("match-%d", now.UnixMilli()),
		Type:                   models.MatchTypeTournament,
		Status:                 models.MatchStatusPreparation,
		OurTeamID:              ownerTeamID,
		Date:                   date,
		Time:                   t,
		Location:               guideline.EventName,
		DetailedTournamentInfo: &info,
	}

	s.matches = append([]models.Match{cloneMatch(match)}, s.matches...)
	sortMatchesByDateDesc(s.matches)

	s.log.Info().Str("match_id", match.ID).Str("event", guideline.EventName).Msg("guideline saved as new match")
	return match, nil
}

// PastGuidelines lists matches that already carry a saved guideline.
func (s *Store) PastGuidelines() []models.PastGuideline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.PastGuideline
	for _, m := range s.matches {
		if m.DetailedTournamentInfo != nil && !m.DetailedTournamentInfo.Empty() {
			out = append(out, models.PastGuideline{MatchID: m.ID, EventName: m.DetailedTournamentInfo.EventName})
		}
	}
	return out
}
