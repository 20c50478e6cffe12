package services

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

type MatchService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewMatchService(st *store.Store, log zerolog.Logger) *MatchService {
	return &MatchService{
		store: st,
		log:   log.With().Str("service", "match").Logger(),
	}
}

func (s *MatchService) AllMatches() []models.Match {
	return s.store.Matches()
}

func (s *MatchService) GetMatch(id string) (models.Match, error) {
	return s.store.MatchByID(id)
}

func (s *MatchService) UpdateStatus(id string, status models.MatchStatus) error {
	return s.store.UpdateMatchStatus(id, status)
}

// ScoringLog collects every goal the team scored across its matches, with
// the opponent resolved per match or sub-match, newest match first.
func (s *MatchService) ScoringLog(teamID string) []models.ScoringLogEntry {
	teams := s.store.Teams()
	teamName := func(id string) string {
		for _, t := range teams {
			if t.ID == id {
				return t.Name
			}
		}
		return "unknown"
	}

	entries := []models.ScoringLogEntry{}
	for _, match := range s.store.Matches() {
		if !matchInvolvesTeam(match, teamID) {
			continue
		}
		for _, event := range match.ScoringEvents {
			if event.TeamID != teamID {
				continue
			}
			entries = append(entries, models.ScoringLogEntry{
				MatchID:      match.ID,
				MatchDate:    match.Date,
				Location:     match.Location,
				SubMatchID:   event.SubMatchID,
				OpponentName: resolveOpponent(match, event, teamID, teamName),
				Event:        event,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MatchDate > entries[j].MatchDate
	})
	return entries
}

// matchInvolvesTeam also checks fixture data, where a team can appear without
// being the match owner or a listed participant.
func matchInvolvesTeam(match models.Match, teamID string) bool {
	if match.HasTeam(teamID) {
		return true
	}
	if match.BracketData != nil {
		for _, t := range match.BracketData.Teams {
			if t.ID == teamID {
				return true
			}
		}
	}
	if match.LeagueCompetitionData != nil {
		for _, g := range match.LeagueCompetitionData.PreliminaryRound.Groups {
			for _, row := range g.Standings {
				if row.Team.ID == teamID {
					return true
				}
			}
		}
	}
	return false
}

func resolveOpponent(match models.Match, event models.MatchScoringEvent, teamID string, teamName func(string) string) string {
	if event.SubMatchID == "" {
		// Training match: the other side of the fixture.
		if match.OpponentTeamName != "" {
			return match.OpponentTeamName
		}
		opponentID := match.OpponentTeamID
		if match.OurTeamID != teamID {
			opponentID = match.OurTeamID
		}
		if opponentID == "" {
			return "unknown"
		}
		return teamName(opponentID)
	}

	if lm := findLeagueMatch(match, event.SubMatchID); lm != nil {
		opponentID := lm.Team1ID
		if lm.Team1ID == teamID {
			opponentID = lm.Team2ID
		}
		return teamName(opponentID)
	}
	if bm := findBracketMatch(match, event.SubMatchID); bm != nil {
		if bm.Team1 == nil || bm.Team2 == nil {
			return "TBD"
		}
		if bm.Team1.ID == teamID {
			return bm.Team2.Name
		}
		return bm.Team1.Name
	}
	return "unknown"
}

func findLeagueMatch(match models.Match, subMatchID string) *models.LeagueMatch {
	if match.LeagueCompetitionData == nil {
		return nil
	}
	tables := []*models.LeagueTable{&match.LeagueCompetitionData.PreliminaryRound}
	if match.LeagueCompetitionData.FinalRoundLeague != nil {
		tables = append(tables, match.LeagueCompetitionData.FinalRoundLeague)
	}
	for _, table := range tables {
		for gi := range table.Groups {
			for mi := range table.Groups[gi].Matches {
				if table.Groups[gi].Matches[mi].ID == subMatchID {
					return &table.Groups[gi].Matches[mi]
				}
			}
		}
	}
	return nil
}

func findBracketMatch(match models.Match, subMatchID string) *models.BracketMatch {
	brackets := []*models.TournamentBracket{}
	if match.BracketData != nil {
		brackets = append(brackets, match.BracketData)
	}
	if match.LeagueCompetitionData != nil && match.LeagueCompetitionData.FinalRoundTournament != nil {
		brackets = append(brackets, match.LeagueCompetitionData.FinalRoundTournament)
	}
	for _, bracket := range brackets {
		for ri := range bracket.Rounds {
			for mi := range bracket.Rounds[ri].Matches {
				if bracket.Rounds[ri].Matches[mi].ID == subMatchID {
					return &bracket.Rounds[ri].Matches[mi]
				}
			}
		}
	}
	return nil
}
