package models

type MatchType string

const (
	MatchTypeTraining   MatchType = "training"
	MatchTypeTournament MatchType = "tournament"
)

type MatchStatus string

const (
	MatchStatusPreparation MatchStatus = "preparation"
	MatchStatusScheduled   MatchStatus = "scheduled"
	MatchStatusInProgress  MatchStatus = "in_progress"
	MatchStatusCompleted   MatchStatus = "completed"
	MatchStatusCancelled   MatchStatus = "cancelled"
)

// Final returns true for statuses the auto-completion job must not touch.
func (s MatchStatus) Final() bool {
	return s == MatchStatusCompleted || s == MatchStatusCancelled
}

// MatchParticipant is one entry of a multi-team event.
type MatchParticipant struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
}

// MatchScoringEvent records a single goal inside a match or sub-match.
type MatchScoringEvent struct {
	TeamID     string `json:"team_id"`
	SubMatchID string `json:"sub_match_id,omitempty"`
	Period     string `json:"period"`
	Minute     int    `json:"minute"`
	ScorerName string `json:"scorer_name"`
	AssistName string `json:"assist_name,omitempty"`
}

type Match struct {
	ID               string      `json:"id"`
	Type             MatchType   `json:"type"`
	Status           MatchStatus `json:"status"`
	OurTeamID        string      `json:"our_team_id"`
	OpponentTeamID   string      `json:"opponent_team_id,omitempty"`
	OpponentTeamName string      `json:"opponent_team_name,omitempty"`
	Date             string      `json:"date"` // YYYY-MM-DD
	Time             string      `json:"time"` // HH:MM
	Location         string      `json:"location"`

	Participants []MatchParticipant `json:"participants,omitempty"`

	BracketData           *TournamentBracket      `json:"bracket_data,omitempty"`
	LeagueCompetitionData *LeagueCompetitionData  `json:"league_competition_data,omitempty"`
	DetailedTournamentInfo *TournamentInfoFormData `json:"detailed_tournament_info,omitempty"`
	ScoringEvents         []MatchScoringEvent     `json:"scoring_events,omitempty"`
}

// HasTeam reports whether the given team takes part in the match, either as
// the owning side, the training opponent, or a listed participant.
func (m Match) HasTeam(teamID string) bool {
	if m.OurTeamID == teamID || m.OpponentTeamID == teamID {
		return true
	}
	for _, p := range m.Participants {
		if p.TeamID == teamID {
			return true
		}
	}
	return false
}

// DTOs

type UpdateMatchStatusRequest struct {
	Status MatchStatus `json:"status" binding:"required,oneof=preparation scheduled in_progress completed cancelled"`
}

// ScoringLogEntry is one row of a team's goal log, with the opponent resolved
// from the match or sub-match the event belongs to.
type ScoringLogEntry struct {
	MatchID      string            `json:"match_id"`
	MatchDate    string            `json:"match_date"`
	Location     string            `json:"location"`
	SubMatchID   string            `json:"sub_match_id,omitempty"`
	OpponentName string            `json:"opponent_name"`
	Event        MatchScoringEvent `json:"event"`
}

// PastGuideline identifies a match that already carries a saved guideline.
type PastGuideline struct {
	MatchID   string `json:"match_id"`
	EventName string `json:"event_name"`
}
