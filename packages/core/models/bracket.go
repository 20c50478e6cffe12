package models

// BracketTeam is the minimal team reference carried inside fixture data.
type BracketTeam struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BracketMatch is a single tie in a knockout round. Team pointers are nil
// until the previous round has produced them.
type BracketMatch struct {
	ID       string       `json:"id"`
	Team1    *BracketTeam `json:"team1,omitempty"`
	Team2    *BracketTeam `json:"team2,omitempty"`
	Score1   *int         `json:"score1,omitempty"`
	Score2   *int         `json:"score2,omitempty"`
	WinnerID string       `json:"winner_id,omitempty"`
}

type BracketRound struct {
	Name    string         `json:"name"`
	Matches []BracketMatch `json:"matches"`
}

// TournamentBracket is a single-elimination tree, first round first.
type TournamentBracket struct {
	Name   string         `json:"name,omitempty"`
	Teams  []BracketTeam  `json:"teams"`
	Rounds []BracketRound `json:"rounds"`
}

// LeagueStanding is one row of a round-robin group table. Ranking and
// tie-break rules are free text in the guideline, so standings carry raw
// tallies only.
type LeagueStanding struct {
	Team         BracketTeam `json:"team"`
	Played       int         `json:"played"`
	Wins         int         `json:"wins"`
	Draws        int         `json:"draws"`
	Losses       int         `json:"losses"`
	GoalsFor     int         `json:"goals_for"`
	GoalsAgainst int         `json:"goals_against"`
	Points       int         `json:"points"`
}

type LeagueMatch struct {
	ID      string `json:"id"`
	Team1ID string `json:"team1_id"`
	Team2ID string `json:"team2_id"`
	Score1  *int   `json:"score1,omitempty"`
	Score2  *int   `json:"score2,omitempty"`
	Played  bool   `json:"played"`
}

type LeagueGroup struct {
	Name      string           `json:"name"`
	Standings []LeagueStanding `json:"standings"`
	Matches   []LeagueMatch    `json:"matches"`
}

type LeagueTable struct {
	Groups []LeagueGroup `json:"groups"`
}

// LeagueCompetitionData describes a preliminary round-robin stage feeding an
// optional final league or final knockout bracket.
type LeagueCompetitionData struct {
	PreliminaryRound     LeagueTable        `json:"preliminary_round"`
	FinalRoundLeague     *LeagueTable       `json:"final_round_league,omitempty"`
	FinalRoundTournament *TournamentBracket `json:"final_round_tournament,omitempty"`
}
