package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

func TestScoringLogResolvesOpponents(t *testing.T) {
	st, _ := newTestStore(t)
	st.Seed(
		[]models.Team{
			{ID: "team-1", Name: "FC Striker Kids"},
			{ID: "team-3", Name: "Green Valley SC"},
			{ID: "team-4", Name: "Red Comets"},
		},
		nil, nil,
		[]models.Match{
			{
				ID: "m-training", Type: models.MatchTypeTraining, Date: "2026-07-20",
				OurTeamID: "team-1", OpponentTeamID: "team-3", OpponentTeamName: "Green Valley SC",
				Location: "Riverside Court",
				ScoringEvents: []models.MatchScoringEvent{
					{TeamID: "team-1", Period: "first_half", Minute: 12, ScorerName: "Riku Sato"},
					{TeamID: "team-3", Period: "second_half", Minute: 40, ScorerName: "Kota Abe"},
				},
			},
			{
				ID: "m-league", Type: models.MatchTypeTournament, Date: "2026-08-10",
				OurTeamID: "team-1", Location: "Autumn Festival",
				LeagueCompetitionData: &models.LeagueCompetitionData{
					PreliminaryRound: models.LeagueTable{Groups: []models.LeagueGroup{{
						Name: "Group A",
						Standings: []models.LeagueStanding{
							{Team: models.BracketTeam{ID: "team-1", Name: "FC Striker Kids"}},
							{Team: models.BracketTeam{ID: "team-4", Name: "Red Comets"}},
						},
						Matches: []models.LeagueMatch{{ID: "ga-1", Team1ID: "team-1", Team2ID: "team-4", Played: true}},
					}}},
				},
				ScoringEvents: []models.MatchScoringEvent{
					{TeamID: "team-1", SubMatchID: "ga-1", Period: "first_half", Minute: 5, ScorerName: "Haruto Suzuki"},
				},
			},
		},
		nil, nil, nil, nil,
	)

	svc := NewMatchService(st, zerolog.Nop())
	log := svc.ScoringLog("team-1")
	require.Len(t, log, 2)

	// Newest match first.
	assert.Equal(t, "m-league", log[0].MatchID)
	assert.Equal(t, "Red Comets", log[0].OpponentName)
	assert.Equal(t, "ga-1", log[0].SubMatchID)

	assert.Equal(t, "m-training", log[1].MatchID)
	assert.Equal(t, "Green Valley SC", log[1].OpponentName)
	assert.Equal(t, "Riku Sato", log[1].Event.ScorerName)
}

func TestScoringLogEmptyForUninvolvedTeam(t *testing.T) {
	st, _ := newTestStore(t)
	seedUniverse(t, st)

	svc := NewMatchService(st, zerolog.Nop())
	assert.Empty(t, svc.ScoringLog("team-2"))
}
