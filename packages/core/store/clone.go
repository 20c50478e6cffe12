package store

import "github.com/d-exit/team-management-app.ver4/packages/core/models"

// Collections are handed out and accepted by value. These helpers deep-copy
// the entities whose nested slices or pointers would otherwise leak shared
// mutable state across the store boundary.

func cloneTeam(t models.Team) models.Team {
	c := t
	c.Members = append([]models.Member(nil), t.Members...)
	return c
}

func cloneTeams(ts []models.Team) []models.Team {
	out := make([]models.Team, len(ts))
	for i, t := range ts {
		out[i] = cloneTeam(t)
	}
	return out
}

func cloneFollowedTeams(ts []models.FollowedTeam) []models.FollowedTeam {
	out := make([]models.FollowedTeam, len(ts))
	for i, t := range ts {
		out[i] = models.FollowedTeam{Team: cloneTeam(t.Team), IsFavorite: t.IsFavorite}
	}
	return out
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBracketTeamPtr(p *models.BracketTeam) *models.BracketTeam {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBracket(b *models.TournamentBracket) *models.TournamentBracket {
	if b == nil {
		return nil
	}
	c := models.TournamentBracket{Name: b.Name}
	c.Teams = append([]models.BracketTeam(nil), b.Teams...)
	c.Rounds = make([]models.BracketRound, len(b.Rounds))
	for i, r := range b.Rounds {
		round := models.BracketRound{Name: r.Name, Matches: make([]models.BracketMatch, len(r.Matches))}
		for j, m := range r.Matches {
			round.Matches[j] = models.BracketMatch{
				ID:       m.ID,
				Team1:    cloneBracketTeamPtr(m.Team1),
				Team2:    cloneBracketTeamPtr(m.Team2),
				Score1:   cloneIntPtr(m.Score1),
				Score2:   cloneIntPtr(m.Score2),
				WinnerID: m.WinnerID,
			}
		}
		c.Rounds[i] = round
	}
	return &c
}

func cloneLeagueTable(t *models.LeagueTable) *models.LeagueTable {
	if t == nil {
		return nil
	}
	c := models.LeagueTable{Groups: make([]models.LeagueGroup, len(t.Groups))}
	for i, g := range t.Groups {
		group := models.LeagueGroup{Name: g.Name}
		group.Standings = append([]models.LeagueStanding(nil), g.Standings...)
		group.Matches = make([]models.LeagueMatch, len(g.Matches))
		for j, m := range g.Matches {
			group.Matches[j] = models.LeagueMatch{
				ID:      m.ID,
				Team1ID: m.Team1ID,
				Team2ID: m.Team2ID,
				Score1:  cloneIntPtr(m.Score1),
				Score2:  cloneIntPtr(m.Score2),
				Played:  m.Played,
			}
		}
		c.Groups[i] = group
	}
	return &c
}

func cloneMatch(m models.Match) models.Match {
	c := m
	c.Participants = append([]models.MatchParticipant(nil), m.Participants...)
	c.ScoringEvents = append([]models.MatchScoringEvent(nil), m.ScoringEvents...)
	c.BracketData = cloneBracket(m.BracketData)
	if m.LeagueCompetitionData != nil {
		lc := models.LeagueCompetitionData{
			PreliminaryRound:     *cloneLeagueTable(&m.LeagueCompetitionData.PreliminaryRound),
			FinalRoundLeague:     cloneLeagueTable(m.LeagueCompetitionData.FinalRoundLeague),
			FinalRoundTournament: cloneBracket(m.LeagueCompetitionData.FinalRoundTournament),
		}
		c.LeagueCompetitionData = &lc
	}
	if m.DetailedTournamentInfo != nil {
		info := *m.DetailedTournamentInfo
		c.DetailedTournamentInfo = &info
	}
	return c
}

func cloneMatches(ms []models.Match) []models.Match {
	out := make([]models.Match, len(ms))
	for i, m := range ms {
		out[i] = cloneMatch(m)
	}
	return out
}

func cloneThread(t models.ChatThread) models.ChatThread {
	c := t
	c.Participants = append([]models.ChatParticipant(nil), t.Participants...)
	if t.LastMessage != nil {
		msg := *t.LastMessage
		c.LastMessage = &msg
	}
	return c
}

func cloneThreads(ts []models.ChatThread) []models.ChatThread {
	out := make([]models.ChatThread, len(ts))
	for i, t := range ts {
		out[i] = cloneThread(t)
	}
	return out
}
