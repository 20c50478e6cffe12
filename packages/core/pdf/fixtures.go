package pdf

import (
	"fmt"
	"strings"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

// buildFixtureHTML renders the league tables first, then the bracket, with a
// page break between them when both are present.
func buildFixtureHTML(bracket *models.TournamentBracket, league *models.LeagueTable) string {
	var parts []string
	if league != nil && leagueHasTeams(league) {
		parts = append(parts, leagueHTML(league))
	}
	if bracket != nil {
		parts = append(parts, bracketHTML(bracket))
	}
	return strings.Join(parts, `<div class="page-break"></div>`)
}

func leagueHasTeams(league *models.LeagueTable) bool {
	for _, g := range league.Groups {
		if len(g.Standings) > 0 {
			return true
		}
	}
	return false
}

func scoreCell(score *int) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *score)
}

func bracketTeamName(t *models.BracketTeam) string {
	if t == nil {
		return "TBD"
	}
	return esc(t.Name)
}

func bracketHTML(bracket *models.TournamentBracket) string {
	var b strings.Builder
	title := bracket.Name
	if title == "" {
		title = "Knockout Bracket"
	}
	fmt.Fprintf(&b, `<div class="fixture-title">%s</div>`, esc(title))
	b.WriteString(`<div class="bracket-container">`)
	for _, round := range bracket.Rounds {
		b.WriteString(`<div class="bracket-round">`)
		fmt.Fprintf(&b, `<div class="bracket-round-title">%s</div>`, esc(round.Name))
		for _, m := range round.Matches {
			b.WriteString(`<div class="bracket-match">`)
			fmt.Fprintf(&b, `<div class="match-teams"><span class="team">%s</span><span class="score">%s</span></div>`,
				bracketTeamName(m.Team1), scoreCell(m.Score1))
			fmt.Fprintf(&b, `<div class="match-teams"><span class="team">%s</span><span class="score">%s</span></div>`,
				bracketTeamName(m.Team2), scoreCell(m.Score2))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func leagueHTML(league *models.LeagueTable) string {
	var b strings.Builder
	b.WriteString(`<div class="fixture-title">League Standings</div>`)
	for _, group := range league.Groups {
		fmt.Fprintf(&b, `<div class="league-group-title">%s</div>`, esc(group.Name))
		b.WriteString(`<table class="league-table"><tr><th>Team</th><th>P</th><th>W</th><th>D</th><th>L</th><th>GF</th><th>GA</th><th>Pts</th></tr>`)
		for _, row := range group.Standings {
			fmt.Fprintf(&b, `<tr><td class="team-name-cell">%s</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td></tr>`,
				esc(row.Team.Name), row.Played, row.Wins, row.Draws, row.Losses, row.GoalsFor, row.GoalsAgainst, row.Points)
		}
		b.WriteString(`</table>`)
	}
	return b.String()
}
