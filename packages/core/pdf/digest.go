package pdf

import (
	"fmt"
	"strings"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

// BuildChatDigest condenses a guideline (and, if present, its fixtures) into
// a human-readable plain-text summary suitable as a chat message body. Empty
// fields are skipped rather than rendered as placeholders; chat space is
// tight.
func BuildChatDigest(d models.TournamentInfoFormData, bracket *models.TournamentBracket, league *models.LeagueTable) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[Tournament Guideline] %s\n", strings.TrimSpace(d.EventName))

	line := func(label, value string) {
		if v := strings.TrimSpace(value); v != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, v)
		}
	}

	line("Organizer", d.OrganizerInfo.OrganizationName)
	line("Date", d.EventDateTime.EventDate)
	if d.EventDateTime.StartTime != "" {
		t := d.EventDateTime.StartTime
		if d.EventDateTime.EndTime != "" {
			t += " - " + d.EventDateTime.EndTime
		}
		line("Time", t)
	}
	line("Venue", d.VenueInfo.FacilityName)
	line("Address", d.VenueInfo.Address)
	line("Eligibility", strings.TrimSpace(strings.Join(nonEmpty(
		d.ParticipantEligibility.GradeLevel, d.ParticipantEligibility.AgeLimit), " / ")))
	line("Format", d.MatchFormat.PlayersPerTeam)
	line("Fee", d.ParticipationFee.Amount)
	line("Contact", strings.TrimSpace(strings.Join(nonEmpty(
		d.ContactInfo.PersonName, d.ContactInfo.PhoneNumber), " ")))

	if league != nil && leagueHasTeams(league) {
		b.WriteString("\n-- Standings --\n")
		for _, group := range league.Groups {
			fmt.Fprintf(&b, "%s\n", group.Name)
			for i, row := range group.Standings {
				fmt.Fprintf(&b, "  %d. %s (%dpt, %+d)\n", i+1, row.Team.Name, row.Points, row.GoalsFor-row.GoalsAgainst)
			}
		}
	}

	if bracket != nil {
		b.WriteString("\n-- Bracket --\n")
		for _, round := range bracket.Rounds {
			fmt.Fprintf(&b, "%s\n", round.Name)
			for _, m := range round.Matches {
				fmt.Fprintf(&b, "  %s %s - %s %s\n",
					digestTeamName(m.Team1), scoreCellText(m.Score1),
					scoreCellText(m.Score2), digestTeamName(m.Team2))
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func digestTeamName(t *models.BracketTeam) string {
	if t == nil {
		return "TBD"
	}
	return t.Name
}

func scoreCellText(score *int) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *score)
}
