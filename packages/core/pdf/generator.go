// Package pdf renders a tournament guideline (plus optional bracket/league
// fixture data) into a self-contained HTML document for preview and printing,
// and into a plain-text digest for sharing into chat. Pure transformation:
// strings in, string out, no I/O.
package pdf

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

// esc escapes user text for embedding in HTML, substituting "-" for blanks.
func esc(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "-"
	}
	return template.HTMLEscapeString(s)
}

// pre escapes multi-line user text and converts newlines to line breaks.
func pre(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br />")
	if escaped == "" {
		escaped = "-"
	}
	return template.HTML(`<div class="pre-wrap">` + escaped + `</div>`)
}

func field(label, value string) template.HTML {
	return template.HTML(fmt.Sprintf("<p><strong>%s:</strong> %s</p>", template.HTMLEscapeString(label), esc(value)))
}

// BuildDocument assembles the full standalone HTML document with inline
// styles. Bracket and league fixtures, when present, are appended as
// page-break-separated sections.
func BuildDocument(d models.TournamentInfoFormData, bracket *models.TournamentBracket, league *models.LeagueTable) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html><html><head><meta charset="UTF-8"><title>Tournament Guideline Preview</title><style>`)
	b.WriteString(documentStyles)
	b.WriteString(`</style></head><body>`)

	fmt.Fprintf(&b, "<h1>%s</h1>", esc(d.EventName))
	b.WriteString(`<div class="grid-container">`)

	section(&b, "Overview", false,
		field("Organizer", d.OrganizerInfo.OrganizationName),
		field("Contact", d.OrganizerInfo.ContactPersonName))
	section(&b, "Date & Venue", false,
		field("Date", d.EventDateTime.EventDate),
		template.HTML(fmt.Sprintf("<p><strong>Time:</strong> %s &ndash; %s</p>", esc(d.EventDateTime.StartTime), esc(d.EventDateTime.EndTime))),
		field("Entry", d.EventDateTime.EntryTime),
		field("Facility", d.VenueInfo.FacilityName),
		field("Address", d.VenueInfo.Address))
	section(&b, "Participating Teams", true, pre(d.ParticipatingTeams))
	section(&b, "Eligibility", false,
		field("Grade level", d.ParticipantEligibility.GradeLevel),
		field("Age limit", d.ParticipantEligibility.AgeLimit))
	section(&b, "Competition", false,
		template.HTML(fmt.Sprintf("<p><strong>Court:</strong> %s (%s courts)</p>", esc(d.CourtInfo.Size), esc(d.CourtInfo.NumberOfCourts))),
		field("Players per team", d.MatchFormat.PlayersPerTeam),
		field("Goals", d.MatchFormat.GoalSpecifications),
		field("Ball", d.BallInfo),
		field("Referees", d.RefereeSystem))
	section(&b, "Competition Rules", true, pre(d.CompetitionRules))
	section(&b, "Match Schedule", false,
		field("Ceremonies", d.MatchSchedule.CeremonyInfo),
		field("Water breaks", d.MatchSchedule.WaterBreakInfo))
	section(&b, "Ranking Method", false,
		field("Points", d.RankingMethod.PointsRule),
		field("Tie-breaker", d.RankingMethod.TieBreakerRule),
		template.HTML("<p><strong>Details:</strong></p>"),
		pre(d.RankingMethod.LeagueSystemDescription))
	section(&b, "Awards", false,
		field("Winner", d.Awards.Winner),
		field("Runner-up", d.Awards.RunnerUp),
		field("Third place", d.Awards.ThirdPlace),
		field("Individual awards", d.Awards.IndividualAwards))
	section(&b, "Participation Fee", false,
		field("Amount", d.ParticipationFee.Amount),
		field("Payment", d.ParticipationFee.PaymentMethod),
		template.HTML("<p><strong>Notes:</strong></p>"),
		pre(d.ParticipationFee.PaymentNotes))
	section(&b, "General Notes", true,
		field("Parking", d.GeneralNotes.ParkingInfo),
		field("Spectator area", d.GeneralNotes.SpectatorArea),
		field("Cancellation", d.GeneralNotes.CancellationPolicy))
	section(&b, "Emergency Contact", true,
		field("Person", d.ContactInfo.PersonName),
		field("Phone", d.ContactInfo.PhoneNumber))

	b.WriteString(`</div>`)

	fixtures := buildFixtureHTML(bracket, league)
	if fixtures != "" {
		b.WriteString(`<div class="page-break"></div>`)
		b.WriteString(fixtures)
	}

	b.WriteString(`</body></html>`)
	return b.String()
}

func section(b *strings.Builder, title string, fullWidth bool, body ...template.HTML) {
	if fullWidth {
		b.WriteString(`<section class="full-width">`)
	} else {
		b.WriteString(`<section>`)
	}
	fmt.Fprintf(b, "<h2>%s</h2>", template.HTMLEscapeString(title))
	for _, part := range body {
		b.WriteString(string(part))
	}
	b.WriteString(`</section>`)
}

const documentStyles = `
body { font-family: 'Helvetica Neue', 'Helvetica', 'Arial', sans-serif; line-height: 1.6; color: #333; margin: 20px; background-color: #fff; }
h1 { text-align: center; font-size: 2em; margin-bottom: 1.5em; border-bottom: 2px solid #3498db; padding-bottom: 0.5em; color: #2c3e50; }
h2 { font-size: 1.4em; color: #2980b9; border-bottom: 1px solid #bdc3c7; padding-bottom: 0.3em; margin-top: 1.5em; margin-bottom: 0.8em; }
.grid-container { display: grid; grid-template-columns: 1fr 1fr; gap: 20px 40px; }
section { padding: 10px; border-radius: 5px; break-inside: avoid; }
section.full-width { grid-column: 1 / -1; }
p { margin: 0.4em 0; }
strong { color: #34495e; min-width: 90px; display: inline-block; }
.pre-wrap { white-space: pre-wrap; word-wrap: break-word; background-color: #f9f9f9; padding: 10px; border-radius: 4px; border: 1px solid #eee; margin-top: 0.5em; }
.page-break { page-break-before: always; }
.fixture-title { font-size: 1.8em; color: #2c3e50; text-align: center; margin-top: 1.5em; margin-bottom: 1em; }
.bracket-container { display: flex; flex-wrap: wrap; gap: 10px; justify-content: center; }
.bracket-round { display: flex; flex-direction: column; align-items: center; margin: 0 10px; }
.bracket-round-title { font-weight: bold; text-align: center; margin-bottom: 15px; font-size: 1.1em; }
.bracket-match { background-color: #f0f0f0; border: 1px solid #ccc; border-radius: 4px; padding: 8px; margin-bottom: 20px; width: 200px; }
.match-teams { display: flex; justify-content: space-between; padding: 3px 0; border-bottom: 1px solid #ddd; }
.match-teams:last-child { border-bottom: none; }
.team { flex-grow: 1; }
.score { font-weight: bold; min-width: 25px; text-align: right; }
.league-group-title { font-size: 1.3em; font-weight: bold; margin-top: 1em; margin-bottom: 0.5em; }
.league-table { width: 100%; border-collapse: collapse; font-size: 12px; margin-top: 10px; }
.league-table th, .league-table td { border: 1px solid #ccc; padding: 6px 8px; text-align: center; }
.league-table th { background-color: #e9ecef; }
.league-table td.team-name-cell { text-align: left; }
@media print { body { margin: 0; -webkit-print-color-adjust: exact; print-color-adjust: exact; } .grid-container { display: block; } section { padding: 0; margin-bottom: 1em; } h1, h2 { page-break-after: avoid; } }
`
