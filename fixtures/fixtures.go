// Package fixtures seeds the store with a realistic club universe so the
// application is usable out of the box. Named entities come from an embedded
// YAML profile; filler teams are generated deterministically.
package fixtures

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

//go:embed seeds.yaml
var seedsYAML []byte

type seedFile struct {
	Profiles map[string]struct {
		FillerTeams int `yaml:"filler_teams"`
	} `yaml:"profiles"`
	Teams []struct {
		ID                 string `yaml:"id"`
		Name               string `yaml:"name"`
		CoachName          string `yaml:"coach_name"`
		Level              string `yaml:"level"`
		Rating             int    `yaml:"rating"`
		Prefecture         string `yaml:"prefecture"`
		City               string `yaml:"city"`
		AgeCategory        string `yaml:"age_category"`
		AvailableSlotsText string `yaml:"available_slots_text"`
		Description        string `yaml:"description"`
		Managed            bool   `yaml:"managed"`
		Followed           bool   `yaml:"followed"`
		Favorite           bool   `yaml:"favorite"`
		Members            []struct {
			Name         string `yaml:"name"`
			JerseyNumber int    `yaml:"jersey_number"`
			Position     string `yaml:"position"`
		} `yaml:"members"`
	} `yaml:"teams"`
	Venues []struct {
		ID           string `yaml:"id"`
		Name         string `yaml:"name"`
		Address      string `yaml:"address"`
		Prefecture   string `yaml:"prefecture"`
		City         string `yaml:"city"`
		CourtCount   int    `yaml:"court_count"`
		PricePerHour int    `yaml:"price_per_hour"`
		Availability string `yaml:"availability"`
		ImageURL     string `yaml:"image_url"`
	} `yaml:"venues"`
}

type Fixtures struct {
	store *store.Store
	log   zerolog.Logger
}

func NewFixtures(st *store.Store, log zerolog.Logger) *Fixtures {
	return &Fixtures{
		store: st,
		log:   log.With().Str("component", "fixtures").Logger(),
	}
}

// Load seeds the store from the named profile. "empty" leaves the store bare.
func (f *Fixtures) Load(profile string) error {
	if profile == "empty" {
		return nil
	}

	var file seedFile
	if err := yaml.Unmarshal(seedsYAML, &file); err != nil {
		return fmt.Errorf("failed to parse seed data: %w", err)
	}
	prof, ok := file.Profiles[profile]
	if !ok {
		return fmt.Errorf("unknown seed profile %q", profile)
	}

	var teams, managed []models.Team
	var followed []models.FollowedTeam

	for i, t := range file.Teams {
		team := models.Team{
			ID:                 t.ID,
			Name:               t.Name,
			CoachName:          t.CoachName,
			Level:              models.TeamLevel(t.Level),
			Rating:             t.Rating,
			Prefecture:         t.Prefecture,
			City:               t.City,
			AgeCategory:        models.AgeCategory(t.AgeCategory),
			AvailableSlotsText: t.AvailableSlotsText,
			Description:        t.Description,
		}
		for j, m := range t.Members {
			team.Members = append(team.Members, models.Member{
				ID:           fmt.Sprintf("member-%d-%d", i+1, j+1),
				Name:         m.Name,
				JerseyNumber: m.JerseyNumber,
				Position:     m.Position,
			})
		}
		teams = append(teams, team)
		if t.Managed {
			managed = append(managed, team)
		}
		if t.Followed {
			followed = append(followed, models.FollowedTeam{Team: team, IsFavorite: t.Favorite})
		}
	}

	teams = append(teams, fillerTeams(prof.FillerTeams, len(teams))...)

	venues := make([]models.Venue, 0, len(file.Venues))
	for _, v := range file.Venues {
		venues = append(venues, models.Venue{
			ID:           v.ID,
			Name:         v.Name,
			Address:      v.Address,
			Prefecture:   v.Prefecture,
			City:         v.City,
			CourtCount:   v.CourtCount,
			PricePerHour: v.PricePerHour,
			Availability: v.Availability,
			ImageURL:     v.ImageURL,
		})
	}

	matches := seedMatches()
	events := seedScheduleEvents()
	threads, messages := seedChat()

	f.store.Seed(teams, managed, followed, matches, venues, events, threads, messages)
	f.log.Info().Str("profile", profile).Int("teams", len(teams)).Msg("fixtures loaded")
	return nil
}

// fillerTeams pads the matchmaking universe. The faker is seeded so every
// start of the process produces the same teams.
func fillerTeams(count, offset int) []models.Team {
	faker := gofakeit.New(42)

	prefectures := []string{"Tokyo", "Kanagawa", "Saitama", "Chiba"}
	levels := []models.TeamLevel{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced}
	ages := []models.AgeCategory{models.AgeU10, models.AgeU12, models.AgeU15, models.AgeGeneral}
	slots := []string{models.AvailabilityOpen, models.AvailabilityWeekendsOnly, ""}

	teams := make([]models.Team, 0, count)
	for i := 0; i < count; i++ {
		teams = append(teams, models.Team{
			ID:                 fmt.Sprintf("team-%d", offset+i+1),
			Name:               faker.City() + " " + faker.PetName() + "s",
			CoachName:          faker.Name(),
			Level:              levels[i%len(levels)],
			Rating:             1100 + faker.Number(0, 700),
			Prefecture:         prefectures[i%len(prefectures)],
			City:               faker.City(),
			AgeCategory:        ages[i%len(ages)],
			AvailableSlotsText: slots[i%len(slots)],
		})
	}
	return teams
}

func seedMatches() []models.Match {
	spring := fullGuideline("Spring Cup U-12", "2026-04-12", "09:00")

	return []models.Match{
		{
			ID:        "match-1",
			Type:      models.MatchTypeTraining,
			Status:    models.MatchStatusCompleted,
			OurTeamID: "team-1",
			OpponentTeamID:   "team-3",
			OpponentTeamName: "Green Valley SC",
			Date:      "2026-07-20",
			Time:      "10:00",
			Location:  "Yokohama Riverside Futsal Court",
			ScoringEvents: []models.MatchScoringEvent{
				{TeamID: "team-1", Period: "first_half", Minute: 12, ScorerName: "Riku Sato", AssistName: "Haruto Suzuki"},
				{TeamID: "team-1", Period: "second_half", Minute: 38, ScorerName: "Haruto Suzuki"},
				{TeamID: "team-3", Period: "second_half", Minute: 44, ScorerName: "Kota Abe"},
			},
		},
		{
			ID:        "match-2",
			Type:      models.MatchTypeTraining,
			Status:    models.MatchStatusScheduled,
			OurTeamID: "team-1",
			OpponentTeamID:   "team-2",
			OpponentTeamName: "Blue Wings FC",
			Date:      "2026-09-13",
			Time:      "13:30",
			Location:  "Setagaya Sports Park Field A",
		},
		{
			ID:        "match-7",
			Type:      models.MatchTypeTournament,
			Status:    models.MatchStatusPreparation,
			OurTeamID: "team-1",
			Date:      "2026-04-12",
			Time:      "09:00",
			Location:  "Spring Cup U-12",
			Participants: []models.MatchParticipant{
				{TeamID: "team-1", TeamName: "FC Striker Kids"},
				{TeamID: "team-2", TeamName: "Blue Wings FC"},
				{TeamID: "team-4", TeamName: "Red Comets"},
				{TeamID: "team-5", TeamName: "Shonan Breeze"},
			},
			BracketData:            springBracket(),
			DetailedTournamentInfo: &spring,
		},
		{
			ID:        "match-8",
			Type:      models.MatchTypeTournament,
			Status:    models.MatchStatusScheduled,
			OurTeamID: "team-1",
			Date:      "2026-10-04",
			Time:      "09:30",
			Location:  "Autumn League Festival",
			Participants: []models.MatchParticipant{
				{TeamID: "team-1", TeamName: "FC Striker Kids"},
				{TeamID: "team-3", TeamName: "Green Valley SC"},
				{TeamID: "team-4", TeamName: "Red Comets"},
				{TeamID: "team-5", TeamName: "Shonan Breeze"},
			},
			LeagueCompetitionData: autumnLeague(),
		},
	}
}

func springBracket() *models.TournamentBracket {
	t1 := models.BracketTeam{ID: "team-1", Name: "FC Striker Kids"}
	t2 := models.BracketTeam{ID: "team-2", Name: "Blue Wings FC"}
	t4 := models.BracketTeam{ID: "team-4", Name: "Red Comets"}
	t5 := models.BracketTeam{ID: "team-5", Name: "Shonan Breeze"}

	return &models.TournamentBracket{
		Name:  "Spring Cup U-12",
		Teams: []models.BracketTeam{t1, t2, t4, t5},
		Rounds: []models.BracketRound{
			{
				Name: "Semifinals",
				Matches: []models.BracketMatch{
					{ID: "sf-1", Team1: &t1, Team2: &t4},
					{ID: "sf-2", Team1: &t2, Team2: &t5},
				},
			},
			{
				Name: "Final",
				Matches: []models.BracketMatch{
					{ID: "final-1"},
				},
			},
		},
	}
}

func autumnLeague() *models.LeagueCompetitionData {
	t1 := models.BracketTeam{ID: "team-1", Name: "FC Striker Kids"}
	t3 := models.BracketTeam{ID: "team-3", Name: "Green Valley SC"}
	t4 := models.BracketTeam{ID: "team-4", Name: "Red Comets"}
	t5 := models.BracketTeam{ID: "team-5", Name: "Shonan Breeze"}

	two, one, zero, three := 2, 1, 0, 3

	return &models.LeagueCompetitionData{
		PreliminaryRound: models.LeagueTable{
			Groups: []models.LeagueGroup{
				{
					Name: "Group A",
					Standings: []models.LeagueStanding{
						{Team: t1, Played: 1, Wins: 1, GoalsFor: 2, GoalsAgainst: 1, Points: 3},
						{Team: t3, Played: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 2},
					},
					Matches: []models.LeagueMatch{
						{ID: "ga-1", Team1ID: "team-1", Team2ID: "team-3", Score1: &two, Score2: &one, Played: true},
						{ID: "ga-2", Team1ID: "team-1", Team2ID: "team-3"},
					},
				},
				{
					Name: "Group B",
					Standings: []models.LeagueStanding{
						{Team: t5, Played: 1, Wins: 1, GoalsFor: 3, GoalsAgainst: 0, Points: 3},
						{Team: t4, Played: 1, Losses: 1, GoalsAgainst: 3},
					},
					Matches: []models.LeagueMatch{
						{ID: "gb-1", Team1ID: "team-5", Team2ID: "team-4", Score1: &three, Score2: &zero, Played: true},
					},
				},
			},
		},
		FinalRoundTournament: &models.TournamentBracket{
			Name:  "Final Round",
			Teams: []models.BracketTeam{t1, t5},
			Rounds: []models.BracketRound{
				{
					Name: "Final",
					Matches: []models.BracketMatch{
						{ID: "fr-final", Team1: &t1, Team2: &t5},
					},
				},
			},
		},
	}
}

func fullGuideline(name, date, start string) models.TournamentInfoFormData {
	var g models.TournamentInfoFormData
	g.EventName = name
	g.OrganizerInfo.OrganizationName = "Setagaya Junior Football Association"
	g.OrganizerInfo.ContactPersonName = "Kenji Tanaka"
	g.EventDateTime.EventDate = date
	g.EventDateTime.StartTime = start
	g.EventDateTime.EndTime = "17:00"
	g.EventDateTime.EntryTime = "08:30"
	g.VenueInfo.FacilityName = "Setagaya Sports Park Field A"
	g.VenueInfo.Address = "1-2-3 Okura, Setagaya-ku"
	g.ParticipantEligibility.GradeLevel = "Elementary grades 4-6"
	g.ParticipantEligibility.AgeLimit = "U-12"
	g.ParticipatingTeams = "FC Striker Kids\nBlue Wings FC\nRed Comets\nShonan Breeze"
	g.CourtInfo.Size = "68m x 50m"
	g.CourtInfo.NumberOfCourts = "2"
	g.MatchFormat.PlayersPerTeam = "8"
	g.MatchFormat.GoalSpecifications = "Junior goals 5m x 2.15m"
	g.RefereeSystem = "One referee per court, provided by the association"
	g.CompetitionRules = "JFA U-12 rules apply. 15-minute halves."
	g.MatchSchedule.CeremonyInfo = "Opening ceremony 08:50, awards 16:30"
	g.MatchSchedule.WaterBreakInfo = "Water break at the midpoint of each half above 28 degrees"
	g.BallInfo = "Size 4, provided by the organizer"
	g.RankingMethod.PointsRule = "Win 3 / Draw 1 / Loss 0"
	g.RankingMethod.TieBreakerRule = "Goal difference, then goals scored, then coin toss"
	g.Awards.Winner = "Trophy and gold medals"
	g.Awards.RunnerUp = "Silver medals"
	g.Awards.ThirdPlace = "Bronze medals"
	g.ParticipationFee.Amount = "5000 yen per team"
	g.ParticipationFee.PaymentMethod = "Bank transfer by April 5"
	g.GeneralNotes.ParkingInfo = "30 spaces, carpooling encouraged"
	g.GeneralNotes.SpectatorArea = "East stand only"
	g.GeneralNotes.CancellationPolicy = "Rain cancellation decided by 7:00, no refund"
	g.ContactInfo.PersonName = "Kenji Tanaka"
	g.ContactInfo.PhoneNumber = "090-1234-5678"
	return g
}

func seedScheduleEvents() []models.ScheduleEvent {
	return []models.ScheduleEvent{
		{ID: "event-1", TeamID: "team-1", Date: "2026-09-05", StartTime: "16:00", EndTime: "18:00", Description: "Regular practice"},
		{ID: "event-2", TeamID: "team-1", Date: "2026-09-13", StartTime: "13:00", EndTime: "15:30", Description: "Practice match vs Blue Wings FC"},
		{ID: "event-3", TeamID: "team-1", Date: "2026-09-05", StartTime: "09:00", EndTime: "10:00", Description: "Coaches meeting"},
	}
}

func seedChat() ([]models.ChatThread, map[string][]models.ChatMessage) {
	at := func(day, hour, min int) time.Time {
		return time.Date(2026, 8, day, hour, min, 0, 0, time.UTC)
	}

	wings := []models.ChatMessage{
		{ID: "msg-1", ThreadID: "thread-1", SenderID: "team-2", SenderName: "Blue Wings FC", Text: "Hi! Are you free for a practice match next month?", Timestamp: at(20, 18, 5)},
		{ID: "msg-2", ThreadID: "thread-1", SenderID: "team-1", SenderName: "FC Striker Kids", Text: "Yes, how about the 13th?", Timestamp: at(20, 19, 12)},
		{ID: "msg-3", ThreadID: "thread-1", SenderID: "team-2", SenderName: "Blue Wings FC", Text: "The 13th works. 13:30 kickoff?", Timestamp: at(21, 9, 40)},
	}
	valley := []models.ChatMessage{
		{ID: "msg-4", ThreadID: "thread-2", SenderID: "team-3", SenderName: "Green Valley SC", Text: "Thanks for the game last month!", Timestamp: at(2, 20, 15)},
	}

	msgs := map[string][]models.ChatMessage{
		"thread-1": wings,
		"thread-2": valley,
	}

	threads := []models.ChatThread{
		{
			ID: "thread-1",
			Participants: []models.ChatParticipant{
				{ID: "team-1", Name: "FC Striker Kids"},
				{ID: "team-2", Name: "Blue Wings FC"},
			},
			LastMessage: &wings[2],
			UnreadCount: 1,
		},
		{
			ID: "thread-2",
			Participants: []models.ChatParticipant{
				{ID: "team-1", Name: "FC Striker Kids"},
				{ID: "team-3", Name: "Green Valley SC"},
			},
			LastMessage: &valley[0],
		},
		{
			ID:          "thread-3",
			IsGroupChat: true,
			GroupName:   "Autumn League Festival",
			Participants: []models.ChatParticipant{
				{ID: "team-1", Name: "FC Striker Kids"},
				{ID: "team-3", Name: "Green Valley SC"},
				{ID: "team-4", Name: "Red Comets"},
				{ID: "team-5", Name: "Shonan Breeze"},
			},
		},
	}

	return threads, msgs
}
