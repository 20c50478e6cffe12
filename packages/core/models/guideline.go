package models

// TournamentInfoFormData is the structured tournament-guideline form. Every
// field is free text and optional except EventName, which must be non-empty
// to save. Pointers are avoided on purpose: a fully-populated zero value is
// the canonical empty form, and partial drafts are merged over it section by
// section.
type TournamentInfoFormData struct {
	EventName string `json:"event_name"`

	OrganizerInfo struct {
		OrganizationName  string `json:"organization_name"`
		ContactPersonName string `json:"contact_person_name"`
	} `json:"organizer_info"`

	EventDateTime struct {
		EventDate string `json:"event_date"` // YYYY-MM-DD
		StartTime string `json:"start_time"` // HH:MM
		EndTime   string `json:"end_time"`
		EntryTime string `json:"entry_time"`
	} `json:"event_date_time"`

	VenueInfo struct {
		FacilityName string `json:"facility_name"`
		Address      string `json:"address"`
	} `json:"venue_info"`

	ParticipantEligibility struct {
		GradeLevel string `json:"grade_level"`
		AgeLimit   string `json:"age_limit"`
	} `json:"participant_eligibility"`

	// Newline-separated list of team names.
	ParticipatingTeams string `json:"participating_teams"`

	CourtInfo struct {
		Size           string `json:"size"`
		NumberOfCourts string `json:"number_of_courts"`
	} `json:"court_info"`

	MatchFormat struct {
		PlayersPerTeam     string `json:"players_per_team"`
		GoalSpecifications string `json:"goal_specifications"`
	} `json:"match_format"`

	RefereeSystem    string `json:"referee_system"`
	CompetitionRules string `json:"competition_rules"`

	MatchSchedule struct {
		CeremonyInfo   string `json:"ceremony_info"`
		WaterBreakInfo string `json:"water_break_info"`
	} `json:"match_schedule"`

	BallInfo string `json:"ball_info"`

	RankingMethod struct {
		PointsRule              string `json:"points_rule"`
		TieBreakerRule          string `json:"tie_breaker_rule"`
		LeagueSystemDescription string `json:"league_system_description"`
	} `json:"ranking_method"`

	Awards struct {
		Winner           string `json:"winner"`
		RunnerUp         string `json:"runner_up"`
		ThirdPlace       string `json:"third_place"`
		IndividualAwards string `json:"individual_awards"`
	} `json:"awards"`

	ParticipationFee struct {
		Amount        string `json:"amount"`
		PaymentMethod string `json:"payment_method"`
		PaymentNotes  string `json:"payment_notes"`
	} `json:"participation_fee"`

	GeneralNotes struct {
		ParkingInfo        string `json:"parking_info"`
		SpectatorArea      string `json:"spectator_area"`
		CancellationPolicy string `json:"cancellation_policy"`
	} `json:"general_notes"`

	ContactInfo struct {
		PersonName  string `json:"person_name"`
		PhoneNumber string `json:"phone_number"`
	} `json:"contact_info"`
}

// Empty reports whether the form holds no saved guideline.
func (f TournamentInfoFormData) Empty() bool {
	return f.EventName == ""
}

// DTOs

type SaveGuidelineRequest struct {
	Guideline TournamentInfoFormData `json:"guideline" binding:"required"`
}

type ShareGuidelineRequest struct {
	ThreadID  string                 `json:"thread_id" binding:"required"`
	Guideline TournamentInfoFormData `json:"guideline" binding:"required"`
	// Optional match whose bracket/league fixtures are appended to the digest.
	MatchID string `json:"match_id,omitempty"`
}

type PreviewGuidelineRequest struct {
	Guideline TournamentInfoFormData `json:"guideline" binding:"required"`
	MatchID   string                 `json:"match_id,omitempty"`
}
