package models

// View enumerates the screens of the application. Navigation between them is
// driven exclusively through the store's navigation operations.
type View string

const (
	ViewTeamManagement       View = "team_management"
	ViewTeamProfile          View = "team_profile"
	ViewFollowedTeams        View = "followed_teams"
	ViewMatches              View = "matches"
	ViewVenueBooking         View = "venue_booking"
	ViewSchedule             View = "schedule"
	ViewMatchmaking          View = "matchmaking"
	ViewTournamentGuidelines View = "tournament_guidelines"
	ViewChatList             View = "chat_list"
	ViewChatScreen           View = "chat_screen"
)

// Valid reports whether v names a known screen.
func (v View) Valid() bool {
	switch v {
	case ViewTeamManagement, ViewTeamProfile, ViewFollowedTeams, ViewMatches,
		ViewVenueBooking, ViewSchedule, ViewMatchmaking,
		ViewTournamentGuidelines, ViewChatList, ViewChatScreen:
		return true
	}
	return false
}

// SessionState is the operator's transient UI-selection state. Selections are
// scoped to the view that owns them and cleared on navigation elsewhere.
type SessionState struct {
	CurrentView          View   `json:"current_view"`
	SelectedTeamID       string `json:"selected_team_id,omitempty"`
	SelectedManagedTeamID string `json:"selected_managed_team_id,omitempty"`
	SelectedChatThreadID string `json:"selected_chat_thread_id,omitempty"`
	SelectedMatchIDForGuideline string `json:"selected_match_id_for_guideline,omitempty"`
	// True until a managed team is selected; the UI must show the
	// team-selection screen regardless of CurrentView while set.
	RequiresTeamSelection bool `json:"requires_team_selection"`
}

// DTOs

type NavigateRequest struct {
	View View `json:"view" binding:"required"`
}

type SelectManagedTeamRequest struct {
	TeamID string `json:"team_id" binding:"required"`
}

type SelectChatThreadRequest struct {
	ThreadID string `json:"thread_id" binding:"required"`
}

type SelectGuidelineMatchRequest struct {
	MatchID string `json:"match_id" binding:"required"`
}
