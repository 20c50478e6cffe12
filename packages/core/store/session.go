package store

import "github.com/d-exit/team-management-app.ver4/packages/core/models"

// Session returns the operator's current selection state.
func (s *Store) Session() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// OperatorID is the identity chat attributes operator-sent messages to: the
// selected managed team, or a fixed placeholder before one is chosen.
func (s *Store) OperatorID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.operatorIDLocked()
}

func (s *Store) operatorIDLocked() string {
	if s.session.SelectedManagedTeamID != "" {
		return s.session.SelectedManagedTeamID
	}
	return DefaultOperatorID
}

// NavigateTo switches the current view. Selection state is scoped to the view
// that owns it: the selected team survives only the profile and chat screens,
// the selected thread only the chat screen, and the guideline match only the
// guideline editor.
func (s *Store) NavigateTo(view models.View) error {
	if !view.Valid() {
		return ErrInvalidView
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if view != models.ViewTeamProfile && view != models.ViewChatScreen {
		s.session.SelectedTeamID = ""
	}
	if view != models.ViewChatScreen {
		s.session.SelectedChatThreadID = ""
	}
	if view != models.ViewTournamentGuidelines {
		s.session.SelectedMatchIDForGuideline = ""
	}
	s.session.CurrentView = view
	return nil
}

// SelectManagedTeam makes the team the active managed team and moves to the
// management screen.
func (s *Store) SelectManagedTeam(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.managedTeams {
		if t.ID == id {
			s.session.SelectedManagedTeamID = id
			s.session.RequiresTeamSelection = false
			s.session.CurrentView = models.ViewTeamManagement
			return nil
		}
	}
	return ErrTeamNotFound
}

// ClearManagedTeam returns the session to the team-selection pre-state.
func (s *Store) ClearManagedTeam() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SelectedManagedTeamID = ""
	s.session.RequiresTeamSelection = true
}

// SelectTeam records the team whose profile is being viewed and moves to the
// profile screen.
func (s *Store) SelectTeam(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.teams {
		if t.ID == id {
			s.session.SelectedTeamID = id
			s.session.CurrentView = models.ViewTeamProfile
			return nil
		}
	}
	return ErrTeamNotFound
}

// NavigateToChatScreen opens a thread's chat screen.
func (s *Store) NavigateToChatScreen(threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.chatThreads {
		if t.ID == threadID {
			s.session.SelectedChatThreadID = threadID
			s.session.CurrentView = models.ViewChatScreen
			return nil
		}
	}
	return ErrThreadNotFound
}

// EditGuidelineForMatch opens the guideline editor bound to a match.
func (s *Store) EditGuidelineForMatch(matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.matches {
		if m.ID == matchID {
			s.session.SelectedMatchIDForGuideline = matchID
			s.session.SelectedTeamID = ""
			s.session.SelectedChatThreadID = ""
			s.session.CurrentView = models.ViewTournamentGuidelines
			return nil
		}
	}
	return ErrMatchNotFound
}
