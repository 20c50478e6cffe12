package services

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/draft"
	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/pdf"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

// ErrNoManagedTeam is returned when an operation needs an active managed team
// and none is selected yet.
var ErrNoManagedTeam = errors.New("no managed team selected")

type GuidelineService struct {
	store  *store.Store
	drafts *draft.FileStore
	chat   *ChatService
	log    zerolog.Logger
}

func NewGuidelineService(st *store.Store, drafts *draft.FileStore, chat *ChatService, log zerolog.Logger) *GuidelineService {
	return &GuidelineService{
		store:  st,
		drafts: drafts,
		chat:   chat,
		log:    log.With().Str("service", "guideline").Logger(),
	}
}

// Draft returns the persisted in-progress form for create mode. When a match
// is selected for editing, the draft channel is inert and the match's own
// guideline is returned instead (prefilled from the match header when it has
// none yet).
func (s *GuidelineService) Draft() models.TournamentInfoFormData {
	session := s.store.Session()
	if session.SelectedMatchIDForGuideline != "" {
		if form, err := s.guidelineForMatch(session.SelectedMatchIDForGuideline); err == nil {
			return form
		}
	}
	form, _ := s.drafts.Load()
	return form
}

// SaveDraft writes the form through to the durable slot. Inert while a match
// is being edited: edits there are saved explicitly, never as a draft.
func (s *GuidelineService) SaveDraft(form models.TournamentInfoFormData) error {
	if s.store.Session().SelectedMatchIDForGuideline != "" {
		return nil
	}
	return s.drafts.Save(form)
}

// ResetDraft clears the durable slot.
func (s *GuidelineService) ResetDraft() error {
	return s.drafts.Clear()
}

// UpdateForMatch overwrites the guideline attached to an existing match and
// mirrors its header fields.
func (s *GuidelineService) UpdateForMatch(matchID string, form models.TournamentInfoFormData) error {
	return s.store.UpdateGuidelineForMatch(matchID, form)
}

// SaveAsNewMatch promotes the form into a new tournament match owned by the
// active managed team, then clears the draft slot.
func (s *GuidelineService) SaveAsNewMatch(form models.TournamentInfoFormData) (models.Match, error) {
	session := s.store.Session()
	if session.SelectedManagedTeamID == "" {
		return models.Match{}, ErrNoManagedTeam
	}

	match, err := s.store.SaveGuidelineAsNewMatch(session.SelectedManagedTeamID, form)
	if err != nil {
		return models.Match{}, err
	}
	if err := s.drafts.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("draft not cleared after promotion")
	}
	return match, nil
}

// PastGuidelines lists matches carrying a saved guideline, for the copy menu.
func (s *GuidelineService) PastGuidelines() []models.PastGuideline {
	return s.store.PastGuidelines()
}

// CopyFrom returns a deep copy of another match's guideline to start a new
// form from.
func (s *GuidelineService) CopyFrom(matchID string) (models.TournamentInfoFormData, error) {
	match, err := s.store.MatchByID(matchID)
	if err != nil {
		return models.TournamentInfoFormData{}, err
	}
	if match.DetailedTournamentInfo == nil {
		return models.TournamentInfoFormData{}, store.ErrMatchNotFound
	}
	return *match.DetailedTournamentInfo, nil
}

// Preview renders the standalone HTML document, appending the fixtures of
// the referenced match when one is given.
func (s *GuidelineService) Preview(form models.TournamentInfoFormData, matchID string) (string, error) {
	if form.Empty() {
		return "", store.ErrValidation
	}
	bracket, league := s.fixturesFor(matchID)
	return pdf.BuildDocument(form, bracket, league), nil
}

// Share posts the plain-text digest of the form (and the referenced match's
// fixtures) into a chat thread as the managed team.
func (s *GuidelineService) Share(req models.ShareGuidelineRequest) (models.ChatMessage, error) {
	session := s.store.Session()
	if session.SelectedManagedTeamID == "" {
		return models.ChatMessage{}, ErrNoManagedTeam
	}
	team, err := s.store.TeamByID(session.SelectedManagedTeamID)
	if err != nil {
		return models.ChatMessage{}, err
	}

	bracket, league := s.fixturesFor(req.MatchID)
	digest := pdf.BuildChatDigest(req.Guideline, bracket, league)
	return s.chat.ShareText(req.ThreadID, team.ID, team.Name, digest)
}

// fixturesFor picks the bracket and league data of a match: a final-round
// knockout wins over standalone bracket data, mirroring how the preview has
// always chosen.
func (s *GuidelineService) fixturesFor(matchID string) (*models.TournamentBracket, *models.LeagueTable) {
	if matchID == "" {
		return nil, nil
	}
	match, err := s.store.MatchByID(matchID)
	if err != nil {
		return nil, nil
	}

	bracket := match.BracketData
	var league *models.LeagueTable
	if match.LeagueCompetitionData != nil {
		if match.LeagueCompetitionData.FinalRoundTournament != nil {
			bracket = match.LeagueCompetitionData.FinalRoundTournament
		}
		league = &match.LeagueCompetitionData.PreliminaryRound
	}
	return bracket, league
}

func (s *GuidelineService) guidelineForMatch(matchID string) (models.TournamentInfoFormData, error) {
	match, err := s.store.MatchByID(matchID)
	if err != nil {
		return models.TournamentInfoFormData{}, err
	}
	if match.DetailedTournamentInfo != nil {
		return *match.DetailedTournamentInfo, nil
	}

	var form models.TournamentInfoFormData
	form.EventName = match.Location
	form.EventDateTime.EventDate = match.Date
	form.EventDateTime.StartTime = match.Time
	return form, nil
}
