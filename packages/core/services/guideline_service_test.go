package services

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-exit/team-management-app.ver4/packages/core/draft"
	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

func newTestGuidelineService(t *testing.T, st *store.Store) *GuidelineService {
	t.Helper()
	clock := clockwork.NewFakeClockAt(testTime)
	drafts := draft.NewFileStore(filepath.Join(t.TempDir(), "draft.json"), zerolog.Nop())
	chat := NewChatService(st, clock, zerolog.Nop())
	return NewGuidelineService(st, drafts, chat, zerolog.Nop())
}

func TestDraftRoundTrip(t *testing.T) {
	st, clock := newTestStore(t)
	drafts := draft.NewFileStore(filepath.Join(t.TempDir(), "draft.json"), zerolog.Nop())
	chat := NewChatService(st, clock, zerolog.Nop())
	svc := NewGuidelineService(st, drafts, chat, zerolog.Nop())

	var form models.TournamentInfoFormData
	form.EventName = "Spring Cup"
	require.NoError(t, svc.SaveDraft(form))

	got := svc.Draft()
	assert.Equal(t, "Spring Cup", got.EventName)

	require.NoError(t, svc.ResetDraft())
	assert.True(t, svc.Draft().Empty())
}

func TestDraftIsInertInEditMode(t *testing.T) {
	st, clock := newTestStore(t)
	drafts := draft.NewFileStore(filepath.Join(t.TempDir(), "draft.json"), zerolog.Nop())
	chat := NewChatService(st, clock, zerolog.Nop())
	svc := NewGuidelineService(st, drafts, chat, zerolog.Nop())

	var saved models.TournamentInfoFormData
	saved.EventName = "Spring Cup"
	st.Seed(nil, nil, nil, []models.Match{
		{ID: "match-7", DetailedTournamentInfo: &saved, Location: "Spring Cup"},
	}, nil, nil, nil, nil)
	require.NoError(t, st.EditGuidelineForMatch("match-7"))

	// Draft reads come from the match, not the slot.
	assert.Equal(t, "Spring Cup", svc.Draft().EventName)

	// Draft writes are dropped while editing.
	var other models.TournamentInfoFormData
	other.EventName = "Should Not Persist"
	require.NoError(t, svc.SaveDraft(other))

	require.NoError(t, st.NavigateTo(models.ViewMatches))
	assert.True(t, svc.Draft().Empty())
}

func TestDraftPrefillsFromMatchHeader(t *testing.T) {
	st, clock := newTestStore(t)
	drafts := draft.NewFileStore(filepath.Join(t.TempDir(), "draft.json"), zerolog.Nop())
	chat := NewChatService(st, clock, zerolog.Nop())
	svc := NewGuidelineService(st, drafts, chat, zerolog.Nop())

	st.Seed(nil, nil, nil, []models.Match{
		{ID: "match-1", Location: "Autumn Festival", Date: "2026-10-04", Time: "09:30"},
	}, nil, nil, nil, nil)
	require.NoError(t, st.EditGuidelineForMatch("match-1"))

	form := svc.Draft()
	assert.Equal(t, "Autumn Festival", form.EventName)
	assert.Equal(t, "2026-10-04", form.EventDateTime.EventDate)
	assert.Equal(t, "09:30", form.EventDateTime.StartTime)
}

func TestSaveAsNewMatchNeedsManagedTeam(t *testing.T) {
	st, clock := newTestStore(t)
	drafts := draft.NewFileStore(filepath.Join(t.TempDir(), "draft.json"), zerolog.Nop())
	chat := NewChatService(st, clock, zerolog.Nop())
	svc := NewGuidelineService(st, drafts, chat, zerolog.Nop())

	var form models.TournamentInfoFormData
	form.EventName = "Winter Cup"

	_, err := svc.SaveAsNewMatch(form)
	assert.ErrorIs(t, err, ErrNoManagedTeam)
}

func TestSaveAsNewMatchClearsDraft(t *testing.T) {
	st, clock := newTestStore(t)
	seedUniverse(t, st)
	require.NoError(t, st.SelectManagedTeam("team-1"))

	drafts := draft.NewFileStore(filepath.Join(t.TempDir(), "draft.json"), zerolog.Nop())
	chat := NewChatService(st, clock, zerolog.Nop())
	svc := NewGuidelineService(st, drafts, chat, zerolog.Nop())

	var form models.TournamentInfoFormData
	form.EventName = "Winter Cup"
	require.NoError(t, svc.SaveDraft(form))

	match, err := svc.SaveAsNewMatch(form)
	require.NoError(t, err)
	assert.Equal(t, "team-1", match.OurTeamID)
	assert.True(t, svc.Draft().Empty(), "promotion consumes the draft")

	past := svc.PastGuidelines()
	require.Len(t, past, 1)
	assert.Equal(t, "Winter Cup", past[0].EventName)
}

func TestPreviewRejectsEmptyForm(t *testing.T) {
	st, _ := newTestStore(t)
	svc := newTestGuidelineService(t, st)

	_, err := svc.Preview(models.TournamentInfoFormData{}, "")
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestPreviewAppendsMatchFixtures(t *testing.T) {
	st, _ := newTestStore(t)
	svc := newTestGuidelineService(t, st)

	one := 1
	st.Seed(nil, nil, nil, []models.Match{{
		ID: "match-8",
		LeagueCompetitionData: &models.LeagueCompetitionData{
			PreliminaryRound: models.LeagueTable{Groups: []models.LeagueGroup{{
				Name: "Group A",
				Standings: []models.LeagueStanding{
					{Team: models.BracketTeam{ID: "team-1", Name: "FC Striker Kids"}, Points: 3},
				},
				Matches: []models.LeagueMatch{{ID: "ga-1", Team1ID: "team-1", Team2ID: "team-3", Score1: &one, Score2: &one, Played: true}},
			}}},
			FinalRoundTournament: &models.TournamentBracket{Rounds: []models.BracketRound{
				{Name: "Final", Matches: []models.BracketMatch{{ID: "fr-1"}}},
			}},
		},
	}}, nil, nil, nil, nil)

	var form models.TournamentInfoFormData
	form.EventName = "Autumn Festival"

	doc, err := svc.Preview(form, "match-8")
	require.NoError(t, err)
	assert.Contains(t, doc, "Group A")
	assert.Contains(t, doc, "Final")

	// Without a match reference the fixtures are absent.
	plain, err := svc.Preview(form, "")
	require.NoError(t, err)
	assert.False(t, strings.Contains(plain, "Group A"))
}

func TestShareAsManagedTeam(t *testing.T) {
	st, clock := newTestStore(t)
	seedUniverse(t, st)
	require.NoError(t, st.SelectManagedTeam("team-1"))
	st.AddChatThread(models.ChatThread{ID: "thread-1"}, nil, false)

	drafts := draft.NewFileStore(filepath.Join(t.TempDir(), "draft.json"), zerolog.Nop())
	chat := NewChatService(st, clock, zerolog.Nop())
	svc := NewGuidelineService(st, drafts, chat, zerolog.Nop())

	var form models.TournamentInfoFormData
	form.EventName = "Spring Cup"

	msg, err := svc.Share(models.ShareGuidelineRequest{ThreadID: "thread-1", Guideline: form})
	require.NoError(t, err)

	assert.Equal(t, "team-1", msg.SenderID)
	assert.Equal(t, "FC Striker Kids", msg.SenderName)
	assert.Contains(t, msg.Text, "[Tournament Guideline] Spring Cup")

	// Operator-sent: no unread bump.
	assert.Zero(t, st.ChatThreads()[0].UnreadCount)
}

func TestShareWithoutManagedTeam(t *testing.T) {
	st, _ := newTestStore(t)
	svc := newTestGuidelineService(t, st)

	var form models.TournamentInfoFormData
	form.EventName = "Spring Cup"

	_, err := svc.Share(models.ShareGuidelineRequest{ThreadID: "thread-1", Guideline: form})
	assert.ErrorIs(t, err, ErrNoManagedTeam)
}

func TestCopyFrom(t *testing.T) {
	st, _ := newTestStore(t)
	svc := newTestGuidelineService(t, st)

	var saved models.TournamentInfoFormData
	saved.EventName = "Spring Cup"
	st.Seed(nil, nil, nil, []models.Match{
		{ID: "match-7", DetailedTournamentInfo: &saved},
		{ID: "match-1"},
	}, nil, nil, nil, nil)

	got, err := svc.CopyFrom("match-7")
	require.NoError(t, err)
	assert.Equal(t, "Spring Cup", got.EventName)

	_, err = svc.CopyFrom("match-1")
	assert.ErrorIs(t, err, store.ErrMatchNotFound, "match without guideline has nothing to copy")
}
