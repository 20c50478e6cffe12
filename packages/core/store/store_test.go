package store

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

var testTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(testTime)
	return New(clock, zerolog.Nop()), clock
}

func seedTeams(t *testing.T, s *Store) {
	t.Helper()
	teams := []models.Team{
		{ID: "team-1", Name: "FC Striker Kids", CoachName: "Kenji Tanaka", Rating: 1500, Prefecture: "Tokyo", AgeCategory: models.AgeU12},
		{ID: "team-2", Name: "Blue Wings FC", CoachName: "Akira Mori", Rating: 1800, Prefecture: "Tokyo", AgeCategory: models.AgeU12},
		{ID: "team-3", Name: "Green Valley SC", CoachName: "Yuta Nakamura", Rating: 1250, Prefecture: "Kanagawa"},
	}
	managed := []models.Team{teams[0]}
	followed := []models.FollowedTeam{{Team: teams[1], IsFavorite: true}}
	s.Seed(teams, managed, followed, nil, nil, nil, nil, nil)
}

func TestUpdateManagedTeamPropagatesThreeWays(t *testing.T) {
	s, _ := newTestStore(t)
	teams := []models.Team{
		{ID: "team-1", Name: "Old Name", CoachName: "Coach A", Rating: 1500},
		{ID: "team-2", Name: "Blue Wings FC", CoachName: "Coach B", Rating: 1800},
	}
	managed := []models.Team{teams[0]}
	followed := []models.FollowedTeam{{Team: teams[0], IsFavorite: true}}
	s.Seed(teams, managed, followed, nil, nil, nil, nil, nil)

	updated := models.Team{ID: "team-1", Name: "New Name", CoachName: "Coach A", Rating: 1520,
		Members: []models.Member{{ID: "m-1", Name: "Riku Sato", JerseyNumber: 10, Position: "FW"}}}
	require.NoError(t, s.UpdateManagedTeam(updated))

	got, err := s.TeamByID("team-1")
	require.NoError(t, err)
	if diff := cmp.Diff(updated, got); diff != "" {
		t.Errorf("global team record mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "New Name", s.ManagedTeams()[0].Name)

	ft := s.FollowedTeams()[0]
	assert.Equal(t, "New Name", ft.Name)
	assert.True(t, ft.IsFavorite, "favorite flag must survive the update")
}

func TestUpdateManagedTeamUnknownID(t *testing.T) {
	s, _ := newTestStore(t)
	seedTeams(t, s)

	err := s.UpdateManagedTeam(models.Team{ID: "team-99", Name: "Ghost"})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestCreateTeamDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	seedTeams(t, s)

	team, err := s.CreateTeam("New Kickers", "Coach Z")
	require.NoError(t, err)

	assert.Equal(t, models.LevelBeginner, team.Level)
	assert.Equal(t, 1200, team.Rating)
	assert.NotEmpty(t, team.ID)
	assert.NotNil(t, team.Members)
	assert.Empty(t, team.Members)

	// Inserted into both collections atomically.
	_, err = s.TeamByID(team.ID)
	assert.NoError(t, err)
	managed := s.ManagedTeams()
	assert.Equal(t, team.ID, managed[len(managed)-1].ID)
}

func TestCreateTeamRejectsBlankFields(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreateTeam("   ", "Coach")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.CreateTeam("Team", "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, s.Teams(), "failed creation must not insert anything")
}

func TestDeleteTeamIsManagedOnly(t *testing.T) {
	s, _ := newTestStore(t)
	seedTeams(t, s)

	require.NoError(t, s.DeleteTeam("team-1"))

	assert.Empty(t, s.ManagedTeams())
	_, err := s.TeamByID("team-1")
	assert.NoError(t, err, "global record must survive managed deletion")

	assert.ErrorIs(t, s.DeleteTeam("team-2"), ErrTeamNotFound, "non-managed team is not deletable")
}

func TestDeleteSelectedTeamResetsSelection(t *testing.T) {
	s, _ := newTestStore(t)
	seedTeams(t, s)
	require.NoError(t, s.SelectManagedTeam("team-1"))

	require.NoError(t, s.DeleteTeam("team-1"))

	session := s.Session()
	assert.Empty(t, session.SelectedManagedTeamID)
	assert.True(t, session.RequiresTeamSelection)
}

func TestUpdateTeamsRederivesManagedSubset(t *testing.T) {
	s, _ := newTestStore(t)
	teams := []models.Team{
		{ID: "team-1", Name: "FC Striker Kids", Rating: 1500},
		{ID: "team-2", Name: "Blue Wings FC", Rating: 1800},
	}
	s.Seed(teams, teams, nil, nil, nil, nil, nil, nil)

	// Bump team-1's rating and drop team-2 from the global collection.
	s.UpdateTeams(func(ts []models.Team) []models.Team {
		var out []models.Team
		for _, team := range ts {
			if team.ID == "team-2" {
				continue
			}
			team.Rating = 1540
			out = append(out, team)
		}
		return out
	})

	assert.Len(t, s.Teams(), 1)

	managed := s.ManagedTeams()
	require.Len(t, managed, 2, "managed subset never shrinks on a batch update")
	assert.Equal(t, 1540, managed[0].Rating, "managed copy is re-derived from the updated collection")
	assert.Equal(t, "Blue Wings FC", managed[1].Name)
	assert.Equal(t, 1800, managed[1].Rating, "a vanished id keeps its previous managed value")
}

func TestToggleFollowUsesAuthoritativeRecord(t *testing.T) {
	s, _ := newTestStore(t)
	seedTeams(t, s)

	// The caller passes a stale snapshot; the stored one must win.
	stale := models.Team{ID: "team-3", Name: "Stale Name", Rating: 1}
	assert.True(t, s.ToggleFollowTeam(stale))

	ft := s.FollowedTeams()
	require.Len(t, ft, 2)
	assert.Equal(t, "Green Valley SC", ft[1].Name)
	assert.False(t, ft[1].IsFavorite, "fresh follows start unfavorited")

	// Second toggle unfollows.
	assert.False(t, s.ToggleFollowTeam(stale))
	assert.Len(t, s.FollowedTeams(), 1)
}

func TestToggleFavorite(t *testing.T) {
	s, _ := newTestStore(t)
	seedTeams(t, s)

	s.ToggleFavoriteTeam("team-2")
	assert.False(t, s.FollowedTeams()[0].IsFavorite)
	s.ToggleFavoriteTeam("team-2")
	assert.True(t, s.FollowedTeams()[0].IsFavorite)

	// Unfollowed team: silent no-op.
	s.ToggleFavoriteTeam("team-3")
	assert.Len(t, s.FollowedTeams(), 1)
}

func TestMatchesSortedByDateDesc(t *testing.T) {
	s, _ := newTestStore(t)
	matches := []models.Match{
		{ID: "m-old", Date: "2026-01-10", Status: models.MatchStatusCompleted},
		{ID: "m-new", Date: "2026-12-01", Status: models.MatchStatusScheduled},
		{ID: "m-mid", Date: "2026-06-15", Status: models.MatchStatusScheduled},
	}
	s.Seed(nil, nil, nil, matches, nil, nil, nil, nil)

	got := s.Matches()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"m-new", "m-mid", "m-old"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestUpdateGuidelineMirrorsHeaderFields(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed(nil, nil, nil, []models.Match{
		{ID: "match-7", Type: models.MatchTypeTournament, Date: "2026-04-01", Time: "10:00", Location: "Old Venue"},
	}, nil, nil, nil, nil)

	var g models.TournamentInfoFormData
	g.EventName = "Spring Cup"
	g.EventDateTime.EventDate = "2026-04-12"
	g.EventDateTime.StartTime = "09:00"

	require.NoError(t, s.UpdateGuidelineForMatch("match-7", g))

	m, err := s.MatchByID("match-7")
	require.NoError(t, err)
	assert.Equal(t, "Spring Cup", m.Location)
	assert.Equal(t, "2026-04-12", m.Date)
	assert.Equal(t, "09:00", m.Time)
	require.NotNil(t, m.DetailedTournamentInfo)
	assert.Equal(t, "Spring Cup", m.DetailedTournamentInfo.EventName)
}

func TestUpdateGuidelineRequiresEventName(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed(nil, nil, nil, []models.Match{{ID: "match-1"}}, nil, nil, nil, nil)

	err := s.UpdateGuidelineForMatch("match-1", models.TournamentInfoFormData{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveGuidelineAsNewMatch(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed(nil, nil, nil, []models.Match{{ID: "m-1", Date: "2026-01-01"}}, nil, nil, nil, nil)

	var g models.TournamentInfoFormData
	g.EventName = "Winter Cup"

	match, err := s.SaveGuidelineAsNewMatch("team-1", g)
	require.NoError(t, err)

	assert.Equal(t, models.MatchTypeTournament, match.Type)
	assert.Equal(t, models.MatchStatusPreparation, match.Status)
	assert.Equal(t, "team-1", match.OurTeamID)
	assert.Equal(t, testTime.Format("2006-01-02"), match.Date, "date defaults to today")
	assert.Equal(t, "09:00", match.Time, "time defaults to 09:00")
	assert.Equal(t, "Winter Cup", match.Location)

	got := s.Matches()
	require.Len(t, got, 2)
	assert.Equal(t, match.ID, got[0].ID, "new match sorts first by date")

	_, err = s.SaveGuidelineAsNewMatch("team-1", models.TournamentInfoFormData{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestThreadOrderingByLastActivity(t *testing.T) {
	s, _ := newTestStore(t)

	old := models.ChatMessage{ID: "a", Timestamp: testTime.Add(-time.Hour)}
	recent := models.ChatMessage{ID: "b", Timestamp: testTime}
	threads := []models.ChatThread{
		{ID: "thread-quiet"},
		{ID: "thread-old", LastMessage: &old},
		{ID: "thread-new", LastMessage: &recent},
	}
	s.Seed(nil, nil, nil, nil, nil, nil, threads, nil)

	got := s.ChatThreads()
	require.Len(t, got, 3)
	assert.Equal(t, "thread-new", got[0].ID)
	assert.Equal(t, "thread-old", got[1].ID)
	assert.Equal(t, "thread-quiet", got[2].ID, "threads without messages sort last")
}

func TestSendMessageUnreadCount(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed(
		[]models.Team{{ID: "team-1", Name: "FC Striker Kids"}},
		[]models.Team{{ID: "team-1", Name: "FC Striker Kids"}},
		nil, nil, nil, nil,
		[]models.ChatThread{{ID: "thread-1"}}, nil,
	)
	require.NoError(t, s.SelectManagedTeam("team-1"))

	// Peer message bumps the counter.
	err := s.SendMessage("thread-1", models.ChatMessage{ID: "m-1", SenderID: "team-2", Text: "hi", Timestamp: testTime})
	require.NoError(t, err)
	assert.Equal(t, 1, s.ChatThreads()[0].UnreadCount)

	// Operator message does not.
	err = s.SendMessage("thread-1", models.ChatMessage{ID: "m-2", SenderID: "team-1", Text: "hello", Timestamp: testTime.Add(time.Minute)})
	require.NoError(t, err)
	assert.Equal(t, 1, s.ChatThreads()[0].UnreadCount)

	// LastMessage is denormalized onto the thread.
	require.NotNil(t, s.ChatThreads()[0].LastMessage)
	assert.Equal(t, "m-2", s.ChatThreads()[0].LastMessage.ID)

	msgs, err := s.MessagesForThread("thread-1")
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestMarkThreadRead(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed(nil, nil, nil, nil, nil, nil, []models.ChatThread{{ID: "thread-1", UnreadCount: 4}}, nil)

	require.NoError(t, s.MarkThreadRead("thread-1"))
	assert.Zero(t, s.ChatThreads()[0].UnreadCount)

	assert.ErrorIs(t, s.MarkThreadRead("thread-9"), ErrThreadNotFound)
}

func TestAddChatThreadNavigation(t *testing.T) {
	s, _ := newTestStore(t)

	initial := models.ChatMessage{ID: "m-1", SenderID: "team-1", Text: "hi", Timestamp: testTime}
	s.AddChatThread(models.ChatThread{ID: "thread-1"}, &initial, true)

	session := s.Session()
	assert.Equal(t, models.ViewChatScreen, session.CurrentView)
	assert.Equal(t, "thread-1", session.SelectedChatThreadID)

	msgs, err := s.MessagesForThread("thread-1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "thread-1", msgs[0].ThreadID)

	s.AddChatThread(models.ChatThread{ID: "thread-2"}, nil, false)
	assert.Equal(t, "thread-1", s.Session().SelectedChatThreadID, "navigate=false leaves the session alone")
}

func TestNavigateClearsScopedSelections(t *testing.T) {
	s, _ := newTestStore(t)
	s.Seed(
		[]models.Team{{ID: "team-1"}},
		[]models.Team{{ID: "team-1"}},
		nil,
		[]models.Match{{ID: "match-1"}},
		nil, nil,
		[]models.ChatThread{{ID: "thread-1"}},
		nil,
	)

	require.NoError(t, s.SelectTeam("team-1"))
	require.NoError(t, s.NavigateToChatScreen("thread-1"))
	require.NoError(t, s.EditGuidelineForMatch("match-1"))

	// The guideline editor clears team and thread selections on entry.
	session := s.Session()
	assert.Equal(t, models.ViewTournamentGuidelines, session.CurrentView)
	assert.Empty(t, session.SelectedTeamID)
	assert.Empty(t, session.SelectedChatThreadID)
	assert.Equal(t, "match-1", session.SelectedMatchIDForGuideline)

	// Leaving the guideline editor drops the match selection.
	require.NoError(t, s.NavigateTo(models.ViewMatches))
	assert.Empty(t, s.Session().SelectedMatchIDForGuideline)

	// The team selection survives navigation to the profile screen only.
	require.NoError(t, s.SelectTeam("team-1"))
	require.NoError(t, s.NavigateTo(models.ViewFollowedTeams))
	assert.Empty(t, s.Session().SelectedTeamID)
}

func TestNavigateRejectsUnknownView(t *testing.T) {
	s, _ := newTestStore(t)
	assert.ErrorIs(t, s.NavigateTo(models.View("nonsense")), ErrInvalidView)
}

func TestSelectManagedTeam(t *testing.T) {
	s, _ := newTestStore(t)
	seedTeams(t, s)

	assert.True(t, s.Session().RequiresTeamSelection)

	require.NoError(t, s.SelectManagedTeam("team-1"))
	session := s.Session()
	assert.Equal(t, "team-1", session.SelectedManagedTeamID)
	assert.False(t, session.RequiresTeamSelection)
	assert.Equal(t, models.ViewTeamManagement, session.CurrentView)

	// Only managed teams are selectable.
	assert.ErrorIs(t, s.SelectManagedTeam("team-2"), ErrTeamNotFound)

	s.ClearManagedTeam()
	assert.True(t, s.Session().RequiresTeamSelection)
	assert.Empty(t, s.Session().SelectedManagedTeamID)
}

func TestOperatorIDFallsBackBeforeSelection(t *testing.T) {
	s, _ := newTestStore(t)
	seedTeams(t, s)

	assert.Equal(t, DefaultOperatorID, s.OperatorID())
	require.NoError(t, s.SelectManagedTeam("team-1"))
	assert.Equal(t, "team-1", s.OperatorID())
}

func TestReadsReturnCopies(t *testing.T) {
	s, _ := newTestStore(t)
	seedTeams(t, s)

	teams := s.Teams()
	teams[0].Name = "Mutated"
	teams[0].Members = append(teams[0].Members, models.Member{ID: "x"})

	fresh, err := s.TeamByID("team-1")
	require.NoError(t, err)
	assert.Equal(t, "FC Striker Kids", fresh.Name)
	assert.Empty(t, fresh.Members)
}
