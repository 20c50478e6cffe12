package core

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-exit/team-management-app.ver4/packages/core/draft"
	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	st := store.New(clock, zerolog.Nop())
	st.Seed(
		[]models.Team{
			{ID: "team-1", Name: "FC Striker Kids", CoachName: "Kenji Tanaka", Rating: 1500},
			{ID: "team-2", Name: "Blue Wings FC", CoachName: "Akira Mori", Rating: 1800},
		},
		[]models.Team{{ID: "team-1", Name: "FC Striker Kids", CoachName: "Kenji Tanaka", Rating: 1500}},
		nil,
		[]models.Match{{ID: "match-1", Type: models.MatchTypeTraining, Status: models.MatchStatusScheduled, OurTeamID: "team-1", Date: "2026-09-13"}},
		nil, nil,
		[]models.ChatThread{{ID: "thread-1"}},
		nil,
	)

	drafts := draft.NewFileStore(filepath.Join(t.TempDir(), "draft.json"), zerolog.Nop())
	module := NewModule(st, drafts, clock, zerolog.Nop())

	r := gin.New()
	module.SetupRoutes(r)
	return r, st
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetTeamsRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var teams []models.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	assert.Len(t, teams, 2)
}

func TestCreateTeamRoute(t *testing.T) {
	r, st := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/teams", models.CreateTeamRequest{Name: "New Kickers", CoachName: "Coach Z"})
	require.Equal(t, http.StatusCreated, w.Code)

	var team models.Team
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Equal(t, 1200, team.Rating)
	assert.Len(t, st.ManagedTeams(), 2)

	// Binding rejects a missing coach name before the store is touched.
	w = doRequest(t, r, http.MethodPost, "/teams", map[string]string{"name": "No Coach"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteTeamRouteConfirmation(t *testing.T) {
	r, st := newTestRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/teams/team-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing confirm=true")
	assert.Len(t, st.ManagedTeams(), 1)

	w = doRequest(t, r, http.MethodDelete, "/teams/team-1?confirm=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, st.ManagedTeams())
}

func TestUpdateMatchStatusRoute(t *testing.T) {
	r, st := newTestRouter(t)

	w := doRequest(t, r, http.MethodPatch, "/matches/match-1/status", models.UpdateMatchStatusRequest{Status: models.MatchStatusInProgress})
	require.Equal(t, http.StatusOK, w.Code)

	match, err := st.MatchByID("match-1")
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusInProgress, match.Status)

	// Unknown status value fails validation.
	w = doRequest(t, r, http.MethodPatch, "/matches/match-1/status", map[string]string{"status": "paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPatch, "/matches/match-99/status", models.UpdateMatchStatusRequest{Status: models.MatchStatusCompleted})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionNavigationRoutes(t *testing.T) {
	r, st := newTestRouter(t)

	w := doRequest(t, r, http.MethodPut, "/session/managed-team", models.SelectManagedTeamRequest{TeamID: "team-1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "team-1", st.Session().SelectedManagedTeamID)

	w = doRequest(t, r, http.MethodPost, "/session/navigate", models.NavigateRequest{View: models.ViewMatches})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ViewMatches, st.Session().CurrentView)

	w = doRequest(t, r, http.MethodPost, "/session/navigate", map[string]string{"view": "nonsense"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGuidelinePreviewRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	var form models.TournamentInfoFormData
	form.EventName = "Spring Cup"

	w := doRequest(t, r, http.MethodPost, "/guidelines/preview", models.PreviewGuidelineRequest{Guideline: form})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h1>Spring Cup</h1>")

	// An empty form has nothing to preview.
	w = doRequest(t, r, http.MethodPost, "/guidelines/preview", models.PreviewGuidelineRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveGuidelineAsMatchRouteNeedsManagedTeam(t *testing.T) {
	r, _ := newTestRouter(t)

	var form models.TournamentInfoFormData
	form.EventName = "Winter Cup"

	w := doRequest(t, r, http.MethodPost, "/matches/guideline", models.SaveGuidelineRequest{Guideline: form})
	assert.Equal(t, http.StatusConflict, w.Code)

	doRequest(t, r, http.MethodPut, "/session/managed-team", models.SelectManagedTeamRequest{TeamID: "team-1"})
	w = doRequest(t, r, http.MethodPost, "/matches/guideline", models.SaveGuidelineRequest{Guideline: form})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestChatRoutes(t *testing.T) {
	r, st := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/chat/threads/thread-1/messages", models.SendMessageRequest{
		SenderID: "team-2", SenderName: "Blue Wings FC", Text: "Hello!",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, st.ChatThreads()[0].UnreadCount)

	w = doRequest(t, r, http.MethodPatch, "/chat/threads/thread-1/read", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, st.ChatThreads()[0].UnreadCount)

	w = doRequest(t, r, http.MethodGet, "/chat/threads/thread-9/messages", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
