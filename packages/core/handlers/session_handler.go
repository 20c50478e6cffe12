package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

type SessionHandler struct {
	store *store.Store
}

func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{store: st}
}

// GetSession returns the operator's current view and selections
// @Summary Get session state
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionState
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Session())
}

// Navigate switches the current view and clears out-of-scope selections
// @Summary Navigate to a view
// @Tags session
// @Accept json
// @Produce json
// @Param view body models.NavigateRequest true "Target view"
// @Success 200 {object} models.SessionState
// @Failure 400 {object} map[string]string
// @Router /session/navigate [post]
func (h *SessionHandler) Navigate(c *gin.Context) {
	var req models.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.NavigateTo(req.View); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.Session())
}

// SelectManagedTeam makes a managed team the active one
// @Summary Select the active managed team
// @Tags session
// @Accept json
// @Produce json
// @Param team body models.SelectManagedTeamRequest true "Team to activate"
// @Success 200 {object} models.SessionState
// @Failure 404 {object} map[string]string
// @Router /session/managed-team [put]
func (h *SessionHandler) SelectManagedTeam(c *gin.Context) {
	var req models.SelectManagedTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SelectManagedTeam(req.TeamID); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.Session())
}

// ClearManagedTeam returns the session to the team-selection pre-state
// @Summary Clear the active managed team
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionState
// @Router /session/managed-team [delete]
func (h *SessionHandler) ClearManagedTeam(c *gin.Context) {
	h.store.ClearManagedTeam()
	c.JSON(http.StatusOK, h.store.Session())
}

// SelectTeam opens a team's profile screen
// @Summary Select a team profile
// @Tags session
// @Accept json
// @Produce json
// @Param team body models.SelectManagedTeamRequest true "Team to view"
// @Success 200 {object} models.SessionState
// @Failure 404 {object} map[string]string
// @Router /session/team [put]
func (h *SessionHandler) SelectTeam(c *gin.Context) {
	var req models.SelectManagedTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.SelectTeam(req.TeamID); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.Session())
}

// SelectChatThread opens a thread's chat screen
// @Summary Open a chat thread
// @Tags session
// @Accept json
// @Produce json
// @Param thread body models.SelectChatThreadRequest true "Thread to open"
// @Success 200 {object} models.SessionState
// @Failure 404 {object} map[string]string
// @Router /session/chat-thread [put]
func (h *SessionHandler) SelectChatThread(c *gin.Context) {
	var req models.SelectChatThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.NavigateToChatScreen(req.ThreadID); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.Session())
}

// SelectGuidelineMatch opens the guideline editor bound to a match
// @Summary Edit a match's guideline
// @Tags session
// @Accept json
// @Produce json
// @Param match body models.SelectGuidelineMatchRequest true "Match to edit"
// @Success 200 {object} models.SessionState
// @Failure 404 {object} map[string]string
// @Router /session/guideline-match [put]
func (h *SessionHandler) SelectGuidelineMatch(c *gin.Context) {
	var req models.SelectGuidelineMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.EditGuidelineForMatch(req.MatchID); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.Session())
}
