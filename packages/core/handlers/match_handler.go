package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/services"
)

type MatchHandler struct {
	matchService     *services.MatchService
	guidelineService *services.GuidelineService
}

func NewMatchHandler(matchService *services.MatchService, guidelineService *services.GuidelineService) *MatchHandler {
	return &MatchHandler{
		matchService:     matchService,
		guidelineService: guidelineService,
	}
}

// GetMatches lists all matches, date descending
// @Summary List matches
// @Tags matches
// @Produce json
// @Success 200 {array} models.Match
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	c.JSON(http.StatusOK, h.matchService.AllMatches())
}

// GetMatch gets a match by ID
// @Summary Get match by ID
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	match, err := h.matchService.GetMatch(c.Param("id"))
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, match)
}

// UpdateMatchStatus moves a match through its lifecycle
// @Summary Update match status
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param status body models.UpdateMatchStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/status [patch]
func (h *MatchHandler) UpdateMatchStatus(c *gin.Context) {
	var req models.UpdateMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.matchService.UpdateStatus(c.Param("id"), req.Status); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// UpdateGuideline overwrites the guideline attached to a match
// @Summary Update match guideline
// @Description Mirrors event name/date/start time into the match header fields
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param guideline body models.SaveGuidelineRequest true "Guideline form"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/guideline [put]
func (h *MatchHandler) UpdateGuideline(c *gin.Context) {
	var req models.SaveGuidelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.guidelineService.UpdateForMatch(c.Param("id"), req.Guideline); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "guideline updated"})
}

// SaveGuidelineAsMatch promotes a guideline into a new tournament match
// @Summary Save guideline as a new match
// @Tags matches
// @Accept json
// @Produce json
// @Param guideline body models.SaveGuidelineRequest true "Guideline form"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/guideline [post]
func (h *MatchHandler) SaveGuidelineAsMatch(c *gin.Context) {
	var req models.SaveGuidelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.guidelineService.SaveAsNewMatch(req.Guideline)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, match)
}

// GetPastGuidelines lists matches carrying a saved guideline
// @Summary List past guidelines
// @Tags matches
// @Produce json
// @Success 200 {array} models.PastGuideline
// @Router /matches/guidelines [get]
func (h *MatchHandler) GetPastGuidelines(c *gin.Context) {
	c.JSON(http.StatusOK, h.guidelineService.PastGuidelines())
}
