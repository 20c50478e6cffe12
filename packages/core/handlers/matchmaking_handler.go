package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/services"
)

type MatchmakingHandler struct {
	matchmakingService *services.MatchmakingService
}

func NewMatchmakingHandler(matchmakingService *services.MatchmakingService) *MatchmakingHandler {
	return &MatchmakingHandler{matchmakingService: matchmakingService}
}

// Search filters the team universe for opponent candidates
// @Summary Search for opponents
// @Description All filters are conjunctive; the active managed team is excluded
// @Tags matchmaking
// @Accept json
// @Produce json
// @Param filters body models.MatchmakingFilters true "Search filters"
// @Success 200 {array} models.Team
// @Failure 400 {object} map[string]string
// @Router /matchmaking/search [post]
func (h *MatchmakingHandler) Search(c *gin.Context) {
	var filters models.MatchmakingFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.matchmakingService.Search(filters))
}
