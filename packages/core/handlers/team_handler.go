package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/services"
)

type TeamHandler struct {
	teamService  *services.TeamService
	matchService *services.MatchService
}

func NewTeamHandler(teamService *services.TeamService, matchService *services.MatchService) *TeamHandler {
	return &TeamHandler{
		teamService:  teamService,
		matchService: matchService,
	}
}

// GetAllTeams lists the global team universe
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Router /teams [get]
func (h *TeamHandler) GetAllTeams(c *gin.Context) {
	c.JSON(http.StatusOK, h.teamService.AllTeams())
}

// GetManagedTeams lists the teams the operator administers
// @Summary List managed teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Router /teams/managed [get]
func (h *TeamHandler) GetManagedTeams(c *gin.Context) {
	c.JSON(http.StatusOK, h.teamService.ManagedTeams())
}

// GetTeam gets a team by ID
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, err := h.teamService.GetTeam(c.Param("id"))
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, team)
}

// CreateTeam creates a new managed team
// @Summary Create a team
// @Description Create a managed team with default attributes; also inserted into the global collection
// @Tags teams
// @Accept json
// @Produce json
// @Param team body models.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(req.Name, req.CoachName)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam updates a managed team
// @Summary Update a managed team
// @Description Propagates the record into the managed, global, and followed collections
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body models.UpdateTeamRequest true "Full team record"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Team.ID != c.Param("id") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team id mismatch"})
		return
	}

	if err := h.teamService.UpdateManagedTeam(req.Team); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req.Team)
}

// DeleteTeam removes a team from the managed subset
// @Summary Delete a managed team
// @Description Soft local removal; the global collection and references stay intact. Requires confirm=true.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := h.teamService.DeleteTeam(c.Param("id"), confirmed); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team removed from managed teams"})
}

// GetTeamRank reports the team's rating position per cohort
// @Summary Get team rank
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.TeamRankResponse
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/rank [get]
func (h *TeamHandler) GetTeamRank(c *gin.Context) {
	rank, err := h.teamService.TeamRank(c.Param("id"))
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rank)
}

// GetTeamMatches lists matches the team takes part in
// @Summary Get team matches
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} models.Match
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/matches [get]
func (h *TeamHandler) GetTeamMatches(c *gin.Context) {
	matches, err := h.teamService.TeamMatches(c.Param("id"))
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetScoringLog lists the team's goals across matches
// @Summary Get team scoring log
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {array} models.ScoringLogEntry
// @Router /teams/{id}/scoring-log [get]
func (h *TeamHandler) GetScoringLog(c *gin.Context) {
	c.JSON(http.StatusOK, h.matchService.ScoringLog(c.Param("id")))
}

// ToggleFollow follows or unfollows a team
// @Summary Toggle following a team
// @Tags followed-teams
// @Accept json
// @Produce json
// @Param team body models.ToggleFollowRequest true "Team to toggle"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /followed-teams/toggle [post]
func (h *TeamHandler) ToggleFollow(c *gin.Context) {
	var req models.ToggleFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	following := h.teamService.ToggleFollowTeam(req.Team)
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// GetFollowedTeams lists followed-team snapshots
// @Summary List followed teams
// @Tags followed-teams
// @Produce json
// @Success 200 {array} models.FollowedTeam
// @Router /followed-teams [get]
func (h *TeamHandler) GetFollowedTeams(c *gin.Context) {
	c.JSON(http.StatusOK, h.teamService.FollowedTeams())
}

// ToggleFavorite flips the favorite flag on a followed team
// @Summary Toggle favorite
// @Description No-op when the team is not followed
// @Tags followed-teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string]string
// @Router /followed-teams/{id}/favorite [patch]
func (h *TeamHandler) ToggleFavorite(c *gin.Context) {
	h.teamService.ToggleFavoriteTeam(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "favorite toggled"})
}
