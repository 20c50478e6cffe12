package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/services"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// GetTeamEvents lists a team's schedule events in calendar order
// @Summary List team schedule events
// @Tags schedule
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {array} models.ScheduleEvent
// @Router /schedule/teams/{teamId} [get]
func (h *ScheduleHandler) GetTeamEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduleService.EventsForTeam(c.Param("teamId")))
}

// CreateEvent adds a schedule event for a team
// @Summary Create a schedule event
// @Tags schedule
// @Accept json
// @Produce json
// @Param event body models.CreateScheduleEventRequest true "Event data"
// @Success 201 {object} models.ScheduleEvent
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedule [post]
func (h *ScheduleHandler) CreateEvent(c *gin.Context) {
	var req models.CreateScheduleEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.scheduleService.CreateEvent(req)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent patches an existing schedule event
// @Summary Update a schedule event
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body models.UpdateScheduleEventRequest true "Fields to change"
// @Success 200 {object} models.ScheduleEvent
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedule/{id} [patch]
func (h *ScheduleHandler) UpdateEvent(c *gin.Context) {
	var req models.UpdateScheduleEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.scheduleService.UpdateEvent(c.Param("id"), req)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent removes a schedule event
// @Summary Delete a schedule event
// @Tags schedule
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedule/{id} [delete]
func (h *ScheduleHandler) DeleteEvent(c *gin.Context) {
	if err := h.scheduleService.DeleteEvent(c.Param("id")); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
