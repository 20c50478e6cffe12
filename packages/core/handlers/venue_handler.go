package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

type VenueHandler struct {
	store *store.Store
}

func NewVenueHandler(st *store.Store) *VenueHandler {
	return &VenueHandler{store: st}
}

// GetVenues lists the bookable venues
// @Summary List venues
// @Tags venues
// @Produce json
// @Success 200 {array} models.Venue
// @Router /venues [get]
func (h *VenueHandler) GetVenues(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Venues())
}
