package handlers

import (
	"errors"
	"net/http"

	"github.com/d-exit/team-management-app.ver4/packages/core/services"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

// errStatus maps service/store sentinel errors onto HTTP status codes.
func errStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrValidation),
		errors.Is(err, store.ErrInvalidView),
		errors.Is(err, services.ErrConfirmationRequired):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrTeamNotFound),
		errors.Is(err, store.ErrMatchNotFound),
		errors.Is(err, store.ErrThreadNotFound),
		errors.Is(err, store.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNoManagedTeam):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
