package api

import (
	"errors"
	"net/http"

	"fleet-reservations/internal/handler/httperr"
	"fleet-reservations/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// writeError translates usecase sentinels into the HTTP contract. Anything
// unrecognized is a 500 with no detail leaked.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid input", nil)
	case errors.Is(err, errs.ErrAuthenticationFailed):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Operation not permitted", nil)
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, errs.ErrAssignmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Assignment not found", nil)
	case errors.Is(err, errs.ErrVehicleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
	case errors.Is(err, errs.ErrIllegalTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Action not allowed in current status", nil)
	case errors.Is(err, errs.ErrVehicleUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle unavailable for the requested window", nil)
	case errors.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation was modified concurrently, retry the request", nil)
	case errors.Is(err, errs.ErrDependencyUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
