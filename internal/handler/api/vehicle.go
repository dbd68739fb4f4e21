package api

import (
	"net/http"
	"time"

	resdto "fleet-reservations/internal/handler/dto/response"
	"fleet-reservations/internal/handler/httperr"
	"fleet-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	queries queries.VehicleQueries
}

func NewVehicleHandler(vehicleQueries queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{queries: vehicleQueries}
}

// @Summary List available vehicles
// @Description Vehicles free for the given trip window
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param from query string true "Window start (RFC3339)"
// @Param to query string true "Window end (RFC3339)"
// @Success 200 {array} resdto.VehicleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /vehicles/available [get]
func (h *VehicleHandler) ListAvailable(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from", nil)
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to", nil)
		return
	}

	views, err := h.queries.ListAvailable(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleViews(views))
}
