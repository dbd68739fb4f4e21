package api

import (
	"net/http"
	"strconv"

	"fleet-reservations/internal/domain/actor"
	reqdto "fleet-reservations/internal/handler/dto/request"
	resdto "fleet-reservations/internal/handler/dto/response"
	"fleet-reservations/internal/handler/httperr"
	"fleet-reservations/internal/handler/middleware"
	"fleet-reservations/internal/pkg/errs"
	"fleet-reservations/internal/usecase/commands"
	"fleet-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	issues   commands.IssueCommands
	queries  queries.ReservationQueries
	resolver commands.CapabilityResolver
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	issueCommands commands.IssueCommands,
	reservationQueries queries.ReservationQueries,
	resolver commands.CapabilityResolver,
) *ReservationHandler {
	return &ReservationHandler{
		commands: reservationCommands,
		issues:   issueCommands,
		queries:  reservationQueries,
		resolver: resolver,
	}
}

// @Summary Create reservation
// @Description Submit a trip request; it enters review
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Trip request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), a, commands.CreateReservationParams{
		Purpose:        req.Purpose,
		StartLocation:  req.StartLocation,
		Destination:    req.Destination,
		DepartsAt:      req.DepartsAt,
		ReturnsAt:      req.ReturnsAt,
		PassengerCount: req.PassengerCount,
		Description:    req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description Own reservations, or all of them for reviewers; keyset paginated
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque page cursor"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	a, caps, ok := h.actorWithCaps(c)
	if !ok {
		return
	}

	var after *queries.Cursor
	if cursor := c.Query("cursor"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	items, next, err := h.queries.List(c.Request.Context(), a, caps, after, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationListItems(items, next))
}

// @Summary Get reservation
// @Description Detail with assignments and reported issues
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	a, caps, ok := h.actorWithCaps(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), a, caps, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Delete reservation
// @Description Administrative removal outside the lifecycle
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), a, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Accept reservation
// @Description Attach vehicles and move the reservation to ACCEPTED
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AcceptReservationRequest true "Vehicle selection"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/accept [post]
func (h *ReservationHandler) Accept(c *gin.Context) {
	h.transition(c, func(a actor.Actor, id uuid.UUID) (*queries.ReservationView, error) {
		var req reqdto.AcceptReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		return h.commands.Accept(c.Request.Context(), a, id, req.VehicleIDs, req.Note)
	})
}

// @Summary Reject reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReasonRequest true "Rejection reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) Reject(c *gin.Context) {
	h.transition(c, func(a actor.Actor, id uuid.UUID) (*queries.ReservationView, error) {
		var req reqdto.ReasonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		return h.commands.Reject(c.Request.Context(), a, id, req.Reason)
	})
}

// @Summary Cancel reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReasonRequest true "Cancellation reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, func(a actor.Actor, id uuid.UUID) (*queries.ReservationView, error) {
		var req reqdto.ReasonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		return h.commands.Cancel(c.Request.Context(), a, id, req.Reason)
	})
}

// @Summary Edit stored reason
// @Description Replace the reason on a rejected or cancelled reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReasonRequest true "New reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/reason [patch]
func (h *ReservationHandler) EditReason(c *gin.Context) {
	h.transition(c, func(a actor.Actor, id uuid.UUID) (*queries.ReservationView, error) {
		var req reqdto.ReasonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		return h.commands.EditReason(c.Request.Context(), a, id, req.Reason)
	})
}

// @Summary Add vehicle
// @Description Attach one more vehicle to an accepted reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AddVehicleRequest true "Vehicle"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/vehicles [post]
func (h *ReservationHandler) AddVehicle(c *gin.Context) {
	h.transition(c, func(a actor.Actor, id uuid.UUID) (*queries.ReservationView, error) {
		var req reqdto.AddVehicleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		return h.commands.AddVehicle(c.Request.Context(), a, id, req.VehicleID)
	})
}

// @Summary Remove vehicle
// @Description Detach a vehicle whose assignment has not started
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param vehicleID path string true "Vehicle ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/vehicles/{vehicleID} [delete]
func (h *ReservationHandler) RemoveVehicle(c *gin.Context) {
	h.transition(c, func(a actor.Actor, id uuid.UUID) (*queries.ReservationView, error) {
		vehicleID, ok := pathUUID(c, "vehicleID")
		if !ok {
			return nil, nil
		}
		return h.commands.RemoveVehicle(c.Request.Context(), a, id, vehicleID)
	})
}

// @Summary Record odometer readings
// @Description Record baseline odometer and fuel for assigned vehicles; moves the reservation to APPROVED when all are recorded
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RecordOdometerRequest true "Readings"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/odometer [post]
func (h *ReservationHandler) RecordOdometer(c *gin.Context) {
	h.transition(c, func(a actor.Actor, id uuid.UUID) (*queries.ReservationView, error) {
		var req reqdto.RecordOdometerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidInput)
		}
		entries := make([]commands.StartEntryParams, len(req.Entries))
		for i, e := range req.Entries {
			entries[i] = commands.StartEntryParams{
				VehicleID:        e.VehicleID,
				StartingOdometer: *e.StartingOdometer,
				FuelProvided:     *e.FuelProvided,
			}
		}
		return h.commands.RecordOdometer(c.Request.Context(), a, id, entries)
	})
}

// @Summary Return vehicle
// @Description Record the closing odometer for one assignment; completes the reservation when the last vehicle returns
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param request body reqdto.ReturnAssignmentRequest true "Closing reading"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /assignments/{id}/return [post]
func (h *ReservationHandler) ReturnAssignment(c *gin.Context) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}
	assignmentID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReturnAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.CompleteAssignment(c.Request.Context(), a, assignmentID, *req.ReturnedOdometer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Report vehicle issue
// @Description File a defect report on a vehicle out on an approved trip
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Param request body reqdto.ReportIssueRequest true "Issue"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /assignments/{id}/issues [post]
func (h *ReservationHandler) ReportIssue(c *gin.Context) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}
	assignmentID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	issueID, err := h.issues.Report(c.Request.Context(), a, commands.ReportIssueParams{
		AssignmentID: assignmentID,
		Title:        req.Title,
		Description:  req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": issueID.String()})
}

// transition is the shared shape of the lifecycle endpoints: resolve the
// actor, parse the id, run the command, render the committed view.
func (h *ReservationHandler) transition(c *gin.Context, fn func(a actor.Actor, id uuid.UUID) (*queries.ReservationView, error)) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := fn(a, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if view == nil {
		return // fn already wrote the response
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) actorWithCaps(c *gin.Context) (actor.Actor, actor.Capabilities, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error", nil)
		return actor.Actor{}, nil, false
	}
	caps, err := h.resolver.CapabilitiesOf(c.Request.Context(), a)
	if err != nil {
		writeError(c, errs.Mark(err, errs.ErrDependencyUnavailable))
		return actor.Actor{}, nil, false
	}
	return a, caps, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
