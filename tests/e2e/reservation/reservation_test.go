//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/handler/dto/request"
	"fleet-reservations/internal/handler/dto/response"
	"fleet-reservations/tests/common/httptest"
	"fleet-reservations/tests/e2e"
	"fleet-reservations/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func int64p(v int64) *int64       { return &v }
func float64p(v float64) *float64 { return &v }

func (s *reservationSuite) createReservation(token string, departsAt, returnsAt time.Time) response.ReservationResponse {
	s.T().Helper()

	reqBody := request.CreateReservationRequest{
		Purpose:        "Quarterly site inspection",
		StartLocation:  "HQ garage",
		Destination:    "North depot",
		DepartsAt:      departsAt,
		ReturnsAt:      returnsAt,
		PassengerCount: 3,
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody, token)

	var created response.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return created
}

func (s *reservationSuite) acceptReservation(token string, id uuid.UUID, vehicleIDs ...uuid.UUID) *stdhttptest.ResponseRecorder {
	s.T().Helper()

	reqBody := request.AcceptReservationRequest{VehicleIDs: vehicleIDs, Note: "vehicles confirmed"}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%s/accept", reservationsURL, id), reqBody, token)
}

func (s *reservationSuite) TestFullLifecycle() {
	s.Run("reservation travels review to completion", func() {
		t := s.T()

		_, requesterToken := helper.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(actor.RoleRequester))
		managerID, managerToken := helper.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(actor.RoleFleetManager))

		van := helper.VehicleIDByPlate(t, s.DB, "FLT-001")
		sedan := helper.VehicleIDByPlate(t, s.DB, "FLT-002")

		departsAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		returnsAt := departsAt.Add(8 * time.Hour)

		created := s.createReservation(requesterToken, departsAt, returnsAt)
		require.Equal(t, "UNDER_REVIEW", created.Status)
		require.Equal(t, int64(1), created.Version)
		require.Empty(t, created.Assignments)

		// Review: attach both vehicles
		w := s.acceptReservation(managerToken, created.ID, van, sedan)
		var accepted response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &accepted)
		require.Equal(t, "ACCEPTED", accepted.Status)
		require.Len(t, accepted.Assignments, 2)
		require.NotNil(t, accepted.ReviewedBy)
		require.Equal(t, managerID, *accepted.ReviewedBy)
		require.Greater(t, accepted.Version, created.Version)
		for _, a := range accepted.Assignments {
			require.Equal(t, "ASSIGNED", a.State)
			require.Nil(t, a.StartingOdometer)
		}

		// Departure: record odometer and fuel for every vehicle
		odoBody := request.RecordOdometerRequest{Entries: []request.OdometerEntryRequest{
			{VehicleID: van, StartingOdometer: int64p(10_000), FuelProvided: float64p(45)},
			{VehicleID: sedan, StartingOdometer: int64p(52_300), FuelProvided: float64p(38.5)},
		}}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/odometer", reservationsURL, created.ID), odoBody, managerToken)
		var approved response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
		require.Equal(t, "APPROVED", approved.Status)
		require.NotNil(t, approved.ApprovedBy)
		for _, a := range approved.Assignments {
			require.Equal(t, "STARTED", a.State)
			require.NotNil(t, a.StartingOdometer)
		}

		assignmentByVehicle := map[uuid.UUID]uuid.UUID{}
		for _, a := range approved.Assignments {
			assignmentByVehicle[a.VehicleID] = a.ID
		}

		// A trip incident reported by the requester against the van
		issueBody := request.ReportIssueRequest{
			Title:       "Warning light on dashboard",
			Description: "Tyre pressure warning came on halfway to the depot.",
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/assignments/%s/issues", assignmentByVehicle[van]), issueBody, requesterToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Return the van first: reservation stays APPROVED
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/assignments/%s/return", assignmentByVehicle[van]),
			request.ReturnAssignmentRequest{ReturnedOdometer: int64p(10_180)}, managerToken)
		var partial response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &partial)
		require.Equal(t, "APPROVED", partial.Status)
		require.Nil(t, partial.CompletedAt)

		// Last return closes the reservation
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/assignments/%s/return", assignmentByVehicle[sedan]),
			request.ReturnAssignmentRequest{ReturnedOdometer: int64p(52_410)}, managerToken)
		var completed response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &completed)
		require.Equal(t, "COMPLETED", completed.Status)
		require.NotNil(t, completed.CompletedAt)

		// Requester reads back the final state including the reported issue
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", reservationsURL, created.ID), nil, requesterToken)
		var view response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "COMPLETED", view.Status)
		require.Len(t, view.Issues, 1)
		require.Equal(t, "Warning light on dashboard", view.Issues[0].Title)
		for _, a := range view.Assignments {
			require.Equal(t, "RETURNED", a.State)
			require.NotNil(t, a.ReturnedOdometer)
		}
	})
}

func (s *reservationSuite) TestRejectAndCancel() {
	s.Run("rejected reservation keeps an editable reason", func() {
		t := s.T()

		_, requesterToken := helper.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(actor.RoleRequester))
		_, managerToken := helper.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(actor.RoleFleetManager))

		departsAt := time.Now().Add(24 * time.Hour)
		created := s.createReservation(requesterToken, departsAt, departsAt.Add(4*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/reject", reservationsURL, created.ID),
			request.ReasonRequest{Reason: "No vehicles free that week"}, managerToken)
		var rejected response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rejected)
		require.Equal(t, "REJECTED", rejected.Status)
		require.NotNil(t, rejected.Reason)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/reason", reservationsURL, created.ID),
			request.ReasonRequest{Reason: "No vehicles free; resubmit for the following week"}, managerToken)
		var edited response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &edited)
		require.Equal(t, "No vehicles free; resubmit for the following week", *edited.Reason)
	})

	s.Run("owner cancels their own pending reservation", func() {
		t := s.T()

		_, requesterToken := helper.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(actor.RoleRequester))

		departsAt := time.Now().Add(24 * time.Hour)
		created := s.createReservation(requesterToken, departsAt, departsAt.Add(4*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", reservationsURL, created.ID),
			request.ReasonRequest{Reason: "Trip no longer needed"}, requesterToken)
		var cancelled response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "CANCELLED", cancelled.Status)
		require.NotNil(t, cancelled.CancelledAt)
	})
}

func (s *reservationSuite) TestVehicleAvailability() {
	s.Run("vehicle booked for an overlapping window is rejected", func() {
		t := s.T()

		_, requesterToken := helper.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(actor.RoleRequester))
		_, managerToken := helper.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(actor.RoleFleetManager))

		van := helper.VehicleIDByPlate(t, s.DB, "FLT-001")

		departsAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		first := s.createReservation(requesterToken, departsAt, departsAt.Add(8*time.Hour))
		second := s.createReservation(requesterToken, departsAt.Add(4*time.Hour), departsAt.Add(12*time.Hour))

		w := s.acceptReservation(managerToken, first.ID, van)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = s.acceptReservation(managerToken, second.ID, van)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Vehicle unavailable")

		// The failed accept must not leave the reservation half-reviewed
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", reservationsURL, second.ID), nil, requesterToken)
		var unchanged response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &unchanged)
		require.Equal(t, "UNDER_REVIEW", unchanged.Status)
		require.Empty(t, unchanged.Assignments)
	})

	s.Run("concurrent accepts for the same vehicle admit exactly one", func() {
		t := s.T()

		_, requesterToken := helper.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(actor.RoleRequester))
		_, managerToken := helper.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(actor.RoleFleetManager))

		van := helper.VehicleIDByPlate(t, s.DB, "FLT-001")

		departsAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		first := s.createReservation(requesterToken, departsAt, departsAt.Add(8*time.Hour))
		second := s.createReservation(requesterToken, departsAt.Add(4*time.Hour), departsAt.Add(12*time.Hour))

		// Both reviews race for the van; neither sees the other committed
		// when it checks availability, so the transactional guard has to
		// reject one of them.
		results := make(chan int, 2)
		var wg sync.WaitGroup
		for _, id := range []uuid.UUID{first.ID, second.ID} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := s.acceptReservation(managerToken, id, van)
				results <- w.Code
			}()
		}
		wg.Wait()
		close(results)

		var codes []int
		for code := range results {
			codes = append(codes, code)
		}
		sort.Ints(codes)
		require.Equal(t, []int{http.StatusOK, http.StatusConflict}, codes)

		var assigned int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM vehicle_assignments WHERE vehicle_id = $1", van).Scan(&assigned)
		require.NoError(t, err)
		require.Equal(t, 1, assigned, "vehicle double-booked")
	})

	s.Run("back-to-back windows share a vehicle", func() {
		t := s.T()

		_, requesterToken := helper.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(actor.RoleRequester))
		_, managerToken := helper.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(actor.RoleFleetManager))

		van := helper.VehicleIDByPlate(t, s.DB, "FLT-001")

		departsAt := time.Now().Add(24 * time.Hour).Truncate(time.Second)
		handover := departsAt.Add(8 * time.Hour)
		first := s.createReservation(requesterToken, departsAt, handover)
		second := s.createReservation(requesterToken, handover, handover.Add(8*time.Hour))

		w := s.acceptReservation(managerToken, first.ID, van)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// Windows are half-open, so a reservation starting at the handover instant is fine
		w = s.acceptReservation(managerToken, second.ID, van)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestAccessControl() {
	s.Run("requester cannot review reservations", func() {
		t := s.T()

		_, requesterToken := helper.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(actor.RoleRequester))
		van := helper.VehicleIDByPlate(t, s.DB, "FLT-001")

		departsAt := time.Now().Add(24 * time.Hour)
		created := s.createReservation(requesterToken, departsAt, departsAt.Add(4*time.Hour))

		w := s.acceptReservation(requesterToken, created.ID, van)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("requester cannot read another requester's reservation", func() {
		t := s.T()

		_, ownerToken := helper.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(actor.RoleRequester))
		_, otherToken := helper.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(actor.RoleRequester))
		_, managerToken := helper.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(actor.RoleFleetManager))

		departsAt := time.Now().Add(24 * time.Hour)
		created := s.createReservation(ownerToken, departsAt, departsAt.Add(4*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", reservationsURL, created.ID), nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", reservationsURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("only admins delete reservations", func() {
		t := s.T()

		_, requesterToken := helper.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(actor.RoleRequester))
		_, managerToken := helper.CreateAndLogin(t, s.DB, s.Router, "manager@example.com", string(actor.RoleFleetManager))
		_, adminToken := helper.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(actor.RoleAdmin))

		departsAt := time.Now().Add(24 * time.Hour)
		created := s.createReservation(requesterToken, departsAt, departsAt.Add(4*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%s", reservationsURL, created.ID), nil, managerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%s", reservationsURL, created.ID), nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", reservationsURL, created.ID), nil, adminToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestListPagination() {
	s.Run("list pages with a keyset cursor", func() {
		t := s.T()

		_, requesterToken := helper.CreateAndLogin(t, s.DB, s.Router, "requester@example.com", string(actor.RoleRequester))

		departsAt := time.Now().Add(24 * time.Hour)
		for i := range 3 {
			offset := time.Duration(i*2) * time.Hour
			s.createReservation(requesterToken, departsAt.Add(offset), departsAt.Add(offset+time.Hour))
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?limit=2", nil, requesterToken)
		var firstPage response.ReservationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &firstPage)
		require.Len(t, firstPage.Items, 2)
		require.NotNil(t, firstPage.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"?limit=2&cursor="+*firstPage.NextCursor, nil, requesterToken)
		var secondPage response.ReservationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &secondPage)
		require.Len(t, secondPage.Items, 1)
		require.Nil(t, secondPage.NextCursor)

		seen := map[uuid.UUID]bool{}
		for _, item := range append(firstPage.Items, secondPage.Items...) {
			require.False(t, seen[item.ID], "reservation %s appeared on both pages", item.ID)
			seen[item.ID] = true
		}
	})
}
