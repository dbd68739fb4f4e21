//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"fleet-reservations/internal/domain/actor"
	"fleet-reservations/internal/handler/api"
	resdto "fleet-reservations/internal/handler/dto/response"
	"fleet-reservations/internal/pkg/errs"
	"fleet-reservations/internal/usecase/queries"
	"fleet-reservations/tests/common/httptest"
	queriesmock "fleet-reservations/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VehicleHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockVehicleQueries
	handler     *api.VehicleHandler
}

func (s *VehicleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockVehicleQueries(s.mockCtrl)
	s.handler = api.NewVehicleHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", actor.Actor{ID: uuid.New(), Role: actor.RoleRequester})
		c.Next()
	}

	s.router.GET("/vehicles/available", authMiddleware, s.handler.ListAvailable)
}

func (s *VehicleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}

func (s *VehicleHandlerTestSuite) TestListAvailable() {
	from := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	to := from.Add(8 * time.Hour)
	url := fmt.Sprintf("/vehicles/available?from=%s&to=%s",
		from.Format(time.RFC3339), to.Format(time.RFC3339))

	s.Run("success: returns free vehicles for the window", func() {
		views := []*queries.VehicleView{
			{ID: uuid.New(), PlateNumber: "FLT-001", ModelName: "Transit Van", SeatCount: 8},
			{ID: uuid.New(), PlateNumber: "FLT-002", ModelName: "Corolla Hybrid", SeatCount: 4},
		}
		s.mockQueries.EXPECT().
			ListAvailable(gomock.Any(), from, to).
			Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body []resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("FLT-001", body[0].PlateNumber)
		s.Equal(8, body[0].SeatCount)
	})

	s.Run("success: empty fleet yields empty array", func() {
		s.mockQueries.EXPECT().
			ListAvailable(gomock.Any(), from, to).
			Return([]*queries.VehicleView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body []resdto.VehicleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: missing from parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/vehicles/available?to="+to.Format(time.RFC3339), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from")
	})

	s.Run("error: malformed to parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/vehicles/available?from="+from.Format(time.RFC3339)+"&to=tomorrow", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid to")
	})

	s.Run("error: inverted window rejected by usecase", func() {
		invertedURL := fmt.Sprintf("/vehicles/available?from=%s&to=%s",
			to.Format(time.RFC3339), from.Format(time.RFC3339))
		s.mockQueries.EXPECT().
			ListAvailable(gomock.Any(), to, from).
			Return(nil, errs.ErrInvalidInput)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, invertedURL, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid input")
	})

	s.Run("error: store outage maps to 503", func() {
		s.mockQueries.EXPECT().
			ListAvailable(gomock.Any(), from, to).
			Return(nil, errs.ErrDependencyUnavailable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Service temporarily unavailable")
	})

	s.Run("error: unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
