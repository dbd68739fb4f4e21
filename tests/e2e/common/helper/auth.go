//go:build e2e

package helper

import (
	"encoding/json"
	"net/http"
	"testing"

	"fleet-reservations/internal/handler/dto/request"
	"fleet-reservations/internal/handler/dto/response"
	"fleet-reservations/tests/common/dbtest"
	"fleet-reservations/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestUserPassword matches the precomputed hash inserted by dbtest.CreateTestUser.
const TestUserPassword = "password123"

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginRes response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginRes))
	require.NotEmpty(t, loginRes.AccessToken, "access token not found in login response")

	return loginRes.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) (uuid.UUID, string) {
	t.Helper()

	userID := dbtest.CreateTestUser(t, db, email, role)
	return userID, LoginUser(t, router, email, TestUserPassword)
}

// VehicleIDByPlate resolves one of the seeded reference vehicles.
func VehicleIDByPlate(t *testing.T, db dbtest.DBLike, plateNumber string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(t.Context(), "SELECT id FROM vehicles WHERE plate_number = $1", plateNumber).Scan(&id)
	require.NoError(t, err, "seeded vehicle %s not found", plateNumber)
	return id
}
