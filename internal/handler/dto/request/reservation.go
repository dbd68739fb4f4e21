package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	Purpose        string    `json:"purpose" binding:"required"`
	StartLocation  string    `json:"start_location"`
	Destination    string    `json:"destination"`
	DepartsAt      time.Time `json:"departs_at" binding:"required"`
	ReturnsAt      time.Time `json:"returns_at" binding:"required"`
	PassengerCount int       `json:"passenger_count" binding:"required,min=1"`
	Description    string    `json:"description"`
}

type AcceptReservationRequest struct {
	VehicleIDs []uuid.UUID `json:"vehicle_ids" binding:"required,min=1"`
	Note       string      `json:"note"`
}

// ReasonRequest carries the mandatory free text for reject, cancel and
// reason edits.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AddVehicleRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" binding:"required"`
}

// Pointer fields distinguish an absent value from a legitimate zero reading.
type OdometerEntryRequest struct {
	VehicleID        uuid.UUID `json:"vehicle_id" binding:"required"`
	StartingOdometer *int64    `json:"starting_odometer" binding:"required"`
	FuelProvided     *float64  `json:"fuel_provided" binding:"required"`
}

type RecordOdometerRequest struct {
	Entries []OdometerEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

type ReturnAssignmentRequest struct {
	ReturnedOdometer *int64 `json:"returned_odometer" binding:"required"`
}

type ReportIssueRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
}
