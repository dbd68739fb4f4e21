package response

import (
	"time"

	"fleet-reservations/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AssignmentResponse struct {
	ID               uuid.UUID  `json:"id"`
	VehicleID        uuid.UUID  `json:"vehicleId"`
	PlateNumber      string     `json:"plateNumber"`
	ModelName        string     `json:"modelName"`
	State            string     `json:"state"`
	StartingOdometer *int64     `json:"startingOdometer,omitempty"`
	FuelProvided     *float64   `json:"fuelProvided,omitempty"`
	ReturnedOdometer *int64     `json:"returnedOdometer,omitempty"`
	ReturnedAt       *time.Time `json:"returnedAt,omitempty"`
}

type IssueResponse struct {
	ID           uuid.UUID `json:"id"`
	AssignmentID uuid.UUID `json:"assignmentId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ReportedBy   uuid.UUID `json:"reportedBy"`
	ReportedAt   time.Time `json:"reportedAt"`
}

type ReservationResponse struct {
	ID             uuid.UUID            `json:"id"`
	RequesterID    uuid.UUID            `json:"requesterId"`
	RequesterEmail string               `json:"requesterEmail"`
	Purpose        string               `json:"purpose"`
	StartLocation  string               `json:"startLocation"`
	Destination    string               `json:"destination"`
	DepartsAt      time.Time            `json:"departsAt"`
	ReturnsAt      time.Time            `json:"returnsAt"`
	PassengerCount int                  `json:"passengerCount"`
	Description    string               `json:"description"`
	Status         string               `json:"status"`
	Reason         *string              `json:"reason,omitempty"`
	ReviewedBy     *uuid.UUID           `json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time           `json:"reviewedAt,omitempty"`
	ApprovedBy     *uuid.UUID           `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time           `json:"approvedAt,omitempty"`
	CompletedAt    *time.Time           `json:"completedAt,omitempty"`
	CancelledBy    *uuid.UUID           `json:"cancelledBy,omitempty"`
	CancelledAt    *time.Time           `json:"cancelledAt,omitempty"`
	Version        int64                `json:"version"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
	Assignments    []AssignmentResponse `json:"assignments"`
	Issues         []IssueResponse      `json:"issues,omitempty"`
}

type ReservationListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	RequesterID  uuid.UUID `json:"requesterId"`
	Purpose      string    `json:"purpose"`
	Destination  string    `json:"destination"`
	DepartsAt    time.Time `json:"departsAt"`
	ReturnsAt    time.Time `json:"returnsAt"`
	Status       string    `json:"status"`
	VehicleCount int       `json:"vehicleCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReservationListResponse struct {
	Items      []ReservationListItemResponse `json:"items"`
	NextCursor *string                       `json:"nextCursor,omitempty"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	resp := &ReservationResponse{}
	_ = copier.Copy(resp, view)
	resp.Assignments = make([]AssignmentResponse, len(view.Assignments))
	for i, a := range view.Assignments {
		_ = copier.Copy(&resp.Assignments[i], &a)
	}
	if len(view.Issues) > 0 {
		resp.Issues = make([]IssueResponse, len(view.Issues))
		for i, iss := range view.Issues {
			_ = copier.Copy(&resp.Issues[i], &iss)
		}
	}
	return resp
}

func FromReservationListItems(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationListResponse {
	resp := &ReservationListResponse{
		Items: make([]ReservationListItemResponse, len(items)),
	}
	for i, item := range items {
		_ = copier.Copy(&resp.Items[i], item)
	}
	if next != nil {
		cursor := next.After
		resp.NextCursor = &cursor
	}
	return resp
}
